package main

import (
	"log"
	"os"
	"strings"

	"github.com/Sumityvd/Market-Analysis-and-Business-Insights/internal/dataset"
	"github.com/Sumityvd/Market-Analysis-and-Business-Insights/internal/insights"
	"github.com/Sumityvd/Market-Analysis-and-Business-Insights/internal/predictor"
	"github.com/Sumityvd/Market-Analysis-and-Business-Insights/internal/router"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	csvPath := envOr("DATA_CSV_PATH", "data/clean_data.csv")
	modelPath := envOr("MODEL_PATH", "data/price_model.json")
	port := envOr("PORT", "8000")
	origins := strings.Split(
		envOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		",",
	)

	// ───────────────────────── DATASET ─────────────────────────
	// A missing or broken data file is survivable: the service boots
	// and reports data_loaded=false until the file is fixed.
	table, err := dataset.LoadCSV(csvPath)
	if err != nil {
		log.Printf("❌ Dataset load failed: %v (serving with empty dataset)", err)
		table = dataset.New(nil, nil)
	} else {
		log.Printf("✅ Loaded dataset: %d rows", table.Len())
		log.Printf("   Columns: %v", table.Headers())
	}

	// ───────────────────────── MODEL ─────────────────────────
	var model predictor.Predictor
	if p, err := predictor.Load(modelPath); err != nil {
		log.Printf("❌ Model load failed: %v (suggestions fall back to averages)", err)
	} else {
		model = p
		log.Println("✅ Price model loaded")
	}

	// ───────────────────────── WIRING ─────────────────────────
	service := insights.NewService(table, model)
	handler := insights.NewHandler(service)
	r := router.New(handler, origins)

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
