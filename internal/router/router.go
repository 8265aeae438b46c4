package router

import (
	"time"

	"github.com/Sumityvd/Market-Analysis-and-Business-Insights/internal/insights"
	"github.com/Sumityvd/Market-Analysis-and-Business-Insights/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the gin engine and registers the service routes. The CORS
// origins are the front-end hosts allowed to call us.
func New(handler *insights.Handler, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	r.GET("/options", handler.Options)
	r.POST("/predict", handler.Predict)
	r.GET("/health", handler.Health)

	return r
}
