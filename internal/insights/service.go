package insights

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/Sumityvd/Market-Analysis-and-Business-Insights/internal/dataset"
	"github.com/Sumityvd/Market-Analysis-and-Business-Insights/internal/predictor"
)

const (
	notAvailable = "Not Available"
	notFound     = "Not Found"
)

// Service answers the options and estimation queries over the immutable
// dataset. model may be nil when the artifact failed to load; estimation
// then falls back to the average price.
type Service struct {
	table *dataset.Table
	model predictor.Predictor
}

func NewService(table *dataset.Table, model predictor.Predictor) *Service {
	return &Service{
		table: table,
		model: model,
	}
}

// --------------------------------------------------
// Options
// --------------------------------------------------

// Options returns the distinct filter values for the dropdowns. A
// missing column yields an empty list, not an error; only an empty
// dataset is an error.
func (s *Service) Options() (*OptionsResult, error) {
	if s.table.Empty() {
		return nil, ErrDataUnavailable
	}

	locations := []string{}
	if col, ok := s.table.Column(dataset.FieldLocation); ok {
		seen := make(map[string]bool)
		for i := 0; i < s.table.Len(); i++ {
			v := s.table.Cell(i, col)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			locations = append(locations, v)
		}
		sort.Strings(locations)
	}

	// cuisine cells may hold comma-joined lists ("North Indian, Chinese")
	cuisines := []string{}
	if col, ok := s.table.Column(dataset.FieldCuisine); ok {
		seen := make(map[string]bool)
		for i := 0; i < s.table.Len(); i++ {
			for _, token := range strings.Split(s.table.Cell(i, col), ",") {
				token = strings.TrimSpace(token)
				if token == "" || seen[token] {
					continue
				}
				seen[token] = true
				cuisines = append(cuisines, token)
			}
		}
		sort.Strings(cuisines)
	}

	return &OptionsResult{
		Locations:    locations,
		Cuisines:     cuisines,
		TotalRecords: s.table.Len(),
	}, nil
}

// --------------------------------------------------
// Estimation
// --------------------------------------------------

// Estimate filters the dataset by location, aggregates the statistics
// and blends the model's point estimate with the asking price.
func (s *Service) Estimate(req EstimateRequest) (*EstimateResult, error) {
	if strings.TrimSpace(req.Location) == "" || strings.TrimSpace(req.Cuisine) == "" {
		return nil, ErrMissingFields
	}
	if s.table.Empty() {
		return nil, ErrDataUnavailable
	}

	locCol, locOK := s.table.Column(dataset.FieldLocation)
	cuisineCol, cuisineOK := s.table.Column(dataset.FieldCuisine)
	priceCol, priceOK := s.table.Column(dataset.FieldPrice)
	if !locOK || !cuisineOK || !priceOK {
		return nil, ErrSchema
	}

	// rating and name are optional: their absence degrades the
	// restaurant fields instead of failing the request
	ratingCol, ratingOK := s.table.Column(dataset.FieldRating)
	nameCol, nameOK := s.table.Column(dataset.FieldName)

	rows := s.filterContains(allRows(s.table.Len()), locCol, req.Location)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, req.Location)
	}

	avgPrice := s.mean(rows, priceCol)

	overall := notAvailable
	if ratingOK && nameOK {
		if row, ok := s.topRated(rows, ratingCol); ok {
			overall = s.table.Cell(row, nameCol)
		}
	}

	forCuisine := notFound
	if ratingOK && nameOK {
		cuisineRows := s.filterContains(rows, cuisineCol, req.Cuisine)
		if row, ok := s.topRated(cuisineRows, ratingCol); ok {
			forCuisine = s.table.Cell(row, nameCol)
		}
	}

	return &EstimateResult{
		AveragePrice:                round2(avgPrice),
		PopularCuisine:              s.mode(rows, cuisineCol),
		PopularRestaurantOverall:    overall,
		PopularRestaurantForCuisine: forCuisine,
		SuggestedPrice:              round2(s.suggestPrice(req, avgPrice)),
	}, nil
}

// Health is the trivial status projection for /health.
func (s *Service) Health() HealthStatus {
	return HealthStatus{
		Status:      "healthy",
		DataLoaded:  !s.table.Empty(),
		ModelLoaded: s.model != nil,
		Records:     s.table.Len(),
	}
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

// filterContains keeps the rows whose cell contains needle as a
// case-insensitive substring. Rows with a missing cell never match.
func (s *Service) filterContains(rows []int, col int, needle string) []int {
	needle = strings.ToLower(needle)
	var out []int
	for _, row := range rows {
		v := s.table.Cell(row, col)
		if v == "" {
			continue
		}
		if strings.Contains(strings.ToLower(v), needle) {
			out = append(out, row)
		}
	}
	return out
}

// mode returns the most frequent raw cuisine value. Values are counted
// un-split; ties break to the value encountered first in dataset order.
func (s *Service) mode(rows []int, col int) string {
	counts := make(map[string]int)
	var order []string
	for _, row := range rows {
		v := s.table.Cell(row, col)
		if v == "" {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best := notAvailable
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// mean averages the numeric cells of col over rows, ignoring missing
// values. Zero when nothing is numeric.
func (s *Service) mean(rows []int, col int) float64 {
	var sum float64
	var n int
	for _, row := range rows {
		if v, ok := s.table.Float(row, col); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// topRated returns the row holding the maximum rating; the first row
// encountered wins a tie. ok is false when every rating is missing.
func (s *Service) topRated(rows []int, ratingCol int) (int, bool) {
	bestRow := 0
	bestRating := 0.0
	found := false
	for _, row := range rows {
		v, ok := s.table.Float(row, ratingCol)
		if !ok {
			continue
		}
		if !found || v > bestRating {
			bestRow = row
			bestRating = v
			found = true
		}
	}
	return bestRow, found
}

// --------------------------------------------------
// Price blend
// --------------------------------------------------

// suggestPrice blends the model's point estimate with the asking price:
// never suggest below the model's estimate when the asking price already
// exceeds it, and never nudge an underpriced listing up by more than 10%.
// A failed or missing model falls back to the subset average (or the
// asking price when no average exists) and is never surfaced as an error.
func (s *Service) suggestPrice(req EstimateRequest, avgPrice float64) float64 {
	if s.model == nil {
		return fallbackPrice(avgPrice, req.Price)
	}

	predicted, err := s.model.Predict(req.Location, req.Cuisine)
	if err != nil {
		log.Printf("[INSIGHTS] model prediction failed, using fallback: %v", err)
		return fallbackPrice(avgPrice, req.Price)
	}

	if req.Price >= predicted {
		return predicted
	}
	return math.Min(req.Price*1.1, predicted)
}

func fallbackPrice(avgPrice, askingPrice float64) float64 {
	if avgPrice != 0 {
		return avgPrice
	}
	return askingPrice
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}
