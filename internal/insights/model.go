package insights

// EstimateRequest is the /predict payload. Price is optional and
// defaults to zero, which only affects the blend step.
type EstimateRequest struct {
	Location string  `json:"location"`
	Cuisine  string  `json:"cuisine"`
	Price    float64 `json:"price"`
}

// EstimateResult carries the descriptive statistics plus the blended
// price suggestion. Money fields are rounded to 2 decimals.
type EstimateResult struct {
	AveragePrice                float64 `json:"average_price"`
	PopularCuisine              string  `json:"popular_cuisine"`
	PopularRestaurantOverall    string  `json:"popular_restaurant_overall"`
	PopularRestaurantForCuisine string  `json:"popular_restaurant_for_cuisine"`
	SuggestedPrice              float64 `json:"suggested_price"`
}

// OptionsResult feeds the front-end dropdowns.
type OptionsResult struct {
	Locations    []string `json:"locations"`
	Cuisines     []string `json:"cuisines"`
	TotalRecords int      `json:"total_records"`
}

type HealthStatus struct {
	Status      string `json:"status"`
	DataLoaded  bool   `json:"data_loaded"`
	ModelLoaded bool   `json:"model_loaded"`
	Records     int    `json:"records"`
}
