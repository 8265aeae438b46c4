package insights

import "errors"

var (
	// ErrMissingFields is a client error: the request omitted location
	// or cuisine.
	ErrMissingFields = errors.New("missing location or cuisine")

	// ErrDataUnavailable means the dataset loaded empty. Nothing can be
	// answered until the data file is fixed.
	ErrDataUnavailable = errors.New("no data available")

	// ErrSchema means the dataset is missing the location, cuisine or
	// price column under every accepted alias.
	ErrSchema = errors.New("required columns not found in dataset")

	// ErrLocationNotFound means the request was valid but no row
	// matched the location filter.
	ErrLocationNotFound = errors.New("no data found for location")
)
