// Package usecase contains the business logic for meeting location search.
// It drives the route search, the nearby-airport fallback and the ranking of candidate cities.
package usecase

import "github.com/meetingcost/meeting-location-search/internal/domain"

// SearchOptions contains optional parameters for a meeting search.
type SearchOptions struct {
	// Filters contains optional filtering criteria applied to the ranked cities
	Filters *domain.AnalysisFilter

	// SortBy specifies how to order the cities (default: total cost)
	SortBy domain.SortOption

	// OnProgress receives the completed fraction of the run
	OnProgress ProgressFunc
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortByTotalCost,
	}
}
