package domain

import "github.com/shopspring/decimal"

// SortOption defines the available orderings for location analyses.
type SortOption string

// Available sort options.
const (
	// SortByTotalCost sorts by total group cost ascending (default)
	SortByTotalCost SortOption = "total"

	// SortByAverageCost sorts by average cost per person ascending
	SortByAverageCost SortOption = "average"

	// SortByCoverage sorts by number of attendees with a fare, descending
	SortByCoverage SortOption = "coverage"

	// SortByCity sorts alphabetically by city name
	SortByCity SortOption = "city"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByTotalCost, SortByAverageCost, SortByCoverage, SortByCity:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByTotalCost if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByTotalCost
}

// AnalysisFilter defines optional filters applied to ranked location analyses.
type AnalysisFilter struct {
	// MaxAverageCost drops cities whose average cost per person is above this amount
	MaxAverageCost *decimal.Decimal `json:"maxAverageCost,omitempty"`

	// FullCoverageOnly drops cities where some attendee has no fare
	FullCoverageOnly bool `json:"fullCoverageOnly,omitempty"`

	// DirectOnly drops cities where any selected leg has a connection
	DirectOnly bool `json:"directOnly,omitempty"`

	// HomeAirportsOnly drops cities where any attendee was rerouted to a nearby airport
	HomeAirportsOnly bool `json:"homeAirportsOnly,omitempty"`
}

// IsEmpty reports whether no filter is set.
func (f *AnalysisFilter) IsEmpty() bool {
	return f == nil || (f.MaxAverageCost == nil && !f.FullCoverageOnly && !f.DirectOnly && !f.HomeAirportsOnly)
}

// Matches checks if an analysis passes all filter criteria.
func (f *AnalysisFilter) Matches(a LocationAnalysis) bool {
	if f == nil {
		return true
	}

	if f.MaxAverageCost != nil && a.AverageCostPerPerson.GreaterThan(*f.MaxAverageCost) {
		return false
	}

	if f.FullCoverageOnly && a.HasPartialResults() {
		return false
	}

	if f.DirectOnly && a.HasConnectionFlights() {
		return false
	}

	if f.HomeAirportsOnly {
		for _, r := range a.Results {
			if r.UsesAlternativeAirport() {
				return false
			}
		}
	}

	return true
}
