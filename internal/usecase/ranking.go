package usecase

import (
	"sort"

	"github.com/meetingcost/meeting-location-search/internal/domain"
)

// SortAnalyses orders location analyses according to the specified sort option.
// Uses stable sorting with the city name as final tie-breaker.
//
// Sort options:
//   - SortByTotalCost (default): ascending by TotalCost
//   - SortByAverageCost: ascending by AverageCostPerPerson
//   - SortByCoverage: descending by attendees with a fare, then ascending by TotalCost
//   - SortByCity: alphabetical by city
//
// Does NOT mutate the original slice.
func SortAnalyses(analyses []domain.LocationAnalysis, sortBy domain.SortOption) []domain.LocationAnalysis {
	if len(analyses) == 0 {
		return analyses
	}

	result := make([]domain.LocationAnalysis, len(analyses))
	copy(result, analyses)

	if len(result) == 1 {
		return result
	}

	if !sortBy.IsValid() {
		sortBy = domain.SortByTotalCost
	}

	var compare func(a, b domain.LocationAnalysis) int
	switch sortBy {
	case domain.SortByTotalCost:
		compare = func(a, b domain.LocationAnalysis) int { return a.TotalCost.Cmp(b.TotalCost) }
	case domain.SortByAverageCost:
		compare = func(a, b domain.LocationAnalysis) int { return a.AverageCostPerPerson.Cmp(b.AverageCostPerPerson) }
	case domain.SortByCoverage:
		compare = func(a, b domain.LocationAnalysis) int {
			if a.AttendeeCount() != b.AttendeeCount() {
				return b.AttendeeCount() - a.AttendeeCount()
			}
			return a.TotalCost.Cmp(b.TotalCost)
		}
	case domain.SortByCity:
		compare = func(a, b domain.LocationAnalysis) int { return 0 }
	}

	sort.SliceStable(result, func(i, j int) bool {
		if c := compare(result[i], result[j]); c != 0 {
			return c < 0
		}
		return result[i].Location.City < result[j].Location.City
	})

	return result
}
