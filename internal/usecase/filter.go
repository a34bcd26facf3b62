package usecase

import "github.com/meetingcost/meeting-location-search/internal/domain"

// ApplyAnalysisFilters returns the analyses that match all filter criteria.
//
// Behavior:
//   - Returns the original slice if opts is nil or empty (no filtering)
//   - Does NOT mutate the original slice
//
// Example usage:
//
//	limit := decimal.NewFromInt(400)
//	opts := &domain.AnalysisFilter{MaxAverageCost: &limit, FullCoverageOnly: true}
//	filtered := ApplyAnalysisFilters(analyses, opts)
func ApplyAnalysisFilters(analyses []domain.LocationAnalysis, opts *domain.AnalysisFilter) []domain.LocationAnalysis {
	if opts.IsEmpty() {
		return analyses
	}

	result := make([]domain.LocationAnalysis, 0, len(analyses))
	for _, a := range analyses {
		if opts.Matches(a) {
			result = append(result, a)
		}
	}
	return result
}
