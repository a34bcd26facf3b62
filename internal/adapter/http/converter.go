package http

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/timeutil"
	"github.com/meetingcost/meeting-location-search/internal/usecase"
)

// ToDomainMeeting converts a MeetingRequest to a domain.Meeting.
// A missing ID is replaced by a generated one so log lines of a run can be correlated.
func ToDomainMeeting(req *MeetingRequest) (*domain.Meeting, error) {
	start, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		return nil, domain.WrapInvalidRequest("startDate %q is not a valid date", req.StartDate)
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}

	meeting := &domain.Meeting{
		ID:               id,
		Name:             strings.TrimSpace(req.Name),
		StartDate:        start,
		NumberOfDays:     req.NumberOfDays,
		BufferDaysBefore: req.BufferDaysBefore,
		BufferDaysAfter:  req.BufferDaysAfter,
		Locations:        make([]domain.Location, len(req.Locations)),
		Attendees:        make([]domain.Attendee, len(req.Attendees)),
	}

	for i, l := range req.Locations {
		meeting.Locations[i] = domain.Location{
			City:        strings.TrimSpace(l.City),
			AirportCode: domain.NormalizeAirportCode(l.AirportCode),
			CountryCode: strings.ToUpper(l.CountryCode),
		}
	}
	for i, a := range req.Attendees {
		meeting.Attendees[i] = domain.Attendee{
			ID:          a.ID,
			Name:        strings.TrimSpace(a.Name),
			HomeAirport: domain.NormalizeAirportCode(a.HomeAirport),
		}
	}

	return meeting, nil
}

// ToDomainFilter converts a FilterDTO to domain.AnalysisFilter.
func ToDomainFilter(dto *FilterDTO) *domain.AnalysisFilter {
	if dto == nil {
		return nil
	}

	f := &domain.AnalysisFilter{
		FullCoverageOnly: dto.FullCoverageOnly,
		DirectOnly:       dto.DirectOnly,
		HomeAirportsOnly: dto.HomeAirportsOnly,
	}
	if dto.MaxAverageCost != nil {
		limit := decimal.NewFromFloat(*dto.MaxAverageCost)
		f.MaxAverageCost = &limit
	}
	return f
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchMeetingRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		Filters: ToDomainFilter(req.Filters),
		SortBy:  domain.ParseSortOption(strings.ToLower(req.SortBy)),
	}
}
