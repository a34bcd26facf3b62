package http

import (
	"time"

	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/timeutil"
)

// MeetingSearchResponseDTO is the payload of a meeting search.
type MeetingSearchResponseDTO struct {
	Meeting      MeetingSummaryDTO     `json:"meeting"`
	Locations    []LocationAnalysisDTO `json:"locations"`
	Optimization OptimizationDTO       `json:"optimization"`
	Metadata     MetadataDTO           `json:"metadata"`
}

// MeetingSummaryDTO echoes the searched meeting with its travel window.
type MeetingSummaryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TravelStart string `json:"travelStart" example:"2025-09-14"`
	TravelEnd   string `json:"travelEnd" example:"2025-09-18"`
	Attendees   int    `json:"attendees"`
	Locations   int    `json:"locations"`
}

// LocationAnalysisDTO is one ranked candidate city.
type LocationAnalysisDTO struct {
	Rank                 int               `json:"rank" example:"1"`
	City                 string            `json:"city" example:"Chicago"`
	AirportCode          string            `json:"airportCode" example:"ORD"`
	CountryCode          string            `json:"countryCode,omitempty" example:"US"`
	TotalCost            string            `json:"totalCost" example:"1240.50"`
	AverageCostPerPerson string            `json:"averageCostPerPerson" example:"310.13"`
	Currency             string            `json:"currency" example:"USD"`
	AttendeesWithFlights int               `json:"attendeesWithFlights" example:"4"`
	TotalAttendees       int               `json:"totalAttendees" example:"4"`
	MissingFlights       int               `json:"missingFlights" example:"0"`
	HasConnections       bool              `json:"hasConnections"`
	Flights              []FlightResultDTO `json:"flights"`
}

// FlightResultDTO is the cheapest round trip of one attendee to one city.
type FlightResultDTO struct {
	ID                 string                 `json:"id"`
	Attendee           AttendeeDTO            `json:"attendee"`
	Outbound           LegDTO                 `json:"outbound"`
	Return             LegDTO                 `json:"return"`
	Price              PriceDTO               `json:"price"`
	AlternativeAirport *AlternativeAirportDTO `json:"alternativeAirport,omitempty"`
}

// AttendeeDTO identifies the travelling attendee.
type AttendeeDTO struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	HomeAirport string `json:"homeAirport"`
}

// LegDTO describes one direction of a trip.
type LegDTO struct {
	DepartureAirport         string `json:"departureAirport"`
	DepartureTime            string `json:"departureTime" example:"2025-09-14T08:05:00Z"`
	ArrivalAirport           string `json:"arrivalAirport"`
	ArrivalTime              string `json:"arrivalTime"`
	Stops                    int    `json:"stops"`
	Airline                  string `json:"airline,omitempty"`
	FlightNumber             string `json:"flightNumber,omitempty"`
	Duration                 string `json:"duration,omitempty" example:"4h 10m"`
	IsFromAlternativeAirport bool   `json:"isFromAlternativeAirport"`
	OriginalRequestedAirport string `json:"originalRequestedAirport,omitempty"`
}

// PriceDTO represents price information. Amounts are decimal strings with two places.
type PriceDTO struct {
	Amount   string `json:"amount" example:"310.40"`
	Currency string `json:"currency" example:"USD"`
}

// AlternativeAirportDTO explains a nearby-airport substitution.
type AlternativeAirportDTO struct {
	OriginalAirport    string  `json:"originalAirport" example:"SJC"`
	AlternativeAirport string  `json:"alternativeAirport" example:"OAK"`
	Name               string  `json:"name" example:"Oakland International"`
	DistanceMiles      float64 `json:"distanceMiles" example:"29.4"`
	Description        string  `json:"description"`
}

// OptimizationDTO reports the provider calls saved by grouping attendees.
type OptimizationDTO struct {
	domain.OptimizationStats
	Summary string `json:"summary"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalRoutes        int                 `json:"totalRoutes"`
	SearchedRoutes     int                 `json:"searchedRoutes"`
	RoutesWithQuotes   int                 `json:"routesWithQuotes"`
	AlternativeRoutes  int                 `json:"alternativeRoutes"`
	RateLimitRetries   int                 `json:"rateLimitRetries"`
	SkippedRoutes      []string            `json:"skippedRoutes,omitempty"`
	FailedRoutes       []domain.RouteIssue `json:"failedRoutes,omitempty"`
	ValidationIssues   []domain.RouteIssue `json:"validationIssues,omitempty"`
	AuthShortCircuited bool                `json:"authShortCircuited"`
	Cancelled          bool                `json:"cancelled"`
	SearchTimeMs       int64               `json:"searchTimeMs"`
	Warnings           []string            `json:"warnings,omitempty"`
	Message            string              `json:"message,omitempty"`
}

// NearbyAirportsResponseDTO lists airports around an origin.
type NearbyAirportsResponseDTO struct {
	Origin      string                 `json:"origin" example:"SJC"`
	Name        string                 `json:"name" example:"San Jose International"`
	RadiusMiles float64                `json:"radiusMiles" example:"60"`
	Airports    []domain.NearbyAirport `json:"airports"`
}

// AirportSearchResponseDTO lists provider airports matching a keyword.
type AirportSearchResponseDTO struct {
	Keyword  string               `json:"keyword" example:"CA"`
	Airports []domain.AirportInfo `json:"airports"`
}

// ToMeetingSearchResponseDTO converts a search result to its API shape.
func ToMeetingSearchResponseDTO(meeting *domain.Meeting, result *domain.MeetingSearchResult) *MeetingSearchResponseDTO {
	if result == nil {
		return nil
	}

	dto := &MeetingSearchResponseDTO{
		Meeting: MeetingSummaryDTO{
			ID:          meeting.ID,
			Name:        meeting.Name,
			TravelStart: timeutil.FormatDate(meeting.ActualStartDate()),
			TravelEnd:   timeutil.FormatDate(meeting.ActualEndDate()),
			Attendees:   len(meeting.Attendees),
			Locations:   len(meeting.Locations),
		},
		Locations:    make([]LocationAnalysisDTO, len(result.Analyses)),
		Optimization: ToOptimizationDTO(result.Optimization),
		Metadata: MetadataDTO{
			TotalRoutes:        result.Stats.TotalRoutes,
			SearchedRoutes:     result.Stats.SearchedRoutes,
			RoutesWithQuotes:   result.Stats.RoutesWithQuotes,
			AlternativeRoutes:  result.Stats.AlternativeRoutes,
			RateLimitRetries:   result.Stats.RateLimitRetries,
			SkippedRoutes:      result.Stats.SkippedRoutes,
			FailedRoutes:       result.Stats.FailedRoutes,
			ValidationIssues:   result.Stats.ValidationIssues,
			AuthShortCircuited: result.Stats.AuthShortCircuited,
			Cancelled:          result.Stats.Cancelled,
			SearchTimeMs:       result.Stats.DurationMs,
			Warnings:           result.Warnings,
			Message:            result.Message,
		},
	}

	for i, a := range result.Analyses {
		dto.Locations[i] = toLocationAnalysisDTO(i+1, a)
	}

	return dto
}

// ToOptimizationDTO adds the human summary to the stats.
func ToOptimizationDTO(stats domain.OptimizationStats) OptimizationDTO {
	return OptimizationDTO{OptimizationStats: stats, Summary: stats.Summary()}
}

func toLocationAnalysisDTO(rank int, a domain.LocationAnalysis) LocationAnalysisDTO {
	dto := LocationAnalysisDTO{
		Rank:                 rank,
		City:                 a.Location.City,
		AirportCode:          a.Location.AirportCode,
		CountryCode:          a.Location.CountryCode,
		TotalCost:            a.TotalCost.StringFixed(2),
		AverageCostPerPerson: a.AverageCostPerPerson.StringFixed(2),
		Currency:             a.Currency,
		AttendeesWithFlights: a.AttendeeCount(),
		TotalAttendees:       a.TotalAttendeesSearched,
		MissingFlights:       a.MissingFlightCount(),
		HasConnections:       a.HasConnectionFlights(),
		Flights:              make([]FlightResultDTO, len(a.Results)),
	}

	for i, r := range a.Results {
		dto.Flights[i] = toFlightResultDTO(r)
	}
	return dto
}

func toFlightResultDTO(r domain.FlightSearchResult) FlightResultDTO {
	dto := FlightResultDTO{
		ID: r.ID,
		Attendee: AttendeeDTO{
			ID:          r.Attendee.ID,
			Name:        r.Attendee.Name,
			HomeAirport: r.Attendee.HomeAirport,
		},
		Outbound: toLegDTO(r.Outbound),
		Return:   toLegDTO(r.Return),
		Price: PriceDTO{
			Amount:   r.TotalPrice.StringFixed(2),
			Currency: r.Currency,
		},
	}

	if alt := r.AlternativeAirport; alt != nil {
		dto.AlternativeAirport = &AlternativeAirportDTO{
			OriginalAirport:    alt.OriginalAirport,
			AlternativeAirport: alt.AlternativeAirport,
			Name:               alt.AlternativeAirportName,
			DistanceMiles:      alt.DistanceMiles,
			Description:        alt.Description(),
		}
	}
	return dto
}

func toLegDTO(f domain.FlightDetails) LegDTO {
	return LegDTO{
		DepartureAirport:         f.DepartureAirport,
		DepartureTime:            formatTime(f.DepartureTime),
		ArrivalAirport:           f.ArrivalAirport,
		ArrivalTime:              formatTime(f.ArrivalTime),
		Stops:                    f.Stops,
		Airline:                  f.Airline,
		FlightNumber:             f.FlightNumber,
		Duration:                 f.Duration,
		IsFromAlternativeAirport: f.IsFromAlternativeAirport,
		OriginalRequestedAirport: f.OriginalRequestedAirport,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
