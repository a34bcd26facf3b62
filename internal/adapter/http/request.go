// Package http provides the HTTP handler layer for the meeting location search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

// MeetingRequest is the meeting definition accepted by the meeting endpoints.
type MeetingRequest struct {
	// ID is an optional caller identifier; one is generated when empty
	ID string `json:"id,omitempty" validate:"omitempty,max=64" example:"q3-offsite"`

	// Name is the meeting title
	Name string `json:"name" validate:"max=200" example:"Q3 offsite"`

	// StartDate is the first meeting day in YYYY-MM-DD format
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02" example:"2025-09-15"`

	// NumberOfDays is the meeting length (1-60)
	NumberOfDays int `json:"numberOfDays" validate:"required,min=1,max=60" example:"3"`

	// BufferDaysBefore is the number of travel days before the start (0-14)
	BufferDaysBefore int `json:"bufferDaysBefore" validate:"min=0,max=14" example:"1"`

	// BufferDaysAfter is the number of travel days after the last day (0-14)
	BufferDaysAfter int `json:"bufferDaysAfter" validate:"min=0,max=14" example:"1"`

	// Locations are the candidate host cities
	Locations []LocationRequest `json:"locations" validate:"required,min=1,max=50,dive"`

	// Attendees are the people travelling to the meeting
	Attendees []AttendeeRequest `json:"attendees" validate:"required,min=1,max=500,dive"`
}

// LocationRequest is a candidate city.
type LocationRequest struct {
	City        string `json:"city" validate:"required,max=100" example:"Chicago"`
	AirportCode string `json:"airportCode" validate:"required,iata" example:"ORD"`
	CountryCode string `json:"countryCode,omitempty" validate:"omitempty,len=2,alpha" example:"US"`
}

// AttendeeRequest is a travelling attendee.
// HomeAirport is only checked for presence here; malformed codes are reported
// per route in the search metadata instead of rejecting the whole meeting.
type AttendeeRequest struct {
	ID          string `json:"id,omitempty" validate:"omitempty,max=64"`
	Name        string `json:"name" validate:"required,max=100" example:"Ann"`
	HomeAirport string `json:"homeAirport" validate:"required,max=8" example:"SFO"`
}

// SearchMeetingRequest is the body of POST /api/v1/meetings/search.
type SearchMeetingRequest struct {
	// Meeting is the meeting to search for
	Meeting MeetingRequest `json:"meeting"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort cities: total, average, coverage, city
	SortBy string `json:"sortBy,omitempty" validate:"omitempty,oneof=total average coverage city" example:"total"`
}

// FilterDTO represents optional filters on the ranked cities.
// Example: {"maxAverageCost": 450, "fullCoverageOnly": true}
type FilterDTO struct {
	// MaxAverageCost drops cities whose average fare is above this amount
	MaxAverageCost *float64 `json:"maxAverageCost,omitempty" validate:"omitempty,gt=0" example:"450"`

	// FullCoverageOnly drops cities where some attendee has no fare
	FullCoverageOnly bool `json:"fullCoverageOnly,omitempty"`

	// DirectOnly drops cities where any selected leg has a connection
	DirectOnly bool `json:"directOnly,omitempty"`

	// HomeAirportsOnly drops cities where an attendee was rerouted to a nearby airport
	HomeAirportsOnly bool `json:"homeAirportsOnly,omitempty"`
}

// NearbyAirportsRequest binds GET /api/v1/airports/:code/nearby.
type NearbyAirportsRequest struct {
	Code        string  `param:"code" json:"code" validate:"required,iata"`
	RadiusMiles float64 `query:"radius" json:"radius" validate:"omitempty,gt=0,lte=500"`
}

// AirportSearchRequest binds GET /api/v1/airports.
type AirportSearchRequest struct {
	Keyword string `query:"keyword" json:"keyword" validate:"required,min=2,max=50"`
}
