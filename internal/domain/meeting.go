// Package domain contains the core entities and rules for meeting location cost search.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// IsValidAirportCode reports whether code is a 3-letter IATA code after uppercasing.
func IsValidAirportCode(code string) bool {
	return airportCodeRegex.MatchString(strings.ToUpper(strings.TrimSpace(code)))
}

// NormalizeAirportCode trims and uppercases an airport code.
func NormalizeAirportCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Meeting is a planned gathering with candidate host cities and travelling attendees.
type Meeting struct {
	// ID is an opaque identifier supplied by the caller
	ID string `json:"id,omitempty"`

	// Name is the meeting title
	Name string `json:"name"`

	// StartDate is the first meeting day
	StartDate time.Time `json:"startDate"`

	// NumberOfDays is the meeting length in days (at least 1)
	NumberOfDays int `json:"numberOfDays"`

	// BufferDaysBefore is the number of travel days before StartDate
	BufferDaysBefore int `json:"bufferDaysBefore"`

	// BufferDaysAfter is the number of travel days after the last meeting day
	BufferDaysAfter int `json:"bufferDaysAfter"`

	// Locations are the candidate host cities
	Locations []Location `json:"locations"`

	// Attendees are the people travelling to the meeting
	Attendees []Attendee `json:"attendees"`
}

// ActualStartDate is the outbound travel date.
func (m *Meeting) ActualStartDate() time.Time {
	return m.StartDate.AddDate(0, 0, -m.BufferDaysBefore)
}

// ActualEndDate is the return travel date.
func (m *Meeting) ActualEndDate() time.Time {
	return m.StartDate.AddDate(0, 0, m.NumberOfDays-1+m.BufferDaysAfter)
}

// Validate checks that the meeting can be searched.
// Airport code format is not checked here; malformed codes are reported per route by the search engine.
func (m *Meeting) Validate() error {
	if len(m.Attendees) == 0 {
		return fmt.Errorf("%w: at least one attendee is required", ErrInvalidRequest)
	}
	if len(m.Locations) == 0 {
		return fmt.Errorf("%w: at least one location is required", ErrInvalidRequest)
	}
	if m.NumberOfDays < 1 {
		return fmt.Errorf("%w: numberOfDays must be at least 1", ErrInvalidRequest)
	}
	if m.BufferDaysBefore < 0 || m.BufferDaysAfter < 0 {
		return fmt.Errorf("%w: buffer days must not be negative", ErrInvalidRequest)
	}
	if m.ActualStartDate().After(m.ActualEndDate()) {
		return fmt.Errorf("%w: travel start must not be after travel end", ErrInvalidRequest)
	}
	return nil
}

// SearchReadiness returns non-blocking warnings about a meeting that is technically searchable
// but probably not what the organiser wants yet.
func (m *Meeting) SearchReadiness(now time.Time) []string {
	var warnings []string
	if strings.TrimSpace(m.Name) == "" {
		warnings = append(warnings, "meeting has no name")
	}
	if len(m.Locations) < 2 {
		warnings = append(warnings, "fewer than two candidate locations to compare")
	}
	if !m.ActualStartDate().After(now) {
		warnings = append(warnings, "travel start date is not in the future")
	}
	return warnings
}

// Location is a candidate host city.
// Two locations are the same routing target when their airport codes match.
type Location struct {
	City        string `json:"city"`
	AirportCode string `json:"airportCode"`
	CountryCode string `json:"countryCode"`
}

// DisplayName renders the location as "City (CODE)".
func (l Location) DisplayName() string {
	return fmt.Sprintf("%s (%s)", l.City, l.AirportCode)
}

// Attendee is a person travelling from a home airport.
type Attendee struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	HomeAirport string `json:"homeAirport"`
}

// DisplayName renders the attendee as "Name - CODE".
func (a Attendee) DisplayName() string {
	return fmt.Sprintf("%s - %s", a.Name, a.HomeAirport)
}
