package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FlightDetails describes one leg of a selected quote.
type FlightDetails struct {
	// DepartureAirport is the IATA code the leg departs from
	DepartureAirport string `json:"departureAirport"`

	// DepartureTime is the scheduled departure
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalAirport is the IATA code the leg arrives at
	ArrivalAirport string `json:"arrivalAirport"`

	// ArrivalTime is the scheduled arrival
	ArrivalTime time.Time `json:"arrivalTime"`

	// Stops is the number of connections (0 = direct)
	Stops int `json:"stops"`

	// Airline is the display name of the carrier(s)
	Airline string `json:"airline"`

	// FlightNumber is carrier code plus number of the first segment (e.g., "UA123")
	FlightNumber string `json:"flightNumber,omitempty"`

	// Duration is a human-readable duration (e.g., "5h 30m")
	Duration string `json:"duration"`

	// IsFromAlternativeAirport is set when the leg uses a nearby airport instead of the home airport
	IsFromAlternativeAirport bool `json:"isFromAlternativeAirport"`

	// OriginalRequestedAirport is the home airport when an alternative was used
	OriginalRequestedAirport string `json:"originalRequestedAirport,omitempty"`
}

// AlternativeAirportInfo records that a nearby airport replaced the attendee's home airport.
type AlternativeAirportInfo struct {
	OriginalAirport        string  `json:"originalAirport"`
	AlternativeAirport     string  `json:"alternativeAirport"`
	DistanceMiles          float64 `json:"distanceMiles"`
	AlternativeAirportName string  `json:"alternativeAirportName"`
}

// Description renders "Using <name> (<code>) - 12.3 miles from <orig>".
func (a AlternativeAirportInfo) Description() string {
	return fmt.Sprintf("Using %s (%s) - %.1f miles from %s",
		a.AlternativeAirportName, a.AlternativeAirport, a.DistanceMiles, a.OriginalAirport)
}

// FlightSearchResult is the cheapest round trip found for one attendee to one city.
type FlightSearchResult struct {
	ID                 string                  `json:"id"`
	Attendee           Attendee                `json:"attendee"`
	Destination        Location                `json:"destination"`
	Outbound           FlightDetails           `json:"outbound"`
	Return             FlightDetails           `json:"return"`
	TotalPrice         decimal.Decimal         `json:"totalPrice"`
	Currency           string                  `json:"currency"`
	SearchedAt         time.Time               `json:"searchedAt"`
	AlternativeAirport *AlternativeAirportInfo `json:"alternativeAirport,omitempty"`
}

// UsesAlternativeAirport reports whether a nearby airport was substituted.
func (r FlightSearchResult) UsesAlternativeAirport() bool {
	return r.AlternativeAirport != nil
}

// AirlineNames maps common carrier codes to display names.
var AirlineNames = map[string]string{
	"AA": "American Airlines",
	"DL": "Delta Air Lines",
	"UA": "United Airlines",
	"WN": "Southwest Airlines",
	"B6": "JetBlue Airways",
	"AS": "Alaska Airlines",
	"NK": "Spirit Airlines",
	"F9": "Frontier Airlines",
	"HA": "Hawaiian Airlines",
	"G4": "Allegiant Air",
	"SY": "Sun Country Airlines",
	"AC": "Air Canada",
	"BA": "British Airways",
	"AF": "Air France",
	"LH": "Lufthansa",
	"KL": "KLM",
	"EK": "Emirates",
	"SQ": "Singapore Airlines",
	"NH": "ANA",
	"JL": "Japan Airlines",
}

// AirlineName resolves a carrier code, falling back to the code itself.
func AirlineName(code string) string {
	if name, ok := AirlineNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}
