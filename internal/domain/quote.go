package domain

import (
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Money is an amount in a specific ISO 4217 currency.
type Money struct {
	// Amount is the exact decimal value (e.g., 275.50)
	Amount decimal.Decimal `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// FlightQuote is one round-trip offer returned by the provider.
type FlightQuote struct {
	// ID is the provider's offer identifier
	ID string `json:"id"`

	// Price is the grand total for one adult
	Price Money `json:"price"`

	// Itineraries holds the outbound leg and, for round trips, the return leg
	Itineraries []Itinerary `json:"itineraries"`

	// ValidatingAirlines are the carrier codes issuing the ticket
	ValidatingAirlines []string `json:"validatingAirlines,omitempty"`
}

// Outbound returns the first itinerary.
func (q FlightQuote) Outbound() (Itinerary, bool) {
	if len(q.Itineraries) == 0 {
		return Itinerary{}, false
	}
	return q.Itineraries[0], true
}

// Return returns the second itinerary if the offer is a round trip.
func (q FlightQuote) Return() (Itinerary, bool) {
	if len(q.Itineraries) < 2 {
		return Itinerary{}, false
	}
	return q.Itineraries[1], true
}

// Itinerary is one direction of travel.
type Itinerary struct {
	// Duration is the ISO-8601 duration reported by the provider (e.g., "PT5H30M")
	Duration string `json:"duration"`

	// Segments are the individual flights, in order
	Segments []Segment `json:"segments"`
}

// Stops is the number of connections.
func (i Itinerary) Stops() int {
	if len(i.Segments) == 0 {
		return 0
	}
	return len(i.Segments) - 1
}

// Segment is a single flight within an itinerary.
type Segment struct {
	Departure    SegmentPoint `json:"departure"`
	Arrival      SegmentPoint `json:"arrival"`
	CarrierCode  string       `json:"carrierCode"`
	FlightNumber string       `json:"flightNumber"`
}

// SegmentPoint is an airport and a local time.
type SegmentPoint struct {
	AirportCode string    `json:"airportCode"`
	At          time.Time `json:"at"`
}

// CheapestQuote returns the quote with the lowest price.
// Ties keep the earlier quote. Reports false for an empty slice.
func CheapestQuote(quotes []FlightQuote) (FlightQuote, bool) {
	if len(quotes) == 0 {
		return FlightQuote{}, false
	}

	best := quotes[0]
	for _, q := range quotes[1:] {
		if q.Price.Amount.LessThan(best.Price.Amount) {
			best = q
		}
	}
	return best, true
}

// isoDurationRegex matches the subset of ISO-8601 durations used for flights.
var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?)?$`)

// ParseISODuration converts "PT5H30M" style durations to minutes.
func ParseISODuration(s string) (int, bool) {
	m := isoDurationRegex.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return 0, false
	}

	total := 0
	for i, mult := range []int{24 * 60, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, false
		}
		total += n * mult
	}
	return total, true
}

// FormatDuration formats minutes as "Xh Ym", "Xh" or "Ym".
func FormatDuration(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}

// HumanDuration converts an ISO-8601 duration to display text.
// Unparseable input is returned unchanged.
func HumanDuration(iso string) string {
	mins, ok := ParseISODuration(iso)
	if !ok {
		return iso
	}
	return FormatDuration(mins)
}
