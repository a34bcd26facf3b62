package domain

//go:generate mockgen -source=ports.go -destination=ports_mock.go -package=domain

import (
	"context"
	"time"
)

// DateLayout is the provider date format for departure and return dates.
const DateLayout = "2006-01-02"

// SearchRequest is a single round-trip query between two airports.
type SearchRequest struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DepartureDate is the outbound travel date
	DepartureDate time.Time `json:"departureDate"`

	// ReturnDate is the return travel date
	ReturnDate time.Time `json:"returnDate"`
}

// RouteKey identifies the route as "ORIGIN-DEST".
func (r SearchRequest) RouteKey() string {
	return RouteKey(r.Origin, r.Destination)
}

// WithOrigin returns a copy of the request departing from another airport.
func (r SearchRequest) WithOrigin(origin string) SearchRequest {
	r.Origin = origin
	return r
}

// RouteKey builds the route cache key "ORIGIN-DEST".
func RouteKey(origin, destination string) string {
	return NormalizeAirportCode(origin) + "-" + NormalizeAirportCode(destination)
}

// RouteResult is the outcome of a route search including any airport substitution.
type RouteResult struct {
	// Quotes are the offers found for the airport actually used
	Quotes []FlightQuote `json:"quotes"`

	// OriginalAirport is the airport that was requested
	OriginalAirport string `json:"originalAirport"`

	// UsedAirport is the airport the quotes depart from
	UsedAirport string `json:"usedAirport"`

	// DistanceMiles is the distance between the two airports (0 when not substituted)
	DistanceMiles float64 `json:"distanceMiles"`

	// UsedAirportName is the display name of UsedAirport
	UsedAirportName string `json:"usedAirportName,omitempty"`
}

// Alternative returns substitution details, or nil when the requested airport was used.
func (r *RouteResult) Alternative() *AlternativeAirportInfo {
	if r == nil || r.UsedAirport == "" || r.UsedAirport == r.OriginalAirport {
		return nil
	}
	return &AlternativeAirportInfo{
		OriginalAirport:        r.OriginalAirport,
		AlternativeAirport:     r.UsedAirport,
		DistanceMiles:          r.DistanceMiles,
		AlternativeAirportName: r.UsedAirportName,
	}
}

// NearbyAirport is an airport within a search radius of another.
type NearbyAirport struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	DistanceMiles float64 `json:"distanceMiles"`
}

// AirportInfo is a provider airport reference record.
type AirportInfo struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	CountryCode string  `json:"countryCode"`
	StateCode   string  `json:"stateCode,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// QuoteSearcher fetches round-trip quotes for a single route.
type QuoteSearcher interface {
	// Search runs the direct query. An empty slice is not an error.
	Search(ctx context.Context, req SearchRequest) ([]FlightQuote, error)

	// SearchWithFallback runs the direct query and, when it returns nothing,
	// one retry with relaxed constraints.
	SearchWithFallback(ctx context.Context, req SearchRequest) ([]FlightQuote, error)
}

// RouteSearcher resolves a route, substituting nearby origin airports when needed.
// A nil result with a nil error means no airport produced a quote.
type RouteSearcher interface {
	SearchWithNearbyFallback(ctx context.Context, req SearchRequest) (*RouteResult, error)
}

// NearbyAirportFinder lists airports near a given airport, closest first.
type NearbyAirportFinder interface {
	Nearby(code string, radiusMiles float64) []NearbyAirport
}

// AirportLookup searches the provider's airport reference data.
type AirportLookup interface {
	SearchAirports(ctx context.Context, keyword string) ([]AirportInfo, error)
}
