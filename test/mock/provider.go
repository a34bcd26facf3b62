// Package mock provides test doubles for the meeting location search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meetingcost/meeting-location-search/internal/domain"
)

// QuoteSearcher is a configurable mock implementation of domain.QuoteSearcher.
// Quotes and errors are configured per route; unknown routes return no quotes.
type QuoteSearcher struct {
	mu     sync.Mutex
	quotes map[string][]domain.FlightQuote
	errs   map[string]error
	delay  time.Duration
	calls  map[string]int
	total  int
}

// NewQuoteSearcher creates a mock that has no quotes for any route.
// The searcher is configured using the builder pattern methods.
func NewQuoteSearcher() *QuoteSearcher {
	return &QuoteSearcher{
		quotes: make(map[string][]domain.FlightQuote),
		errs:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

// WithRoute configures the quotes returned for origin to destination.
func (q *QuoteSearcher) WithRoute(origin, destination string, quotes ...domain.FlightQuote) *QuoteSearcher {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.quotes[domain.RouteKey(origin, destination)] = quotes
	return q
}

// WithRouteError configures the error returned for origin to destination.
func (q *QuoteSearcher) WithRouteError(origin, destination string, err error) *QuoteSearcher {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.errs[domain.RouteKey(origin, destination)] = err
	return q
}

// WithDelay configures the searcher to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (q *QuoteSearcher) WithDelay(d time.Duration) *QuoteSearcher {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.delay = d
	return q
}

// Search implements domain.QuoteSearcher.Search.
func (q *QuoteSearcher) Search(ctx context.Context, req domain.SearchRequest) ([]domain.FlightQuote, error) {
	return q.lookup(ctx, req)
}

// SearchWithFallback implements domain.QuoteSearcher.SearchWithFallback.
// The mock has no relaxed query, so it behaves like Search.
func (q *QuoteSearcher) SearchWithFallback(ctx context.Context, req domain.SearchRequest) ([]domain.FlightQuote, error) {
	return q.lookup(ctx, req)
}

func (q *QuoteSearcher) lookup(ctx context.Context, req domain.SearchRequest) ([]domain.FlightQuote, error) {
	key := req.RouteKey()

	q.mu.Lock()
	q.calls[key]++
	q.total++
	delay := q.delay
	quotes, err := q.quotes[key], q.errs[key]
	q.mu.Unlock()

	// Apply delay if configured
	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	// Check context after delay
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err != nil {
		return nil, err
	}
	return quotes, nil
}

// CallCount returns the number of searches across all routes.
func (q *QuoteSearcher) CallCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.total
}

// RouteCalls returns the number of searches for one route.
func (q *QuoteSearcher) RouteCalls(origin, destination string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.calls[domain.RouteKey(origin, destination)]
}

// Reset resets the call counts to zero.
func (q *QuoteSearcher) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.calls = make(map[string]int)
	q.total = 0
}

// Ensure QuoteSearcher implements domain.QuoteSearcher at compile time.
var _ domain.QuoteSearcher = (*QuoteSearcher)(nil)

// SampleQuote returns a direct round trip from origin to destination.
// The outbound leg leaves at 08:00 on depart and the return at 17:00 on ret.
func SampleQuote(id, origin, destination, price string, depart, ret time.Time) domain.FlightQuote {
	out := depart.Add(8 * time.Hour)
	back := ret.Add(17 * time.Hour)

	return domain.FlightQuote{
		ID:    id,
		Price: domain.Money{Amount: decimal.RequireFromString(price), Currency: "USD"},
		Itineraries: []domain.Itinerary{
			{
				Duration: "PT4H",
				Segments: []domain.Segment{{
					Departure:    domain.SegmentPoint{AirportCode: origin, At: out},
					Arrival:      domain.SegmentPoint{AirportCode: destination, At: out.Add(4 * time.Hour)},
					CarrierCode:  "UA",
					FlightNumber: "1" + id,
				}},
			},
			{
				Duration: "PT4H15M",
				Segments: []domain.Segment{{
					Departure:    domain.SegmentPoint{AirportCode: destination, At: back},
					Arrival:      domain.SegmentPoint{AirportCode: origin, At: back.Add(4*time.Hour + 15*time.Minute)},
					CarrierCode:  "UA",
					FlightNumber: "2" + id,
				}},
			},
		},
		ValidatingAirlines: []string{"UA"},
	}
}
