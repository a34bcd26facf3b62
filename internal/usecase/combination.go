package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/logger"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/retry"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/timeutil"
)

// Default engine values.
const (
	DefaultRateLimitCooldown = 2 * time.Second
	DefaultAuthFailureLimit  = 3
)

// Progress weights of the two phases.
const (
	routePhaseWeight     = 0.7
	expansionPhaseWeight = 0.3
)

// ProgressFunc receives the completed fraction of a run, in [0, 1], and a
// short description of the current step.
// Calls are made synchronously on the searching goroutine and never decrease.
type ProgressFunc func(fraction float64, message string)

// EngineConfig contains configuration options for the combination search engine.
type EngineConfig struct {
	// RateLimitCooldown is waited before the single retry of a throttled route
	RateLimitCooldown time.Duration

	// AuthFailureLimit stops provider calls after this many consecutive
	// authentication failures. Zero disables the short-circuit.
	AuthFailureLimit int
}

// DefaultEngineConfig returns the default configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		RateLimitCooldown: DefaultRateLimitCooldown,
		AuthFailureLimit:  DefaultAuthFailureLimit,
	}
}

// CombinationSearchEngine finds the cheapest fare for every attendee to every
// candidate city, querying each unique (home airport, city) route only once.
type CombinationSearchEngine struct {
	routes domain.RouteSearcher
	cfg    EngineConfig
	clock  timeutil.Clock
	log    *logger.Logger
	newID  func() string
}

// NewCombinationSearchEngine creates an engine. If config is nil, defaults are used.
func NewCombinationSearchEngine(routes domain.RouteSearcher, config *EngineConfig, clock timeutil.Clock, log *logger.Logger) *CombinationSearchEngine {
	cfg := DefaultEngineConfig()
	if config != nil {
		if config.RateLimitCooldown >= 0 {
			cfg.RateLimitCooldown = config.RateLimitCooldown
		}
		if config.AuthFailureLimit >= 0 {
			cfg.AuthFailureLimit = config.AuthFailureLimit
		}
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &CombinationSearchEngine{
		routes: routes,
		cfg:    cfg,
		clock:  clock,
		log:    log.WithComponent("combination_search"),
		newID:  uuid.NewString,
	}
}

// route is one unique origin/destination pair.
type route struct {
	origin      string
	destination string
}

func (r route) key() string {
	return domain.RouteKey(r.origin, r.destination)
}

// routeEntry is the cached outcome of a route; empty quotes mean no fare.
type routeEntry struct {
	quotes      []domain.FlightQuote
	alternative *domain.AlternativeAirportInfo
}

// SearchAllCombinations runs the two-phase search.
//
// Phase one queries every unique route sequentially and caches the outcome;
// a failing route is cached empty and never aborts the run. Phase two expands
// cached routes into one result per attendee and city.
//
// The only error returned is an invalid meeting. On cancellation the results
// gathered so far are returned with Stats.Cancelled set.
func (e *CombinationSearchEngine) SearchAllCombinations(ctx context.Context, meeting *domain.Meeting, onProgress ProgressFunc) ([]domain.FlightSearchResult, *domain.RunStats, error) {
	if meeting == nil {
		return nil, nil, domain.WrapInvalidRequest("meeting is required")
	}
	if err := meeting.Validate(); err != nil {
		return nil, nil, err
	}

	start := e.clock.Now()
	stats := &domain.RunStats{StartedAt: start}
	progress := newProgressReporter(onProgress)
	log := e.log.WithMeeting(meeting.ID)

	locations := uniqueLocations(meeting.Locations)
	routes := planRoutes(meeting.Attendees, locations, stats)
	stats.TotalRoutes = len(routes)

	log.Info().
		Int("attendees", len(meeting.Attendees)).
		Int("locations", len(locations)).
		Int("routes", len(routes)).
		Msg("starting combination search")

	cache := e.searchRoutes(ctx, meeting, routes, stats, progress, log)

	results := e.expand(ctx, meeting, locations, cache, stats, progress)

	if !stats.Cancelled {
		progress.report(1.0, domain.ComputeOptimizationStats(meeting.Attendees, meeting.Locations).Summary())
	}
	stats.DurationMs = e.clock.Now().Sub(start).Milliseconds()

	log.Info().
		Int("results", len(results)).
		Int("routes_with_quotes", stats.RoutesWithQuotes).
		Int("failed_routes", len(stats.FailedRoutes)).
		Bool("cancelled", stats.Cancelled).
		Int64("duration_ms", stats.DurationMs).
		Msg("combination search finished")

	return results, stats, nil
}

// AnalyzeMeeting runs the search and ranks candidate cities by total cost.
func (e *CombinationSearchEngine) AnalyzeMeeting(ctx context.Context, meeting *domain.Meeting, onProgress ProgressFunc) (*domain.MeetingSearchResult, error) {
	results, stats, err := e.SearchAllCombinations(ctx, meeting, onProgress)
	if err != nil {
		return nil, err
	}

	analyses := domain.BuildLocationAnalyses(meeting, results)
	if aggregated := countResults(analyses); aggregated < len(results) {
		e.log.WithMeeting(meeting.ID).Warn().
			Int("excluded", len(results)-aggregated).
			Msg("fares in a different currency left out of city totals")
	}

	out := &domain.MeetingSearchResult{
		MeetingID:    meeting.ID,
		MeetingName:  meeting.Name,
		Analyses:     analyses,
		Optimization: domain.ComputeOptimizationStats(meeting.Attendees, meeting.Locations),
		Stats:        *stats,
		Warnings:     meeting.SearchReadiness(e.clock.Now()),
	}
	if len(out.Analyses) == 0 && !stats.Cancelled {
		out.Message = domain.UserMessage(domain.ErrNoFlightsFound)
	}
	return out, nil
}

// searchRoutes is phase one. Only routes that completed are present in the returned cache.
func (e *CombinationSearchEngine) searchRoutes(ctx context.Context, meeting *domain.Meeting, routes []route, stats *domain.RunStats, progress *progressReporter, log *logger.Logger) map[string]routeEntry {
	cache := make(map[string]routeEntry, len(routes))
	consecutiveAuthFailures := 0

	for i, r := range routes {
		if ctx.Err() != nil {
			stats.Cancelled = true
			log.Info().Int("completed_routes", i).Msg("search cancelled during route phase")
			return cache
		}

		key := r.key()

		if e.cfg.AuthFailureLimit > 0 && consecutiveAuthFailures >= e.cfg.AuthFailureLimit {
			if !stats.AuthShortCircuited {
				stats.AuthShortCircuited = true
				log.Error().Int("failures", consecutiveAuthFailures).Msg("repeated authentication failures, skipping remaining routes")
			}
			cache[key] = routeEntry{}
			stats.FailedRoutes = append(stats.FailedRoutes, domain.RouteIssue{Route: key, Reason: "skipped after repeated authentication failures"})
			progress.report(routePhaseWeight*float64(i+1)/float64(len(routes)), routeMessage(r, i, len(routes)))
			continue
		}

		req := domain.SearchRequest{
			Origin:        r.origin,
			Destination:   r.destination,
			DepartureDate: meeting.ActualStartDate(),
			ReturnDate:    meeting.ActualEndDate(),
		}

		stats.SearchedRoutes++
		res, err := e.searchRoute(ctx, req, stats)
		if err != nil {
			if ctx.Err() != nil {
				stats.Cancelled = true
				log.Info().Int("completed_routes", i).Msg("search cancelled during route phase")
				return cache
			}

			log.WithRoute(r.origin, r.destination).Warn().Err(err).Msg("route search failed")
			cache[key] = routeEntry{}
			stats.FailedRoutes = append(stats.FailedRoutes, domain.RouteIssue{Route: key, Reason: domain.UserMessage(err)})

			if domain.IsAuthenticationFailed(err) {
				consecutiveAuthFailures++
			} else {
				consecutiveAuthFailures = 0
			}
		} else {
			consecutiveAuthFailures = 0
			entry := routeEntry{}
			if res != nil {
				entry.quotes = res.Quotes
				entry.alternative = res.Alternative()
			}
			if len(entry.quotes) > 0 {
				stats.RoutesWithQuotes++
			}
			if entry.alternative != nil {
				stats.AlternativeRoutes++
			}
			cache[key] = entry
		}

		progress.report(routePhaseWeight*float64(i+1)/float64(len(routes)), routeMessage(r, i, len(routes)))
	}

	return cache
}

// searchRoute queries one route, retrying once after a cooldown when throttled.
func (e *CombinationSearchEngine) searchRoute(ctx context.Context, req domain.SearchRequest, stats *domain.RunStats) (*domain.RouteResult, error) {
	cfg := retry.Fixed(2, e.cfg.RateLimitCooldown).
		WithRetryIf(domain.IsRateLimitExceeded).
		WithSleep(e.clock.Sleep).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			stats.RateLimitRetries++
			e.log.WithRoute(req.Origin, req.Destination).Warn().
				Dur("cooldown", delay).
				Msg("rate limited, retrying route after cooldown")
		})

	return retry.DoWithResult(ctx, func() (*domain.RouteResult, error) {
		return e.routes.SearchWithNearbyFallback(ctx, req)
	}, cfg)
}

// expand is phase two: one result per attendee and city whose route has quotes.
// After a cancelled route phase the completed routes are still expanded; a
// cancellation during this phase stops expansion.
func (e *CombinationSearchEngine) expand(ctx context.Context, meeting *domain.Meeting, locations []domain.Location, cache map[string]routeEntry, stats *domain.RunStats, progress *progressReporter) []domain.FlightSearchResult {
	total := len(meeting.Attendees) * len(locations)
	results := make([]domain.FlightSearchResult, 0, total)
	searchedAt := e.clock.Now()
	cancelledEarlier := stats.Cancelled
	done := 0

	for _, attendee := range meeting.Attendees {
		for _, location := range locations {
			if !cancelledEarlier && ctx.Err() != nil {
				stats.Cancelled = true
				e.log.Info().Int("expanded", done).Msg("search cancelled during expansion phase")
				return results
			}

			done++
			entry, ok := cache[domain.RouteKey(attendee.HomeAirport, location.AirportCode)]
			if ok && len(entry.quotes) > 0 {
				results = append(results, e.buildResult(meeting, attendee, location, entry, searchedAt))
			}

			if !stats.Cancelled {
				progress.report(routePhaseWeight+expansionPhaseWeight*float64(done)/float64(total), "Building results")
			}
		}
	}

	return results
}

// buildResult turns the cheapest cached quote into an attendee result.
func (e *CombinationSearchEngine) buildResult(meeting *domain.Meeting, attendee domain.Attendee, location domain.Location, entry routeEntry, searchedAt time.Time) domain.FlightSearchResult {
	quote, _ := domain.CheapestQuote(entry.quotes)

	home := domain.NormalizeAirportCode(attendee.HomeAirport)
	departFrom := home
	if entry.alternative != nil {
		departFrom = entry.alternative.AlternativeAirport
	}
	destination := domain.NormalizeAirportCode(location.AirportCode)

	outbound := placeholderLeg(departFrom, destination, meeting.ActualStartDate())
	if it, ok := quote.Outbound(); ok {
		outbound = legDetails(it, departFrom, destination, meeting.ActualStartDate())
	}

	ret := placeholderLeg(destination, departFrom, meeting.ActualEndDate())
	if it, ok := quote.Return(); ok {
		ret = legDetails(it, destination, departFrom, meeting.ActualEndDate())
	}

	if entry.alternative != nil {
		outbound.IsFromAlternativeAirport = true
		outbound.OriginalRequestedAirport = home
		ret.IsFromAlternativeAirport = true
		ret.OriginalRequestedAirport = home
	}

	return domain.FlightSearchResult{
		ID:                 e.newID(),
		Attendee:           attendee,
		Destination:        location,
		Outbound:           outbound,
		Return:             ret,
		TotalPrice:         quote.Price.Amount,
		Currency:           quote.Price.Currency,
		SearchedAt:         searchedAt,
		AlternativeAirport: entry.alternative,
	}
}

// legDetails summarises an itinerary. Missing segment data falls back to the given airports and date.
func legDetails(it domain.Itinerary, from, to string, date time.Time) domain.FlightDetails {
	leg := placeholderLeg(from, to, date)
	leg.Stops = it.Stops()
	leg.Duration = domain.HumanDuration(it.Duration)

	if len(it.Segments) == 0 {
		return leg
	}

	first := it.Segments[0]
	last := it.Segments[len(it.Segments)-1]

	leg.DepartureAirport = first.Departure.AirportCode
	leg.DepartureTime = first.Departure.At
	leg.ArrivalAirport = last.Arrival.AirportCode
	leg.ArrivalTime = last.Arrival.At
	leg.Airline = domain.AirlineName(first.CarrierCode)
	leg.FlightNumber = first.CarrierCode + first.FlightNumber

	return leg
}

// placeholderLeg is used when the provider returned no itinerary for a direction.
func placeholderLeg(from, to string, date time.Time) domain.FlightDetails {
	return domain.FlightDetails{
		DepartureAirport: from,
		DepartureTime:    date,
		ArrivalAirport:   to,
		ArrivalTime:      date,
	}
}

// uniqueLocations drops locations whose airport code repeats an earlier one.
func uniqueLocations(locations []domain.Location) []domain.Location {
	seen := make(map[string]struct{}, len(locations))
	out := make([]domain.Location, 0, len(locations))
	for _, l := range locations {
		key := domain.NormalizeAirportCode(l.AirportCode)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	return out
}

// planRoutes lists unique routes in attendee then location order.
// Same-airport pairs and malformed codes are recorded in stats and left out.
func planRoutes(attendees []domain.Attendee, locations []domain.Location, stats *domain.RunStats) []route {
	var routes []route
	seen := make(map[string]struct{})

	for _, a := range attendees {
		origin := domain.NormalizeAirportCode(a.HomeAirport)

		for _, l := range locations {
			destination := domain.NormalizeAirportCode(l.AirportCode)
			r := route{origin: origin, destination: destination}
			key := r.key()

			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			switch {
			case !domain.IsValidAirportCode(origin):
				stats.ValidationIssues = append(stats.ValidationIssues, domain.RouteIssue{
					Route:  key,
					Reason: fmt.Sprintf("invalid home airport code %q for %s", a.HomeAirport, a.Name),
				})
			case !domain.IsValidAirportCode(destination):
				stats.ValidationIssues = append(stats.ValidationIssues, domain.RouteIssue{
					Route:  key,
					Reason: fmt.Sprintf("invalid airport code %q for %s", l.AirportCode, l.City),
				})
			case origin == destination:
				stats.SkippedRoutes = append(stats.SkippedRoutes, key)
			default:
				routes = append(routes, r)
			}
		}
	}

	return routes
}

func countResults(analyses []domain.LocationAnalysis) int {
	n := 0
	for _, a := range analyses {
		n += a.AttendeeCount()
	}
	return n
}

func routeMessage(r route, i, total int) string {
	return fmt.Sprintf("Searching %s → %s (%d/%d)", r.origin, r.destination, i+1, total)
}

// progressReporter delivers non-decreasing fractions to a ProgressFunc.
type progressReporter struct {
	fn   ProgressFunc
	last float64
}

func newProgressReporter(fn ProgressFunc) *progressReporter {
	return &progressReporter{fn: fn}
}

func (p *progressReporter) report(fraction float64, message string) {
	if p.fn == nil {
		return
	}
	if fraction > 1 {
		fraction = 1
	}
	if fraction < p.last {
		fraction = p.last
	}
	p.last = fraction
	p.fn(fraction, message)
}
