package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/logger"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/timeutil"
)

// Default fallback values.
const (
	DefaultFallbackRadiusMiles = 60.0
	DefaultCandidateDelay      = 200 * time.Millisecond
)

// FallbackConfig contains configuration options for nearby-airport fallback.
type FallbackConfig struct {
	// RadiusMiles bounds the candidate airports around the origin
	RadiusMiles float64

	// CandidateDelay is waited before each candidate airport query
	CandidateDelay time.Duration
}

// DefaultFallbackConfig returns the default configuration.
func DefaultFallbackConfig() FallbackConfig {
	return FallbackConfig{
		RadiusMiles:    DefaultFallbackRadiusMiles,
		CandidateDelay: DefaultCandidateDelay,
	}
}

// FallbackSearchOrchestrator searches a route from the requested origin and,
// when that yields nothing, from nearby airports closest first.
type FallbackSearchOrchestrator struct {
	quotes   domain.QuoteSearcher
	airports domain.NearbyAirportFinder
	cfg      FallbackConfig
	clock    timeutil.Clock
	log      *logger.Logger
}

// NewFallbackSearchOrchestrator creates an orchestrator. If config is nil, defaults are used.
func NewFallbackSearchOrchestrator(quotes domain.QuoteSearcher, airports domain.NearbyAirportFinder, config *FallbackConfig, clock timeutil.Clock, log *logger.Logger) *FallbackSearchOrchestrator {
	cfg := DefaultFallbackConfig()
	if config != nil {
		if config.RadiusMiles > 0 {
			cfg.RadiusMiles = config.RadiusMiles
		}
		if config.CandidateDelay >= 0 {
			cfg.CandidateDelay = config.CandidateDelay
		}
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &FallbackSearchOrchestrator{
		quotes:   quotes,
		airports: airports,
		cfg:      cfg,
		clock:    clock,
		log:      log.WithComponent("fallback_search"),
	}
}

// SearchWithNearbyFallback returns the first non-empty quote list, trying the
// requested origin and then each nearby airport. It returns nil, nil when no
// airport has quotes.
//
// Errors on the requested origin are returned. On candidates, throttling,
// authentication and context errors are returned; other errors skip the candidate.
func (o *FallbackSearchOrchestrator) SearchWithNearbyFallback(ctx context.Context, req domain.SearchRequest) (*domain.RouteResult, error) {
	origin := domain.NormalizeAirportCode(req.Origin)
	req.Origin = origin
	req.Destination = domain.NormalizeAirportCode(req.Destination)
	log := o.log.WithRoute(origin, req.Destination)

	quotes, err := o.quotes.SearchWithFallback(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(quotes) > 0 {
		return &domain.RouteResult{
			Quotes:          quotes,
			OriginalAirport: origin,
			UsedAirport:     origin,
		}, nil
	}

	candidates := o.airports.Nearby(origin, o.cfg.RadiusMiles)
	if len(candidates) == 0 {
		log.Info().Msg("no direct quotes and no nearby airports to try")
		return nil, nil
	}

	log.Debug().Int("candidates", len(candidates)).Msg("no direct quotes, trying nearby airports")

	for _, c := range candidates {
		if c.Code == req.Destination {
			continue
		}

		if err := o.clock.Sleep(ctx, o.cfg.CandidateDelay); err != nil {
			return nil, err
		}

		quotes, err := o.quotes.SearchWithFallback(ctx, req.WithOrigin(c.Code))
		if err != nil {
			if isFatalCandidateError(ctx, err) {
				return nil, err
			}
			log.Warn().Err(err).Str("candidate", c.Code).Msg("nearby airport search failed")
			continue
		}

		if len(quotes) > 0 {
			log.Info().
				Str("used_airport", c.Code).
				Float64("distance_miles", c.DistanceMiles).
				Int("quotes", len(quotes)).
				Msg("route served from nearby airport")

			return &domain.RouteResult{
				Quotes:          quotes,
				OriginalAirport: origin,
				UsedAirport:     c.Code,
				DistanceMiles:   c.DistanceMiles,
				UsedAirportName: c.Name,
			}, nil
		}
	}

	log.Info().Int("candidates", len(candidates)).Msg("no quotes from any nearby airport")
	return nil, nil
}

func isFatalCandidateError(ctx context.Context, err error) bool {
	return ctx.Err() != nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		domain.IsRateLimitExceeded(err) ||
		domain.IsAuthenticationFailed(err)
}

var _ domain.RouteSearcher = (*FallbackSearchOrchestrator)(nil)
