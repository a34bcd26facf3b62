// Package cache keeps provider quotes in Redis across search runs.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/logger"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/timeutil"
)

// DefaultTTL is how long quotes are served from cache.
const DefaultTTL = 15 * time.Minute

// RedisClient is the subset of the redis client used by the cache.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// QuoteCache decorates a QuoteSearcher with a Redis read-through cache.
// Only non-empty results are stored. Redis failures are logged and the
// provider is queried as if the entry were missing.
type QuoteCache struct {
	next     domain.QuoteSearcher
	redis    RedisClient
	ttl      time.Duration
	currency string
	log      *logger.Logger
}

// NewQuoteCache wraps next. A non-positive ttl uses DefaultTTL.
func NewQuoteCache(next domain.QuoteSearcher, redis RedisClient, ttl time.Duration, currency string, log *logger.Logger) *QuoteCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &QuoteCache{
		next:     next,
		redis:    redis,
		ttl:      ttl,
		currency: currency,
		log:      log.WithComponent("quote_cache"),
	}
}

// Key builds the cache key for a request and query mode.
func (c *QuoteCache) Key(mode string, req domain.SearchRequest) string {
	return fmt.Sprintf("quotes:%s:%s:%s:%s:%s:%s",
		mode,
		c.currency,
		domain.NormalizeAirportCode(req.Origin),
		domain.NormalizeAirportCode(req.Destination),
		timeutil.FormatDate(req.DepartureDate),
		timeutil.FormatDate(req.ReturnDate),
	)
}

// Search serves the direct query from cache when possible.
func (c *QuoteCache) Search(ctx context.Context, req domain.SearchRequest) ([]domain.FlightQuote, error) {
	return c.through(ctx, c.Key("direct", req), func() ([]domain.FlightQuote, error) {
		return c.next.Search(ctx, req)
	})
}

// SearchWithFallback serves the direct-then-relaxed query from cache when possible.
func (c *QuoteCache) SearchWithFallback(ctx context.Context, req domain.SearchRequest) ([]domain.FlightQuote, error) {
	return c.through(ctx, c.Key("fallback", req), func() ([]domain.FlightQuote, error) {
		return c.next.SearchWithFallback(ctx, req)
	})
}

func (c *QuoteCache) through(ctx context.Context, key string, load func() ([]domain.FlightQuote, error)) ([]domain.FlightQuote, error) {
	if quotes, ok := c.get(ctx, key); ok {
		c.log.Debug().Str("key", key).Int("quotes", len(quotes)).Msg("cache hit")
		return quotes, nil
	}

	quotes, err := load()
	if err != nil || len(quotes) == 0 {
		return quotes, err
	}

	c.set(ctx, key, quotes)
	return quotes, nil
}

func (c *QuoteCache) get(ctx context.Context, key string) ([]domain.FlightQuote, bool) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil, false
	}

	var quotes []domain.FlightQuote
	if err := json.Unmarshal(data, &quotes); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cache entry")
		return nil, false
	}
	return quotes, true
}

func (c *QuoteCache) set(ctx context.Context, key string, quotes []domain.FlightQuote) {
	data, err := json.Marshal(quotes)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("failed to marshal quotes")
		return
	}

	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

var _ domain.QuoteSearcher = (*QuoteCache)(nil)
