package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"

	"github.com/meetingcost/meeting-location-search/internal/infrastructure/logger"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/timeutil"
)

// RedisRetryAfter is how long Wait stays on the in-process fallback after Redis fails.
const RedisRetryAfter = 30 * time.Second

// allower is the subset of *redis_rate.Limiter used here.
type allower interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// Redis is a GCRA limiter stored in Redis, shared by every process using the same key.
// When Redis cannot be reached it spaces requests with an in-process Interval
// instead, and tries Redis again after RedisRetryAfter.
type Redis struct {
	limiter  allower
	fallback *Interval
	key      string
	limit    redis_rate.Limit
	clock    timeutil.Clock
	log      *logger.Logger

	mu        sync.Mutex
	downUntil time.Time
}

// NewRedis creates a distributed limiter allowing one request per interval for key.
func NewRedis(limiter *redis_rate.Limiter, key string, interval time.Duration, clock timeutil.Clock, log *logger.Logger) *Redis {
	return newRedis(limiter, key, interval, clock, log)
}

func newRedis(limiter allower, key string, interval time.Duration, clock timeutil.Clock, log *logger.Logger) *Redis {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Redis{
		limiter:  limiter,
		fallback: NewInterval(interval),
		key:      "ratelimit:" + key,
		limit:    redis_rate.Limit{Rate: 1, Burst: 1, Period: interval},
		clock:    clock,
		log:      log.WithComponent("ratelimit"),
	}
}

// Wait polls the shared budget, sleeping for the advised retry-after between polls.
// It only fails when ctx ends.
func (l *Redis) Wait(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.degraded() {
			return l.fallback.Wait(ctx)
		}

		res, err := l.limiter.Allow(ctx, l.key, l.limit)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			l.markDown()
			l.log.Warn().Err(err).Str("key", l.key).Dur("retry_after", RedisRetryAfter).
				Msg("redis rate limiter unavailable, spacing requests in process")
			return l.fallback.Wait(ctx)
		}
		if res.Allowed > 0 {
			return nil
		}

		wait := res.RetryAfter
		if wait <= 0 {
			wait = l.limit.Period
		}
		if err := l.clock.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func (l *Redis) degraded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.clock.Now().Before(l.downUntil)
}

func (l *Redis) markDown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.downUntil = l.clock.Now().Add(RedisRetryAfter)
}

var _ Limiter = (*Redis)(nil)
