// Package main is the entry point for the meeting location search service.
//
//	@title						Meeting Location Search API
//	@version					1.0.0
//	@description				Ranks candidate meeting cities by the total round-trip airfare of all attendees.
//	@description				Attendees sharing a home airport are searched once per city, and routes without fares are retried from nearby airports.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/meetingcost/meeting-location-search/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	// Import generated docs for swagger
	_ "github.com/meetingcost/meeting-location-search/docs"

	// Application layers
	"github.com/meetingcost/meeting-location-search/internal/adapter/cache"
	meetinghttp "github.com/meetingcost/meeting-location-search/internal/adapter/http"
	"github.com/meetingcost/meeting-location-search/internal/adapter/http/middleware"
	"github.com/meetingcost/meeting-location-search/internal/adapter/provider/amadeus"
	"github.com/meetingcost/meeting-location-search/internal/airport"
	"github.com/meetingcost/meeting-location-search/internal/config"
	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/logger"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/ratelimit"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/timeutil"
	"github.com/meetingcost/meeting-location-search/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	pingTimeout     = 3 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.Init(cfg.LoggerConfig())

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("redis", cfg.CacheEnabled()).
		Msg("Configuration loaded")

	var rdb *redis.Client
	if cfg.CacheEnabled() {
		rdb = newRedisClient(cfg, log)
		defer rdb.Close()
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.SetupWithConfig(e, log, middleware.Config{
		Recovery:  middleware.DefaultRecoveryConfig(),
		BodyLimit: cfg.Server.BodyLimit,
	})

	// Setup routes
	meetinghttp.RegisterRoutes(e, newHandler(cfg, rdb, log))

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// newRedisClient connects to Redis. A failed ping is logged but not fatal;
// the quote cache treats Redis errors as misses.
func newRedisClient(cfg *config.Config, log *logger.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("Redis is not reachable")
	}
	return rdb
}

// priceCeiling maps a configured zero, meaning no ceiling, onto the client's omit value.
func priceCeiling(v int) int {
	if v == 0 {
		return -1
	}
	return v
}

// newLimiter shares the provider request budget through Redis when available.
func newLimiter(cfg *config.Config, rdb *redis.Client, clock timeutil.Clock, log *logger.Logger) ratelimit.Limiter {
	if rdb == nil {
		return ratelimit.NewInterval(cfg.Amadeus.RequestInterval)
	}
	return ratelimit.NewRedis(redis_rate.NewLimiter(rdb), cfg.Cache.LimiterKey, cfg.Amadeus.RequestInterval, clock, log)
}

// newHandler wires provider, cache, fallback orchestrator, engine and use case.
func newHandler(cfg *config.Config, rdb *redis.Client, log *logger.Logger) *meetinghttp.Handler {
	clock := timeutil.NewRealClock()
	airports := airport.Default()

	client := amadeus.New(amadeus.Config{
		BaseURL:          cfg.Amadeus.BaseURL,
		APIKey:           cfg.Amadeus.APIKey,
		APISecret:        cfg.Amadeus.APISecret,
		Currency:         cfg.Amadeus.Currency,
		MaxPrice:         priceCeiling(cfg.Amadeus.MaxPrice),
		FallbackMaxPrice: priceCeiling(cfg.Amadeus.FallbackMaxPrice),
		Timeout:          cfg.Amadeus.RequestTimeout,
	}, newLimiter(cfg, rdb, clock, log), clock, log)

	var quotes domain.QuoteSearcher = client
	if rdb != nil {
		quotes = cache.NewQuoteCache(client, rdb, cfg.Cache.QuoteTTL, cfg.Amadeus.Currency, log)
	}

	routes := usecase.NewFallbackSearchOrchestrator(quotes, airports, &usecase.FallbackConfig{
		RadiusMiles:    cfg.Search.RadiusMiles,
		CandidateDelay: cfg.Search.CandidateDelay,
	}, clock, log)

	engine := usecase.NewCombinationSearchEngine(routes, &usecase.EngineConfig{
		RateLimitCooldown: cfg.Search.RateLimitCooldown,
		AuthFailureLimit:  cfg.Search.AuthFailureLimit,
	}, clock, log)

	meetings := usecase.NewMeetingSearchUseCase(engine, &usecase.Config{
		RunTimeout: cfg.Search.RunTimeout,
	})

	log.Info().Int("airports", airports.Len()).Str("provider", cfg.Amadeus.BaseURL).Msg("Search pipeline ready")

	return meetinghttp.NewHandler(meetings, airports, client)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
