package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/meetingcost/meeting-location-search/internal/infrastructure/logger"
)

// DefaultBodyLimit caps request bodies; a meeting with a few hundred attendees fits easily.
const DefaultBodyLimit = "1M"

// Config groups the settings of the middleware chain.
type Config struct {
	Recovery RecoveryConfig

	// BodyLimit is an echo size string such as "1M". Empty uses DefaultBodyLimit.
	BodyLimit string
}

// DefaultConfig returns the default chain settings.
func DefaultConfig() Config {
	return Config{
		Recovery:  DefaultRecoveryConfig(),
		BodyLimit: DefaultBodyLimit,
	}
}

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID, so every later log line can carry it
//  2. ContextLogger, the request-scoped logger handlers use
//  3. RequestLogger, one line per request
//  4. Recover, wraps handlers and turns panics into 500s
//  5. BodyLimit, rejects oversized meeting payloads
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log *logger.Logger) {
	SetupWithConfig(e, log, DefaultConfig())
}

// SetupWithConfig registers middleware with custom settings.
func SetupWithConfig(e *echo.Echo, log *logger.Logger, cfg Config) {
	for _, m := range Chain(log, cfg) {
		e.Use(m)
	}
}

// Chain returns all middleware as a slice for use with route groups.
func Chain(log *logger.Logger, cfg Config) []echo.MiddlewareFunc {
	if cfg.BodyLimit == "" {
		cfg.BodyLimit = DefaultBodyLimit
	}
	return []echo.MiddlewareFunc{
		RequestID(),
		ContextLogger(log),
		RequestLogger(log),
		RecoverWithConfig(log, cfg.Recovery),
		echomw.BodyLimit(cfg.BodyLimit),
	}
}
