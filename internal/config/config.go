// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/meetingcost/meeting-location-search/internal/infrastructure/logger"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Amadeus AmadeusConfig
	Search  SearchConfig
	Cache   CacheConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
// WriteTimeout must cover a whole meeting search.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"150s"`
	BodyLimit    string        `env:"SERVER_BODY_LIMIT" envDefault:"1M"`
}

// AmadeusConfig holds the flight provider connection settings.
type AmadeusConfig struct {
	BaseURL   string `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	APIKey    string `env:"AMADEUS_API_KEY"`
	APISecret string `env:"AMADEUS_API_SECRET"`
	Currency  string `env:"AMADEUS_CURRENCY" envDefault:"USD"`

	// RequestInterval is the minimum gap between two provider requests
	RequestInterval time.Duration `env:"AMADEUS_REQUEST_INTERVAL" envDefault:"100ms"`

	// RequestTimeout applies to each HTTP request
	RequestTimeout time.Duration `env:"AMADEUS_REQUEST_TIMEOUT" envDefault:"15s"`

	// MaxPrice and FallbackMaxPrice cap offer prices; zero sends no ceiling
	MaxPrice         int `env:"AMADEUS_MAX_PRICE" envDefault:"2000"`
	FallbackMaxPrice int `env:"AMADEUS_FALLBACK_MAX_PRICE" envDefault:"5000"`
}

// SearchConfig holds meeting search behaviour.
type SearchConfig struct {
	RunTimeout        time.Duration `env:"SEARCH_RUN_TIMEOUT" envDefault:"2m"`
	RateLimitCooldown time.Duration `env:"SEARCH_RATE_LIMIT_COOLDOWN" envDefault:"2s"`
	AuthFailureLimit  int           `env:"SEARCH_AUTH_FAILURE_LIMIT" envDefault:"3"`
	RadiusMiles       float64       `env:"SEARCH_RADIUS_MILES" envDefault:"60"`
	CandidateDelay    time.Duration `env:"SEARCH_CANDIDATE_DELAY" envDefault:"200ms"`
}

// CacheConfig holds the Redis settings. An empty address disables the quote
// cache and the shared rate limiter.
type CacheConfig struct {
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	QuoteTTL      time.Duration `env:"CACHE_QUOTE_TTL" envDefault:"15m"`
	LimiterKey    string        `env:"RATE_LIMIT_KEY" envDefault:"amadeus"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"SERVICE_NAME" envDefault:"meeting-location-search"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// Provider credentials
	if cfg.Amadeus.APIKey == "" || cfg.Amadeus.APISecret == "" {
		return fmt.Errorf("AMADEUS_API_KEY and AMADEUS_API_SECRET are required")
	}
	if len(cfg.Amadeus.Currency) != 3 {
		return fmt.Errorf("AMADEUS_CURRENCY must be a 3-letter code, got %q", cfg.Amadeus.Currency)
	}
	if cfg.Amadeus.RequestInterval < 0 {
		return fmt.Errorf("AMADEUS_REQUEST_INTERVAL must not be negative")
	}
	if cfg.Amadeus.RequestTimeout <= 0 {
		return fmt.Errorf("AMADEUS_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Amadeus.MaxPrice < 0 || cfg.Amadeus.FallbackMaxPrice < 0 {
		return fmt.Errorf("AMADEUS_MAX_PRICE and AMADEUS_FALLBACK_MAX_PRICE must not be negative")
	}

	// Search behaviour
	if cfg.Search.RunTimeout <= 0 {
		return fmt.Errorf("SEARCH_RUN_TIMEOUT must be positive")
	}
	if cfg.Search.RunTimeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("SEARCH_RUN_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Search.RunTimeout, cfg.Server.WriteTimeout)
	}
	if cfg.Search.RateLimitCooldown < 0 {
		return fmt.Errorf("SEARCH_RATE_LIMIT_COOLDOWN must not be negative")
	}
	if cfg.Search.AuthFailureLimit < 0 {
		return fmt.Errorf("SEARCH_AUTH_FAILURE_LIMIT must not be negative, got %d", cfg.Search.AuthFailureLimit)
	}
	if cfg.Search.RadiusMiles <= 0 || cfg.Search.RadiusMiles > 500 {
		return fmt.Errorf("SEARCH_RADIUS_MILES must be in (0, 500], got %g", cfg.Search.RadiusMiles)
	}
	if cfg.Search.CandidateDelay < 0 {
		return fmt.Errorf("SEARCH_CANDIDATE_DELAY must not be negative")
	}

	if cfg.Cache.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative, got %d", cfg.Cache.RedisDB)
	}
	if cfg.Cache.QuoteTTL <= 0 {
		return fmt.Errorf("CACHE_QUOTE_TTL must be positive")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// CacheEnabled reports whether a Redis address is configured.
func (c *Config) CacheEnabled() bool {
	return c.Cache.RedisAddr != ""
}

// LoggerConfig converts the logging settings for logger.Init.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:        c.Logging.Level,
		Format:       c.Logging.Format,
		EnableCaller: c.Logging.Caller,
		ServiceName:  c.App.Name,
	}
}
