package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly with only credentials set.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)
	setCredentials(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "2m30s", cfg.Server.WriteTimeout.String(), "default write timeout")
	assert.Equal(t, "1M", cfg.Server.BodyLimit)

	// Provider defaults
	assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, "USD", cfg.Amadeus.Currency)
	assert.Equal(t, "100ms", cfg.Amadeus.RequestInterval.String())
	assert.Equal(t, "15s", cfg.Amadeus.RequestTimeout.String())
	assert.Equal(t, 2000, cfg.Amadeus.MaxPrice)
	assert.Equal(t, 5000, cfg.Amadeus.FallbackMaxPrice)

	// Search defaults
	assert.Equal(t, "2m0s", cfg.Search.RunTimeout.String())
	assert.Equal(t, "2s", cfg.Search.RateLimitCooldown.String())
	assert.Equal(t, 3, cfg.Search.AuthFailureLimit)
	assert.Equal(t, 60.0, cfg.Search.RadiusMiles)
	assert.Equal(t, "200ms", cfg.Search.CandidateDelay.String())

	// Cache defaults
	assert.Empty(t, cfg.Cache.RedisAddr)
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, "15m0s", cfg.Cache.QuoteTTL.String())
	assert.Equal(t, "amadeus", cfg.Cache.LimiterKey)

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
	assert.Equal(t, "meeting-location-search", cfg.App.Name)
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)
	setCredentials(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":                "3000",
		"SERVER_WRITE_TIMEOUT":       "5m",
		"AMADEUS_BASE_URL":           "https://api.amadeus.com",
		"AMADEUS_CURRENCY":           "EUR",
		"AMADEUS_REQUEST_INTERVAL":   "0s",
		"SEARCH_RUN_TIMEOUT":         "4m",
		"SEARCH_AUTH_FAILURE_LIMIT":  "0",
		"SEARCH_RADIUS_MILES":        "80.5",
		"SEARCH_RATE_LIMIT_COOLDOWN": "500ms",
		"REDIS_ADDR":                 "localhost:6379",
		"REDIS_DB":                   "2",
		"CACHE_QUOTE_TTL":            "1h",
		"LOG_LEVEL":                  "debug",
		"LOG_FORMAT":                 "console",
		"LOG_CALLER":                 "true",
		"APP_ENV":                    "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "5m0s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "https://api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, "EUR", cfg.Amadeus.Currency)
	assert.Zero(t, cfg.Amadeus.RequestInterval)
	assert.Equal(t, "4m0s", cfg.Search.RunTimeout.String())
	assert.Equal(t, 0, cfg.Search.AuthFailureLimit)
	assert.Equal(t, 80.5, cfg.Search.RadiusMiles)
	assert.Equal(t, "500ms", cfg.Search.RateLimitCooldown.String())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 2, cfg.Cache.RedisDB)
	assert.Equal(t, "1h0m0s", cfg.Cache.QuoteTTL.String())
	assert.Equal(t, "production", cfg.App.Env)

	lc := cfg.LoggerConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "console", lc.Format)
	assert.True(t, lc.EnableCaller)
	assert.Equal(t, "meeting-location-search", lc.ServiceName)
}

// TestLoad_Validation covers every rejected setting.
func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{"port zero", map[string]string{"SERVER_PORT": "0"}, "SERVER_PORT"},
		{"port too high", map[string]string{"SERVER_PORT": "70000"}, "SERVER_PORT"},
		{"read timeout zero", map[string]string{"SERVER_READ_TIMEOUT": "0s"}, "SERVER_READ_TIMEOUT"},
		{"write timeout zero", map[string]string{"SERVER_WRITE_TIMEOUT": "0s"}, "SERVER_WRITE_TIMEOUT"},
		{"missing api key", map[string]string{"AMADEUS_API_KEY": ""}, "AMADEUS_API_KEY"},
		{"missing api secret", map[string]string{"AMADEUS_API_SECRET": ""}, "AMADEUS_API_SECRET"},
		{"bad currency", map[string]string{"AMADEUS_CURRENCY": "EURO"}, "AMADEUS_CURRENCY"},
		{"negative interval", map[string]string{"AMADEUS_REQUEST_INTERVAL": "-1s"}, "AMADEUS_REQUEST_INTERVAL"},
		{"request timeout zero", map[string]string{"AMADEUS_REQUEST_TIMEOUT": "0s"}, "AMADEUS_REQUEST_TIMEOUT"},
		{"negative max price", map[string]string{"AMADEUS_MAX_PRICE": "-1"}, "AMADEUS_MAX_PRICE"},
		{"run timeout zero", map[string]string{"SEARCH_RUN_TIMEOUT": "0s"}, "SEARCH_RUN_TIMEOUT"},
		{"run timeout beyond write timeout", map[string]string{"SEARCH_RUN_TIMEOUT": "3m"}, "should be less than SERVER_WRITE_TIMEOUT"},
		{"negative cooldown", map[string]string{"SEARCH_RATE_LIMIT_COOLDOWN": "-2s"}, "SEARCH_RATE_LIMIT_COOLDOWN"},
		{"negative auth limit", map[string]string{"SEARCH_AUTH_FAILURE_LIMIT": "-1"}, "SEARCH_AUTH_FAILURE_LIMIT"},
		{"radius zero", map[string]string{"SEARCH_RADIUS_MILES": "0"}, "SEARCH_RADIUS_MILES"},
		{"radius too wide", map[string]string{"SEARCH_RADIUS_MILES": "501"}, "SEARCH_RADIUS_MILES"},
		{"negative candidate delay", map[string]string{"SEARCH_CANDIDATE_DELAY": "-1ms"}, "SEARCH_CANDIDATE_DELAY"},
		{"negative redis db", map[string]string{"REDIS_DB": "-1"}, "REDIS_DB"},
		{"ttl zero", map[string]string{"CACHE_QUOTE_TTL": "0s"}, "CACHE_QUOTE_TTL"},
		{"log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"app env", map[string]string{"APP_ENV": "test"}, "APP_ENV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setCredentials(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestLoad_ParseError tests that malformed values are reported by the parser.
func TestLoad_ParseError(t *testing.T) {
	clearEnvVars(t)
	setCredentials(t)
	setEnvVars(t, map[string]string{"SEARCH_CANDIDATE_DELAY": "soon"})

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)
	setCredentials(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)

	assert.Panics(t, func() {
		MustLoad()
	}, "missing credentials must panic")
}

func TestConfig_Environment(t *testing.T) {
	tests := []struct {
		env         string
		development bool
		production  bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{App: AppConfig{Env: tt.env}}
			assert.Equal(t, tt.development, cfg.IsDevelopment())
			assert.Equal(t, tt.production, cfg.IsProduction())
		})
	}
}

// clearEnvVars unsets all config-related environment variables for the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"SERVER_BODY_LIMIT",
		"AMADEUS_BASE_URL",
		"AMADEUS_API_KEY",
		"AMADEUS_API_SECRET",
		"AMADEUS_CURRENCY",
		"AMADEUS_REQUEST_INTERVAL",
		"AMADEUS_REQUEST_TIMEOUT",
		"AMADEUS_MAX_PRICE",
		"AMADEUS_FALLBACK_MAX_PRICE",
		"SEARCH_RUN_TIMEOUT",
		"SEARCH_RATE_LIMIT_COOLDOWN",
		"SEARCH_AUTH_FAILURE_LIMIT",
		"SEARCH_RADIUS_MILES",
		"SEARCH_CANDIDATE_DELAY",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"CACHE_QUOTE_TTL",
		"RATE_LIMIT_KEY",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"LOG_CALLER",
		"APP_ENV",
		"SERVICE_NAME",
	}
	for _, v := range envVars {
		// t.Setenv restores the original value after the test.
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func setCredentials(t *testing.T) {
	t.Helper()
	setEnvVars(t, map[string]string{
		"AMADEUS_API_KEY":    "key",
		"AMADEUS_API_SECRET": "secret",
	})
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
