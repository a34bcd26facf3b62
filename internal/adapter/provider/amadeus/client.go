// Package amadeus is the flight quote and airport reference adapter for the
// Amadeus self-service API.
//
// Every request, including token fetches, passes through one shared rate
// limiter. Provider statuses are mapped onto the domain error kinds so callers
// never see raw HTTP codes.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/logger"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/ratelimit"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/timeutil"
)

// ProviderName identifies this provider in errors and logs.
const ProviderName = "amadeus"

// DefaultBaseURL is the provider's test environment.
const DefaultBaseURL = "https://test.api.amadeus.com"

const offersPath = "/v2/shopping/flight-offers"

// Config holds the provider connection and query settings.
type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string

	// Currency is requested for every offer price
	Currency string

	// MaxResults and MaxPrice bound the direct query. A zero MaxPrice takes the
	// default ceiling and a negative one omits the parameter.
	MaxResults int
	MaxPrice   int

	// FallbackMaxResults and FallbackMaxPrice bound the relaxed retry, with the same zero and negative rules.
	FallbackMaxResults int
	FallbackMaxPrice   int

	// Timeout applies to each HTTP request.
	Timeout time.Duration
}

// DefaultConfig returns the query settings used by the service.
func DefaultConfig() Config {
	return Config{
		BaseURL:            DefaultBaseURL,
		Currency:           "USD",
		MaxResults:         5,
		MaxPrice:           2000,
		FallbackMaxResults: 10,
		FallbackMaxPrice:   5000,
		Timeout:            15 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Currency == "" {
		c.Currency = def.Currency
	}
	if c.MaxResults <= 0 {
		c.MaxResults = def.MaxResults
	}
	if c.FallbackMaxResults <= 0 {
		c.FallbackMaxResults = def.FallbackMaxResults
	}
	if c.MaxPrice == 0 {
		c.MaxPrice = def.MaxPrice
	}
	if c.FallbackMaxPrice == 0 {
		c.FallbackMaxPrice = def.FallbackMaxPrice
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	return c
}

// queryLimits are the constraints that differ between the direct and relaxed query.
type queryLimits struct {
	max         int
	maxPrice    int
	travelClass string
}

// Client queries round-trip flight offers and airport reference data.
type Client struct {
	cfg        Config
	httpClient *http.Client
	tokens     TokenSource
	limiter    ratelimit.Limiter
	clock      timeutil.Clock
	log        *logger.Logger
}

// New creates a client with its own token cache. The limiter is shared by
// token fetches and searches.
func New(cfg Config, limiter ratelimit.Limiter, clock timeutil.Clock, log *logger.Logger) *Client {
	cfg = cfg.withDefaults()
	httpClient := &http.Client{Timeout: cfg.Timeout}
	tokens := NewAuthTokenCache(cfg, httpClient, limiter, clock, log)
	return NewWithTokenSource(cfg, httpClient, tokens, limiter, clock, log)
}

// NewWithTokenSource creates a client around an existing token source.
func NewWithTokenSource(cfg Config, httpClient *http.Client, tokens TokenSource, limiter ratelimit.Limiter, clock timeutil.Clock, log *logger.Logger) *Client {
	cfg = cfg.withDefaults()
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if limiter == nil {
		limiter = ratelimit.NewInterval(0)
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		tokens:     tokens,
		limiter:    limiter,
		clock:      clock,
		log:        log.WithComponent("amadeus"),
	}
}

// Search runs one round-trip query. An empty result is not an error.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) ([]domain.FlightQuote, error) {
	return c.search(ctx, req, queryLimits{
		max:      c.cfg.MaxResults,
		maxPrice: c.cfg.MaxPrice,
	})
}

// SearchWithFallback runs the direct query and, when it yields nothing, repeats it
// once with a higher result cap, a higher price ceiling and economy class.
func (c *Client) SearchWithFallback(ctx context.Context, req domain.SearchRequest) ([]domain.FlightQuote, error) {
	quotes, err := c.Search(ctx, req)
	if err != nil || len(quotes) > 0 {
		return quotes, err
	}

	c.log.WithRoute(req.Origin, req.Destination).Debug().Msg("no offers, retrying with relaxed constraints")

	return c.search(ctx, req, queryLimits{
		max:         c.cfg.FallbackMaxResults,
		maxPrice:    c.cfg.FallbackMaxPrice,
		travelClass: "ECONOMY",
	})
}

func (c *Client) search(ctx context.Context, req domain.SearchRequest, limits queryLimits) ([]domain.FlightQuote, error) {
	origin := domain.NormalizeAirportCode(req.Origin)
	destination := domain.NormalizeAirportCode(req.Destination)
	if !domain.IsValidAirportCode(origin) {
		return nil, domain.WrapInvalidRequest("origin %q is not a valid airport code", req.Origin)
	}
	if !domain.IsValidAirportCode(destination) {
		return nil, domain.WrapInvalidRequest("destination %q is not a valid airport code", req.Destination)
	}

	params := url.Values{}
	params.Set("originLocationCode", origin)
	params.Set("destinationLocationCode", destination)
	params.Set("departureDate", timeutil.FormatDate(req.DepartureDate))
	params.Set("returnDate", timeutil.FormatDate(req.ReturnDate))
	params.Set("adults", "1")
	params.Set("currencyCode", c.cfg.Currency)
	params.Set("max", strconv.Itoa(limits.max))
	params.Set("nonStop", "false")
	if limits.maxPrice > 0 {
		params.Set("maxPrice", strconv.Itoa(limits.maxPrice))
	}
	if limits.travelClass != "" {
		params.Set("travelClass", limits.travelClass)
	}

	body, err := c.get(ctx, offersPath, params)
	if err != nil {
		return nil, err
	}

	var resp offersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("%w: invalid offers response: %v", domain.ErrNetworkError, err))
	}

	quotes := normalize(resp.Data, c.cfg.Currency)

	c.log.WithRoute(origin, destination).Debug().
		Int("offers", len(resp.Data)).
		Int("quotes", len(quotes)).
		Str("travel_class", limits.travelClass).
		Msg("flight offers received")

	return quotes, nil
}

// get performs an authenticated GET and returns the body of a 200 response.
// Any other status is mapped to a domain error; a 401 also drops the cached token.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("%w: %v", domain.ErrNetworkError, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("%w: reading response: %v", domain.ErrNetworkError, err))
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Invalidate()
	}

	c.log.Warn().
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("provider request failed")

	return nil, domain.NewStatusError(ProviderName, resp.StatusCode, errorDetail(body))
}

var _ domain.QuoteSearcher = (*Client)(nil)
