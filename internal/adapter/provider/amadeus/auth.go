package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/logger"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/ratelimit"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/timeutil"
)

// TokenExpiryBuffer is how long before expiry a cached token stops being reused.
const TokenExpiryBuffer = 60 * time.Second

const tokenPath = "/v1/security/oauth2/token"

// TokenSource supplies bearer tokens for provider requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

// AuthTokenCache fetches client-credentials tokens and reuses them until shortly before expiry.
// It is safe for concurrent use; overlapping refreshes share one request.
type AuthTokenCache struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	clock      timeutil.Clock
	log        *logger.Logger

	// refreshTimeout bounds a shared fetch, which outlives any one caller's context
	refreshTimeout time.Duration

	mu        sync.Mutex
	token     string
	expiresAt time.Time

	refresh singleflight.Group
}

// NewAuthTokenCache creates a token cache. The limiter is shared with the search client.
func NewAuthTokenCache(cfg Config, httpClient *http.Client, limiter ratelimit.Limiter, clock timeutil.Clock, log *logger.Logger) *AuthTokenCache {
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
	refreshTimeout := cfg.Timeout
	if refreshTimeout <= 0 {
		refreshTimeout = DefaultConfig().Timeout
	}

	return &AuthTokenCache{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: httpClient,
		limiter:    limiter,
		clock:      clock,
		log:        log.WithComponent("amadeus_auth"),

		refreshTimeout: refreshTimeout,
	}
}

// Token returns a valid bearer token, fetching a new one when the cached one is
// missing or within TokenExpiryBuffer of expiring.
func (c *AuthTokenCache) Token(ctx context.Context) (string, error) {
	if token, ok := c.cached(); ok {
		return token, nil
	}

	// The refresh is shared, so a caller that goes away must not cancel it for the others.
	ch := c.refresh.DoChan("token", func() (interface{}, error) {
		if token, ok := c.cached(); ok {
			return token, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.refreshTimeout)
		defer cancel()
		return c.fetch(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Invalidate drops the cached token so the next call fetches a fresh one.
func (c *AuthTokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiresAt = time.Time{}
}

func (c *AuthTokenCache) cached() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" {
		return "", false
	}
	if !c.clock.Now().Add(TokenExpiryBuffer).Before(c.expiresAt) {
		return "", false
	}
	return c.token, true
}

func (c *AuthTokenCache) fetch(ctx context.Context) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", domain.NewProviderError(ProviderName, fmt.Errorf("%w: %v", domain.ErrAuthenticationFailed, err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", domain.NewProviderError(ProviderName, fmt.Errorf("%w: %v", domain.ErrNetworkError, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewProviderError(ProviderName, fmt.Errorf("%w: reading token response: %v", domain.ErrNetworkError, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Msg("token request rejected")
		return "", &domain.ProviderError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %s", domain.ErrAuthenticationFailed, errorDetail(body)),
		}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", domain.NewProviderError(ProviderName, fmt.Errorf("%w: invalid token response: %v", domain.ErrAuthenticationFailed, err))
	}
	if tr.AccessToken == "" {
		return "", domain.NewProviderError(ProviderName, fmt.Errorf("%w: empty access token", domain.ErrAuthenticationFailed))
	}

	c.mu.Lock()
	c.token = tr.AccessToken
	c.expiresAt = c.clock.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	c.mu.Unlock()

	c.log.Debug().Int("expires_in", tr.ExpiresIn).Msg("access token refreshed")

	return tr.AccessToken, nil
}

var _ TokenSource = (*AuthTokenCache)(nil)
