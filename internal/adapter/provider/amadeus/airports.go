package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/retry"
)

const locationsPath = "/v1/reference-data/locations"

// Result caps for keyword and state lookups.
const (
	keywordLimit = 10
	stateLimit   = 20
)

// SearchAirports looks up airports by city name, airport name or code. A
// two-letter alphabetic keyword is treated as a US state code. Throttled
// lookups are retried with backoff.
func (c *Client) SearchAirports(ctx context.Context, keyword string) ([]domain.AirportInfo, error) {
	keyword = strings.TrimSpace(keyword)
	if len(keyword) < 2 {
		return nil, domain.WrapInvalidRequest("keyword must be at least 2 characters")
	}

	params := url.Values{}
	params.Set("subType", "AIRPORT")
	params.Set("view", "FULL")
	params.Set("page[offset]", "0")
	params.Set("sort", "analytics.travelers.score")

	var stateCode string
	limit := keywordLimit
	if isStateCode(keyword) {
		stateCode = strings.ToUpper(keyword)
		limit = stateLimit
		params.Set("countryCode", "US")
	} else {
		params.Set("keyword", strings.ToUpper(keyword))
	}
	params.Set("page[limit]", strconv.Itoa(limit))

	cfg := retry.ProviderConfig.
		WithRetryIf(domain.IsRetryable).
		WithSleep(c.clock.Sleep)

	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.get(ctx, locationsPath, params)
	}, cfg)
	if err != nil {
		return nil, err
	}

	var resp locationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("%w: invalid locations response: %v", domain.ErrNetworkError, err))
	}

	return normalizeLocations(resp.Data, stateCode, limit), nil
}

func isStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

var _ domain.AirportLookup = (*Client)(nil)
