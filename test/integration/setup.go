// Package integration provides helpers and integration tests for the meeting location search system.
// Integration tests verify that components work together correctly, including
// HTTP handlers, the search engine, the Amadeus client and a fake provider server.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/meetingcost/meeting-location-search/internal/adapter/http"
	"github.com/meetingcost/meeting-location-search/internal/adapter/http/response"
	"github.com/meetingcost/meeting-location-search/internal/adapter/provider/amadeus"
	"github.com/meetingcost/meeting-location-search/internal/airport"
	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/logger"
	"github.com/meetingcost/meeting-location-search/internal/infrastructure/ratelimit"
	"github.com/meetingcost/meeting-location-search/internal/usecase"
	"github.com/meetingcost/meeting-location-search/test/mock"
	"github.com/meetingcost/meeting-location-search/test/testutil"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.Handler
}

// StackConfig tunes the search pipeline built by NewStack. Zero values keep
// provider waits out of tests: no request spacing, no cooldown, no candidate delay.
type StackConfig struct {
	Limiter          ratelimit.Limiter
	AuthFailureLimit int
	RunTimeout       time.Duration
}

// Stack is the full search pipeline talking to a fake provider.
type Stack struct {
	*TestServer
	Client   *amadeus.Client
	UseCase  usecase.MeetingSearchUseCase
	Provider *mock.AmadeusServer
}

// NewStack wires the Amadeus client, fallback orchestrator, engine and use
// case against the fake provider, with the built-in airport table.
func NewStack(provider *mock.AmadeusServer, cfg StackConfig) *Stack {
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = ratelimit.NewInterval(0)
	}

	log := logger.Nop()
	client := amadeus.New(amadeus.Config{
		BaseURL:   provider.URL,
		APIKey:    mock.AmadeusKey,
		APISecret: mock.AmadeusSecret,
		Timeout:   5 * time.Second,
	}, limiter, nil, log)

	uc := newUseCase(client, cfg)

	return &Stack{
		TestServer: NewTestServer(uc, client),
		Client:     client,
		UseCase:    uc,
		Provider:   provider,
	}
}

// NewSearcherStack wires the pipeline on an in-process quote searcher.
// Keyword airport search is not configured.
func NewSearcherStack(quotes domain.QuoteSearcher, cfg StackConfig) (*TestServer, usecase.MeetingSearchUseCase) {
	uc := newUseCase(quotes, cfg)
	return NewTestServer(uc, nil), uc
}

func newUseCase(quotes domain.QuoteSearcher, cfg StackConfig) usecase.MeetingSearchUseCase {
	log := logger.Nop()

	routes := usecase.NewFallbackSearchOrchestrator(quotes, airport.Default(), &usecase.FallbackConfig{
		CandidateDelay: 0,
	}, nil, log)

	engine := usecase.NewCombinationSearchEngine(routes, &usecase.EngineConfig{
		RateLimitCooldown: 0,
		AuthFailureLimit:  cfg.AuthFailureLimit,
	}, nil, log)

	return usecase.NewMeetingSearchUseCase(engine, &usecase.Config{RunTimeout: cfg.RunTimeout})
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.MeetingSearchUseCase, lookup domain.AirportLookup) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewHandler(uc, airport.Default(), lookup)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a meeting search.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/meetings/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// searchEnvelope is the success envelope of a meeting search.
type searchEnvelope struct {
	Success bool                                 `json:"success"`
	Data    httpAdapter.MeetingSearchResponseDTO `json:"data"`
	Error   *response.ErrorDetail                `json:"error"`
}

// ParseSearchResponse parses the response body as a meeting search result.
func (r *Response) ParseSearchResponse() (*httpAdapter.MeetingSearchResponseDTO, error) {
	var env searchEnvelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var env searchEnvelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return env.Error, nil
}

// DefaultMeeting returns a valid three-day meeting 30 days from now with one
// travel day on either side. Ann and Cy fly from LAX, Bob from ORD; the
// candidates are San Francisco and New York.
func DefaultMeeting() httpAdapter.MeetingRequest {
	return httpAdapter.MeetingRequest{
		ID:               "offsite",
		Name:             "Offsite",
		StartDate:        testutil.FutureDate(30),
		NumberOfDays:     3,
		BufferDaysBefore: 1,
		BufferDaysAfter:  1,
		Locations: []httpAdapter.LocationRequest{
			{City: "San Francisco", AirportCode: "SFO", CountryCode: "US"},
			{City: "New York", AirportCode: "JFK", CountryCode: "US"},
		},
		Attendees: []httpAdapter.AttendeeRequest{
			{Name: "Ann", HomeAirport: "LAX"},
			{Name: "Bob", HomeAirport: "ORD"},
			{Name: "Cy", HomeAirport: "LAX"},
		},
	}
}

// DefaultSearchRequest wraps DefaultMeeting in a search body.
func DefaultSearchRequest() httpAdapter.SearchMeetingRequest {
	return httpAdapter.SearchMeetingRequest{Meeting: DefaultMeeting()}
}

// DefaultOffers configures fares for every route of DefaultMeeting:
// San Francisco totals 550 and New York 800.
func DefaultOffers(s *mock.AmadeusServer) *mock.AmadeusServer {
	return s.
		WithOffers("LAX", "SFO", mock.Offer{Price: "150.00", Carrier: "UA", Number: "100"}, mock.Offer{Price: "189.00", Carrier: "AA", Number: "200"}).
		WithOffers("ORD", "SFO", mock.Offer{Price: "250.00", Carrier: "UA", Number: "300"}).
		WithOffers("LAX", "JFK", mock.Offer{Price: "300.00", Carrier: "B6", Number: "400"}).
		WithOffers("ORD", "JFK", mock.Offer{Price: "200.00", Carrier: "AA", Number: "500", Stops: 1})
}
