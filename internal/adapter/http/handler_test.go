package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/meetingcost/meeting-location-search/internal/adapter/http/response"
	"github.com/meetingcost/meeting-location-search/internal/airport"
	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/usecase"
)

// mockUseCase is a mock implementation of MeetingSearchUseCase for testing.
type mockUseCase struct {
	searchFunc       func(ctx context.Context, meeting *domain.Meeting, opts usecase.SearchOptions) (*domain.MeetingSearchResult, error)
	optimizationFunc func(meeting *domain.Meeting) (domain.OptimizationStats, error)
}

func (m *mockUseCase) Search(ctx context.Context, meeting *domain.Meeting, opts usecase.SearchOptions) (*domain.MeetingSearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, meeting, opts)
	}
	return &domain.MeetingSearchResult{MeetingID: meeting.ID}, nil
}

func (m *mockUseCase) Optimization(meeting *domain.Meeting) (domain.OptimizationStats, error) {
	if m.optimizationFunc != nil {
		return m.optimizationFunc(meeting)
	}
	return domain.ComputeOptimizationStats(meeting.Attendees, meeting.Locations), nil
}

// envelope mirrors response.Response with a typed payload.
type envelope[T any] struct {
	Success bool                  `json:"success"`
	Data    T                     `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func testAirportIndex() *airport.Index {
	return airport.NewIndex([]airport.Airport{
		{Code: "SJC", Name: "San Jose International", Latitude: 37.3626, Longitude: -121.9290},
		{Code: "OAK", Name: "Oakland International", Latitude: 37.7213, Longitude: -122.2208},
		{Code: "SFO", Name: "San Francisco International", Latitude: 37.6213, Longitude: -122.3790},
		{Code: "LAX", Name: "Los Angeles International", Latitude: 33.9416, Longitude: -118.4085},
	})
}

// setupTestHandler creates a test Echo instance and Handler.
func setupTestHandler(uc usecase.MeetingSearchUseCase, lookup domain.AirportLookup) (*echo.Echo, *Handler) {
	e := echo.New()
	h := NewHandler(uc, testAirportIndex(), lookup)
	RegisterRoutes(e, h)
	return e, h
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = []byte(b)
	default:
		reqBody, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validMeetingRequest() MeetingRequest {
	return MeetingRequest{
		Name:             "Q3 offsite",
		StartDate:        "2025-09-15",
		NumberOfDays:     3,
		BufferDaysBefore: 1,
		BufferDaysAfter:  1,
		Locations: []LocationRequest{
			{City: "San Francisco", AirportCode: "sfo", CountryCode: "us"},
			{City: "New York", AirportCode: "JFK"},
		},
		Attendees: []AttendeeRequest{
			{Name: "Ann", HomeAirport: "lax"},
			{Name: "Bob", HomeAirport: "ORD"},
		},
	}
}

func sampleResult() *domain.MeetingSearchResult {
	depart := time.Date(2025, 9, 14, 8, 0, 0, 0, time.UTC)
	result := domain.FlightSearchResult{
		ID:          "r-1",
		Attendee:    domain.Attendee{Name: "Ann", HomeAirport: "SJC"},
		Destination: domain.Location{City: "San Francisco", AirportCode: "SFO"},
		Outbound: domain.FlightDetails{
			DepartureAirport: "OAK", DepartureTime: depart,
			ArrivalAirport: "SFO", ArrivalTime: depart.Add(time.Hour),
			Airline: "United Airlines", FlightNumber: "UA10", Duration: "1h",
			IsFromAlternativeAirport: true, OriginalRequestedAirport: "SJC",
		},
		TotalPrice: decimal.RequireFromString("275.5"),
		Currency:   "USD",
		AlternativeAirport: &domain.AlternativeAirportInfo{
			OriginalAirport: "SJC", AlternativeAirport: "OAK",
			DistanceMiles: 29.4, AlternativeAirportName: "Oakland International",
		},
	}

	return &domain.MeetingSearchResult{
		MeetingID: "m-1",
		Analyses: []domain.LocationAnalysis{{
			Location:               domain.Location{City: "San Francisco", AirportCode: "SFO", CountryCode: "US"},
			Results:                []domain.FlightSearchResult{result},
			TotalCost:              decimal.RequireFromString("275.5"),
			AverageCostPerPerson:   decimal.RequireFromString("275.5"),
			Currency:               "USD",
			TotalAttendeesSearched: 2,
		}},
		Stats: domain.RunStats{
			TotalRoutes:      4,
			SearchedRoutes:   4,
			RoutesWithQuotes: 1,
			FailedRoutes:     []domain.RouteIssue{{Route: "ORD-SFO", Reason: "Network connection error"}},
			DurationMs:       1200,
		},
		Warnings: []string{"travel start date is not in the future"},
	}
}

// =====================================================
// Meeting Search Tests
// =====================================================

func TestSearchMeeting_Success(t *testing.T) {
	var gotMeeting *domain.Meeting
	var gotOpts usecase.SearchOptions

	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, meeting *domain.Meeting, opts usecase.SearchOptions) (*domain.MeetingSearchResult, error) {
			gotMeeting, gotOpts = meeting, opts
			return sampleResult(), nil
		},
	}
	e, _ := setupTestHandler(mock, nil)

	maxAvg := 400.0
	rec := makeRequest(e, http.MethodPost, "/api/v1/meetings/search", SearchMeetingRequest{
		Meeting: validMeetingRequest(),
		Filters: &FilterDTO{MaxAverageCost: &maxAvg, DirectOnly: true},
		SortBy:  "city",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// request conversion
	require.NotNil(t, gotMeeting)
	assert.NotEmpty(t, gotMeeting.ID, "an id is generated when none is given")
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), gotMeeting.StartDate)
	assert.Equal(t, "SFO", gotMeeting.Locations[0].AirportCode)
	assert.Equal(t, "US", gotMeeting.Locations[0].CountryCode)
	assert.Equal(t, "LAX", gotMeeting.Attendees[0].HomeAirport)
	assert.Equal(t, domain.SortByCity, gotOpts.SortBy)
	require.NotNil(t, gotOpts.Filters)
	assert.True(t, gotOpts.Filters.DirectOnly)
	assert.True(t, gotOpts.Filters.MaxAverageCost.Equal(decimal.NewFromInt(400)))
	assert.NotNil(t, gotOpts.OnProgress)

	// response shape
	env := decodeEnvelope[MeetingSearchResponseDTO](t, rec)
	assert.True(t, env.Success)
	data := env.Data

	assert.Equal(t, "2025-09-14", data.Meeting.TravelStart)
	assert.Equal(t, "2025-09-18", data.Meeting.TravelEnd)
	assert.Equal(t, 2, data.Meeting.Attendees)

	require.Len(t, data.Locations, 1)
	loc := data.Locations[0]
	assert.Equal(t, 1, loc.Rank)
	assert.Equal(t, "275.50", loc.TotalCost)
	assert.Equal(t, 1, loc.AttendeesWithFlights)
	assert.Equal(t, 1, loc.MissingFlights)

	require.Len(t, loc.Flights, 1)
	flight := loc.Flights[0]
	assert.Equal(t, "275.50", flight.Price.Amount)
	assert.Equal(t, "2025-09-14T08:00:00Z", flight.Outbound.DepartureTime)
	assert.Empty(t, flight.Return.DepartureTime, "zero times are omitted")
	require.NotNil(t, flight.AlternativeAirport)
	assert.Equal(t, "Using Oakland International (OAK) - 29.4 miles from SJC", flight.AlternativeAirport.Description)

	assert.Equal(t, 4, data.Metadata.TotalRoutes)
	assert.Equal(t, int64(1200), data.Metadata.SearchTimeMs)
	assert.Equal(t, []domain.RouteIssue{{Route: "ORD-SFO", Reason: "Network connection error"}}, data.Metadata.FailedRoutes)
	assert.Equal(t, []string{"travel start date is not in the future"}, data.Metadata.Warnings)
	assert.False(t, data.Metadata.Cancelled)
}

func TestSearchMeeting_CancelledRunReturnsPartialResults(t *testing.T) {
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, meeting *domain.Meeting, opts usecase.SearchOptions) (*domain.MeetingSearchResult, error) {
			result := sampleResult()
			result.Stats.Cancelled = true
			return result, nil
		},
	}
	e, _ := setupTestHandler(mock, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/meetings/search", SearchMeetingRequest{Meeting: validMeetingRequest()})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[MeetingSearchResponseDTO](t, rec)
	assert.True(t, env.Data.Metadata.Cancelled)
	assert.Len(t, env.Data.Locations, 1)
}

func TestSearchMeeting_NoFlightsMessage(t *testing.T) {
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, meeting *domain.Meeting, opts usecase.SearchOptions) (*domain.MeetingSearchResult, error) {
			return &domain.MeetingSearchResult{Message: domain.UserMessage(domain.ErrNoFlightsFound)}, nil
		},
	}
	e, _ := setupTestHandler(mock, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/meetings/search", SearchMeetingRequest{Meeting: validMeetingRequest()})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[MeetingSearchResponseDTO](t, rec)
	assert.Empty(t, env.Data.Locations)
	assert.NotNil(t, env.Data.Locations)
	assert.Equal(t, "No flights found for this route", env.Data.Metadata.Message)
}

func TestSearchMeeting_InvalidJSON(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{}, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/meetings/search", `{"meeting": {`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope[json.RawMessage](t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, response.CodeInvalidRequest, env.Error.Code)
}

func TestSearchMeeting_ValidationErrors(t *testing.T) {
	negative := -5.0

	tests := []struct {
		name        string
		modify      func(r *SearchMeetingRequest)
		wantField   string
		wantMessage string
	}{
		{
			name:        "missing start date",
			modify:      func(r *SearchMeetingRequest) { r.Meeting.StartDate = "" },
			wantField:   "meeting.startDate",
			wantMessage: "startDate is a required field",
		},
		{
			name:      "malformed start date",
			modify:    func(r *SearchMeetingRequest) { r.Meeting.StartDate = "15/09/2025" },
			wantField: "meeting.startDate",
		},
		{
			name:      "zero days",
			modify:    func(r *SearchMeetingRequest) { r.Meeting.NumberOfDays = 0 },
			wantField: "meeting.numberOfDays",
		},
		{
			name:      "negative buffer",
			modify:    func(r *SearchMeetingRequest) { r.Meeting.BufferDaysBefore = -1 },
			wantField: "meeting.bufferDaysBefore",
		},
		{
			name:      "no attendees",
			modify:    func(r *SearchMeetingRequest) { r.Meeting.Attendees = nil },
			wantField: "meeting.attendees",
		},
		{
			name:      "no locations",
			modify:    func(r *SearchMeetingRequest) { r.Meeting.Locations = []LocationRequest{} },
			wantField: "meeting.locations",
		},
		{
			name:        "bad location airport code",
			modify:      func(r *SearchMeetingRequest) { r.Meeting.Locations[1].AirportCode = "JF1" },
			wantField:   "meeting.locations[1].airportCode",
			wantMessage: "airportCode must be a 3-letter IATA airport code",
		},
		{
			name:      "attendee without name",
			modify:    func(r *SearchMeetingRequest) { r.Meeting.Attendees[0].Name = "" },
			wantField: "meeting.attendees[0].name",
		},
		{
			name:      "unknown sort option",
			modify:    func(r *SearchMeetingRequest) { r.SortBy = "cheapest" },
			wantField: "sortBy",
		},
		{
			name:      "negative max average cost",
			modify:    func(r *SearchMeetingRequest) { r.Filters = &FilterDTO{MaxAverageCost: &negative} },
			wantField: "filters.maxAverageCost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockUseCase{
				searchFunc: func(ctx context.Context, meeting *domain.Meeting, opts usecase.SearchOptions) (*domain.MeetingSearchResult, error) {
					t.Fatal("use case must not be called for invalid requests")
					return nil, nil
				},
			}
			e, _ := setupTestHandler(mock, nil)

			req := SearchMeetingRequest{Meeting: validMeetingRequest()}
			tt.modify(&req)
			rec := makeRequest(e, http.MethodPost, "/api/v1/meetings/search", req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope[json.RawMessage](t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, response.CodeValidationError, env.Error.Code)
			require.Contains(t, env.Error.Details, tt.wantField)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, env.Error.Details[tt.wantField])
			}
		})
	}
}

func TestSearchMeeting_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid request", domain.WrapInvalidRequest("travel start must not be after travel end"), http.StatusBadRequest, response.CodeValidationError},
		{"rate limited", domain.NewStatusError("amadeus", 429, ""), http.StatusTooManyRequests, response.CodeRateLimited},
		{"auth failure", domain.NewStatusError("amadeus", 401, ""), http.StatusBadGateway, response.CodeUpstreamError},
		{"network failure", domain.NewStatusError("amadeus", 503, ""), http.StatusBadGateway, response.CodeUpstreamError},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, response.CodeTimeout},
		{"cancelled", context.Canceled, http.StatusGatewayTimeout, response.CodeTimeout},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, response.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockUseCase{
				searchFunc: func(ctx context.Context, meeting *domain.Meeting, opts usecase.SearchOptions) (*domain.MeetingSearchResult, error) {
					return nil, tt.err
				},
			}
			e, _ := setupTestHandler(mock, nil)

			rec := makeRequest(e, http.MethodPost, "/api/v1/meetings/search", SearchMeetingRequest{Meeting: validMeetingRequest()})

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope[json.RawMessage](t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

// =====================================================
// Optimization Tests
// =====================================================

func TestMeetingOptimization_Success(t *testing.T) {
	e, _ := setupTestHandler(usecase.NewMeetingSearchUseCase(nil, nil), nil)

	req := validMeetingRequest()
	req.Attendees = append(req.Attendees, AttendeeRequest{Name: "Cy", HomeAirport: "LAX"})
	rec := makeRequest(e, http.MethodPost, "/api/v1/meetings/optimization", req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decodeEnvelope[map[string]interface{}](t, rec)
	assert.Equal(t, float64(6), env.Data["standardApiCalls"])
	assert.Equal(t, float64(4), env.Data["optimizedApiCalls"])
	assert.Equal(t, float64(33), env.Data["efficiencyPercentage"])
	assert.Contains(t, env.Data["summary"], "4 API calls instead of 6")
}

func TestMeetingOptimization_Validation(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{}, nil)

	req := validMeetingRequest()
	req.Locations = nil
	rec := makeRequest(e, http.MethodPost, "/api/v1/meetings/optimization", req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope[json.RawMessage](t, rec)
	assert.Contains(t, env.Error.Details, "locations")
}

// =====================================================
// Airport Tests
// =====================================================

func TestNearbyAirports(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{}, nil)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCodes  []string
		wantRadius float64
	}{
		{"default radius", "/api/v1/airports/sjc/nearby", http.StatusOK, []string{"OAK", "SFO"}, 60},
		{"small radius", "/api/v1/airports/SJC/nearby?radius=30", http.StatusOK, []string{"OAK"}, 30},
		{"wide radius", "/api/v1/airports/SJC/nearby?radius=500", http.StatusOK, []string{"OAK", "SFO", "LAX"}, 500},
		{"unknown airport", "/api/v1/airports/XYZ/nearby", http.StatusNotFound, nil, 0},
		{"malformed code", "/api/v1/airports/SJ1/nearby", http.StatusBadRequest, nil, 0},
		{"radius too large", "/api/v1/airports/SJC/nearby?radius=900", http.StatusBadRequest, nil, 0},
		{"radius not a number", "/api/v1/airports/SJC/nearby?radius=far", http.StatusBadRequest, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := makeRequest(e, http.MethodGet, tt.path, nil)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			env := decodeEnvelope[NearbyAirportsResponseDTO](t, rec)
			assert.Equal(t, "SJC", env.Data.Origin)
			assert.Equal(t, tt.wantRadius, env.Data.RadiusMiles)

			codes := make([]string, len(env.Data.Airports))
			for i, a := range env.Data.Airports {
				codes[i] = a.Code
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestSearchAirports(t *testing.T) {
	california := []domain.AirportInfo{
		{Code: "SFO", Name: "San Francisco International", City: "San Francisco", CountryCode: "US", StateCode: "CA"},
		{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", CountryCode: "US", StateCode: "CA"},
	}

	tests := []struct {
		name       string
		query      string
		setup      func(m *domain.MockAirportLookup)
		wantStatus int
		wantCount  int
	}{
		{
			name:  "state code",
			query: "?keyword=CA",
			setup: func(m *domain.MockAirportLookup) {
				m.EXPECT().SearchAirports(gomock.Any(), "CA").Return(california, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name:  "no match is an empty list",
			query: "?keyword=atlantis",
			setup: func(m *domain.MockAirportLookup) {
				m.EXPECT().SearchAirports(gomock.Any(), "atlantis").Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  0,
		},
		{
			name:       "missing keyword",
			query:      "",
			setup:      func(m *domain.MockAirportLookup) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "provider throttled",
			query: "?keyword=boston",
			setup: func(m *domain.MockAirportLookup) {
				m.EXPECT().SearchAirports(gomock.Any(), "boston").Return(nil, domain.NewStatusError("amadeus", 429, ""))
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:  "provider auth failure",
			query: "?keyword=boston",
			setup: func(m *domain.MockAirportLookup) {
				m.EXPECT().SearchAirports(gomock.Any(), "boston").Return(nil, domain.NewStatusError("amadeus", 401, ""))
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lookup := domain.NewMockAirportLookup(ctrl)
			tt.setup(lookup)

			e, _ := setupTestHandler(&mockUseCase{}, lookup)
			rec := makeRequest(e, http.MethodGet, "/api/v1/airports"+tt.query, nil)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusOK {
				env := decodeEnvelope[AirportSearchResponseDTO](t, rec)
				assert.Len(t, env.Data.Airports, tt.wantCount)
				assert.NotNil(t, env.Data.Airports)
			}
		})
	}
}

func TestSearchAirports_NotConfigured(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{}, nil)

	rec := makeRequest(e, http.MethodGet, "/api/v1/airports?keyword=boston", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =====================================================
// Health & Routes
// =====================================================

func TestHealth_Success(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{}, nil)

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var health response.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 4, health.Airports)
}

func TestRegisterRoutes(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{}, nil)

	routes := make(map[string]bool)
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /swagger/*",
		"POST /api/v1/meetings/search",
		"POST /api/v1/meetings/optimization",
		"GET /api/v1/airports",
		"GET /api/v1/airports/:code/nearby",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestToDomainMeeting(t *testing.T) {
	req := validMeetingRequest()
	req.ID = "  q3  "
	req.Name = "  Q3 offsite "

	meeting, err := ToDomainMeeting(&req)
	require.NoError(t, err)

	assert.Equal(t, "q3", meeting.ID)
	assert.Equal(t, "Q3 offsite", meeting.Name)
	assert.Equal(t, []domain.Location{
		{City: "San Francisco", AirportCode: "SFO", CountryCode: "US"},
		{City: "New York", AirportCode: "JFK"},
	}, meeting.Locations)
	assert.Equal(t, "ORD", meeting.Attendees[1].HomeAirport)

	req.StartDate = "2025-02-30"
	_, err = ToDomainMeeting(&req)
	assert.True(t, domain.IsInvalidRequest(err))
	assert.True(t, strings.Contains(err.Error(), "2025-02-30"))
}

func TestToSearchOptions(t *testing.T) {
	opts := ToSearchOptions(&SearchMeetingRequest{SortBy: "COVERAGE"})
	assert.Equal(t, domain.SortByCoverage, opts.SortBy)
	assert.Nil(t, opts.Filters)

	opts = ToSearchOptions(&SearchMeetingRequest{})
	assert.Equal(t, domain.SortByTotalCost, opts.SortBy)
}
