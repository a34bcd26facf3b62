package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/meetingcost/meeting-location-search/internal/adapter/http/middleware"
	"github.com/meetingcost/meeting-location-search/internal/adapter/http/response"
	"github.com/meetingcost/meeting-location-search/internal/airport"
	"github.com/meetingcost/meeting-location-search/internal/domain"
	"github.com/meetingcost/meeting-location-search/internal/usecase"
)

// AirportIndex is the static airport table used for proximity queries.
type AirportIndex interface {
	Lookup(code string) (airport.Airport, bool)
	Nearby(code string, radiusMiles float64) []domain.NearbyAirport
	Len() int
}

// Handler handles HTTP requests for meeting and airport endpoints.
type Handler struct {
	meetings  usecase.MeetingSearchUseCase
	airports  AirportIndex
	lookup    domain.AirportLookup
	validator *RequestValidator
}

// NewHandler creates a Handler. lookup may be nil, which disables keyword airport search.
func NewHandler(meetings usecase.MeetingSearchUseCase, airports AirportIndex, lookup domain.AirportLookup) *Handler {
	return &Handler{
		meetings:  meetings,
		airports:  airports,
		lookup:    lookup,
		validator: MustNewRequestValidator(),
	}
}

// SearchMeeting handles POST /api/v1/meetings/search
//
// @Summary Rank candidate cities for a meeting
// @Description Finds the cheapest round trip for every attendee to every candidate city and ranks the cities by total group cost.
// @Description A run that hits its time limit returns the partial ranking with metadata.cancelled set.
// @Tags meetings
// @Accept json
// @Produce json
// @Param request body SearchMeetingRequest true "Meeting and ranking options"
// @Success 200 {object} response.Response{data=MeetingSearchResponseDTO}
// @Failure 400 {object} response.Response{error=response.ErrorDetail} "Validation error"
// @Failure 500 {object} response.Response{error=response.ErrorDetail} "Internal error"
// @Router /api/v1/meetings/search [post]
func (h *Handler) SearchMeeting(c echo.Context) error {
	var req SearchMeetingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := h.validator.Validate(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	meeting, err := ToDomainMeeting(&req.Meeting)
	if err != nil {
		return h.handleError(c, err)
	}

	log := middleware.GetLogger(c).WithMeeting(meeting.ID)
	opts := ToSearchOptions(&req)
	opts.OnProgress = func(fraction float64, message string) {
		log.Debug().Float64("progress", fraction).Str("step", message).Msg("search progress")
	}

	result, err := h.meetings.Search(c.Request().Context(), meeting, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToMeetingSearchResponseDTO(meeting, result))
}

// MeetingOptimization handles POST /api/v1/meetings/optimization
//
// @Summary Preview provider call savings
// @Description Groups attendees by home airport and reports how many provider queries a search will need, without searching.
// @Tags meetings
// @Accept json
// @Produce json
// @Param request body MeetingRequest true "Meeting"
// @Success 200 {object} response.Response{data=OptimizationDTO}
// @Failure 400 {object} response.Response{error=response.ErrorDetail} "Validation error"
// @Router /api/v1/meetings/optimization [post]
func (h *Handler) MeetingOptimization(c echo.Context) error {
	var req MeetingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := h.validator.Validate(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	meeting, err := ToDomainMeeting(&req)
	if err != nil {
		return h.handleError(c, err)
	}

	stats, err := h.meetings.Optimization(meeting)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToOptimizationDTO(stats))
}

// NearbyAirports handles GET /api/v1/airports/:code/nearby
//
// @Summary List airports near an airport
// @Description Airports of the built-in table within the radius, closest first.
// @Tags airports
// @Produce json
// @Param code path string true "IATA airport code"
// @Param radius query number false "Radius in statute miles (default 60, max 500)"
// @Success 200 {object} response.Response{data=NearbyAirportsResponseDTO}
// @Failure 400 {object} response.Response{error=response.ErrorDetail} "Validation error"
// @Failure 404 {object} response.Response{error=response.ErrorDetail} "Unknown airport"
// @Router /api/v1/airports/{code}/nearby [get]
func (h *Handler) NearbyAirports(c echo.Context) error {
	var req NearbyAirportsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := h.validator.Validate(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	origin, ok := h.airports.Lookup(req.Code)
	if !ok {
		return response.NotFound(c, "Airport "+domain.NormalizeAirportCode(req.Code)+" is not in the airport table")
	}

	radius := req.RadiusMiles
	if radius == 0 {
		radius = airport.DefaultRadiusMiles
	}

	return response.OK(c, &NearbyAirportsResponseDTO{
		Origin:      origin.Code,
		Name:        origin.Name,
		RadiusMiles: radius,
		Airports:    h.airports.Nearby(origin.Code, radius),
	})
}

// SearchAirports handles GET /api/v1/airports
//
// @Summary Search provider airports
// @Description Keyword search of the provider's airport reference data. A two-letter keyword is treated as a US state code.
// @Tags airports
// @Produce json
// @Param keyword query string true "City, airport name, code or US state code"
// @Success 200 {object} response.Response{data=AirportSearchResponseDTO}
// @Failure 400 {object} response.Response{error=response.ErrorDetail} "Validation error"
// @Failure 429 {object} response.Response{error=response.ErrorDetail} "Provider throttled"
// @Failure 502 {object} response.Response{error=response.ErrorDetail} "Provider failure"
// @Failure 504 {object} response.Response{error=response.ErrorDetail} "Timeout"
// @Router /api/v1/airports [get]
func (h *Handler) SearchAirports(c echo.Context) error {
	if h.lookup == nil {
		return response.NotFound(c, "Airport search is not configured")
	}

	var req AirportSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := h.validator.Validate(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	airports, err := h.lookup.SearchAirports(c.Request().Context(), req.Keyword)
	if err != nil {
		middleware.GetLogger(c).Warn().Err(err).Str("keyword", req.Keyword).Msg("airport search failed")
		return h.handleError(c, err)
	}
	if airports == nil {
		airports = []domain.AirportInfo{}
	}

	return response.OK(c, &AirportSearchResponseDTO{Keyword: req.Keyword, Airports: airports})
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c, h.airports.Len())
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	case domain.IsRateLimitExceeded(err):
		return response.RateLimited(c)
	case domain.IsAuthenticationFailed(err), domain.IsNetworkError(err):
		return response.BadGateway(c, domain.UserMessage(err))
	default:
		middleware.GetLogger(c).Error().Err(err).Msg("unhandled error")
		return response.InternalServerError(c)
	}
}
