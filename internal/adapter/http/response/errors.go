package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return fail(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return fail(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	if message == "" {
		message = MsgNotFound
	}
	return fail(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// RateLimited writes a 429 Too Many Requests response.
func RateLimited(c echo.Context) error {
	return fail(c, http.StatusTooManyRequests, CodeRateLimited, MsgRateLimited, nil)
}

// BadGateway writes a 502 Bad Gateway response for provider failures.
func BadGateway(c echo.Context, message string) error {
	if message == "" {
		message = MsgUpstreamError
	}
	return fail(c, http.StatusBadGateway, CodeUpstreamError, message, nil)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return fail(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}
