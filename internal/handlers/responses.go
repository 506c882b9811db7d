package handlers

import (
	"log/slog"
	"net/http"

	"corebank/internal/errors"
	"corebank/internal/result"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For failures the handler detects itself (bad route
//    params, malformed bodies). Picks the message and status from the
//    error code registry.
//
// 2. SendStatus - For failed result statuses coming out of the service
//    layer. Preserves every message the core collected and maps the
//    failure kind to the HTTP status.
//
// 3. SendSystemError - For unexpected errors. Logs the internal error
//    and returns a generic 500 body that exposes no internals.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use the helper functions instead
//    - Direct c.JSON() for errors - Use the helper functions

// SendError sends a standardized error response for the given code.
func SendError(c echo.Context, code errors.ErrorCode, details ...string) error {
	errorResponse := errors.NewErrorResponse(code, details...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendStatus converts a failed service status into the wire error shape.
func SendStatus(c echo.Context, status result.Status) error {
	return c.JSON(errors.StatusForKind(status.Kind), errors.FromStatus(status))
}

// SendSystemError wraps a system error with a generic message and logs
// the internal error.
func SendSystemError(c echo.Context, err error) error {
	slog.Error("internal error",
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError))
}
