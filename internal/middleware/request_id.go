package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses so a
	// money movement can be followed across the gateway and the logs.
	TraceIDHeader = "X-Trace-ID"

	traceIDContextKey = "trace_id"
)

// RequestID assigns every request a trace ID. An incoming X-Trace-ID is
// honored so upstream callers keep their correlation key; otherwise a
// fresh UUID is minted. The ID is echoed back on the response and made
// available to handlers via GetTraceID.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(traceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or "" outside RequestID.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(traceIDContextKey).(string)
	return traceID
}
