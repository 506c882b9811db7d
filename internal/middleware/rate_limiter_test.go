package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRateLimitedRequest(t *testing.T, mw echo.MiddlewareFunc, ip string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec.Code
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	mw := RateLimiterWithConfig(5, 10)

	for i := 0; i < 10; i++ {
		code := doRateLimitedRequest(t, mw, "10.0.0.1")
		assert.Equal(t, http.StatusOK, code, "request %d within burst", i)
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	mw := RateLimiterWithConfig(1, 3)

	rejected := false
	for i := 0; i < 10; i++ {
		if doRateLimitedRequest(t, mw, "10.0.0.2") == http.StatusTooManyRequests {
			rejected = true
			break
		}
	}
	assert.True(t, rejected, "burst exhaustion should reject")
}

func TestRateLimiter_TracksClientsIndependently(t *testing.T) {
	mw := RateLimiterWithConfig(1, 2)

	for i := 0; i < 10; i++ {
		doRateLimitedRequest(t, mw, "10.0.0.3")
	}

	code := doRateLimitedRequest(t, mw, "10.0.0.4")
	assert.Equal(t, http.StatusOK, code, "fresh client should not share another client's bucket")
}

func TestGetIP_HeaderPrecedence(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "forwarded-for wins", headers: map[string]string{"X-Forwarded-For": "1.2.3.4", "X-Real-IP": "5.6.7.8"}, want: "1.2.3.4"},
		{name: "real-ip fallback", headers: map[string]string{"X-Real-IP": "5.6.7.8"}, want: "5.6.7.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.want, getIP(c))
		})
	}
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	mw := RateLimiterWithConfig(100, 200)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 20; j++ {
				doRateLimitedRequest(t, mw, fmt.Sprintf("10.1.0.%d", n))
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
