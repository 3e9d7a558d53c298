package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/influencerflow/backend/config"
	"github.com/influencerflow/backend/pkg/router"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newRateLimitTestServer(trustedProxies []string, limit rate.Limit, burst int) http.Handler {
	ctx := xcontext.WithConfigs(context.Background(), config.Configs{
		ApiServer: config.APIServerConfigs{TrustedProxies: trustedProxies},
	})

	r := router.New(ctx)
	r.AddCloser(Logger())
	r.Before(RateLimiter(limit, burst))
	router.GET(r, "/whoami", whoami)
	return r.Handler()
}

func sendFrom(h http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter(t *testing.T) {
	h := newRateLimitTestServer(nil, rate.Every(time.Hour), 2)

	require.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.1:1000", ""))
	require.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.1:1001", ""))
	require.Equal(t, http.StatusTooManyRequests, sendFrom(h, "10.0.0.1:1002", ""))

	// Another client has its own budget.
	require.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.2:1000", ""))
}

func TestRateLimiter_RejectedBody(t *testing.T) {
	h := newRateLimitTestServer(nil, rate.Every(time.Hour), 1)
	require.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.1:1000", ""))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.RemoteAddr = "10.0.0.1:1001"
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Contains(t, rec.Body.String(), "Too many requests, please try again later")
}

func TestRateLimiter_IgnoresUntrustedForwardedFor(t *testing.T) {
	h := newRateLimitTestServer(nil, 0.2, 1)

	allowed := 0
	for i := 0; i < 50; i++ {
		if sendFrom(h, "198.51.100.1:1000", fmt.Sprintf("10.0.0.%d", i)) == http.StatusOK {
			allowed++
		}
	}

	require.Equal(t, 1, allowed)
}

func TestRateLimiter_TrustedProxy(t *testing.T) {
	h := newRateLimitTestServer([]string{"10.0.0.0/8"}, rate.Every(time.Hour), 1)

	require.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.1:1000", "203.0.113.7"))
	require.Equal(t, http.StatusTooManyRequests, sendFrom(h, "10.0.0.1:1001", "203.0.113.7"))

	// Clients behind the same proxy are counted apart.
	require.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.1:1002", "203.0.113.8"))

	// A header from a client which is not a proxy is ignored.
	require.Equal(t, http.StatusOK, sendFrom(h, "198.51.100.1:1000", "203.0.113.7"))
	require.Equal(t, http.StatusTooManyRequests, sendFrom(h, "198.51.100.1:1001", "203.0.113.8"))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newRateLimiter(1, 2)
	l.now = func() time.Time { return now }
	l.lastSweep = now.UnixNano()
	require.Equal(t, time.Minute, l.idleTimeout)

	for i := 0; i < 10; i++ {
		require.True(t, l.allow(fmt.Sprintf("10.0.0.%d", i)))
	}
	require.Equal(t, 10, countClients(l))

	now = now.Add(30 * time.Second)
	require.True(t, l.allow("10.0.0.100"))
	require.Equal(t, 11, countClients(l))

	now = now.Add(45 * time.Second)
	require.True(t, l.allow("10.0.0.100"))
	require.Equal(t, 1, countClients(l))
}

func countClients(l *rateLimiter) int {
	n := 0
	l.clients.Range(func(string, *clientLimiter) bool {
		n++
		return true
	})
	return n
}
