package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware_AllowsWithinLimit(t *testing.T) {
	handler := RateLimitMiddleware(5)(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(ClientIDHeader, "client-a")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimitMiddleware_BlocksOverLimit(t *testing.T) {
	handler := RateLimitMiddleware(3)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(ClientIDHeader, "client-a")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}

	// 4th request should be rate-limited
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(ClientIDHeader, "client-a")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}

func TestRateLimitMiddleware_KeysOnRemoteHost(t *testing.T) {
	handler := RateLimitMiddleware(2)(okHandler())

	// Exhaust the limit for one host
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.0.2.10:1000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}

	// Rotating the client header does not reset the bucket
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.10:1001"
	req.Header.Set(ClientIDHeader, "fresh-client")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("rotated client id should still be rate-limited, got %d", w.Code)
	}

	// Another host has its own bucket
	req = httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.11:1000"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("other host should not be rate-limited, got %d", w.Code)
	}
}

func TestRateLimiter_EvictsIdleBuckets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newRateLimiter(60)
	rl.now = func() time.Time { return now }

	rl.get("192.0.2.1")
	rl.get("192.0.2.2")
	if got := rl.size(); got != 2 {
		t.Fatalf("expected 2 buckets, got %d", got)
	}

	now = now.Add(limiterIdleTTL / 2)
	rl.get("192.0.2.2")

	now = now.Add(limiterIdleTTL)
	rl.get("192.0.2.3")
	if got := rl.size(); got != 1 {
		t.Errorf("expected idle buckets to be evicted, got %d", got)
	}
}

func TestClientKeyFallsBackToRemoteHost(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.7:51234"
	if got := clientKey(req); got != "192.0.2.7" {
		t.Errorf("expected remote host, got %q", got)
	}
}

func TestAdminAuthMiddleware(t *testing.T) {
	handler := AdminAuthMiddleware("s3cret")(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	req.Header.Set("Authorization", "Bearer s3cret")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with token, got %d", w.Code)
	}

	open := AdminAuthMiddleware("")(okHandler())
	w = httptest.NewRecorder()
	open.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 when no token configured, got %d", w.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	called := false
	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(ClientIDHeader, "test-client")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if !called {
		t.Error("inner handler was not called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRequestLogger_UnmatchedRouteLabel(t *testing.T) {
	router, _ := setupTestRouter(t)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", fmt.Sprintf("/junk/%d", i), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	}

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	NewMetricsRouter().ServeHTTP(w, req)
	body := w.Body.String()

	if strings.Contains(body, "/junk/") {
		t.Error("raw request paths must not become route labels")
	}
	if !strings.Contains(body, `route="unmatched"`) {
		t.Error("expected unmatched route label")
	}
}
