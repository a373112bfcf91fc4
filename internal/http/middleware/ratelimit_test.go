package middleware

import (
	"net/http"
	"testing"

	"github.com/preston-bernstein/injury-risk-service/internal/metrics"
	"github.com/preston-bernstein/injury-risk-service/internal/testutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiterRejectsBeyondBurst(t *testing.T) {
	rec := metrics.NewRecorder()
	// A tiny refill rate keeps the bucket from refilling during the test.
	handler := NewRateLimiter(0.001, 2, rec, nil).Wrap(okHandler())

	for i := 0; i < 2; i++ {
		rr := testutil.Serve(handler, http.MethodPost, "/risk/analyze", nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
	}

	rr := testutil.Serve(handler, http.MethodPost, "/risk/analyze", nil)
	testutil.AssertStatus(t, rr, http.StatusTooManyRequests)
	if rr.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "rate limit exceeded" {
		t.Fatalf("unexpected body %v", body)
	}
	if got := rec.Snapshot().RateLimitedRequests; got != 1 {
		t.Fatalf("expected 1 rate limited request, got %d", got)
	}
}

func TestRateLimiterIncludesRequestIDBehindLogging(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	limited := NewRateLimiter(0.001, 1, nil, logger).Wrap(okHandler())
	handler := LoggingMiddleware(logger, nil, limited)

	_ = testutil.Serve(handler, http.MethodPost, "/risk/analyze", nil)
	rr := testutil.Serve(handler, http.MethodPost, "/risk/analyze", nil)
	testutil.AssertStatus(t, rr, http.StatusTooManyRequests)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["requestId"] == "" || body["requestId"] != rr.Header().Get("X-Request-ID") {
		t.Fatalf("expected request id echoed, got %v", body)
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	limiter := NewRateLimiter(0, 10, nil, nil)
	if limiter != nil {
		t.Fatalf("expected nil limiter when rate is not positive")
	}
	handler := limiter.Wrap(okHandler())
	for i := 0; i < 20; i++ {
		rr := testutil.Serve(handler, http.MethodPost, "/risk/analyze", nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
	}
}

func TestRateLimiterDefaultsBurst(t *testing.T) {
	l := NewRateLimiter(1, 0, nil, nil)
	if l.limiter.Burst() != 1 {
		t.Fatalf("expected burst default 1, got %d", l.limiter.Burst())
	}
}
