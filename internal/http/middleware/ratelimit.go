package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/injury-risk-service/internal/logging"
	"github.com/preston-bernstein/injury-risk-service/internal/metrics"
)

// RateLimiter rejects requests beyond a process-wide token bucket with 429.
type RateLimiter struct {
	limiter  *rate.Limiter
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewRateLimiter returns nil (no limiting) when perSecond is not positive.
func NewRateLimiter(perSecond float64, burst int, recorder *metrics.Recorder, logger *slog.Logger) *RateLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		recorder: recorder,
		logger:   logger,
	}
}

// Wrap guards next with the limiter. A nil limiter passes requests straight through.
func (l *RateLimiter) Wrap(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.limiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}

		path := normalizePath(r.URL.Path)
		l.recorder.RecordRateLimited(path)
		logging.Warn(logging.FromContext(r.Context(), l.logger), "rate limit exceeded", slog.String(logging.FieldPath, path))

		body := map[string]string{"error": "rate limit exceeded"}
		if reqID := RequestIDFromContext(r.Context()); reqID != "" {
			body["requestId"] = reqID
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(body)
	})
}
