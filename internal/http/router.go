package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/injury-risk-service/internal/http/handlers"
	"github.com/preston-bernstein/injury-risk-service/internal/http/middleware"
)

// NewRouter registers HTTP routes on a ServeMux. The analyze route sits behind
// limiter; admin may be nil to leave admin routes unmounted.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, limiter *middleware.RateLimiter) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/", handler.PlayerRoute)
	mux.HandleFunc("/team/summary", handler.TeamSummary)
	mux.Handle("/risk/analyze", limiter.Wrap(nethttp.HandlerFunc(handler.Analyze)))
	if admin != nil {
		mux.HandleFunc("/admin/rescore", admin.Rescore)
	}
	return mux
}
