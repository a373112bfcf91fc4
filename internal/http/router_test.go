package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/injury-risk-service/internal/http/handlers"
	"github.com/preston-bernstein/injury-risk-service/internal/http/middleware"
	"github.com/preston-bernstein/injury-risk-service/internal/providers/fixture"
	"github.com/preston-bernstein/injury-risk-service/internal/testutil"
)

func newTestRouter(limiter *middleware.RateLimiter, admin *handlers.AdminHandler) http.Handler {
	svcs := testutil.NewServicesWithRoster(fixture.Players())
	h := handlers.NewHandler(svcs.Players, svcs.Assessments, nil, nil)
	return NewRouter(h, admin, limiter)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(nil, nil)

	cases := map[string]int{
		"/health":                         http.StatusOK,
		"/ready":                          http.StatusOK,
		"/players":                        http.StatusOK,
		"/players/001":                    http.StatusOK,
		"/players/001/risk?at=2024-01-01": http.StatusOK,
		"/players/foo":                    http.StatusNotFound,
		"/team/summary":                   http.StatusOK,
		"/risk/analyze":                   http.StatusMethodNotAllowed,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(nil, nil)

	for _, path := range []string{"/does-not-exist", "/admin/rescore"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s, got %d", path, rr.Code)
		}
	}
}

func TestRouterRateLimitsAnalyze(t *testing.T) {
	router := newTestRouter(middleware.NewRateLimiter(0.001, 1, nil, nil), nil)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/risk/analyze", strings.NewReader(testutil.SamplePlayerJSON))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Code
	}

	if got := post(); got != http.StatusOK {
		t.Fatalf("expected first analyze to pass, got %d", got)
	}
	if got := post(); got != http.StatusTooManyRequests {
		t.Fatalf("expected second analyze to be limited, got %d", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/players", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected read routes unaffected by limiter, got %d", rr.Code)
	}
}

func TestRouterMountsAdmin(t *testing.T) {
	router := newTestRouter(nil, handlers.NewAdminHandler(nil, "secret", nil))

	req := httptest.NewRequest(http.MethodPost, "/admin/rescore", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected admin route mounted and guarded, got %d", rr.Code)
	}
}
