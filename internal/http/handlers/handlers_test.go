package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
	"github.com/preston-bernstein/injury-risk-service/internal/http/middleware"
	"github.com/preston-bernstein/injury-risk-service/internal/poller"
	"github.com/preston-bernstein/injury-risk-service/internal/providers/fixture"
	"github.com/preston-bernstein/injury-risk-service/internal/testutil"
)

func newRosterHandler(roster []players.Player, statusFn func() poller.Status) *Handler {
	svcs := testutil.NewServicesWithRoster(roster)
	return NewHandler(svcs.Players, svcs.Assessments, nil, statusFn)
}

func TestHealth(t *testing.T) {
	h := newRosterHandler(nil, nil)

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newRosterHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReady(t *testing.T) {
	h := newRosterHandler(nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestReadyWithStatus(t *testing.T) {
	h := newRosterHandler(nil, func() poller.Status {
		return poller.Status{LastSuccess: time.Now()}
	})

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestReadyNotReadyReportsLastError(t *testing.T) {
	h := newRosterHandler(nil, func() poller.Status {
		return poller.Status{LastError: "provider unavailable", ConsecutiveFailures: 1}
	})

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "provider unavailable" {
		t.Fatalf("expected last error surfaced, got %q", resp["error"])
	}
}

func TestPlayersListsRosterWithCachedRisk(t *testing.T) {
	h := newRosterHandler(fixture.Players(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp rosterResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Count != 3 || len(resp.Players) != 3 {
		t.Fatalf("expected 3 players, got %d", resp.Count)
	}
	if resp.Players[0].Player.ID != "001" {
		t.Fatalf("expected roster sorted by id, got %s", resp.Players[0].Player.ID)
	}
	for _, entry := range resp.Players {
		if entry.Risk == nil {
			t.Fatalf("expected cached risk for %s", entry.Player.ID)
		}
	}
}

func TestPlayersEmptyRoster(t *testing.T) {
	h := newRosterHandler(nil, nil)

	rr := testutil.Serve(h, http.MethodGet, "/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), `"players":[]`) {
		t.Fatalf("expected empty players array, got %s", rr.Body.String())
	}
}

func TestPlayerByID(t *testing.T) {
	h := newRosterHandler(fixture.Players(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/players/002", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp players.Player
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Name != "Maria Santos" || !resp.Positions.Has(players.PositionMidfielder) {
		t.Fatalf("unexpected player %+v", resp)
	}
}

func TestPlayerByIDInvalid(t *testing.T) {
	h := newRosterHandler(nil, nil)

	for _, path := range []string{"/players/", "/players/a%20b", "/players/a/b"} {
		rr := testutil.Serve(h, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	}
}

func TestPlayerByIDNotFound(t *testing.T) {
	h := newRosterHandler(fixture.Players(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/players/unknown", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestPlayerRiskAtExplicitInstant(t *testing.T) {
	h := newRosterHandler(fixture.Players(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/players/001/risk?at=2024-01-01", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp assessments.PlayerAssessment
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Risk.RiskLevel != assessments.RiskMedium {
		t.Fatalf("expected medium risk, got %s", resp.Risk.RiskLevel)
	}
	if resp.Risk.SpecificRisks.Hamstring < resp.Risk.OverallRisk {
		t.Fatalf("expected hamstring above overall for a prior hamstring injury")
	}
	if !resp.EvaluatedAt.Equal(testutil.EvalAt) {
		t.Fatalf("expected evaluatedAt %v, got %v", testutil.EvalAt, resp.EvaluatedAt)
	}
}

func TestPlayerRiskRecencyDependsOnInstant(t *testing.T) {
	h := newRosterHandler(fixture.Players(), nil)

	var recent, stale assessments.PlayerAssessment
	rr := testutil.Serve(h, http.MethodGet, "/players/001/risk?at=2024-01-01", nil)
	testutil.DecodeJSON(t, rr, &recent)
	rr = testutil.Serve(h, http.MethodGet, "/players/001/risk?at=2025-06-01T00:00:00Z", nil)
	testutil.DecodeJSON(t, rr, &stale)

	if recent.Risk.OverallRisk != stale.Risk.OverallRisk {
		t.Fatalf("overall risk should not depend on the instant")
	}
	if recent.Risk.SpecificRisks.Hamstring <= stale.Risk.SpecificRisks.Hamstring {
		t.Fatalf("expected recency bonus to lapse, recent=%f stale=%f",
			recent.Risk.SpecificRisks.Hamstring, stale.Risk.SpecificRisks.Hamstring)
	}
}

func TestPlayerRiskInvalidInstant(t *testing.T) {
	h := newRosterHandler(fixture.Players(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/players/001/risk?at=yesterday", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestPlayerRiskUnknownPlayer(t *testing.T) {
	h := newRosterHandler(fixture.Players(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/players/999/risk", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestTeamSummaryUsesCachedAssessments(t *testing.T) {
	h := newRosterHandler(fixture.Players(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/team/summary", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp assessments.TeamSummary
	testutil.DecodeJSON(t, rr, &resp)
	if resp.TotalPlayers != 3 {
		t.Fatalf("expected 3 players, got %d", resp.TotalPlayers)
	}
	if resp.RiskDistribution != (assessments.RiskDistribution{Medium: 3}) {
		t.Fatalf("unexpected distribution %+v", resp.RiskDistribution)
	}
	if resp.HighRiskPlayers != 0 {
		t.Fatalf("expected no high risk players, got %d", resp.HighRiskPlayers)
	}
	if len(resp.Chart) != 3 || resp.Chart[0].Name != "Alex" || resp.Chart[0].RiskPercent != 58 {
		t.Fatalf("unexpected chart %+v", resp.Chart)
	}
}

func TestTeamSummaryStampsCachedEvaluationTime(t *testing.T) {
	cachedAt := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	roster := fixture.Players()
	svcs := testutil.NewServices(nil)
	svcs.Players.ReplacePlayers(roster)
	if _, err := svcs.Assessments.AssessAll(context.Background(), roster, cachedAt); err != nil {
		t.Fatalf("assess roster: %v", err)
	}
	h := NewHandler(svcs.Players, svcs.Assessments, nil, nil)

	rr := testutil.Serve(h, http.MethodGet, "/team/summary", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp assessments.TeamSummary
	testutil.DecodeJSON(t, rr, &resp)
	if !resp.EvaluatedAt.Equal(cachedAt) {
		t.Fatalf("expected summary stamped with cached instant %v, got %v", cachedAt, resp.EvaluatedAt)
	}
}

func TestTeamSummaryExplicitInstant(t *testing.T) {
	h := newRosterHandler(fixture.Players(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/team/summary?at=2025-01-01", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp assessments.TeamSummary
	testutil.DecodeJSON(t, rr, &resp)
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !resp.EvaluatedAt.Equal(want) {
		t.Fatalf("expected evaluatedAt %v, got %v", want, resp.EvaluatedAt)
	}
}

func TestTeamSummaryEmptyRoster(t *testing.T) {
	h := newRosterHandler(nil, nil)

	rr := testutil.Serve(h, http.MethodGet, "/team/summary", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp assessments.TeamSummary
	testutil.DecodeJSON(t, rr, &resp)
	if resp.TotalPlayers != 0 || resp.AverageRisk != 0 {
		t.Fatalf("expected zero summary, got %+v", resp)
	}
}

func TestAnalyzeScoresPostedPlayer(t *testing.T) {
	h := newRosterHandler(nil, nil)

	rr := testutil.Serve(h, http.MethodPost, "/risk/analyze?at=2024-01-01", strings.NewReader(testutil.SamplePlayerJSON))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp assessments.PlayerAssessment
	testutil.DecodeJSON(t, rr, &resp)
	if resp.ID == "" || resp.Player.ID != "p-json" {
		t.Fatalf("unexpected assessment %+v", resp)
	}
	if !resp.Player.Positions.Has(players.PositionForward) {
		t.Fatalf("expected position parsed to forward, got %s", resp.Player.Positions)
	}
	if len(resp.Risk.Recommendations) == 0 {
		t.Fatalf("expected recommendations")
	}
	if resp.Risk.OverallRisk < 0 || resp.Risk.OverallRisk > 1 {
		t.Fatalf("overall out of range: %f", resp.Risk.OverallRisk)
	}
}

func TestAnalyzeRejectsInvalidJSON(t *testing.T) {
	h := newRosterHandler(nil, nil)

	rr := testutil.Serve(h, http.MethodPost, "/risk/analyze", strings.NewReader("{not json"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestAnalyzeRejectsEmptyBody(t *testing.T) {
	h := newRosterHandler(nil, nil)

	rr := testutil.Serve(h, http.MethodPost, "/risk/analyze", strings.NewReader(""))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != errEmptyBody.Error() {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestAnalyzeRejectsValidationFailures(t *testing.T) {
	h := newRosterHandler(nil, nil)

	body := `{"id":"x","name":"X","age":0,"performance":{"fatigueScore":12}}`
	rr := testutil.Serve(h, http.MethodPost, "/risk/analyze", strings.NewReader(body))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if !strings.Contains(resp["error"], "age") || !strings.Contains(resp["error"], "fatigue") {
		t.Fatalf("expected joined validation errors, got %q", resp["error"])
	}
}

func TestAnalyzeRejectsOversizedBody(t *testing.T) {
	h := newRosterHandler(nil, nil)

	body := `{"id":"x","name":"` + strings.Repeat("a", MaxPlayerBodyBytes) + `"}`
	rr := testutil.Serve(h, http.MethodPost, "/risk/analyze", strings.NewReader(body))
	testutil.AssertStatus(t, rr, http.StatusRequestEntityTooLarge)
}

func TestAnalyzeRejectsInvalidInstant(t *testing.T) {
	h := newRosterHandler(nil, nil)

	rr := testutil.Serve(h, http.MethodPost, "/risk/analyze?at=13/01/2024", strings.NewReader(testutil.SamplePlayerJSON))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestMethodNotAllowedHandlers(t *testing.T) {
	h := newRosterHandler(nil, nil)

	tests := []struct {
		name   string
		method string
		path   string
		fn     func(w http.ResponseWriter, r *http.Request)
	}{
		{"health", http.MethodPost, "/health", h.Health},
		{"ready", http.MethodPost, "/ready", h.Ready},
		{"players", http.MethodPost, "/players", h.Players},
		{"player", http.MethodDelete, "/players/001", h.PlayerRoute},
		{"summary", http.MethodPut, "/team/summary", h.TeamSummary},
		{"analyze", http.MethodGet, "/risk/analyze", h.Analyze},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := testutil.Serve(http.HandlerFunc(tt.fn), tt.method, tt.path, nil)
			testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
		})
	}
}

func TestRequestIDPropagatesThroughMiddleware(t *testing.T) {
	h := newRosterHandler(nil, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("/players/", h.PlayerRoute)
	wrapped := middleware.LoggingMiddleware(nil, nil, mux)

	req := httptest.NewRequest(http.MethodGet, "/players/missing", nil)
	req.Header.Set("X-Request-ID", "abc123")
	rr := testutil.ServeRequest(wrapped, req)

	testutil.AssertStatus(t, rr, http.StatusNotFound)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["requestId"] != "abc123" {
		t.Fatalf("expected requestId propagated, got %s", resp["requestId"])
	}
	if resp["error"] == "" {
		t.Fatalf("expected error field in response")
	}
}

func TestServeHTTPNotFound(t *testing.T) {
	h := newRosterHandler(nil, nil)
	rr := testutil.Serve(h, http.MethodGet, "/unknown", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestWriteJSONErrorPath(t *testing.T) {
	rr := httptest.NewRecorder()
	// channels cannot be JSON encoded; triggers the error branch.
	writeJSON(rr, http.StatusOK, make(chan int), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 despite encode error, got %d", rr.Code)
	}
}
