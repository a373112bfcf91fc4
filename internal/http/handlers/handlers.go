package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	appassessments "github.com/preston-bernstein/injury-risk-service/internal/app/assessments"
	appplayers "github.com/preston-bernstein/injury-risk-service/internal/app/players"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
	"github.com/preston-bernstein/injury-risk-service/internal/logging"
	"github.com/preston-bernstein/injury-risk-service/internal/poller"
	"github.com/preston-bernstein/injury-risk-service/internal/timeutil"
)

// MaxPlayerBodyBytes caps the analyze request body.
const MaxPlayerBodyBytes = 1 << 20

// Handler wires HTTP routes to the roster and assessment services.
type Handler struct {
	players     *appplayers.Service
	assessments *appassessments.Service
	logger      *slog.Logger
	statusFn    func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(playersSvc *appplayers.Service, assessSvc *appassessments.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		players:     playersSvc,
		assessments: assessSvc,
		logger:      logger,
		statusFn:    statusFn,
	}
}

type rosterEntry struct {
	Player players.Player           `json:"player"`
	Risk   *assessments.InjuryRisk `json:"risk,omitempty"`
}

type rosterResponse struct {
	Players []rosterEntry `json:"players"`
	Count   int           `json:"count"`
}

// ServeHTTP dispatches by path so the handler can be mounted directly.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/players":
		h.Players(w, r)
	case strings.HasPrefix(r.URL.Path, "/players/"):
		h.PlayerRoute(w, r)
	case r.URL.Path == "/team/summary":
		h.TeamSummary(w, r)
	case r.URL.Path == "/risk/analyze":
		h.Analyze(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness once the roster has been scored at least once.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Players lists the roster with each player's latest cached risk.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	roster := h.players.Players()
	resp := rosterResponse{Players: make([]rosterEntry, 0, len(roster)), Count: len(roster)}
	for _, p := range roster {
		entry := rosterEntry{Player: p}
		if a, ok := h.assessments.Latest(p.ID); ok {
			risk := a.Risk
			entry.Risk = &risk
		}
		resp.Players = append(resp.Players, entry)
	}
	logging.Info(loggerFromContext(r, h.logger), "served roster", logging.FieldCount, len(roster))
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// PlayerRoute serves /players/{id} and /players/{id}/risk.
func (h *Handler) PlayerRoute(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/players/")
	if id, ok := strings.CutSuffix(rest, "/risk"); ok {
		h.playerRisk(w, r, id)
		return
	}
	h.playerByID(w, r, rest)
}

func (h *Handler) playerByID(w nethttp.ResponseWriter, r *nethttp.Request, raw string) {
	p, ok := h.lookupPlayer(w, r, raw)
	if !ok {
		return
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}

func (h *Handler) playerRisk(w nethttp.ResponseWriter, r *nethttp.Request, raw string) {
	at, ok := h.evaluationInstant(w, r)
	if !ok {
		return
	}
	p, ok := h.lookupPlayer(w, r, raw)
	if !ok {
		return
	}
	a, err := h.assessments.Assess(r.Context(), p, at)
	if err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "request cancelled", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, a, h.logger)
}

// TeamSummary aggregates the roster. Without an explicit instant the cached
// roster assessments are used, players not yet scored are scored now, and the
// summary is stamped with the newest evaluation it contains.
func (h *Handler) TeamSummary(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	at, ok := h.evaluationInstant(w, r)
	if !ok {
		return
	}
	explicit := !at.IsZero()
	if !explicit {
		at = h.assessments.Now()
	}

	roster := h.players.Players()
	items := make([]assessments.PlayerAssessment, 0, len(roster))
	for _, p := range roster {
		if !explicit {
			if cached, found := h.assessments.Latest(p.ID); found {
				items = append(items, cached)
				continue
			}
		}
		a, err := h.assessments.Assess(r.Context(), p, at)
		if err != nil {
			writeError(w, r, nethttp.StatusServiceUnavailable, "request cancelled", h.logger)
			return
		}
		items = append(items, a)
	}
	if !explicit {
		at = appassessments.LatestEvaluatedAt(items, at)
	}
	writeJSON(w, nethttp.StatusOK, appassessments.Summarize(items, at), h.logger)
}

// Analyze scores an ad-hoc player posted as JSON.
func (h *Handler) Analyze(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	at, ok := h.evaluationInstant(w, r)
	if !ok {
		return
	}

	p, status, err := decodePlayer(w, r)
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "analyze rejected", "error", err)
		writeError(w, r, status, err.Error(), h.logger)
		return
	}

	a, err := h.assessments.Assess(r.Context(), p, at)
	if err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "request cancelled", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, a, h.logger)
}

func (h *Handler) lookupPlayer(w nethttp.ResponseWriter, r *nethttp.Request, raw string) (players.Player, bool) {
	id, err := url.PathUnescape(raw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return players.Player{}, false
	}
	p, err := h.players.Lookup(id)
	if errors.Is(err, appplayers.ErrPlayerNotFound) {
		writeError(w, r, nethttp.StatusNotFound, appplayers.ErrPlayerNotFound.Error(), h.logger)
		return players.Player{}, false
	}
	return p, true
}

// evaluationInstant parses the optional `at` query; zero means "now".
func (h *Handler) evaluationInstant(w nethttp.ResponseWriter, r *nethttp.Request) (time.Time, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("at"))
	if raw == "" {
		return time.Time{}, true
	}
	at, err := timeutil.ParseInstant(raw)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid at (expected RFC3339 or YYYY-MM-DD)", h.logger)
		return time.Time{}, false
	}
	return at, true
}
