package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/injury-risk-service/internal/http/requestutil"
	"github.com/preston-bernstein/injury-risk-service/internal/logging"
	"github.com/preston-bernstein/injury-risk-service/internal/poller"
)

// Rescorer runs a roster refresh on demand.
type Rescorer interface {
	RunOnce(ctx context.Context) error
	Status() poller.Status
}

// AdminHandler exposes admin-only endpoints (e.g., forced rescoring).
type AdminHandler struct {
	rescorer Rescorer
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(rescorer Rescorer, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		rescorer: rescorer,
		token:    token,
		logger:   logger,
	}
}

// Rescore refetches the roster and rescores every player immediately.
// Guarded by a bearer token; returns 401 when missing or invalid.
func (h *AdminHandler) Rescore(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.rescorer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "rescorer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.rescorer.RunOnce(r.Context()); err != nil {
		logging.Warn(logger, "admin rescore failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "failed to rescore roster", logger)
		return
	}

	status := h.rescorer.Status()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"players":         status.PlayersScored,
		"highRiskPlayers": status.HighRiskPlayers,
	}, logger)
	logging.Info(logger, "admin rescore complete", slog.Int(logging.FieldCount, status.PlayersScored))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
