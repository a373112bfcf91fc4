package server

import (
	"log/slog"

	"github.com/preston-bernstein/injury-risk-service/internal/config"
	"github.com/preston-bernstein/injury-risk-service/internal/logging"
	"github.com/preston-bernstein/injury-risk-service/internal/providers"
	"github.com/preston-bernstein/injury-risk-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.RosterProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
