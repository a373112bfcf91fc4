package server

import (
	"log/slog"

	"github.com/preston-bernstein/injury-risk-service/internal/config"
	"github.com/preston-bernstein/injury-risk-service/internal/providers"
)

// providerFactory assembles the roster provider with shared wrappers.
type providerFactory struct {
	logger *slog.Logger
}

func newProviderFactory(logger *slog.Logger) providerFactory {
	return providerFactory{logger: logger}
}

func (f providerFactory) build(cfg config.Config) providers.RosterProvider {
	base := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base)
}

func (f providerFactory) wrap(cfg config.Config, base providers.RosterProvider) providers.RosterProvider {
	return providers.NewLoggingProvider(base, normalizeProviderName(cfg.Provider, base), f.logger)
}
