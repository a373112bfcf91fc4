package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
	"github.com/preston-bernstein/injury-risk-service/internal/logging"
)

// loggingProvider wraps a RosterProvider and logs every fetch with its outcome.
type loggingProvider struct {
	inner  RosterProvider
	name   string
	logger *slog.Logger
}

// NewLoggingProvider decorates inner with fetch logging under the given provider name.
func NewLoggingProvider(inner RosterProvider, name string, logger *slog.Logger) RosterProvider {
	return &loggingProvider{inner: inner, name: name, logger: logger}
}

func (p *loggingProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if p == nil || p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	items, err := p.inner.FetchPlayers(ctx)
	elapsed := time.Since(start).Milliseconds()
	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, p.name, "roster fetch failed",
			"error", err, logging.FieldDurationMS, elapsed)
		return nil, err
	}
	logWithProvider(ctx, logger, slog.LevelDebug, p.name, "roster fetched",
		logging.FieldCount, len(items), logging.FieldDurationMS, elapsed)
	return items, nil
}

// logWithProvider emits a log entry if logger is non-nil and always includes provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
