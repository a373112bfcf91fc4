package providers

import (
	"context"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

// RosterProvider supplies the players the service scores.
type RosterProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}
