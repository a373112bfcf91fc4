package testutil

import (
	"context"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
	"github.com/preston-bernstein/injury-risk-service/internal/providers"
)

// GoodProvider returns the provided roster with no error.
type GoodProvider struct {
	Players []players.Player
}

func (p GoodProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return p.Players, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return nil, p.Err
}

// EmptyProvider returns no players, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return []players.Player{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return nil, providers.ErrProviderUnavailable
}

// NotifyingProvider returns the roster and closes Notify on first fetch.
type NotifyingProvider struct {
	Players []players.Player
	Notify  chan struct{}
}

func (p *NotifyingProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Players, nil
}
