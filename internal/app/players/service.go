package players

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

// ErrPlayerNotFound is returned when a roster lookup misses.
var ErrPlayerNotFound = errors.New("player not found")

// Store defines the contract for persisting and retrieving players.
type Store interface {
	ListPlayers() []players.Player
	GetPlayer(id string) (players.Player, bool)
	SetPlayers([]players.Player)
}

// Service coordinates roster operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns the current roster.
func (s *Service) Players() []players.Player {
	return s.store.ListPlayers()
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id string) (players.Player, bool) {
	return s.store.GetPlayer(id)
}

// Lookup returns the player or an error wrapping ErrPlayerNotFound.
func (s *Service) Lookup(id string) (players.Player, error) {
	p, ok := s.store.GetPlayer(id)
	if !ok {
		return players.Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	return p, nil
}

// ReplacePlayers swaps the in-memory roster with a new snapshot.
func (s *Service) ReplacePlayers(items []players.Player) {
	s.store.SetPlayers(items)
}
