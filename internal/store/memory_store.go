package store

import (
	"sort"
	"sync"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

// MemoryStore keeps a thread-safe roster and the latest assessment per player in memory.
type MemoryStore struct {
	mu          sync.RWMutex
	players     map[string]players.Player
	assessments map[string]assessments.PlayerAssessment
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players:     make(map[string]players.Player),
		assessments: make(map[string]assessments.PlayerAssessment),
	}
}

// ListPlayers returns the roster sorted by ID.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, 0, len(s.players))
	for _, p := range s.players {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	return p, ok
}

// SetPlayers replaces the roster. Cached assessments for players that left are dropped.
func (s *MemoryStore) SetPlayers(items []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[string]players.Player, len(items))
	for _, p := range items {
		s.players[p.ID] = p
	}
	for id := range s.assessments {
		if _, ok := s.players[id]; !ok {
			delete(s.assessments, id)
		}
	}
}

// SaveAssessments records the latest assessment for each player.
func (s *MemoryStore) SaveAssessments(items []assessments.PlayerAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range items {
		s.assessments[a.Player.ID] = a
	}
}

// LatestAssessment returns the cached assessment for a player.
func (s *MemoryStore) LatestAssessment(playerID string) (assessments.PlayerAssessment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assessments[playerID]
	return a, ok
}
