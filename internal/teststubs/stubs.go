package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

// StubProvider is a test double for providers.RosterProvider.
type StubProvider struct {
	mu      sync.Mutex
	players []players.Player
	err     error

	Calls  atomic.Int32
	Notify chan struct{}
}

// NewStubProvider returns a provider yielding the given roster.
func NewStubProvider(items []players.Player, err error) *StubProvider {
	return &StubProvider{players: items, err: err}
}

// Set swaps the configured roster and error.
func (s *StubProvider) Set(items []players.Player, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = items
	s.err = err
}

// FetchPlayers returns the configured roster and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.mu.Lock()
	items, err := s.players, s.err
	s.mu.Unlock()

	s.Calls.Add(1)
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	return items, err
}

// StubRoster records roster replacements.
type StubRoster struct {
	mu       sync.Mutex
	replaced [][]players.Player
}

// ReplacePlayers records the snapshot.
func (r *StubRoster) ReplacePlayers(items []players.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaced = append(r.replaced, items)
}

// Replacements returns how many snapshots were recorded.
func (r *StubRoster) Replacements() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.replaced)
}

// Last returns the most recent snapshot.
func (r *StubRoster) Last() []players.Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.replaced) == 0 {
		return nil
	}
	return r.replaced[len(r.replaced)-1]
}

// StubAssessor is a test double for the batch scorer used by the rescorer.
type StubAssessor struct {
	mu     sync.Mutex
	Err    error
	calls  int
	lastAt time.Time
}

// AssessAll returns one low-risk assessment per player, or Err.
func (a *StubAssessor) AssessAll(ctx context.Context, items []players.Player, at time.Time) ([]assessments.PlayerAssessment, error) {
	_ = ctx
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	a.lastAt = at
	if a.Err != nil {
		return nil, a.Err
	}
	out := make([]assessments.PlayerAssessment, 0, len(items))
	for _, p := range items {
		out = append(out, assessments.PlayerAssessment{
			ID:          "stub-" + p.ID,
			Player:      p,
			Risk:        assessments.InjuryRisk{RiskLevel: assessments.RiskLow},
			EvaluatedAt: at,
		})
	}
	return out, nil
}

// Calls returns the number of AssessAll invocations.
func (a *StubAssessor) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// LastAt returns the evaluation instant of the latest call.
func (a *StubAssessor) LastAt() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastAt
}
