package testutil

import (
	"context"

	appassessments "github.com/preston-bernstein/injury-risk-service/internal/app/assessments"
	appplayers "github.com/preston-bernstein/injury-risk-service/internal/app/players"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
	"github.com/preston-bernstein/injury-risk-service/internal/metrics"
	"github.com/preston-bernstein/injury-risk-service/internal/risk"
	"github.com/preston-bernstein/injury-risk-service/internal/store"
)

// Services bundles the application services sharing one in-memory store.
type Services struct {
	Store       *store.MemoryStore
	Players     *appplayers.Service
	Assessments *appassessments.Service
}

// NewServices builds services whose scorer clock is fixed at EvalAt.
func NewServices(recorder *metrics.Recorder) Services {
	ms := store.NewMemoryStore()
	scorer := risk.NewScorerWithClock(NowAt(EvalAt))
	return Services{
		Store:       ms,
		Players:     appplayers.NewService(ms),
		Assessments: appassessments.NewService(ms, scorer, recorder, nil, 2),
	}
}

// NewServicesWithRoster builds services preloaded with a roster that has already been scored at EvalAt.
func NewServicesWithRoster(roster []players.Player) Services {
	svcs := NewServices(nil)
	if len(roster) > 0 {
		svcs.Players.ReplacePlayers(roster)
		if _, err := svcs.Assessments.AssessAll(context.Background(), roster, EvalAt); err != nil {
			panic(err)
		}
	}
	return svcs
}
