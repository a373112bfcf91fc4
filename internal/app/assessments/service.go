package assessments

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
	"github.com/preston-bernstein/injury-risk-service/internal/logging"
	"github.com/preston-bernstein/injury-risk-service/internal/metrics"
	"github.com/preston-bernstein/injury-risk-service/internal/risk"
)

// Sources label where a scoring request came from in metrics and logs.
const (
	SourceRoster = "roster"
	SourceAdhoc  = "adhoc"
)

const defaultWorkers = 4

// Store caches the latest assessment per player.
type Store interface {
	SaveAssessments([]assessments.PlayerAssessment)
	LatestAssessment(playerID string) (assessments.PlayerAssessment, bool)
}

// Service scores players, caches roster results and summarises the team.
type Service struct {
	store   Store
	scorer  *risk.Scorer
	metrics *metrics.Recorder
	logger  *slog.Logger
	workers int
	newID   func() string
}

// NewService wires a Service. workers bounds batch scoring concurrency (defaults to 4).
func NewService(store Store, scorer *risk.Scorer, recorder *metrics.Recorder, logger *slog.Logger, workers int) *Service {
	if scorer == nil {
		scorer = risk.NewScorer()
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Service{
		store:   store,
		scorer:  scorer,
		metrics: recorder,
		logger:  logger,
		workers: workers,
		newID:   uuid.NewString,
	}
}

// Now returns the scorer's current instant.
func (s *Service) Now() time.Time {
	return s.scorer.Now()
}

// Assess scores a single player as of at (the scorer's clock when at is zero).
// Ad-hoc results are not cached.
func (s *Service) Assess(ctx context.Context, p players.Player, at time.Time) (assessments.PlayerAssessment, error) {
	if err := ctx.Err(); err != nil {
		return assessments.PlayerAssessment{}, err
	}
	a := s.assess(p, s.instant(at), SourceAdhoc)
	logging.Info(logging.FromContext(ctx, s.logger), "player assessed",
		logging.FieldPlayerID, p.ID,
		logging.FieldRiskLevel, string(a.Risk.RiskLevel),
		logging.FieldOverall, a.Risk.OverallRisk,
	)
	return a, nil
}

// AssessAll scores every player concurrently, preserving input order, and caches the results.
func (s *Service) AssessAll(ctx context.Context, items []players.Player, at time.Time) ([]assessments.PlayerAssessment, error) {
	at = s.instant(at)
	results := make([]assessments.PlayerAssessment, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range items {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.assess(items[i], at, SourceRoster)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.store != nil {
		s.store.SaveAssessments(results)
	}
	return results, nil
}

// Latest returns the cached roster assessment for a player.
func (s *Service) Latest(playerID string) (assessments.PlayerAssessment, bool) {
	if s.store == nil {
		return assessments.PlayerAssessment{}, false
	}
	return s.store.LatestAssessment(playerID)
}

func (s *Service) assess(p players.Player, at time.Time, source string) assessments.PlayerAssessment {
	start := time.Now()
	result := risk.AnalyzeRisk(p, at)
	s.metrics.RecordAssessment(source, string(result.RiskLevel), result.OverallRisk, time.Since(start))

	return assessments.PlayerAssessment{
		ID:          s.newID(),
		Player:      p,
		Risk:        result,
		EvaluatedAt: at,
	}
}

func (s *Service) instant(at time.Time) time.Time {
	if at.IsZero() {
		return s.Now()
	}
	return at
}
