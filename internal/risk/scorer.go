// Package risk implements the heuristic injury-risk model.
//
// Scoring is a pure function of a player record and an evaluation instant; nothing is
// cached between calls, so callers may score players concurrently.
package risk

import (
	"math"
	"time"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

// Scorer evaluates players against a clock. The zero value uses time.Now.
type Scorer struct {
	now func() time.Time
}

// NewScorer returns a Scorer reading the wall clock.
func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// NewScorerWithClock returns a Scorer pinned to the given clock (useful in tests).
func NewScorerWithClock(now func() time.Time) *Scorer {
	return &Scorer{now: now}
}

// Analyze scores the player at the scorer's current instant.
func (s *Scorer) Analyze(p players.Player) assessments.InjuryRisk {
	return AnalyzeRisk(p, s.Now())
}

// Now returns the scorer's current instant.
func (s *Scorer) Now() time.Time {
	if s == nil || s.now == nil {
		return time.Now()
	}
	return s.now()
}

// AnalyzeRisk computes the full injury-risk assessment for p as of at.
func AnalyzeRisk(p players.Player, at time.Time) assessments.InjuryRisk {
	overall := OverallRisk(p)
	specific := SpecificRisks(p, overall, at)
	level := Level(overall)

	return assessments.InjuryRisk{
		OverallRisk:     overall,
		RiskLevel:       level,
		SpecificRisks:   specific,
		RiskFactors:     Factors(p),
		Recommendations: Recommendations(p, level, specific),
	}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
