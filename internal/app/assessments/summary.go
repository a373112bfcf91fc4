package assessments

import (
	"math"
	"time"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
)

// Summarize aggregates assessments into the dashboard view.
// An empty roster yields zero averages and counts.
func Summarize(items []assessments.PlayerAssessment, at time.Time) assessments.TeamSummary {
	summary := assessments.TeamSummary{
		TotalPlayers: len(items),
		Chart:        make([]assessments.ChartPoint, 0, len(items)),
		EvaluatedAt:  at,
	}

	var total float64
	for _, a := range items {
		total += a.Risk.OverallRisk
		summary.RiskDistribution.Add(a.Risk.RiskLevel)
		summary.Chart = append(summary.Chart, assessments.ChartPoint{
			Name:        a.Player.FirstName(),
			RiskPercent: percent(a.Risk.OverallRisk),
			RiskLevel:   a.Risk.RiskLevel,
		})
	}

	summary.HighRiskPlayers = summary.RiskDistribution.High
	if len(items) > 0 {
		summary.AverageRisk = total / float64(len(items))
		summary.AverageRiskPercent = percent(summary.AverageRisk)
	}
	return summary
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}

// LatestEvaluatedAt returns the most recent EvaluatedAt among items, or fallback when there are none.
func LatestEvaluatedAt(items []assessments.PlayerAssessment, fallback time.Time) time.Time {
	var latest time.Time
	for _, a := range items {
		if a.EvaluatedAt.After(latest) {
			latest = a.EvaluatedAt
		}
	}
	if latest.IsZero() {
		return fallback
	}
	return latest
}
