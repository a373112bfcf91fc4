package risk

import (
	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

var baseRecommendations = map[assessments.RiskLevel][2]string{
	assessments.RiskHigh: {
		"Immediate rest and medical evaluation recommended",
		"Reduce training intensity by 50% for next 7 days",
	},
	assessments.RiskMedium: {
		"Monitor closely and reduce training intensity by 25%",
		"Focus on injury prevention exercises",
	},
	assessments.RiskLow: {
		"Continue current training regimen",
		"Maintain regular fitness assessments",
	},
}

const (
	recHamstring = "Focus on hamstring flexibility and strengthening"
	recKnee      = "Include knee stabilization exercises"
	recRecovery  = "Prioritize recovery and sleep optimization"

	specificRiskThreshold = 0.6
)

// Recommendations returns the level's base advice followed by targeted additions.
func Recommendations(p players.Player, level assessments.RiskLevel, specific assessments.SpecificRisks) []string {
	base, ok := baseRecommendations[level]
	if !ok {
		base = baseRecommendations[assessments.RiskLow]
	}
	recs := []string{base[0], base[1]}

	if specific.Hamstring > specificRiskThreshold {
		recs = append(recs, recHamstring)
	}
	if specific.Knee > specificRiskThreshold {
		recs = append(recs, recKnee)
	}
	if p.Performance.FatigueScore > fatigueThreshold {
		recs = append(recs, recRecovery)
	}
	return recs
}
