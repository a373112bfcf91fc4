package risk

import (
	"sort"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

var (
	factorAge = assessments.RiskFactor{
		Factor:      "Age",
		Impact:      0.15,
		Description: "Players over 30 have increased injury risk",
	}
	factorInjuryHistory = assessments.RiskFactor{
		Factor:      "Injury History",
		Impact:      0.25,
		Description: "Multiple previous injuries increase re-injury risk",
	}
	factorHighFatigue = assessments.RiskFactor{
		Factor:      "High Fatigue",
		Impact:      0.2,
		Description: "Elevated fatigue levels compromise injury resistance",
	}
	factorHighPlayingTime = assessments.RiskFactor{
		Factor:      "High Playing Time",
		Impact:      0.15,
		Description: "Excessive playing time increases injury risk",
	}
)

const (
	ageFactorThreshold      = 30
	injuryFactorThreshold   = 2
	fatigueThreshold        = 7.0
	playingTimeThresholdHrs = 2.5
)

// Factors returns the triggered risk factors, highest impact first.
// Ties keep evaluation order. A player with no games never triggers High Playing Time.
func Factors(p players.Player) []assessments.RiskFactor {
	factors := make([]assessments.RiskFactor, 0, 4)

	if p.Age > ageFactorThreshold {
		factors = append(factors, factorAge)
	}
	if len(p.PreviousInjuries) > injuryFactorThreshold {
		factors = append(factors, factorInjuryHistory)
	}
	if p.Performance.FatigueScore > fatigueThreshold {
		factors = append(factors, factorHighFatigue)
	}
	if p.Performance.HoursPerGame() > playingTimeThresholdHrs {
		factors = append(factors, factorHighPlayingTime)
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Impact > factors[j].Impact
	})
	return factors
}
