package risk

import (
	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

// Term weights for the overall score. They sum to 1.
const (
	weightAge       = 0.15
	weightInjuries  = 0.25
	weightLoad      = 0.20
	weightFatigue   = 0.20
	weightIntensity = 0.15
	weightMedical   = 0.05
)

const (
	ageFloor            = 20.0
	ageSpan             = 15.0
	injuryHistoryCap    = 5.0
	hoursPerGameCap     = 3.0
	chronicConditionCap = 3.0
	scaleMax            = 10.0
)

// Terms holds the normalised [0,1] inputs to the overall score, before weighting.
type Terms struct {
	Age       float64
	Injuries  float64
	Load      float64
	Fatigue   float64
	Intensity float64
	Medical   float64
}

// NormalizedTerms maps raw player attributes onto [0,1]. Out-of-range inputs are clamped here.
func NormalizedTerms(p players.Player) Terms {
	return Terms{
		Age:       clamp01((float64(p.Age) - ageFloor) / ageSpan),
		Injuries:  clamp01(float64(len(p.PreviousInjuries)) / injuryHistoryCap),
		Load:      clamp01(p.Performance.HoursPerGame() / hoursPerGameCap),
		Fatigue:   clamp01(p.Performance.FatigueScore / scaleMax),
		Intensity: clamp01(p.Performance.IntensityLevel / scaleMax),
		Medical:   clamp01(float64(len(p.MedicalHistory.ChronicConditions)) / chronicConditionCap),
	}
}

// Weighted returns the weighted sum of the terms.
func (t Terms) Weighted() float64 {
	return t.Age*weightAge +
		t.Injuries*weightInjuries +
		t.Load*weightLoad +
		t.Fatigue*weightFatigue +
		t.Intensity*weightIntensity +
		t.Medical*weightMedical
}

// OverallRisk returns the weighted overall risk, clamped to [0,1].
// With unit weights the clamp never binds; it stays for future weight changes.
func OverallRisk(p players.Player) float64 {
	return clamp01(NormalizedTerms(p).Weighted())
}

// Level classifies an overall risk. Lower band edges are inclusive.
func Level(overall float64) assessments.RiskLevel {
	switch {
	case overall >= highThreshold:
		return assessments.RiskHigh
	case overall >= mediumThreshold:
		return assessments.RiskMedium
	default:
		return assessments.RiskLow
	}
}

const (
	highThreshold   = 0.7
	mediumThreshold = 0.4
)
