package assessments

import (
	"time"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

// RiskLevel is the three-band discretisation of overall risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskLevels lists the bands from lowest to highest.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh}

// RiskFactor is a named contributor surfaced to explain a score.
type RiskFactor struct {
	Factor      string  `json:"factor"`
	Impact      float64 `json:"impact"`
	Description string  `json:"description"`
}

// SpecificRisks holds the per-body-part risk values.
type SpecificRisks struct {
	Hamstring float64 `json:"hamstring"`
	Ankle     float64 `json:"ankle"`
	Knee      float64 `json:"knee"`
	Shoulder  float64 `json:"shoulder"`
	Back      float64 `json:"back"`
}

// For returns the risk for a tracked body part; untracked parts report 0.
func (s SpecificRisks) For(part players.BodyPart) float64 {
	switch part {
	case players.BodyPartHamstring:
		return s.Hamstring
	case players.BodyPartAnkle:
		return s.Ankle
	case players.BodyPartKnee:
		return s.Knee
	case players.BodyPartShoulder:
		return s.Shoulder
	case players.BodyPartBack:
		return s.Back
	default:
		return 0
	}
}

func (s *SpecificRisks) set(part players.BodyPart, v float64) {
	switch part {
	case players.BodyPartHamstring:
		s.Hamstring = v
	case players.BodyPartAnkle:
		s.Ankle = v
	case players.BodyPartKnee:
		s.Knee = v
	case players.BodyPartShoulder:
		s.Shoulder = v
	case players.BodyPartBack:
		s.Back = v
	}
}

// NewSpecificRisks builds SpecificRisks from a per-part lookup.
func NewSpecificRisks(risk func(players.BodyPart) float64) SpecificRisks {
	var s SpecificRisks
	for _, part := range players.TrackedBodyParts {
		s.set(part, risk(part))
	}
	return s
}

// InjuryRisk is the full output of one scoring call.
type InjuryRisk struct {
	OverallRisk     float64       `json:"overallRisk"`
	RiskLevel       RiskLevel     `json:"riskLevel"`
	SpecificRisks   SpecificRisks `json:"specificRisks"`
	RiskFactors     []RiskFactor  `json:"riskFactors"`
	Recommendations []string      `json:"recommendations"`
}

// PlayerAssessment ties a player to the risk computed for them at a given instant.
type PlayerAssessment struct {
	ID          string         `json:"id"`
	Player      players.Player `json:"player"`
	Risk        InjuryRisk     `json:"risk"`
	EvaluatedAt time.Time      `json:"evaluatedAt"`
}

// RiskDistribution counts players per risk level.
type RiskDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Add increments the bucket for level.
func (d *RiskDistribution) Add(level RiskLevel) {
	switch level {
	case RiskLow:
		d.Low++
	case RiskMedium:
		d.Medium++
	case RiskHigh:
		d.High++
	}
}

// ChartPoint is one bar of the team risk chart.
type ChartPoint struct {
	Name        string    `json:"name"`
	RiskPercent int       `json:"riskPercent"`
	RiskLevel   RiskLevel `json:"riskLevel"`
}

// TeamSummary aggregates assessments for the dashboard view.
type TeamSummary struct {
	TotalPlayers       int              `json:"totalPlayers"`
	AverageRisk        float64          `json:"averageRisk"`
	AverageRiskPercent int              `json:"averageRiskPercent"`
	HighRiskPlayers    int              `json:"highRiskPlayers"`
	RiskDistribution   RiskDistribution `json:"riskDistribution"`
	Chart              []ChartPoint     `json:"chart"`
	EvaluatedAt        time.Time        `json:"evaluatedAt"`
}
