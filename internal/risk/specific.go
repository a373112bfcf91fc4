package risk

import (
	"time"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
	"github.com/preston-bernstein/injury-risk-service/internal/timeutil"
)

const (
	priorInjuryBonus  = 0.2
	recentInjuryBonus = 0.1
	recentWindowDays  = 365.0
)

// positionBonuses lists the body part each role loads harder. A player holding
// several roles receives every matching bonus.
var positionBonuses = []struct {
	role  players.Position
	part  players.BodyPart
	bonus float64
}{
	{players.PositionForward, players.BodyPartHamstring, 0.1},
	{players.PositionMidfielder, players.BodyPartAnkle, 0.1},
	{players.PositionDefender, players.BodyPartKnee, 0.05},
}

// SpecificRisks adjusts the overall risk for every tracked body part as of at.
func SpecificRisks(p players.Player, overall float64, at time.Time) assessments.SpecificRisks {
	return assessments.NewSpecificRisks(func(part players.BodyPart) float64 {
		return BodyPartRisk(p, overall, part, at)
	})
}

// BodyPartRisk starts from overall and adds history, recency and position adjustments.
func BodyPartRisk(p players.Player, overall float64, part players.BodyPart, at time.Time) float64 {
	adjusted := overall

	if injury, ok := p.FirstInjury(part); ok {
		adjusted += priorInjuryBonus
		if timeutil.DaysBetween(injury.OccurredOn, at) < recentWindowDays {
			adjusted += recentInjuryBonus
		}
	}

	for _, pb := range positionBonuses {
		if pb.part == part && p.Positions.Has(pb.role) {
			adjusted += pb.bonus
		}
	}

	return clamp01(adjusted)
}
