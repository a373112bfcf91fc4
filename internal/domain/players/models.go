package players

import "time"

// Player is the roster record scored by the risk engine.
type Player struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Age              int              `json:"age"`
	Positions        Positions        `json:"position"`
	HeightCm         float64          `json:"height"`
	WeightKg         float64          `json:"weight"`
	PreviousInjuries []PreviousInjury `json:"previousInjuries"`
	Performance      Performance      `json:"performance"`
	MedicalHistory   MedicalHistory   `json:"medicalHistory"`
}

// PreviousInjury is one entry of a player's injury history.
type PreviousInjury struct {
	BodyParts    BodyParts `json:"type"`
	OccurredOn   time.Time `json:"date"`
	Severity     Severity  `json:"severity"`
	RecoveryDays int       `json:"recoveryTime"`
}

// Performance holds season workload figures. Intensity and fatigue are on a 0-10 scale.
type Performance struct {
	HoursPlayed    float64 `json:"hoursPlayed"`
	GamesPlayed    float64 `json:"gamesPlayed"`
	IntensityLevel float64 `json:"intensityLevel"`
	FatigueScore   float64 `json:"fatigueScore"`
}

// MedicalHistory lists known conditions. Only chronic conditions feed the risk score.
type MedicalHistory struct {
	ChronicConditions []string `json:"chronicConditions"`
	Surgeries         []string `json:"surgeries"`
	Medications       []string `json:"medications"`
}

// HoursPerGame returns hoursPlayed / gamesPlayed, or 0 when no games were played.
func (p Performance) HoursPerGame() float64 {
	if p.GamesPlayed <= 0 {
		return 0
	}
	return p.HoursPlayed / p.GamesPlayed
}

// FirstInjury returns the first injury in history order that involved the given body part.
func (p Player) FirstInjury(part BodyPart) (PreviousInjury, bool) {
	for _, injury := range p.PreviousInjuries {
		if injury.BodyParts.Has(part) {
			return injury, true
		}
	}
	return PreviousInjury{}, false
}

// FirstName returns the leading token of the player's name.
func (p Player) FirstName() string {
	for i, r := range p.Name {
		if r == ' ' {
			return p.Name[:i]
		}
	}
	return p.Name
}
