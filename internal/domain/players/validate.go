package players

import (
	"errors"
	"fmt"
)

// ErrInvalidPlayer marks validation failures on an incoming player record.
var ErrInvalidPlayer = errors.New("invalid player")

// Validate checks the record against the ranges the risk model expects.
// All problems are reported together, each wrapping ErrInvalidPlayer.
func (p Player) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidPlayer}, args...)...))
	}

	if p.ID == "" {
		add("id is required")
	}
	if p.Name == "" {
		add("name is required")
	}
	if p.Age <= 0 {
		add("age must be positive, got %d", p.Age)
	}
	if p.Performance.HoursPlayed < 0 {
		add("hoursPlayed must not be negative")
	}
	if p.Performance.GamesPlayed < 0 {
		add("gamesPlayed must not be negative")
	}
	if !inScale(p.Performance.IntensityLevel) {
		add("intensityLevel must be within [0,10], got %v", p.Performance.IntensityLevel)
	}
	if !inScale(p.Performance.FatigueScore) {
		add("fatigueScore must be within [0,10], got %v", p.Performance.FatigueScore)
	}
	for idx, injury := range p.PreviousInjuries {
		if injury.RecoveryDays < 0 {
			add("previousInjuries[%d].recoveryTime must not be negative", idx)
		}
		if injury.OccurredOn.IsZero() {
			add("previousInjuries[%d].date is required", idx)
		}
		if injury.Severity != "" && !injury.Severity.IsValid() {
			add("previousInjuries[%d].severity %q is unknown", idx, injury.Severity)
		}
	}
	return errors.Join(errs...)
}

func inScale(v float64) bool {
	return v >= 0 && v <= 10
}
