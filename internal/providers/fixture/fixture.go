package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

// Provider returns the static demo roster shown on the dashboard.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayers returns a fresh copy of the demo roster.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Players(), nil
}

// Players builds the demo roster. Each call returns new slices so callers may not alias.
func Players() []players.Player {
	return []players.Player{
		{
			ID:        "001",
			Name:      "Alex Rodriguez",
			Age:       28,
			Positions: players.Positions{players.PositionForward},
			HeightCm:  185,
			WeightKg:  78,
			PreviousInjuries: []players.PreviousInjury{
				{BodyParts: players.BodyParts{players.BodyPartHamstring}, OccurredOn: date(2023, time.March, 15), Severity: players.SeverityMinor, RecoveryDays: 14},
			},
			Performance: players.Performance{HoursPlayed: 1240, GamesPlayed: 45, IntensityLevel: 8.5, FatigueScore: 6.2},
			MedicalHistory: players.MedicalHistory{
				ChronicConditions: []string{},
				Surgeries:         []string{},
				Medications:       []string{},
			},
		},
		{
			ID:        "002",
			Name:      "Maria Santos",
			Age:       24,
			Positions: players.Positions{players.PositionMidfielder},
			HeightCm:  170,
			WeightKg:  65,
			PreviousInjuries: []players.PreviousInjury{
				{BodyParts: players.BodyParts{players.BodyPartAnkle}, OccurredOn: date(2023, time.January, 20), Severity: players.SeverityModerate, RecoveryDays: 28},
				{BodyParts: players.BodyParts{players.BodyPartKnee}, OccurredOn: date(2022, time.August, 10), Severity: players.SeveritySevere, RecoveryDays: 90},
			},
			Performance: players.Performance{HoursPlayed: 1580, GamesPlayed: 52, IntensityLevel: 9.1, FatigueScore: 7.8},
			MedicalHistory: players.MedicalHistory{
				ChronicConditions: []string{"previous_knee_injury"},
				Surgeries:         []string{"knee_reconstruction"},
				Medications:       []string{},
			},
		},
		{
			ID:               "003",
			Name:             "James Wilson",
			Age:              31,
			Positions:        players.Positions{players.PositionDefender},
			HeightCm:         190,
			WeightKg:         85,
			PreviousInjuries: []players.PreviousInjury{},
			Performance:      players.Performance{HoursPlayed: 980, GamesPlayed: 38, IntensityLevel: 7.2, FatigueScore: 4.5},
			MedicalHistory: players.MedicalHistory{
				ChronicConditions: []string{},
				Surgeries:         []string{},
				Medications:       []string{},
			},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
