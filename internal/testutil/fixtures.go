package testutil

import (
	"time"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
)

// EvalAt is the fixed evaluation instant used across handler and service tests.
var EvalAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// SamplePlayer returns a valid, unremarkable player with the provided id.
func SamplePlayer(id string) players.Player {
	return players.Player{
		ID:        id,
		Name:      "Sample Player",
		Age:       25,
		Positions: players.Positions{players.PositionDefender},
		HeightCm:  180,
		WeightKg:  75,
		Performance: players.Performance{
			HoursPlayed:    300,
			GamesPlayed:    20,
			IntensityLevel: 5,
			FatigueScore:   4,
		},
	}
}

// SamplePlayerJSON is the wire form of a player as posted to the analyze endpoint.
const SamplePlayerJSON = `{
  "id": "p-json",
  "name": "Jordan Lee",
  "age": 31,
  "position": "Left Forward",
  "height": 182,
  "weight": 80,
  "previousInjuries": [
    {"type": "Hamstring strain", "date": "2023-10-01", "severity": "minor", "recoveryTime": 10}
  ],
  "performance": {"hoursPlayed": 900, "gamesPlayed": 30, "intensityLevel": 7, "fatigueScore": 8},
  "medicalHistory": {"chronicConditions": [], "surgeries": [], "medications": []}
}`
