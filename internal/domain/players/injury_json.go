package players

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/preston-bernstein/injury-risk-service/internal/timeutil"
)

type injuryJSON struct {
	BodyParts    BodyParts `json:"type"`
	OccurredOn   string    `json:"date"`
	Severity     Severity  `json:"severity"`
	RecoveryDays int       `json:"recoveryTime"`
}

// MarshalJSON writes the injury date as YYYY-MM-DD.
func (i PreviousInjury) MarshalJSON() ([]byte, error) {
	return json.Marshal(injuryJSON{
		BodyParts:    i.BodyParts,
		OccurredOn:   timeutil.FormatDate(i.OccurredOn.UTC()),
		Severity:     i.Severity,
		RecoveryDays: i.RecoveryDays,
	})
}

// UnmarshalJSON accepts the injury date as YYYY-MM-DD or RFC3339.
func (i *PreviousInjury) UnmarshalJSON(data []byte) error {
	var raw injuryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var occurred time.Time
	if raw.OccurredOn != "" {
		parsed, err := timeutil.ParseInstant(raw.OccurredOn)
		if err != nil {
			return fmt.Errorf("injury date: %w", err)
		}
		occurred = parsed
	}
	*i = PreviousInjury{
		BodyParts:    raw.BodyParts,
		OccurredOn:   occurred,
		Severity:     raw.Severity,
		RecoveryDays: raw.RecoveryDays,
	}
	return nil
}
