package players

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BodyPart tags an injury with the body region it affected.
type BodyPart string

const (
	BodyPartHamstring BodyPart = "hamstring"
	BodyPartAnkle     BodyPart = "ankle"
	BodyPartKnee      BodyPart = "knee"
	BodyPartShoulder  BodyPart = "shoulder"
	BodyPartBack      BodyPart = "back"
	// BodyPartOther is never tracked; it names injuries outside TrackedBodyParts.
	BodyPartOther     BodyPart = "other"
)

// TrackedBodyParts lists the regions that receive a specific risk, in reporting order.
var TrackedBodyParts = []BodyPart{
	BodyPartHamstring,
	BodyPartAnkle,
	BodyPartKnee,
	BodyPartShoulder,
	BodyPartBack,
}

// BodyParts is the set of tracked regions an injury description names.
type BodyParts []BodyPart

// ParseBodyParts collects every tracked part contained in free text such as
// "Knee and ankle sprain", in TrackedBodyParts order. Untracked text yields an empty set.
func ParseBodyParts(raw string) BodyParts {
	text := strings.ToLower(raw)
	var parts BodyParts
	for _, part := range TrackedBodyParts {
		if strings.Contains(text, string(part)) {
			parts = append(parts, part)
		}
	}
	return parts
}

// Has reports whether part is in the set.
func (b BodyParts) Has(part BodyPart) bool {
	for _, p := range b {
		if p == part {
			return true
		}
	}
	return false
}

func (b BodyParts) String() string {
	if len(b) == 0 {
		return string(BodyPartOther)
	}
	names := make([]string, len(b))
	for i, p := range b {
		names[i] = string(p)
	}
	return strings.Join(names, "/")
}

func (b BodyParts) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *BodyParts) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("injury type: %w", err)
	}
	*b = ParseBodyParts(raw)
	return nil
}

// Position is an on-field role.
type Position string

const (
	PositionForward    Position = "forward"
	PositionMidfielder Position = "midfielder"
	PositionDefender   Position = "defender"
)

var knownPositions = []Position{PositionForward, PositionMidfielder, PositionDefender}

// Positions is the set of roles a player's position text names, so "Forward/Defender"
// carries both forward and defender.
type Positions []Position

// ParsePositions collects every known role contained in free text such as "Attacking Midfielder".
func ParsePositions(raw string) Positions {
	text := strings.ToLower(raw)
	var roles Positions
	for _, pos := range knownPositions {
		if strings.Contains(text, string(pos)) {
			roles = append(roles, pos)
		}
	}
	return roles
}

// Has reports whether role is in the set.
func (p Positions) Has(role Position) bool {
	for _, r := range p {
		if r == role {
			return true
		}
	}
	return false
}

func (p Positions) String() string {
	if len(p) == 0 {
		return "other"
	}
	names := make([]string, len(p))
	for i, r := range p {
		names[i] = string(r)
	}
	return strings.Join(names, "/")
}

func (p Positions) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Positions) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	*p = ParsePositions(raw)
	return nil
}

// Severity grades how serious a previous injury was.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// IsValid reports whether the severity is a known value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeveritySevere:
		return true
	default:
		return false
	}
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("severity: %w", err)
	}
	parsed := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if !parsed.IsValid() {
		return fmt.Errorf("unknown severity %q", raw)
	}
	*s = parsed
	return nil
}
