package models

import (
	"strings"
	"time"
)

type BodyPart string

const (
	BodyPartShoulder  BodyPart = "shoulder"
	BodyPartKnee      BodyPart = "knee"
	BodyPartLowerBack BodyPart = "lower_back"
	BodyPartAnkle     BodyPart = "ankle"
	BodyPartWrist     BodyPart = "wrist"
	BodyPartElbow     BodyPart = "elbow"
	BodyPartHip       BodyPart = "hip"
	BodyPartGeneral   BodyPart = "general"
)

// BodyParts lists every accepted body part.
var BodyParts = []BodyPart{
	BodyPartShoulder, BodyPartKnee, BodyPartLowerBack, BodyPartAnkle,
	BodyPartWrist, BodyPartElbow, BodyPartHip, BodyPartGeneral,
}

// ParseBodyPart normalizes s; unknown values become general.
func ParseBodyPart(s string) BodyPart {
	s = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
	for _, bp := range BodyParts {
		if s == string(bp) {
			return bp
		}
	}
	return BodyPartGeneral
}

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// ParseSeverity normalizes s; unknown values become mild.
func ParseSeverity(s string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeveritySevere:
		return SeveritySevere
	case SeverityModerate:
		return SeverityModerate
	default:
		return SeverityMild
	}
}

type InjuryStatus string

const (
	InjuryActive InjuryStatus = "active"
	InjuryRehab  InjuryStatus = "rehab"
	InjuryHealed InjuryStatus = "healed"
)

// ParseInjuryStatus normalizes s; unknown values become active.
func ParseInjuryStatus(s string) InjuryStatus {
	switch InjuryStatus(strings.ToLower(strings.TrimSpace(s))) {
	case InjuryRehab:
		return InjuryRehab
	case InjuryHealed:
		return InjuryHealed
	default:
		return InjuryActive
	}
}

// Injury is a reported injury. Injuries are never deleted; healing is a
// status transition.
type Injury struct {
	ID         int64        `json:"id"`
	UserID     int          `json:"user_id"`
	BodyPart   BodyPart     `json:"body_part"`
	InjuryType string       `json:"injury_type,omitempty"`
	Severity   Severity     `json:"severity"`
	PainLevel  int          `json:"pain_level"`
	Status     InjuryStatus `json:"status"`
	Notes      string       `json:"notes,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Active reports whether the injury still limits training.
func (i Injury) Active() bool {
	return i.Status != InjuryHealed
}

// Pain returns the pain level clamped to 1-10.
func (i Injury) Pain() int {
	return ClampPain(i.PainLevel)
}

func ClampPain(p int) int {
	return min(max(p, 1), 10)
}

// InjuryUpdate carries the mutable fields of an injury. Nil fields are left as is.
type InjuryUpdate struct {
	PainLevel *int          `json:"pain_level,omitempty"`
	Status    *InjuryStatus `json:"status,omitempty" validate:"omitempty,oneof=active rehab healed"`
	Notes     *string       `json:"notes,omitempty"`
}
