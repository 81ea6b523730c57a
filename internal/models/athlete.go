package models

import (
	"strings"
	"time"

	"github.com/meltforce/hybridcoach/internal/fatigue"
)

// MesocyclePhase is the current block of a periodized plan. Informational
// only; plan generation does not branch on it.
type MesocyclePhase string

const (
	PhaseAccumulation MesocyclePhase = "Accumulation"
	PhasePeak         MesocyclePhase = "Peak"
	PhaseDeload       MesocyclePhase = "Deload"
	PhaseRecovery     MesocyclePhase = "Recovery"
)

// ParsePhase maps a case-insensitive name to a phase, defaulting to Accumulation.
func ParsePhase(s string) MesocyclePhase {
	for _, p := range []MesocyclePhase{PhaseAccumulation, PhasePeak, PhaseDeload, PhaseRecovery} {
		if strings.EqualFold(s, string(p)) {
			return p
		}
	}
	return PhaseAccumulation
}

// AthleteState is the persisted fatigue snapshot for one user.
type AthleteState struct {
	UserID        int            `json:"user_id"`
	Fatigue       fatigue.Vector `json:"fatigue"`
	Phase         MesocyclePhase `json:"phase"`
	WeekInPhase   int            `json:"week_in_phase"`
	LastWorkoutAt *time.Time     `json:"last_workout_at,omitempty"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NewAthleteState returns a fresh, fully recovered state.
func NewAthleteState(userID int, now time.Time) AthleteState {
	return AthleteState{
		UserID:      userID,
		Phase:       PhaseAccumulation,
		WeekInPhase: 1,
		UpdatedAt:   now,
	}
}

// Normalize clamps fatigue and fills defaults for phase and week.
func (s AthleteState) Normalize() AthleteState {
	s.Fatigue = s.Fatigue.Clamp()
	s.Phase = ParsePhase(string(s.Phase))
	if s.WeekInPhase < 1 {
		s.WeekInPhase = 1
	}
	return s
}

// DecayedTo returns the state with fatigue recovered up to now.
func (s AthleteState) DecayedTo(now time.Time) AthleteState {
	s = s.Normalize()
	if now.After(s.UpdatedAt) {
		s.Fatigue = fatigue.Decay(s.Fatigue, now.Sub(s.UpdatedAt).Hours())
		s.UpdatedAt = now
	}
	return s
}
