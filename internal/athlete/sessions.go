package athlete

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meltforce/hybridcoach/internal/fatigue"
	"github.com/meltforce/hybridcoach/internal/metrics"
	"github.com/meltforce/hybridcoach/internal/models"
)

// SessionLog is a completed session as reported by the athlete. ImpactType
// is derived from the discipline when empty; unknown types get the flat
// fallback cost.
type SessionLog struct {
	Discipline      string     `json:"discipline" validate:"required"`
	ImpactType      string     `json:"impact_type,omitempty"`
	RPE             int        `json:"rpe" validate:"gte=1,lte=10"`
	DurationMinutes int        `json:"duration_minutes" validate:"gte=1,lte=600"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// LogSession decays the stored fatigue to now, applies the session's cost
// and persists state, session and the day's minutes together.
func (s *Service) LogSession(ctx context.Context, userID int, in SessionLog) (*models.AthleteState, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	impact := strings.TrimSpace(in.ImpactType)
	if impact == "" {
		impact = fatigue.ImpactTypeFor(in.Discipline, in.RPE, in.Notes)
	}

	now := s.now()
	started := now
	if in.StartedAt != nil {
		started = *in.StartedAt
	}

	current, err := s.store.GetAthleteState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading athlete state: %w", err)
	}
	state := models.NewAthleteState(userID, now)
	if current != nil {
		state = current.DecayedTo(now)
	}
	state.Fatigue = fatigue.ApplyImpact(state.Fatigue, impact, in.RPE, in.DurationMinutes)
	state.LastWorkoutAt = &started
	state.UpdatedAt = now

	sess := models.TrainingSession{
		ID:              uuid.New(),
		UserID:          userID,
		Discipline:      strings.TrimSpace(in.Discipline),
		ImpactType:      impact,
		StartedAt:       started,
		DurationMinutes: in.DurationMinutes,
		RPE:             in.RPE,
		Notes:           in.Notes,
	}
	if err := s.store.RecordSession(ctx, state, sess); err != nil {
		return nil, fmt.Errorf("recording session: %w", err)
	}

	label := impact
	if !fatigue.KnownSessionType(impact) {
		label = "other"
	}
	metrics.SessionsLogged.WithLabelValues(label).Inc()
	s.log.Info("session logged", "user_id", userID, "impact_type", impact,
		"rpe", in.RPE, "minutes", in.DurationMinutes, "cns", state.Fatigue.CNS)
	return &state, nil
}

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

func listLimit(n int) int {
	if n <= 0 {
		return defaultListLimit
	}
	return min(n, maxListLimit)
}

// RecentSessions returns the newest sessions first.
func (s *Service) RecentSessions(ctx context.Context, userID, limit int) ([]models.TrainingSession, error) {
	sessions, err := s.store.ListTrainingSessions(ctx, userID, listLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	if sessions == nil {
		sessions = []models.TrainingSession{}
	}
	return sessions, nil
}
