package athlete

import (
	"context"
	"fmt"

	"github.com/meltforce/hybridcoach/internal/metrics"
	"github.com/meltforce/hybridcoach/internal/models"
	"github.com/meltforce/hybridcoach/internal/readiness"
	"github.com/meltforce/hybridcoach/internal/safety"
)

// CheckIn is the athlete's morning report.
type CheckIn struct {
	FatigueLevel int      `json:"fatigue_level" validate:"gte=0,lte=10"`
	SleepHours   float64  `json:"sleep_hours" validate:"gte=0,lte=24"`
	Soreness     []string `json:"soreness"`
	Motivation   int      `json:"motivation" validate:"gte=0,lte=10"`
	Mood         *int     `json:"mood,omitempty" validate:"omitempty,gte=1,lte=10"`
	// SorenessLevel is the overall 1-10 soreness recorded in the daily log.
	SorenessLevel *int `json:"soreness_level,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// CheckIn runs the safety cascade and records the reported values in
// today's log together with a fresh recovery score.
func (s *Service) CheckIn(ctx context.Context, userID int, in CheckIn) (*safety.Evaluation, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	ev := safety.Evaluate(safety.Input{
		FatigueLevel: in.FatigueLevel,
		SleepHours:   in.SleepHours,
		Soreness:     in.Soreness,
		Motivation:   in.Motivation,
	})
	metrics.SafetyRuleHits.WithLabelValues(ev.Rule).Inc()

	sleep := in.SleepHours
	if _, err := s.updateToday(ctx, userID, models.DailyLogUpdate{
		SleepHours: &sleep,
		Mood:       in.Mood,
		Soreness:   in.SorenessLevel,
	}); err != nil {
		return nil, err
	}
	s.log.Debug("check-in evaluated", "user_id", userID, "rule", ev.Rule)
	return &ev, nil
}

// Today returns today's log; days with nothing reported yet come back empty.
func (s *Service) Today(ctx context.Context, userID int) (*models.DailyLog, error) {
	now := s.now()
	l, err := s.store.GetDailyLog(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("loading daily log: %w", err)
	}
	if l == nil {
		l = &models.DailyLog{UserID: userID, Date: models.Day(now)}
	}
	return l, nil
}

// UpdateToday merges reported values into today's log.
func (s *Service) UpdateToday(ctx context.Context, userID int, upd models.DailyLogUpdate) (*models.DailyLog, error) {
	if err := s.check(upd); err != nil {
		return nil, err
	}
	return s.updateToday(ctx, userID, upd)
}

func (s *Service) updateToday(ctx context.Context, userID int, upd models.DailyLogUpdate) (*models.DailyLog, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	l := snap.Today
	if l == nil {
		l = &models.DailyLog{UserID: userID, Date: models.Day(s.now())}
	}
	upd.Apply(l)

	score := readiness.Calculate(snap.Injuries, &snap.State.Fatigue, l.SleepHours).Score
	l.RecoveryScore = &score

	if err := s.store.UpsertDailyLog(ctx, *l); err != nil {
		return nil, fmt.Errorf("saving daily log: %w", err)
	}
	return l, nil
}

// DailyTasks returns today's tasks, creating them on first access.
func (s *Service) DailyTasks(ctx context.Context, userID int) ([]models.DailyTask, error) {
	tasks, err := s.store.EnsureDailyTasks(ctx, userID, s.now(), models.DefaultDailyTasks)
	if err != nil {
		return nil, fmt.Errorf("loading daily tasks: %w", err)
	}
	return tasks, nil
}

func (s *Service) CompleteTask(ctx context.Context, userID int, id int64) error {
	ok, err := s.store.CompleteDailyTask(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	if !ok {
		return ErrTaskNotFound
	}
	return nil
}
