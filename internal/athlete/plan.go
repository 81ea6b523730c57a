package athlete

import (
	"context"
	"strconv"
	"strings"

	"github.com/meltforce/hybridcoach/internal/catalog"
	"github.com/meltforce/hybridcoach/internal/composer"
	"github.com/meltforce/hybridcoach/internal/fatigue"
	"github.com/meltforce/hybridcoach/internal/metrics"
	"github.com/meltforce/hybridcoach/internal/models"
	"github.com/meltforce/hybridcoach/internal/readiness"
)

// ReadinessReport combines the full readiness score with the quick fatigue
// gauge and the movements currently blocked by injuries.
type ReadinessReport struct {
	readiness.Result
	BlockedMovements []string              `json:"blocked_movements"`
	FatigueReadiness int                   `json:"fatigue_readiness"`
	Fatigue          fatigue.Vector        `json:"fatigue"`
	Phase            models.MesocyclePhase `json:"phase"`
	WeekInPhase      int                   `json:"week_in_phase"`
}

func (s *Service) Readiness(ctx context.Context, userID int) (*ReadinessReport, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	var sleep *float64
	if snap.Today != nil {
		sleep = snap.Today.SleepHours
	}
	return &ReadinessReport{
		Result:           readiness.Calculate(snap.Injuries, &snap.State.Fatigue, sleep),
		BlockedMovements: readiness.BlockedMovements(snap.Injuries),
		FatigueReadiness: snap.State.Fatigue.Readiness(),
		Fatigue:          snap.State.Fatigue,
		Phase:            snap.State.Phase,
		WeekInPhase:      snap.State.WeekInPhase,
	}, nil
}

// PlanRequest is what the athlete asks for. Empty fields fall back to the
// composer defaults.
type PlanRequest struct {
	Discipline string   `json:"discipline"`
	Difficulty string   `json:"difficulty"`
	Equipment  []string `json:"equipment"`
	Minutes    int      `json:"minutes" validate:"lte=600"`
}

// GeneratePlan builds a session from the athlete's current fatigue and
// active injuries.
func (s *Service) GeneratePlan(ctx context.Context, userID int, req PlanRequest) (*composer.SessionPlan, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	blocked := readiness.BlockedMovements(snap.Injuries)
	plan := s.composer.Generate(composer.Request{
		Fatigue:    snap.State.Fatigue,
		Equipment:  req.Equipment,
		Minutes:    req.Minutes,
		Blocked:    blocked,
		Discipline: composer.Discipline(req.Discipline),
		Difficulty: catalog.Difficulty(req.Difficulty),
	})

	recovery := snap.State.Fatigue.CNS > composer.RecoveryCNSThreshold
	metrics.PlansGenerated.WithLabelValues(string(composer.ParseDiscipline(req.Discipline)), strconv.FormatBool(recovery)).Inc()
	s.log.Debug("generated plan", "user_id", userID, "title", plan.Title,
		"cns", snap.State.Fatigue.CNS, "blocked", len(blocked))
	return &plan, nil
}

// ExerciseQuery filters the strength catalog.
type ExerciseQuery struct {
	Focus     string   `json:"focus"`
	Equipment []string `json:"equipment"`
	// SkipInjured drops exercises blocked by the athlete's active injuries.
	SkipInjured bool `json:"skip_injured"`
}

func (s *Service) Exercises(ctx context.Context, userID int, q ExerciseQuery) ([]catalog.ExerciseSpec, error) {
	var blocked []string
	if q.SkipInjured {
		injuries, err := s.ActiveInjuries(ctx, userID)
		if err != nil {
			return nil, err
		}
		blocked = readiness.BlockedMovements(injuries)
	}
	out := catalog.Exercises(catalog.ParseFocus(q.Focus), q.Equipment, blocked)
	if out == nil {
		out = []catalog.ExerciseSpec{}
	}
	return out, nil
}

// Substitute returns the preferred replacement for an exercise, or "Rest".
func (s *Service) Substitute(_ context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrInvalidInput
	}
	return catalog.Substitute(strings.TrimSpace(name)), nil
}
