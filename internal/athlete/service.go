// Package athlete ties persisted athlete data to the decision engine. It is
// the single entry point used by the HTTP API, the MCP tools, the CLI and the
// scheduler.
package athlete

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/meltforce/hybridcoach/internal/coach"
	"github.com/meltforce/hybridcoach/internal/composer"
	"github.com/meltforce/hybridcoach/internal/models"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInjuryNotFound = errors.New("injury not found")
	ErrTaskNotFound   = errors.New("task not found")
)

// Store is the persistence the service needs. Both the PostgreSQL
// repository and the local SQLite store satisfy it.
type Store interface {
	GetAthleteState(ctx context.Context, userID int) (*models.AthleteState, error)
	SaveAthleteState(ctx context.Context, s models.AthleteState) error
	ListAthleteStates(ctx context.Context) ([]models.AthleteState, error)
	ListUserIDs(ctx context.Context) ([]int, error)
	RecordSession(ctx context.Context, s models.AthleteState, sess models.TrainingSession) error
	ListTrainingSessions(ctx context.Context, userID, limit int) ([]models.TrainingSession, error)
	InsertInjury(ctx context.Context, i models.Injury) (int64, error)
	GetInjury(ctx context.Context, userID int, id int64) (*models.Injury, error)
	UpdateInjury(ctx context.Context, i models.Injury) error
	ListInjuries(ctx context.Context, userID int, activeOnly bool) ([]models.Injury, error)
	GetDailyLog(ctx context.Context, userID int, day time.Time) (*models.DailyLog, error)
	UpsertDailyLog(ctx context.Context, l models.DailyLog) error
	InsertChatMessage(ctx context.Context, m models.ChatMessage) error
	ListChatMessages(ctx context.Context, userID, limit int) ([]models.ChatMessage, error)
	EnsureDailyTasks(ctx context.Context, userID int, day time.Time, tasks []models.DailyTask) ([]models.DailyTask, error)
	CompleteDailyTask(ctx context.Context, userID int, id int64) (bool, error)
}

// Service implements the athlete-facing operations.
type Service struct {
	store    Store
	composer *composer.Composer
	coach    *coach.Coach
	now      func() time.Time
	log      *slog.Logger
	validate *validator.Validate
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New returns a Service. A nil composer or coach gets a default one.
func New(store Store, comp *composer.Composer, c *coach.Coach, log *slog.Logger, opts ...Option) *Service {
	if comp == nil {
		comp = composer.New()
	}
	if c == nil {
		c = coach.New(nil, log)
	}
	s := &Service{
		store:    store,
		composer: comp,
		coach:    c,
		now:      time.Now,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return nil
}

// Snapshot is everything the engine reads for one decision.
type Snapshot struct {
	State    models.AthleteState
	Injuries []models.Injury
	Today    *models.DailyLog
}

// Snapshot loads the state, active injuries and today's log concurrently.
// The state is decayed to now but not saved.
func (s *Service) Snapshot(ctx context.Context, userID int) (*Snapshot, error) {
	now := s.now()
	var (
		snap  Snapshot
		state *models.AthleteState
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		state, err = s.store.GetAthleteState(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Injuries, err = s.store.ListInjuries(gctx, userID, true)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Today, err = s.store.GetDailyLog(gctx, userID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading athlete snapshot: %w", err)
	}

	if state == nil {
		snap.State = models.NewAthleteState(userID, now)
	} else {
		snap.State = state.DecayedTo(now)
	}
	return &snap, nil
}

// Fatigue returns the state decayed to now.
func (s *Service) Fatigue(ctx context.Context, userID int) (*models.AthleteState, error) {
	now := s.now()
	st, err := s.store.GetAthleteState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading athlete state: %w", err)
	}
	if st == nil {
		fresh := models.NewAthleteState(userID, now)
		return &fresh, nil
	}
	decayed := st.DecayedTo(now)
	return &decayed, nil
}

// DecayAll persists decayed fatigue for every stored athlete and returns how
// many states changed. A failing user does not stop the sweep.
func (s *Service) DecayAll(ctx context.Context) (int, error) {
	states, err := s.store.ListAthleteStates(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing athlete states: %w", err)
	}
	now := s.now()
	var errs []error
	n := 0
	for _, st := range states {
		decayed := st.DecayedTo(now)
		if decayed.Fatigue == st.Fatigue {
			continue
		}
		if err := s.store.SaveAthleteState(ctx, decayed); err != nil {
			errs = append(errs, fmt.Errorf("user %d: %w", st.UserID, err))
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}

// SeedDailyTasks creates today's tasks for every known user.
func (s *Service) SeedDailyTasks(ctx context.Context) (int, error) {
	ids, err := s.store.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing users: %w", err)
	}
	now := s.now()
	var errs []error
	n := 0
	for _, id := range ids {
		if _, err := s.store.EnsureDailyTasks(ctx, id, now, models.DefaultDailyTasks); err != nil {
			errs = append(errs, fmt.Errorf("user %d: %w", id, err))
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}
