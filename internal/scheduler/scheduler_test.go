package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"

	"github.com/meltforce/hybridcoach/internal/logging"
)

type countingJobs struct {
	decays, seeds atomic.Int32
	err           error
	sawDeadline   atomic.Bool
}

func (j *countingJobs) DecayAll(ctx context.Context) (int, error) {
	_, ok := ctx.Deadline()
	j.sawDeadline.Store(ok)
	j.decays.Add(1)
	return 2, j.err
}

func (j *countingJobs) SeedDailyTasks(context.Context) (int, error) {
	j.seeds.Add(1)
	return 1, j.err
}

// TestStartStopNoLeak verifies Stop tears down the cron goroutine.
func TestStartStopNoLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	s, err := New(&countingJobs{}, "@hourly", "0 5 * * *", logging.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Start()
	s.Stop()
	s.Stop() // second call is a no-op
}

// TestBadSpec verifies invalid cron expressions fail at construction.
func TestBadSpec(t *testing.T) {
	tests := []struct {
		name, decay, tasks string
	}{
		{"bad decay", "every hour", "0 5 * * *"},
		{"bad tasks", "@hourly", "61 * * * *"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(&countingJobs{}, tc.decay, tc.tasks, logging.Discard()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

// TestRunDispatches verifies each job name reaches its method with a
// bounded context, and that failures do not panic.
func TestRunDispatches(t *testing.T) {
	jobs := &countingJobs{}
	s, err := New(jobs, "@hourly", "@daily", logging.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Stop()

	s.Run(JobDecay)
	s.Run(JobTasks)
	s.Run("nope")
	jobs.err = errors.New("db down")
	s.Run(JobDecay)

	if got := jobs.decays.Load(); got != 2 {
		t.Errorf("decay runs = %d, want 2", got)
	}
	if got := jobs.seeds.Load(); got != 1 {
		t.Errorf("seed runs = %d, want 1", got)
	}
	if !jobs.sawDeadline.Load() {
		t.Error("job context has no deadline")
	}
}
