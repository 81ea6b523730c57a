// Package scheduler runs the periodic background jobs: the fatigue decay
// sweep and the daily task seeding.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/meltforce/hybridcoach/internal/metrics"
)

// Jobs is the work the scheduler triggers.
type Jobs interface {
	DecayAll(ctx context.Context) (int, error)
	SeedDailyTasks(ctx context.Context) (int, error)
}

const (
	JobDecay = "decay"
	JobTasks = "daily_tasks"

	jobTimeout = 5 * time.Minute
)

// Scheduler owns a cron runner. Jobs run with a bounded context derived
// from the scheduler's own, which Stop cancels.
type Scheduler struct {
	cron   *cron.Cron
	jobs   Jobs
	log    *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// New registers the decay and task jobs on the given cron specs.
func New(jobs Jobs, decaySpec, tasksSpec string, log *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{log: log}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		jobs:   jobs,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}

	if _, err := s.cron.AddFunc(decaySpec, func() { s.Run(JobDecay) }); err != nil {
		cancel()
		return nil, fmt.Errorf("registering decay job %q: %w", decaySpec, err)
	}
	if _, err := s.cron.AddFunc(tasksSpec, func() { s.Run(JobTasks) }); err != nil {
		cancel()
		return nil, fmt.Errorf("registering task job %q: %w", tasksSpec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.cron.Stop().Done()
		s.log.Info("scheduler stopped")
	})
}

// Run executes one job immediately. Failures are logged and counted, never
// returned.
func (s *Scheduler) Run(job string) {
	ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
	defer cancel()

	var fn func(context.Context) (int, error)
	switch job {
	case JobDecay:
		fn = s.jobs.DecayAll
	case JobTasks:
		fn = s.jobs.SeedDailyTasks
	default:
		s.log.Error("unknown scheduler job", "job", job)
		return
	}

	start := time.Now()
	n, err := fn(ctx)
	if err != nil {
		metrics.SchedulerRuns.WithLabelValues(job, "error").Inc()
		s.log.Error("scheduler job failed", "job", job, "processed", n, "error", err)
		return
	}
	metrics.SchedulerRuns.WithLabelValues(job, "ok").Inc()
	s.log.Info("scheduler job done", "job", job, "processed", n, "duration", time.Since(start))
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
