package athlete

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/meltforce/hybridcoach/internal/coach"
	"github.com/meltforce/hybridcoach/internal/composer"
	"github.com/meltforce/hybridcoach/internal/fatigue"
	"github.com/meltforce/hybridcoach/internal/logging"
	"github.com/meltforce/hybridcoach/internal/models"
	"github.com/meltforce/hybridcoach/internal/readiness"
	"github.com/meltforce/hybridcoach/internal/safety"
)

var testNow = time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC)

func newTestService(store Store) *Service {
	return New(store, composer.New(composer.WithSeed(1)), nil, logging.Discard(),
		WithClock(func() time.Time { return testNow }))
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// TestLogSessionDecaysThenApplies verifies the stored state is recovered up
// to now before the new session's cost is added.
func TestLogSessionDecaysThenApplies(t *testing.T) {
	store := newMemStore()
	store.states[1] = models.AthleteState{
		UserID: 1, Fatigue: fatigue.Vector{CNS: 50}, Phase: models.PhaseAccumulation,
		WeekInPhase: 1, UpdatedAt: testNow.Add(-6 * time.Hour),
	}
	svc := newTestService(store)

	st, err := svc.LogSession(context.Background(), 1, SessionLog{Discipline: "Boxing", RPE: 8, DurationMinutes: 45})
	if err != nil {
		t.Fatalf("LogSession: %v", err)
	}
	// 50 - 0.4*100*0.25 = 40, then boxing_heavy at RPE 8 adds 25*1.6.
	want := fatigue.Vector{CNS: 80, MuscularUpper: 24, Cardio: 32}
	got := st.Fatigue
	if !near(got.CNS, want.CNS) || !near(got.MuscularUpper, want.MuscularUpper) ||
		!near(got.MuscularLower, want.MuscularLower) || !near(got.Cardio, want.Cardio) {
		t.Errorf("fatigue = %+v, want %+v", got, want)
	}
	if st.LastWorkoutAt == nil || !st.LastWorkoutAt.Equal(testNow) || !st.UpdatedAt.Equal(testNow) {
		t.Errorf("timestamps = %v / %v, want %v", st.LastWorkoutAt, st.UpdatedAt, testNow)
	}

	if len(store.sessions) != 1 || store.sessions[0].ImpactType != fatigue.BoxingHeavy {
		t.Fatalf("sessions = %+v, want one boxing_heavy", store.sessions)
	}
	if l := store.logs[logKey{1, models.Day(testNow)}]; l.TrainingMinutes != 45 {
		t.Errorf("training minutes = %d, want 45", l.TrainingMinutes)
	}
}

// TestLogSessionFirstSession verifies a user without state starts fresh.
func TestLogSessionFirstSession(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	started := testNow.Add(-2 * time.Hour)

	st, err := svc.LogSession(context.Background(), 7, SessionLog{
		Discipline: "Strength", RPE: 5, DurationMinutes: 45, Notes: "heavy leg day", StartedAt: &started,
	})
	if err != nil {
		t.Fatalf("LogSession: %v", err)
	}
	if !near(st.Fatigue.CNS, 30) || !near(st.Fatigue.MuscularLower, 40) {
		t.Errorf("fatigue = %+v, want strength_legs base cost", st.Fatigue)
	}
	if !st.LastWorkoutAt.Equal(started) {
		t.Errorf("last workout = %v, want %v", st.LastWorkoutAt, started)
	}
}

// TestLogSessionValidation verifies out-of-range reports are rejected
// before anything is stored.
func TestLogSessionValidation(t *testing.T) {
	tests := []struct {
		name string
		in   SessionLog
	}{
		{"missing discipline", SessionLog{RPE: 5, DurationMinutes: 30}},
		{"rpe zero", SessionLog{Discipline: "Cardio", RPE: 0, DurationMinutes: 30}},
		{"rpe eleven", SessionLog{Discipline: "Cardio", RPE: 11, DurationMinutes: 30}},
		{"no duration", SessionLog{Discipline: "Cardio", RPE: 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore()
			_, err := newTestService(store).LogSession(context.Background(), 1, tc.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
			if len(store.sessions) != 0 {
				t.Error("session stored despite invalid input")
			}
		})
	}
}

// TestReadinessReport combines injuries, sleep and the blocked tags.
func TestReadinessReport(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store)

	if _, err := svc.ReportInjury(ctx, 1, InjuryReport{BodyPart: "Shoulder", Severity: "Moderate", PainLevel: 6}); err != nil {
		t.Fatalf("ReportInjury: %v", err)
	}
	sleep := 5.5
	if _, err := svc.UpdateToday(ctx, 1, models.DailyLogUpdate{SleepHours: &sleep}); err != nil {
		t.Fatalf("UpdateToday: %v", err)
	}

	rep, err := svc.Readiness(ctx, 1)
	if err != nil {
		t.Fatalf("Readiness: %v", err)
	}
	if rep.Score != 50 || rep.Status != readiness.StatusTrainCaution {
		t.Errorf("score = %d %q, want 50 %q", rep.Score, rep.Status, readiness.StatusTrainCaution)
	}
	wantBlocked := []string{"bench_press", "dips", "heavy_bag", "overhead"}
	if diff := cmp.Diff(wantBlocked, rep.BlockedMovements); diff != "" {
		t.Errorf("blocked (-want +got):\n%s", diff)
	}
	if rep.FatigueReadiness != 100 {
		t.Errorf("fatigue readiness = %d, want 100", rep.FatigueReadiness)
	}
}

// TestGeneratePlanRecoveryOverride verifies stored CNS fatigue reaches the
// composer after decay.
func TestGeneratePlanRecoveryOverride(t *testing.T) {
	store := newMemStore()
	store.states[1] = models.AthleteState{UserID: 1, Fatigue: fatigue.Vector{CNS: 95}, UpdatedAt: testNow}
	svc := newTestService(store)

	plan, err := svc.GeneratePlan(context.Background(), 1, PlanRequest{Discipline: "Boxing", Minutes: 30})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.Title != "Active Recovery" || plan.Duration != 30 {
		t.Errorf("plan = %q %d min, want Active Recovery 30 min", plan.Title, plan.Duration)
	}

	// A day later CNS has recovered below the override threshold.
	store.states[1] = models.AthleteState{UserID: 1, Fatigue: fatigue.Vector{CNS: 95}, UpdatedAt: testNow.Add(-24 * time.Hour)}
	plan, err = svc.GeneratePlan(context.Background(), 1, PlanRequest{Discipline: "Boxing", Difficulty: "Beginner"})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.Title != "Beginner Boxing Session" {
		t.Errorf("title = %q, want Beginner Boxing Session", plan.Title)
	}
}

// TestGeneratePlanHonorsInjuries verifies active injuries block movements.
func TestGeneratePlanHonorsInjuries(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store)
	if _, err := svc.ReportInjury(ctx, 1, InjuryReport{BodyPart: "shoulder", PainLevel: 4}); err != nil {
		t.Fatalf("ReportInjury: %v", err)
	}

	plan, err := svc.GeneratePlan(ctx, 1, PlanRequest{Discipline: "Boxing", Difficulty: "Advanced"})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	for _, b := range plan.Exercises {
		if strings.Contains(b.Name, "Heavy Bag") {
			t.Errorf("heavy bag block %q with a shoulder injury", b.Name)
		}
	}
}

// TestInjuryLifecycle covers report, heal and ownership. Out-of-range pain
// is clamped on both report and update.
func TestInjuryLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store)

	inj, err := svc.ReportInjury(ctx, 1, InjuryReport{BodyPart: "Lower Back", PainLevel: 15})
	if err != nil {
		t.Fatalf("ReportInjury: %v", err)
	}
	if inj.BodyPart != models.BodyPartLowerBack || inj.Severity != models.SeverityMild || inj.Status != models.InjuryActive {
		t.Errorf("injury = %+v", inj)
	}
	if inj.PainLevel != 10 {
		t.Errorf("pain = %d, want clamped to 10", inj.PainLevel)
	}

	if _, err := svc.UpdateInjury(ctx, 2, inj.ID, models.InjuryUpdate{}); !errors.Is(err, ErrInjuryNotFound) {
		t.Errorf("update by other user: err = %v, want ErrInjuryNotFound", err)
	}
	bad := models.InjuryStatus("gone")
	if _, err := svc.UpdateInjury(ctx, 1, inj.ID, models.InjuryUpdate{Status: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad status: err = %v, want ErrInvalidInput", err)
	}

	healed := models.InjuryStatus("Healed")
	pain := 0
	got, err := svc.UpdateInjury(ctx, 1, inj.ID, models.InjuryUpdate{Status: &healed, PainLevel: &pain})
	if err != nil {
		t.Fatalf("UpdateInjury: %v", err)
	}
	if got.Status != models.InjuryHealed || got.PainLevel != 1 {
		t.Errorf("updated = %+v", got)
	}

	active, _ := svc.ActiveInjuries(ctx, 1)
	if len(active) != 0 {
		t.Errorf("active = %+v, want none", active)
	}
	all, _ := svc.Injuries(ctx, 1, false)
	if len(all) != 1 {
		t.Errorf("all = %d injuries, want the healed one kept", len(all))
	}
}

// TestCheckInRecordsDailyLog verifies the cascade verdict and the stored
// sleep and recovery score.
func TestCheckInRecordsDailyLog(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(store)
	mood := 6

	ev, err := svc.CheckIn(ctx, 1, CheckIn{FatigueLevel: 3, SleepHours: 4, Motivation: 7, Mood: &mood})
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if ev.Rule != "critical_sleep" || ev.Warning != safety.WarningSleep {
		t.Errorf("evaluation = %+v", ev)
	}

	today, err := svc.Today(ctx, 1)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if today.SleepHours == nil || *today.SleepHours != 4 || today.Mood == nil || *today.Mood != 6 {
		t.Errorf("today = %+v", today)
	}
	if today.RecoveryScore == nil || *today.RecoveryScore != 90 {
		t.Errorf("recovery score = %v, want 90", today.RecoveryScore)
	}
	if today.Soreness != nil {
		t.Errorf("soreness = %v, want unreported", *today.Soreness)
	}
}

// TestTodayEmpty verifies an unreported day is returned, not an error.
func TestTodayEmpty(t *testing.T) {
	l, err := newTestService(newMemStore()).Today(context.Background(), 3)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if l.UserID != 3 || !l.Date.Equal(models.Day(testNow)) || l.SleepHours != nil {
		t.Errorf("today = %+v", l)
	}
}

type stubGenerator struct {
	system, prompt string
}

func (g *stubGenerator) Generate(_ context.Context, system, prompt string) (string, error) {
	g.system, g.prompt = system, prompt
	return "Take it easy today.", nil
}

// TestChatPersistsBothTurns verifies the message and the reply are stored in
// order and the context reaches the generator.
func TestChatPersistsBothTurns(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.states[1] = models.AthleteState{UserID: 1, Fatigue: fatigue.Vector{CNS: 40}, UpdatedAt: testNow}
	gen := &stubGenerator{}
	svc := New(store, nil, coach.New(gen, logging.Discard()), logging.Discard(),
		WithClock(func() time.Time { return testNow }))

	reply, err := svc.Chat(ctx, 1, "  should I train?  ")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply.Content != "Take it easy today." || reply.Role != models.RoleCoach {
		t.Errorf("reply = %+v", reply)
	}
	if gen.prompt != "should I train?" || !strings.Contains(gen.system, "CNS") {
		t.Errorf("generator got prompt %q, system %q", gen.prompt, gen.system)
	}

	hist, err := svc.ChatHistory(ctx, 1, 0)
	if err != nil {
		t.Fatalf("ChatHistory: %v", err)
	}
	if len(hist) != 2 || hist[0].Role != models.RoleUser || hist[1].Role != models.RoleCoach {
		t.Errorf("history = %+v", hist)
	}

	if _, err := svc.Chat(ctx, 1, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank message: err = %v, want ErrInvalidInput", err)
	}
}

// TestChatFallback verifies a service without a generator still answers.
func TestChatFallback(t *testing.T) {
	reply, err := newTestService(newMemStore()).Chat(context.Background(), 1, "I'm exhausted")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if !strings.Contains(reply.Content, "Active Recovery") {
		t.Errorf("reply = %q, want the fatigue fallback", reply.Content)
	}
}

// TestDailyTasks verifies seeding is idempotent and completion is scoped.
func TestDailyTasks(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore())

	tasks, err := svc.DailyTasks(ctx, 1)
	if err != nil {
		t.Fatalf("DailyTasks: %v", err)
	}
	again, _ := svc.DailyTasks(ctx, 1)
	if len(tasks) != 3 || len(again) != 3 {
		t.Fatalf("tasks = %d then %d, want 3 both times", len(tasks), len(again))
	}
	if err := svc.CompleteTask(ctx, 2, tasks[0].ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("other user: err = %v, want ErrTaskNotFound", err)
	}
	if err := svc.CompleteTask(ctx, 1, tasks[0].ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	again, _ = svc.DailyTasks(ctx, 1)
	if !again[0].Done {
		t.Error("task not marked done")
	}
}

// TestDecayAll verifies the sweep saves only changed states and keeps going
// past a failing user.
func TestDecayAll(t *testing.T) {
	store := newMemStore()
	yesterday := testNow.Add(-24 * time.Hour)
	store.states[1] = models.AthleteState{UserID: 1, UpdatedAt: yesterday}
	store.states[2] = models.AthleteState{UserID: 2, Fatigue: fatigue.Vector{CNS: 60, Cardio: 50}, UpdatedAt: yesterday}
	store.states[3] = models.AthleteState{UserID: 3, Fatigue: fatigue.Vector{CNS: 60}, UpdatedAt: yesterday}
	store.failSave[3] = true
	svc := newTestService(store)

	n, err := svc.DecayAll(context.Background())
	if n != 1 {
		t.Errorf("decayed = %d, want 1", n)
	}
	if !errors.Is(err, errStore) {
		t.Errorf("err = %v, want the failing user's error", err)
	}
	got := store.states[2]
	if !near(got.Fatigue.CNS, 20) || got.Fatigue.Cardio != 0 || !got.UpdatedAt.Equal(testNow) {
		t.Errorf("state 2 = %+v", got)
	}
	if !store.states[1].UpdatedAt.Equal(yesterday) {
		t.Error("unchanged state was rewritten")
	}
}

// TestSeedDailyTasks verifies every known user gets today's tasks.
func TestSeedDailyTasks(t *testing.T) {
	store := newMemStore()
	store.states[1] = models.NewAthleteState(1, testNow)
	store.states[2] = models.NewAthleteState(2, testNow)

	n, err := newTestService(store).SeedDailyTasks(context.Background())
	if err != nil || n != 2 {
		t.Fatalf("SeedDailyTasks = %d, %v; want 2, nil", n, err)
	}
	if len(store.tasks) != 6 {
		t.Errorf("tasks = %d, want 6", len(store.tasks))
	}
}

// TestSnapshotError verifies store failures surface wrapped.
func TestSnapshotError(t *testing.T) {
	store := newMemStore()
	store.failStates = true
	_, err := newTestService(store).Readiness(context.Background(), 1)
	if !errors.Is(err, errStore) {
		t.Fatalf("err = %v, want errStore", err)
	}
}

// TestExercisesSkipInjured verifies the catalog filter uses active injuries.
func TestExercisesSkipInjured(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore())
	if _, err := svc.ReportInjury(ctx, 1, InjuryReport{BodyPart: "knee", PainLevel: 5}); err != nil {
		t.Fatalf("ReportInjury: %v", err)
	}
	all, _ := svc.Exercises(ctx, 1, ExerciseQuery{Focus: "Legs", Equipment: []string{"barbell", "dumbbells"}})
	safe, _ := svc.Exercises(ctx, 1, ExerciseQuery{Focus: "Legs", Equipment: []string{"barbell", "dumbbells"}, SkipInjured: true})
	if len(safe) >= len(all) {
		t.Errorf("skip injured kept %d of %d exercises", len(safe), len(all))
	}
	for _, e := range safe {
		if strings.Contains(strings.ToLower(e.Name), "squat") {
			t.Errorf("%q kept with a knee injury", e.Name)
		}
	}

	if _, err := svc.Substitute(ctx, " "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank substitute: err = %v", err)
	}
}
