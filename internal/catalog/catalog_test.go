package catalog

import (
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestTableIntegrity checks every entry has a known type, a neural cost in
// range and a unique name.
func TestTableIntegrity(t *testing.T) {
	types := []MovementType{Compound, Isolation, Unilateral, Bodyweight, Olympic, Power, Plyometric, Iso}
	seen := map[string]bool{}
	for _, e := range All() {
		if seen[e.Name] {
			t.Errorf("duplicate exercise %q", e.Name)
		}
		seen[e.Name] = true
		if !slices.Contains(types, e.Type) {
			t.Errorf("%s: unknown type %q", e.Name, e.Type)
		}
		if e.NeuralCost < 1 || e.NeuralCost > 10 {
			t.Errorf("%s: neural cost %d out of range", e.Name, e.NeuralCost)
		}
		if e.Muscle == "" {
			t.Errorf("%s: missing muscle", e.Name)
		}
	}
}

// TestExercisesEquipment verifies the name-token equipment heuristic.
func TestExercisesEquipment(t *testing.T) {
	got := Exercises(FocusFullBody, []string{"bodyweight"}, nil)
	for _, e := range got {
		for _, tok := range []string{"Barbell", "Dumbbell", "DB", "Cable", "Machine", "Kettlebell"} {
			if strings.Contains(e.Name, tok) {
				t.Errorf("bodyweight-only query returned %q", e.Name)
			}
		}
	}

	withDB := Exercises(FocusFullBody, []string{"Bodyweight", "DUMBBELLS"}, nil)
	if !slices.ContainsFunc(withDB, func(e ExerciseSpec) bool { return e.Name == "Dumbbell Row" }) {
		t.Error("dumbbell query missing Dumbbell Row")
	}
	if slices.ContainsFunc(withDB, func(e ExerciseSpec) bool { return e.Name == "Barbell Row" }) {
		t.Error("dumbbell query returned Barbell Row")
	}
}

// TestExercisesFocus verifies the focus taxonomy and that order is preserved.
func TestExercisesFocus(t *testing.T) {
	all := []string{"barbell", "dumbbells", "cables", "machines", "kettlebells", "bodyweight"}

	push := Exercises(FocusPush, all, nil)
	for _, e := range push {
		if !slices.Contains([]string{"Chest", "Shoulders", "Triceps"}, e.Muscle) {
			t.Errorf("push returned %s (%s)", e.Name, e.Muscle)
		}
	}
	if len(push) == 0 || push[0].Name != "Barbell Bench Press" {
		t.Errorf("push should start with table order, got %v", names(push[:1]))
	}

	core := Exercises(FocusCore, []string{"bodyweight"}, nil)
	want := []string{"Plank", "Side Plank", "Weighted Plank"}
	if diff := cmp.Diff(want, names(core[:3])); diff != "" {
		t.Errorf("core order mismatch (-want +got):\n%s", diff)
	}

	if got, want := len(Exercises(FocusFullBody, all, nil)), len(All()); got != want {
		t.Errorf("full body with all equipment = %d, want %d", got, want)
	}
	if got := ParseFocus("no such focus"); got != FocusFullBody {
		t.Errorf("ParseFocus(unknown) = %q, want Full Body", got)
	}
}

// TestExercisesBlocked verifies both flag and movement-tag blocking.
func TestExercisesBlocked(t *testing.T) {
	all := []string{"barbell", "dumbbells", "cables", "machines", "kettlebells", "bodyweight"}

	got := Exercises(FocusFullBody, all, []string{"overhead", "bench_press", "dips", "heavy_bag"})
	for _, banned := range []string{"Overhead Press", "Push Press", "Barbell Bench Press", "Chest Dips", "Close Grip Bench Press", "Snatch"} {
		if slices.ContainsFunc(got, func(e ExerciseSpec) bool { return e.Name == banned }) {
			t.Errorf("shoulder block returned %q", banned)
		}
	}
	if !slices.ContainsFunc(got, func(e ExerciseSpec) bool { return e.Name == "Lateral Raises" }) {
		t.Error("shoulder block removed Lateral Raises, which has no blocked movement")
	}

	knee := Exercises(FocusLower, all, []string{"squat", "lunge", "jump", "run"})
	for _, e := range knee {
		if strings.Contains(e.Name, "Squat") || strings.Contains(e.Name, "Lunge") || strings.Contains(e.Name, "Jump") {
			t.Errorf("knee block returned %q", e.Name)
		}
	}

	byFlag := Exercises(FocusFullBody, all, []string{"shoulder"})
	for _, e := range byFlag {
		if slices.Contains(e.Flags, "shoulder") {
			t.Errorf("flag block returned %q", e.Name)
		}
	}
}

// TestMovementTags verifies word-prefix matching.
func TestMovementTags(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"Crunches", []string{"situp"}},
		{"Bulgarian Split Squat", []string{"squat"}},
		{"Single Leg RDL", []string{"deadlift"}},
		{"Box Jump", []string{"jump"}},
		{"Lateral Raises", nil},
		{"Close Grip Bench Press", []string{"bench_press"}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, MovementTags(tc.name)); diff != "" {
			t.Errorf("MovementTags(%q) mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

// TestSubstitute verifies exact-match lookup and the Rest sentinel.
func TestSubstitute(t *testing.T) {
	tests := []struct{ name, want string }{
		{"Barbell Bench Press", "DB Bench"},
		{"Deadlift", "Romanian Deadlift"},
		{"barbell bench press", "Rest"},
		{"Unknown Exercise", "Rest"},
		{"", "Rest"},
	}
	for _, tc := range tests {
		if got := Substitute(tc.name); got != tc.want {
			t.Errorf("Substitute(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

// TestCatalogImmutable verifies callers cannot mutate the shared table
// through returned values, even under concurrent access.
func TestCatalogImmutable(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, e := range Exercises(FocusFullBody, []string{"barbell"}, nil) {
				if len(e.Substitutes) > 0 {
					e.Substitutes[0] = "mutated"
				}
			}
		}()
	}
	wg.Wait()
	if got := Substitute("Barbell Bench Press"); got != "DB Bench" {
		t.Errorf("table mutated: Substitute = %q", got)
	}
}

// TestProtocolLadder verifies recovery gates before goal selection.
func TestProtocolLadder(t *testing.T) {
	tests := []struct {
		goal  Goal
		score int
		want  string
	}{
		{GoalFatLoss, 10, "Recovery Walk"},
		{GoalEndurance, 39, "Recovery Walk"},
		{GoalFatLoss, 40, "Zone 2 Base"},
		{GoalBoxing, 59, "Zone 2 Base"},
		{GoalEndurance, 60, "Tempo Run"},
		{GoalFatLoss, 80, "Tabata Sprints"},
		{GoalBoxing, 100, "Boxing Roadwork"},
		{Goal("Strength"), 90, "Zone 2 Base"},
	}
	for _, tc := range tests {
		if got := Protocol(tc.goal, tc.score).Name; got != tc.want {
			t.Errorf("Protocol(%q, %d) = %q, want %q", tc.goal, tc.score, got, tc.want)
		}
	}
}

// TestBoxingCatalog verifies per-difficulty combos and drill fallbacks.
func TestBoxingCatalog(t *testing.T) {
	counts := map[Difficulty]int{Beginner: 4, Intermediate: 4, Advanced: 3}
	for d, want := range counts {
		if got := len(Combos(d)); got != want {
			t.Errorf("len(Combos(%s)) = %d, want %d", d, got, want)
		}
	}
	c := Combos(Beginner)[3]
	if got := c.Notation(); got != "1-slip_L-3" {
		t.Errorf("Notation = %q", got)
	}
	if got := c.MoveNames(); got != "Jab, Slip Left, Lead Hook" {
		t.Errorf("MoveNames = %q", got)
	}
	if got := TacticalDrills("Defense"); len(got) != 2 || got[0].Name != "Wall Defense Drill" {
		t.Errorf("TacticalDrills(Defense) = %+v", got)
	}
	if got := TacticalDrills("Power"); len(got) != 1 || got[0].Name != "Freestyle Shadowboxing" {
		t.Errorf("TacticalDrills(unknown) = %+v", got)
	}
}

// TestWarmup verifies athletic warmup selection by intensity.
func TestWarmup(t *testing.T) {
	if got := names2(Warmup("Standard")); !slices.Equal(got, []string{"A-Skips"}) {
		t.Errorf("Warmup(Standard) = %v", got)
	}
	if got := names2(Warmup("High")); !slices.Equal(got, []string{"A-Skips", "B-Skips", "Ladder Ickey Shuffle"}) {
		t.Errorf("Warmup(High) = %v", got)
	}
}

func names(es []ExerciseSpec) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name
	}
	return out
}

func names2(ds []AthleticDrill) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Name
	}
	return out
}
