// Package catalog holds the read-only training knowledge base: strength
// exercises, boxing combinations and drills, cardio protocols and athletic
// drills. Tables are initialized once and never written, so every accessor
// is safe for concurrent use. Accessors return copies.
package catalog

import (
	"slices"
	"strings"
)

// MovementType classifies an exercise.
type MovementType string

const (
	Compound   MovementType = "Compound"
	Isolation  MovementType = "Isolation"
	Unilateral MovementType = "Unilateral"
	Bodyweight MovementType = "Bodyweight"
	Olympic    MovementType = "Olympic"
	Power      MovementType = "Power"
	Plyometric MovementType = "Plyometric"
	Iso        MovementType = "Iso"
)

// ExerciseSpec is one catalog entry.
type ExerciseSpec struct {
	Name        string       `json:"name"`
	Type        MovementType `json:"type"`
	Muscle      string       `json:"muscle"`
	Secondary   []string     `json:"secondary"`
	NeuralCost  int          `json:"neural_cost"`
	Flags       []string     `json:"flags"`
	Substitutes []string     `json:"substitutes"`
}

// Works reports whether muscle is the primary or a secondary target.
func (e ExerciseSpec) Works(muscle string) bool {
	return e.Muscle == muscle || slices.Contains(e.Secondary, muscle)
}

func (e ExerciseSpec) clone() ExerciseSpec {
	e.Secondary = slices.Clone(e.Secondary)
	e.Flags = slices.Clone(e.Flags)
	e.Substitutes = slices.Clone(e.Substitutes)
	return e
}

// Difficulty is the athlete's training tier.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// ParseDifficulty is case-insensitive and defaults to Intermediate.
func ParseDifficulty(s string) Difficulty {
	for _, d := range []Difficulty{Beginner, Intermediate, Advanced} {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d
		}
	}
	return Intermediate
}

// Focus selects a muscle-group slice of the exercise table.
type Focus string

const (
	FocusFullBody Focus = "Full Body"
	FocusUpper    Focus = "Upper Body Strength"
	FocusLower    Focus = "Lower Body Strength"
	FocusPush     Focus = "Push"
	FocusPull     Focus = "Pull"
	FocusLegs     Focus = "Legs"
	FocusCore     Focus = "Core"
)

// focusMuscles maps each focus to its muscle groups. Full Body has no filter.
var focusMuscles = map[Focus][]string{
	FocusUpper: {"Chest", "Shoulders", "Back", "Lats", "Triceps", "Biceps", "Rear Delts"},
	FocusLower: {"Quads", "Hamstrings", "Glutes", "Calves", "Legs", "Posterior Chain"},
	FocusPush:  {"Chest", "Shoulders", "Triceps"},
	FocusPull:  {"Back", "Lats", "Biceps", "Rear Delts"},
	FocusLegs:  {"Quads", "Hamstrings", "Glutes", "Calves", "Legs"},
	FocusCore:  {"Core", "Abs", "Obliques"},
}

// Foci lists every supported focus.
func Foci() []Focus {
	return []Focus{FocusFullBody, FocusUpper, FocusLower, FocusPush, FocusPull, FocusLegs, FocusCore}
}

// ParseFocus is case-insensitive; unknown values become Full Body.
func ParseFocus(s string) Focus {
	for _, f := range Foci() {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f
		}
	}
	return FocusFullBody
}

// Equipment tags.
const (
	EquipBarbell     = "barbell"
	EquipDumbbells   = "dumbbells"
	EquipCables      = "cables"
	EquipMachines    = "machines"
	EquipKettlebells = "kettlebells"
	EquipBodyweight  = "bodyweight"
)

// equipmentTokens maps name tokens to the equipment tag they imply.
var equipmentTokens = []struct {
	tokens []string
	tag    string
}{
	{[]string{"Barbell"}, EquipBarbell},
	{[]string{"DB", "Dumbbell"}, EquipDumbbells},
	{[]string{"Cable"}, EquipCables},
	{[]string{"Machine"}, EquipMachines},
	{[]string{"Kettlebell", "KB"}, EquipKettlebells},
}

// movementTokens maps lower-case name fragments to the movement tags used
// for injury blocking. Fragments match at the start of a word, so "run"
// does not match "crunch".
var movementTokens = []struct {
	fragment string
	tag      string
}{
	{"overhead", "overhead"},
	{"push press", "overhead"},
	{"shoulder press", "overhead"},
	{"arnold press", "overhead"},
	{"viking press", "overhead"},
	{"bradford press", "overhead"},
	{"seated dumbbell press", "overhead"},
	{"standing dumbbell press", "overhead"},
	{"snatch", "overhead"},
	{"jerk", "overhead"},
	{"bench press", "bench_press"},
	{"dips", "dips"},
	{"squat", "squat"},
	{"lunge", "lunge"},
	{"step up", "lunge"},
	{"jump", "jump"},
	{"run", "run"},
	{"sprint", "run"},
	{"deadlift", "deadlift"},
	{"rdl", "deadlift"},
	{"rack pull", "deadlift"},
	{"good morning", "deadlift"},
	{"barbell row", "bent_row"},
	{"pendlay row", "bent_row"},
	{"t-bar row", "bent_row"},
	{"situp", "situp"},
	{"sit-up", "situp"},
	{"crunch", "situp"},
}

// MovementTags returns the movement tags implied by an exercise name.
func MovementTags(name string) []string {
	lower := " " + strings.ToLower(name)
	var tags []string
	for _, m := range movementTokens {
		if strings.Contains(lower, " "+m.fragment) && !slices.Contains(tags, m.tag) {
			tags = append(tags, m.tag)
		}
	}
	return tags
}

// All returns the full exercise table in order.
func All() []ExerciseSpec {
	out := make([]ExerciseSpec, len(exercises))
	for i, e := range exercises {
		out[i] = e.clone()
	}
	return out
}

// Exercises filters the table by blocked tags, equipment and focus,
// preserving table order.
//
// An entry is blocked when any of its injury flags or any movement tag
// derived from its name is in blocked. Equipment tags are compared
// case-insensitively.
func Exercises(focus Focus, equipment []string, blocked []string) []ExerciseSpec {
	have := lowerSet(equipment)
	block := lowerSet(blocked)
	muscles, filtered := focusMuscles[focus]

	var out []ExerciseSpec
	for _, e := range exercises {
		if isBlocked(e, block) {
			continue
		}
		if !equipped(e.Name, have) {
			continue
		}
		if filtered && !slices.Contains(muscles, e.Muscle) {
			continue
		}
		out = append(out, e.clone())
	}
	return out
}

// Lookup finds an exercise by exact name.
func Lookup(name string) (ExerciseSpec, bool) {
	for _, e := range exercises {
		if e.Name == name {
			return e.clone(), true
		}
	}
	return ExerciseSpec{}, false
}

// RestSubstitute is returned when no substitute is known.
const RestSubstitute = "Rest"

// Substitute returns the preferred substitute for an exact name match.
func Substitute(name string) string {
	e, ok := Lookup(name)
	if !ok || len(e.Substitutes) == 0 {
		return RestSubstitute
	}
	return e.Substitutes[0]
}

func isBlocked(e ExerciseSpec, block map[string]bool) bool {
	if len(block) == 0 {
		return false
	}
	for _, f := range e.Flags {
		if block[f] {
			return true
		}
	}
	for _, t := range MovementTags(e.Name) {
		if block[t] {
			return true
		}
	}
	return false
}

func equipped(name string, have map[string]bool) bool {
	for _, et := range equipmentTokens {
		for _, tok := range et.tokens {
			if strings.Contains(name, tok) && !have[et.tag] {
				return false
			}
		}
	}
	return true
}

func lowerSet(xs []string) map[string]bool {
	m := make(map[string]bool, len(xs))
	for _, x := range xs {
		m[strings.ToLower(strings.TrimSpace(x))] = true
	}
	return m
}
