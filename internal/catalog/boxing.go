package catalog

import (
	"slices"
	"strings"
)

// moves maps combo notation to move names.
var moves = map[string]string{
	"1": "Jab", "2": "Cross", "3": "Lead Hook", "4": "Rear Hook",
	"5": "Lead Uppercut", "6": "Rear Uppercut",
	"slip_L": "Slip Left", "slip_R": "Slip Right",
	"roll_L": "Roll Left", "roll_R": "Roll Right",
	"pull": "Pull", "pivot": "Pivot",
}

// Moves returns the notation-to-name table.
func Moves() map[string]string {
	out := make(map[string]string, len(moves))
	for k, v := range moves {
		out[k] = v
	}
	return out
}

// Combo is a scripted punch/defense sequence in numeric notation.
type Combo struct {
	Sequence   []string   `json:"sequence"`
	Difficulty Difficulty `json:"difficulty"`
	Type       string     `json:"type"`
	Cost       string     `json:"cost"`
}

var combos = []Combo{
	{[]string{"1", "2"}, Beginner, "Fundamentals", "Low"},
	{[]string{"1", "1", "2"}, Beginner, "Rhythm", "Low"},
	{[]string{"1", "2", "3"}, Beginner, "Flow", "Low"},
	{[]string{"1", "slip_L", "3"}, Beginner, "Defense", "Low"},

	{[]string{"1", "2", "roll_L", "3"}, Intermediate, "Defense", "Medium"},
	{[]string{"1", "2", "3", "2"}, Intermediate, "Power", "Medium"},
	{[]string{"1", "pull", "2", "3"}, Intermediate, "Counter", "Medium"},
	{[]string{"6", "3", "2"}, Intermediate, "Inside", "High"},

	{[]string{"1", "slip_R", "2", "roll_L", "3"}, Advanced, "Technical", "High"},
	{[]string{"1", "1", "2", "pivot", "2"}, Advanced, "Footwork", "High"},
	{[]string{"3", "roll_L", "3", "6", "roll_R", "2"}, Advanced, "Inside Flow", "High"},
}

// Combos returns the combos for a difficulty, in catalog order.
func Combos(d Difficulty) []Combo {
	var out []Combo
	for _, c := range combos {
		if c.Difficulty == d {
			c.Sequence = slices.Clone(c.Sequence)
			out = append(out, c)
		}
	}
	return out
}

// Notation renders the combo as "1-2-roll_L-3".
func (c Combo) Notation() string {
	return strings.Join(c.Sequence, "-")
}

// MoveNames renders the combo with move names; unknown notation is kept as is.
func (c Combo) MoveNames() string {
	names := make([]string, len(c.Sequence))
	for i, s := range c.Sequence {
		if n, ok := moves[s]; ok {
			names[i] = n
		} else {
			names[i] = s
		}
	}
	return strings.Join(names, ", ")
}

// Drill is a timed boxing drill.
type Drill struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

var tacticalDrills = map[string][]Drill{
	"Defense": {
		{"Wall Defense Drill", "3 min", "Back to wall, practice slipping vs shadow"},
		{"Double End Bag - Head Movement", "3 min", "Focus on slipping after every punch"},
	},
	"Footwork": {
		{"Quadrant Drill", "3 min", "Move in 4 cardinal directions in stance"},
		{"Circle Drill", "3 min", "Circle heavy bag, maintaining distance"},
	},
}

var freestyleDrill = Drill{"Freestyle Shadowboxing", "3 min", "Flow state, mix everything"}

// TacticalDrills returns drills for a category (Defense, Footwork);
// unknown categories get freestyle shadowboxing.
func TacticalDrills(category string) []Drill {
	if ds, ok := tacticalDrills[category]; ok {
		return slices.Clone(ds)
	}
	return []Drill{freestyleDrill}
}
