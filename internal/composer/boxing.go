package composer

import (
	"fmt"

	"github.com/meltforce/hybridcoach/internal/catalog"
)

type boxingTier struct {
	rounds        int
	roundDuration string
	rest          string
	combos        int
	intensity     string
	ropeSets      int
}

var boxingTiers = map[catalog.Difficulty]boxingTier{
	catalog.Beginner:     {rounds: 3, roundDuration: "2 min", rest: "1 min", combos: 3, intensity: "Moderate", ropeSets: 2},
	catalog.Intermediate: {rounds: 5, roundDuration: "3 min", rest: "1 min", combos: 4, intensity: "High", ropeSets: 3},
	catalog.Advanced:     {rounds: 6, roundDuration: "3 min", rest: "45s", combos: 5, intensity: "Very High", ropeSets: 3},
}

func boxingSession(req Request) SessionPlan {
	tier := boxingTiers[req.Difficulty]
	blocks := []ExerciseBlock{
		{Name: "Jump Rope", Sets: tier.ropeSets, Reps: tier.roundDuration, Rest: "1 min", Note: "Rhythm & Cardio", Kind: KindWarmup},
		{Name: "Shadowboxing (Loose)", Sets: 1, Reps: "3 min", Rest: "1 min", Note: "Flow, no power", Kind: KindWarmup},
		{Name: "Dynamic Stretches", Sets: 1, Reps: "5 min", Rest: "0s", Note: "Arm circles, leg swings, torso twists", Kind: KindWarmup},
	}

	// The tier count is a cap; a short catalog yields fewer combos and the
	// reasoning reports the number actually programmed.
	combos := catalog.Combos(req.Difficulty)
	if len(combos) > tier.combos {
		combos = combos[:tier.combos]
	}
	for _, c := range combos {
		blocks = append(blocks, ExerciseBlock{
			Name: "Combo: " + c.Notation(),
			Sets: tier.rounds,
			Reps: tier.roundDuration,
			Rest: tier.rest,
			Note: fmt.Sprintf("%s - %s Cost (%s)", c.Type, c.Cost, c.MoveNames()),
			Kind: KindCombo,
		})
	}

	if req.Difficulty != catalog.Beginner {
		drills := catalog.TacticalDrills("Defense")
		if len(drills) > 2 {
			drills = drills[:2]
		}
		for _, d := range drills {
			blocks = append(blocks, ExerciseBlock{Name: d.Name, Sets: 3, Reps: d.Duration, Rest: "1 min", Note: d.Description, Kind: KindDrill})
		}
	}

	if blocked(req.Blocked, "heavy_bag") {
		blocks = append(blocks, ExerciseBlock{Name: "Shadowboxing (Technical)", Sets: 3, Reps: "2 min", Rest: "1 min", Note: "Bag work skipped for injury. Crisp, light punches.", Kind: KindConditioning})
	} else {
		blocks = append(blocks, ExerciseBlock{Name: "Heavy Bag Power Rounds", Sets: 3, Reps: "2 min", Rest: "1 min", Note: "Focus on power and technique", Kind: KindConditioning})
	}
	blocks = append(blocks, ExerciseBlock{Name: "Speed Bag", Sets: 3, Reps: "1 min", Rest: "30s", Note: "Hand-eye coordination", Kind: KindConditioning})

	if req.Difficulty == catalog.Advanced {
		blocks = append(blocks,
			ExerciseBlock{Name: "Burpees", Sets: 3, Reps: "15", Rest: "45s", Note: "Explosive conditioning", Kind: KindFinisher},
			ExerciseBlock{Name: "Mountain Climbers", Sets: 3, Reps: "30s", Rest: "30s", Note: "Core & cardio", Kind: KindFinisher},
		)
	} else {
		blocks = append(blocks, ExerciseBlock{Name: "Burpees", Sets: 2, Reps: "10", Rest: "1 min", Note: "Conditioning", Kind: KindFinisher})
	}

	blocks = append(blocks, ExerciseBlock{Name: "Light Shadowboxing", Sets: 1, Reps: "2 min", Rest: "0s", Note: "Cool down, technique focus", Kind: KindCooldown})

	return SessionPlan{
		Title:     fmt.Sprintf("%s Boxing Session", req.Difficulty),
		Focus:     "Skill & Conditioning",
		Duration:  req.Minutes,
		Intensity: tier.intensity,
		Exercises: blocks,
		Reasoning: fmt.Sprintf("%s boxing program with %d combinations, %d rounds per drill, and comprehensive conditioning. Total exercises: %d",
			req.Difficulty, len(combos), tier.rounds, len(blocks)),
	}
}
