package composer

import (
	"fmt"

	"github.com/meltforce/hybridcoach/internal/catalog"
)

// plyoCNSCeiling gates the plyometric block on freshness.
const plyoCNSCeiling = 60.0

func athleticSession(req Request) SessionPlan {
	var blocks []ExerciseBlock
	for _, d := range catalog.Warmup("Standard") {
		blocks = append(blocks, ExerciseBlock{Name: d.Name, Sets: 2, Reps: "20 yards", Rest: "0s", Note: "Dynamic Warmup", Kind: KindWarmup})
	}

	reasoning := "Focusing on explosive power and multidirectional speed."
	switch {
	case req.Fatigue.CNS >= plyoCNSCeiling:
		reasoning = "Plyometrics skipped: CNS fatigue too high. Focusing on multidirectional speed."
	case blocked(req.Blocked, "jump"):
		reasoning = "Plyometrics skipped for injury. Focusing on multidirectional speed."
	default:
		blocks = append(blocks,
			ExerciseBlock{Name: "Box Jumps", Sets: 3, Reps: "5", Rest: "2 min", Note: "Max Height", Kind: KindPower},
			ExerciseBlock{Name: "Med Ball Slams", Sets: 3, Reps: "8", Rest: "90s", Note: "Explosive Power", Kind: KindPower},
		)
	}

	blocks = append(blocks, ExerciseBlock{Name: "Ladder Drills", Sets: 4, Reps: "45s", Rest: "1 min", Note: "Foot speed", Kind: KindAgility})

	return SessionPlan{
		Title:     fmt.Sprintf("%s Athletic Performance", req.Difficulty),
		Focus:     "Power & Agility",
		Duration:  req.Minutes,
		Intensity: "High",
		Exercises: blocks,
		Reasoning: fmt.Sprintf("%s Total exercises: %d", reasoning, len(blocks)),
	}
}

// minWorkMinutes keeps the main cardio segment meaningful for short sessions.
const minWorkMinutes = 5

func cardioGoal(d catalog.Difficulty, cns float64) catalog.Goal {
	switch d {
	case catalog.Beginner:
		return catalog.GoalEndurance
	case catalog.Advanced:
		return catalog.GoalFatLoss
	}
	if cns < 50 {
		return catalog.GoalFatLoss
	}
	return catalog.GoalEndurance
}

func cardioSession(req Request) SessionPlan {
	protocol := catalog.Protocol(cardioGoal(req.Difficulty, req.Fatigue.CNS), catalog.RecoveryScoreFromCNS(req.Fatigue.CNS))
	note := protocol.Description
	if blocked(req.Blocked, "run") {
		note += " Use a bike or rower instead of running."
	}
	work := func(overhead int) string {
		return fmt.Sprintf("%d min", max(req.Minutes-overhead, minWorkMinutes))
	}
	workBlock := ExerciseBlock{Name: protocol.Name, Sets: 1, Rest: "0s", Note: note, Kind: KindProtocol}

	var blocks []ExerciseBlock
	var intensity, reasoning string
	switch req.Difficulty {
	case catalog.Beginner:
		workBlock.Reps = work(10)
		blocks = []ExerciseBlock{
			{Name: "Walking Warmup", Sets: 1, Reps: "5 min", Rest: "0s", Note: "Easy pace", Kind: KindWarmup},
			workBlock,
			{Name: "Cool Down Walk", Sets: 1, Reps: "5 min", Rest: "0s", Note: "Recovery", Kind: KindCooldown},
		}
		intensity = "Low-Moderate"
		reasoning = fmt.Sprintf("Beginner-friendly steady-state cardio. Build aerobic base with %s.", protocol.Name)
	case catalog.Advanced:
		workBlock.Reps = work(20)
		blocks = []ExerciseBlock{
			{Name: "Dynamic Warmup", Sets: 1, Reps: "5 min", Rest: "0s", Note: "Prep for intensity", Kind: KindWarmup},
			{Name: "HIIT Intervals", Sets: 8, Reps: "30s work / 30s rest", Rest: "0s", Note: "Max effort sprints", Kind: KindInterval},
			workBlock,
			{Name: "Active Recovery", Sets: 1, Reps: "5 min", Rest: "0s", Note: "Light movement", Kind: KindCooldown},
		}
		intensity = "Very High"
		reasoning = fmt.Sprintf("Advanced HIIT protocol with %s. High calorie burn and conditioning.", protocol.Name)
	default:
		workBlock.Reps = work(25)
		blocks = []ExerciseBlock{
			{Name: "Warmup", Sets: 1, Reps: "5 min", Rest: "0s", Note: "Gradual intensity build", Kind: KindWarmup},
			{Name: "Tempo Intervals", Sets: 4, Reps: "3 min work / 2 min easy", Rest: "0s", Note: "Moderate-high effort", Kind: KindInterval},
			workBlock,
			{Name: "Cool Down", Sets: 1, Reps: "5 min", Rest: "0s", Note: "Easy pace", Kind: KindCooldown},
		}
		intensity = "Moderate-High"
		reasoning = fmt.Sprintf("Intermediate cardio with tempo work and %s. Balanced conditioning.", protocol.Name)
	}

	return SessionPlan{
		Title:     fmt.Sprintf("%s %s", req.Difficulty, protocol.Name),
		Focus:     protocol.Type,
		Duration:  req.Minutes,
		Intensity: intensity,
		Exercises: blocks,
		Reasoning: fmt.Sprintf("%s Total exercises: %d", reasoning, len(blocks)),
	}
}
