package catalog

import "math"

// Goal steers cardio protocol choice.
type Goal string

const (
	GoalEndurance Goal = "Endurance"
	GoalFatLoss   Goal = "Fat Loss"
	GoalBoxing    Goal = "Boxing"
)

// CardioProtocol is a conditioning prescription.
type CardioProtocol struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	NeuralCost  int    `json:"neural_cost"`
}

var (
	recoveryWalk = CardioProtocol{"Recovery Walk", "Rest", "30 min brisk walk.", 1}
	zone2        = CardioProtocol{"Zone 2 Base", "Steady", "Keep HR at 130-150 bpm. Conversation pace.", 3}
	vo2Max       = CardioProtocol{"VO2 Max Intervals", "Interval", "4 min Hard / 3 min Rest x 4 rounds.", 8}
	tempoRun     = CardioProtocol{"Tempo Run", "Threshold", "Comfortably hard pace for 20-30 mins.", 6}
	tabata       = CardioProtocol{"Tabata Sprints", "HIIT", "20s Work / 10s Rest x 8 rounds.", 9}
	roadwork     = CardioProtocol{"Boxing Roadwork", "Steady", "3-5 miles steady run + shadowboxing intervals.", 5}
)

// Protocols returns every selectable protocol, excluding the recovery walk.
func Protocols() []CardioProtocol {
	return []CardioProtocol{zone2, vo2Max, tempoRun, tabata, roadwork}
}

// recoveryLadder gates on recovery score before the goal is considered.
var recoveryLadder = []struct {
	Below    int
	Protocol CardioProtocol
}{
	{40, recoveryWalk},
	{60, zone2},
}

var goalProtocols = map[Goal]CardioProtocol{
	GoalEndurance: tempoRun,
	GoalFatLoss:   tabata,
	GoalBoxing:    roadwork,
}

// Protocol picks a protocol for a goal given a 0-100 recovery score. Low
// scores degrade to easier work regardless of goal.
func Protocol(goal Goal, recoveryScore int) CardioProtocol {
	for _, step := range recoveryLadder {
		if recoveryScore < step.Below {
			return step.Protocol
		}
	}
	if p, ok := goalProtocols[goal]; ok {
		return p
	}
	return zone2
}

// RecoveryScoreFromCNS converts CNS fatigue to the score Protocol expects.
func RecoveryScoreFromCNS(cns float64) int {
	return int(math.Max(0, math.Min(100, 100-cns)))
}
