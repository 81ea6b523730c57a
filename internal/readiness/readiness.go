// Package readiness turns injuries, fatigue and sleep into a bounded
// readiness score with an audit trail of every adjustment.
package readiness

import (
	"fmt"
	"math"

	"github.com/meltforce/hybridcoach/internal/fatigue"
	"github.com/meltforce/hybridcoach/internal/models"
)

type Status string

const (
	StatusPrime          Status = "Prime"
	StatusTrainCaution   Status = "Train with Caution"
	StatusRecoveryNeeded Status = "Recovery Needed"
)

const (
	maxScore              = 100
	fatigueThreshold      = 5.0 // on the 0-10 reference scale
	fatiguePenaltyPerUnit = 5.0
	fatigueScaleDivisor   = 10.0 // stored 0-100 -> 0-10 reference
	poorSleepHours        = 6.0
	goodSleepHours        = 8.0
	poorSleepPenalty      = 10
	goodSleepBonus        = 5
)

// statusTiers is evaluated top to bottom; the first tier whose ceiling is
// above the score wins.
var statusTiers = []struct {
	Below  int
	Status Status
}{
	{40, StatusRecoveryNeeded},
	{70, StatusTrainCaution},
	{math.MaxInt, StatusPrime},
}

// Result is the outcome of Calculate.
type Result struct {
	Score          int      `json:"score"`
	Status         Status   `json:"status"`
	Breakdown      []string `json:"breakdown"`
	ActiveInjuries []string `json:"active_injuries"`
}

// StatusFor maps a clamped score to its status.
func StatusFor(score int) Status {
	for _, t := range statusTiers {
		if score < t.Below {
			return t.Status
		}
	}
	return StatusPrime
}

// InjuryPenalty is pain*5 plus a severity surcharge.
func InjuryPenalty(inj models.Injury) int {
	p := inj.Pain() * 5
	switch inj.Severity {
	case models.SeveritySevere:
		p += 20
	case models.SeverityModerate:
		p += 10
	}
	return p
}

// Calculate scores readiness from active injuries, an optional fatigue
// vector and optional sleep hours. Nil inputs skip their step.
//
// Fatigue is stored on 0-100. The upper/lower/CNS average is converted to
// a 0-10 reference scale before the threshold comparison, so the penalty
// tops out at 25 points for a fully fatigued athlete.
func Calculate(injuries []models.Injury, fv *fatigue.Vector, sleepHours *float64) Result {
	score := float64(maxScore)
	res := Result{Breakdown: []string{}, ActiveInjuries: []string{}}

	for _, inj := range injuries {
		if !inj.Active() {
			continue
		}
		p := InjuryPenalty(inj)
		score -= float64(p)
		res.Breakdown = append(res.Breakdown, fmt.Sprintf("Injury (%s): -%d", inj.BodyPart, p))
		res.ActiveInjuries = append(res.ActiveInjuries, string(inj.BodyPart))
	}

	if fv != nil {
		v := fv.Clamp()
		avg := (v.CNS + v.MuscularUpper + v.MuscularLower) / 3 / fatigueScaleDivisor
		if avg > fatigueThreshold {
			p := (avg - fatigueThreshold) * fatiguePenaltyPerUnit
			score -= p
			res.Breakdown = append(res.Breakdown, fmt.Sprintf("Systemic Fatigue: -%.1f", p))
		}
	}

	if sleepHours != nil && !math.IsNaN(*sleepHours) {
		switch h := *sleepHours; {
		case h < poorSleepHours:
			score -= poorSleepPenalty
			res.Breakdown = append(res.Breakdown, fmt.Sprintf("Poor Sleep: -%d", poorSleepPenalty))
		case h > goodSleepHours:
			score += goodSleepBonus
			res.Breakdown = append(res.Breakdown, fmt.Sprintf("Good Sleep: +%d", goodSleepBonus))
		}
	}

	res.Score = int(math.Max(0, math.Min(maxScore, score)))
	res.Status = StatusFor(res.Score)
	return res
}
