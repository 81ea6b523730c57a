// Package safety evaluates a day's check-in against an ordered cascade of
// go/no-go rules.
package safety

import (
	"math"
	"strings"
)

// Input is a self-reported check-in.
type Input struct {
	FatigueLevel int      `json:"fatigue_level"` // 0-10
	SleepHours   float64  `json:"sleep_hours"`
	Soreness     []string `json:"soreness"`
	Motivation   int      `json:"motivation"` // 0-10
}

// Evaluation is the cascade's verdict. Warning is empty unless a terminal
// rule fired.
type Evaluation struct {
	Recommendation string `json:"recommendation"`
	Warning        string `json:"warning,omitempty"`
	Rule           string `json:"rule"`
}

// Rule is one predicate/action pair. Terminal rules stop evaluation and may
// set a warning; soft rules only run until one has set a recommendation.
type Rule struct {
	Name           string
	When           func(Input) bool
	Warning        string
	Recommendation string
	Terminal       bool
}

const (
	WarningSleep   = "CRITICAL: Sleep detected below 5 hours."
	WarningFatigue = "Systemic Fatigue High."
	DefaultAdvice  = "All systems go. Attack your training plan with intent!"
	DefaultRule    = "default"
)

// Rules is the cascade in priority order.
var Rules = []Rule{
	{
		Name:           "critical_sleep",
		When:           func(in Input) bool { return in.SleepHours < 5.0 },
		Warning:        WarningSleep,
		Recommendation: "Do not train heavy today. High injury risk. Recommendation: 30 mins light active recovery or full rest.",
		Terminal:       true,
	},
	{
		Name:           "systemic_fatigue",
		When:           func(in Input) bool { return in.FatigueLevel >= 8 },
		Warning:        WarningFatigue,
		Recommendation: "Body is indicating overload. Reduce intensity by 50% or take a complete rest day.",
		Terminal:       true,
	},
	{
		Name:           "sore_legs",
		When:           func(in Input) bool { return sore(in.Soreness, "legs") },
		Recommendation: "Legs are sore. Avoid heavy squats or plyometrics. Focus on Upper Body or low-impact cardio.",
	},
	{
		Name: "low_motivation",
		When: func(in Input) bool { return in.Motivation < 3 && in.FatigueLevel < 6 },
		Recommendation: "Motivation is low but body is fresh. Try a 'start small' approach: " +
			"Commit to just 10 minutes of warm-up. You'll likely continue.",
	},
}

// Evaluate runs Rules over the clamped input.
func Evaluate(in Input) Evaluation {
	return EvaluateRules(Rules, in)
}

// EvaluateRules runs rules top to bottom. The first matching terminal rule
// returns immediately; the first matching soft rule sets the recommendation
// and later soft rules are skipped.
func EvaluateRules(rules []Rule, in Input) Evaluation {
	in = in.clamped()
	var ev Evaluation
	for _, r := range rules {
		if !r.Terminal && ev.Recommendation != "" {
			continue
		}
		if !r.When(in) {
			continue
		}
		if r.Terminal {
			return Evaluation{Recommendation: r.Recommendation, Warning: r.Warning, Rule: r.Name}
		}
		ev = Evaluation{Recommendation: r.Recommendation, Rule: r.Name}
	}
	if ev.Recommendation == "" {
		ev = Evaluation{Recommendation: DefaultAdvice, Rule: DefaultRule}
	}
	return ev
}

func (in Input) clamped() Input {
	in.FatigueLevel = min(max(in.FatigueLevel, 0), 10)
	in.Motivation = min(max(in.Motivation, 0), 10)
	if math.IsNaN(in.SleepHours) || in.SleepHours < 0 {
		in.SleepHours = 0
	}
	return in
}

func sore(areas []string, want string) bool {
	for _, a := range areas {
		if strings.EqualFold(strings.TrimSpace(a), want) {
			return true
		}
	}
	return false
}
