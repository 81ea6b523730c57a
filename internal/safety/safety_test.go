package safety

import (
	"strings"
	"testing"
)

// TestCriticalSleepShortCircuits verifies sleep under 5h wins regardless of
// every other input, with identical recommendation text.
func TestCriticalSleepShortCircuits(t *testing.T) {
	base := Evaluate(Input{FatigueLevel: 2, SleepHours: 4.5, Motivation: 9})
	if base.Warning != WarningSleep {
		t.Fatalf("warning = %q, want %q", base.Warning, WarningSleep)
	}

	others := []Input{
		{FatigueLevel: 10, SleepHours: 4.9, Soreness: []string{"legs"}, Motivation: 0},
		{FatigueLevel: 0, SleepHours: 0, Motivation: 10},
		{FatigueLevel: 5, SleepHours: 2, Soreness: []string{"LEGS", "arms"}, Motivation: 1},
		{FatigueLevel: -3, SleepHours: -1, Motivation: 99},
	}
	for _, in := range others {
		got := Evaluate(in)
		if got.Warning == "" {
			t.Errorf("Evaluate(%+v) warning empty", in)
		}
		if got.Recommendation != base.Recommendation {
			t.Errorf("Evaluate(%+v) recommendation = %q, want %q", in, got.Recommendation, base.Recommendation)
		}
	}
}

// TestSystemicFatigue verifies the second terminal rule and its 50% advice.
func TestSystemicFatigue(t *testing.T) {
	got := Evaluate(Input{FatigueLevel: 9, SleepHours: 7, Motivation: 8})
	if got.Warning != WarningFatigue {
		t.Errorf("warning = %q, want %q", got.Warning, WarningFatigue)
	}
	if !strings.Contains(got.Recommendation, "50%") || !strings.Contains(got.Recommendation, "rest") {
		t.Errorf("recommendation = %q, want a 50%% reduction or rest", got.Recommendation)
	}
}

// TestSoftRules verifies soft rules act as else-if and never warn.
func TestSoftRules(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		wantRule string
	}{
		{"sore legs", Input{FatigueLevel: 3, SleepHours: 7, Soreness: []string{"Legs"}, Motivation: 7}, "sore_legs"},
		{"sore legs beats low motivation", Input{FatigueLevel: 3, SleepHours: 7, Soreness: []string{"legs"}, Motivation: 1}, "sore_legs"},
		{"low motivation fresh body", Input{FatigueLevel: 2, SleepHours: 7, Motivation: 2}, "low_motivation"},
		{"low motivation but tired", Input{FatigueLevel: 6, SleepHours: 7, Motivation: 2}, DefaultRule},
		{"other soreness", Input{FatigueLevel: 4, SleepHours: 8, Soreness: []string{"shoulders"}, Motivation: 5}, DefaultRule},
		{"exactly five hours", Input{FatigueLevel: 7, SleepHours: 5, Motivation: 5}, DefaultRule},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.in)
			if got.Rule != tc.wantRule {
				t.Errorf("rule = %q, want %q", got.Rule, tc.wantRule)
			}
			if got.Warning != "" {
				t.Errorf("warning = %q, want none", got.Warning)
			}
			if got.Recommendation == "" {
				t.Error("recommendation is empty")
			}
		})
	}
	if got := Evaluate(Input{FatigueLevel: 4, SleepHours: 7, Motivation: 6}); got.Recommendation != DefaultAdvice {
		t.Errorf("default recommendation = %q", got.Recommendation)
	}
}

// TestEvaluateRulesCustomOrder verifies ordering is driven by the rule slice.
func TestEvaluateRulesCustomOrder(t *testing.T) {
	rules := []Rule{Rules[1], Rules[0]}
	got := EvaluateRules(rules, Input{FatigueLevel: 9, SleepHours: 3})
	if got.Rule != "systemic_fatigue" {
		t.Errorf("rule = %q, want systemic_fatigue when it is listed first", got.Rule)
	}
}
