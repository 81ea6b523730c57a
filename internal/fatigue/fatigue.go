// Package fatigue models accumulated training fatigue across four systems
// and how it recovers over time and grows with each completed session.
package fatigue

import "math"

// Max is the upper bound of every fatigue system.
const Max = 100.0

// Vector holds fatigue per system on a 0-100 scale.
type Vector struct {
	CNS           float64 `json:"cns"`
	MuscularUpper float64 `json:"muscular_upper"`
	MuscularLower float64 `json:"muscular_lower"`
	Cardio        float64 `json:"cardio"`
}

// Daily recovery rates as a fraction of Max per 24 hours.
const (
	cnsDecay    = 0.4
	upperDecay  = 0.3
	lowerDecay  = 0.3
	cardioDecay = 0.6
)

// Clamp returns a copy with every system bounded to [0, Max].
// NaN values are treated as zero.
func (v Vector) Clamp() Vector {
	return Vector{
		CNS:           clamp(v.CNS),
		MuscularUpper: clamp(v.MuscularUpper),
		MuscularLower: clamp(v.MuscularLower),
		Cardio:        clamp(v.Cardio),
	}
}

// Average is the mean of all four systems.
func (v Vector) Average() float64 {
	return (v.CNS + v.MuscularUpper + v.MuscularLower + v.Cardio) / 4
}

// Readiness is a quick gauge: 100 minus the average fatigue, floored at
// zero and truncated. It ignores injuries and sleep; see package readiness
// for the full score.
func (v Vector) Readiness() int {
	v = v.Clamp()
	return int(math.Max(0, Max-v.Average()))
}

// Decay recovers each system linearly over hoursPassed. Non-positive
// durations return the vector unchanged.
func Decay(v Vector, hoursPassed float64) Vector {
	v = v.Clamp()
	if !(hoursPassed > 0) {
		return v
	}
	days := hoursPassed / 24
	return Vector{
		CNS:           math.Max(0, v.CNS-cnsDecay*Max*days),
		MuscularUpper: math.Max(0, v.MuscularUpper-upperDecay*Max*days),
		MuscularLower: math.Max(0, v.MuscularLower-lowerDecay*Max*days),
		Cardio:        math.Max(0, v.Cardio-cardioDecay*Max*days),
	}
}

func clamp(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > Max {
		return Max
	}
	return x
}
