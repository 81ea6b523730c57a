package fatigue

import (
	"math"
	"strings"
)

// Session types understood by the impact matrix.
const (
	BoxingHeavy   = "boxing_heavy"
	BoxingTech    = "boxing_tech"
	StrengthLegs  = "strength_legs"
	StrengthUpper = "strength_upper"
	CardioSprint  = "cardio_sprint"
	CardioLISS    = "cardio_LISS"
)

// cost is the base fatigue cost of a 45 minute session at RPE 5.
// A nil field leaves that system untouched.
type cost struct {
	cns, upper, lower, cardio *float64
}

func pts(x float64) *float64 { return &x }

var impactMatrix = map[string]cost{
	BoxingHeavy:   {cns: pts(25), upper: pts(15), cardio: pts(20)},
	BoxingTech:    {cns: pts(10), upper: pts(5), cardio: pts(10)},
	StrengthLegs:  {cns: pts(30), lower: pts(40), cardio: pts(5)},
	StrengthUpper: {cns: pts(20), upper: pts(35), cardio: pts(5)},
	CardioSprint:  {cns: pts(25), lower: pts(20), cardio: pts(30)},
	CardioLISS:    {cns: pts(5), lower: pts(5), cardio: pts(15)},
}

var fallbackCost = cost{cns: pts(10), upper: pts(5), lower: pts(5), cardio: pts(5)}

const (
	referenceRPE      = 5.0
	referenceDuration = 45.0
)

// SessionTypes lists the session types with a dedicated impact row.
func SessionTypes() []string {
	return []string{BoxingHeavy, BoxingTech, StrengthLegs, StrengthUpper, CardioSprint, CardioLISS}
}

// KnownSessionType reports whether sessionType has its own impact row.
func KnownSessionType(sessionType string) bool {
	_, ok := impactMatrix[sessionType]
	return ok
}

// ApplyImpact adds the fatigue cost of a completed session. Unknown session
// types use a flat fallback cost. RPE is clamped to 1-10 and negative
// durations count as zero.
func ApplyImpact(v Vector, sessionType string, rpe int, durationMinutes int) Vector {
	v = v.Clamp()
	c, ok := impactMatrix[sessionType]
	if !ok {
		c = fallbackCost
	}

	rpe = min(max(rpe, 1), 10)
	duration := math.Max(0, float64(durationMinutes))
	scale := (float64(rpe) / referenceRPE) * (duration / referenceDuration)

	add := func(old float64, base *float64) float64 {
		if base == nil {
			return old
		}
		return math.Min(Max, old+*base*scale)
	}
	return Vector{
		CNS:           add(v.CNS, c.cns),
		MuscularUpper: add(v.MuscularUpper, c.upper),
		MuscularLower: add(v.MuscularLower, c.lower),
		Cardio:        add(v.Cardio, c.cardio),
	}
}

// ImpactTypeFor maps a logged discipline to its impact row. Strength
// sessions count as leg days when the notes mention legs.
func ImpactTypeFor(discipline string, rpe int, notes string) string {
	switch strings.ToLower(strings.TrimSpace(discipline)) {
	case "boxing":
		if rpe >= 7 {
			return BoxingHeavy
		}
		return BoxingTech
	case "strength":
		n := strings.ToLower(notes)
		if strings.Contains(n, "leg") || strings.Contains(n, "lower") {
			return StrengthLegs
		}
		return StrengthUpper
	case "cardio":
		if rpe >= 8 {
			return CardioSprint
		}
		return CardioLISS
	case "athletics":
		return CardioSprint
	}
	// Already an impact key, or unknown and left to the fallback row.
	return discipline
}
