package composer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/meltforce/hybridcoach/internal/catalog"
	"github.com/meltforce/hybridcoach/internal/fatigue"
)

// volume is the per-tier prescription.
type volume struct {
	mainSets      int
	mainReps      string
	secSets       int
	secReps       string
	accSets       int
	accReps       string
	intensity     string
	compoundRest  string
	accessoryRest string
	accessories   int
	tertiary      bool
}

var volumeTable = map[catalog.Difficulty]volume{
	catalog.Beginner: {
		mainSets: 3, mainReps: "5-8", secSets: 3, secReps: "8-10", accSets: 2, accReps: "12-15",
		intensity: "Moderate", compoundRest: "2-3 min", accessoryRest: "60-90s",
		accessories: 3,
	},
	catalog.Intermediate: {
		mainSets: 4, mainReps: "5-6", secSets: 3, secReps: "8-12", accSets: 3, accReps: "10-15",
		intensity: "Moderate-High (RPE 7-8)", compoundRest: "2-3 min", accessoryRest: "60-90s",
		accessories: 4, tertiary: true,
	},
	catalog.Advanced: {
		mainSets: 5, mainReps: "3-5", secSets: 4, secReps: "6-8", accSets: 3, accReps: "10-12",
		intensity: "High (RPE 8-9)", compoundRest: "3-5 min", accessoryRest: "90s",
		accessories: 5, tertiary: true,
	},
}

// regionThreshold separates a fresh body region from a tired one.
const regionThreshold = 40.0

// strengthFocus narrows to the fresher half of the body when one region is
// clearly more fatigued than the other.
func strengthFocus(v fatigue.Vector) catalog.Focus {
	switch {
	case v.MuscularLower < regionThreshold && v.MuscularUpper > regionThreshold:
		return catalog.FocusLower
	case v.MuscularUpper < regionThreshold && v.MuscularLower > regionThreshold:
		return catalog.FocusUpper
	default:
		return catalog.FocusFullBody
	}
}

func warmupDrills(focus catalog.Focus) []string {
	f := string(focus)
	var drills []string
	if strings.Contains(f, "Lower") || strings.Contains(f, "Leg") || strings.Contains(f, "Full") {
		drills = append(drills, "90/90 Hip Switch", "World's Greatest Stretch")
	}
	if strings.Contains(f, "Upper") || strings.Contains(f, "Push") || strings.Contains(f, "Pull") || strings.Contains(f, "Full") {
		drills = append(drills, "Band Pull Aparts", "Thoracic Rotations")
	}
	if len(drills) == 0 {
		drills = []string{"Cat-Cow", "Bodyweight Good Mornings"}
	}
	return drills
}

func (c *Composer) strengthSession(req Request, focus catalog.Focus) SessionPlan {
	vol := volumeTable[req.Difficulty]
	blocks := []ExerciseBlock{{
		Name: "Dynamic Warmup Sequence",
		Sets: 1,
		Reps: "5-8 min",
		Rest: "0s",
		Note: fmt.Sprintf("Flow through: %s. Increase body temp.", strings.Join(warmupDrills(focus), ", ")),
		Kind: KindWarmup,
	}}

	var compounds, others []catalog.ExerciseSpec
	for _, e := range catalog.Exercises(focus, req.Equipment, req.Blocked) {
		if e.Type == catalog.Compound {
			compounds = append(compounds, e)
		} else {
			others = append(others, e)
		}
	}
	c.shuffle.Shuffle(len(compounds), func(i, j int) { compounds[i], compounds[j] = compounds[j], compounds[i] })
	c.shuffle.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	used := map[string]bool{}
	add := func(b ExerciseBlock) {
		used[b.Name] = true
		blocks = append(blocks, b)
	}

	primaryName, secondaryName := "Main Lift", "assistance"
	if len(compounds) > 0 {
		primary := compounds[0]
		primaryName = primary.Name
		add(ExerciseBlock{
			Name: primary.Name, Sets: vol.mainSets, Reps: vol.mainReps, Rest: vol.compoundRest,
			Note: fmt.Sprintf("PRIMARY STRENGTH. Focus on perfect form. %s.", vol.intensity),
			Kind: KindPrimary,
		})

		if len(compounds) > 1 {
			rest := compounds[1:]
			idx := slices.IndexFunc(rest, func(e catalog.ExerciseSpec) bool {
				return e.Muscle == primary.Muscle || slices.Contains(primary.Secondary, e.Muscle)
			})
			if idx < 0 {
				idx = 0
			}
			secondary := rest[idx]
			secondaryName = secondary.Name
			add(ExerciseBlock{
				Name: secondary.Name, Sets: vol.secSets, Reps: vol.secReps, Rest: vol.compoundRest,
				Note: "HYPERTROPHY. Control the eccentric (lowering) phase.",
				Kind: KindSecondary,
			})
		}

		if vol.tertiary {
			for _, e := range compounds[1:] {
				if used[e.Name] {
					continue
				}
				add(ExerciseBlock{
					Name: e.Name, Sets: 3, Reps: "8-10", Rest: vol.compoundRest,
					Note: "VOLUME WORK. Maintain good form throughout.",
					Kind: KindTertiary,
				})
				break
			}
		}
	}

	picked := 0
	for _, e := range others {
		if picked >= vol.accessories {
			break
		}
		if used[e.Name] {
			continue
		}
		add(ExerciseBlock{
			Name: e.Name, Sets: vol.accSets, Reps: vol.accReps, Rest: vol.accessoryRest,
			Note: fmt.Sprintf("Target %s. Squeeze at the top.", e.Muscle),
			Kind: KindAccessory,
		})
		picked++
	}

	// Core finishers come from the core table in catalog order.
	finishers := []struct {
		reps, isoReps, rest, note string
	}{
		{"15-20", "45-60s", "60s", "Core Stability."},
		{"12-15", "30-45s", "45s", "Core Strength."},
	}
	next := 0
	for _, e := range catalog.Exercises(catalog.FocusCore, req.Equipment, req.Blocked) {
		if next >= len(finishers) {
			break
		}
		if used[e.Name] {
			continue
		}
		f := finishers[next]
		reps := f.reps
		if e.Type == catalog.Iso {
			reps = f.isoReps
		}
		add(ExerciseBlock{Name: e.Name, Sets: 3, Reps: reps, Rest: f.rest, Note: f.note, Kind: KindCore})
		next++
	}

	return SessionPlan{
		Title:     fmt.Sprintf("Pro %s - %s", focus, req.Difficulty),
		Focus:     string(focus),
		Duration:  req.Minutes,
		Intensity: vol.intensity,
		Exercises: blocks,
		Reasoning: fmt.Sprintf("Professional programming: %s for strength, followed by volume work for %s. Total exercises: %d",
			primaryName, secondaryName, len(blocks)),
	}
}
