package readiness

import (
	"slices"

	"github.com/meltforce/hybridcoach/internal/models"
)

// Movement tags excluded from selection while an injury is active.
const (
	TagOverhead   = "overhead"
	TagBenchPress = "bench_press"
	TagDips       = "dips"
	TagHeavyBag   = "heavy_bag"
	TagSquat      = "squat"
	TagLunge      = "lunge"
	TagJump       = "jump"
	TagRun        = "run"
	TagDeadlift   = "deadlift"
	TagBentRow    = "bent_row"
	TagSitup      = "situp"
)

var blockedByBodyPart = map[models.BodyPart][]string{
	models.BodyPartShoulder:  {TagOverhead, TagBenchPress, TagDips, TagHeavyBag},
	models.BodyPartKnee:      {TagSquat, TagLunge, TagJump, TagRun},
	models.BodyPartLowerBack: {TagDeadlift, TagBentRow, TagSitup},
}

// Vocabulary returns every tag BlockedMovements can produce, sorted.
func Vocabulary() []string {
	var out []string
	for _, tags := range blockedByBodyPart {
		out = append(out, tags...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// BlockedMovements returns the sorted, deduplicated movement tags blocked
// by the active injuries.
func BlockedMovements(injuries []models.Injury) []string {
	out := []string{}
	for _, inj := range injuries {
		if !inj.Active() {
			continue
		}
		out = append(out, blockedByBodyPart[inj.BodyPart]...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
