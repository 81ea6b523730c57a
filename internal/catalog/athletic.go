package catalog

// AthleticDrill is a speed, agility or plyometric drill.
type AthleticDrill struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Intensity string `json:"intensity"`
}

var athleticDrills = []AthleticDrill{
	{"A-Skips", "Speed Mechanics", "Low"},
	{"B-Skips", "Speed Mechanics", "Medium"},
	{"Lateral Heidens", "Plyometrics", "High"},
	{"Depth Jumps", "Plyometrics", "Very High"},
	{"Ladder Ickey Shuffle", "Agility", "Medium"},
	{"Cone 5-10-5", "Agility", "High"},
}

// AthleticDrills returns the full drill table.
func AthleticDrills() []AthleticDrill {
	out := make([]AthleticDrill, len(athleticDrills))
	copy(out, athleticDrills)
	return out
}

// Warmup returns low-intensity drills, plus medium ones when intensity is "High".
func Warmup(intensity string) []AthleticDrill {
	allowed := map[string]bool{"Low": true}
	if intensity == "High" {
		allowed["Medium"] = true
	}
	var out []AthleticDrill
	for _, d := range athleticDrills {
		if allowed[d.Intensity] {
			out = append(out, d)
		}
	}
	return out
}
