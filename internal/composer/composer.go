// Package composer builds a structured training session from the catalogs
// under fatigue, injury, equipment and difficulty constraints.
package composer

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/meltforce/hybridcoach/internal/catalog"
	"github.com/meltforce/hybridcoach/internal/fatigue"
)

// Discipline is the requested training modality.
type Discipline string

const (
	Strength  Discipline = "Strength"
	Boxing    Discipline = "Boxing"
	Cardio    Discipline = "Cardio"
	Athletics Discipline = "Athletics"
)

// ParseDiscipline is case-insensitive. Unknown values are returned as is and
// fall through to a Full Body strength session in Generate.
func ParseDiscipline(s string) Discipline {
	for _, d := range []Discipline{Strength, Boxing, Cardio, Athletics} {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d
		}
	}
	return Discipline(s)
}

// Block kinds.
const (
	KindWarmup       = "warmup"
	KindPrimary      = "primary"
	KindSecondary    = "secondary"
	KindTertiary     = "tertiary"
	KindAccessory    = "accessory"
	KindCore         = "core"
	KindCombo        = "combo"
	KindDrill        = "drill"
	KindPower        = "power"
	KindConditioning = "conditioning"
	KindFinisher     = "finisher"
	KindCooldown     = "cooldown"
	KindProtocol     = "protocol"
	KindInterval     = "interval"
	KindRecovery     = "recovery"
	KindAgility      = "agility"
)

// ExerciseBlock is one line of a session. Reps may be a range ("8-12") or a
// duration ("45s").
type ExerciseBlock struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
	Note string `json:"note"`
	Kind string `json:"kind"`
}

// SessionPlan is a complete, ordered session.
type SessionPlan struct {
	Title     string          `json:"title"`
	Focus     string          `json:"focus"`
	Duration  int             `json:"duration"`
	Intensity string          `json:"intensity"`
	Exercises []ExerciseBlock `json:"exercises"`
	Reasoning string          `json:"reasoning"`
}

// CountKind returns how many blocks have the given kind.
func (p SessionPlan) CountKind(kind string) int {
	n := 0
	for _, b := range p.Exercises {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// Request is the input snapshot for one plan.
type Request struct {
	Fatigue    fatigue.Vector
	Equipment  []string
	Minutes    int
	Blocked    []string
	Discipline Discipline
	Difficulty catalog.Difficulty
}

const (
	// RecoveryCNSThreshold forces a recovery session above this CNS fatigue.
	RecoveryCNSThreshold = 80.0
	defaultMinutes       = 60
)

// Shuffler randomizes candidate order. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

type noShuffle struct{}

func (noShuffle) Shuffle(int, func(i, j int)) {}

// NoShuffle keeps catalog order.
var NoShuffle Shuffler = noShuffle{}

// lockedShuffler serializes access to a non-concurrent source.
type lockedShuffler struct {
	mu sync.Mutex
	s  Shuffler
}

func (l *lockedShuffler) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Shuffle(n, swap)
}

// Composer generates plans. It holds no per-plan state and is safe for
// concurrent use.
type Composer struct {
	shuffle Shuffler
}

type Option func(*Composer)

// WithShuffler sets the randomness source. Access is serialized, so
// *rand.Rand may be passed directly.
func WithShuffler(s Shuffler) Option {
	return func(c *Composer) { c.shuffle = &lockedShuffler{s: s} }
}

// WithSeed makes selection reproducible.
func WithSeed(seed uint64) Option {
	return WithShuffler(rand.New(rand.NewPCG(seed, seed)))
}

// New returns a Composer using the process-wide random source by default.
func New(opts ...Option) *Composer {
	c := &Composer{shuffle: globalShuffler{}}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Generate builds a session. High CNS fatigue overrides every other input.
func (c *Composer) Generate(req Request) SessionPlan {
	req.Fatigue = req.Fatigue.Clamp()
	if req.Minutes <= 0 {
		req.Minutes = defaultMinutes
	}
	req.Difficulty = catalog.ParseDifficulty(string(req.Difficulty))

	if req.Fatigue.CNS > RecoveryCNSThreshold {
		return recoverySession(req.Minutes)
	}

	switch ParseDiscipline(string(req.Discipline)) {
	case Boxing:
		return boxingSession(req)
	case Cardio:
		return cardioSession(req)
	case Athletics:
		return athleticSession(req)
	case Strength:
		return c.strengthSession(req, strengthFocus(req.Fatigue))
	default:
		return c.strengthSession(req, catalog.FocusFullBody)
	}
}

func recoverySession(minutes int) SessionPlan {
	return SessionPlan{
		Title:     "Active Recovery",
		Focus:     "Mobility & Flow",
		Duration:  minutes,
		Intensity: "Low",
		Exercises: []ExerciseBlock{
			{Name: "Dynamic Stretching", Sets: 1, Reps: "5 min", Rest: "0s", Note: "Flow", Kind: KindRecovery},
			{Name: "Foam Rolling", Sets: 1, Reps: "10 min", Rest: "0s", Note: "Myofascial Release", Kind: KindRecovery},
			{Name: "Light Yoga Flow", Sets: 1, Reps: "10 min", Rest: "0s", Note: "Decompression", Kind: KindRecovery},
		},
		Reasoning: "High CNS fatigue detected. Focus on restoration.",
	}
}

func blocked(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
