// Package specs defines the difficulty curve: the deterministic mapping from a
// level number to the parameters of the maze to build.
package specs

import (
	"fmt"
	"math/rand"

	"github.com/leonelquinteros/gotext"
	"github.com/segmentio/fasthash/fnv1a"

	"mazter/pkg/engine/world"
)

// MinDim is the smallest width or height of a maze
const MinDim = 7

// Specs is the definition of a maze to build
type Specs struct {
	Name     string
	Dim      world.Dim
	Cuts     int
	Potions  int
	Monsters int
	Lives    int
	// Status is the untranslated hint shown while playing (a gettext msgid)
	Status string
	Disk   bool
	Fill   bool
}

// SizeTier is the size class of a level
type SizeTier int

const (
	Tiny SizeTier = iota
	Small
	Normal
	Large
	Huge
)

// String returns the name of the tier
func (t SizeTier) String() string {
	switch t {
	case Tiny:
		return "Tiny"
	case Small:
		return "Small"
	case Large:
		return "Large"
	case Huge:
		return "Huge"
	default:
		return "Normal"
	}
}

// TierForLevel returns the size tier of a level
func TierForLevel(level int) SizeTier {
	switch level % 11 {
	case 1, 4:
		return Tiny
	case 2, 6, 8:
		return Small
	case 3, 10:
		return Large
	case 7:
		return Huge
	default:
		return Normal
	}
}

// Dim returns the base dimensions of the tier for the given level
func (t SizeTier) Dim(level int) world.Dim {
	l := level
	switch t {
	case Tiny:
		return world.NewDim(13+Twist(l, 12), MinDim+1+Twist(l, 7))
	case Small:
		return world.NewDim(20+Twist(l, l/10), 18+Twist(l, l/12))
	case Large:
		return world.NewDim(30+Twist(l, l/8), 24+Twist(l, l/10))
	case Huge:
		return world.NewDim(40+Twist(l, l/4), 31+Twist(l, l/6))
	default:
		return world.NewDim(25+Twist(l, l/9), 20+Twist(l, l/11))
	}
}

// Twist returns a reproducible pseudo random number in [0, limit), or 0 when limit is 0
func Twist(seed, limit int) int {
	if limit == 0 {
		return 0
	}
	return (seed*27 + (limit+173)*347 + seed*293) % limit
}

// Status hints, shown on the first levels
const (
	HintArrows  = "Use arrow keys to move and exit the maze"
	HintMonster = "Red monsters teleport you"
	HintPotions = "Pick lives on green squares"
	HintAbandon = "You can abandon with key 'a'"
	HintWait    = "Hit 'w' to wait"
	HintNoEnemy = "Sometimes there's no monster, just find the exit"
)

func statusForLevel(level int) string {
	switch level {
	case 1:
		return HintArrows
	case 2, 4:
		return HintMonster
	case 3, 6:
		return HintPotions
	case 5, 8, 12:
		return HintAbandon
	case 10, 14, 17:
		return HintWait
	case 11:
		return HintNoEnemy
	default:
		return ""
	}
}

// ForLevel returns the specs of a level. Levels start at 1.
func ForLevel(level int) Specs {
	dim := TierForLevel(level).Dim(level)
	disk := level%7 == 5
	if disk {
		dim.W = max(24, dim.W)
		dim.H = max(24, dim.H)
	} else if level%13 == 7 {
		dim.Verticalize(MinDim)
	}
	s := dim.Area()
	sp := Specs{
		Name:   fmt.Sprintf("Level %d", level),
		Dim:    dim,
		Status: statusForLevel(level),
		Disk:   disk,
		Fill:   !disk && !(level%4 == 1 && level > 6),
	}
	// a cycle of progressively harder levels
	switch c := level % 10; {
	case c == 1:
		sp.Lives, sp.Monsters, sp.Potions = 1, 0, 0
		sp.Cuts = 1 + s/200
	case c == 2:
		sp.Lives, sp.Monsters = 3, 1
		sp.Potions = 5 + s/(40+level)
		sp.Cuts = 1 + s/100
	case c == 3 && level > 10:
		sp.Lives, sp.Monsters = 4, 2+level/60
		sp.Potions = 2 + s/(100+level)
		sp.Cuts = 1 + s/160
	case c == 4 && level > 10:
		sp.Lives, sp.Monsters = 2, 2
		sp.Potions = 5 + s/(100+level)
		sp.Cuts = 1 + s/200
	case c == 5 && level > 20:
		sp.Lives, sp.Monsters = 1, 2
		sp.Potions = 4 + s/(420+level)
		sp.Cuts = 1 + s/100
	case c == 6 && level > 30:
		sp.Lives, sp.Monsters = 1, 5+level/90
		sp.Potions = 1 + s/150
		sp.Cuts = 1 + s/150
	case c == 7 && level > 30:
		sp.Lives, sp.Monsters = 2, 3+level/100
		sp.Potions = 5 + s/100
		sp.Cuts = 1 + s/200
	case c == 8 && level > 40:
		sp.Lives, sp.Monsters = 2, 4
		sp.Potions = 1 + s/(150+level)
		sp.Cuts = 1 + s/200
	case c == 9 && level > 50:
		sp.Lives, sp.Monsters = 2, 5+level/100
		sp.Potions = 1 + s/(200+2*level)
		sp.Cuts = 1 + s/100
	default:
		sp.Lives, sp.Monsters = 1, 2
		sp.Potions = 7 + s/(30+4*level)
		sp.Cuts = 1 + s/(60+2*level)
	}
	return sp
}

// ForTerminal returns random specs for a maze filling a terminal of the given size,
// or a small maze one time out of three. Such mazes have no potion nor monster.
func ForTerminal(rng *rand.Rand, term world.Dim) Specs {
	var dim world.Dim
	if rng.Intn(3) == 0 {
		dim = world.NewDim(8+rng.Intn(35-8), 7+rng.Intn(20-7))
	} else {
		dim = world.NewDim(term.W-2, term.H*2-3)
	}
	dim.W = max(dim.W, MinDim)
	dim.H = max(dim.H, MinDim)
	var cuts int
	switch rng.Intn(3) {
	case 0:
		cuts = dim.Area() / 2300
	case 1:
		cuts = dim.Area() / 500
	default:
		cuts = dim.Area() / 60
	}
	fill := rng.Intn(5) < 4
	return Specs{
		Name: "random",
		Dim:  dim,
		Cuts: cuts,
		Disk: rng.Intn(20) == 0,
		Fill: fill,
	}
}

// dynamicGet translates status hints, which are only known at runtime
var dynamicGet = gotext.Get

// LocalizedStatus returns the status hint in the configured locale
func (s Specs) LocalizedStatus() string {
	if s.Status == "" {
		return ""
	}
	return dynamicGet(s.Status)
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Hash folds every field into the FNV-1a hash h, in a fixed order. Any
// change in the definition of a level changes its hash.
func (s Specs) Hash(h uint64) uint64 {
	h = fnv1a.AddString64(h, s.Name)
	h = fnv1a.AddUint64(h, uint64(s.Dim.W))
	h = fnv1a.AddUint64(h, uint64(s.Dim.H))
	h = fnv1a.AddUint64(h, uint64(s.Cuts))
	h = fnv1a.AddUint64(h, uint64(s.Potions))
	h = fnv1a.AddUint64(h, uint64(s.Monsters))
	h = fnv1a.AddUint64(h, uint64(s.Lives))
	h = fnv1a.AddString64(h, s.Status)
	h = fnv1a.AddUint64(h, boolBit(s.Disk))
	return fnv1a.AddUint64(h, boolBit(s.Fill))
}
