package specs

import (
	"math/rand"
	"testing"

	"github.com/segmentio/fasthash/fnv1a"

	"mazter/pkg/engine/world"
)

func TestTwist(t *testing.T) {
	tests := []struct {
		seed, limit, want int
	}{
		{1, 12, 3},
		{1, 7, 4},
		{20, 2, 1},
		{20, 1, 0},
		{42, 0, 0},
	}
	for _, tt := range tests {
		if got := Twist(tt.seed, tt.limit); got != tt.want {
			t.Errorf("Twist(%d, %d) = %d, want %d", tt.seed, tt.limit, got, tt.want)
		}
	}
}

func TestForLevel_FirstLevel(t *testing.T) {
	s := ForLevel(1)
	if s.Name != "Level 1" {
		t.Errorf("Name = %q, want %q", s.Name, "Level 1")
	}
	if s.Dim != world.NewDim(16, 12) {
		t.Errorf("Dim = %v, want 16x12", s.Dim)
	}
	if s.Lives != 1 || s.Monsters != 0 || s.Potions != 0 || s.Cuts != 1 {
		t.Errorf("lives/monsters/potions/cuts = %d/%d/%d/%d, want 1/0/0/1",
			s.Lives, s.Monsters, s.Potions, s.Cuts)
	}
	if s.Disk || !s.Fill {
		t.Errorf("Disk = %v, Fill = %v, want false, true", s.Disk, s.Fill)
	}
	if s.Status != HintArrows {
		t.Errorf("Status = %q, want %q", s.Status, HintArrows)
	}
}

func TestForLevel_Disk(t *testing.T) {
	s := ForLevel(5)
	if !s.Disk || s.Fill {
		t.Fatalf("level 5: Disk = %v, Fill = %v, want true, false", s.Disk, s.Fill)
	}
	if s.Dim != world.NewDim(25, 24) {
		t.Errorf("level 5: Dim = %v, want 25x24", s.Dim)
	}
	if s.Lives != 1 || s.Monsters != 2 {
		t.Errorf("level 5: lives/monsters = %d/%d, want 1/2", s.Lives, s.Monsters)
	}
}

func TestForLevel_Verticalized(t *testing.T) {
	s := ForLevel(20)
	if s.Dim != world.NewDim(10, 46) {
		t.Errorf("level 20: Dim = %v, want 10x46", s.Dim)
	}
}

func TestForLevel_NoFillOnLateFourthLevels(t *testing.T) {
	for _, level := range []int{9, 13, 17, 21} {
		if ForLevel(level).Fill {
			t.Errorf("level %d: Fill = true, want false", level)
		}
	}
}

func TestForLevel_IsPureAndBounded(t *testing.T) {
	for level := 1; level <= 300; level++ {
		a, b := ForLevel(level), ForLevel(level)
		if a != b {
			t.Fatalf("ForLevel(%d) is not reproducible", level)
		}
		if a.Dim.W < MinDim || a.Dim.H < MinDim {
			t.Errorf("level %d: Dim %v below minimum", level, a.Dim)
		}
		if a.Lives < 1 || a.Cuts < 1 {
			t.Errorf("level %d: lives %d, cuts %d, want at least 1", level, a.Lives, a.Cuts)
		}
	}
}

func TestForTerminal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		s := ForTerminal(rng, world.NewDim(80, 24))
		if s.Name != "random" || s.Lives != 0 || s.Monsters != 0 || s.Potions != 0 {
			t.Fatalf("ForTerminal = %+v, want a player-less random maze", s)
		}
		if s.Dim.W < MinDim || s.Dim.H < MinDim {
			t.Fatalf("ForTerminal dim %v below minimum", s.Dim)
		}
	}
}

func TestHash_ChangesWithDefinition(t *testing.T) {
	sum := func(s Specs) uint64 {
		return s.Hash(fnv1a.Init64)
	}
	a := ForLevel(12)
	b := a
	b.Cuts++
	if sum(a) == sum(b) {
		t.Error("hash ignores cuts")
	}
	if sum(a) != sum(ForLevel(12)) {
		t.Error("hash is not reproducible")
	}
}

func TestLocalizedStatus(t *testing.T) {
	if got := (Specs{}).LocalizedStatus(); got != "" {
		t.Errorf("LocalizedStatus = %q, want empty", got)
	}
	sp := Specs{Status: "Find the exit"}
	if got := sp.LocalizedStatus(); got != "Find the exit" {
		t.Errorf("LocalizedStatus = %q, want the untranslated hint", got)
	}
}
