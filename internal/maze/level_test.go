package maze

import (
	"errors"
	"testing"
)

func TestLevelBudget(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		index                  int
		walls, traps, monsters int
	}{
		{1, 2, 1, 1},
		{2, 4, 2, 2},
		{3, 6, 3, 3},
		{4, 8, 4, 3},
		{10, 20, 10, 3},
	}

	for _, tc := range tests {
		lvl, err := p.Level(tc.index)
		if err != nil {
			t.Fatalf("Level(%d) error: %v", tc.index, err)
		}
		if lvl.Walls != tc.walls || lvl.Traps != tc.traps || lvl.Monsters != tc.monsters {
			t.Errorf("Level(%d) = %+v, expected walls=%d traps=%d monsters=%d",
				tc.index, lvl, tc.walls, tc.traps, tc.monsters)
		}
	}
}

func TestLevelTrapCap(t *testing.T) {
	p := DefaultParams()
	p.NumLevels = 20
	p.MaxTraps = 15

	lvl, err := p.Level(20)
	if err != nil {
		t.Fatalf("Level(20) error: %v", err)
	}
	if lvl.Traps != 15 {
		t.Errorf("Traps = %d, expected cap of 15", lvl.Traps)
	}
}

func TestLevelOutOfRange(t *testing.T) {
	p := DefaultParams()
	for _, index := range []int{-1, 0, 11, 100} {
		if _, err := p.Level(index); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("Level(%d) error = %v, expected ErrInvalidLevel", index, err)
		}
	}
}
