package maze

import (
	"errors"
	"math/rand"
	"testing"
)

func borderCount(p Params) int {
	return 2*p.Cols + 2*(p.Rows-2)
}

func TestGenerateAllLevels(t *testing.T) {
	p := DefaultParams()
	gen := NewGenerator(p)

	for level := 1; level <= p.NumLevels; level++ {
		for seed := int64(1); seed <= 20; seed++ {
			s, err := gen.Generate(level, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("level %d seed %d: %v", level, seed, err)
			}
			if err := s.Validate(); err != nil {
				t.Fatalf("level %d seed %d: invalid state: %v", level, seed, err)
			}

			lvl, _ := p.Level(level)
			if got := len(s.Walls); got != borderCount(p)+lvl.Walls {
				t.Errorf("level %d: %d walls, expected %d", level, got, borderCount(p)+lvl.Walls)
			}
			if len(s.Traps) != lvl.Traps {
				t.Errorf("level %d: %d traps, expected %d", level, len(s.Traps), lvl.Traps)
			}
			if len(s.Monsters) != lvl.Monsters {
				t.Errorf("level %d: %d monsters, expected %d", level, len(s.Monsters), lvl.Monsters)
			}
			for i, m := range s.Monsters {
				if m.ID != i+1 {
					t.Errorf("level %d: monster %d has ID %d", level, i, m.ID)
				}
			}
			if s.Player != s.Start {
				t.Errorf("level %d: player at %v, expected start %v", level, s.Player, s.Start)
			}
			if !s.GoalReachable() {
				t.Errorf("level %d seed %d: goal unreachable", level, seed)
			}
		}
	}
}

func TestGenerateFixedCorners(t *testing.T) {
	s, err := NewGenerator(DefaultParams()).Generate(1, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if s.Start != (Position{1, 1}) {
		t.Errorf("Start = %v, expected (1,1)", s.Start)
	}
	if s.Goal != (Position{10, 20}) {
		t.Errorf("Goal = %v, expected (10,20)", s.Goal)
	}

	g := s.Grid()
	if g.Rows() != 12 || g.Cols() != 22 {
		t.Fatalf("grid is %dx%d, expected 12x22", g.Rows(), g.Cols())
	}
	if g.At(s.Start) != CellPlayer {
		t.Errorf("start cell shows %v, expected player", g.At(s.Start))
	}
	if g.At(s.Goal) != CellGoal {
		t.Errorf("goal cell shows %v, expected goal", g.At(s.Goal))
	}
	if g.Count(CellPlayer) != 1 {
		t.Errorf("grid shows %d players, expected 1", g.Count(CellPlayer))
	}
	for c := 0; c < g.Cols(); c++ {
		if g[0][c] != CellWall || g[g.Rows()-1][c] != CellWall {
			t.Errorf("border column %d is not a wall", c)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	gen := NewGenerator(DefaultParams())

	for level := 1; level <= 10; level++ {
		a, errA := gen.Generate(level, rand.New(rand.NewSource(99)))
		b, errB := gen.Generate(level, rand.New(rand.NewSource(99)))
		if errA != nil || errB != nil {
			t.Fatalf("level %d: errors %v, %v", level, errA, errB)
		}
		if a.Grid().String() != b.Grid().String() {
			t.Errorf("level %d: same seed produced different layouts", level)
		}
		for i := range a.Monsters {
			if a.Monsters[i] != b.Monsters[i] {
				t.Errorf("level %d: monster %d differs: %v vs %v", level, i, a.Monsters[i], b.Monsters[i])
			}
		}
	}
}

func TestGenerateInvalidLevel(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	rng := rand.New(rand.NewSource(1))

	for _, level := range []int{0, 11} {
		if _, err := gen.Generate(level, rng); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("Generate(%d) error = %v, expected ErrInvalidLevel", level, err)
		}
	}
}

func TestGenerateQuotaExceedsFreeCells(t *testing.T) {
	p := DefaultParams()
	p.Rows = 4
	p.Cols = 5 // 2x3 interior, 4 free cells after start and goal
	gen := NewGenerator(p)

	_, err := gen.Generate(3, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Fatalf("error = %v, expected ErrGenerationExhausted", err)
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error %T is not a *GenerationError", err)
	}
	if genErr.Kind != CellWall || genErr.Wanted != 6 {
		t.Errorf("GenerationError = %+v, expected 6 walls wanted", genErr)
	}
}

func TestGenerateUnreachableGoal(t *testing.T) {
	// A single interior row where the only free cell sits between start and goal.
	p := Params{
		Rows:            3,
		Cols:            5,
		NumLevels:       1,
		WallsPerLevel:   1,
		MaxDrawsPerItem: 1000,
		RequirePath:     true,
		MaxLayouts:      3,
	}

	_, err := NewGenerator(p).Generate(1, rand.New(rand.NewSource(1)))
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Kind != CellGoal {
		t.Fatalf("error = %v, expected unreachable goal", err)
	}

	p.RequirePath = false
	s, err := NewGenerator(p).Generate(1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Generate without path check: %v", err)
	}
	if s.GoalReachable() {
		t.Error("goal should be walled off")
	}
	if !s.IsWall(Position{1, 2}) {
		t.Errorf("expected the wall at (1,2), walls = %v", s.Walls)
	}
}
