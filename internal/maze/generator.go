package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Generator builds level layouts. It holds no random state of its own.
type Generator struct {
	params Params
}

// NewGenerator creates a generator for the given board settings.
func NewGenerator(p Params) *Generator {
	return &Generator{params: p}
}

// Params returns the generator's board settings.
func (g *Generator) Params() Params {
	return g.params
}

// Generate builds the layout for a 1-based level using rng for every draw.
// The same rng state always yields the same layout.
func (g *Generator) Generate(level int, rng *rand.Rand) (*State, error) {
	lvl, err := g.params.Level(level)
	if err != nil {
		return nil, err
	}

	layouts := 1
	if g.params.RequirePath {
		layouts = max(1, g.params.MaxLayouts)
	}

	for i := 0; i < layouts; i++ {
		s, err := g.layout(lvl, rng)
		if err != nil {
			return nil, err
		}
		if !g.params.RequirePath || s.GoalReachable() {
			return s, nil
		}
	}
	return nil, &GenerationError{Kind: CellGoal, Placed: layouts}
}

// layout places border walls, interior walls, traps and monsters, in that order.
func (g *Generator) layout(lvl Level, rng *rand.Rand) (*State, error) {
	p := g.params
	start, goal := p.Start(), p.Goal()

	taken := mapset.New[Position]()
	taken.Put(start)
	taken.Put(goal)

	var walls []Position
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			if r == 0 || r == p.Rows-1 || c == 0 || c == p.Cols-1 {
				walls = append(walls, Position{Row: r, Col: c})
			}
		}
	}

	// Interior cells minus start and goal.
	free := (p.Rows-2)*(p.Cols-2) - 2

	interior, err := g.scatter(rng, CellWall, lvl.Walls, free, taken)
	if err != nil {
		return nil, err
	}
	walls = append(walls, interior...)
	free -= len(interior)

	traps, err := g.scatter(rng, CellTrap, lvl.Traps, free, taken)
	if err != nil {
		return nil, err
	}
	free -= len(traps)

	spots, err := g.scatter(rng, CellMonster, lvl.Monsters, free, taken)
	if err != nil {
		return nil, err
	}
	monsters := make([]Monster, len(spots))
	for i, pos := range spots {
		monsters[i] = Monster{ID: i + 1, Pos: pos}
	}

	return NewState(lvl.Index, p.Rows, p.Cols, start, goal, walls, traps, monsters, start), nil
}

// scatter draws quota distinct interior cells not yet in taken and marks
// them taken. It fails when the quota exceeds the free cells or the draw
// budget runs out.
func (g *Generator) scatter(rng *rand.Rand, kind CellKind, quota, free int, taken mapset.Set[Position]) ([]Position, error) {
	if quota <= 0 {
		return nil, nil
	}
	if quota > free {
		return nil, &GenerationError{Kind: kind, Placed: 0, Wanted: quota}
	}

	p := g.params
	budget := quota * max(1, p.MaxDrawsPerItem)
	placed := make([]Position, 0, quota)

	for draws := 0; len(placed) < quota; draws++ {
		if draws >= budget {
			return nil, &GenerationError{Kind: kind, Placed: len(placed), Wanted: quota}
		}
		pos := Position{
			Row: 1 + rng.Intn(p.Rows-2),
			Col: 1 + rng.Intn(p.Cols-2),
		}
		if taken.Has(pos) {
			continue
		}
		taken.Put(pos)
		placed = append(placed, pos)
	}
	return placed, nil
}
