package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Monster is a wandering hazard. IDs are assigned 1..n in creation order and
// fix the order in which monsters move.
type Monster struct {
	ID  int
	Pos Position
}

// State is the full board of one attempt. Walls, traps, start and goal are
// fixed at generation time; only the player and monsters move.
type State struct {
	Level    int
	Rows     int
	Cols     int
	Start    Position
	Goal     Position
	Walls    []Position
	Traps    []Position
	Monsters []Monster
	Player   Position

	wallSet mapset.Set[Position]
	trapSet mapset.Set[Position]
}

// NewState builds a state and indexes its walls and traps.
func NewState(level, rows, cols int, start, goal Position, walls, traps []Position, monsters []Monster, player Position) *State {
	s := &State{
		Level:    level,
		Rows:     rows,
		Cols:     cols,
		Start:    start,
		Goal:     goal,
		Walls:    walls,
		Traps:    traps,
		Monsters: monsters,
		Player:   player,
	}
	s.index()
	return s
}

func (s *State) index() {
	s.wallSet = mapset.New[Position]()
	for _, w := range s.Walls {
		s.wallSet.Put(w)
	}
	s.trapSet = mapset.New[Position]()
	for _, t := range s.Traps {
		s.trapSet.Put(t)
	}
}

// InBounds reports whether p lies on the board.
func (s *State) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// IsWall reports whether p holds a wall.
func (s *State) IsWall(p Position) bool {
	return s.wallSet.Has(p)
}

// IsTrap reports whether p holds a trap.
func (s *State) IsTrap(p Position) bool {
	return s.trapSet.Has(p)
}

// MonsterAt returns the index into Monsters of the monster at p, or -1.
func (s *State) MonsterAt(p Position) int {
	for i, m := range s.Monsters {
		if m.Pos == p {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy. Mutating the copy never affects s.
func (s *State) Clone() *State {
	return NewState(
		s.Level, s.Rows, s.Cols, s.Start, s.Goal,
		append([]Position(nil), s.Walls...),
		append([]Position(nil), s.Traps...),
		append([]Monster(nil), s.Monsters...),
		s.Player,
	)
}

// Grid projects the entities onto a Rows x Cols matrix. When several
// entities share a cell the highest priority wins:
// player, monster, trap, wall, start, goal.
func (s *State) Grid() Grid {
	g := make(Grid, s.Rows)
	for r := range g {
		g[r] = make([]CellKind, s.Cols)
	}
	put := func(p Position, k CellKind) {
		if s.InBounds(p) {
			g[p.Row][p.Col] = k
		}
	}

	// Lowest priority first; later writes overwrite.
	put(s.Goal, CellGoal)
	put(s.Start, CellStart)
	for _, w := range s.Walls {
		put(w, CellWall)
	}
	for _, t := range s.Traps {
		put(t, CellTrap)
	}
	for _, m := range s.Monsters {
		put(m.Pos, CellMonster)
	}
	put(s.Player, CellPlayer)
	return g
}

// Validate checks the board invariants. A board where a monster has caught
// the player is reported as invalid; callers validate non-terminal states.
func (s *State) Validate() error {
	if s.Rows < 3 || s.Cols < 3 {
		return fmt.Errorf("board %dx%d is too small", s.Rows, s.Cols)
	}
	if s.Start == s.Goal {
		return fmt.Errorf("start and goal share %v", s.Start)
	}
	for _, p := range []Position{s.Start, s.Goal, s.Player} {
		if !s.InBounds(p) {
			return fmt.Errorf("position %v is out of bounds", p)
		}
	}

	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			if r != 0 && r != s.Rows-1 && c != 0 && c != s.Cols-1 {
				continue
			}
			if p := (Position{Row: r, Col: c}); !s.IsWall(p) {
				return fmt.Errorf("border cell %v is not a wall", p)
			}
		}
	}

	if s.wallSet.Size() != len(s.Walls) {
		return fmt.Errorf("duplicate wall positions")
	}
	if s.trapSet.Size() != len(s.Traps) {
		return fmt.Errorf("duplicate trap positions")
	}
	for _, w := range s.Walls {
		if !s.InBounds(w) {
			return fmt.Errorf("wall %v is out of bounds", w)
		}
	}
	for _, t := range s.Traps {
		if !s.InBounds(t) {
			return fmt.Errorf("trap %v is out of bounds", t)
		}
		if s.IsWall(t) {
			return fmt.Errorf("trap %v shares a cell with a wall", t)
		}
	}
	for name, p := range map[string]Position{"start": s.Start, "goal": s.Goal} {
		if s.IsWall(p) || s.IsTrap(p) {
			return fmt.Errorf("%s %v shares a cell with a wall or trap", name, p)
		}
	}

	seen := mapset.New[Position]()
	for _, m := range s.Monsters {
		switch {
		case !s.InBounds(m.Pos):
			return fmt.Errorf("monster %d at %v is out of bounds", m.ID, m.Pos)
		case s.IsWall(m.Pos) || s.IsTrap(m.Pos):
			return fmt.Errorf("monster %d at %v is on a wall or trap", m.ID, m.Pos)
		case seen.Has(m.Pos):
			return fmt.Errorf("monster %d at %v shares a cell with another monster", m.ID, m.Pos)
		case m.Pos == s.Player:
			return fmt.Errorf("monster %d shares the player's cell %v", m.ID, m.Pos)
		}
		seen.Put(m.Pos)
	}

	if s.IsWall(s.Player) || s.IsTrap(s.Player) {
		return fmt.Errorf("player %v is on a wall or trap", s.Player)
	}
	return nil
}

// GoalReachable reports whether the goal can be reached from the start
// through cells that are neither walls nor traps. Monsters move, so they
// are not obstacles.
func (s *State) GoalReachable() bool {
	visited := mapset.New[Position]()
	visited.Put(s.Start)
	queue := []Position{s.Start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == s.Goal {
			return true
		}
		for _, d := range Directions {
			next := cur.Add(d)
			if !s.InBounds(next) || s.IsWall(next) || s.IsTrap(next) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return false
}
