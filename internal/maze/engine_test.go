package maze

import (
	"math/rand"
	"testing"
)

// newTestState builds a 5x6 bordered board with start (1,1) and goal (3,4).
func newTestState(walls, traps, monsters []Position) *State {
	const rows, cols = 5, 6
	var all []Position
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				all = append(all, Position{r, c})
			}
		}
	}
	all = append(all, walls...)

	ms := make([]Monster, len(monsters))
	for i, p := range monsters {
		ms[i] = Monster{ID: i + 1, Pos: p}
	}

	start := Position{1, 1}
	return NewState(1, rows, cols, start, Position{3, 4}, all, traps, ms, start)
}

func newTestEngine(s *State, seed int64) *Engine {
	return NewEngine(s, rand.New(rand.NewSource(seed)), Rules{})
}

// scriptedSource makes rand.Intn(4) return the given values in turn.
type scriptedSource struct {
	draws []int64
	next  int
}

func (s *scriptedSource) Int63() int64 {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v << 32
}

func (s *scriptedSource) Seed(int64) {}

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name       string
		walls      []Position
		traps      []Position
		monsters   []Position
		from       Position
		dir        Direction
		want       Outcome
		wantStatus Status
		wantPos    Position
	}{
		{"into border", nil, nil, nil, Position{1, 1}, DirUp, OutcomeBlocked, StatusOngoing, Position{1, 1}},
		{"into wall", []Position{{1, 2}}, nil, nil, Position{1, 1}, DirRight, OutcomeBlocked, StatusOngoing, Position{1, 1}},
		{"open cell", nil, nil, nil, Position{1, 1}, DirRight, OutcomeMoved, StatusOngoing, Position{1, 2}},
		{"onto trap", nil, []Position{{1, 2}}, nil, Position{1, 1}, DirRight, OutcomeTrapped, StatusLost, Position{1, 1}},
		{"onto monster", nil, nil, []Position{{2, 1}}, Position{1, 1}, DirDown, OutcomeCaughtByMonster, StatusLost, Position{1, 1}},
		{"onto goal", nil, nil, nil, Position{3, 3}, DirRight, OutcomeReachedGoal, StatusWon, Position{3, 4}},
		{"onto start", nil, nil, nil, Position{1, 2}, DirLeft, OutcomeMoved, StatusOngoing, Position{1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(tc.walls, tc.traps, tc.monsters)
			s.Player = tc.from
			e := newTestEngine(s, 1)

			got := e.MovePlayer(tc.dir)
			if got != tc.want {
				t.Errorf("MovePlayer(%v) = %v, expected %v", tc.dir, got, tc.want)
			}
			if e.Evaluate() != tc.wantStatus {
				t.Errorf("Evaluate() = %v, expected %v", e.Evaluate(), tc.wantStatus)
			}
			if p := e.State().Player; p != tc.wantPos {
				t.Errorf("player at %v, expected %v", p, tc.wantPos)
			}
		})
	}
}

func TestMoveCommand(t *testing.T) {
	e := newTestEngine(newTestState(nil, nil, nil), 1)

	if got := e.MoveCommand('x'); got != OutcomeBlocked {
		t.Errorf("MoveCommand('x') = %v, expected blocked", got)
	}
	if p := e.State().Player; p != (Position{1, 1}) {
		t.Errorf("unknown command moved player to %v", p)
	}

	if got := e.MoveCommand('D'); got != OutcomeMoved {
		t.Errorf("MoveCommand('D') = %v, expected moved", got)
	}
	if p := e.State().Player; p != (Position{1, 2}) {
		t.Errorf("player at %v, expected (1,2)", p)
	}
}

func TestTerminalEngineIsInert(t *testing.T) {
	s := newTestState(nil, []Position{{1, 2}}, []Position{{3, 2}})
	e := newTestEngine(s, 5)

	if out, status := e.Turn(DirRight); out != OutcomeTrapped || status != StatusLost {
		t.Fatalf("Turn = (%v, %v), expected (trapped, lost)", out, status)
	}
	before := e.Snapshot()

	if got := e.MovePlayer(DirDown); got != OutcomeBlocked {
		t.Errorf("MovePlayer on lost attempt = %v, expected blocked", got)
	}
	e.MoveMonsters()
	if out, status := e.Turn(DirDown); out != OutcomeBlocked || status != StatusLost {
		t.Errorf("Turn on lost attempt = (%v, %v)", out, status)
	}

	if after := e.Snapshot(); !after.Equal(before) {
		t.Errorf("terminal engine changed: %+v -> %+v", before, after)
	}
}

func TestMonstersSkipTurnWhenPlayerLoses(t *testing.T) {
	s := newTestState(nil, []Position{{1, 2}}, []Position{{2, 3}})
	e := newTestEngine(s, 11)

	e.Turn(DirRight)
	if m := e.State().Monsters[0].Pos; m != (Position{2, 3}) {
		t.Errorf("monster moved to %v after a losing player move", m)
	}
}

func TestMonsterConfinedByWallsAndTraps(t *testing.T) {
	walls := []Position{{1, 2}, {3, 2}, {2, 3}}
	traps := []Position{{2, 1}}
	e := newTestEngine(newTestState(walls, traps, []Position{{2, 2}}), 7)

	for i := 0; i < 50; i++ {
		e.MoveMonsters()
	}
	if m := e.State().Monsters[0].Pos; m != (Position{2, 2}) {
		t.Errorf("boxed monster escaped to %v", m)
	}
}

func TestMonstersBlockEachOther(t *testing.T) {
	walls := []Position{{1, 2}, {1, 3}, {3, 2}, {3, 3}}
	traps := []Position{{2, 1}, {2, 4}}
	s := newTestState(walls, traps, []Position{{2, 2}, {2, 3}})
	e := newTestEngine(s, 13)

	for i := 0; i < 50; i++ {
		e.MoveMonsters()
		if err := e.State().Validate(); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	got := e.State().Monsters
	if got[0].Pos != (Position{2, 2}) || got[1].Pos != (Position{2, 3}) {
		t.Errorf("monsters moved to %v and %v", got[0].Pos, got[1].Pos)
	}
}

// corridorMonsters puts monster 1 at (2,3) and monster 2 at (2,2) in a
// one-row corridor. Monster 1 can only step right to (2,4); monster 2 can
// only step right, into the cell monster 1 holds.
func corridorMonsters() *State {
	walls := []Position{{1, 2}, {1, 3}, {1, 4}, {3, 1}, {3, 2}, {3, 3}}
	traps := []Position{{2, 1}}
	return newTestState(walls, traps, []Position{{2, 3}, {2, 2}})
}

func TestMonstersMoveInOrder(t *testing.T) {
	up, left, right := int64(0), int64(2), int64(3)

	tests := []struct {
		name   string
		draws  []int64
		first  Position
		second Position
	}{
		{"vacated cell is refilled", []int64{right, right}, Position{2, 4}, Position{2, 3}},
		{"held cell blocks", []int64{up, right}, Position{2, 3}, Position{2, 2}},
		{"trap blocks", []int64{right, left}, Position{2, 4}, Position{2, 2}},
		{"monsters block each other", []int64{left, right}, Position{2, 3}, Position{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(&scriptedSource{draws: tt.draws})
			e := NewEngine(corridorMonsters(), rng, Rules{})
			e.MoveMonsters()

			got := e.State().Monsters
			if got[0].Pos != tt.first || got[1].Pos != tt.second {
				t.Errorf("monsters at %v and %v, expected %v and %v",
					got[0].Pos, got[1].Pos, tt.first, tt.second)
			}
		})
	}
}

func TestMonstersNeverShareCell(t *testing.T) {
	refilled := 0
	for seed := int64(1); seed <= 400; seed++ {
		e := newTestEngine(corridorMonsters(), seed)
		e.MoveMonsters()

		got := e.State().Monsters
		if got[0].Pos == got[1].Pos {
			t.Fatalf("seed %d: both monsters at %v", seed, got[0].Pos)
		}
		if err := e.State().Validate(); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if got[0].Pos == (Position{2, 4}) && got[1].Pos == (Position{2, 3}) {
			refilled++
		}
	}
	if refilled == 0 {
		t.Error("monster 2 never stepped into the cell monster 1 left")
	}
}

func TestMonsterNeverStepsOntoPlayer(t *testing.T) {
	// The monster's only open neighbour is the player at (1,1).
	walls := []Position{{2, 2}, {1, 3}}
	e := newTestEngine(newTestState(walls, nil, []Position{{1, 2}}), 17)

	for i := 0; i < 50; i++ {
		e.MoveMonsters()
	}
	if m := e.State().Monsters[0].Pos; m != (Position{1, 2}) {
		t.Errorf("monster moved to %v", m)
	}
	if e.Evaluate() != StatusOngoing {
		t.Errorf("Evaluate() = %v, expected ongoing", e.Evaluate())
	}
}

func TestMonsterCatchesPlayerRule(t *testing.T) {
	walls := []Position{{2, 2}, {1, 3}}
	s := newTestState(walls, nil, []Position{{1, 2}})
	e := NewEngine(s, rand.New(rand.NewSource(17)), Rules{MonsterCatchesPlayer: true})

	for i := 0; i < 200 && e.Evaluate() == StatusOngoing; i++ {
		e.MoveMonsters()
	}
	if e.Evaluate() != StatusLost {
		t.Fatalf("Evaluate() = %v, expected lost", e.Evaluate())
	}
	if e.LastOutcome() != OutcomeCaughtByMonster {
		t.Errorf("LastOutcome() = %v, expected caught", e.LastOutcome())
	}
	if m := e.State().Monsters[0].Pos; m != (Position{1, 1}) {
		t.Errorf("monster at %v, expected on the player", m)
	}
}

func TestUnknownCommandStillMovesMonsters(t *testing.T) {
	a := newTestEngine(newTestState(nil, nil, []Position{{2, 3}}), 21)
	b := newTestEngine(newTestState(nil, nil, []Position{{2, 3}}), 21)

	out, status := a.TurnCommand('?')
	if out != OutcomeBlocked || status != StatusOngoing {
		t.Fatalf("TurnCommand('?') = (%v, %v)", out, status)
	}
	b.MoveMonsters()

	if a.State().Monsters[0].Pos != b.State().Monsters[0].Pos {
		t.Errorf("monster at %v, expected %v", a.State().Monsters[0].Pos, b.State().Monsters[0].Pos)
	}
	if a.Turns() != 1 {
		t.Errorf("Turns() = %d, expected 1", a.Turns())
	}
}

func TestStateReturnsCopy(t *testing.T) {
	e := newTestEngine(newTestState(nil, nil, []Position{{2, 3}}), 1)

	cp := e.State()
	cp.Player = Position{3, 3}
	cp.Monsters[0].Pos = Position{3, 1}

	if e.State().Player != (Position{1, 1}) {
		t.Error("mutating the copy moved the player")
	}
	if e.State().Monsters[0].Pos != (Position{2, 3}) {
		t.Error("mutating the copy moved the monster")
	}
}

func TestGridPriority(t *testing.T) {
	s := newTestState(nil, nil, []Position{{3, 4}})
	g := s.Grid()

	if g.At(s.Start) != CellPlayer {
		t.Errorf("start shows %v, expected player", g.At(s.Start))
	}
	if g.At(s.Goal) != CellMonster {
		t.Errorf("goal shows %v, expected monster", g.At(s.Goal))
	}

	s.Monsters = nil
	s.Player = Position{1, 2}
	g = s.Grid()
	if g.At(s.Start) != CellStart {
		t.Errorf("vacated start shows %v, expected start", g.At(s.Start))
	}
	if g.At(s.Goal) != CellGoal {
		t.Errorf("goal shows %v, expected goal", g.At(s.Goal))
	}

	want := "# # # # # # \n# S P     # \n#         # \n#       G # \n# # # # # # "
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	commands := []rune{'w', 'a', 's', 'd', 'x'}

	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s, err := gen.Generate(10, rng)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		e := NewEngine(s, rng, Rules{})
		input := rand.New(rand.NewSource(seed * 31))

		for turn := 0; turn < 500 && e.Evaluate() == StatusOngoing; turn++ {
			e.TurnCommand(commands[input.Intn(len(commands))])
			if err := e.State().Validate(); err != nil {
				t.Fatalf("seed %d turn %d: %v\n%s", seed, turn, err, e.Grid())
			}
			g := e.Grid()
			if g.Count(CellPlayer) != 1 {
				t.Fatalf("seed %d turn %d: %d players on grid", seed, turn, g.Count(CellPlayer))
			}
		}
	}
}

func TestEngineDeterminism(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	commands := []rune("ddddssssaawwdsdsdsdsdsddddddssss")

	run := func() (Snapshot, string) {
		rng := rand.New(rand.NewSource(4242))
		s, err := gen.Generate(5, rng)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		e := NewEngine(s, rng, Rules{})
		for _, c := range commands {
			e.TurnCommand(c)
		}
		return e.Snapshot(), e.Grid().String()
	}

	snap1, grid1 := run()
	snap2, grid2 := run()
	if !snap1.Equal(snap2) {
		t.Errorf("snapshot mismatch: %+v vs %+v", snap1, snap2)
	}
	if grid1 != grid2 {
		t.Errorf("grid mismatch:\n%s\nvs\n%s", grid1, grid2)
	}
}
