package maze

import "math/rand"

// Outcome is the result of a single player move.
type Outcome int

const (
	OutcomeNone Outcome = iota // no move made yet
	OutcomeBlocked
	OutcomeMoved
	OutcomeTrapped
	OutcomeCaughtByMonster
	OutcomeReachedGoal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMoved:
		return "moved"
	case OutcomeTrapped:
		return "trapped"
	case OutcomeCaughtByMonster:
		return "caught"
	case OutcomeReachedGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Status is the state of an attempt.
type Status int

const (
	StatusOngoing Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the attempt is over.
func (s Status) Terminal() bool {
	return s != StatusOngoing
}

// Rules holds optional rule variations.
type Rules struct {
	// MonsterCatchesPlayer lets a monster step onto the player, ending the
	// attempt. When false a monster treats the player's cell as blocked.
	MonsterCatchesPlayer bool
}

// Engine resolves turns for one attempt. It owns its State exclusively.
type Engine struct {
	state  *State
	rng    *rand.Rand
	rules  Rules
	status Status
	last   Outcome
	turns  int
}

// NewEngine wraps a generated state. rng drives monster movement and should
// be the same source the state was generated from.
func NewEngine(state *State, rng *rand.Rand, rules Rules) *Engine {
	return &Engine{
		state: state,
		rng:   rng,
		rules: rules,
	}
}

// MovePlayer attempts to move the player one cell.
func (e *Engine) MovePlayer(d Direction) Outcome {
	if e.status.Terminal() {
		return OutcomeBlocked
	}

	s := e.state
	target := s.Player.Add(d)

	switch {
	case !s.InBounds(target), s.IsWall(target):
		e.last = OutcomeBlocked
	case s.IsTrap(target):
		e.last = OutcomeTrapped
		e.status = StatusLost
	case s.MonsterAt(target) >= 0:
		e.last = OutcomeCaughtByMonster
		e.status = StatusLost
	case target == s.Goal:
		s.Player = target
		e.last = OutcomeReachedGoal
		e.status = StatusWon
	default:
		s.Player = target
		e.last = OutcomeMoved
	}
	return e.last
}

// MoveCommand moves the player for a w/a/s/d command. Any other rune is a
// blocked move that changes nothing.
func (e *Engine) MoveCommand(r rune) Outcome {
	d, ok := ParseDirection(r)
	if !ok {
		if !e.status.Terminal() {
			e.last = OutcomeBlocked
		}
		return OutcomeBlocked
	}
	return e.MovePlayer(d)
}

// MoveMonsters gives every monster, in ID order, one random step. A monster
// stays put when its step would leave the board or land on a wall, a trap,
// another monster or the player. Moves apply immediately, so a cell vacated
// earlier in the pass is free for later monsters.
func (e *Engine) MoveMonsters() {
	if e.status.Terminal() {
		return
	}

	s := e.state
	for i := range s.Monsters {
		m := &s.Monsters[i]
		target := m.Pos.Add(Directions[e.rng.Intn(len(Directions))])

		if !s.InBounds(target) || s.IsWall(target) || s.IsTrap(target) {
			continue
		}
		if j := s.MonsterAt(target); j >= 0 && j != i {
			continue
		}
		if target == s.Player {
			if !e.rules.MonsterCatchesPlayer {
				continue
			}
			m.Pos = target
			e.last = OutcomeCaughtByMonster
			e.status = StatusLost
			return
		}
		m.Pos = target
	}
}

// Evaluate returns the current status of the attempt.
func (e *Engine) Evaluate() Status {
	return e.status
}

// Turn plays one full turn: the player moves, then the monsters move unless
// the player's move ended the attempt.
func (e *Engine) Turn(d Direction) (Outcome, Status) {
	if e.status.Terminal() {
		return OutcomeBlocked, e.status
	}
	out := e.MovePlayer(d)
	return e.finishTurn(out)
}

// TurnCommand is Turn for a raw command rune. Unrecognized commands still
// let the monsters move.
func (e *Engine) TurnCommand(r rune) (Outcome, Status) {
	if e.status.Terminal() {
		return OutcomeBlocked, e.status
	}
	out := e.MoveCommand(r)
	return e.finishTurn(out)
}

func (e *Engine) finishTurn(out Outcome) (Outcome, Status) {
	if !e.status.Terminal() {
		e.MoveMonsters()
	}
	e.turns++
	// A monster catch rewrites the outcome of the turn.
	if e.last == OutcomeCaughtByMonster {
		out = e.last
	}
	return out, e.status
}

// LastOutcome returns the outcome of the most recent move.
func (e *Engine) LastOutcome() Outcome {
	return e.last
}

// Turns returns the number of completed turns.
func (e *Engine) Turns() int {
	return e.turns
}

// Grid returns a fresh projection of the board.
func (e *Engine) Grid() Grid {
	return e.state.Grid()
}

// State returns a copy of the board.
func (e *Engine) State() *State {
	return e.state.Clone()
}
