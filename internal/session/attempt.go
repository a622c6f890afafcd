package session

import "github.com/vovakirdan/tui-maze/internal/maze"

// Attempt is a single play of one level, from generation to win or loss.
type Attempt struct {
	ID    string
	Level int

	engine   *maze.Engine
	finished bool
}

// Turn plays one command: w/a/s/d move, anything else only lets the
// monsters move.
func (a *Attempt) Turn(cmd rune) (maze.Outcome, maze.Status) {
	return a.engine.TurnCommand(cmd)
}

// Status returns the attempt status.
func (a *Attempt) Status() maze.Status {
	return a.engine.Evaluate()
}

// Turns returns the number of turns played.
func (a *Attempt) Turns() int {
	return a.engine.Turns()
}

// Grid returns the current board projection.
func (a *Attempt) Grid() maze.Grid {
	return a.engine.Grid()
}

// Snapshot returns the engine snapshot.
func (a *Attempt) Snapshot() maze.Snapshot {
	return a.engine.Snapshot()
}

// Frame captures what a renderer needs to draw the attempt.
func (a *Attempt) Frame() Frame {
	return Frame{
		Level:   a.Level,
		Turn:    a.engine.Turns(),
		Grid:    a.engine.Grid(),
		Status:  a.engine.Evaluate(),
		Outcome: a.engine.LastOutcome(),
	}
}
