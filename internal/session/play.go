package session

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Frame is one rendered view of an attempt.
type Frame struct {
	Level   int
	Turn    int
	Grid    maze.Grid
	Status  maze.Status
	Outcome maze.Outcome
}

// InputSource supplies one command per call, blocking until it has one.
type InputSource interface {
	Next() (rune, error)
}

// Renderer draws frames.
type Renderer interface {
	Render(f Frame) error
}

// PlayLevel runs a whole attempt: render, read a command, play the turn,
// until the attempt is won or lost. The final board is rendered before
// the attempt is finished. An input error abandons the attempt.
func (s *Session) PlayLevel(level int, in InputSource, r Renderer) (maze.Status, error) {
	a, err := s.Begin(level)
	if err != nil {
		return maze.StatusOngoing, err
	}

	if err := r.Render(a.Frame()); err != nil {
		return maze.StatusOngoing, fmt.Errorf("session: render: %w", err)
	}

	for !a.Status().Terminal() {
		cmd, err := in.Next()
		if err != nil {
			s.logger.Info("level abandoned", "level", level, "attempt", a.ID, "err", err)
			return maze.StatusOngoing, fmt.Errorf("session: reading input: %w", err)
		}
		a.Turn(cmd)
		if err := r.Render(a.Frame()); err != nil {
			err = fmt.Errorf("session: render: %w", err)
			if a.Status().Terminal() {
				err = errors.Join(err, s.Finish(a))
			}
			return a.Status(), err
		}
	}

	status := a.Status()
	if err := s.Finish(a); err != nil {
		return status, err
	}
	return status, nil
}
