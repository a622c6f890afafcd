// Package session runs a player's sequence of level attempts: it gates
// level selection on progress, owns the random source shared by generation
// and monster movement, and records finished attempts.
package session

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// ErrLevelAlreadyCompleted is returned when selecting a level at or below
// the highest completed one.
var ErrLevelAlreadyCompleted = errors.New("level already completed")

// SelectLevel validates a requested level against the progress gate.
// Levels run 1..numLevels and only levels above highestCompleted are open.
func SelectLevel(requested, highestCompleted, numLevels int) (int, error) {
	if requested < 1 || requested > numLevels {
		return 0, fmt.Errorf("%w: %d (want 1-%d)", maze.ErrInvalidLevel, requested, numLevels)
	}
	if requested <= highestCompleted {
		return 0, fmt.Errorf("%w: %d (highest completed is %d)", ErrLevelAlreadyCompleted, requested, highestCompleted)
	}
	return requested, nil
}
