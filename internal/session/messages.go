package session

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Player-facing text shared by the console and TUI front ends.
const (
	MsgControls        = "Use WASD keys to move (W: up, A: left, S: down, D: right)"
	MsgWon             = "Congratulations! You successfully completed the level!"
	MsgLost            = "You were killed by a trap or a monster! Game over."
	MsgContinue        = "Press Enter to continue..."
	MsgAlreadyDone     = "You have already completed this level. Please select a higher level."
	MsgNotNumeric      = "Invalid input. Please enter a numeric value: "
	MsgAllCompleted    = "You have completed every level. Well done!"
	MsgGenerationError = "Could not build this level. Please select another level."
)

// SelectPrompt is the level prompt for a game with numLevels levels.
func SelectPrompt(numLevels int) string {
	return fmt.Sprintf("Select a level (1-%d): ", numLevels)
}

// InvalidLevelPrompt is shown after an out-of-range level.
func InvalidLevelPrompt(numLevels int) string {
	return fmt.Sprintf("Invalid level. Please select a level between 1 and %d: ", numLevels)
}

// ResultMessage returns the banner for a finished attempt, or "" while it is ongoing.
func ResultMessage(status maze.Status) string {
	switch status {
	case maze.StatusWon:
		return MsgWon
	case maze.StatusLost:
		return MsgLost
	default:
		return ""
	}
}

// SelectionMessage explains why a level selection was rejected.
func SelectionMessage(err error, numLevels int) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrLevelAlreadyCompleted):
		return MsgAlreadyDone
	case errors.Is(err, maze.ErrInvalidLevel):
		return InvalidLevelPrompt(numLevels)
	case errors.Is(err, maze.ErrGenerationExhausted):
		return MsgGenerationError
	default:
		return err.Error()
	}
}
