package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevel is returned for a level outside 1..NumLevels.
	ErrInvalidLevel = errors.New("invalid level")

	// ErrGenerationExhausted is returned when a layout cannot be placed
	// within the draw budget.
	ErrGenerationExhausted = errors.New("level generation exhausted")
)

// GenerationError describes which placement ran out of room.
type GenerationError struct {
	Kind   CellKind // entity being placed, or CellGoal for an unreachable goal
	Placed int
	Wanted int
}

func (e *GenerationError) Error() string {
	if e.Kind == CellGoal {
		return fmt.Sprintf("%v: goal unreachable after %d layouts", ErrGenerationExhausted, e.Placed)
	}
	return fmt.Sprintf("%v: placed %d of %d %ss", ErrGenerationExhausted, e.Placed, e.Wanted, e.Kind)
}

// Unwrap lets errors.Is match ErrGenerationExhausted.
func (e *GenerationError) Unwrap() error {
	return ErrGenerationExhausted
}
