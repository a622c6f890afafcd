package maze

import "fmt"

// Params holds the board and difficulty settings shared by every level.
type Params struct {
	Rows          int
	Cols          int
	NumLevels     int
	WallsPerLevel int
	MaxTraps      int
	MaxMonsters   int

	// MaxDrawsPerItem bounds random draws: a quota of n gets n*MaxDrawsPerItem tries.
	MaxDrawsPerItem int
	// RequirePath discards layouts whose goal cannot be reached from the start.
	RequirePath bool
	// MaxLayouts caps how many layouts RequirePath may discard.
	MaxLayouts int
}

// DefaultParams returns the classic 12x22 board with ten levels.
func DefaultParams() Params {
	return Params{
		Rows:            12,
		Cols:            22,
		NumLevels:       10,
		WallsPerLevel:   2,
		MaxTraps:        15,
		MaxMonsters:     3,
		MaxDrawsPerItem: 1000,
		RequirePath:     true,
		MaxLayouts:      100,
	}
}

// Level is the entity budget for one level index.
type Level struct {
	Index    int
	Walls    int // interior walls, border excluded
	Traps    int
	Monsters int
}

// Level returns the budget for the 1-based level index.
func (p Params) Level(index int) (Level, error) {
	if index < 1 || index > p.NumLevels {
		return Level{}, fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidLevel, index, p.NumLevels)
	}
	return Level{
		Index:    index,
		Walls:    p.WallsPerLevel * index,
		Traps:    min(index, p.MaxTraps),
		Monsters: min(index, p.MaxMonsters),
	}, nil
}

// Start is the fixed start cell.
func (p Params) Start() Position {
	return Position{Row: 1, Col: 1}
}

// Goal is the fixed goal cell in the opposite interior corner.
func (p Params) Goal() Position {
	return Position{Row: p.Rows - 2, Col: p.Cols - 2}
}
