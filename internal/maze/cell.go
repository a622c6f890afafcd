package maze

import "github.com/vovakirdan/tui-maze/internal/core"

// CellKind is what a grid cell displays.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellWall
	CellTrap
	CellMonster
	CellPlayer
	CellStart
	CellGoal
)

// Rune returns the character used for the cell on screen.
func (k CellKind) Rune() rune {
	switch k {
	case CellWall:
		return '#'
	case CellTrap:
		return 'T'
	case CellMonster:
		return 'M'
	case CellPlayer:
		return 'P'
	case CellStart:
		return 'S'
	case CellGoal:
		return 'G'
	default:
		return ' '
	}
}

// Color returns the display color for the cell.
func (k CellKind) Color() core.Color {
	switch k {
	case CellWall:
		return core.ColorGray
	case CellTrap:
		return core.ColorYellow
	case CellMonster:
		return core.ColorBrightRed
	case CellPlayer:
		return core.ColorBrightGreen
	case CellStart:
		return core.ColorCyan
	case CellGoal:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellTrap:
		return "trap"
	case CellMonster:
		return "monster"
	case CellPlayer:
		return "player"
	case CellStart:
		return "start"
	case CellGoal:
		return "goal"
	default:
		return "unknown"
	}
}
