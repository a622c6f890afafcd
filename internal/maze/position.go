// Package maze implements the board model, level generation and turn
// resolution for the maze game. It performs no terminal I/O; every random
// draw comes from a caller-supplied *rand.Rand so a seed fully determines a
// session.
package maze

import (
	"fmt"
	"unicode"
)

// Position is a board coordinate. Row 0 is the top edge.
type Position struct {
	Row, Col int
}

// Add returns the neighbouring position in direction d.
func (p Position) Add(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in the order used for random monster moves.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the row and column offsets of the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a w/a/s/d command to a direction. Case is ignored.
func ParseDirection(r rune) (Direction, bool) {
	switch unicode.ToLower(r) {
	case 'w':
		return DirUp, true
	case 's':
		return DirDown, true
	case 'a':
		return DirLeft, true
	case 'd':
		return DirRight, true
	default:
		return 0, false
	}
}
