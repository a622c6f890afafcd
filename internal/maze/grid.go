package maze

import (
	"strings"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Grid is a rows x cols projection of a State. It is recomputed on demand
// and never mutated by the engine.
type Grid [][]CellKind

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the cell at p, or CellEmpty when p is off the grid.
func (g Grid) At(p Position) CellKind {
	if p.Row < 0 || p.Row >= g.Rows() || p.Col < 0 || p.Col >= g.Cols() {
		return CellEmpty
	}
	return g[p.Row][p.Col]
}

// Count returns how many cells display kind k.
func (g Grid) Count(k CellKind) int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c == k {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line, each cell followed by a space.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.Rune())
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Draw paints the grid onto a screen with its top-left corner at (x, y).
// Each cell takes two columns, matching String.
func (g Grid) Draw(s *core.Screen, x, y int) {
	for r, row := range g {
		for c, k := range row {
			s.SetColored(x+c*2, y+r, k.Rune(), k.Color())
		}
	}
}
