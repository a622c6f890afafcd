package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/session"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Frame layout: header, blank, grid, blank, message, continue prompt.
const (
	frameHeaderRows = 2
	frameFooterRows = 3
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// frameLines returns the header and message lines drawn around the grid.
func frameLines(f session.Frame) (header, message, prompt string, msgColor core.Color) {
	header = fmt.Sprintf("Level %d  Turn %d", f.Level, f.Turn)
	switch f.Status {
	case maze.StatusWon:
		return header, session.MsgWon, session.MsgContinue, core.ColorBrightGreen
	case maze.StatusLost:
		return header, session.MsgLost, session.MsgContinue, core.ColorBrightRed
	default:
		return header, session.MsgControls, "", core.ColorGray
	}
}

// FrameSize returns the screen size needed to draw f.
func FrameSize(f session.Frame) (w, h int) {
	header, message, prompt, _ := frameLines(f)
	w = f.Grid.Cols() * 2
	for _, line := range []string{header, message, prompt} {
		w = core.Max(w, len([]rune(line)))
	}
	return w, frameHeaderRows + f.Grid.Rows() + frameFooterRows
}

// DrawFrame paints a frame onto the screen with its top-left corner at (x, y).
func DrawFrame(s *core.Screen, f session.Frame, x, y int) {
	header, message, prompt, msgColor := frameLines(f)

	s.DrawTextColored(x, y, header, core.ColorCyan)
	f.Grid.Draw(s, x, y+frameHeaderRows)

	below := y + frameHeaderRows + f.Grid.Rows() + 1
	s.DrawTextColored(x, below, message, msgColor)
	if prompt != "" {
		s.DrawText(x, below+1, prompt)
	}
}

// RenderFrame draws a frame onto a fitted screen and styles it.
func RenderFrame(f session.Frame) string {
	w, h := FrameSize(f)
	s := core.NewScreen(w, h)
	DrawFrame(s, f, 0, 0)
	return RenderScreen(s)
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
