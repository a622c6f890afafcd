package console

import (
	"io"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/session"
)

const clearScreen = "\x1b[H\x1b[2J"

// Renderer redraws the whole frame on every call.
type Renderer struct {
	w     io.Writer
	clear bool
	raw   bool
}

// NewRenderer writes frames to w. clear emits an ANSI clear before each
// frame; raw terminates lines with CRLF for terminals in raw mode.
func NewRenderer(w io.Writer, clear, raw bool) *Renderer {
	return &Renderer{w: w, clear: clear, raw: raw}
}

// SetRaw changes the line ending mode.
func (r *Renderer) SetRaw(raw bool) {
	r.raw = raw
}

// Render writes f.
func (r *Renderer) Render(f session.Frame) error {
	var sb strings.Builder
	if r.clear {
		sb.WriteString(clearScreen)
	}
	sb.WriteString(tui.RenderFrame(f))
	sb.WriteString("\n")

	out := sb.String()
	if r.raw {
		out = strings.ReplaceAll(out, "\n", "\r\n")
	}
	_, err := io.WriteString(r.w, out)
	return err
}
