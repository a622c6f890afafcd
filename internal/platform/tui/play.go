package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/session"
)

// Rows below the board reserved for hints and key help.
const helpRows = 2

// PlayModel runs one level: every key press is one turn.
type PlayModel struct {
	sess      *session.Session
	attempt   *session.Attempt
	keyMapper *KeyMapper
	keys      PlayKeyMap
	help      help.Model
	screen    *core.Screen
	width     int
	height    int
	errMsg    string
	done      bool // result acknowledged
	back      bool // abandoned or returned to level selection
	quitting  bool
}

// NewPlayModel begins an attempt at level.
func NewPlayModel(sess *session.Session, level, width, height int) (PlayModel, error) {
	a, err := sess.Begin(level)
	if err != nil {
		return PlayModel{}, err
	}

	h := help.New()
	h.ShowAll = false
	h.Width = width

	return PlayModel{
		sess:      sess,
		attempt:   a,
		keyMapper: NewKeyMapper(),
		keys:      DefaultPlayKeyMap(),
		help:      h,
		screen:    core.NewScreen(width, max(height-helpRows, 0)),
		width:     width,
		height:    height,
	}, nil
}

// Init initializes the model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, nil
	}
	if key.Matches(msg, m.keys.Back) {
		m.back = true
		return m, nil
	}

	status := m.attempt.Status()
	if status.Terminal() {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.done = true
		case key.Matches(msg, m.keys.Retry) && status == maze.StatusLost:
			a, err := m.sess.Begin(m.attempt.Level)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.attempt = a
			m.errMsg = ""
		}
		return m, nil
	}

	cmd, ok := m.keyMapper.Command(msg)
	if !ok {
		return m, nil
	}
	if _, status := m.attempt.Turn(cmd); status.Terminal() {
		if err := m.sess.Finish(m.attempt); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m, nil
}

// View renders the board, status lines and key help.
func (m PlayModel) View() string {
	if m.quitting || m.attempt == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(flashStyle.Render(m.errMsg))
	}
	if m.attempt.Status() == maze.StatusLost {
		b.WriteString(hintStyle.Render("R: retry this level"))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderBoard draws the frame boxed and centered on the terminal, or
// unboxed when the terminal is too small for the box.
func (m PlayModel) renderBoard() string {
	f := m.attempt.Frame()
	fw, fh := FrameSize(f)

	area := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
	box := area.Centered(fw+4, fh+2)
	if !area.Contains(box.X, box.Y) || !area.Contains(box.Right()-1, box.Bottom()-1) {
		return RenderFrame(f)
	}

	m.screen.Clear()
	m.screen.DrawBox(box)
	DrawFrame(m.screen, f, box.X+2, box.Y+1)
	return RenderScreen(m.screen)
}

// Status returns the status of the current attempt.
func (m PlayModel) Status() maze.Status {
	return m.attempt.Status()
}

// IsDone returns true once the result has been acknowledged.
func (m PlayModel) IsDone() bool {
	return m.done
}

// BackToSelect returns true if user left the level.
func (m PlayModel) BackToSelect() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}
