package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/session"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	openStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	flashStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LevelSelectModel prompts for a level number until an open level is chosen.
type LevelSelectModel struct {
	sess      *session.Session
	input     textinput.Model
	flash     string
	flashID   int
	selected  int
	width     int
	height    int
	quitting  bool
	wantStats bool
}

// NewLevelSelectModel creates a level prompt for the session.
func NewLevelSelectModel(sess *session.Session, width, height int) LevelSelectModel {
	ti := textinput.New()
	ti.Prompt = session.SelectPrompt(sess.NumLevels())
	ti.Placeholder = strconv.Itoa(min(sess.HighestCompleted()+1, sess.NumLevels()))
	ti.CharLimit = 4
	ti.Width = 6
	ti.Focus()

	return LevelSelectModel{
		sess:   sess,
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init starts the cursor blinking.
func (m LevelSelectModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FlashExpiredMsg:
		if msg.ID == m.flashID {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, nil
		case "tab":
			m.wantStats = true
			return m, nil
		case "enter":
			return m.submit()
		}
		if m.sess.AllCompleted() && msg.String() == "q" {
			m.quitting = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the typed level against the session gate.
func (m LevelSelectModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	level, err := strconv.Atoi(text)
	if err != nil {
		return m.setFlash(session.MsgNotNumeric)
	}
	if _, err := m.sess.SelectLevel(level); err != nil {
		return m.setFlash(session.SelectionMessage(err, m.sess.NumLevels()))
	}

	m.selected = level
	return m, nil
}

func (m LevelSelectModel) setFlash(text string) (tea.Model, tea.Cmd) {
	return m.flashSelection(text)
}

// flashSelection shows a message under the prompt until it expires.
func (m LevelSelectModel) flashSelection(text string) (LevelSelectModel, tea.Cmd) {
	m.flashID++
	m.flash = strings.TrimSuffix(text, ": ")
	return m, flashCmd(m.flashID)
}

// View renders the level prompt.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("M A Z E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.levelStrip(), m.width))
	b.WriteString("\n\n")

	if m.sess.AllCompleted() {
		b.WriteString(centerText(completedStyle.Render(session.MsgAllCompleted), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(hintStyle.Render("Q: Quit"), m.width))
		return b.String()
	}

	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")
	if m.flash != "" {
		b.WriteString(centerText(flashStyle.Render(m.flash), m.width))
	}
	b.WriteString("\n\n")

	hint := "Enter: Play  |  Tab: Stats  |  Esc: Quit"
	b.WriteString(centerText(hintStyle.Render(hint), m.width))
	return b.String()
}

// levelStrip shows every level, marking completed ones.
func (m LevelSelectModel) levelStrip() string {
	parts := make([]string, 0, m.sess.NumLevels())
	for i := 1; i <= m.sess.NumLevels(); i++ {
		if i <= m.sess.HighestCompleted() {
			parts = append(parts, completedStyle.Render(fmt.Sprintf("✓%d", i)))
		} else {
			parts = append(parts, openStyle.Render(fmt.Sprintf(" %d", i)))
		}
	}
	return strings.Join(parts, " ")
}

// Selected returns the chosen level, or 0 while still choosing.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user asked for the statistics screen.
func (m LevelSelectModel) WantsStats() bool {
	return m.wantStats
}
