package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/session"
)

type screen int

const (
	screenSelect screen = iota
	screenPlay
	screenStats
)

// AppModel manages the full flow: level selection -> play -> selection.
// It is the top-level model for both local play and SSH sessions.
type AppModel struct {
	sess     *session.Session
	config   core.RuntimeConfig
	screen   screen
	sel      LevelSelectModel
	play     PlayModel
	stat     StatsModel
	pending  tea.Cmd // flash expiry scheduled before Init
	quitting bool
}

// NewAppModel creates the app. A positive startLevel skips the prompt for
// the first attempt.
func NewAppModel(sess *session.Session, cfg core.RuntimeConfig, startLevel int) AppModel {
	m := AppModel{
		sess:   sess,
		config: cfg,
	}
	m.sel = NewLevelSelectModel(sess, cfg.ScreenW, cfg.ScreenH)

	if startLevel > 0 {
		play, err := NewPlayModel(sess, startLevel, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			m.sel, m.pending = m.sel.flashSelection(session.SelectionMessage(err, sess.NumLevels()))
		} else {
			m.play = play
			m.screen = screenPlay
		}
	}
	return m
}

// Init initializes the current screen.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenSelect {
		return tea.Batch(m.sel.Init(), m.pending)
	}
	return nil
}

// Update routes messages to the active screen and switches screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenStats:
		return m.updateStats(msg)
	default:
		return m.updateSelect(msg)
	}
}

// updateSelect handles updates when in the level prompt.
func (m AppModel) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSel, cmd := m.sel.Update(msg)
	if sel, ok := newSel.(LevelSelectModel); ok {
		m.sel = sel
	}

	if m.sel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.sel.WantsStats() {
		m.stat = NewStatsModel(m.sess, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenStats
		return m, nil
	}

	if level := m.sel.Selected(); level > 0 {
		play, err := NewPlayModel(m.sess, level, m.config.ScreenW, m.config.ScreenH)
		if err != nil {
			m.sel = NewLevelSelectModel(m.sess, m.config.ScreenW, m.config.ScreenH)
			return m.flash(session.SelectionMessage(err, m.sess.NumLevels()))
		}
		m.play = play
		m.screen = screenPlay
		return m, nil
	}

	return m, cmd
}

// updatePlay handles updates when a level is running.
func (m AppModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPlay, cmd := m.play.Update(msg)
	if play, ok := newPlay.(PlayModel); ok {
		m.play = play
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.play.IsDone() || m.play.BackToSelect() {
		return m.toSelect()
	}

	return m, cmd
}

// updateStats handles updates when the statistics table is shown.
func (m AppModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newStats, cmd := m.stat.Update(msg)
	if st, ok := newStats.(StatsModel); ok {
		m.stat = st
	}

	if m.stat.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.stat.IsGoingBack() {
		return m.toSelect()
	}
	return m, cmd
}

// toSelect resets the level prompt so it reflects the latest progress.
func (m AppModel) toSelect() (tea.Model, tea.Cmd) {
	m.sel = NewLevelSelectModel(m.sess, m.config.ScreenW, m.config.ScreenH)
	m.screen = screenSelect
	return m, m.sel.Init()
}

func (m AppModel) flash(text string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.sel, cmd = m.sel.flashSelection(text)
	m.screen = screenSelect
	return m, tea.Batch(m.sel.Init(), cmd)
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenStats:
		return m.stat.View()
	default:
		return m.sel.View()
	}
}

// Run starts a local Bubble Tea program for the session.
func Run(sess *session.Session, cfg core.RuntimeConfig, startLevel int) error {
	model := NewAppModel(sess, cfg, startLevel)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
