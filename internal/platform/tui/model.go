// Package tui provides the terminal platform around the episode
// engine: the Bubble Tea play model, the history browser, and the
// Wish SSH server. The world is frozen between keypresses; there is
// no tick loop, every update is driven by one input event.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calderforge/runeward/internal/game"
	"github.com/calderforge/runeward/internal/storage"
	"github.com/calderforge/runeward/internal/view"
)

// Model is the Bubble Tea model for playing one session of Runeward.
type Model struct {
	game     *game.Game
	store    *storage.Store
	keys     KeyMap
	help     help.Model
	started  time.Time
	saved    bool // episode already recorded for current game over
	quitting bool
	width    int
}

// NewModel creates a play model around an existing episode.
// The store may be nil; the session then runs without history.
func NewModel(g *game.Game, store *storage.Store) Model {
	return Model{
		game:    g,
		store:   store,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		started: time.Now(),
	}
}

// Init implements tea.Model. There is nothing to start: the first
// frame renders the freshly generated ruin and waits for input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and advances the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKey routes one keypress: session keys first, then engine
// commands through the keymap.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd, ok := m.keys.CommandFor(msg)
	if !ok {
		return m, nil
	}

	wasOver := m.game.Status().GameOver

	result, err := m.game.Dispatch(cmd)
	if err != nil {
		// Invalid commands and failed regenerations both leave the
		// old episode playable; keep showing the current frame.
		return m, nil
	}

	if result.Outcome == game.OutcomeRestarted {
		m.started = time.Now()
		m.saved = false
		return m, nil
	}

	// Record the episode exactly once, on the transition into a
	// terminal state.
	if result.Status.GameOver && !wasOver && !m.saved {
		m.saveEpisode(result.Status)
		m.saved = true
	}

	return m, nil
}

// saveEpisode writes the finished episode to history, best effort.
func (m *Model) saveEpisode(st game.Status) {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveEpisode(storage.Episode{
		Seed:           m.game.Seed(),
		Victory:        st.Victory,
		Moves:          st.Moves,
		RunesCollected: st.RunesCollected,
		Duration:       int(time.Since(m.started).Seconds()),
	})
}

// View renders the current frame: the ruin, the HUD, and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := RenderScreen(view.Render(m.game.Snapshot()))
	return frame + "\n" + m.help.View(m.keys)
}

// Run starts a Bubble Tea program around one episode and blocks until
// the player quits.
func Run(g *game.Game, store *storage.Store) error {
	p := tea.NewProgram(
		NewModel(g, store),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
