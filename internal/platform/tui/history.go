package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calderforge/runeward/internal/storage"
)

const maxHistoryRows = 100

// historyTab selects which slice of the history the table shows.
type historyTab int

const (
	tabRecent historyTab = iota
	tabBest
)

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing finished episodes.
type HistoryModel struct {
	store    *storage.Store
	tab      historyTab
	episodes []storage.Episode
	stats    storage.Stats
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
	loadErr  error
}

// NewHistoryModel creates a history browser over the given store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates the episode table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Runes", Width: 6},
		{Title: "Seed", Width: 20},
		{Title: "Played", Width: 14},
	}

	height := m.height - 8 // header, stats, help, margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes the episode list and stats for the current tab.
func (m *HistoryModel) load() {
	if m.store == nil {
		m.episodes = nil
		m.updateRows()
		return
	}

	var err error
	switch m.tab {
	case tabBest:
		m.episodes, err = m.store.BestVictories(maxHistoryRows)
	default:
		m.episodes, err = m.store.RecentEpisodes(maxHistoryRows)
	}
	if err != nil {
		m.loadErr = err
		m.episodes = nil
	}

	if stats, statErr := m.store.Stats(); statErr == nil {
		m.stats = stats
	}
	m.updateRows()
}

// updateRows rebuilds the table rows from the loaded episodes.
func (m *HistoryModel) updateRows() {
	rows := make([]table.Row, len(m.episodes))
	for i, e := range m.episodes {
		result := "defeat"
		if e.Victory {
			result = "victory"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			result,
			fmt.Sprintf("%d", e.Moves),
			fmt.Sprintf("%d", e.RunesCollected),
			fmt.Sprintf("%d", e.Seed),
			e.PlayedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.tab == tabRecent {
				m.tab = tabBest
			} else {
				m.tab = tabRecent
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "EPISODE HISTORY - RECENT"
	if m.tab == tabBest {
		title = "EPISODE HISTORY - BEST VICTORIES"
	}

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stats := fmt.Sprintf("played %d · won %d", m.stats.Played, m.stats.Won)
	if m.stats.BestMoves > 0 {
		stats += fmt.Sprintf(" · best %d moves", m.stats.BestMoves)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	body := m.table.View()
	if len(m.episodes) == 0 {
		body = statsStyle.Render("no episodes recorded yet — go walk the ruin")
	}

	return titleStyle.Render(title) + "\n" +
		statsStyle.Render(stats) + "\n\n" +
		body + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// RunHistory starts the interactive history browser.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
