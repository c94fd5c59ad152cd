package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pkamenev/firetower/internal/storage"
)

// History layout constants
const (
	maxMatches = 100 // Max matches to load
)

// historyTab selects between the two history views.
type historyTab int

const (
	tabMatches historyTab = iota
	tabStandings
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the match-history screen.
type HistoryModel struct {
	store     *storage.Store
	tab       historyTab
	matches   []storage.MatchRecord
	standings []storage.PlayerRecord
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.loadData()
	m.table = m.createTable()
	m.updateTableRows()

	return m
}

// loadData pulls both views from storage.
func (m *HistoryModel) loadData() {
	if m.store == nil {
		return
	}
	if matches, err := m.store.RecentMatches(maxMatches); err == nil {
		m.matches = matches
	}
	if standings, err := m.store.Standings(); err == nil {
		m.standings = standings
	}
}

// createTable creates a table with columns for the current tab.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.tab == tabMatches {
		columns = []table.Column{
			{Title: "Winner", Width: 16},
			{Title: "Players", Width: 8},
			{Title: "Moves", Width: 6},
			{Title: "Date", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "Player", Width: 20},
			{Title: "Wins", Width: 6},
			{Title: "Last played", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
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

// updateTableRows fills the table for the current tab.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	if m.tab == tabMatches {
		rows = make([]table.Row, len(m.matches))
		for i, rec := range m.matches {
			rows[i] = table.Row{
				rec.Winner,
				fmt.Sprintf("%d", rec.PlayerCount),
				fmt.Sprintf("%d", rec.Turns),
				rec.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.standings))
		for i, rec := range m.standings {
			rows[i] = table.Row{
				rec.Name,
				fmt.Sprintf("%d", rec.Wins),
				rec.LastPlayed.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			if m.tab == tabMatches {
				m.tab = tabStandings
			} else {
				m.tab = tabMatches
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "MATCH HISTORY"
	if m.tab == tabStandings {
		title = "STANDINGS"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	empty := len(m.matches) == 0
	if m.tab == tabStandings {
		empty = len(m.standings) == 0
	}
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No matches recorded yet.\nFinish a game to see it here.")
	}

	return m.table.View()
}

// centerText centers a (possibly multi-line) block within the given width.
func centerText(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// RunHistory runs the match-history screen.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
