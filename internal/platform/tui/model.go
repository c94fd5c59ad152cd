package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pkamenev/firetower/internal/config"
	"github.com/pkamenev/firetower/internal/core"
	"github.com/pkamenev/firetower/internal/engine"
	"github.com/pkamenev/firetower/internal/storage"
)

// phase is the session state: optional name entry, the match itself, and
// the winner screen.
type phase int

const (
	phaseSetup phase = iota
	phasePlaying
	phaseOver
)

// Options configures a game session.
type Options struct {
	Config      core.RuntimeConfig
	Theme       config.Theme
	PlayerCount int
	Names       []string
	Store       *storage.Store
	Logger      *log.Logger
	// PromptSetup enables interactive name entry before the match.
	// Used by SSH sessions, which have no command-line flags.
	PromptSetup bool
}

// Model is the Bubble Tea model for a full game session.
type Model struct {
	opts   Options
	screen *core.Screen
	keys   *KeyMapper

	phase phase
	input textinput.Model
	names []string

	game    *engine.Game
	cursor  engine.Point
	status  string
	started time.Time
	saved   bool

	quitting bool
}

// NewModel creates a session model. Unless PromptSetup is set, the match
// starts immediately with the configured players.
func NewModel(opts Options) (Model, error) {
	if opts.Config.ScreenW == 0 || opts.Config.ScreenH == 0 {
		opts.Config = core.DefaultConfig()
	}
	if opts.PlayerCount == 0 {
		opts.PlayerCount = 4
	}

	m := Model{
		opts:   opts,
		screen: core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH),
		keys:   NewKeyMapper(),
	}

	if opts.PromptSetup {
		ti := textinput.New()
		ti.Placeholder = "Player 1"
		ti.CharLimit = 20
		ti.Width = 24
		ti.Focus()
		m.phase = phaseSetup
		m.input = ti
		return m, nil
	}

	m.names = opts.Names
	if err := m.startGame(opts.Config.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startGame builds a fresh engine game from the collected setup.
func (m *Model) startGame(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	seats := make([]engine.Seat, 0, len(m.names))
	for _, name := range m.names {
		seats = append(seats, engine.NamedSeat(name))
	}

	game, err := engine.New(engine.Options{
		PlayerCount: m.opts.PlayerCount,
		Seats:       seats,
		Seed:        seed,
		Logger:      m.opts.Logger,
	})
	if err != nil {
		return err
	}

	m.game = game
	m.cursor = engine.Point{X: engine.BoardSize / 2, Y: engine.BoardSize / 2}
	m.status = ""
	m.started = time.Now()
	m.saved = false
	m.phase = phasePlaying
	return nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.phase == phaseSetup {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.opts.Config.ScreenW = msg.Width
		m.opts.Config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch m.phase {
		case phaseSetup:
			return m.handleSetupKey(msg)
		case phasePlaying:
			return m.handlePlayKey(msg)
		case phaseOver:
			return m.handleOverKey(msg)
		}
	}

	return m, nil
}

// handleSetupKey collects player names, one per enter press.
func (m Model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		// Empty entry keeps the positional placeholder name
		if name := m.input.Value(); name != "" {
			m.names = append(m.names, name)
		} else {
			m.names = append(m.names, fmt.Sprintf("Player %d", len(m.names)+1))
		}
		if len(m.names) >= m.opts.PlayerCount {
			if err := m.startGame(m.opts.Config.Seed); err != nil {
				m.status = err.Error()
				m.names = nil
				m.input.SetValue("")
				return m, nil
			}
			return m, nil
		}
		m.input.SetValue("")
		m.input.Placeholder = fmt.Sprintf("Player %d", len(m.names)+1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handlePlayKey processes keyboard input during the match.
func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if kind, ok := m.keys.MapKeyToCard(msg); ok {
		m.game.Select(kind)
		m.status = ""
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionCursorUp:
		m.cursor.Y = core.Max(m.cursor.Y-1, 0)
	case core.ActionCursorDown:
		m.cursor.Y = core.Min(m.cursor.Y+1, engine.BoardSize-1)
	case core.ActionCursorLeft:
		m.cursor.X = core.Max(m.cursor.X-1, 0)
	case core.ActionCursorRight:
		m.cursor.X = core.Min(m.cursor.X+1, engine.BoardSize-1)

	case core.ActionRollWind:
		wind, err := m.game.RollWind()
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("wind now blows from the %s", wind)
		}

	case core.ActionConfirm:
		outcome := m.game.Apply(m.game.Selected(), m.cursor)
		switch {
		case !outcome.Accepted:
			m.status = outcome.Reason
		case outcome.EmberLifted:
			m.status = "ember lifted, choose where it lands"
		default:
			m.status = ""
		}
		if outcome.Ended {
			m.finishMatch()
		}
	}

	return m, nil
}

// handleOverKey processes input on the winner screen.
func (m Model) handleOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit, core.ActionBack:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		// Fresh seed for the rematch
		if err := m.startGame(time.Now().UnixNano()); err != nil {
			m.status = err.Error()
		}
	}
	return m, nil
}

// finishMatch records the result and switches to the winner screen.
func (m *Model) finishMatch() {
	m.phase = phaseOver

	if m.saved || m.opts.Store == nil {
		return
	}
	winner := ""
	if v := m.game.Victor(); v != nil {
		winner = v.Name
	}
	players := make([]string, 0, len(m.game.Players()))
	for _, p := range m.game.Players() {
		players = append(players, p.Name)
	}
	rec := storage.MatchRecord{
		Winner:      winner,
		Players:     players,
		PlayerCount: len(players),
		Turns:       m.game.Turns(),
		Duration:    int(time.Since(m.started).Seconds()),
	}
	//nolint:errcheck // Best-effort save, the winner screen shows regardless
	m.opts.Store.SaveMatch(rec)
	m.saved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.phase == phaseSetup {
		return m.viewSetup()
	}

	m.screen.Clear()
	m.drawBoard()
	m.drawSidebar()
	m.drawStatus()
	if m.phase == phaseOver {
		m.drawWinner()
	}
	return RenderScreen(m.screen)
}

// viewSetup renders the name-entry form as plain Bubble Tea output.
func (m Model) viewSetup() string {
	s := fmt.Sprintf(
		"\n  FIRETOWER\n\n  Enter name for player %d of %d (enter to skip):\n\n  %s\n",
		len(m.names)+1, m.opts.PlayerCount, m.input.View(),
	)
	if m.status != "" {
		s += "\n  " + m.status + "\n"
	}
	return s
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
