package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkamenev/firetower/internal/config"
	"github.com/pkamenev/firetower/internal/core"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:      core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 12345},
		Theme:       config.Default().Theme,
		PlayerCount: 4,
		Names:       []string{"Alice", "Bob"},
	})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func TestModelStartsPlaying(t *testing.T) {
	m := newTestModel(t)

	if m.phase != phasePlaying {
		t.Fatalf("phase = %v, want phasePlaying", m.phase)
	}
	if m.game == nil {
		t.Fatal("game is nil after NewModel")
	}
	if m.game.Over() {
		t.Error("fresh game is already over")
	}
}

func TestModelViewShowsBoardAndRoster(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "FIRETOWER") {
		t.Error("view is missing the title")
	}
	if !strings.Contains(view, "Alice") || !strings.Contains(view, "Bob") {
		t.Error("view is missing named players")
	}
	// The eternal flame guarantees fire glyphs on a fresh board
	if !strings.Contains(view, "*") {
		t.Error("view is missing fire glyphs")
	}
	if !strings.Contains(view, "Wind from the") {
		t.Error("view is missing the wind line")
	}
}

func TestModelCursorStaysOnBoard(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 30; i++ {
		next, _ := m.handlePlayKey(keyMsg("up"))
		m = next.(Model)
	}
	if m.cursor.Y != 0 {
		t.Errorf("cursor.Y = %d after walking off the top, want 0", m.cursor.Y)
	}

	for i := 0; i < 30; i++ {
		next, _ := m.handlePlayKey(keyMsg("l"))
		m = next.(Model)
	}
	if m.cursor.X != 15 {
		t.Errorf("cursor.X = %d after walking off the right, want 15", m.cursor.X)
	}
}

func TestModelCardSelection(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.handlePlayKey(keyMsg("5"))
	m = next.(Model)
	if got := m.game.Selected().String(); got != "Flare up" {
		t.Errorf("selected card = %q, want Flare up", got)
	}
}

func TestModelSetupCollectsNames(t *testing.T) {
	m, err := NewModel(Options{
		Config:      core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1},
		Theme:       config.Default().Theme,
		PlayerCount: 2,
		PromptSetup: true,
	})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	if m.phase != phaseSetup {
		t.Fatalf("phase = %v, want phaseSetup", m.phase)
	}

	m.input.SetValue("Carol")
	next, _ := m.handleSetupKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.phase != phaseSetup {
		t.Fatal("setup finished after one of two names")
	}

	// Empty entry falls back to a placeholder and starts the match
	next, _ = m.handleSetupKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.phase != phasePlaying {
		t.Fatalf("phase = %v after final name, want phasePlaying", m.phase)
	}

	players := m.game.Players()
	if players[0].Name != "Carol" {
		t.Errorf("players[0].Name = %q, want Carol", players[0].Name)
	}
	if players[1].Name != "Player 2" {
		t.Errorf("players[1].Name = %q, want placeholder Player 2", players[1].Name)
	}
}
