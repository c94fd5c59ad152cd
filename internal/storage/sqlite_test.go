package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("new database has %d matches, want 0", len(matches))
	}
}

func TestSaveAndRetrieveMatch(t *testing.T) {
	store := openTestStore(t)

	rec := MatchRecord{
		Winner:      "Alice",
		Players:     []string{"Alice", "Bob", "Carol"},
		PlayerCount: 3,
		Turns:       42,
		Duration:    600,
	}
	id, err := store.SaveMatch(rec)
	if err != nil {
		t.Fatalf("SaveMatch() error = %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveMatch() id = %d, want > 0", id)
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}

	got := matches[0]
	if got.Winner != "Alice" {
		t.Errorf("Winner = %q, want %q", got.Winner, "Alice")
	}
	if len(got.Players) != 3 || got.Players[1] != "Bob" {
		t.Errorf("Players = %v, want [Alice Bob Carol]", got.Players)
	}
	if got.PlayerCount != 3 {
		t.Errorf("PlayerCount = %d, want 3", got.PlayerCount)
	}
	if got.Turns != 42 {
		t.Errorf("Turns = %d, want 42", got.Turns)
	}
	if got.Duration != 600 {
		t.Errorf("Duration = %d, want 600", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, want a set timestamp")
	}
}

func TestRecentMatchesOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	winners := []string{"Alice", "Bob", "Carol", "Dave", "Alice"}
	for _, w := range winners {
		_, err := store.SaveMatch(MatchRecord{
			Winner:      w,
			Players:     []string{"Alice", "Bob", "Carol", "Dave"},
			PlayerCount: 4,
		})
		if err != nil {
			t.Fatalf("SaveMatch(%q) error = %v", w, err)
		}
	}

	matches, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() error = %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	// Newest first
	want := []string{"Alice", "Dave", "Carol"}
	for i, w := range want {
		if matches[i].Winner != w {
			t.Errorf("matches[%d].Winner = %q, want %q", i, matches[i].Winner, w)
		}
	}
}

func TestStandings(t *testing.T) {
	store := openTestStore(t)

	for _, w := range []string{"Alice", "Bob", "Alice", "Alice", "Bob"} {
		if _, err := store.SaveMatch(MatchRecord{
			Winner:      w,
			Players:     []string{"Alice", "Bob"},
			PlayerCount: 2,
		}); err != nil {
			t.Fatalf("SaveMatch() error = %v", err)
		}
	}

	standings, err := store.Standings()
	if err != nil {
		t.Fatalf("Standings() error = %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("got %d entries, want 2", len(standings))
	}
	if standings[0].Name != "Alice" || standings[0].Wins != 3 {
		t.Errorf("standings[0] = %q/%d, want Alice/3", standings[0].Name, standings[0].Wins)
	}
	if standings[1].Name != "Bob" || standings[1].Wins != 2 {
		t.Errorf("standings[1] = %q/%d, want Bob/2", standings[1].Name, standings[1].Wins)
	}
}

func TestWins(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 2; i++ {
		if _, err := store.SaveMatch(MatchRecord{
			Winner:      "Alice",
			Players:     []string{"Alice", "Bob"},
			PlayerCount: 2,
		}); err != nil {
			t.Fatalf("SaveMatch() error = %v", err)
		}
	}

	wins, err := store.Wins("Alice")
	if err != nil {
		t.Fatalf("Wins() error = %v", err)
	}
	if wins != 2 {
		t.Errorf("Wins(Alice) = %d, want 2", wins)
	}

	wins, err = store.Wins("Nobody")
	if err != nil {
		t.Fatalf("Wins() error = %v", err)
	}
	if wins != 0 {
		t.Errorf("Wins(Nobody) = %d, want 0", wins)
	}
}

func TestClearHistory(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchRecord{
		Winner:      "Alice",
		Players:     []string{"Alice", "Bob"},
		PlayerCount: 2,
	}); err != nil {
		t.Fatalf("SaveMatch() error = %v", err)
	}

	if err := store.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches after clear, want 0", len(matches))
	}
}
