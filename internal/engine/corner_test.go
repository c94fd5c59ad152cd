package engine

import "testing"

func TestNewCornerRejectsSwappedAxes(t *testing.T) {
	if _, err := NewCorner(West, North); err == nil {
		t.Error("expected error for horizontal wind in vertical slot")
	}
	if _, err := NewCorner(North, South); err == nil {
		t.Error("expected error for vertical wind in horizontal slot")
	}
	if _, err := NewCorner(South, East); err != nil {
		t.Errorf("valid corner rejected: %v", err)
	}
}

func TestCornerAnchors(t *testing.T) {
	tests := []struct {
		corner Corner
		want   Point
	}{
		{Corner{North, West}, Point{0, 0}},
		{Corner{North, East}, Point{BoardSize - 1, 0}},
		{Corner{South, East}, Point{BoardSize - 1, BoardSize - 1}},
		{Corner{South, West}, Point{0, BoardSize - 1}},
	}
	for _, tt := range tests {
		if got := tt.corner.Anchor(); got != tt.want {
			t.Errorf("%s anchor = %v, want %v", tt.corner, got, tt.want)
		}
	}
}

func TestCornerTowersFlushAndDisjoint(t *testing.T) {
	seen := make(map[Point]string)

	for _, c := range Corners {
		tower := c.Tower()
		if len(tower) != 9 {
			t.Fatalf("%s tower has %d cells, want 9", c, len(tower))
		}

		anchor := c.Anchor()
		for _, p := range tower {
			if !OnBoard(p) {
				t.Errorf("%s tower cell %v off board", c, p)
			}
			// Flush with the edge: every cell within 2 of the anchor on
			// both axes.
			if dx := abs(p.X - anchor.X); dx > 2 {
				t.Errorf("%s tower cell %v too far from anchor on x", c, p)
			}
			if dy := abs(p.Y - anchor.Y); dy > 2 {
				t.Errorf("%s tower cell %v too far from anchor on y", c, p)
			}

			if owner, dup := seen[p]; dup {
				t.Errorf("tower cell %v shared by %s and %s", p, owner, c)
			}
			seen[p] = c.String()
		}
	}
}

func TestRosterDefaultAssignmentOrder(t *testing.T) {
	for count := 2; count <= 4; count++ {
		roster, err := NewRoster(count)
		if err != nil {
			t.Fatalf("NewRoster(%d) failed: %v", count, err)
		}

		players := roster.Players()
		if len(players) != count {
			t.Fatalf("got %d players, want %d", len(players), count)
		}
		for i, p := range players {
			if p.Corner != Corners[i] {
				t.Errorf("%d players: slot %d corner = %s, want %s",
					count, i, p.Corner, Corners[i])
			}
			if !p.Active {
				t.Errorf("player %q starts inactive", p.Name)
			}
		}
	}
}

func TestRosterPresetCornersKept(t *testing.T) {
	se := Corner{South, East}
	roster, err := NewRoster(3, Seat{Name: "ada", Corner: se, HasCorner: true})
	if err != nil {
		t.Fatalf("NewRoster failed: %v", err)
	}

	players := roster.Players()
	if players[0].Name != "ada" || players[0].Corner != se {
		t.Errorf("explicit seat not honored: %+v", players[0])
	}

	// Auto-filled slots take the complement in NW, NE, SE, SW order.
	if players[1].Corner != (Corner{North, West}) {
		t.Errorf("slot 2 corner = %s, want NW", players[1].Corner)
	}
	if players[2].Corner != (Corner{North, East}) {
		t.Errorf("slot 3 corner = %s, want NE", players[2].Corner)
	}

	// Placeholder names for unnamed slots
	if players[1].Name != "Player 2" {
		t.Errorf("slot 2 name = %q, want %q", players[1].Name, "Player 2")
	}
}

func TestRosterNeverDuplicatesCorners(t *testing.T) {
	for count := 2; count <= 4; count++ {
		for _, preset := range []Corner{{North, West}, {South, West}} {
			roster, err := NewRoster(count, Seat{Name: "x", Corner: preset, HasCorner: true})
			if err != nil {
				t.Fatalf("NewRoster(%d, %s) failed: %v", count, preset, err)
			}
			seen := make(map[Corner]bool)
			for _, p := range roster.Players() {
				if seen[p.Corner] {
					t.Errorf("%d players, preset %s: corner %s duplicated",
						count, preset, p.Corner)
				}
				seen[p.Corner] = true
			}
		}
	}
}

func TestRosterRejectsDuplicateClaims(t *testing.T) {
	nw := Corner{North, West}
	_, err := NewRoster(2,
		Seat{Name: "a", Corner: nw, HasCorner: true},
		Seat{Name: "b", Corner: nw, HasCorner: true},
	)
	if err == nil {
		t.Error("expected error for duplicate corner claim")
	}
}

func TestRosterRejectsBadCount(t *testing.T) {
	if _, err := NewRoster(1); err == nil {
		t.Error("expected error for one player")
	}
	if _, err := NewRoster(5); err == nil {
		t.Error("expected error for five players")
	}
	if _, err := NewRoster(2, NamedSeat("a"), NamedSeat("b"), NamedSeat("c")); err == nil {
		t.Error("expected error for more seats than players")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
