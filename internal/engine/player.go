package engine

import "fmt"

// Player is one seat at the table. A player stays in the roster after
// elimination with Active set to false.
type Player struct {
	Name   string
	Corner Corner
	Active bool
}

// Home returns the player's anchor cell. Fire reaching it eliminates the
// player.
func (p *Player) Home() Point {
	return p.Corner.Anchor()
}

// Tower returns the player's 3x3 corner region.
func (p *Player) Tower() []Point {
	return p.Corner.Tower()
}

// Seat is an optional roster slot: a name plus, when HasCorner is set,
// an explicit corner claim.
type Seat struct {
	Name      string
	Corner    Corner
	HasCorner bool
}

// NamedSeat returns a seat with a name and no corner preference.
func NamedSeat(name string) Seat {
	return Seat{Name: name}
}

// Roster holds the 2-4 players of a game, each bound to a distinct
// corner.
type Roster struct {
	players []*Player
}

// NewRoster builds a roster for the given number of seats (2-4). Seats
// with explicit corners keep them; every other seat (including seats
// beyond the supplied list) receives the next free corner in the fixed
// NW, NE, SE, SW order. Empty names become positional placeholders.
func NewRoster(count int, seats ...Seat) (*Roster, error) {
	if count < 2 || count > len(Corners) {
		return nil, fmt.Errorf("engine: player count %d out of range 2-%d", count, len(Corners))
	}
	if len(seats) > count {
		return nil, fmt.Errorf("engine: %d seats supplied for %d players", len(seats), count)
	}

	taken := make(map[Corner]bool, len(Corners))
	for _, s := range seats {
		if !s.HasCorner {
			continue
		}
		if taken[s.Corner] {
			return nil, fmt.Errorf("engine: corner %s claimed twice", s.Corner)
		}
		taken[s.Corner] = true
	}

	free := make([]Corner, 0, len(Corners))
	for _, c := range Corners {
		if !taken[c] {
			free = append(free, c)
		}
	}

	players := make([]*Player, 0, count)
	for i := 0; i < count; i++ {
		var seat Seat
		if i < len(seats) {
			seat = seats[i]
		}
		corner := seat.Corner
		if !seat.HasCorner {
			corner = free[0]
			free = free[1:]
		}
		name := seat.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		players = append(players, &Player{Name: name, Corner: corner, Active: true})
	}

	return &Roster{players: players}, nil
}

// Players returns all roster members, eliminated ones included.
func (r *Roster) Players() []*Player {
	return r.players
}

// Active returns the players still in the game.
func (r *Roster) Active() []*Player {
	out := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// Towers returns the union of every player's tower cells, eliminated
// players included. Firebreaks may never be placed inside any tower.
func (r *Roster) Towers() map[Point]bool {
	cells := make(map[Point]bool, len(r.players)*9)
	for _, p := range r.players {
		for _, t := range p.Tower() {
			cells[t] = true
		}
	}
	return cells
}
