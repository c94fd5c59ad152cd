package engine

import "strings"

// PlayerState is one roster entry in a snapshot.
type PlayerState struct {
	Name   string
	Corner string
	Active bool
}

// Snapshot captures a game for inspection and determinism checks: the
// board as glyph rows plus wind, selection and roster state.
type Snapshot struct {
	Rows        []string // one string per board row, '^' tree '*' fire 'o' firebreak
	Wind        Wind
	Selected    ActionKind
	Orientation Orientation
	EmberLifted bool
	Turns       int
	Over        bool
	Victor      string // empty while the game runs
	Players     []PlayerState
}

var tileGlyphs = map[TileStatus]rune{
	Tree:      '^',
	Fire:      '*',
	Firebreak: 'o',
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	rows := make([]string, BoardSize)
	for y := 0; y < BoardSize; y++ {
		var sb strings.Builder
		for x := 0; x < BoardSize; x++ {
			sb.WriteRune(tileGlyphs[g.board.At(Point{X: x, Y: y})])
		}
		rows[y] = sb.String()
	}

	players := make([]PlayerState, 0, len(g.roster.Players()))
	for _, p := range g.roster.Players() {
		players = append(players, PlayerState{
			Name:   p.Name,
			Corner: p.Corner.String(),
			Active: p.Active,
		})
	}

	victor := ""
	if g.victor != nil {
		victor = g.victor.Name
	}

	return Snapshot{
		Rows:        rows,
		Wind:        g.wind,
		Selected:    g.selected,
		Orientation: g.orientation,
		EmberLifted: g.emberLifted,
		Turns:       g.turns,
		Over:        !g.active,
		Victor:      victor,
		Players:     players,
	}
}

// String renders the snapshot board for test failure output.
func (s Snapshot) String() string {
	return strings.Join(s.Rows, "\n")
}
