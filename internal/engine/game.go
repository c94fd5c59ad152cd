package engine

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// EternalFlame returns the central 2x2 block that starts burning and can
// never be converted or lifted.
func EternalFlame() []Point {
	lo := BoardSize/2 - 1
	return []Point{
		{X: lo, Y: lo},
		{X: lo, Y: lo + 1},
		{X: lo + 1, Y: lo},
		{X: lo + 1, Y: lo + 1},
	}
}

// Options configures a new game.
type Options struct {
	// PlayerCount is the number of seats, 2-4. Zero means four.
	PlayerCount int
	// Seats optionally names players and claims corners; unfilled slots
	// get defaults.
	Seats []Seat
	// Seed initializes the wind RNG. Zero means time-based.
	Seed int64
	// Logger, when set, receives informational lines for rejected moves
	// and eliminations.
	Logger *log.Logger
}

// Game is a single match in progress. It is not safe for concurrent use;
// the engine is turn-driven and expects one fully applied command at a
// time.
type Game struct {
	board  *Board
	roster *Roster
	rng    *rand.Rand
	logger *log.Logger

	wind        Wind
	selected    ActionKind
	orientation Orientation
	emberLifted bool

	active bool
	victor *Player
	turns  int

	eternal map[Point]bool
}

// New creates a game: tree-filled board, eternal flame ignited, players
// seated at their corners and an opening wind rolled.
func New(opts Options) (*Game, error) {
	count := opts.PlayerCount
	if count == 0 {
		count = len(Corners)
	}
	roster, err := NewRoster(count, opts.Seats...)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		board:    NewBoard(),
		roster:   roster,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   opts.Logger,
		selected: WindFire,
		active:   true,
		eternal:  make(map[Point]bool, 4),
	}
	for _, p := range EternalFlame() {
		g.board.Set(p, Fire)
		g.eternal[p] = true
	}
	if g.wind, err = rollWind(g.rng, g.roster, g.wind, false); err != nil {
		return nil, err
	}
	return g, nil
}

// Board access and read-only state for the presentation layer.

// Tile returns the status at p (OffBoard outside the grid).
func (g *Game) Tile(p Point) TileStatus { return g.board.At(p) }

// BoardSnapshot returns a copy of the current grid.
func (g *Game) BoardSnapshot() map[Point]TileStatus { return g.board.Snapshot() }

// Players returns all seats, eliminated players included.
func (g *Game) Players() []*Player { return g.roster.Players() }

// Wind returns the current wind direction.
func (g *Game) Wind() Wind { return g.wind }

// Selected returns the currently selected action.
func (g *Game) Selected() ActionKind { return g.selected }

// Orientation returns the current placement orientation for oriented
// actions.
func (g *Game) Orientation() Orientation { return g.orientation }

// EmberLifted reports whether an ember has been lifted and awaits
// placement. The presentation layer should hint the player to pick a
// tree cell next to fire.
func (g *Game) EmberLifted() bool { return g.emberLifted }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return !g.active }

// Victor returns the winning player, or nil while the game runs.
func (g *Game) Victor() *Player { return g.victor }

// Turns returns the number of accepted commands so far.
func (g *Game) Turns() int { return g.turns }

// RollWind draws a new wind direction for the surviving corners.
func (g *Game) RollWind() (Wind, error) {
	w, err := rollWind(g.rng, g.roster, g.wind, true)
	if err != nil {
		return g.wind, err
	}
	g.wind = w
	return w, nil
}

// Select makes kind the current action. Re-selecting an oriented action
// flips its placement orientation. Selecting anything other than Ember
// while a lifted ember awaits placement forfeits the ember.
func (g *Game) Select(kind ActionKind) {
	if g.emberLifted && kind != Ember {
		g.emberLifted = false
		g.logf("lifted ember forfeited", "next", kind)
	}
	if kind.Oriented() && kind == g.selected {
		g.orientation = g.orientation.Flip()
	}
	g.selected = kind
}

// Apply validates and executes one command at the target cell, then runs
// victory detection. A rejected command leaves the board unchanged.
func (g *Game) Apply(kind ActionKind, at Point) Outcome {
	if !g.active {
		return rejected("game is over")
	}
	if g.emberLifted && kind != Ember {
		return rejected("ember placement pending")
	}

	var out Outcome
	switch kind {
	case WindFire:
		out = g.windFire(at)
	case DozerLine:
		out = g.dozerLine(at)
	case ScratchLine:
		out = g.scratchLine(at)
	case DeReforest:
		out = g.deReforest(at)
	case FlareUp:
		out = g.flareUp(at)
	case BurningSnag:
		out = g.burningSnag(at)
	case Explosion:
		out = g.explosion(at)
	case Ember:
		out = g.ember(at)
	default:
		out = rejected("unknown action")
	}

	if !out.Accepted {
		g.logf("move rejected", "action", kind, "x", at.X, "y", at.Y, "reason", out.Reason)
		return out
	}

	g.turns++
	g.checkVictory()
	out.Ended = !g.active
	return out
}

// --- Action handlers ---

// windFire spreads fire downwind: the target must be a tree whose
// upwind neighbor (the cell on the side the wind blows from) is burning.
func (g *Game) windFire(at Point) Outcome {
	if g.board.At(at) != Tree {
		return rejected("target is not a tree")
	}
	if g.board.At(at.Add(g.wind.Vector())) != Fire {
		return rejected("upwind cell is not on fire")
	}
	g.board.Set(at, Fire)
	return accepted()
}

// validFirebreak reports whether a single cell may receive a firebreak:
// a tree outside every tower with no orthogonal firebreak.
func (g *Game) validFirebreak(p Point) bool {
	return g.board.At(p) == Tree &&
		!g.roster.Towers()[p] &&
		!g.board.HasOrthogonal(p, Firebreak)
}

// placeCluster converts a group of cells to firebreaks if every cell is
// individually a legal placement.
func (g *Game) placeCluster(cells ...Point) Outcome {
	for _, p := range cells {
		if !g.validFirebreak(p) {
			return rejected("not a valid firebreak placement")
		}
	}
	for _, p := range cells {
		g.board.Set(p, Firebreak)
	}
	return accepted()
}

func (g *Game) dozerLine(at Point) Outcome {
	second := at.Right()
	if g.orientation == Vertical {
		second = at.Down()
	}
	return g.placeCluster(at, second)
}

func (g *Game) scratchLine(at Point) Outcome {
	second := at.Right().Right()
	if g.orientation == Vertical {
		second = at.Down().Down()
	}
	return g.placeCluster(at, second)
}

func (g *Game) deReforest(at Point) Outcome {
	switch {
	case g.validFirebreak(at):
		g.board.Set(at, Firebreak)
		return accepted()
	case g.board.At(at) == Firebreak:
		g.board.Set(at, Tree)
		return accepted()
	default:
		return rejected("cannot add or remove a firebreak here")
	}
}

// flareUp ignites up to three colinear trees. A firebreak in the run
// truncates it; cells past the break are excluded. Fire cells in the run
// are skipped without truncating. At least one candidate must already
// touch fire.
func (g *Game) flareUp(at Point) Outcome {
	run := []Point{at, at.Right(), at.Right().Right()}
	if g.orientation == Vertical {
		run = []Point{at, at.Down(), at.Down().Down()}
	}

	var candidates []Point
	for _, p := range run {
		if g.board.At(p) == Firebreak {
			break
		}
		if g.board.At(p) == Tree {
			candidates = append(candidates, p)
		}
	}

	ignitable := false
	for _, p := range candidates {
		if g.board.HasOrthogonal(p, Fire) {
			ignitable = true
			break
		}
	}
	if !ignitable {
		return rejected("no cell in the line touches existing fire")
	}
	for _, p := range candidates {
		g.board.Set(p, Fire)
	}
	return accepted()
}

// burningSnag ignites the trees of a 2x2 square whose upper-left corner
// is the target. The square must touch existing fire and contain at
// least one tree.
func (g *Game) burningSnag(at Point) Outcome {
	square := []Point{at, at.Right(), at.Down(), at.Right().Down()}

	touchesFire := false
	hasTree := false
	for _, p := range square {
		if g.board.HasOrthogonal(p, Fire) {
			touchesFire = true
		}
		if g.board.At(p) == Tree {
			hasTree = true
		}
	}
	if !touchesFire {
		return rejected("square does not touch existing fire")
	}
	if !hasTree {
		return rejected("square contains no tree")
	}
	for _, p := range square {
		if g.board.At(p) == Tree {
			g.board.Set(p, Fire)
		}
	}
	return accepted()
}

// explosion turns a burning cell into a firebreak and ignites every tree
// among its eight neighbors. The eternal flame cannot explode.
func (g *Game) explosion(at Point) Outcome {
	if g.board.At(at) != Fire {
		return rejected("target is not on fire")
	}
	if g.eternal[at] {
		return rejected("the eternal flame cannot explode")
	}
	area := []Point{
		at.Up().Left(), at.Up(), at.Up().Right(),
		at.Left(), at.Right(),
		at.Down().Left(), at.Down(), at.Down().Right(),
	}
	hasTree := false
	for _, p := range area {
		if g.board.At(p) == Tree {
			hasTree = true
			break
		}
	}
	if !hasTree {
		return rejected("no surrounding tree to ignite")
	}
	g.board.Set(at, Firebreak)
	for _, p := range area {
		if g.board.At(p) == Tree {
			g.board.Set(p, Fire)
		}
	}
	return accepted()
}

// ember runs the two-phase ember move. Phase one lifts a fire gem off
// the board (outside the eternal flame and all towers); phase two places
// it on a tree orthogonal to existing fire. An invalid placement leaves
// the ember lifted.
func (g *Game) ember(at Point) Outcome {
	if !g.emberLifted {
		if g.board.At(at) != Fire {
			return rejected("target is not on fire")
		}
		if g.eternal[at] {
			return rejected("the eternal flame cannot be lifted")
		}
		if g.roster.Towers()[at] {
			return rejected("tower fire cannot be lifted")
		}
		g.board.Set(at, Tree)
		g.emberLifted = true
		out := accepted()
		out.EmberLifted = true
		return out
	}

	if g.board.At(at) != Tree {
		return rejected("placement target is not a tree")
	}
	if !g.board.HasOrthogonal(at, Fire) {
		return rejected("placement does not touch existing fire")
	}
	g.board.Set(at, Fire)
	g.emberLifted = false
	return accepted()
}

// --- Victory detection ---

// checkVictory eliminates every active player whose home cell burns,
// cascading fire through their tower, and ends the game when a single
// player survives the pass.
func (g *Game) checkVictory() {
	for _, p := range g.roster.Active() {
		if g.board.At(p.Home()) != Fire {
			continue
		}
		p.Active = false
		for _, t := range p.Tower() {
			g.board.Set(t, Fire)
		}
		g.logf("player eliminated", "player", p.Name, "corner", p.Corner)
	}

	remaining := g.roster.Active()
	switch len(remaining) {
	case 1:
		g.victor = remaining[0]
		g.active = false
		g.logf("game over", "victor", g.victor.Name, "turns", g.turns)
	case 0:
		// Home cells are distinct, so a pass can never clear the table.
		g.active = false
		if g.logger != nil {
			g.logger.Error("victory scan left no active players")
		}
	}
}

func (g *Game) logf(msg string, kv ...any) {
	if g.logger != nil {
		g.logger.Info(msg, kv...)
	}
}
