package engine

// BoardSize is the edge length of the square board.
const BoardSize = 16

// Board maps every in-bounds coordinate to a tile status. Out-of-bounds
// reads return OffBoard and out-of-bounds writes are dropped, so callers
// never bounds-check neighbor probes themselves.
type Board struct {
	grid map[Point]TileStatus
}

// NewBoard creates a board with every cell set to Tree.
func NewBoard() *Board {
	grid := make(map[Point]TileStatus, BoardSize*BoardSize)
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			grid[Point{X: x, Y: y}] = Tree
		}
	}
	return &Board{grid: grid}
}

// OnBoard reports whether p lies within [0, BoardSize) on both axes.
func OnBoard(p Point) bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// At returns the status at p, or OffBoard when p is outside the grid.
func (b *Board) At(p Point) TileStatus {
	if !OnBoard(p) {
		return OffBoard
	}
	return b.grid[p]
}

// Set overwrites the status at p. Writes outside the grid are ignored.
func (b *Board) Set(p Point, st TileStatus) {
	if !OnBoard(p) {
		return
	}
	b.grid[p] = st
}

// HasOrthogonal reports whether any of the four axis-neighbors of p has
// the given status. Off-board neighbors read as OffBoard and therefore
// never match a stored status.
func (b *Board) HasOrthogonal(p Point, st TileStatus) bool {
	return b.At(p.Left()) == st || b.At(p.Right()) == st ||
		b.At(p.Up()) == st || b.At(p.Down()) == st
}

// Snapshot returns a copy of the full grid for rendering or inspection.
// Mutating the returned map does not affect the board.
func (b *Board) Snapshot() map[Point]TileStatus {
	out := make(map[Point]TileStatus, len(b.grid))
	for p, st := range b.grid {
		out[p] = st
	}
	return out
}
