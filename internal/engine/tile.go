package engine

// TileStatus is the state of a single board cell.
type TileStatus int

const (
	// Tree is unburnt forest, the starting state of every cell outside
	// the eternal flame.
	Tree TileStatus = iota
	// Fire is a burning cell.
	Fire
	// Firebreak is a placed barrier token. Fire never spreads into it.
	Firebreak
	// OffBoard is the sentinel returned for coordinates outside the
	// board. It is never stored in the grid.
	OffBoard
)

// String returns a human-readable name for the tile status.
func (t TileStatus) String() string {
	switch t {
	case Tree:
		return "tree"
	case Fire:
		return "fire"
	case Firebreak:
		return "firebreak"
	case OffBoard:
		return "off board"
	default:
		return "unknown"
	}
}
