package engine

import (
	"errors"
	"math/rand"
)

// Wind is one of the four cardinal wind directions, named by origin as
// winds are: a south wind blows from the south. The basic spread action
// ignites a tree whose neighbor on the wind's origin side is burning.
type Wind int

const (
	North Wind = iota
	West
	East
	South
)

// Vector returns the unit offset toward the wind's named compass point,
// with y growing downward as on screen. The upwind neighbor of a cell is
// the cell plus this vector.
func (w Wind) Vector() Point {
	switch w {
	case North:
		return Point{X: 0, Y: -1}
	case West:
		return Point{X: -1, Y: 0}
	case East:
		return Point{X: 1, Y: 0}
	case South:
		return Point{X: 0, Y: 1}
	default:
		return Point{}
	}
}

// String returns the direction name.
func (w Wind) String() string {
	switch w {
	case North:
		return "north"
	case West:
		return "west"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "unknown"
	}
}

// ErrNoValidWinds is returned when no active player contributes a wind
// direction. Victory detection ends the game at one remaining player, so
// seeing this indicates a defect in the caller.
var ErrNoValidWinds = errors.New("engine: no active players to draw wind from")

// rollWind draws a new wind direction from the union of the active
// players' corner directions. When more than one direction is valid the
// draw is repeated until it differs from prev, so a roll always changes
// the wind unless only a single direction remains. havePrev is false for
// the opening roll, which has no previous value to differ from.
func rollWind(rng *rand.Rand, roster *Roster, prev Wind, havePrev bool) (Wind, error) {
	seen := make(map[Wind]bool, 4)
	valid := make([]Wind, 0, 4)
	for _, pl := range roster.Active() {
		for _, w := range []Wind{pl.Corner.Vertical, pl.Corner.Horizontal} {
			if !seen[w] {
				seen[w] = true
				valid = append(valid, w)
			}
		}
	}
	if len(valid) == 0 {
		return prev, ErrNoValidWinds
	}
	if len(valid) == 1 {
		return valid[0], nil
	}
	for {
		w := valid[rng.Intn(len(valid))]
		if !havePrev || w != prev {
			return w, nil
		}
	}
}
