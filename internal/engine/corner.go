package engine

import "fmt"

// Corner identifies one of the four fixed board corners by the pair of
// wind directions that blow out of it. Corners are immutable values
// compared by their two components; the only valid instances are the
// four in Corners.
type Corner struct {
	Vertical   Wind // North or South
	Horizontal Wind // West or East
}

// NewCorner builds a corner from a vertical and a horizontal wind.
// Passing a horizontal wind for the vertical slot (or vice versa) is a
// construction error.
func NewCorner(vertical, horizontal Wind) (Corner, error) {
	if vertical != North && vertical != South {
		return Corner{}, fmt.Errorf("engine: %s is not a vertical wind direction", vertical)
	}
	if horizontal != West && horizontal != East {
		return Corner{}, fmt.Errorf("engine: %s is not a horizontal wind direction", horizontal)
	}
	return Corner{Vertical: vertical, Horizontal: horizontal}, nil
}

// Corners lists the four corners in the fixed default assignment order:
// NW, NE, SE, SW.
var Corners = []Corner{
	{Vertical: North, Horizontal: West},
	{Vertical: North, Horizontal: East},
	{Vertical: South, Horizontal: East},
	{Vertical: South, Horizontal: West},
}

// Anchor returns the extreme corner cell: 0 on an axis whose wind points
// toward the low edge, BoardSize-1 otherwise.
func (c Corner) Anchor() Point {
	x := 0
	if c.Horizontal == East {
		x = BoardSize - 1
	}
	y := 0
	if c.Vertical == South {
		y = BoardSize - 1
	}
	return Point{X: x, Y: y}
}

// Tower returns the 3x3 block of cells flush with the board edge at this
// corner.
func (c Corner) Tower() []Point {
	xs := towerRange(c.Horizontal == East)
	ys := towerRange(c.Vertical == South)
	cells := make([]Point, 0, 9)
	for _, x := range xs {
		for _, y := range ys {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

// String returns a short label such as "NW".
func (c Corner) String() string {
	labels := map[Wind]string{North: "N", South: "S", West: "W", East: "E"}
	return labels[c.Vertical] + labels[c.Horizontal]
}

func towerRange(highEdge bool) [3]int {
	if highEdge {
		return [3]int{BoardSize - 3, BoardSize - 2, BoardSize - 1}
	}
	return [3]int{0, 1, 2}
}
