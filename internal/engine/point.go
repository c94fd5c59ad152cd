// Package engine implements the FireTower rules: the 16x16 board, tile
// transitions, wind, the eight card actions and victory detection. It is
// pure game logic with no terminal or storage dependencies, so it can be
// driven by any presentation layer or by tests directly.
package engine

// Point is an integer board coordinate. Points are plain values: copied
// freely, compared and hashed by value.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Left returns the neighbor one cell to the left.
func (p Point) Left() Point {
	return Point{X: p.X - 1, Y: p.Y}
}

// Right returns the neighbor one cell to the right.
func (p Point) Right() Point {
	return Point{X: p.X + 1, Y: p.Y}
}

// Up returns the neighbor one cell up.
func (p Point) Up() Point {
	return Point{X: p.X, Y: p.Y - 1}
}

// Down returns the neighbor one cell down.
func (p Point) Down() Point {
	return Point{X: p.X, Y: p.Y + 1}
}
