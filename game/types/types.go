package types

// Point is a cell position on the grid. It also doubles as a direction
// vector when restricted to unit offsets.
type Point struct {
	X, Y int
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsInverse reports whether d is the exact 180° reversal of p.
func (p Point) IsInverse(d Point) bool {
	return d.X == -p.X && d.Y == -p.Y
}

// IsZero reports whether the point is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// The four legal movement directions.
var (
	DirRight = Point{X: 1, Y: 0}
	DirLeft  = Point{X: -1, Y: 0}
	DirDown  = Point{X: 0, Y: 1}
	DirUp    = Point{X: 0, Y: -1}
)

// Grid represents the game grid dimensions
type Grid struct {
	Cols int
	Rows int
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// CellCount returns the total number of cells on the grid.
func (g Grid) CellCount() int {
	return g.Cols * g.Rows
}
