package grid

import "fmt"

// Position is a cell coordinate. X grows to the right, Y grows downwards.
type Position struct {
	X, Y int
}

// Vector is a displacement between two positions.
type Vector = Position

var (
	East  = Vector{X: 1, Y: 0}
	South = Vector{X: 0, Y: 1}
	West  = Vector{X: -1, Y: 0}
	North = Vector{X: 0, Y: -1}
)

// OrthogonalDirections lists the four unit steps, clockwise from East.
var OrthogonalDirections = []Vector{East, South, West, North}

func (p Position) Add(v Vector) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p Position) Sub(v Vector) Position {
	return Position{X: p.X - v.X, Y: p.Y - v.Y}
}

// Manhattan returns |dx| + |dy| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// RotateClockwise turns a vector a quarter turn clockwise on screen
// coordinates (East becomes South).
func (p Position) RotateClockwise() Vector {
	return Vector{X: -p.Y, Y: p.X}
}

// RotateCounterClockwise turns a vector a quarter turn counter-clockwise
// (East becomes North).
func (p Position) RotateCounterClockwise() Vector {
	return Vector{X: p.Y, Y: -p.X}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
