// Package grid stores rectangular character maps and the integer coordinates
// used to walk them.
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Grid is a rectangular map of runes addressed by Position.
type Grid struct {
	width, height int
	cells         [][]rune
}

// New returns a width×height grid with every cell set to fill.
func New(width, height int, fill rune) *Grid {
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = fill
		}
		cells[y] = row
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Parse reads one grid row per line. Trailing blank lines are ignored.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		rows = append(rows, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading input: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	return &Grid{width: w, height: len(rows), cells: rows}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Letter returns the rune at p, or 0 when p is outside the grid.
func (g *Grid) Letter(p Position) rune {
	if !g.InBounds(p) {
		return 0
	}
	return g.cells[p.Y][p.X]
}

// SetLetter overwrites the rune at p. Positions outside the grid are ignored.
func (g *Grid) SetLetter(p Position, letter rune) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y][p.X] = letter
}

// Find returns the first position, in row-major order, holding letter.
func (g *Grid) Find(letter rune) (Position, bool) {
	for y, row := range g.cells {
		for x, c := range row {
			if c == letter {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// Count returns how many cells hold letter.
func (g *Grid) Count(letter rune) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == letter {
				n++
			}
		}
	}
	return n
}

// Neighbors returns the in-bounds orthogonal neighbours of p for which
// passable returns true.
func (g *Grid) Neighbors(p Position, passable func(rune) bool) []Position {
	out := make([]Position, 0, len(OrthogonalDirections))
	for _, d := range OrthogonalDirections {
		n := p.Add(d)
		if g.InBounds(n) && passable(g.cells[n.Y][n.X]) {
			out = append(out, n)
		}
	}
	return out
}

func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
