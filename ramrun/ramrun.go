// Package ramrun routes across a square memory space while corrupted bytes
// fall onto it one at a time.
package ramrun

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/sayotte/gridpaths/grid"
	"github.com/sayotte/gridpaths/planner"
)

const (
	DefaultSize  = 71
	DefaultBytes = 1024

	safe      = '.'
	corrupted = '#'
)

var (
	ErrBadCoordinate = errors.New("ramrun: malformed or out-of-range byte position")
	ErrNoPath        = errors.New("ramrun: exit is unreachable")
	ErrNeverBlocked  = errors.New("ramrun: exit is still reachable after every byte fell")
)

type Result struct {
	// MinSteps is the shortest walk to the exit after the first Bytes bytes.
	MinSteps int `yaml:"min_steps"`
	// FirstBlocker is the "x,y" of the first byte that cuts the exit off.
	FirstBlocker string `yaml:"first_blocker"`
}

// Solver holds the memory-space dimensions. Zero values fall back to
// DefaultSize and DefaultBytes.
type Solver struct {
	Size   int
	Bytes  int
	Logger *slog.Logger
}

// run is the state of one Solve call, with defaults already applied.
type run struct {
	size     int
	bytes    int
	searches int
}

func (s *Solver) Solve(r io.Reader) (Result, error) {
	rn := &run{size: s.Size, bytes: s.Bytes}
	if rn.size <= 0 {
		rn.size = DefaultSize
	}
	if rn.bytes <= 0 {
		rn.bytes = DefaultBytes
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	bytes, err := ParseBytes(r, rn.size)
	if err != nil {
		return Result{}, err
	}

	startTime := time.Now()
	steps, err := rn.minSteps(bytes)
	if err != nil {
		return Result{}, err
	}
	blocker, err := rn.firstBlocker(bytes)
	if err != nil {
		return Result{}, err
	}
	logger.Info("memory space routed",
		"elapsed", time.Since(startTime),
		"searches", rn.searches,
		"bytes", len(bytes),
	)

	return Result{
		MinSteps:     steps,
		FirstBlocker: fmt.Sprintf("%d,%d", blocker.X, blocker.Y),
	}, nil
}

// ParseBytes reads one "x,y" position per line; blank lines are skipped.
func ParseBytes(r io.Reader, size int) ([]grid.Position, error) {
	var out []grid.Position
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		xs, ys, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, line, text)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, line, text)
		}
		if x < 0 || y < 0 || x >= size || y >= size {
			return nil, fmt.Errorf("%w: line %d: %d,%d outside %dx%d", ErrBadCoordinate, line, x, y, size, size)
		}
		out = append(out, grid.Position{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ramrun: reading input: %w", err)
	}
	return out, nil
}

func (rn *run) minSteps(bytes []grid.Position) (int, error) {
	g := grid.New(rn.size, rn.size, safe)
	for i := 0; i < rn.bytes && i < len(bytes); i++ {
		g.SetLetter(bytes[i], corrupted)
	}
	path := rn.findPath(g)
	if len(path) == 0 {
		return 0, ErrNoPath
	}
	return len(path) - 1, nil
}

// firstBlocker drops bytes one by one and only searches again when a byte
// lands on the path currently in hand.
func (rn *run) firstBlocker(bytes []grid.Position) (grid.Position, error) {
	g := grid.New(rn.size, rn.size, safe)
	path := rn.findPath(g)
	if len(path) == 0 {
		return grid.Position{}, ErrNoPath
	}
	onPath := pathSet(path)
	for _, b := range bytes {
		g.SetLetter(b, corrupted)
		if !onPath[b] {
			continue
		}
		path = rn.findPath(g)
		if len(path) == 0 {
			return b, nil
		}
		onPath = pathSet(path)
	}
	return grid.Position{}, ErrNeverBlocked
}

func (rn *run) findPath(g *grid.Grid) []grid.Position {
	rn.searches++
	exit := grid.Position{X: rn.size - 1, Y: rn.size - 1}
	return planner.AStarFindPath(
		grid.Position{},
		exit,
		func(p grid.Position) float64 { return float64(p.Manhattan(exit)) },
		func(p grid.Position) []grid.Position {
			return g.Neighbors(p, func(c rune) bool { return c == safe })
		},
		func(_, _ grid.Position, _ map[grid.Position]grid.Position) float64 { return 1 },
	)
}

func pathSet(path []grid.Position) map[grid.Position]bool {
	set := make(map[grid.Position]bool, len(path))
	for _, p := range path {
		set[p] = true
	}
	return set
}
