// Package reindeer scores a maze where moving forward costs one point and
// every quarter turn costs a thousand.
package reindeer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sayotte/gridpaths/grid"
	"github.com/sayotte/gridpaths/planner"
)

const (
	StepCost = 1
	TurnCost = 1000

	wall  = '#'
	start = 'S'
	end   = 'E'
)

var (
	ErrMissingMarker = errors.New("reindeer: maze needs exactly one S and one E")
	ErrNoPath        = errors.New("reindeer: end is unreachable")
)

// Result holds both answers for one maze.
type Result struct {
	LowestScore int `yaml:"lowest_score"`
	// BestPathTiles counts tiles that lie on at least one lowest-score path.
	BestPathTiles int `yaml:"best_path_tiles"`
}

// pose is a tile plus the direction the reindeer faces on it. The zero
// Facing marks the sink that every pose on the end tile leads to for free,
// which lets a single goal node stand for "on E, facing anywhere".
type pose struct {
	Pos    grid.Position
	Facing grid.Vector
}

func (p pose) isSink() bool { return p.Facing == grid.Vector{} }

type Solver struct {
	Logger *slog.Logger
}

type maze struct {
	g          *grid.Grid
	start, end grid.Position
}

func (s *Solver) Solve(r io.Reader) (Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m, err := parseMaze(r)
	if err != nil {
		return Result{}, err
	}

	startTime := time.Now()
	var expansions int
	lowest, err := lowestScore(m, &expansions, logger)
	if err != nil {
		return Result{}, err
	}
	tiles := bestPathTiles(m, &expansions)
	logger.Info("maze scored",
		"elapsed", time.Since(startTime),
		"expansions", expansions,
		"lowest_score", lowest,
		"tiles", tiles,
	)

	return Result{LowestScore: lowest, BestPathTiles: tiles}, nil
}

func parseMaze(r io.Reader) (maze, error) {
	g, err := grid.Parse(r)
	if err != nil {
		return maze{}, fmt.Errorf("reindeer: %w", err)
	}
	if g.Count(start) != 1 || g.Count(end) != 1 {
		return maze{}, ErrMissingMarker
	}
	s, _ := g.Find(start)
	e, _ := g.Find(end)
	return maze{g: g, start: s, end: e}, nil
}

func (m maze) open(p grid.Position) bool {
	c := m.g.Letter(p)
	return c != 0 && c != wall
}

func lowestScore(m maze, expansions *int, logger *slog.Logger) (int, error) {
	sink := pose{Pos: m.end}
	path := planner.AStarFindPath(
		pose{Pos: m.start, Facing: grid.East},
		sink,
		func(p pose) float64 { return float64(p.Pos.Manhattan(m.end)) },
		forwardMoves(m, expansions),
		func(src, dst pose, _ map[pose]pose) float64 { return moveCost(src, dst) },
		planner.WithLogger(logger),
	)
	if len(path) == 0 {
		return 0, ErrNoPath
	}
	return int(planner.PathCost(path, func(src, dst pose, _ map[pose]pose) float64 {
		return moveCost(src, dst)
	})), nil
}

// bestPathTiles settles every pose from the start and, separately, every
// pose backwards from the end. A pose lies on a lowest-score path exactly
// when its two distances add up to the lowest score.
func bestPathTiles(m maze, expansions *int) int {
	sink := pose{Pos: m.end}
	_, fromStart, _, _ := planner.DijkstraFindPath(
		pose{Pos: m.start, Facing: grid.East},
		moveCost,
		nil,
		forwardMoves(m, expansions),
	)
	best, ok := fromStart[sink]
	if !ok {
		return 0
	}
	_, toEnd, _, _ := planner.DijkstraFindPath(sink, reverseMoveCost, nil, reverseMoves(m))

	tiles := make(map[grid.Position]bool)
	for p, c := range fromStart {
		if p.isSink() {
			continue
		}
		back, ok := toEnd[p]
		if ok && c+back == best {
			tiles[p.Pos] = true
		}
	}
	return len(tiles)
}

// forwardMoves counts every pose it expands into expansions.
func forwardMoves(m maze, expansions *int) planner.NeighborGenerator[pose] {
	return func(p pose) []pose {
		*expansions++
		if p.isSink() {
			return nil
		}
		out := make([]pose, 0, 4)
		if ahead := p.Pos.Add(p.Facing); m.open(ahead) {
			out = append(out, pose{Pos: ahead, Facing: p.Facing})
		}
		out = append(out,
			pose{Pos: p.Pos, Facing: p.Facing.RotateClockwise()},
			pose{Pos: p.Pos, Facing: p.Facing.RotateCounterClockwise()},
		)
		if p.Pos == m.end {
			out = append(out, pose{Pos: m.end})
		}
		return out
	}
}

// reverseMoves yields the poses that lead into p, so a search over it walks
// forward moves backwards.
func reverseMoves(m maze) planner.NeighborGenerator[pose] {
	return func(p pose) []pose {
		if p.isSink() {
			out := make([]pose, 0, len(grid.OrthogonalDirections))
			for _, d := range grid.OrthogonalDirections {
				out = append(out, pose{Pos: m.end, Facing: d})
			}
			return out
		}
		out := make([]pose, 0, 3)
		if behind := p.Pos.Sub(p.Facing); m.open(behind) {
			out = append(out, pose{Pos: behind, Facing: p.Facing})
		}
		return append(out,
			pose{Pos: p.Pos, Facing: p.Facing.RotateClockwise()},
			pose{Pos: p.Pos, Facing: p.Facing.RotateCounterClockwise()},
		)
	}
}

func moveCost(src, dst pose) float64 {
	switch {
	case dst.isSink():
		return 0
	case src.Pos == dst.Pos:
		return TurnCost
	default:
		return StepCost
	}
}

func reverseMoveCost(src, dst pose) float64 {
	switch {
	case src.isSink():
		return 0
	case src.Pos == dst.Pos:
		return TurnCost
	default:
		return StepCost
	}
}
