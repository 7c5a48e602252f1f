// Package racetrack counts shortcuts ("cheats") through the walls of a
// single-lane race track.
package racetrack

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
	DefaultThreshold  = 100
	DefaultShortCheat = 2
	DefaultLongCheat  = 20

	wall = '#'
)

var ErrNoTrack = errors.New("racetrack: no track joins S to E")

type Result struct {
	// ShortCheats counts cheats of at most ShortCheat picoseconds saving at
	// least Threshold.
	ShortCheats int `yaml:"short_cheats"`
	// LongCheats is the same count for cheats of at most LongCheat picoseconds.
	LongCheats int `yaml:"long_cheats"`
}

// Solver zero values fall back to the Default constants.
type Solver struct {
	Threshold  int
	ShortCheat int
	LongCheat  int
	Logger     *slog.Logger
}

func (s *Solver) Solve(r io.Reader) (Result, error) {
	cfg := s.withDefaults()
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g, err := grid.Parse(r)
	if err != nil {
		return Result{}, fmt.Errorf("racetrack: %w", err)
	}
	startTime := time.Now()
	track, err := Track(g, planner.WithLogger(logger))
	if err != nil {
		return Result{}, err
	}

	res := Result{
		ShortCheats: CountCheats(track, cfg.ShortCheat, cfg.Threshold),
		LongCheats:  CountCheats(track, cfg.LongCheat, cfg.Threshold),
	}
	logger.Info("cheats counted",
		"elapsed", time.Since(startTime),
		"track_length", len(track)-1,
		"short", res.ShortCheats,
		"long", res.LongCheats,
	)
	return res, nil
}

// withDefaults returns a copy of s with zero settings replaced.
func (s *Solver) withDefaults() Solver {
	out := *s
	if out.Threshold <= 0 {
		out.Threshold = DefaultThreshold
	}
	if out.ShortCheat <= 0 {
		out.ShortCheat = DefaultShortCheat
	}
	if out.LongCheat <= 0 {
		out.LongCheat = DefaultLongCheat
	}
	return out
}

// Track returns the tiles from S to E in race order. Index i in the result is
// the time at which the tile is reached without cheating.
func Track(g *grid.Grid, opts ...planner.Option) ([]grid.Position, error) {
	start, okS := g.Find('S')
	end, okE := g.Find('E')
	if !okS || !okE {
		return nil, ErrNoTrack
	}
	path := planner.AStarFindPath(
		start,
		end,
		func(p grid.Position) float64 { return float64(p.Manhattan(end)) },
		func(p grid.Position) []grid.Position {
			return g.Neighbors(p, func(c rune) bool { return c != wall })
		},
		func(_, _ grid.Position, _ map[grid.Position]grid.Position) float64 { return 1 },
		opts...,
	)
	if len(path) == 0 {
		return nil, ErrNoTrack
	}
	return path, nil
}

// CountCheats counts pairs of track tiles that can be joined by moving at
// most maxCheat tiles through walls and that save at least threshold
// picoseconds over following the track.
func CountCheats(track []grid.Position, maxCheat, threshold int) int {
	count := 0
	for i, from := range track {
		for j := i + threshold + 1; j < len(track); j++ {
			d := from.Manhattan(track[j])
			if d <= maxCheat && j-i-d >= threshold {
				count++
			}
		}
	}
	return count
}
