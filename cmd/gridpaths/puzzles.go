package main

import (
	"io"
	"strconv"

	"github.com/sayotte/gridpaths/racetrack"
	"github.com/sayotte/gridpaths/ramrun"
	"github.com/sayotte/gridpaths/reindeer"
)

type puzzle struct {
	name  string
	title string
	about string
	solve func(a *app, r io.Reader) (answers, error)
}

var puzzles = []puzzle{
	{
		name:  "reindeer",
		title: "reindeer maze",
		about: "lowest maze score with turn penalties; tiles on any best path",
		solve: solveReindeer,
	},
	{
		name:  "ramrun",
		title: "RAM run",
		about: "fewest steps past fallen bytes; first byte that blocks the exit",
		solve: solveRAMRun,
	},
	{
		name:  "racetrack",
		title: "race condition",
		about: "short and long wall cheats saving at least the threshold",
		solve: solveRacetrack,
	},
}

func lookupPuzzle(name string) (puzzle, bool) {
	for _, p := range puzzles {
		if p.name == name {
			return p, true
		}
	}
	return puzzle{}, false
}

func puzzleNames() []string {
	names := make([]string, 0, len(puzzles))
	for _, p := range puzzles {
		names = append(names, p.name)
	}
	return names
}

// answers is one solved input: the two answer lines plus the puzzle's own
// result, which the yaml report embeds as is.
type answers struct {
	part1, part2 string
	result       any
}

func solveReindeer(a *app, r io.Reader) (answers, error) {
	s := &reindeer.Solver{Logger: a.logger.With("puzzle", "reindeer")}
	res, err := s.Solve(r)
	if err != nil {
		return answers{}, err
	}
	return answers{strconv.Itoa(res.LowestScore), strconv.Itoa(res.BestPathTiles), res}, nil
}

func solveRAMRun(a *app, r io.Reader) (answers, error) {
	s := &ramrun.Solver{
		Size:   a.cfg.RAMRun.Size,
		Bytes:  a.cfg.RAMRun.Bytes,
		Logger: a.logger.With("puzzle", "ramrun"),
	}
	res, err := s.Solve(r)
	if err != nil {
		return answers{}, err
	}
	return answers{strconv.Itoa(res.MinSteps), res.FirstBlocker, res}, nil
}

func solveRacetrack(a *app, r io.Reader) (answers, error) {
	s := &racetrack.Solver{
		Threshold:  a.cfg.Racetrack.Threshold,
		ShortCheat: a.cfg.Racetrack.ShortCheat,
		LongCheat:  a.cfg.Racetrack.LongCheat,
		Logger:     a.logger.With("puzzle", "racetrack"),
	}
	res, err := s.Solve(r)
	if err != nil {
		return answers{}, err
	}
	return answers{strconv.Itoa(res.ShortCheats), strconv.Itoa(res.LongCheats), res}, nil
}
