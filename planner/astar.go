package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// ErrEmptyFrontier is the panic value used when the search loop reads the
// minimum of an empty frontier. Reaching it means the loop itself is broken.
var ErrEmptyFrontier = errors.New("planner: frontier is empty")

// NodeCoster returns the cost of the edge src->dst. cameFrom is the live
// predecessor map of the running search, so the cost may depend on how src
// was entered (turn penalties and the like). It must not be modified.
type NodeCoster[N comparable] func(src, dst N, cameFrom map[N]N) float64

// NodeEstimator estimates the remaining cost from n to the goal. It must never
// overestimate for the returned path to be optimal.
type NodeEstimator[N comparable] func(n N) float64

// NeighborGenerator returns the nodes reachable from n by one valid edge.
type NeighborGenerator[N comparable] func(n N) []N

// NodeIsGoaler reports whether the search may stop at n.
type NodeIsGoaler[N comparable] func(n N) bool

// Options tunes a single search call.
type Options struct {
	Logger *slog.Logger
}

type Option func(*Options)

// WithLogger sends per-expansion debug records and a summary line to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// AStarFindPath returns the cheapest path from start to goal, both inclusive.
// An empty result means goal is unreachable; a search from a node to itself
// returns that single node.
//
// A node whose cost improves while it is still queued is queued again with
// its new priority. The older entry stays behind and is harmless when it is
// eventually popped: expanding a node a second time cannot beat costs that
// are already recorded. The frontier is never asked whether a node is
// already queued; OrderedQueue.Contains exists only as collection API.
func AStarFindPath[N comparable](
	start, goal N,
	estimator NodeEstimator[N],
	nGen NeighborGenerator[N],
	coster NodeCoster[N],
	opts ...Option,
) []N {
	o := buildOptions(opts)
	ctx := context.Background()
	debug := o.Logger.Enabled(ctx, slog.LevelDebug)

	costSoFar := map[N]float64{start: 0}
	priority := map[N]float64{start: estimator(start)}
	cameFrom := make(map[N]N)

	frontier := NewOrderedQueue(func(n N) float64 { return priority[n] })
	frontier.Insert(start)

	startTime := time.Now()
	expansions := 0
	for frontier.Len() > 0 {
		current, ok := frontier.PeekMin()
		// Unreachable while the loop guard holds; PeekMin reports an empty
		// queue as (zero, false).
		if !ok {
			panic(fmt.Errorf("%w: peek with %d queued", ErrEmptyFrontier, frontier.Len()))
		}
		if current == goal {
			path := reconstructPath(cameFrom, current)
			o.Logger.Debug("path found",
				"expansions", expansions,
				"cost", costSoFar[current],
				"length", len(path),
				"elapsed", time.Since(startTime),
			)
			return path
		}
		frontier.PopMin()
		expansions++

		for _, n := range nGen(current) {
			tentative := costSoFar[current] + coster(current, n, cameFrom)
			if tentative >= costOf(costSoFar, n) {
				continue
			}
			cameFrom[n] = current
			costSoFar[n] = tentative
			priority[n] = tentative + estimator(n)
			if debug {
				o.Logger.Debug("relaxed",
					"from", fmt.Sprint(current),
					"to", fmt.Sprint(n),
					"cost", tentative,
					"priority", priority[n],
				)
			}
			frontier.Insert(n)
		}
	}

	o.Logger.Debug("no path",
		"expansions", expansions,
		"elapsed", time.Since(startTime),
	)
	return nil
}

func costOf[N comparable](costSoFar map[N]float64, n N) float64 {
	c, ok := costSoFar[n]
	if !ok {
		return math.Inf(1)
	}
	return c
}

// reconstructPath walks cameFrom back from current until it reaches a node
// with no predecessor, then returns the nodes origin-first. The walk is
// bounded by the size of cameFrom so a corrupted map cannot loop forever.
func reconstructPath[N comparable](cameFrom map[N]N, current N) []N {
	path := []N{current}
	for steps := 0; steps < len(cameFrom); steps++ {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	// see: https://github.com/golang/go/wiki/SliceTricks#reversing
	for i := len(path)/2 - 1; i >= 0; i-- {
		opp := len(path) - 1 - i
		path[i], path[opp] = path[opp], path[i]
	}
	return path
}

// PathCost sums coster over consecutive nodes of path. The predecessor map
// handed to coster is rebuilt along the path, so direction-dependent costs
// are charged the same way the search charged them.
func PathCost[N comparable](path []N, coster NodeCoster[N]) float64 {
	cameFrom := make(map[N]N, len(path))
	var total float64
	for i := 1; i < len(path); i++ {
		total += coster(path[i-1], path[i], cameFrom)
		cameFrom[path[i]] = path[i-1]
	}
	return total
}
