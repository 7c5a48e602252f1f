package planner_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayotte/gridpaths/grid"
	"github.com/sayotte/gridpaths/planner"
)

// field is a w×h board with impassable cells.
type field struct {
	w, h  int
	walls map[grid.Position]bool
}

func newField(w, h int, walls ...grid.Position) field {
	f := field{w: w, h: h, walls: make(map[grid.Position]bool)}
	for _, p := range walls {
		f.walls[p] = true
	}
	return f
}

func (f field) neighbors(p grid.Position) []grid.Position {
	var out []grid.Position
	for _, d := range grid.OrthogonalDirections {
		n := p.Add(d)
		if n.X < 0 || n.Y < 0 || n.X >= f.w || n.Y >= f.h || f.walls[n] {
			continue
		}
		out = append(out, n)
	}
	return out
}

func manhattanTo(goal grid.Position) planner.NodeEstimator[grid.Position] {
	return func(p grid.Position) float64 { return float64(p.Manhattan(goal)) }
}

func unitCost(_, _ grid.Position, _ map[grid.Position]grid.Position) float64 { return 1 }

// turnCost charges 1 for a step straight ahead and 1001 for a step that
// changes direction. A node with no predecessor faces East.
func turnCost(src, dst grid.Position, cameFrom map[grid.Position]grid.Position) float64 {
	facing := grid.East
	if prev, ok := cameFrom[src]; ok {
		facing = src.Sub(prev)
	}
	if dst.Sub(src) == facing {
		return 1
	}
	return 1001
}

func assertContiguous(t *testing.T, path []grid.Position) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Manhattan(path[i]), "step %d: %s -> %s", i, path[i-1], path[i])
	}
}

func TestAStarFindPath_Grids(t *testing.T) {
	t.Parallel()

	// column x=2 is walled except for its bottom cell
	column := []grid.Position{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}

	testCases := map[string]struct {
		f           field
		start, goal grid.Position
		nodes       int
		avoid       []grid.Position
	}{
		"open 5x5": {
			f:     newField(5, 5),
			start: grid.Position{X: 0, Y: 0},
			goal:  grid.Position{X: 4, Y: 4},
			nodes: 9,
		},
		"single wall in the middle": {
			f:     newField(5, 5, grid.Position{X: 2, Y: 2}),
			start: grid.Position{X: 0, Y: 0},
			goal:  grid.Position{X: 4, Y: 4},
			nodes: 9,
			avoid: []grid.Position{{X: 2, Y: 2}},
		},
		"wall forces a detour": {
			f:     newField(5, 5, column...),
			start: grid.Position{X: 0, Y: 0},
			goal:  grid.Position{X: 4, Y: 0},
			nodes: 13,
			avoid: column,
		},
		"start is goal": {
			f:     newField(5, 5),
			start: grid.Position{X: 3, Y: 1},
			goal:  grid.Position{X: 3, Y: 1},
			nodes: 1,
		},
	}

	for testName, tc := range testCases {
		t.Run(testName, func(t *testing.T) {
			path := planner.AStarFindPath(tc.start, tc.goal, manhattanTo(tc.goal), tc.f.neighbors, unitCost)
			require.Len(t, path, tc.nodes)
			assert.Equal(t, tc.start, path[0])
			assert.Equal(t, tc.goal, path[len(path)-1])
			assertContiguous(t, path)
			assert.Equal(t, float64(tc.nodes-1), planner.PathCost(path, unitCost))
			for _, p := range tc.avoid {
				assert.NotContains(t, path, p)
			}
		})
	}
}

func TestAStarFindPath_NoPath(t *testing.T) {
	t.Parallel()
	testCases := map[string]struct {
		f     field
		start grid.Position
		goal  grid.Position
	}{
		"goal boxed in": {
			f:     newField(5, 5, grid.Position{X: 3, Y: 4}, grid.Position{X: 4, Y: 3}),
			start: grid.Position{X: 0, Y: 0},
			goal:  grid.Position{X: 4, Y: 4},
		},
		"start boxed in": {
			f:     newField(5, 5, grid.Position{X: 1, Y: 0}, grid.Position{X: 0, Y: 1}),
			start: grid.Position{X: 0, Y: 0},
			goal:  grid.Position{X: 4, Y: 4},
		},
		"goal outside the board": {
			f:     newField(3, 3),
			start: grid.Position{X: 0, Y: 0},
			goal:  grid.Position{X: 7, Y: 7},
		},
	}
	for testName, tc := range testCases {
		t.Run(testName, func(t *testing.T) {
			path := planner.AStarFindPath(tc.start, tc.goal, manhattanTo(tc.goal), tc.f.neighbors, unitCost)
			assert.Empty(t, path)
		})
	}
}

// Eight cells joined in a ring. Going clockwise from (0,0) reaches (1,2) in
// three steps but turns at every one of them; going the other way takes five
// steps with only two turns, which is cheaper.
//
//	S──(1,0)──(2,0)
//	│           │
//	(0,1)─(1,1) (2,1)
//	       │    │
//	      (1,2)─(2,2)
func TestAStarFindPath_TurnPenaltyPrefersFewerTurns(t *testing.T) {
	t.Parallel()
	ring := []grid.Position{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 0},
	}
	adj := make(map[grid.Position][]grid.Position)
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		adj[p] = append(adj[p], q)
		adj[q] = append(adj[q], p)
	}
	start, goal := grid.Position{X: 0, Y: 0}, grid.Position{X: 1, Y: 2}

	path := planner.AStarFindPath(start, goal, manhattanTo(goal),
		func(p grid.Position) []grid.Position { return adj[p] },
		turnCost,
	)

	expected := []grid.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	assert.Equal(t, expected, path)
	assert.Equal(t, 2005.0, planner.PathCost(path, turnCost))
	assert.Equal(t, 3003.0, planner.PathCost(ring[:4], turnCost))
}

func TestAStarFindPath_Deterministic(t *testing.T) {
	t.Parallel()
	f := newField(8, 8, grid.Position{X: 3, Y: 3}, grid.Position{X: 4, Y: 3}, grid.Position{X: 3, Y: 4})
	goal := grid.Position{X: 7, Y: 6}

	first := planner.AStarFindPath(grid.Position{}, goal, manhattanTo(goal), f.neighbors, unitCost)
	require.NotEmpty(t, first)
	for i := 0; i < 5; i++ {
		again := planner.AStarFindPath(grid.Position{}, goal, manhattanTo(goal), f.neighbors, unitCost)
		require.Equal(t, first, again, "run %d", i)
	}
}

func TestAStarFindPath_LogsWhenAsked(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := newField(3, 3)
	goal := grid.Position{X: 2, Y: 2}

	path := planner.AStarFindPath(grid.Position{}, goal, manhattanTo(goal), f.neighbors, unitCost, planner.WithLogger(logger))
	require.Len(t, path, 5)
	assert.Contains(t, buf.String(), "relaxed")
	assert.Contains(t, buf.String(), "path found")
}

func TestPathCost_ShortPaths(t *testing.T) {
	t.Parallel()
	assert.Zero(t, planner.PathCost[grid.Position](nil, unitCost))
	assert.Zero(t, planner.PathCost([]grid.Position{{X: 1, Y: 1}}, turnCost))
	assert.Equal(t, 1001.0, planner.PathCost([]grid.Position{{X: 0, Y: 0}, {X: 0, Y: 1}}, turnCost))
}

func ExampleAStarFindPath() {
	f := newField(5, 5, grid.Position{X: 1, Y: 0}, grid.Position{X: 1, Y: 1}, grid.Position{X: 1, Y: 2})
	goal := grid.Position{X: 2, Y: 0}

	path := planner.AStarFindPath(grid.Position{}, goal, manhattanTo(goal), f.neighbors, unitCost)
	fmt.Println(len(path)-1, "steps")
	fmt.Println(path[3])
	// Output:
	// 8 steps
	// (0, 3)
}
