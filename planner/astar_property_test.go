package planner_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/sayotte/gridpaths/grid"
	"github.com/sayotte/gridpaths/planner"
)

const boardSide = 6

// terrain is a boardSide×boardSide board in row-major order. A zero cell is a
// wall; any other value is the cost of stepping onto that cell.
type terrain []int

func (tr terrain) at(p grid.Position) int {
	if p.X < 0 || p.Y < 0 || p.X >= boardSide || p.Y >= boardSide {
		return 0
	}
	return tr[p.Y*boardSide+p.X]
}

func (tr terrain) neighbors(p grid.Position) []grid.Position {
	var out []grid.Position
	for _, d := range grid.OrthogonalDirections {
		if n := p.Add(d); tr.at(n) > 0 {
			out = append(out, n)
		}
	}
	return out
}

func (tr terrain) cost(_, dst grid.Position) float64 { return float64(tr.at(dst)) }

func TestAStarFindPathProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(8128)
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	start := grid.Position{X: 0, Y: 0}
	goal := grid.Position{X: boardSide - 1, Y: boardSide - 1}
	genTerrain := gen.SliceOfN(boardSide*boardSide, gen.IntRange(0, 6))

	properties.Property("path cost matches Dijkstra", prop.ForAll(
		func(cells []int) bool {
			tr := terrain(cells)
			tr[0], tr[len(tr)-1] = 1, 1

			_, dist, _, reachable := planner.DijkstraFindPath(
				start, tr.cost,
				func(p grid.Position) bool { return p == goal },
				tr.neighbors,
			)
			path := planner.AStarFindPath(start, goal,
				func(p grid.Position) float64 { return float64(p.Manhattan(goal)) },
				tr.neighbors,
				func(src, dst grid.Position, _ map[grid.Position]grid.Position) float64 { return tr.cost(src, dst) },
			)

			if !reachable {
				return len(path) == 0
			}
			if len(path) == 0 || path[0] != start || path[len(path)-1] != goal {
				return false
			}
			for i := 1; i < len(path); i++ {
				if path[i-1].Manhattan(path[i]) != 1 || tr.at(path[i]) == 0 {
					return false
				}
			}
			got := planner.PathCost(path, func(src, dst grid.Position, _ map[grid.Position]grid.Position) float64 {
				return tr.cost(src, dst)
			})
			return got == dist[goal]
		},
		genTerrain,
	))

	properties.Property("self path is a single node", prop.ForAll(
		func(x, y int) bool {
			p := grid.Position{X: x, Y: y}
			path := planner.AStarFindPath(p, p,
				func(grid.Position) float64 { return 0 },
				func(grid.Position) []grid.Position { return nil },
				func(_, _ grid.Position, _ map[grid.Position]grid.Position) float64 { return 1 },
			)
			return len(path) == 1 && path[0] == p
		},
		gen.IntRange(-100, 100),
		gen.IntRange(-100, 100),
	))

	properties.TestingRun(t)
}
