package planner

import (
	"container/heap"
)

// DijkstraFindPath runs a uniform-cost search from start and stops at the
// first node isGoal accepts. With a nil isGoal every reachable node is
// settled, which makes costSoFar a full distance table.
//
// Unlike AStarFindPath the coster sees no predecessor map; direction-dependent
// costs have to be folded into the node type instead.
func DijkstraFindPath[N comparable](
	start N,
	coster func(src, dst N) float64,
	isGoal NodeIsGoaler[N],
	nGen NeighborGenerator[N],
) (cameFrom map[N]N, costSoFar map[N]float64, final N, found bool) {
	frontier := &NeighborQueue[N]{}
	heap.Push(frontier, &Neighbor[N]{value: start, cost: 0})

	cameFrom = make(map[N]N)
	costSoFar = map[N]float64{start: 0}
	settled := make(map[N]bool)

	for frontier.Len() > 0 {
		item := heap.Pop(frontier).(*Neighbor[N])
		current := item.value
		if settled[current] || item.cost > costSoFar[current] {
			continue
		}
		settled[current] = true

		if isGoal != nil && isGoal(current) {
			return cameFrom, costSoFar, current, true
		}

		for _, node := range nGen(current) {
			newCost := costSoFar[current] + coster(current, node)
			existing, seen := costSoFar[node]
			if seen && newCost >= existing {
				continue
			}
			costSoFar[node] = newCost
			cameFrom[node] = current
			heap.Push(frontier, &Neighbor[N]{value: node, cost: newCost})
		}
	}

	return cameFrom, costSoFar, final, false
}

// PathTo rebuilds the start-first path ending at n from a cameFrom map
// produced by DijkstraFindPath.
func PathTo[N comparable](cameFrom map[N]N, n N) []N {
	return reconstructPath(cameFrom, n)
}
