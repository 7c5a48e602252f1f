package planner

// A Neighbor is something we manage in a neighbor-priority queue.
type Neighbor[N comparable] struct {
	value N       // The node this entry refers to.
	cost  float64 // The cost of reaching value when the entry was pushed.
	// The index is maintained by the heap.Interface methods.
	index int
}

// A NeighborQueue implements heap.Interface and holds Neighbors. Stale
// entries are left in place; callers skip them when popped.
type NeighborQueue[N comparable] []*Neighbor[N]

func (nq NeighborQueue[N]) Len() int { return len(nq) }

func (nq NeighborQueue[N]) Less(i, j int) bool {
	// We want Pop to give us the lowest, not highest, cost so we use lesser than here.
	return nq[i].cost < nq[j].cost
}

func (nq NeighborQueue[N]) Swap(i, j int) {
	nq[i], nq[j] = nq[j], nq[i]
	nq[i].index = i
	nq[j].index = j
}

func (nq *NeighborQueue[N]) Push(x any) {
	n := len(*nq)
	item := x.(*Neighbor[N])
	item.index = n
	*nq = append(*nq, item)
}

func (nq *NeighborQueue[N]) Pop() any {
	old := *nq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1 // for safety
	*nq = old[0 : n-1]
	return item
}
