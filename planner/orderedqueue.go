package planner

import (
	"slices"
	"sort"
)

type orderedEntry[N comparable] struct {
	value N
	key   float64
}

// OrderedQueue keeps its elements sorted ascending by a key function supplied
// at construction. The key of an element is computed once, when it is
// inserted; the queue never re-keys an element afterwards.
//
// The same value may be inserted more than once. OrderedQueue is not safe for
// concurrent use.
type OrderedQueue[N comparable] struct {
	elements []orderedEntry[N]
	key      func(N) float64
}

// NewOrderedQueue returns an empty queue ordered by key.
func NewOrderedQueue[N comparable](key func(N) float64) *OrderedQueue[N] {
	return &OrderedQueue[N]{key: key}
}

// Insert places item after every element with a strictly smaller key. Finding
// the slot is a binary search; making room for it is a linear shift.
func (oq *OrderedQueue[N]) Insert(item N) {
	k := oq.key(item)
	idx := sort.Search(len(oq.elements), func(i int) bool {
		return oq.elements[i].key >= k
	})
	oq.elements = slices.Insert(oq.elements, idx, orderedEntry[N]{value: item, key: k})
}

// PeekMin returns the element with the smallest key without removing it.
func (oq *OrderedQueue[N]) PeekMin() (N, bool) {
	if len(oq.elements) == 0 {
		var zero N
		return zero, false
	}
	return oq.elements[0].value, true
}

// PopMin removes and returns the element with the smallest key.
func (oq *OrderedQueue[N]) PopMin() (N, bool) {
	if len(oq.elements) == 0 {
		var zero N
		return zero, false
	}
	item := oq.elements[0].value
	oq.elements[0] = orderedEntry[N]{}
	oq.elements = oq.elements[1:]
	return item, true
}

// Contains reports whether some element equals item. It compares values, not
// keys, and scans the whole queue.
func (oq *OrderedQueue[N]) Contains(item N) bool {
	for _, e := range oq.elements {
		if e.value == item {
			return true
		}
	}
	return false
}

func (oq *OrderedQueue[N]) Len() int { return len(oq.elements) }
