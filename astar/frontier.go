package astar

import (
	"slices"
	"sort"
)

// costEpsilon is the tolerance under which two f costs count as equal.
const costEpsilon = 1e-9

// frontier is the open set: registry indices sorted by f. The slice is kept in
// descending order so the lowest f sits at the tail and pops without shifting.
// Membership is tracked by node.inFrontier, not by scanning.
type frontier struct {
	nodes []node
	items []int32
}

func newFrontier(nodes []node) frontier {
	return frontier{nodes: nodes, items: make([]int32, 0, 64)}
}

func (q *frontier) len() int { return len(q.items) }

func (q *frontier) reset() { q.items = q.items[:0] }

// push inserts i at its sorted position. An entry whose f equals existing ones
// lands ahead of that whole run in ascending order, so among ties the most
// recently inserted is popped first.
func (q *frontier) push(i int32) {
	f := q.nodes[i].f
	pos := sort.Search(len(q.items), func(k int) bool {
		return q.nodes[q.items[k]].f < f-costEpsilon
	})
	q.items = slices.Insert(q.items, pos, i)
	q.nodes[i].inFrontier = true
}

// pop removes and returns the entry with the lowest f.
func (q *frontier) pop() int32 {
	last := len(q.items) - 1
	i := q.items[last]
	q.items = q.items[:last]
	q.nodes[i].inFrontier = false

	return i
}

// fix repositions i after its f dropped from oldF. It removes the entry and
// inserts it again, which also applies the tie rule to the new cost.
func (q *frontier) fix(i int32, oldF float64) {
	lo := sort.Search(len(q.items), func(k int) bool {
		return q.nodes[q.items[k]].f <= oldF+costEpsilon
	})
	pos := slices.Index(q.items[lo:], i)
	if pos < 0 {
		pos = slices.Index(q.items, i)
	} else {
		pos += lo
	}
	if debug {
		invariant(pos >= 0, "fix: index %d is not in the frontier", i)
	}
	q.items = slices.Delete(q.items, pos, pos+1)
	q.push(i)
}

// sorted reports whether items are in descending f order, within costEpsilon.
func (q *frontier) sorted() bool {
	for k := 1; k < len(q.items); k++ {
		if q.nodes[q.items[k]].f > q.nodes[q.items[k-1]].f+costEpsilon {
			return false
		}
	}

	return true
}
