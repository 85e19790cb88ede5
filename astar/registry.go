package astar

import (
	"github.com/katalvlaran/isopath/grid"
	"github.com/katalvlaran/isopath/topology"
)

// node is the search record of one grid cell.
// f is only ever written together with g and h, through setScores and setG.
type node struct {
	g, h, f    float64
	from       int32 // predecessor index; meaningful only when hasFrom
	hasFrom    bool
	dir        topology.Direction
	inFrontier bool
	closed     bool
}

func (n *node) setScores(g, h float64) {
	n.g, n.h = g, h
	n.f = g + h
}

func (n *node) setG(g float64) {
	n.g = g
	n.f = g + n.h
}

// registry is the per-engine arena of search records, one per cell, indexed
// row-major. It is allocated once and reset before every search.
type registry struct {
	width, height int
	nodes         []node
}

func newRegistry(width, height int) *registry {
	r := &registry{
		width:  width,
		height: height,
		nodes:  make([]node, width*height),
	}
	r.reset()

	return r
}

// index maps c to its row-major index.
func (r *registry) index(c grid.Cell) int32 {
	return int32(c.Y*r.width + c.X)
}

// cell converts a row-major index back to a Cell.
func (r *registry) cell(i int32) grid.Cell {
	return grid.Cell{X: int(i) % r.width, Y: int(i) / r.width}
}

// reset puts every record into the unvisited state: no predecessor, no
// direction, zero scores, neither in the frontier nor closed.
func (r *registry) reset() {
	for i := range r.nodes {
		r.nodes[i] = node{dir: topology.DirectionNone}
	}
}

// clearFlags drops the frontier/closed markers left by a finished search.
// Scores and predecessors stay stale until the next reset.
func (r *registry) clearFlags() {
	for i := range r.nodes {
		r.nodes[i].inFrontier = false
		r.nodes[i].closed = false
	}
}

// backtrack follows predecessors from goal to the record without one and
// returns the cells in start-to-goal order, excluding the start.
func (r *registry) backtrack(goal int32) []grid.Cell {
	steps := 0
	for i := goal; r.nodes[i].hasFrom; i = r.nodes[i].from {
		steps++
		if debug {
			invariant(steps <= len(r.nodes), "predecessor cycle through %v", r.cell(i))
		}
	}
	path := make([]grid.Cell, steps)
	for i := goal; r.nodes[i].hasFrom; i = r.nodes[i].from {
		steps--
		path[steps] = r.cell(i)
	}

	return path
}
