package astar

import (
	"fmt"

	"github.com/katalvlaran/isopath/grid"
	"github.com/katalvlaran/isopath/topology"
)

// Engine computes routes on one grid with one topology. It owns a search
// record per cell, reused across calls. An Engine must not be used from more
// than one goroutine at a time.
type Engine struct {
	grid    grid.Classifier
	topo    topology.Topology
	options Options
	reg     *registry
	open    frontier
	scratch []topology.Neighbor
}

// New builds an Engine for g and topo. The grid is referenced, not copied, and
// must not change dimensions afterwards; its cells may change between calls.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. topo must be non-nil (ErrNilTopology).
//  3. topo.Validate(g.Width(), g.Height()) must pass.
//
// Complexity: O(W×H) time and memory.
func New(g grid.Classifier, topo topology.Topology, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if topo == nil {
		return nil, ErrNilTopology
	}
	if err := topo.Validate(g.Width(), g.Height()); err != nil {
		return nil, fmt.Errorf("astar: %v topology: %w", topo.Kind(), err)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := newRegistry(g.Width(), g.Height())

	return &Engine{
		grid:    g,
		topo:    topo,
		options: cfg,
		reg:     reg,
		open:    newFrontier(reg.nodes),
		scratch: make([]topology.Neighbor, 0, topology.IsometricDirections),
	}, nil
}

// Options returns the configuration the engine was built with.
func (e *Engine) Options() Options { return e.options }

// Topology returns the engine's neighbor strategy.
func (e *Engine) Topology() topology.Topology { return e.topo }

// Calculate returns the cells to walk from start to goal: the first step after
// start through goal inclusive. The slice is empty when no route exists or
// start == goal.
func (e *Engine) Calculate(start, goal grid.Cell) ([]grid.Cell, error) {
	res, err := e.Search(start, goal)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs one search and reports the path with its cost and statistics.
// Not finding a route is not an error: Found is false and Path is empty.
func (e *Engine) Search(start, goal grid.Cell) (Result, error) {
	if e.grid.Width() != e.reg.width || e.grid.Height() != e.reg.height {
		return Result{}, fmt.Errorf("%w: built for %dx%d, now %dx%d", ErrGridResized,
			e.reg.width, e.reg.height, e.grid.Width(), e.grid.Height())
	}
	if !grid.InBounds(e.grid, start) {
		return Result{}, fmt.Errorf("%w: start %v", ErrInvalidCoordinate, start)
	}
	if !grid.InBounds(e.grid, goal) {
		return Result{}, fmt.Errorf("%w: goal %v", ErrInvalidCoordinate, goal)
	}
	if start == goal {
		return Result{Path: []grid.Cell{}, Found: true}, nil
	}

	r := runner{
		e:         e,
		goalCell:  goal,
		start:     e.reg.index(start),
		goal:      e.reg.index(goal),
		nodes:     e.reg.nodes,
		penalty:   e.options.TurnPenalty,
		heuristic: e.topo.Heuristic,
	}
	r.init(start)
	defer e.cleanup()

	found, err := r.process()
	if err != nil {
		return Result{Path: []grid.Cell{}, Expanded: r.expanded}, err
	}
	if !found {
		return Result{Path: []grid.Cell{}, Expanded: r.expanded}, nil
	}

	return Result{
		Path:     e.reg.backtrack(r.goal),
		Cost:     r.nodes[r.goal].g,
		Expanded: r.expanded,
		Found:    true,
	}, nil
}

// cleanup leaves the registry ready for the next call.
func (e *Engine) cleanup() {
	e.open.reset()
	e.reg.clearFlags()
}

// runner holds the state of a single search.
type runner struct {
	e         *Engine
	goalCell  grid.Cell
	start     int32
	goal      int32
	nodes     []node
	penalty   float64
	heuristic func(from, to grid.Cell) float64
	expanded  int
}

// init resets every record and seeds the frontier with the start cell.
func (r *runner) init(start grid.Cell) {
	r.e.reg.reset()
	r.e.open.reset()

	s := &r.nodes[r.start]
	s.setScores(0, r.heuristic(start, r.goalCell))
	s.dir = topology.DirectionNone
	r.e.open.push(r.start)
}

// process is the main loop. It reports whether the goal was reached; an empty
// frontier ends the search without error.
func (r *runner) process() (bool, error) {
	opts := r.e.options
	for r.e.open.len() > 0 {
		if opts.MaxExpansions > 0 && r.expanded >= opts.MaxExpansions {
			return false, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.expanded)
		}
		if debug {
			invariant(r.e.open.sorted(), "frontier out of order")
		}

		cur := r.e.open.pop()
		n := &r.nodes[cur]
		if debug {
			invariant(n.f == n.g+n.h, "f != g+h at %v", r.e.reg.cell(cur))
			invariant(!n.closed, "%v expanded twice", r.e.reg.cell(cur))
		}
		n.closed = true
		r.expanded++
		if opts.OnExpand != nil {
			opts.OnExpand(r.e.reg.cell(cur))
		}

		if opts.Termination == TerminateOnExpansion && cur == r.goal {
			return true, nil
		}

		r.relax(cur)

		if opts.Termination == TerminateOnDiscovery && r.nodes[r.goal].inFrontier {
			return true, nil
		}
	}

	return false, nil
}

// relax scores every passable neighbor of cur. New cells enter the frontier;
// cells already there are re-linked to cur when that lowers their f.
func (r *runner) relax(cur int32) {
	e := r.e
	c := &r.nodes[cur]
	e.scratch = e.topo.Neighbors(e.grid, e.reg.cell(cur), r.goalCell, e.scratch[:0])

	for _, nb := range e.scratch {
		i := e.reg.index(nb.Cell)
		n := &r.nodes[i]
		if n.closed {
			continue
		}

		w := 1.0
		if nb.Dir != c.dir {
			w += r.penalty
		}
		g := c.g + w

		if !n.inFrontier {
			n.setScores(g, r.heuristic(nb.Cell, r.goalCell))
			n.from, n.hasFrom = cur, true
			n.dir = nb.Dir
			e.open.push(i)
			continue
		}

		// Already queued: keep the direction it was discovered with.
		if g+n.h < n.f {
			old := n.f
			n.setG(g)
			n.from = cur
			e.open.fix(i, old)
		}
	}
}
