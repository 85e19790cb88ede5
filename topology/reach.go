package topology

import "github.com/katalvlaran/isopath/grid"

// Unreached marks a cell that Distances or Components never visited.
const Unreached = -1

// noGoal is outside every grid, so triggers are never entered.
var noGoal = grid.Cell{X: -1, Y: -1}

// Distances runs a breadth-first search from start and returns, per cell in
// row-major order, the minimum number of moves to reach it, or Unreached.
// goal only decides which trigger may be entered, as in Neighbors; a reached
// trigger ends its branch. Returns nil if start is outside g.
//
// Time:   O(W·H·d), d = 6 or 8.
// Memory: O(W·H).
func Distances(g grid.Classifier, t Topology, start, goal grid.Cell) []int {
	if !grid.InBounds(g, start) {
		return nil
	}
	w := g.Width()
	dist := make([]int, w*g.Height())
	for i := range dist {
		dist[i] = Unreached
	}

	dist[start.Y*w+start.X] = 0
	queue := []grid.Cell{start}
	var buf []Neighbor
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if qi > 0 && g.Classify(u) == grid.Trigger {
			continue
		}
		du := dist[u.Y*w+u.X]
		buf = t.Neighbors(g, u, goal, buf[:0])
		for _, n := range buf {
			vi := n.Cell.Y*w + n.Cell.X
			if dist[vi] == Unreached {
				dist[vi] = du + 1
				queue = append(queue, n.Cell)
			}
		}
	}

	return dist
}

// Components labels the walkable regions of g: cells that can reach each
// other under t share a label in [0, count). Blocked and trigger cells are
// labelled Unreached. Labels are assigned in row-major order of each region's
// first cell.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func Components(g grid.Classifier, t Topology) (labels []int, count int) {
	w, h := g.Width(), g.Height()
	labels = make([]int, w*h)
	for i := range labels {
		labels[i] = Unreached
	}

	var (
		queue []grid.Cell
		buf   []Neighbor
	)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grid.Cell{X: x, Y: y}
			if labels[y*w+x] != Unreached || g.Classify(c) != grid.Walkable {
				continue
			}
			labels[y*w+x] = count
			queue = append(queue[:0], c)
			for qi := 0; qi < len(queue); qi++ {
				buf = t.Neighbors(g, queue[qi], noGoal, buf[:0])
				for _, n := range buf {
					vi := n.Cell.Y*w + n.Cell.X
					if labels[vi] == Unreached {
						labels[vi] = count
						queue = append(queue, n.Cell)
					}
				}
			}
			count++
		}
	}

	return labels, count
}
