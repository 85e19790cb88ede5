package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular walkability map stored row-major: cells[y*width+x].
// It satisfies Classifier. A Grid is not safe for concurrent mutation; it may be
// shared read-only between any number of engines while no Set is in flight.
type Grid struct {
	width, height int
	cells         []Walkability
}

// New constructs a Grid from rows[y][x]. The input is deep-copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func New(rows [][]Walkability) (*Grid, error) {
	h, w, err := dims(len(rows), func(y int) int { return len(rows[y]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{width: w, height: h, cells: make([]Walkability, w*h)}
	for y := range rows {
		copy(g.cells[y*w:(y+1)*w], rows[y])
	}

	return g, nil
}

// FromCodes constructs a Grid from the map generator's integer codes
// (0 blocked, 1 walkable, 2 trigger), indexed codes[y][x].
func FromCodes(codes [][]int) (*Grid, error) {
	h, w, err := dims(len(codes), func(y int) int { return len(codes[y]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{width: w, height: h, cells: make([]Walkability, w*h)}
	for y, row := range codes {
		for x, code := range row {
			if code < int(Blocked) || code > int(Trigger) {
				return nil, fmt.Errorf("%w: %d at %v", ErrUnknownCode, code, C(x, y))
			}
			g.cells[y*w+x] = Walkability(code)
		}
	}

	return g, nil
}

// Filled returns a width×height grid with every cell set to w.
func Filled(width, height int, w Walkability) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{width: width, height: height, cells: make([]Walkability, width*height)}
	for i := range g.cells {
		g.cells[i] = w
	}

	return g, nil
}

// dims validates a ragged 2D input and returns its height and width.
func dims(n int, rowLen func(y int) int) (h, w int, err error) {
	if n == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	h, w = n, rowLen(0)
	for y := 1; y < h; y++ {
		if rowLen(y) != w {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, rowLen(y), w)
		}
	}

	return h, w, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Classify returns the walkability of c. c must be in bounds.
func (g *Grid) Classify(c Cell) Walkability {
	return g.cells[g.Index(c)]
}

// Set changes the walkability of c, e.g. when a trigger is consumed.
// Must not be called while a search reading this grid is running.
func (g *Grid) Set(c Cell, w Walkability) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.cells[g.Index(c)] = w

	return nil
}

// Index maps c to its row-major index y*Width + x.
func (g *Grid) Index(c Cell) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.width, Y: idx / g.width}
}

// String renders the grid as newline-separated ASCII rows, the inverse of Parse.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			b.WriteByte(runeOf(g.cells[y*g.width+x]))
		}
	}

	return b.String()
}

// InBounds reports whether c lies within [0,Width())×[0,Height()) of g.
func InBounds(g Classifier, c Cell) bool {
	return c.X >= 0 && c.X < g.Width() && c.Y >= 0 && c.Y < g.Height()
}

// Passable reports whether c may be entered during a search for goal:
// c is in bounds and either Walkable, or a Trigger equal to goal.
func Passable(g Classifier, c, goal Cell) bool {
	if !InBounds(g, c) {
		return false
	}
	switch g.Classify(c) {
	case Walkable:
		return true
	case Trigger:
		return c == goal
	default:
		return false
	}
}
