package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and map file decoding.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCode indicates an integer cell code outside {0, 1, 2}.
	ErrUnknownCode = errors.New("grid: unknown walkability code")
	// ErrUnknownRune indicates an ASCII cell outside {'#', '.', 'T'}.
	ErrUnknownRune = errors.New("grid: unknown walkability rune")
	// ErrOutOfBounds indicates a cell outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBadRoute indicates a map file route endpoint that is not an (x, y) pair.
	ErrBadRoute = errors.New("grid: route endpoints must be [x, y] pairs")
)

// Walkability is the passability class of a single cell.
type Walkability uint8

const (
	// Blocked cells are never entered.
	Blocked Walkability = iota
	// Walkable cells can always be entered.
	Walkable
	// Trigger cells can be entered only when they are the goal of the search.
	Trigger
)

// String returns the lowercase class name.
func (w Walkability) String() string {
	switch w {
	case Blocked:
		return "blocked"
	case Walkable:
		return "walkable"
	case Trigger:
		return "trigger"
	default:
		return fmt.Sprintf("walkability(%d)", uint8(w))
	}
}

// Cell is an integer grid position. Cells compare by value.
type Cell struct {
	X, Y int
}

// C is shorthand for Cell{X: x, Y: y}.
func C(x, y int) Cell { return Cell{X: x, Y: y} }

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Classifier is the read-only view of a walkability map the engine depends on.
// Classify is only ever called with cells inside [0,Width())×[0,Height()).
type Classifier interface {
	Width() int
	Height() int
	Classify(c Cell) Walkability
}
