package topology

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/isopath/grid"
)

var (
	// ErrUnknownKind indicates a topology name or Kind value that is not supported.
	ErrUnknownKind = errors.New("topology: unknown kind")
	// ErrBadDimensions indicates a grid with zero or negative width or height.
	ErrBadDimensions = errors.New("topology: grid dimensions must be positive")
	// ErrGridTooLarge indicates width*height does not fit the int32 cell index space.
	ErrGridTooLarge = errors.New("topology: grid has too many cells")
)

// MaxCells is the largest width*height any topology accepts.
const MaxCells = math.MaxInt32

// Direction identifies the edge used to reach a cell. For Isometric it is the
// index into the row-parity offset table.
type Direction int8

const (
	// DirectionNone marks the start of a search; it never equals a real edge direction.
	DirectionNone Direction = -1
	// DirectionUntracked is reported for every Hex edge.
	DirectionUntracked Direction = 0
)

// Neighbor is a reachable adjacent cell and the direction of the edge to it.
type Neighbor struct {
	Cell grid.Cell
	Dir  Direction
}

// Kind selects a Topology implementation.
type Kind int

const (
	// Isometric is the 8-neighbor staggered diamond layout.
	Isometric Kind = iota
	// Hex is the 6-neighbor odd-r hex layout.
	Hex
)

// String returns the canonical name used in map files.
func (k Kind) String() string {
	switch k {
	case Isometric:
		return "isometric"
	case Hex:
		return "hex"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a map file name ("isometric", "iso", "hex") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "isometric", "iso":
		return Isometric, nil
	case "hex":
		return Hex, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Topology is the neighbor strategy an engine is built with.
type Topology interface {
	// Kind reports which layout this is.
	Kind() Kind
	// Validate rejects grid dimensions the layout cannot index.
	Validate(width, height int) error
	// Neighbors appends to dst the passable neighbors of c during a search for
	// goal, in table order, and returns the extended slice.
	Neighbors(g grid.Classifier, c, goal grid.Cell, dst []Neighbor) []Neighbor
	// Heuristic estimates the remaining cost from one cell to another.
	Heuristic(from, to grid.Cell) float64
}

// New returns the Topology for k.
func New(k Kind) (Topology, error) {
	switch k {
	case Isometric:
		return NewIsometric(), nil
	case Hex:
		return NewHex(), nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
}

// offset is a (dx, dy) step.
type offset [2]int

func validateDims(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if int64(width)*int64(height) > MaxCells {
		return fmt.Errorf("%w: %dx%d", ErrGridTooLarge, width, height)
	}

	return nil
}

// appendPassable appends every table offset from c that lands on a passable
// cell. dirs reports whether the table index is used as the Direction.
func appendPassable(g grid.Classifier, c, goal grid.Cell, table []offset, dirs bool, dst []Neighbor) []Neighbor {
	for i, d := range table {
		n := grid.Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !grid.Passable(g, n, goal) {
			continue
		}
		dir := DirectionUntracked
		if dirs {
			dir = Direction(i)
		}
		dst = append(dst, Neighbor{Cell: n, Dir: dir})
	}

	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
