package topology

import (
	"math"

	"github.com/katalvlaran/isopath/grid"
)

// Offset tables for the staggered isometric layout. Index is the Direction:
// 0 up two rows, 1 left, 2 right, 3 down two rows, then the four diagonals
// (4 and 5 toward +y, 6 and 7 toward -y). Odd rows sit half a cell to the
// right of even rows, so diagonals shift by one column on odd rows.
var (
	isoEven = []offset{
		{0, 2},
		{-1, 0}, {1, 0},
		{0, -2},
		{-1, 1}, {0, 1},
		{-1, -1}, {0, -1},
	}
	isoOdd = []offset{
		{0, 2},
		{-1, 0}, {1, 0},
		{0, -2},
		{0, 1}, {1, 1},
		{0, -1}, {1, -1},
	}
)

// IsometricDirections is the number of distinct isometric edge directions.
const IsometricDirections = 8

// isometric implements Topology for the 8-neighbor staggered layout.
type isometric struct{}

// NewIsometric returns the isometric Topology.
func NewIsometric() Topology { return isometric{} }

func (isometric) Kind() Kind { return Isometric }

func (isometric) Validate(width, height int) error { return validateDims(width, height) }

// Neighbors uses the even or odd table by c.Y parity. Every neighbor carries its
// table index as Direction.
func (isometric) Neighbors(g grid.Classifier, c, goal grid.Cell, dst []Neighbor) []Neighbor {
	table := isoEven
	if c.Y%2 != 0 {
		table = isoOdd
	}

	return appendPassable(g, c, goal, table, true, dst)
}

// Heuristic is floor(sqrt(|dx| + |dy|)).
func (isometric) Heuristic(from, to grid.Cell) float64 {
	s := abs(to.X-from.X) + abs(to.Y-from.Y)

	return math.Floor(math.Sqrt(float64(s)))
}

// IsometricStep returns the cell reached from c by moving in direction d.
// It does not check bounds. d must be in [0, IsometricDirections).
func IsometricStep(c grid.Cell, d Direction) grid.Cell {
	table := isoEven
	if c.Y%2 != 0 {
		table = isoOdd
	}
	o := table[d]

	return grid.Cell{X: c.X + o[0], Y: c.Y + o[1]}
}
