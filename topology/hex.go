package topology

import "github.com/katalvlaran/isopath/grid"

// Hex neighbor tables: the 3×3 block around a cell scanned with dx as the outer
// loop and dy as the inner one, center removed. Even rows drop the two corners
// at dx=+1, odd rows drop the two at dx=-1 (odd rows are shifted right).
var (
	hexEven = []offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, 0},
	}
	hexOdd = []offset{
		{-1, 0},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

type hex struct{}

// NewHex returns the hex Topology.
func NewHex() Topology { return hex{} }

func (hex) Kind() Kind { return Hex }

func (hex) Validate(width, height int) error { return validateDims(width, height) }

// Neighbors reports DirectionUntracked for every edge, so in hex mode the turn
// penalty is only ever paid on the first move out of the start.
func (hex) Neighbors(g grid.Classifier, c, goal grid.Cell, dst []Neighbor) []Neighbor {
	table := hexEven
	if c.Y%2 != 0 {
		table = hexOdd
	}

	return appendPassable(g, c, goal, table, false, dst)
}

// Heuristic is the hex distance between two odd-r offset cells.
func (hex) Heuristic(from, to grid.Cell) float64 {
	return float64(HexDistance(from, to))
}

// HexDistance converts odd-r offset coordinates to cube coordinates and returns
// (|dq| + |dr| + |dq+dr|) / 2.
func HexDistance(a, b grid.Cell) int {
	aq, ar := axial(a)
	bq, br := axial(b)
	dq, dr := aq-bq, ar-br

	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// axial returns the axial (q, r) of an odd-r offset cell.
func axial(c grid.Cell) (q, r int) {
	return c.X - (c.Y-(c.Y&1))/2, c.Y
}
