package topology_test

import (
	"fmt"

	"github.com/katalvlaran/isopath/grid"
	"github.com/katalvlaran/isopath/topology"
)

// ExampleNewIsometric lists the neighbors of an even-row cell with the
// direction index of each edge.
func ExampleNewIsometric() {
	g := grid.MustParse(
		"...",
		"...",
		"...",
	)
	for _, n := range topology.NewIsometric().Neighbors(g, grid.C(1, 0), grid.C(0, 0), nil) {
		fmt.Println(n.Dir, n.Cell)
	}
	// Output:
	// 0 (1,2)
	// 1 (0,0)
	// 2 (2,0)
	// 4 (0,1)
	// 5 (1,1)
}

// ExampleHexDistance prints the number of hex steps between two offset cells.
func ExampleHexDistance() {
	fmt.Println(topology.HexDistance(grid.C(0, 0), grid.C(2, 4)))
	// Output: 4
}
