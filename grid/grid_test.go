package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isopath/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]grid.Walkability
		err  error
	}{
		{"EmptyRows", [][]grid.Walkability{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.Walkability{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]grid.Walkability{{grid.Walkable, grid.Walkable}, {grid.Blocked}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]grid.Walkability{
		{grid.Walkable, grid.Blocked},
		{grid.Trigger, grid.Walkable},
	}
	g, err := grid.New(rows)
	require.NoError(t, err)

	rows[0][0] = grid.Blocked
	assert.Equal(t, grid.Walkable, g.Classify(grid.C(0, 0)))
	assert.Equal(t, grid.Trigger, g.Classify(grid.C(0, 1)))
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())
}

func TestFromCodes(t *testing.T) {
	g, err := grid.FromCodes([][]int{
		{1, 0, 2},
		{1, 1, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, grid.Walkable, g.Classify(grid.C(0, 0)))
	assert.Equal(t, grid.Blocked, g.Classify(grid.C(1, 0)))
	assert.Equal(t, grid.Trigger, g.Classify(grid.C(2, 0)))
	assert.Equal(t, grid.Blocked, g.Classify(grid.C(2, 1)))

	_, err = grid.FromCodes([][]int{{1, 3}})
	require.ErrorIs(t, err, grid.ErrUnknownCode)
	_, err = grid.FromCodes([][]int{{1, 1}, {1}})
	require.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestFilled(t *testing.T) {
	g, err := grid.Filled(4, 3, grid.Walkable)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, grid.Walkable, g.Classify(grid.C(x, y)))
		}
	}
	_, err = grid.Filled(0, 3, grid.Walkable)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// ASCII parsing
//----------------------------------------------------------------------------//

func TestParse_RoundTrip(t *testing.T) {
	rows := []string{
		"..#.",
		".T..",
		"##..",
	}
	g, err := grid.Parse(rows)
	require.NoError(t, err)
	assert.Equal(t, grid.Blocked, g.Classify(grid.C(2, 0)))
	assert.Equal(t, grid.Trigger, g.Classify(grid.C(1, 1)))
	assert.Equal(t, "..#.\n.T..\n##..", g.String())
}

func TestParse_Errors(t *testing.T) {
	_, err := grid.Parse(nil)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.Parse([]string{"..", "."})
	require.ErrorIs(t, err, grid.ErrNonRectangular)
	_, err = grid.Parse([]string{".x"})
	require.ErrorIs(t, err, grid.ErrUnknownRune)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { grid.MustParse("..", "?.") })
}

//----------------------------------------------------------------------------//
// Lookups
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g := grid.MustParse(
		"...",
		"...",
	)
	for _, c := range []grid.Cell{grid.C(0, 0), grid.C(2, 1), grid.C(1, 1)} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
		assert.True(t, grid.InBounds(g, c), "grid.InBounds(%v)", c)
	}
	for _, c := range []grid.Cell{grid.C(-1, 0), grid.C(3, 0), grid.C(1, 2), grid.C(2, -1)} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		assert.False(t, grid.InBounds(g, c), "grid.InBounds(%v)", c)
	}
}

func TestIndexCoordinate(t *testing.T) {
	g := grid.MustParse(
		"....",
		"....",
		"....",
	)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.C(x, y)
			idx := g.Index(c)
			require.Equal(t, y*4+x, idx)
			require.Equal(t, c, g.Coordinate(idx))
		}
	}
}

// TestPassable covers the trigger rule: a trigger is passable only as the goal.
func TestPassable(t *testing.T) {
	g := grid.MustParse(
		".#",
		"T.",
	)
	goal := grid.C(1, 1)
	trigger := grid.C(0, 1)

	assert.True(t, grid.Passable(g, grid.C(0, 0), goal))
	assert.False(t, grid.Passable(g, grid.C(1, 0), goal), "blocked")
	assert.False(t, grid.Passable(g, trigger, goal), "trigger that is not the goal")
	assert.True(t, grid.Passable(g, trigger, trigger), "trigger that is the goal")
	assert.False(t, grid.Passable(g, grid.C(2, 0), grid.C(2, 0)), "out of bounds")
}

func TestSet(t *testing.T) {
	g := grid.MustParse("T.")
	require.NoError(t, g.Set(grid.C(0, 0), grid.Walkable))
	assert.Equal(t, grid.Walkable, g.Classify(grid.C(0, 0)))
	require.ErrorIs(t, g.Set(grid.C(5, 0), grid.Blocked), grid.ErrOutOfBounds)
}

func TestWalkabilityString(t *testing.T) {
	assert.Equal(t, "blocked", grid.Blocked.String())
	assert.Equal(t, "walkable", grid.Walkable.String())
	assert.Equal(t, "trigger", grid.Trigger.String())
	assert.Equal(t, "walkability(9)", grid.Walkability(9).String())
	assert.Equal(t, "(3,-1)", grid.C(3, -1).String())
}
