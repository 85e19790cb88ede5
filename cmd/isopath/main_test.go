package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isopath/astar"
	"github.com/katalvlaran/isopath/grid"
	"github.com/katalvlaran/isopath/topology"
)

const corridorMap = "testdata/corridor.yaml"

func TestParseCell(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want grid.Cell
		ok   bool
	}{
		{"3,4", grid.C(3, 4), true},
		{" 0 , 12 ", grid.C(0, 12), true},
		{"-1,2", grid.C(-1, 2), true},
		{"3", grid.Cell{}, false},
		{"a,1", grid.Cell{}, false},
		{"1,", grid.Cell{}, false},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseCell(tc.in)
			if !tc.ok {
				assert.ErrorIs(t, err, errBadCell)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWalkLength(t *testing.T) {
	assert.Equal(t, 5, walkLength(5, 0))
	assert.Equal(t, 2, walkLength(5, 2))
	assert.Equal(t, 3, walkLength(3, 8))
}

func TestRunRoute_MapRoutes(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runRoute(&out, routeConfig{mapPath: corridorMap, speed: 2}))

	want := "route (1,0) -> (3,3): 4 steps, cost 4.05, expanded 4\n" +
		"walk [(1,1) (2,2)]\n" +
		"#S###\n" +
		"#*###\n" +
		"##*##\n" +
		"##oG#\n" +
		"\n" +
		"route (1,0) -> (0,0): no path, expanded 5\n"
	assert.Equal(t, want, out.String())
}

func TestRunRoute_ExplicitPair(t *testing.T) {
	var out bytes.Buffer
	err := runRoute(&out, routeConfig{mapPath: corridorMap, from: "1,1", to: "2,3", strict: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "route (1,1) -> (2,3): 2 steps, cost 2.05")
	assert.Contains(t, out.String(), "walk [(2,2) (2,3)]")
}

func TestRunRoute_Errors(t *testing.T) {
	var out bytes.Buffer

	err := runRoute(&out, routeConfig{mapPath: corridorMap, from: "1,1"})
	assert.ErrorIs(t, err, errHalfPair)

	err = runRoute(&out, routeConfig{mapPath: corridorMap, from: "1,1", to: "x"})
	assert.ErrorIs(t, err, errBadCell)

	err = runRoute(&out, routeConfig{mapPath: corridorMap, from: "0,0", to: "9,9"})
	assert.ErrorIs(t, err, astar.ErrInvalidCoordinate)

	err = runRoute(&out, routeConfig{mapPath: corridorMap, speed: -1})
	assert.ErrorIs(t, err, errNegative)

	err = runRoute(&out, routeConfig{mapPath: corridorMap, maxExpansions: 2})
	assert.ErrorIs(t, err, astar.ErrExpansionLimit)

	err = runRoute(&out, routeConfig{mapPath: "testdata/bad_kind.yaml"})
	assert.ErrorIs(t, err, topology.ErrUnknownKind)

	err = runRoute(&out, routeConfig{mapPath: "testdata/missing.yaml"})
	assert.Error(t, err)
}

func TestRunCheck(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCheck(&out, corridorMap))
	want := "testdata/corridor.yaml: ok, hex 5x4, 2 routes, 1 regions\n" +
		"  route 1 (1,0) -> (0,0): unreachable\n"
	assert.Equal(t, want, out.String())

	err := runCheck(&out, "testdata/bad_route.yaml")
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestOverlay_NoPath(t *testing.T) {
	g := grid.MustParse("...", ".#.")
	got := overlay(g, request{start: grid.C(0, 0), goal: grid.C(2, 1)}, nil, 0)
	assert.Equal(t, "S..\n.#G", got)
}

func TestApp_Check(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	err := app.Run(context.Background(), []string{"isopath", "check", "--map", corridorMap})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ok, hex 5x4")
}

func TestApp_Route(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	err := app.Run(context.Background(), []string{
		"isopath", "route", "--map", corridorMap, "--from", "1,0", "--to", "3,3", "--speed", "1",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "walk [(1,1)]")
}
