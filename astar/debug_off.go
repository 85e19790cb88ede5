//go:build !isopath_debug

package astar

const debug = false
