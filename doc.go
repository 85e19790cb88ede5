// Package isopath is a route planner for tile games drawn on isometric and
// hexagonal grids.
//
// 🚀 What is isopath?
//
//	A small, allocation-conscious A* engine that brings together:
//		• Walkability grids: blocked, walkable and trigger cells
//		• Two layouts: 8-neighbor staggered isometric, 6-neighbor odd-r hex
//		• Turn cost: straighter routes win among routes of equal length
//		• YAML map files and a CLI to run and inspect routes
//
// ✨ Why choose isopath?
//
//   - One search record per cell, allocated once and reused by every call
//   - Deterministic: fixed neighbor order and a fixed frontier tie rule
//   - Pluggable layouts through the topology.Topology interface
//   - Hooks (OnExpand) and limits (MaxExpansions) for tooling and tests
//
// Packages:
//
//	grid/         Cell, Walkability, Grid, ASCII parsing and YAML map files
//	topology/     Isometric and Hex neighbor tables and heuristics
//	astar/        Engine: Calculate/Search with turn cost and termination policies
//	cmd/isopath/  CLI: `isopath route` and `isopath check` over map files
//
// Quick ASCII example (isometric, S start, G goal):
//
//	S.
//	*.
//	#*
//	#G
//
// Of the two 3-move routes the one that keeps its heading is returned.
//
//	go get github.com/katalvlaran/isopath
package isopath
