// Package astar finds least-cost routes on isometric and hex walkability grids.
//
// An Engine is built once per grid and topology and answers Calculate(start, goal)
// requests with the ordered cells to walk: the first step after start through
// goal inclusive. An empty path means there is no route (or start == goal); it
// is not an error.
//
// Search model:
//
//   - Every move costs 1. A move whose direction differs from the move that
//     reached the current cell costs an extra TurnPenalty (0.05 by default), so
//     among routes of equal length the straighter one is preferred. The start
//     has no direction, so the first move always pays the penalty.
//   - The open set (frontier) is a sorted sequence ordered by f = g + h. Among
//     entries with equal f, the one inserted last is expanded first.
//   - By default the search stops as soon as the goal is inserted into the
//     frontier (TerminateOnDiscovery), checked after all neighbors of the
//     expanded cell were processed. This is cheaper than waiting for the goal to
//     be expanded but can return a slightly more expensive route in adversarial
//     layouts. TerminateOnExpansion gives the textbook A* stopping rule.
//   - The isometric heuristic floor(sqrt(|dx|+|dy|)) is not admissible for every
//     cost scale; routes are short, not guaranteed optimal.
//
// Memory:
//
//   - One search record per grid cell is allocated in New and reused by every
//     call. Each call resets all records before searching and clears the
//     frontier/closed flags on exit.
//
// Concurrency:
//
//   - An Engine is not safe for concurrent or nested use. Give each goroutine its
//     own Engine; they may share one read-only grid.
//
// Options:
//
//   - WithTurnPenalty(p):     extra cost per direction change (p ≥ 0).
//   - WithMaxExpansions(n):   stop with ErrExpansionLimit after n expansions (0 = unlimited).
//   - WithTermination(t):     TerminateOnDiscovery (default) or TerminateOnExpansion.
//   - WithOnExpand(fn):       called with every expanded cell, in order.
//
// Errors:
//
//   - ErrNilGrid, ErrNilTopology: New was given a nil collaborator.
//   - ErrInvalidCoordinate: start or goal lies outside the grid.
//   - ErrGridResized: the grid's dimensions changed after New.
//   - ErrExpansionLimit: MaxExpansions was reached before the search finished.
//
// Complexity: O(N·(d + N)) worst case for N cells and d neighbors per cell,
// since frontier insertion shifts a slice; in practice the frontier stays small.
// Memory: O(N).
//
// Build with -tags isopath_debug to turn internal invariant checks into panics.
package astar
