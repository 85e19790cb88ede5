// Package topology defines how cells of a walkability grid connect.
//
// Two interchangeable strategies implement Topology:
//
//   - Isometric: row-offset (staggered) diamond layout, 8 neighbors. Offsets come
//     from one of two fixed tables chosen by row parity; each entry's index
//     (0..7) is the Direction reported for that edge.
//   - Hex: odd-r offset hex layout backed by a square array, 6 neighbors. The
//     3×3 neighborhood is scanned column by column, skipping the center and the
//     two corners that row parity rules out. Directions are not tracked.
//
// Both filter neighbors to in-bounds cells that are Walkable, or a Trigger equal
// to the current goal, and return them in table order. The order only decides
// expansion order between equal-cost neighbors, but it is fixed so searches are
// reproducible.
//
// Heuristics:
//
//   - Hex: exact hex distance (cube coordinates), admissible for unit moves.
//   - Isometric: floor(sqrt(|dx| + |dy|)). Kept as-is; it is not a general
//     admissible estimate for every cost scale, so paths are not guaranteed
//     optimal under it.
//
// Distances and Components run breadth-first searches under either layout:
// move counts from one cell, and the walkable regions of a whole grid.
package topology
