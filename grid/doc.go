// Package grid holds the walkability map consumed by the isopath engine.
//
// What:
//
//   - Cell is an integer (X, Y) position; identity by value.
//   - Walkability classifies every cell as Blocked, Walkable or Trigger.
//   - Grid is a rectangular, row-major walkability map owned by the caller.
//   - MapFile decodes YAML scenario files (topology + rows + routes).
//
// Why:
//
//   - Pathfinding only needs a read-only classification per cell, so the engine
//     depends on the small Classifier interface instead of *Grid.
//   - A Trigger cell (a building entrance, a pickup, another hero) is passable
//     only when it is the goal of the current search; see Passable.
//
// Encodings:
//
//   - FromCodes accepts the map generator's integer codes: 0 blocked, 1 walkable, 2 trigger.
//   - Parse accepts ASCII rows: '#' blocked, '.' walkable, 'T' trigger.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCode / ErrUnknownRune: an input cell cannot be classified.
//   - ErrBadRoute: a map file route endpoint is not an (x, y) pair.
//
// Complexity: construction is O(W×H); every lookup is O(1).
package grid
