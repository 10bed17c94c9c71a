// Package astar implements a best-first search that finds a minimum-cost
// path from a start cell to any cell of row 0 on a fixed-size,
// 4-connected occupancy grid.
//
// Overview:
//
//   - Pathfinder owns the grid dimensions and an injected *grid.Occupancy.
//   - FindPath seeds a frontier with the start cell, repeatedly settles the
//     lowest-F entry, expands its neighbours (left, up, right, down) and
//     stops as soon as a row-0 cell is admitted.
//   - The path is rebuilt by walking ParentID links through the settled set.
//
// Costs:
//
//   - Every step costs 1 (G).
//   - H is the row index of the cell, tracked incrementally: unchanged for
//     lateral moves, -1 moving up, +1 moving down. With unit costs and
//     4-connectivity this estimate is admissible and consistent. Adding
//     diagonal moves would break that coupling.
//   - F = G + H orders the frontier; ties go to the most recently inserted
//     entry.
//
// Admission rule, applied to every candidate in this order:
//
//  1. Row 0: the goal is found and the candidate is committed to the
//     settled set immediately.
//  2. Already settled: discard.
//  3. Blocked: discard. By default rows 0 and Height-1 are exempt from the
//     obstacle test; WithStrictObstacles checks every row, before step 1.
//  4. Already in the frontier: if the candidate is cheaper the existing
//     entry is updated in place (see ParentUpdateMode), otherwise discard.
//  5. Otherwise push onto the frontier.
//
// Errors (sentinel):
//
//   - ErrPathNotFound:      frontier exhausted without reaching row 0.
//   - ErrInvalidCoordinate: start outside the grid.
//   - ErrGridDimensions:    occupancy grid size differs from the pathfinder's.
//   - ErrBrokenParentChain: reconstruction could not walk back to the start.
//   - ErrOptionViolation:   an Option was given an invalid value.
//
// Complexity:
//
//   - Time:  O(V log V), V = Width*Height; each cell is pushed and popped at
//     most once, updates cost O(log V).
//   - Space: O(V) for the frontier, its id index and the settled set.
//
// Thread safety:
//
//   - A search is synchronous and keeps all frontier/settled state local to
//     the call. The occupancy grid is shared with the caller and must not be
//     mutated while FindPath runs.
package astar
