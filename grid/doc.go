// Package grid models the fixed-size occupancy grid consumed by the
// row-goal pathfinder in package astar.
//
// What:
//
//   - Occupancy wraps a Width×Height field of booleans; true marks a cell
//     that blocks traversal.
//   - Cells are addressed by (x,y) or by a single row-major id y*Width + x.
//   - Grids can be built from row-major slices (From2D), from the
//     column-major [x][y] layout used by level editors (FromColumns), or
//     from text rows (Parse).
//   - Render draws an occupancy grid with a path overlay as ASCII.
//
// Layout:
//
//	y=0  . . . . .   <- goal row
//	y=1  . # # # .
//	...
//	y=H-1 . . S . .
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: Parse met a character other than '.', '#' or 'X'.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//
// Thread safety: Occupancy is not synchronised. Mutating it with Set while
// a search reads it is a data race; callers serialise access.
package grid
