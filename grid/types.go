package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an unknown cell character in textual input.
	ErrBadCell = errors.New("grid: unknown cell character")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Default dimensions of the row-goal grid.
const (
	DefaultWidth  = 5
	DefaultHeight = 7
)

// Cell characters understood by Parse and produced by Render.
const (
	CellOpen    = '.'
	CellBlocked = '#'
	CellAltWall = 'X'
	CellPath    = 'o'
	CellStart   = 'S'
	CellGoal    = 'G'
)

// Occupancy is a Width×Height obstacle field. blocked is stored row-major,
// blocked[y*Width+x] reports whether (x,y) blocks traversal.
type Occupancy struct {
	Width, Height int
	blocked       []bool
}
