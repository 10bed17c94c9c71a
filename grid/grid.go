package grid

import (
	"fmt"
	"strings"
)

// New returns an all-open Occupancy of the given size.
// Returns ErrEmptyGrid if either dimension is not positive.
func New(width, height int) (*Occupancy, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Occupancy{
		Width:   width,
		Height:  height,
		blocked: make([]bool, width*height),
	}, nil
}

// From2D builds an Occupancy from row-major input: rows[y][x].
// The input is copied; later changes to rows do not affect the result.
// Complexity: O(W×H) time and memory.
func From2D(rows [][]bool) (*Occupancy, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	o, _ := New(w, h)
	for y := 0; y < h; y++ {
		copy(o.blocked[y*w:(y+1)*w], rows[y])
	}

	return o, nil
}

// FromColumns builds an Occupancy from column-major input: cols[x][y],
// the layout level editors export as bool[WIDTH, HEIGHT].
func FromColumns(cols [][]bool) (*Occupancy, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(cols), len(cols[0])
	for _, col := range cols {
		if len(col) != h {
			return nil, ErrNonRectangular
		}
	}
	o, _ := New(w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			o.blocked[o.ID(x, y)] = cols[x][y]
		}
	}

	return o, nil
}

// Parse builds an Occupancy from text rows, top row first (y=0).
// '.' is open, '#' and 'X' are blocked. Surrounding spaces are ignored.
func Parse(rows []string) (*Occupancy, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]bool, len(rows))
	for y, raw := range rows {
		line := strings.TrimSpace(raw)
		cells[y] = make([]bool, len(line))
		for x, ch := range line {
			switch ch {
			case CellOpen:
			case CellBlocked, CellAltWall:
				cells[y][x] = true
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, x, y)
			}
		}
	}

	return From2D(cells)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (o *Occupancy) InBounds(x, y int) bool {
	return x >= 0 && x < o.Width && y >= 0 && y < o.Height
}

// ID maps (x,y) to its row-major id: y*Width + x.
// The result is only meaningful for in-bounds coordinates.
func (o *Occupancy) ID(x, y int) int {
	return y*o.Width + x
}

// Coordinate converts a row-major id back to (x,y).
func (o *Occupancy) Coordinate(id int) (x, y int) {
	return id % o.Width, id / o.Width
}

// Blocked reports whether (x,y) blocks traversal. Out-of-bounds cells
// report false; bounds are the caller's concern.
func (o *Occupancy) Blocked(x, y int) bool {
	if !o.InBounds(x, y) {
		return false
	}

	return o.blocked[o.ID(x, y)]
}

// Set marks (x,y) as blocked or open.
func (o *Occupancy) Set(x, y int, blocked bool) error {
	if !o.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, o.Width, o.Height)
	}
	o.blocked[o.ID(x, y)] = blocked

	return nil
}

// BlockedCount returns the number of blocked cells.
func (o *Occupancy) BlockedCount() int {
	n := 0
	for _, b := range o.blocked {
		if b {
			n++
		}
	}

	return n
}

// Rows renders the grid as text rows in Parse format.
func (o *Occupancy) Rows() []string {
	rows := make([]string, o.Height)
	var sb strings.Builder
	for y := 0; y < o.Height; y++ {
		sb.Reset()
		for x := 0; x < o.Width; x++ {
			if o.blocked[o.ID(x, y)] {
				sb.WriteByte(CellBlocked)
			} else {
				sb.WriteByte(CellOpen)
			}
		}
		rows[y] = sb.String()
	}

	return rows
}
