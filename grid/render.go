package grid

import "strings"

// Render draws the grid with a path overlay. path holds cell ids in walk
// order: the first is drawn as 'S', the last as 'G', the rest as 'o'.
// Ids outside the grid are ignored. A nil o renders nothing.
//
// Example, 5×3 grid, path 12→7→2:
//
//	..G..
//	#.o##
//	..S..
func (o *Occupancy) Render(path []int) string {
	if o == nil {
		return ""
	}
	canvas := make([][]byte, o.Height)
	for y, row := range o.Rows() {
		canvas[y] = []byte(row)
	}
	total := o.Width * o.Height
	for i, id := range path {
		if id < 0 || id >= total {
			continue
		}
		x, y := o.Coordinate(id)
		switch i {
		case 0:
			canvas[y][x] = CellStart
		case len(path) - 1:
			canvas[y][x] = CellGoal
		default:
			canvas[y][x] = CellPath
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
