package render

import "grid-inventory/internal/grid"

// Camera translates between grid cells and screen positions.
// Cell columns are multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int // screen column of cell (0,0)
	OffsetY    int // screen row of cell (0,0)
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera whose cell (0,0) is drawn at (ox, oy).
func NewCamera(ox, oy, viewW, viewH int) *Camera {
	return &Camera{OffsetX: ox, OffsetY: oy, ViewWidth: viewW, ViewHeight: viewH}
}

// CellToScreen converts a grid cell to the screen position of its left column.
// visible is false when the result falls outside the viewport.
func (c *Camera) CellToScreen(cell grid.Coord) (sx, sy int, visible bool) {
	sx = c.OffsetX + cell.Col*2
	sy = c.OffsetY + cell.Row
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToCell converts a screen position to the grid cell drawn there.
func (c *Camera) ScreenToCell(sx, sy int) grid.Coord {
	return grid.Coord{Col: floorDiv(sx-c.OffsetX, 2), Row: sy - c.OffsetY}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
