package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned by CellAt for coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidSize is returned by New for non-positive dimensions.
	ErrInvalidSize = errors.New("grid: dimensions must be positive")
)

// Grid is a fixed-size occupancy table. Each cell references at most one
// item; an item occupies exactly the rectangle of its footprint at its
// top-left position. Cells are only written through Occupy and Release.
type Grid struct {
	Width, Height int
	cells         [][]*Item // cells[row][col]
}

// New creates an empty Width x Height grid.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	cells := make([][]*Item, height)
	for row := range cells {
		cells[row] = make([]*Item, width)
	}
	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// CellAt returns the item occupying c, or nil when the cell is empty.
func (g *Grid) CellAt(c Coord) (*Item, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, g.Width, g.Height)
	}
	return g.cells[c.Row][c.Col], nil
}

// Occupy writes it into every cell of its footprint anchored at topLeft.
// The caller must have verified that the region is in bounds and empty.
func (g *Grid) Occupy(it *Item, topLeft Coord) {
	for row := topLeft.Row; row < topLeft.Row+it.Size.H; row++ {
		for col := topLeft.Col; col < topLeft.Col+it.Size.W; col++ {
			g.cells[row][col] = it
		}
	}
}

// Release clears the cells of its current footprint that still reference it.
func (g *Grid) Release(it *Item) {
	for row := it.Pos.Row; row < it.Pos.Row+it.Size.H; row++ {
		for col := it.Pos.Col; col < it.Pos.Col+it.Size.W; col++ {
			if !g.InBounds(Coord{Col: col, Row: row}) {
				continue
			}
			if g.cells[row][col] == it {
				g.cells[row][col] = nil
			}
		}
	}
}

// Items returns the distinct items in the grid, ordered by the row-major
// position of their first cell.
func (g *Grid) Items() []*Item {
	seen := make(map[*Item]bool)
	var out []*Item
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			it := g.cells[row][col]
			if it == nil || seen[it] {
				continue
			}
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

// Free returns the number of empty cells.
func (g *Grid) Free() int {
	n := 0
	for _, row := range g.cells {
		for _, it := range row {
			if it == nil {
				n++
			}
		}
	}
	return n
}
