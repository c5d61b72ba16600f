package grid

import (
	"fmt"

	"github.com/google/uuid"
)

// Coord is a cell position. Column 0 is the left edge and row 0 the top edge.
type Coord struct {
	Col, Row int
}

// Add returns c shifted by (dc, dr).
func (c Coord) Add(dc, dr int) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Col, c.Row) }

// Footprint is the size of an item in cells.
type Footprint struct {
	W, H int
}

// One is the footprint of a single cell.
var One = Footprint{W: 1, H: 1}

// Valid reports whether both dimensions are at least one cell.
func (f Footprint) Valid() bool { return f.W >= 1 && f.H >= 1 }

// Rotated returns the footprint turned by 90 degrees.
func (f Footprint) Rotated() Footprint { return Footprint{W: f.H, H: f.W} }

func (f Footprint) String() string { return fmt.Sprintf("%dx%d", f.W, f.H) }

// Item is a placeable inventory entry. Pos is meaningful only while the item
// is placed in a grid.
type Item struct {
	ID      string
	Name    string
	Glyph   string
	Size    Footprint
	Pos     Coord
	Carried bool
}

// NewItem creates an item with a fresh identity.
func NewItem(name, glyph string, size Footprint) *Item {
	return &Item{
		ID:    uuid.NewString(),
		Name:  name,
		Glyph: glyph,
		Size:  size,
	}
}

// Rotate swaps the item's width and height.
func (it *Item) Rotate() { it.Size = it.Size.Rotated() }

// Contains reports whether c falls inside the item's footprint at its
// current position.
func (it *Item) Contains(c Coord) bool {
	return c.Col >= it.Pos.Col && c.Col < it.Pos.Col+it.Size.W &&
		c.Row >= it.Pos.Row && c.Row < it.Pos.Row+it.Size.H
}
