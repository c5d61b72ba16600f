package inventory

import "grid-inventory/internal/grid"

// CellView is one grid cell as it should be drawn.
type CellView struct {
	Item   *grid.Item // points into View.Items; nil when free
	Anchor bool       // cell is the occupant's top-left
}

// View is a snapshot of everything a renderer needs. It owns copies of the
// items, so later transitions never change it.
type View struct {
	Width, Height int
	Cells         [][]CellView // [row][col]
	Items         []grid.Item  // placed items, row-major by top-left

	Cursor     grid.Coord
	CursorSize grid.Footprint
	Carried    *grid.Item // nil unless State is StateCarrying
	Legal      bool
	State      State

	Excluded []string
}

// Render returns a snapshot of inv. It does not change any state; calling
// it twice without a transition in between yields equal views.
func Render(inv *Inventory) View {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	g := inv.grid
	v := View{
		Width:      g.Width,
		Height:     g.Height,
		Cells:      make([][]CellView, g.Height),
		Cursor:     inv.cursor.Pos(),
		CursorSize: inv.cursor.Size(),
		Carried:    clone(inv.cursor.Grabbed()),
		Legal:      inv.cursor.Legal(),
		State:      inv.state,
		Excluded:   inv.Excluded(),
	}
	live := g.Items()
	v.Items = make([]grid.Item, len(live))
	index := make(map[*grid.Item]int, len(live))
	for i, it := range live {
		v.Items[i] = *it
		index[it] = i
	}
	for row := 0; row < g.Height; row++ {
		v.Cells[row] = make([]CellView, g.Width)
		for col := 0; col < g.Width; col++ {
			c := grid.Coord{Col: col, Row: row}
			it, _ := g.CellAt(c)
			if it == nil {
				continue
			}
			v.Cells[row][col] = CellView{Item: &v.Items[index[it]], Anchor: it.Pos == c}
		}
	}
	return v
}

// Occupied reports whether cell c of the view holds an item.
func (v View) Occupied(c grid.Coord) bool {
	if c.Row < 0 || c.Row >= v.Height || c.Col < 0 || c.Col >= v.Width {
		return false
	}
	return v.Cells[c.Row][c.Col].Item != nil
}

// UnderCursor reports whether cell c lies inside the cursor's footprint.
func (v View) UnderCursor(c grid.Coord) bool {
	return c.Col >= v.Cursor.Col && c.Col < v.Cursor.Col+v.CursorSize.W &&
		c.Row >= v.Cursor.Row && c.Row < v.Cursor.Row+v.CursorSize.H
}
