// Package cursor tracks the selector that moves over an inventory grid.
package cursor

import (
	"grid-inventory/internal/grid"
	"grid-inventory/internal/placement"
)

// Direction is a unit step on the grid.
type Direction struct {
	DC, DR int
}

// Unit steps. Up decreases the row.
var (
	Up    = Direction{DC: 0, DR: -1}
	Down  = Direction{DC: 0, DR: 1}
	Left  = Direction{DC: -1, DR: 0}
	Right = Direction{DC: 1, DR: 0}
)

// Cursor is a clamped position over a grid. When empty-handed it shows a
// 1x1 probe or locks onto the item under it (the hovered item); when
// carrying it shows the carried item's footprint. Hovered and grabbed are
// never set at the same time.
type Cursor struct {
	grid    *grid.Grid
	engine  *placement.Engine
	pos     grid.Coord
	size    grid.Footprint
	hovered *grid.Item
	grabbed *grid.Item
	legal   bool
}

// New creates a cursor at the origin of the engine's grid.
func New(engine *placement.Engine) *Cursor {
	return &Cursor{
		grid:   engine.Grid(),
		engine: engine,
		size:   grid.One,
		legal:  true,
	}
}

// Pos returns the top-left cell of the displayed footprint.
func (c *Cursor) Pos() grid.Coord { return c.pos }

// Size returns the displayed footprint.
func (c *Cursor) Size() grid.Footprint { return c.size }

// Hovered returns the item the cursor is locked onto, if any.
func (c *Cursor) Hovered() *grid.Item { return c.hovered }

// Grabbed returns the carried item, if any.
func (c *Cursor) Grabbed() *grid.Item { return c.grabbed }

// Carrying reports whether an item follows the cursor.
func (c *Cursor) Carrying() bool { return c.grabbed != nil }

// Legal reports whether the carried item could be dropped at the current
// position, as of the last check. It is always true when empty-handed.
func (c *Cursor) Legal() bool { return c.legal }

// Move steps the cursor in d and refreshes the hover state.
//
// Empty-handed over an item, moving right or down jumps by the item's width
// or height so the cursor leaves the item in one step; moving left or up
// steps one cell. Otherwise every move is one cell. The target is clamped
// so the displayed footprint stays inside the grid.
func (c *Cursor) Move(d Direction) {
	target := c.pos
	if c.hovered != nil && c.grabbed == nil {
		h := c.hovered
		switch {
		case d.DC > 0:
			if target.Col+h.Size.W < c.grid.Width {
				target.Col += h.Size.W
			}
		case d.DC < 0:
			target.Col += d.DC
		}
		switch {
		case d.DR > 0:
			if target.Row+h.Size.H < c.grid.Height {
				target.Row += h.Size.H
			}
		case d.DR < 0:
			target.Row += d.DR
		}
	} else {
		target = target.Add(d.DC, d.DR)
	}
	c.pos = c.clamp(target, c.probe())
	c.RefreshHover()
	if c.grabbed != nil {
		c.CheckLegal()
	}
}

// RefreshHover recomputes what the cursor shows. Empty-handed, the cursor
// locks onto the item under its top-left cell by taking the item's footprint
// and snapping to its top-left; with nothing underneath it shows a 1x1
// probe. When carrying it shows the carried footprint.
func (c *Cursor) RefreshHover() {
	if c.grabbed != nil {
		c.hovered = nil
		c.size = c.grabbed.Size
		return
	}
	it, err := c.grid.CellAt(c.pos)
	if err != nil {
		// clamping keeps the probe inside the grid
		panic(err)
	}
	if it == nil {
		c.hovered = nil
		c.size = grid.One
		return
	}
	c.hovered = it
	c.size = it.Size
	c.pos = it.Pos
}

// RotateCarried turns the carried item, re-clamps the cursor against the new
// footprint and re-checks legality. It reports false, changing nothing, when
// nothing is carried or the turned footprint is larger than the grid.
func (c *Cursor) RotateCarried() bool {
	if c.grabbed == nil {
		return false
	}
	turned := c.grabbed.Size.Rotated()
	if turned.W > c.grid.Width || turned.H > c.grid.Height {
		return false
	}
	c.grabbed.Rotate()
	c.size = c.grabbed.Size
	c.pos = c.clamp(c.pos, c.size)
	c.CheckLegal()
	return true
}

// Attach starts carrying it. The item must already be released from the
// grid; the cursor snaps to the item's last position.
func (c *Cursor) Attach(it *grid.Item) {
	it.Carried = true
	c.grabbed = it
	c.hovered = nil
	c.size = it.Size
	c.pos = c.clamp(it.Pos, it.Size)
	c.CheckLegal()
}

// Detach stops carrying and returns the item that was carried.
func (c *Cursor) Detach() *grid.Item {
	it := c.grabbed
	if it == nil {
		return nil
	}
	it.Carried = false
	c.grabbed = nil
	c.legal = true
	c.RefreshHover()
	return it
}

// CheckLegal recomputes whether the carried footprint can land at the
// current position.
func (c *Cursor) CheckLegal() bool {
	if c.grabbed == nil {
		c.legal = true
		return true
	}
	c.legal = c.engine.RegionFree(c.pos, c.grabbed.Size)
	return c.legal
}

// probe is the footprint the cursor is clamped with while moving: the
// carried footprint, or a single cell when empty-handed.
func (c *Cursor) probe() grid.Footprint {
	if c.grabbed != nil {
		return c.grabbed.Size
	}
	return grid.One
}

// clamp keeps fp anchored at p inside the grid. A footprint larger than the
// grid on an axis is pinned to 0 on that axis.
func (c *Cursor) clamp(p grid.Coord, fp grid.Footprint) grid.Coord {
	return grid.Coord{
		Col: clampInt(p.Col, 0, c.grid.Width-fp.W),
		Row: clampInt(p.Row, 0, c.grid.Height-fp.H),
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
