// Package render draws an inventory snapshot onto a tcell screen.
package render

import (
	"grid-inventory/assets"
	"grid-inventory/internal/grid"
	"grid-inventory/internal/inventory"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	gridTop  = 2 // title row plus the top border
	gridLeft = 1 // left border
	emptyDot = "·"
)

// Renderer draws inventory views onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	palette Palette
	tiles   OverlayTiles
	debug   bool
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{
		screen:  screen,
		palette: DefaultPalette,
		tiles:   DefaultOverlay,
	}
	r.Resize()
	return r
}

// SetPalette replaces the colors used for subsequent frames.
func (r *Renderer) SetPalette(p Palette) { r.palette = p }

// SetDebug turns the occupancy overlay on or off.
func (r *Renderer) SetDebug(on bool) { r.debug = on }

// Debug reports whether the occupancy overlay is drawn.
func (r *Renderer) Debug() bool { return r.debug }

// Resize recomputes the viewport after the screen size changed.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(gridLeft, gridTop, w, h)
}

// Camera returns the camera used for the main grid.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame clears the screen and draws the title, the grid, its items, the
// cursor and, in debug mode, the occupancy overlay. It does not call Show.
func (r *Renderer) DrawFrame(v inventory.View) {
	r.screen.Clear()
	r.drawText(0, 0, assets.Title, tcell.StyleDefault.Foreground(r.palette.Text).Bold(true))
	r.drawBox(gridLeft-1, gridTop-1, v.Width*2+2, v.Height+2)
	r.drawCells(v)
	r.drawCarried(v)
	if r.debug {
		r.drawOverlay(v)
	}
}

// drawCells draws every cell. Item glyphs go on the item's top-left cell;
// the rest of its footprint is filled with the item's color.
func (r *Renderer) drawCells(v inventory.View) {
	for row := 0; row < v.Height; row++ {
		for col := 0; col < v.Width; col++ {
			c := grid.Coord{Col: col, Row: row}
			sx, sy, onScreen := r.camera.CellToScreen(c)
			if !onScreen {
				continue
			}
			cell := v.Cells[row][col]
			style := tcell.StyleDefault.Foreground(r.palette.EmptyFG).Background(r.palette.EmptyBG)
			glyph := emptyDot
			if cell.Item != nil {
				style = style.Background(r.palette.ItemColor(cell.Item.ID))
				glyph = " "
				if cell.Anchor {
					glyph = cell.Item.Glyph
				}
			}
			if v.Carried == nil && v.UnderCursor(c) {
				style = style.Background(r.palette.Cursor)
			}
			r.putCell(sx, sy, glyph, style)
		}
	}
}

// drawCarried draws the carried item over the cells under the cursor, in
// the blocked color when it cannot be dropped there.
func (r *Renderer) drawCarried(v inventory.View) {
	if v.Carried == nil {
		return
	}
	bg := r.palette.Cursor
	if !v.Legal {
		bg = r.palette.CursorBlocked
	}
	style := tcell.StyleDefault.Foreground(r.palette.Text).Background(bg)
	for row := 0; row < v.CursorSize.H; row++ {
		for col := 0; col < v.CursorSize.W; col++ {
			c := v.Cursor.Add(col, row)
			sx, sy, onScreen := r.camera.CellToScreen(c)
			if !onScreen {
				continue
			}
			glyph := " "
			if col == 0 && row == 0 {
				glyph = v.Carried.Glyph
			}
			r.putCell(sx, sy, glyph, style)
		}
	}
}

// drawOverlay draws the occupancy map to the right of the grid: one tile per
// cell, free or occupied, with the carried footprint marked.
func (r *Renderer) drawOverlay(v inventory.View) {
	w, h := r.screen.Size()
	cam := NewCamera(OverlayLeft(v.Width), gridTop, w, h)
	r.drawBox(cam.OffsetX-1, gridTop-1, v.Width*2+2, v.Height+2)
	for row := 0; row < v.Height; row++ {
		for col := 0; col < v.Width; col++ {
			c := grid.Coord{Col: col, Row: row}
			sx, sy, onScreen := cam.CellToScreen(c)
			if !onScreen {
				continue
			}
			glyph := r.tiles.Free
			switch {
			case v.Occupied(c):
				glyph = r.tiles.Occupied
			case v.Carried != nil && v.UnderCursor(c):
				glyph = r.tiles.Carried
			}
			r.putGlyph(sx, sy, glyph, tcell.StyleDefault)
		}
	}
}

// OverlayLeft returns the screen column of the overlay's cell (0,0) for a
// grid of the given width.
func OverlayLeft(gridWidth int) int { return gridLeft + gridWidth*2 + 3 }

// putCell draws a glyph into a two-column cell, padding narrow glyphs so the
// background covers both columns.
func (r *Renderer) putCell(x, y int, glyph string, style tcell.Style) {
	r.putGlyph(x, y, glyph, style)
	if runewidth.StringWidth(glyph) < 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
