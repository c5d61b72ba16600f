package render

import (
	"fmt"
	"strings"

	"grid-inventory/assets"
	"grid-inventory/internal/inventory"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// messageLines is how many log messages the HUD shows.
const messageLines = 3

// HUDTop returns the first screen row below a grid of the given height.
func HUDTop(gridHeight int) int { return gridTop + gridHeight + 1 }

// DrawHUD renders the status line, exclusions, key help and the message log
// below the grid, then shows the screen.
func (r *Renderer) DrawHUD(v inventory.View, messages []string, showHelp bool) {
	y := HUDTop(v.Height)
	r.drawHLine(y, r.palette.Frame)
	y++

	r.drawText(0, y, StatusLine(v), tcell.StyleDefault.Foreground(r.palette.Text))
	y++

	if len(v.Excluded) > 0 {
		text := "Did not fit: " + strings.Join(v.Excluded, ", ")
		r.drawText(0, y, text, tcell.StyleDefault.Foreground(r.palette.CursorBlocked))
		y++
	}

	if showHelp {
		for _, line := range assets.HelpLines {
			r.drawText(0, y, line, tcell.StyleDefault.Foreground(r.palette.Frame))
			y++
		}
	}

	start := len(messages) - messageLines
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, y+i, msg, tcell.StyleDefault.Foreground(r.palette.Messages))
	}

	r.screen.Show()
}

// StatusLine describes the selector: state, cursor, and the hovered or
// carried item.
func StatusLine(v inventory.View) string {
	pos := v.Cursor.String()
	switch v.State {
	case inventory.StateCarrying:
		where := "ok"
		if !v.Legal {
			where = "blocked"
		}
		return fmt.Sprintf("[carrying] %s %s at %s  %s", v.Carried.Name, v.CursorSize, pos, where)
	case inventory.StateHovering:
		it := v.Cells[v.Cursor.Row][v.Cursor.Col].Item
		if it != nil {
			return fmt.Sprintf("[hovering] %s %s at %s", it.Name, it.Size, pos)
		}
	}
	return fmt.Sprintf("[idle] %s", pos)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawBox draws a frame whose outer size is w x h with its top-left at (x, y).
func (r *Renderer) drawBox(x, y, w, h int) {
	style := tcell.StyleDefault.Foreground(r.palette.Frame)
	for col := x + 1; col < x+w-1; col++ {
		r.screen.SetContent(col, y, '─', nil, style)
		r.screen.SetContent(col, y+h-1, '─', nil, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		r.screen.SetContent(x, row, '│', nil, style)
		r.screen.SetContent(x+w-1, row, '│', nil, style)
	}
	r.screen.SetContent(x, y, '┌', nil, style)
	r.screen.SetContent(x+w-1, y, '┐', nil, style)
	r.screen.SetContent(x, y+h-1, '└', nil, style)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

// drawText writes text from (x, y), truncated to the screen width. Wide
// runes advance two columns.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	if x >= w {
		return
	}
	text = runewidth.Truncate(text, w-x, "…")
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
