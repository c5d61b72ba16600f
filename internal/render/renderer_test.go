package render

import (
	"strings"
	"testing"

	"grid-inventory/internal/cursor"
	"grid-inventory/internal/grid"
	"grid-inventory/internal/inventory"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)
	return ss
}

func newTestInventory(t *testing.T) *inventory.Inventory {
	t.Helper()
	inv, err := inventory.New(inventory.Config{
		Width:  4,
		Height: 3,
		Items: []inventory.ItemSpec{
			{Name: "Blade", Glyph: "🔪", Size: grid.Footprint{W: 1, H: 2}},
			{Name: "Gem", Glyph: "💎", Size: grid.One},
			{Name: "Trident", Glyph: "🔱", Size: grid.Footprint{W: 1, H: 9}},
		},
	})
	if err != nil {
		t.Fatalf("inventory.New: %v", err)
	}
	return inv
}

func cellAt(t *testing.T, s tcell.Screen, c grid.Coord) (rune, tcell.Color) {
	t.Helper()
	cam := NewCamera(gridLeft, gridTop, 80, 24)
	sx, sy, ok := cam.CellToScreen(c)
	if !ok {
		t.Fatalf("cell %v is off screen", c)
	}
	mainc, _, style, _ := s.GetContent(sx, sy)
	_, bg, _ := style.Decompose()
	return mainc, bg
}

// screenText returns row y of the screen as a string.
func screenText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, width := s.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
		if width == 2 {
			x++
		}
	}
	return b.String()
}

func TestDrawFrameItemsAndCursor(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss)
	inv := newTestInventory(t)
	v := inventory.Render(inv)
	r.DrawFrame(v)

	glyph, bg := cellAt(t, ss, grid.Coord{})
	if glyph != '🔪' {
		t.Errorf("anchor glyph = %q, want 🔪", glyph)
	}
	if bg != DefaultPalette.Cursor {
		t.Errorf("hovered item background = %v, want cursor color", bg)
	}

	glyph, bg = cellAt(t, ss, grid.Coord{Col: 1})
	if glyph != '💎' {
		t.Errorf("gem glyph = %q, want 💎", glyph)
	}
	if want := DefaultPalette.ItemColor(v.Cells[0][1].Item.ID); bg != want {
		t.Errorf("gem background = %v, want %v", bg, want)
	}

	glyph, _ = cellAt(t, ss, grid.Coord{Col: 3, Row: 2})
	if glyph != '·' {
		t.Errorf("empty cell glyph = %q, want ·", glyph)
	}

	if mainc, _, _, _ := ss.GetContent(0, gridTop-1); mainc != '┌' {
		t.Errorf("frame corner = %q, want ┌", mainc)
	}
}

func TestDrawFrameBlockedCarry(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss)
	inv := newTestInventory(t)
	inv.Action()
	inv.Navigate(cursor.Right)
	if inv.Legal() {
		t.Fatal("carrying the blade onto the gem should be blocked")
	}
	r.DrawFrame(inventory.Render(inv))

	glyph, bg := cellAt(t, ss, grid.Coord{Col: 1})
	if glyph != '🔪' {
		t.Errorf("carried glyph = %q, want 🔪", glyph)
	}
	if bg != DefaultPalette.CursorBlocked {
		t.Errorf("blocked background = %v, want %v", bg, DefaultPalette.CursorBlocked)
	}
	if _, bg := cellAt(t, ss, grid.Coord{Col: 1, Row: 1}); bg != DefaultPalette.CursorBlocked {
		t.Errorf("second footprint cell background = %v, want blocked", bg)
	}

	inv.Navigate(cursor.Right)
	r.DrawFrame(inventory.Render(inv))
	if _, bg := cellAt(t, ss, grid.Coord{Col: 2}); bg != DefaultPalette.Cursor {
		t.Errorf("legal background = %v, want %v", bg, DefaultPalette.Cursor)
	}
}

func TestDebugOverlay(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss)
	inv := newTestInventory(t)
	v := inventory.Render(inv)

	r.DrawFrame(v)
	if mainc, _, _, _ := ss.GetContent(OverlayLeft(v.Width), gridTop); mainc == '🟥' {
		t.Fatal("overlay drawn while debug is off")
	}

	r.SetDebug(true)
	r.DrawFrame(v)
	cases := []struct {
		cell grid.Coord
		want rune
	}{
		{grid.Coord{Col: 0, Row: 0}, '🟥'},
		{grid.Coord{Col: 0, Row: 1}, '🟥'},
		{grid.Coord{Col: 1, Row: 0}, '🟥'},
		{grid.Coord{Col: 2, Row: 0}, '🟩'},
		{grid.Coord{Col: 3, Row: 2}, '🟩'},
	}
	for _, tc := range cases {
		sx := OverlayLeft(v.Width) + tc.cell.Col*2
		sy := gridTop + tc.cell.Row
		if mainc, _, _, _ := ss.GetContent(sx, sy); mainc != tc.want {
			t.Errorf("overlay %v = %q, want %q", tc.cell, mainc, tc.want)
		}
	}
}

func TestDrawHUD(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss)
	inv := newTestInventory(t)
	v := inventory.Render(inv)
	r.DrawFrame(v)
	r.DrawHUD(v, []string{"one", "two", "three", "four"}, true)

	y := HUDTop(v.Height) + 1
	if got := screenText(ss, y); !strings.Contains(got, "[hovering] Blade 1x2 at (0,0)") {
		t.Errorf("status line = %q", got)
	}
	if got := screenText(ss, y+1); !strings.Contains(got, "Did not fit: Trident") {
		t.Errorf("exclusion line = %q", got)
	}
	var all []string
	_, h := ss.Size()
	for row := y; row < h; row++ {
		all = append(all, screenText(ss, row))
	}
	text := strings.Join(all, "\n")
	if strings.Contains(text, "one") {
		t.Error("only the last three messages should be shown")
	}
	for _, want := range []string{"two", "three", "four", "rotate"} {
		if !strings.Contains(text, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	inv := newTestInventory(t)
	inv.Navigate(cursor.Down)
	inv.Navigate(cursor.Down)
	if got := StatusLine(inventory.Render(inv)); got != "[idle] (0,2)" {
		t.Errorf("idle status = %q", got)
	}

	inv.Navigate(cursor.Up)
	inv.Action()
	inv.Navigate(cursor.Right)
	if got := StatusLine(inventory.Render(inv)); got != "[carrying] Blade 1x2 at (1,0)  blocked" {
		t.Errorf("carrying status = %q", got)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(3, 2, 40, 10)
	for _, c := range []grid.Coord{{}, {Col: 4, Row: 3}, {Col: 17, Row: 7}} {
		sx, sy, ok := cam.CellToScreen(c)
		if !ok {
			t.Errorf("%v should be visible", c)
		}
		if got := cam.ScreenToCell(sx, sy); got != c {
			t.Errorf("ScreenToCell(CellToScreen(%v)) = %v", c, got)
		}
		if got := cam.ScreenToCell(sx+1, sy); got != c {
			t.Errorf("right column of %v maps to %v", c, got)
		}
	}
	if _, _, ok := cam.CellToScreen(grid.Coord{Col: 19}); ok {
		t.Error("cell past the view width should not be visible")
	}
	if got := cam.ScreenToCell(2, 2); got.Col != -1 {
		t.Errorf("column left of the origin = %d, want -1", got.Col)
	}
}
