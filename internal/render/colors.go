package render

import (
	"hash/fnv"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the colors used to draw the grid. Emoji are drawn by the
// terminal with their own colors, so items and the cursor are told apart by
// background color instead.
type Palette struct {
	Frame         tcell.Color
	EmptyFG       tcell.Color
	EmptyBG       tcell.Color
	Cursor        tcell.Color // cursor over a free cell or hovered item
	CursorBlocked tcell.Color // carried item cannot land here
	Text          tcell.Color
	Messages      tcell.Color
	Items         []tcell.Color
}

// DefaultPalette is used unless the host supplies its own.
var DefaultPalette = Palette{
	Frame:         tcell.ColorGray,
	EmptyFG:       tcell.ColorDarkGray,
	EmptyBG:       tcell.ColorBlack,
	Cursor:        tcell.ColorDarkGreen,
	CursorBlocked: tcell.ColorDarkRed,
	Text:          tcell.ColorWhite,
	Messages:      tcell.ColorLightYellow,
	Items: []tcell.Color{
		tcell.ColorNavy,
		tcell.ColorPurple,
		tcell.ColorTeal,
		tcell.ColorOlive,
		tcell.ColorMaroon,
		tcell.ColorDarkSlateBlue,
		tcell.ColorDarkCyan,
		tcell.ColorSaddleBrown,
	},
}

// ItemColor returns a background color for an item that stays the same
// wherever the item is moved.
func (p Palette) ItemColor(id string) tcell.Color {
	if len(p.Items) == 0 {
		return p.EmptyBG
	}
	h := fnv.New32a()
	h.Write([]byte(id))
	return p.Items[h.Sum32()%uint32(len(p.Items))]
}

// OverlayTiles are the glyphs of the occupancy overlay.
type OverlayTiles struct {
	Free     string
	Occupied string
	Carried  string // cells under a carried item
}

// DefaultOverlay marks free cells green and occupied cells red.
var DefaultOverlay = OverlayTiles{
	Free:     "🟩",
	Occupied: "🟥",
	Carried:  "🟨",
}
