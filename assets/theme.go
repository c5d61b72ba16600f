package assets

// Emoji constants used as item glyphs. Every glyph is a single code point
// so it occupies exactly two terminal columns.
const (
	GlyphShardBlade   = "🔪"
	GlyphPhaseRod     = "🪄"
	GlyphResonanceBow = "🏹"
	GlyphCleaver      = "🪓"
	GlyphTrident      = "🔱"
	GlyphCrystalHelm  = "🪖"
	GlyphFrostWeave   = "🧥"
	GlyphForgeBoots   = "🥾"
	GlyphHyperflask   = "🧪"
	GlyphPrismShard   = "💎"
	GlyphTesseract    = "📦"
	GlyphMemoryScroll = "📜"
	GlyphVoidRing     = "💍"
	GlyphOracleOrb    = "🔮"
	GlyphSpireKey     = "🔑"
	GlyphUnknown      = "❔"
)

// Title is shown above the grid.
const Title = "Prismatic Satchel"

// HelpLines lists the key bindings shown under the grid.
var HelpLines = []string{
	"arrows/hjkl/wasd move   enter/space grab or drop   r rotate",
	"g occupancy overlay   ? help   q/esc quit",
}
