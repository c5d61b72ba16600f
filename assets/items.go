package assets

// ItemDef is one entry of the built-in catalog. W and H are the item's
// footprint in grid cells in its initial orientation.
type ItemDef struct {
	Name  string
	Glyph string
	W, H  int
}

// Default grid dimensions used when no configuration file is given.
const (
	DefaultGridWidth  = 8
	DefaultGridHeight = 6
)

// catalog is the default satchel content, in placement order. The last
// entry never fits the default grid and is always reported as excluded.
var catalog = []ItemDef{
	{Name: "Cleaver", Glyph: GlyphCleaver, W: 2, H: 3},
	{Name: "Frost Weave", Glyph: GlyphFrostWeave, W: 2, H: 2},
	{Name: "Shard Blade", Glyph: GlyphShardBlade, W: 1, H: 3},
	{Name: "Resonance Bow", Glyph: GlyphResonanceBow, W: 1, H: 4},
	{Name: "Phase Rod", Glyph: GlyphPhaseRod, W: 3, H: 1},
	{Name: "Crystal Helm", Glyph: GlyphCrystalHelm, W: 2, H: 2},
	{Name: "Forge Boots", Glyph: GlyphForgeBoots, W: 2, H: 1},
	{Name: "Tesseract Cube", Glyph: GlyphTesseract, W: 2, H: 2},
	{Name: "Hyperflask", Glyph: GlyphHyperflask, W: 1, H: 2},
	{Name: "Memory Scroll", Glyph: GlyphMemoryScroll, W: 1, H: 2},
	{Name: "Prism Shard", Glyph: GlyphPrismShard, W: 1, H: 1},
	{Name: "Void Ring", Glyph: GlyphVoidRing, W: 1, H: 1},
	{Name: "Oracle Orb", Glyph: GlyphOracleOrb, W: 1, H: 1},
	{Name: "Spire Key", Glyph: GlyphSpireKey, W: 1, H: 1},
	{Name: "Abyssal Trident", Glyph: GlyphTrident, W: 1, H: 9},
}

// Catalog returns a copy of the default item list.
func Catalog() []ItemDef {
	out := make([]ItemDef, len(catalog))
	copy(out, catalog)
	return out
}

// GlyphFor returns the catalog glyph for an item name, or GlyphUnknown.
func GlyphFor(name string) string {
	for _, d := range catalog {
		if d.Name == name {
			return d.Glyph
		}
	}
	return GlyphUnknown
}
