package config

import (
	"os"
	"path/filepath"
	"testing"

	"grid-inventory/assets"
	"grid-inventory/internal/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 4
  height: 3
items:
  - name: Sword
    glyph: "🔪"
    width: 1
    height: 3
  - name: Spire Key
    width: 1
    height: 1
ui:
  debug: true
audio:
  volume: 0.25
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, GridConfig{Width: 4, Height: 3}, cfg.Grid)
	require.Len(t, cfg.Items, 2)
	assert.Equal(t, ItemConfig{Name: "Sword", Glyph: "🔪", Width: 1, Height: 3}, cfg.Items[0])
	assert.Equal(t, assets.GlyphSpireKey, cfg.Items[1].Glyph, "glyph falls back to the catalog")
	assert.True(t, cfg.UI.Debug)
	assert.True(t, cfg.UI.ShowHelp, "unset options keep their defaults")
	assert.True(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.25, cfg.Audio.Volume, 1e-9)
}

func TestLoadWithoutItemsUsesCatalog(t *testing.T) {
	cfg, err := Load(writeConfig(t, "grid: {width: 10, height: 10}\n"))
	require.NoError(t, err)
	assert.Len(t, cfg.Items, len(assets.Catalog()))
	assert.Equal(t, 10, cfg.Grid.Width)
}

func TestLoadEmptyItemList(t *testing.T) {
	cfg, err := Load(writeConfig(t, "items: []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Items)
	assert.Equal(t, assets.DefaultGridWidth, cfg.Grid.Width)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"zero width", "grid: {width: 0, height: 3}\n", true},
		{"negative height", "grid: {width: 3, height: -2}\n", true},
		{"item without name", "items: [{width: 1, height: 1}]\n", true},
		{"zero item size", "items: [{name: Dust, width: 0, height: 1}]\n", true},
		{"volume too loud", "audio: {volume: 1.5}\n", true},
		{"bad yaml", "grid: [1, 2\n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			require.Error(t, err)
			if tc.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NotErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.UI.ShowHelp)
	assert.False(t, cfg.UI.Debug)
}

func TestInventoryConversion(t *testing.T) {
	cfg := &Config{
		Grid:  GridConfig{Width: 5, Height: 2},
		Items: []ItemConfig{{Name: "Bow", Glyph: "🏹", Width: 1, Height: 2}},
	}
	inv := cfg.Inventory()
	assert.Equal(t, 5, inv.Width)
	assert.Equal(t, 2, inv.Height)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, grid.Footprint{W: 1, H: 2}, inv.Items[0].Size)
	assert.Equal(t, "🏹", inv.Items[0].Glyph)
}
