// Package placement decides where items may sit in an occupancy grid and
// commits or releases their occupancy.
package placement

import (
	"errors"
	"fmt"
	"log/slog"

	"grid-inventory/internal/grid"
)

var (
	// ErrNoPlacement means the item fits in neither orientation.
	ErrNoPlacement = errors.New("no free slot in either orientation")
	// ErrRegionBlocked means a chosen region is out of bounds or occupied.
	ErrRegionBlocked = errors.New("region is out of bounds or occupied")
)

// Engine runs first-fit placement against a single grid.
type Engine struct {
	grid   *grid.Grid
	logger *slog.Logger
}

// New creates an Engine bound to g. A nil logger discards output.
func New(g *grid.Grid, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{grid: g, logger: logger}
}

// Grid returns the grid the engine writes to.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// RegionFree reports whether every cell of fp anchored at topLeft is in
// bounds and empty. It does not mutate anything.
func (e *Engine) RegionFree(topLeft grid.Coord, fp grid.Footprint) bool {
	if !fp.Valid() {
		return false
	}
	for row := topLeft.Row; row < topLeft.Row+fp.H; row++ {
		for col := topLeft.Col; col < topLeft.Col+fp.W; col++ {
			it, err := e.grid.CellAt(grid.Coord{Col: col, Row: row})
			if err != nil || it != nil {
				return false
			}
		}
	}
	return true
}

// FindFreeSlot scans candidate top-left cells in row-major order and returns
// the first one where fp fits. Only candidates that keep fp inside the grid
// are visited. When a candidate's first cell is occupied the scan jumps past
// the occupant's right edge.
func (e *Engine) FindFreeSlot(fp grid.Footprint) (grid.Coord, bool) {
	if !fp.Valid() {
		return grid.Coord{}, false
	}
	for row := 0; row <= e.grid.Height-fp.H; row++ {
		for col := 0; col <= e.grid.Width-fp.W; col++ {
			c := grid.Coord{Col: col, Row: row}
			occupant, _ := e.grid.CellAt(c)
			if occupant != nil {
				col = occupant.Pos.Col + occupant.Size.W - 1
				continue
			}
			if e.RegionFree(c, fp) {
				return c, true
			}
		}
	}
	return grid.Coord{}, false
}

// Fit looks for a slot for fp as given and then rotated. rotated is true when
// only the rotated orientation fits.
func (e *Engine) Fit(fp grid.Footprint) (c grid.Coord, rotated, ok bool) {
	if c, ok := e.FindFreeSlot(fp); ok {
		return c, false, true
	}
	if fp.W == fp.H {
		return grid.Coord{}, false, false
	}
	if c, ok := e.FindFreeSlot(fp.Rotated()); ok {
		return c, true, true
	}
	return grid.Coord{}, false, false
}

// Place finds a slot for it and commits it. When only the rotated
// orientation fits, the item is rotated as part of the commit. On failure the
// grid is left untouched and ErrNoPlacement is returned.
func (e *Engine) Place(it *grid.Item) error {
	c, rotated, ok := e.Fit(it.Size)
	if !ok {
		return fmt.Errorf("place %s %v in %dx%d: %w", it.Name, it.Size, e.grid.Width, e.grid.Height, ErrNoPlacement)
	}
	if rotated {
		it.Rotate()
	}
	e.commit(it, c)
	e.logger.Debug("item placed", "name", it.Name, "pos", c.String(), "size", it.Size.String(), "rotated", rotated)
	return nil
}

// PlaceAt commits it at topLeft without searching.
func (e *Engine) PlaceAt(it *grid.Item, topLeft grid.Coord) error {
	if !e.RegionFree(topLeft, it.Size) {
		return fmt.Errorf("place %s at %v: %w", it.Name, topLeft, ErrRegionBlocked)
	}
	e.commit(it, topLeft)
	return nil
}

// Remove releases the item's cells. The item keeps its footprint and position.
func (e *Engine) Remove(it *grid.Item) {
	e.grid.Release(it)
}

func (e *Engine) commit(it *grid.Item, c grid.Coord) {
	it.Pos = c
	e.grid.Occupy(it, c)
}
