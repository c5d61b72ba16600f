// Package inventory drives the selector over a slot grid: it places the
// initial items, then turns navigate/rotate/action commands into grab and
// drop transitions and reports what happened as a list of events.
package inventory

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"grid-inventory/internal/cursor"
	"grid-inventory/internal/grid"
	"grid-inventory/internal/placement"
)

// ErrInvalidConfig is returned by New for non-positive grid or item sizes.
var ErrInvalidConfig = errors.New("invalid inventory config")

// ItemSpec describes one item to place at startup.
type ItemSpec struct {
	Name  string
	Glyph string
	Size  grid.Footprint
}

// Config is the input to New. Items are attempted in order.
type Config struct {
	Width, Height int
	Items         []ItemSpec
}

// Outcome records what happened to one configured item at startup. Item is
// a copy taken when placement finished.
type Outcome struct {
	Item   grid.Item
	Placed bool
	Pos    grid.Coord     // valid when Placed
	Size   grid.Footprint // orientation actually committed
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(inv *Inventory) {
		if l != nil {
			inv.logger = l
		}
	}
}

// Inventory is one grid, its items and the selector. All methods are safe
// for concurrent use; every transition holds the lock until it finishes.
// Items handed out by queries and Render are copies, never the live items.
type Inventory struct {
	mu       sync.Mutex
	grid     *grid.Grid
	engine   *placement.Engine
	cursor   *cursor.Cursor
	state    State
	items    []*grid.Item // every configured item, in config order
	outcomes []Outcome
	logger   *slog.Logger
}

// New validates cfg, creates the grid and places every item with first-fit
// placement. Items that fit in neither orientation are excluded and logged;
// that is not an error.
func New(cfg Config, opts ...Option) (*Inventory, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	inv := &Inventory{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(inv)
	}

	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	inv.grid = g
	inv.engine = placement.New(g, inv.logger)

	inv.items = make([]*grid.Item, 0, len(cfg.Items))
	inv.outcomes = make([]Outcome, 0, len(cfg.Items))
	for _, spec := range cfg.Items {
		it := grid.NewItem(spec.Name, spec.Glyph, spec.Size)
		out := Outcome{Size: it.Size}
		if err := inv.engine.Place(it); err != nil {
			inv.logger.Warn("item excluded", "name", spec.Name, "size", spec.Size.String(), "err", err)
		} else {
			out.Placed = true
			out.Pos = it.Pos
			out.Size = it.Size
		}
		out.Item = *it
		inv.items = append(inv.items, it)
		inv.outcomes = append(inv.outcomes, out)
	}

	inv.cursor = cursor.New(inv.engine)
	inv.cursor.RefreshHover()
	inv.syncState()
	return inv, nil
}

func validate(cfg Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	for i, spec := range cfg.Items {
		if !spec.Size.Valid() {
			return fmt.Errorf("%w: item %d (%q) has size %v", ErrInvalidConfig, i, spec.Name, spec.Size)
		}
	}
	return nil
}

// Apply dispatches cmd to the matching transition.
func (inv *Inventory) Apply(cmd Command) []Event {
	switch cmd.Kind {
	case CommandNavigate:
		return inv.Navigate(cmd.Dir)
	case CommandRotate:
		return inv.Rotate()
	case CommandAction:
		return inv.Action()
	}
	return nil
}

// Navigate moves the selector one step in d.
func (inv *Inventory) Navigate(d cursor.Direction) []Event {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	inv.cursor.Move(d)
	if inv.cursor.Carrying() {
		inv.cursor.CheckLegal()
		return []Event{EventNavigateWithItem}
	}
	inv.syncState()
	return []Event{EventNavigate}
}

// Rotate turns the carried item. It does nothing unless an item is carried
// and its turned footprint fits inside the grid.
func (inv *Inventory) Rotate() []Event {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.state != StateCarrying {
		return nil
	}
	if !inv.cursor.RotateCarried() {
		return nil
	}
	return []Event{EventNavigateWithItem}
}

// Action grabs the hovered item or drops the carried one. A drop onto a
// blocked region, or an action over an empty cell, does nothing.
func (inv *Inventory) Action() []Event {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	switch inv.state {
	case StateHovering:
		it := inv.cursor.Hovered()
		inv.engine.Remove(it)
		inv.cursor.Attach(it)
		inv.state = StateCarrying
		inv.logger.Debug("item grabbed", "name", it.Name, "pos", it.Pos.String())
		return []Event{EventGrab}
	case StateCarrying:
		if !inv.cursor.CheckLegal() {
			return nil
		}
		it := inv.cursor.Grabbed()
		if err := inv.engine.PlaceAt(it, inv.cursor.Pos()); err != nil {
			// legality was checked under the same lock
			panic(err)
		}
		inv.cursor.Detach()
		inv.syncState()
		inv.logger.Debug("item dropped", "name", it.Name, "pos", it.Pos.String(), "size", it.Size.String())
		return []Event{EventDrop}
	}
	return nil
}

// State returns the current interaction state.
func (inv *Inventory) State() State {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.state
}

// CursorPos returns the top-left of the displayed footprint.
func (inv *Inventory) CursorPos() grid.Coord {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.cursor.Pos()
}

// CursorSize returns the displayed footprint.
func (inv *Inventory) CursorSize() grid.Footprint {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.cursor.Size()
}

// Legal reports whether the carried item can be dropped where it is.
func (inv *Inventory) Legal() bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.cursor.Legal()
}

// Carried returns a copy of the item being carried, or nil.
func (inv *Inventory) Carried() *grid.Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return clone(inv.cursor.Grabbed())
}

// CellAt returns a copy of the item in cell c, or nil if it is empty.
func (inv *Inventory) CellAt(c grid.Coord) (*grid.Item, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	it, err := inv.grid.CellAt(c)
	if err != nil {
		return nil, err
	}
	return clone(it), nil
}

// Size returns the grid dimensions.
func (inv *Inventory) Size() (width, height int) {
	return inv.grid.Width, inv.grid.Height
}

// Outcomes returns the startup placement result of every configured item,
// in configuration order.
func (inv *Inventory) Outcomes() []Outcome {
	out := make([]Outcome, len(inv.outcomes))
	copy(out, inv.outcomes)
	return out
}

// Excluded returns the names of items that could not be placed at startup.
func (inv *Inventory) Excluded() []string {
	var names []string
	for _, o := range inv.outcomes {
		if !o.Placed {
			names = append(names, o.Item.Name)
		}
	}
	return names
}

func clone(it *grid.Item) *grid.Item {
	if it == nil {
		return nil
	}
	cp := *it
	return &cp
}

func (inv *Inventory) syncState() {
	switch {
	case inv.cursor.Carrying():
		inv.state = StateCarrying
	case inv.cursor.Hovered() != nil:
		inv.state = StateHovering
	default:
		inv.state = StateIdle
	}
}
