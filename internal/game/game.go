// Package game hosts one inventory session on a terminal screen: it feeds
// key presses to the inventory, plays cues, keeps a message log and draws
// every frame.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"grid-inventory/internal/audio"
	"grid-inventory/internal/config"
	"grid-inventory/internal/grid"
	"grid-inventory/internal/inventory"
	"grid-inventory/internal/render"

	"github.com/gdamore/tcell/v2"
)

// maxMessages bounds the message log kept in memory.
const maxMessages = 50

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the session logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithAudio plays cues through p.
func WithAudio(p *audio.Player) Option {
	return func(g *Game) { g.player = p }
}

// WithPlayerName labels the session in the message log and the session log.
func WithPlayerName(name string) Option {
	return func(g *Game) { g.name = name }
}

// WithSessionLog appends a statistics line to the session log on exit.
func WithSessionLog() Option {
	return func(g *Game) { g.saveLog = true }
}

// Game is the top-level orchestrator for one session.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	inv      *inventory.Inventory
	player   *audio.Player
	logger   *slog.Logger
	name     string
	messages []string
	showHelp bool
	saveLog  bool
	log      SessionLog
}

// New creates a Game drawing on screen, which must already be initialized.
// The inventory is built from cfg; items that do not fit are reported in the
// message log.
func New(screen tcell.Screen, cfg *config.Config, opts ...Option) (*Game, error) {
	g := &Game{
		screen:   screen,
		logger:   slog.New(slog.DiscardHandler),
		showHelp: cfg.UI.ShowHelp,
	}
	for _, opt := range opts {
		opt(g)
	}

	inv, err := inventory.New(cfg.Inventory(), inventory.WithLogger(g.logger))
	if err != nil {
		return nil, fmt.Errorf("create inventory: %w", err)
	}
	g.inv = inv
	g.renderer = render.NewRenderer(screen)
	g.renderer.SetDebug(cfg.UI.Debug)

	g.log = SessionLog{
		Player:   g.name,
		Started:  time.Now(),
		GridSize: fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		Excluded: inv.Excluded(),
	}

	if g.name != "" {
		g.addMessage(fmt.Sprintf("Welcome, %s.", g.name))
	}
	for _, name := range inv.Excluded() {
		g.addMessage(fmt.Sprintf("The %s is too big for the satchel.", name))
	}
	return g, nil
}

// Inventory returns the session's inventory.
func (g *Game) Inventory() *inventory.Inventory { return g.inv }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// Run is the main loop. It returns when the player quits or the screen
// stops delivering events.
func (g *Game) Run() {
	defer g.screen.Fini()
	defer g.finish()

	for {
		g.draw()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			if g.processAction(keyToAction(ev)) {
				return
			}
		}
	}
}

func (g *Game) draw() {
	v := inventory.Render(g.inv)
	g.renderer.DrawFrame(v)
	g.renderer.DrawHUD(v, g.messages, g.showHelp)
}

// processAction handles one action and reports whether the session should end.
func (g *Game) processAction(action Action) (quit bool) {
	switch action {
	case ActionQuit:
		return true
	case ActionToggleDebug:
		g.renderer.SetDebug(!g.renderer.Debug())
		if g.renderer.Debug() {
			g.addMessage("Occupancy overlay on.")
		} else {
			g.addMessage("Occupancy overlay off.")
		}
		return false
	case ActionToggleHelp:
		g.showHelp = !g.showHelp
		return false
	case ActionToggleMute:
		g.toggleMute()
		return false
	}

	cmd, ok := actionToCommand(action)
	if !ok {
		return false
	}
	carried := g.inv.Carried()
	events := g.inv.Apply(cmd)
	if cmd.Kind == inventory.CommandAction && len(events) == 0 && carried != nil {
		g.log.Blocked++
		g.addMessage(fmt.Sprintf("The %s does not fit there.", carried.Name))
	}
	if cmd.Kind == inventory.CommandRotate && len(events) > 0 {
		g.log.Rotations++
	}
	g.handleEvents(events, carried)
	return false
}

// handleEvents drains the events of one transition to the audio player, the
// message log and the session statistics. carried is a copy of the item that
// was carried before the transition.
func (g *Game) handleEvents(events []inventory.Event, carried *grid.Item) {
	if g.player != nil {
		g.player.Play(events)
	}
	for _, ev := range events {
		switch ev {
		case inventory.EventNavigate, inventory.EventNavigateWithItem:
			g.log.Moves++
		case inventory.EventGrab:
			g.log.Grabs++
			if it := g.inv.Carried(); it != nil {
				g.addMessage(fmt.Sprintf("You pick up the %s.", it.Name))
				g.logger.Info("grab", "item", it.Name, "from", it.Pos.String())
			}
		case inventory.EventDrop:
			g.log.Drops++
			if carried != nil {
				// the cursor rests on the dropped item
				at, size := g.inv.CursorPos(), g.inv.CursorSize()
				g.addMessage(fmt.Sprintf("You set down the %s at %s.", carried.Name, at))
				g.logger.Info("drop", "item", carried.Name, "at", at.String(), "size", size.String())
			}
		}
	}
}

func (g *Game) toggleMute() {
	if g.player == nil {
		g.addMessage("Sound is unavailable.")
		return
	}
	if g.player.Enabled() {
		g.player.SetMuted(true)
		g.addMessage("Sound off.")
		return
	}
	g.player.SetMuted(false)
	if err := g.player.Init(); err != nil {
		g.logger.Warn("audio unavailable", "err", err)
		g.addMessage("Sound is unavailable.")
		return
	}
	g.addMessage("Sound on.")
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

func (g *Game) finish() {
	g.log.Ended = time.Now()
	g.logger.Info("session ended",
		"moves", g.log.Moves, "grabs", g.log.Grabs, "drops", g.log.Drops,
		"duration", g.log.Ended.Sub(g.log.Started).Round(time.Second).String())
	if g.player != nil {
		g.player.Close()
	}
	if g.saveLog {
		saveSessionLog(g.log, g.logger)
	}
}
