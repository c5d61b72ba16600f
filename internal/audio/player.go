// Package audio plays short synthesized cues for inventory events.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"grid-inventory/internal/inventory"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// maxQueued caps the number of cues mixed at once so holding a key down
// does not pile up sound.
const maxQueued = 4

// Player mixes cues into the speaker. A Player that is disabled, or whose
// Init failed, silently drops everything.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	logger      *slog.Logger

	// lock and unlock guard the mixer while the speaker is streaming it.
	lock, unlock func()
}

// NewPlayer creates a player. volume is clamped to [0, 1]. A nil logger
// discards output.
func NewPlayer(enabled bool, volume float64, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{
		mixer:   &beep.Mixer{},
		volume:  min(max(volume, 0), 1),
		enabled: enabled,
		logger:  logger,
		lock:    speaker.Lock,
		unlock:  speaker.Unlock,
	}
}

// Init opens the audio device. It is a no-op for a disabled player.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Enabled reports whether cues will be heard.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.initialized
}

// SetMuted turns playback off or back on without closing the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !muted
	if muted && p.initialized {
		p.lock()
		p.mixer.Clear()
		p.unlock()
	}
}

// Play queues the cue for every event.
func (p *Player) Play(events []inventory.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.initialized {
		return
	}
	p.lock()
	defer p.unlock()
	for _, ev := range events {
		if p.mixer.Len() >= maxQueued {
			return
		}
		if s := Cue(ev, sampleRate, p.volume); s != nil {
			p.mixer.Add(s)
		}
	}
}

// Close stops all cues. The speaker is process-wide and stays open.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.initialized = false
}
