package audio

import (
	"testing"
	"time"

	"grid-inventory/internal/inventory"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the number of samples and the
// largest absolute sample value.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			for _, v := range buf[j] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestOscillatorEnds(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveNoise} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if want := rate.N(10 * time.Millisecond); n != want {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, n, want)
		}
		if peak > 1 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 (attack starts silent)", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", buf[50][0])
	}
	if buf[99][0] <= 0 || buf[99][0] >= 0.1 {
		t.Errorf("last sample = %f, want a small positive tail", buf[99][0])
	}
}

func TestCueForEveryEvent(t *testing.T) {
	events := []inventory.Event{
		inventory.EventNavigate,
		inventory.EventNavigateWithItem,
		inventory.EventGrab,
		inventory.EventDrop,
	}
	for _, ev := range events {
		s := Cue(ev, sampleRate, 1)
		if s == nil {
			t.Fatalf("%v: no cue", ev)
		}
		n, peak := drain(t, s)
		if n == 0 || peak == 0 {
			t.Errorf("%v: cue is silent (%d samples, peak %f)", ev, n, peak)
		}
		if n > sampleRate.N(time.Second) {
			t.Errorf("%v: cue lasts %d samples, want under a second", ev, n)
		}
	}
	if Cue(inventory.Event(0), sampleRate, 1) != nil {
		t.Error("unknown event should have no cue")
	}
}

func TestCueSilentAtZeroVolume(t *testing.T) {
	_, peak := drain(t, Cue(inventory.EventGrab, sampleRate, 0))
	if peak != 0 {
		t.Errorf("peak = %f at zero volume", peak)
	}
}

func newTestPlayer(enabled bool) *Player {
	p := NewPlayer(enabled, 0.5, nil)
	p.lock, p.unlock = func() {}, func() {}
	return p
}

func TestPlayerDropsWhenUninitialized(t *testing.T) {
	p := newTestPlayer(true)
	p.Play([]inventory.Event{inventory.EventGrab})
	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Init", p.mixer.Len())
	}
	if p.Enabled() {
		t.Error("player should not report enabled before Init")
	}
}

func TestDisabledPlayerInitIsNoOp(t *testing.T) {
	p := newTestPlayer(false)
	if err := p.Init(); err != nil {
		t.Fatalf("Init on a disabled player: %v", err)
	}
	if p.Enabled() {
		t.Error("disabled player reports enabled")
	}
}

func TestPlayerQueuesAndCaps(t *testing.T) {
	p := newTestPlayer(true)
	p.initialized = true

	p.Play([]inventory.Event{inventory.EventGrab, inventory.EventNavigateWithItem})
	if got := p.mixer.Len(); got != 2 {
		t.Fatalf("mixer has %d streamers, want 2", got)
	}
	p.Play([]inventory.Event{
		inventory.EventNavigate, inventory.EventNavigate,
		inventory.EventNavigate, inventory.EventNavigate,
	})
	if got := p.mixer.Len(); got != maxQueued {
		t.Errorf("mixer has %d streamers, want cap %d", got, maxQueued)
	}

	p.SetMuted(true)
	if got := p.mixer.Len(); got != 0 {
		t.Errorf("mute left %d streamers", got)
	}
	p.Play([]inventory.Event{inventory.EventDrop})
	if got := p.mixer.Len(); got != 0 {
		t.Errorf("muted player queued %d streamers", got)
	}

	p.SetMuted(false)
	p.Play([]inventory.Event{inventory.EventDrop})
	p.Close()
	if got := p.mixer.Len(); got != 0 {
		t.Errorf("Close left %d streamers", got)
	}
	if p.Enabled() {
		t.Error("closed player reports enabled")
	}
}

func TestNewPlayerClampsVolume(t *testing.T) {
	if p := NewPlayer(true, 3, nil); p.volume != 1 {
		t.Errorf("volume = %f, want 1", p.volume)
	}
	if p := NewPlayer(true, -1, nil); p.volume != 0 {
		t.Errorf("volume = %f, want 0", p.volume)
	}
}
