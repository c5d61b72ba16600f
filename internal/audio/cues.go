package audio

import (
	"math"
	"math/rand"
	"time"

	"grid-inventory/internal/inventory"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// Cue lengths.
const (
	navigateDuration = 35 * time.Millisecond
	carryDuration    = 50 * time.Millisecond
	noteDuration     = 60 * time.Millisecond
	cueAttack        = 4 * time.Millisecond
	cueRelease       = 25 * time.Millisecond
)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator that ends after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s with an attack ramp and a release ramp over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. math.Log2(0) is -Inf, so 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, cueAttack, cueRelease, rate)
}

// Cue returns the sound for an interaction event at the given volume, or nil
// for events without a sound.
//
//   - navigate: a short high tick
//   - navigate with item: a lower, heavier tick
//   - grab: a rising two-note chime
//   - drop: a falling two-note thud over a burst of noise
func Cue(ev inventory.Event, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch ev {
	case inventory.EventNavigate:
		s = newVolume(tone(1320, navigateDuration, WaveSine, rate), 0.5)
	case inventory.EventNavigateWithItem:
		s = newVolume(tone(440, carryDuration, WaveSquare, rate), 0.35)
	case inventory.EventGrab:
		s = beep.Seq(
			tone(523.25, noteDuration, WaveSine, rate),
			tone(783.99, noteDuration, WaveSine, rate),
		)
	case inventory.EventDrop:
		thud := beep.Seq(
			tone(392, noteDuration, WaveSquare, rate),
			tone(196, noteDuration, WaveSquare, rate),
		)
		s = beep.Mix(
			newVolume(thud, 0.6),
			newVolume(tone(0, noteDuration, WaveNoise, rate), 0.2),
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}
