package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSaw
	WaveSquare
)

// Ramp is how a parameter moves from its start to its end value.
type Ramp int

const (
	RampHold Ramp = iota
	RampLinear
	RampExponential
)

// Voice describes one oscillator note of a sound effect.
type Voice struct {
	Wave     Wave
	Delay    time.Duration // Silence before the note starts
	Duration time.Duration
	FromHz   float64
	ToHz     float64
	Glide    Ramp
	Attack   time.Duration // Linear fade-in from silence
	FromGain float64
	ToGain   float64
	Fade     Ramp
}

// Length returns the time from the start of the effect to the end of the note.
func (v Voice) Length() time.Duration {
	return v.Delay + v.Duration
}

// tone streams a single Voice, without its delay.
type tone struct {
	v      Voice
	rate   beep.SampleRate
	pos    int
	total  int
	attack int
	phase  float64
}

func newTone(v Voice, rate beep.SampleRate) *tone {
	return &tone{
		v:      v,
		rate:   rate,
		total:  rate.N(v.Duration),
		attack: rate.N(v.Attack),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		progress := float64(t.pos) / float64(t.total)
		freq := ramp(t.v.Glide, t.v.FromHz, t.v.ToHz, progress)
		gain := ramp(t.v.Fade, t.v.FromGain, t.v.ToGain, progress)
		if t.pos < t.attack {
			gain *= float64(t.pos) / float64(t.attack)
		}

		val := waveAt(t.v.Wave, t.phase) * gain
		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // Keep in [0, 1)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// ramp interpolates between from and to at progress p in [0, 1].
// Exponential ramps need both ends positive and fall back to linear otherwise.
func ramp(kind Ramp, from, to, p float64) float64 {
	switch kind {
	case RampLinear:
		return from + (to-from)*p
	case RampExponential:
		if from <= 0 || to <= 0 {
			return from + (to-from)*p
		}
		return from * math.Pow(to/from, p)
	default:
		return from
	}
}

// waveAt returns the unit-amplitude sample of w at phase in [0, 1).
func waveAt(w Wave, phase float64) float64 {
	switch w {
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
