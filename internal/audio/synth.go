package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/northern-dash/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Synth plays event sounds through the system speaker. The speaker is
// process-wide, so only one Synth should exist.
type Synth struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewSynth opens the speaker and starts the master mixer at the given
// volume (1.0 = unity).
func NewSynth(volume float64) (*Synth, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	s := &Synth{mixer: &beep.Mixer{}}
	s.mixer.Add(beep.Silence(-1)) // Keeps the mixer streaming between effects
	speaker.Play(newVolume(s.mixer, volume))
	return s, nil
}

// Play queues the sound for ev. Silent events and a closed synth are ignored.
func (s *Synth) Play(ev core.Event) {
	st := Render(ev, sampleRate)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (s *Synth) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

// newVolume wraps s in a gain stage.
// math.Log2(0) is -Inf, so zero volume is handled by making it silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
