// Package audio turns game events into short synthesized sound effects.
// Playback failures never reach the game loop: a sink that cannot open the
// speaker is replaced by Nop.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/northern-dash/internal/core"
)

// DefaultVolume is the master gain applied to every effect.
const DefaultVolume = 0.3

// Sink consumes game events and plays the matching sound.
type Sink interface {
	Play(ev core.Event)
	Close() error
}

// Nop is a Sink that plays nothing.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Event) {}

// Close does nothing.
func (Nop) Close() error { return nil }

// Open returns a speaker-backed sink, or Nop when muted or when the audio
// device cannot be opened. The failure is logged once.
func Open(mute bool, volume float64, logger *log.Logger) Sink {
	if mute {
		return Nop{}
	}
	synth, err := NewSynth(volume)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return Nop{}
	}
	return synth
}
