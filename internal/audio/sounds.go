package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/northern-dash/internal/core"
)

const ms = time.Millisecond

// chime is one bell note of the collect triad.
func chime(hz float64, delay time.Duration) Voice {
	return Voice{
		Wave: WaveTriangle, Delay: delay, Duration: 500 * ms,
		FromHz: hz, ToHz: hz,
		Attack:   50 * ms,
		FromGain: 0.3, ToGain: 0.01, Fade: RampExponential,
	}
}

// knell is one falling note of the game-over phrase.
func knell(hz float64, delay time.Duration) Voice {
	return Voice{
		Wave: WaveTriangle, Delay: delay, Duration: 800 * ms,
		FromHz: hz, ToHz: hz,
		FromGain: 0.4, ToGain: 0.01, Fade: RampExponential,
	}
}

// sounds maps each audible event to its voices.
var sounds = map[core.Event][]Voice{
	core.EventJump: {{
		Wave: WaveSine, Duration: 300 * ms,
		FromHz: 300, ToHz: 600, Glide: RampExponential,
		FromGain: 0.5, ToGain: 0.01, Fade: RampExponential,
	}},
	core.EventCollect: {
		chime(880, 0),       // A5
		chime(1108, 50*ms),  // C#6
		chime(1318, 100*ms), // E6
	},
	core.EventPowerUp: {{
		Wave: WaveSine, Duration: 800 * ms,
		FromHz: 440, ToHz: 880, Glide: RampLinear,
		FromGain: 0.5, ToGain: 0, Fade: RampLinear,
	}},
	core.EventBad: {{
		Wave: WaveSaw, Duration: 300 * ms,
		FromHz: 150, ToHz: 50, Glide: RampExponential,
		FromGain: 0.5, ToGain: 0, Fade: RampLinear,
	}},
	core.EventGameOver: {
		knell(392, 0),      // G4
		knell(370, 300*ms), // F#4
		knell(349, 600*ms), // F4
		knell(330, 900*ms), // E4
	},
}

// Voices returns the voices played for ev, or nil if it is silent.
func Voices(ev core.Event) []Voice {
	return sounds[ev]
}

// Length returns how long the effect for ev lasts.
func Length(ev core.Event) time.Duration {
	var longest time.Duration
	for _, v := range sounds[ev] {
		longest = max(longest, v.Length())
	}
	return longest
}

// Render builds the streamer for ev at the given sample rate.
// Silent events yield nil.
func Render(ev core.Event, rate beep.SampleRate) beep.Streamer {
	voices := sounds[ev]
	if len(voices) == 0 {
		return nil
	}

	streams := make([]beep.Streamer, 0, len(voices))
	for _, v := range voices {
		var s beep.Streamer = newTone(v, rate)
		if v.Delay > 0 {
			s = beep.Seq(beep.Silence(rate.N(v.Delay)), s)
		}
		streams = append(streams, s)
	}
	if len(streams) == 1 {
		return streams[0]
	}
	return beep.Mix(streams...)
}
