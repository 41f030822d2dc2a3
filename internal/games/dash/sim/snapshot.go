package sim

import "time"

// Snapshot contains the complete run state for comparison and debugging.
// Slices are copies and safe to keep.
type Snapshot struct {
	Frame    uint64
	Score    float64
	Speed    float64
	Presents int
	Thrust   bool
	Over     bool

	Player       Player
	Platforms    []Platform
	Collectibles []Collectible
	Particles    []Particle
	PowerUps     []ActivePowerUp
}

// Snapshot returns the current state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Frame:        e.frame,
		Score:        e.score,
		Speed:        e.speed,
		Presents:     e.presents,
		Thrust:       e.thrust,
		Over:         e.over,
		Player:       e.store.player,
		Platforms:    append([]Platform{}, e.store.platforms...),
		Collectibles: append([]Collectible{}, e.store.collectibles...),
		Particles:    append([]Particle{}, e.store.particles...),
		PowerUps:     e.powerups.Active(),
	}
}

// PowerUpsRemaining returns, for each active buff type, the longest time
// left at now. Types without an active buff are absent.
func (s Snapshot) PowerUpsRemaining(now time.Duration) map[PowerUpType]time.Duration {
	out := make(map[PowerUpType]time.Duration, len(s.PowerUps))
	for _, a := range s.PowerUps {
		if r := a.Remaining(now); r > out[a.Type] {
			out[a.Type] = r
		}
	}
	return out
}
