package sim

import "time"

// PowerUpType identifies a timed buff.
type PowerUpType uint8

const (
	PowerUpNone PowerUpType = iota
	PowerUpMagnet
	PowerUpSpeed
	PowerUpFloat
	PowerUpScoreMult
)

// powerUpTypes lists the subtypes a PowerUp collectible can carry, in draw order.
var powerUpTypes = [...]PowerUpType{PowerUpMagnet, PowerUpSpeed, PowerUpFloat, PowerUpScoreMult}

// String returns the short name for HUD display.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpMagnet:
		return "Magnet"
	case PowerUpSpeed:
		return "Speed"
	case PowerUpFloat:
		return "Float"
	case PowerUpScoreMult:
		return "x2"
	default:
		return "?"
	}
}

// ActivePowerUp is a registered buff and the clock reading at which it lapses.
type ActivePowerUp struct {
	Type    PowerUpType
	Expires time.Duration
}

// Remaining returns the time left before expiry at now.
func (a ActivePowerUp) Remaining(now time.Duration) time.Duration {
	if a.Expires <= now {
		return 0
	}
	return a.Expires - now
}

// Effects is the aggregate of all active buffs for one frame.
type Effects struct {
	Float      bool
	Speed      bool
	Magnet     bool
	Multiplier float64 // 1, or the configured factor while Score-Multiplier is active
}

// PowerUpManager tracks active timed buffs. Entries of the same type do not
// stack; they extend coverage until the last one lapses.
type PowerUpManager struct {
	active     []ActivePowerUp
	duration   time.Duration
	multiplier float64
}

// NewPowerUpManager creates a manager registering buffs for duration.
func NewPowerUpManager(duration time.Duration, multiplier float64) *PowerUpManager {
	return &PowerUpManager{
		active:     make([]ActivePowerUp, 0, 4),
		duration:   duration,
		multiplier: multiplier,
	}
}

// Reset clears all active buffs.
func (pm *PowerUpManager) Reset() {
	pm.active = pm.active[:0]
}

// Add registers a buff expiring duration after now.
func (pm *PowerUpManager) Add(t PowerUpType, now time.Duration) {
	pm.active = append(pm.active, ActivePowerUp{Type: t, Expires: now + pm.duration})
}

// Prune removes every buff whose expiry is at or before now.
func (pm *PowerUpManager) Prune(now time.Duration) {
	valid := pm.active[:0]
	for _, a := range pm.active {
		if a.Expires > now {
			valid = append(valid, a)
		}
	}
	pm.active = valid
}

// Has reports whether any buff of type t is registered.
func (pm *PowerUpManager) Has(t PowerUpType) bool {
	for _, a := range pm.active {
		if a.Type == t {
			return true
		}
	}
	return false
}

// Effects derives the aggregate booleans and score multiplier.
func (pm *PowerUpManager) Effects() Effects {
	fx := Effects{
		Float:      pm.Has(PowerUpFloat),
		Speed:      pm.Has(PowerUpSpeed),
		Magnet:     pm.Has(PowerUpMagnet),
		Multiplier: 1,
	}
	if pm.Has(PowerUpScoreMult) {
		fx.Multiplier = pm.multiplier
	}
	return fx
}

// Active returns a copy of the registered buffs in registration order.
func (pm *PowerUpManager) Active() []ActivePowerUp {
	out := make([]ActivePowerUp, len(pm.active))
	copy(out, pm.active)
	return out
}
