package sim

import (
	"fmt"

	"github.com/vovakirdan/northern-dash/internal/core"
)

// Player is the single player-controlled body. Horizontal position is fixed;
// forward motion is simulated by scrolling the world.
type Player struct {
	X, Y     float64 // Top-left corner
	VY       float64 // Vertical velocity (positive = down)
	Width    float64
	Height   float64
	Stamina  float64 // In [0, StaminaMax]
	Grounded bool
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Center returns the center of the player's box.
func (p Player) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// Platform is a landing surface. Y is its top edge.
type Platform struct {
	ID     string
	X, Y   float64
	Width  float64
	Height float64
}

// Box returns the platform's collision box.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Right returns the x-coordinate of the trailing edge.
func (p Platform) Right() float64 {
	return p.X + p.Width
}

// Kind classifies a collectible.
type Kind uint8

const (
	KindPresent Kind = iota
	KindPowerUp
	KindCoal
	KindCocoa
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPresent:
		return "present"
	case KindPowerUp:
		return "powerup"
	case KindCoal:
		return "coal"
	case KindCocoa:
		return "cocoa"
	default:
		return "unknown"
	}
}

// Collectible is an item floating above a platform. X and Y are its center.
type Collectible struct {
	ID        string
	X, Y      float64
	Kind      Kind
	PowerUp   PowerUpType // Only meaningful when Kind == KindPowerUp
	Collected bool
	Color     string // Hex display color
}

// Box returns the pickup box of the given size centered on the collectible.
func (c Collectible) Box(size float64) core.Box {
	return core.CenteredBox(c.X, c.Y, size, size)
}

// Particle is a transient visual effect token.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1.0 when fresh, removed at <= 0
	Color  string
	Size   float64
}

// store owns every entity collection of a run. Platforms and collectibles
// are append-only at the back and evicted from the front; particles are
// unordered.
type store struct {
	player       Player
	platforms    []Platform
	collectibles []Collectible
	particles    []Particle
	nextID       int
}

// reset replaces all collections so nothing from a previous run survives.
func (s *store) reset(player Player, start Platform) {
	s.player = player
	s.platforms = []Platform{start}
	s.collectibles = make([]Collectible, 0, 16)
	s.particles = make([]Particle, 0, 64)
	s.nextID = 0
}

// newID returns a sequential identifier with the given prefix.
func (s *store) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

// lastPlatform returns the most recently created platform.
// The sequence must be non-empty.
func (s *store) lastPlatform() Platform {
	return s.platforms[len(s.platforms)-1]
}

// evictPlatforms removes platforms from the front while their trailing edge
// is left of -margin.
func (s *store) evictPlatforms(margin float64) int {
	n := 0
	for n < len(s.platforms) && s.platforms[n].Right() < -margin {
		n++
	}
	if n > 0 {
		s.platforms = append(s.platforms[:0], s.platforms[n:]...)
	}
	return n
}

// evictCollectibles removes collectibles from the front while their center
// is left of -margin.
func (s *store) evictCollectibles(margin float64) int {
	n := 0
	for n < len(s.collectibles) && s.collectibles[n].X < -margin {
		n++
	}
	if n > 0 {
		s.collectibles = append(s.collectibles[:0], s.collectibles[n:]...)
	}
	return n
}

// pruneParticles drops particles whose life has run out.
func (s *store) pruneParticles() {
	valid := s.particles[:0]
	for _, p := range s.particles {
		if p.Life > 0 {
			valid = append(valid, p)
		}
	}
	// Clear the tail so dropped particles do not linger in the backing array
	for i := len(valid); i < len(s.particles); i++ {
		s.particles[i] = Particle{}
	}
	s.particles = valid
}
