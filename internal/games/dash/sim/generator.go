package sim

import (
	"math/rand"

	"github.com/vovakirdan/northern-dash/internal/config"
	"github.com/vovakirdan/northern-dash/internal/core"
)

// generator appends platforms and collectibles ahead of the visible frame.
// All of its randomness comes from one seeded source so a seed fixes the
// layout of the whole run.
type generator struct {
	rng *rand.Rand
	cfg *config.DashConfig
}

func newGenerator(seed int64, cfg *config.DashConfig) *generator {
	return &generator{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// reset reseeds the generator.
func (g *generator) reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// between returns a uniform value in [lo, hi).
func (g *generator) between(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// extend adds at most one platform per call. A fresh gap threshold is drawn
// every call; the platform is created once the opening to the right of the
// last platform exceeds it.
func (g *generator) extend(s *store, width, height float64) bool {
	pc := g.cfg.Platforms
	last := s.lastPlatform()

	gap := width - last.Right()
	threshold := g.between(pc.GapMin, pc.GapMax)
	if gap <= 0 || gap <= threshold {
		return false
	}

	y := last.Y + (g.rng.Float64()-0.5)*pc.VerticalJitter
	y = core.ClampF(y, pc.SafeMargin, height-pc.SafeMargin)

	plat := Platform{
		ID:     s.newID("plat"),
		X:      width + pc.SpawnOffset,
		Y:      y,
		Width:  g.between(pc.MinWidth, pc.MaxWidth),
		Height: pc.Height,
	}
	s.platforms = append(s.platforms, plat)

	if c, ok := g.collectibleFor(s, plat); ok {
		s.collectibles = append(s.collectibles, c)
	}
	return true
}

// collectibleFor rolls whether plat carries an item and, if so, which one.
// The spawn gate and the kind split are independent draws.
func (g *generator) collectibleFor(s *store, plat Platform) (Collectible, bool) {
	cc := g.cfg.Collectibles
	if g.rng.Float64() >= cc.SpawnChance {
		return Collectible{}, false
	}

	c := Collectible{ID: s.newID("col")}
	roll := g.rng.Float64()
	switch {
	case roll < cc.PowerUpShare:
		c.Kind = KindPowerUp
		c.PowerUp = powerUpTypes[g.rng.Intn(len(powerUpTypes))]
		c.Color = g.powerUpColor(c.PowerUp)
	case roll < cc.PowerUpShare+cc.CoalShare:
		c.Kind = KindCoal
		c.Color = cc.CoalColor
	case roll < cc.PowerUpShare+cc.CoalShare+cc.CocoaShare:
		c.Kind = KindCocoa
		c.Color = cc.CocoaColor
	default:
		c.Kind = KindPresent
		c.Color = cc.PresentColor[g.rng.Intn(len(cc.PresentColor))]
	}

	span := plat.Width - cc.EdgeInset
	if span < 0 {
		span = 0
	}
	c.X = plat.X + cc.Size/2 + g.rng.Float64()*span
	c.Y = plat.Y - cc.MinLift - g.rng.Float64()*cc.LiftRange
	return c, true
}

func (g *generator) powerUpColor(t PowerUpType) string {
	pu := g.cfg.PowerUps
	switch t {
	case PowerUpMagnet:
		return pu.MagnetColor
	case PowerUpSpeed:
		return pu.SpeedColor
	case PowerUpFloat:
		return pu.FloatColor
	case PowerUpScoreMult:
		return pu.ScoreColor
	default:
		return "#ffffff"
	}
}
