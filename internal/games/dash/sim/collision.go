package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/northern-dash/internal/core"
)

// resolveLanding snaps a falling or resting player onto a platform top.
// Qualification is judged against the player's position before any snap, so
// when several platforms qualify the last one in sequence order wins.
func (e *Engine) resolveLanding() {
	p := &e.store.player
	p.Grounded = false
	if p.VY < 0 {
		return
	}

	box := p.Box()
	bottom := box.Bottom()
	tolerance := e.cfg.Platforms.LandingTolerance

	for _, plat := range e.store.platforms {
		if !box.OverlapsX(plat.Box()) {
			continue
		}
		if bottom < plat.Y || bottom > plat.Y+plat.Height+tolerance {
			continue
		}
		p.Y = plat.Y - p.Height
		p.VY = 0
		p.Grounded = true
	}
}

// scroll shifts the world left by the effective speed and ages particles.
func (e *Engine) scroll(speed float64) {
	for i := range e.store.platforms {
		e.store.platforms[i].X -= speed
	}
	for i := range e.store.collectibles {
		e.store.collectibles[i].X -= speed
	}

	drift := speed * e.cfg.Particles.ScrollFactor
	decay := e.cfg.Particles.Decay
	for i := range e.store.particles {
		pt := &e.store.particles[i]
		pt.X += pt.VX - drift
		pt.Y += pt.VY
		pt.Life -= decay
	}
}

// cull evicts entities that have scrolled past the left boundary.
func (e *Engine) cull() {
	e.store.evictPlatforms(e.cfg.Platforms.CullMargin)
	e.store.evictCollectibles(e.cfg.Collectibles.CullMargin)
	e.store.pruneParticles()
}

// resolvePickups applies magnetism and collects every overlapped item.
func (e *Engine) resolvePickups(now time.Duration, fx Effects) {
	cc := e.cfg.Collectibles
	box := e.store.player.Box()
	cx, cy := e.store.player.Center()

	for i := range e.store.collectibles {
		c := &e.store.collectibles[i]
		if c.Collected {
			continue
		}

		if fx.Magnet && c.Kind != KindCoal && c.X < e.width {
			dx := cx - c.X
			dy := cy - c.Y
			if math.Hypot(dx, dy) < cc.MagnetRadius {
				c.X += dx * cc.MagnetPull
				c.Y += dy * cc.MagnetPull
			}
		}

		if box.Intersects(c.Box(cc.Size)) {
			e.collect(c, now, fx)
		}
	}
}

// collect applies the pickup effect of c exactly once.
func (e *Engine) collect(c *Collectible, now time.Duration, fx Effects) bool {
	if c.Collected {
		return false
	}
	c.Collected = true

	p := &e.store.player
	cc := e.cfg.Collectibles
	sc := e.cfg.Scoring

	switch c.Kind {
	case KindCoal:
		p.Stamina = core.ClampF(p.Stamina-cc.CoalStamina, 0, e.cfg.Player.StaminaMax)
		e.addScore(-sc.CoalPenalty)
		e.emit(core.EventBad)
		e.burst(c.X, c.Y, e.cfg.Particles.SootColor, 1.0, 0)
	case KindCocoa:
		p.Stamina = core.ClampF(p.Stamina+cc.CocoaRefill, 0, e.cfg.Player.StaminaMax)
		e.emit(core.EventCollect)
		e.burst(c.X, c.Y, e.cfg.Particles.SteamColor, 1.2, -3)
	case KindPresent:
		e.addScore(sc.Present * fx.Multiplier)
		e.presents++
		e.emit(core.EventCollect)
		e.burst(c.X, c.Y, c.Color, 1.5, 0)
	case KindPowerUp:
		e.powerups.Add(c.PowerUp, now)
		e.addScore(sc.PowerUp * fx.Multiplier)
		e.emit(core.EventPowerUp)
		e.burst(c.X, c.Y, c.Color, 1.0, 0)
	}
	return true
}
