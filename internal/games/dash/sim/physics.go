package sim

// integrate applies thrust and gravity to the player and advances its
// position. It reports whether thrust was actually applied this frame.
func (e *Engine) integrate(fx Effects) bool {
	p := &e.store.player
	phys := e.cfg.Physics

	thrusting := e.thrust && (p.Stamina > 0 || fx.Float)
	if thrusting {
		p.VY += phys.Thrust
		if !fx.Float {
			p.Stamina -= e.cfg.Player.StaminaDrain
			if p.Stamina < 0 {
				p.Stamina = 0
			}
		}
	} else if !e.thrust && p.Grounded {
		p.Stamina += e.cfg.Player.StaminaRegen
		if p.Stamina > e.cfg.Player.StaminaMax {
			p.Stamina = e.cfg.Player.StaminaMax
		}
	}

	gravity := phys.Gravity
	if fx.Float {
		gravity *= phys.FloatGravity
	}
	p.VY += gravity
	p.Y += p.VY

	// Velocity band
	if p.VY < phys.MinVelocity {
		p.VY = phys.MinVelocity
	} else if p.VY > phys.MaxVelocity {
		p.VY = phys.MaxVelocity
	}

	// Ceiling
	if p.Y < 0 {
		p.Y = 0
		if p.VY < 0 {
			p.VY = 0
		}
	}

	return thrusting
}

// emitFlightParticles spawns the exhaust burst under a thrusting player and
// the periodic trail behind it.
func (e *Engine) emitFlightParticles(thrusting bool, fx Effects) {
	p := e.store.player
	pc := e.cfg.Particles

	if thrusting {
		for range pc.ExhaustCount {
			e.addParticle(Particle{
				X:     p.X + 10 + e.sparks.Float64()*20,
				Y:     p.Y + p.Height,
				VX:    -e.sparks.Float64() * 2,
				VY:    2 + e.sparks.Float64()*2,
				Life:  0.8,
				Color: pc.ExhaustColor,
				Size:  2 + e.sparks.Float64()*2,
			})
		}
	}

	if e.frame%uint64(max(pc.TrailEvery, 1)) == 0 {
		color := pc.TrailColor
		if fx.Float {
			color = pc.FloatColor
		}
		e.addParticle(Particle{
			X:     p.X,
			Y:     p.Y + p.Height/2,
			VX:    -2 - e.sparks.Float64()*2,
			VY:    (e.sparks.Float64() - 0.5) * 0.5,
			Life:  1.0,
			Color: color,
			Size:  1 + e.sparks.Float64()*3,
		})
	}
}

// burst spawns a ring of particles at (x, y). A negative lift makes them
// drift upward instead of scattering.
func (e *Engine) burst(x, y float64, color string, life, lift float64) {
	for range e.cfg.Particles.BurstCount {
		vy := (e.sparks.Float64() - 0.5) * 10
		if lift < 0 {
			vy = lift * (0.5 + e.sparks.Float64())
		}
		e.addParticle(Particle{
			X:     x,
			Y:     y,
			VX:    (e.sparks.Float64() - 0.5) * 10,
			VY:    vy,
			Life:  life,
			Color: color,
			Size:  2 + e.sparks.Float64()*4,
		})
	}
}

func (e *Engine) addParticle(p Particle) {
	e.store.particles = append(e.store.particles, p)
}
