// Package sim is the frame-driven simulation of Northern Lights Dash. It owns
// every entity of a run and performs no I/O; rendering, audio and
// persistence observe it through accessors, events and the game-over result.
package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/northern-dash/internal/config"
	"github.com/vovakirdan/northern-dash/internal/core"
)

// World is the visible frame in world units plus the run seed.
type World struct {
	Width  float64
	Height float64
	Seed   int64
}

// FrameOutcome summarizes one call to Step.
type FrameOutcome struct {
	Frame  uint64
	Events []core.Event
	Over   bool
	Result RunResult // Set once Over is true
}

// Engine advances one run of the game a frame at a time.
// It is not safe for concurrent use; a single driver calls Step.
type Engine struct {
	cfg   config.DashConfig
	clock Clock

	width  float64
	height float64
	seed   int64

	store      store
	gen        *generator
	sparks     *rand.Rand // Particle randomness, independent of the layout
	powerups   *PowerUpManager
	difficulty *config.DifficultyManager

	frame      uint64
	speed      float64
	score      float64
	presents   int
	thrust     bool
	prevThrust bool
	over       bool
	result     RunResult

	events   []core.Event
	listener Listener
}

// New creates an engine and initializes the first run.
func New(cfg config.DashConfig, clock Clock, world World) *Engine {
	if clock == nil {
		clock = NewSystemClock()
	}
	e := &Engine{
		cfg:        cfg,
		clock:      clock,
		powerups:   NewPowerUpManager(cfg.PowerUps.Duration, cfg.Scoring.Multiplier),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		events:     make([]core.Event, 0, 8),
	}
	e.gen = newGenerator(world.Seed, &e.cfg)
	e.Reset(world)
	return e
}

// SetListener installs l to receive events; nil removes it.
func (e *Engine) SetListener(l Listener) {
	e.listener = l
}

// Reset replaces all run state. A reset engine is indistinguishable from a
// freshly constructed one with the same world.
func (e *Engine) Reset(world World) {
	e.width = world.Width
	e.height = world.Height
	e.seed = world.Seed

	e.store.reset(e.startPlayer(), e.startPlatform("start"))
	e.gen.reset(world.Seed)
	e.sparks = rand.New(rand.NewSource(world.Seed ^ 0x5eed))
	e.powerups.Reset()

	e.frame = 0
	e.speed = e.difficulty.InitialSpeed()
	e.score = 0
	e.presents = 0
	e.thrust = false
	e.prevThrust = false
	e.over = false
	e.result = RunResult{}
	e.events = e.events[:0]
}

func (e *Engine) startPlayer() Player {
	pc := e.cfg.Player
	return Player{
		X:       pc.X,
		Y:       e.height / 2,
		Width:   pc.Width,
		Height:  pc.Height,
		Stamina: pc.StaminaMax,
	}
}

func (e *Engine) startPlatform(id string) Platform {
	pc := e.cfg.Platforms
	return Platform{
		ID:     id,
		X:      pc.StartX,
		Y:      e.height/2 + pc.StartDrop,
		Width:  pc.StartWidth,
		Height: pc.Height,
	}
}

// SetThrust records whether the thrust control is held. It takes effect on
// the next Step.
func (e *Engine) SetThrust(held bool) {
	e.thrust = held
}

// Step advances the simulation by one frame. After game over it returns the
// final outcome without simulating until Reset is called.
func (e *Engine) Step() FrameOutcome {
	if e.over {
		return FrameOutcome{Frame: e.frame, Over: true, Result: e.result}
	}

	e.events = e.events[:0]
	e.frame++
	now := e.clock.Now()

	if len(e.store.platforms) == 0 {
		e.store.platforms = append(e.store.platforms, e.startPlatform("safety"))
	}

	e.powerups.Prune(now)
	fx := e.powerups.Effects()

	e.speed = e.difficulty.Advance(e.speed)
	effective := e.difficulty.Effective(e.speed, fx.Speed, e.cfg.PowerUps.SpeedBoost)

	if e.thrust && !e.prevThrust && e.store.player.Grounded {
		e.emit(core.EventJump)
	}
	e.prevThrust = e.thrust

	thrusting := e.integrate(fx)
	e.emitFlightParticles(thrusting, fx)

	e.resolveLanding()
	e.scroll(effective)
	e.cull()
	e.gen.extend(&e.store, e.width, e.height)
	e.resolvePickups(now, fx)
	e.accrueSurvival(effective, fx)

	if e.store.player.Y > e.height {
		e.over = true
		e.result = RunResult{FinalScore: e.Score(), PresentsCollected: e.collectedPresents()}
		e.emit(core.EventGameOver)
		if e.listener != nil {
			e.listener.OnGameOver(e.result)
		}
	}

	out := FrameOutcome{Frame: e.frame, Over: e.over, Result: e.result}
	if len(e.events) > 0 {
		out.Events = append([]core.Event(nil), e.events...)
	}
	return out
}

// Player returns a copy of the player.
func (e *Engine) Player() Player {
	return e.store.player
}

// Platforms returns the live platform sequence, oldest first.
// Callers must not modify it.
func (e *Engine) Platforms() []Platform {
	return e.store.platforms
}

// Collectibles returns the live collectible sequence, oldest first.
// Callers must not modify it.
func (e *Engine) Collectibles() []Collectible {
	return e.store.collectibles
}

// Particles returns the live particle bag. Callers must not modify it.
func (e *Engine) Particles() []Particle {
	return e.store.particles
}

// ActivePowerUps returns a copy of the registered buffs.
func (e *Engine) ActivePowerUps() []ActivePowerUp {
	return e.powerups.Active()
}

// Effects returns the buff aggregate as of now.
func (e *Engine) Effects() Effects {
	return e.powerups.Effects()
}

// Speed returns the current scroll speed before any boost.
func (e *Engine) Speed() float64 {
	return e.speed
}

// Level returns scroll speed progress between base and cap (0.0 to 1.0).
func (e *Engine) Level() float64 {
	return e.difficulty.Level(e.speed)
}

// Frame returns the number of frames simulated this run.
func (e *Engine) Frame() uint64 {
	return e.frame
}

// Now returns the engine clock reading.
func (e *Engine) Now() time.Duration {
	return e.clock.Now()
}

// Presents returns how many presents have been collected this run,
// including those that have since scrolled away. The HUD shows this tally.
func (e *Engine) Presents() int {
	return e.presents
}

// collectedPresents counts the collected presents still held in the
// collectible sequence. Culled presents no longer count.
func (e *Engine) collectedPresents() int {
	n := 0
	for _, c := range e.store.collectibles {
		if c.Kind == KindPresent && c.Collected {
			n++
		}
	}
	return n
}

// Thrust reports whether the thrust control is held.
func (e *Engine) Thrust() bool {
	return e.thrust
}

// Over reports whether the run has ended.
func (e *Engine) Over() bool {
	return e.over
}

// Result returns the game-over result; zero until the run ends.
func (e *Engine) Result() RunResult {
	return e.result
}

// Bounds returns the world size.
func (e *Engine) Bounds() (width, height float64) {
	return e.width, e.height
}

// Config returns the tuning the engine runs with.
func (e *Engine) Config() config.DashConfig {
	return e.cfg
}
