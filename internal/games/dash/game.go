// Package dash implements Northern Lights Dash, an endless sleigh flight.
// The player holds thrust to climb against gravity, lands on drifting
// platforms to recover stamina and collects presents while avoiding coal.
package dash

import (
	"sort"
	"time"

	"github.com/vovakirdan/northern-dash/internal/config"
	"github.com/vovakirdan/northern-dash/internal/core"
	"github.com/vovakirdan/northern-dash/internal/games/dash/sim"
	"github.com/vovakirdan/northern-dash/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "dash"

// Title is the display name.
const Title = "Northern Lights Dash"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// hudPowerUp is one entry of the sampled power-up list shown in the HUD.
type hudPowerUp struct {
	Type      sim.PowerUpType
	Remaining time.Duration
}

// Game adapts the simulation engine to the platform's game interface.
type Game struct {
	cfg       config.DashConfig
	cfgLoaded bool
	runtime   core.RuntimeConfig
	clock     *sim.TickClock
	engine    *sim.Engine
	palette   *Palette
	paused    bool
	hud       []hudPowerUp
}

// New creates a game that loads its config on first Reset.
func New() *Game {
	return &Game{palette: NewPalette()}
}

// NewWithConfig creates a game with a fixed config.
func NewWithConfig(cfg config.DashConfig) *Game {
	return &Game{cfg: cfg, cfgLoaded: true, palette: NewPalette()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset initializes or restarts the game. A new screen size resizes the world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.cfgLoaded {
		cfg, err := config.LoadDash(configPath)
		if err != nil {
			cfg = config.DefaultDashConfig()
		}
		config.ApplyDashPreset(&cfg, difficultyPreset)
		g.cfg = cfg
		g.cfgLoaded = true
	}

	world := g.worldFor(runtime)
	if g.engine == nil {
		g.clock = sim.NewTickClock(runtime.TickRate)
		g.engine = sim.New(g.cfg, g.clock, world)
	} else {
		g.clock.Reset()
		g.engine.Reset(world)
	}

	g.paused = false
	g.hud = g.hud[:0]
}

// worldFor sizes the world so one cell covers the configured world units.
func (g *Game) worldFor(runtime core.RuntimeConfig) sim.World {
	return sim.World{
		Width:  float64(runtime.ScreenW) * g.cfg.World.CellWidth,
		Height: float64(runtime.ScreenH) * g.cfg.World.CellHeight,
		Seed:   runtime.Seed,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine.Over() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.engine.SetThrust(in.IsHeld(core.ActionThrust) || in.Has(core.ActionThrust))
	g.clock.Tick()
	out := g.engine.Step()

	every := uint64(max(g.cfg.HUD.PowerUpSyncEvery, 1))
	if out.Frame%every == 0 || out.Over || hasEvent(out.Events, core.EventPowerUp) {
		g.hud = hudPowerUps(g.engine.Snapshot(), g.clock.Now())
	}

	return core.StepResult{State: g.State(), Events: out.Events}
}

// hudPowerUps lists active buffs by type with their longest remaining time.
func hudPowerUps(s sim.Snapshot, now time.Duration) []hudPowerUp {
	remaining := s.PowerUpsRemaining(now)
	out := make([]hudPowerUp, 0, len(remaining))
	for t, r := range remaining {
		out = append(out, hudPowerUp{Type: t, Remaining: r})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Type < out[j].Type
	})
	return out
}

func hasEvent(events []core.Event, ev core.Event) bool {
	for _, e := range events {
		if e == ev {
			return true
		}
	}
	return false
}

// Result returns the final score and presents once the run has ended.
func (g *Game) Result() sim.RunResult {
	return g.engine.Result()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Score:    g.engine.Score(),
		Presents: g.engine.Presents(),
		GameOver: g.engine.Over(),
		Paused:   g.paused,
	}
	if st.GameOver {
		st.Presents = g.engine.Result().PresentsCollected
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
