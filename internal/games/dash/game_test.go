package dash

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/northern-dash/internal/config"
	"github.com/vovakirdan/northern-dash/internal/core"
	"github.com/vovakirdan/northern-dash/internal/games/dash/sim"
	"github.com/vovakirdan/northern-dash/internal/registry"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultDashConfig())
	g.Reset(testRuntime)
	return g
}

func heldThrust() core.InputFrame {
	in := core.NewInputFrame()
	in.SetHeld(core.ActionThrust, true)
	return in
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("dash is not registered")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Northern Lights Dash" {
		t.Errorf("title = %q", g.Title())
	}
}

func TestWorldScalesWithScreen(t *testing.T) {
	g := newTestGame(t)
	w, h := g.engine.Bounds()
	if w != 80*16 || h != 24*32 {
		t.Errorf("world = %vx%v, want 1280x768", w, h)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 1})
	w, h = g.engine.Bounds()
	if w != 1600 || h != 960 {
		t.Errorf("resized world = %vx%v, want 1600x960", w, h)
	}
}

func TestHeldThrustReachesEngine(t *testing.T) {
	g := newTestGame(t)

	g.Step(heldThrust())
	if !g.engine.Thrust() {
		t.Error("held thrust was not forwarded")
	}
	if got := g.engine.Player().Stamina; got >= 100 {
		t.Errorf("stamina = %v, want drained", got)
	}

	g.Step(core.NewInputFrame())
	if g.engine.Thrust() {
		t.Error("released thrust still held")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame())
	frame := g.engine.Frame()

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.engine.Frame() != frame {
		t.Errorf("frame advanced while paused: %d -> %d", frame, g.engine.Frame())
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRunEndsAndReports(t *testing.T) {
	g := newTestGame(t)

	var last core.StepResult
	for range 2000 {
		last = g.Step(core.NewInputFrame())
		if last.State.GameOver {
			break
		}
	}
	if !last.State.GameOver {
		t.Fatal("run never ended without thrust")
	}
	if !hasEvent(last.Events, core.EventGameOver) {
		t.Errorf("events = %v, want gameover", last.Events)
	}
	if g.Result().PresentsCollected != 0 {
		t.Errorf("presents = %d, want 0", g.Result().PresentsCollected)
	}
	if got := g.State().Presents; got != g.Result().PresentsCollected {
		t.Errorf("state presents = %d, want result's %d", got, g.Result().PresentsCollected)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box not rendered")
	}
}

func TestResetAfterGameOverMatchesFresh(t *testing.T) {
	g := newTestGame(t)
	for range 2000 {
		if g.Step(heldThrust()).State.GameOver {
			break
		}
	}
	g.Reset(testRuntime)

	fresh := newTestGame(t)
	if !reflect.DeepEqual(g.engine.Snapshot(), fresh.engine.Snapshot()) {
		t.Error("restarted run differs from a fresh one")
	}
	if g.clock.Now() != 0 || g.State().GameOver || g.State().Score != 0 {
		t.Error("restart kept state from the previous run")
	}
}

func TestDeterministicAcrossGames(t *testing.T) {
	play := func() core.GameState {
		g := newTestGame(t)
		var st core.GameState
		for i := range 600 {
			in := core.NewInputFrame()
			in.SetHeld(core.ActionThrust, i%40 < 12)
			st = g.Step(in).State
			if st.GameOver {
				break
			}
		}
		return st
	}

	if a, b := play(), play(); a != b {
		t.Errorf("same seed and input diverged: %+v vs %+v", a, b)
	}
}

func TestRenderScene(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "Score 0") || !strings.Contains(row, "Dust") {
		t.Errorf("HUD row = %q", row)
	}

	// Player at world (100, 384) -> cell (6, 12).
	if got := screen.Get(7, 12); got != '▄' {
		t.Errorf("sleigh top = %q, want '▄'", got)
	}
	if got := screen.Get(6, 13); got != '╚' {
		t.Errorf("sleigh runner = %q, want '╚'", got)
	}

	// Start platform at world (50, 484) width 400 -> cells 3..27 on row 15.
	for _, x := range []int{3, 15, 27} {
		if got := screen.Get(x, 15); got != PlatformChar {
			t.Errorf("platform cell (%d, 15) = %q", x, got)
		}
	}
	if got := screen.Get(28, 15); got == PlatformChar {
		t.Error("platform drawn past its width")
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause box not rendered")
	}
}

func TestHUDPowerUps(t *testing.T) {
	snap := sim.Snapshot{PowerUps: []sim.ActivePowerUp{
		{Type: sim.PowerUpScoreMult, Expires: 4 * time.Second},
		{Type: sim.PowerUpMagnet, Expires: 3 * time.Second},
		{Type: sim.PowerUpMagnet, Expires: 6 * time.Second},
	}}

	got := hudPowerUps(snap, 2*time.Second)
	want := []hudPowerUp{
		{Type: sim.PowerUpMagnet, Remaining: 4 * time.Second},
		{Type: sim.PowerUpScoreMult, Remaining: 2 * time.Second},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("hudPowerUps = %+v, want %+v", got, want)
	}
}

func TestHUDSyncCadence(t *testing.T) {
	cfg := config.DefaultDashConfig()
	cfg.HUD.PowerUpSyncEvery = 5
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)

	// Seed a stale entry; only a sync frame replaces it.
	g.hud = []hudPowerUp{{Type: sim.PowerUpFloat, Remaining: time.Second}}
	for range 4 {
		g.Step(core.NewInputFrame())
	}
	if len(g.hud) != 1 {
		t.Fatal("HUD resynced before the cadence frame")
	}
	g.Step(core.NewInputFrame())
	if len(g.hud) != 0 {
		t.Errorf("HUD after sync frame = %+v, want empty", g.hud)
	}
}

func TestGlyphs(t *testing.T) {
	tests := []struct {
		c    sim.Collectible
		want rune
	}{
		{sim.Collectible{Kind: sim.KindPresent}, '■'},
		{sim.Collectible{Kind: sim.KindCoal}, '●'},
		{sim.Collectible{Kind: sim.KindCocoa}, 'u'},
		{sim.Collectible{Kind: sim.KindPowerUp, PowerUp: sim.PowerUpMagnet}, 'U'},
		{sim.Collectible{Kind: sim.KindPowerUp, PowerUp: sim.PowerUpScoreMult}, '×'},
	}
	for _, tt := range tests {
		if got := Glyph(tt.c); got != tt.want {
			t.Errorf("Glyph(%v) = %q, want %q", tt.c.Kind, got, tt.want)
		}
	}
}
