package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/northern-dash/internal/config"
	"github.com/vovakirdan/northern-dash/internal/core"
	"github.com/vovakirdan/northern-dash/internal/games/dash"
	"github.com/vovakirdan/northern-dash/internal/storage"
	"github.com/vovakirdan/northern-dash/internal/verdict"
)

// stubGame ends the run after a fixed number of steps and records its input.
type stubGame struct {
	steps    int
	endAfter int
	resets   int
	seeds    []int64
	held     []bool
	events   []core.Event
	score    int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.steps = 0
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if g.State().GameOver {
		return core.StepResult{State: g.State()}
	}
	g.steps++
	g.held = append(g.held, in.IsHeld(core.ActionThrust))
	res := core.StepResult{State: g.State(), Events: g.events}
	if res.State.GameOver {
		res.Events = append(res.Events, core.EventGameOver)
	}
	return res
}

func (g *stubGame) Render(dst *core.Screen) { dst.Clear() }

func (g *stubGame) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Presents: 2,
		GameOver: g.endAfter > 0 && g.steps >= g.endAfter,
	}
}

type fakeStore struct {
	best     int
	bestErr  error
	saved    []storage.Run
	verdicts map[string]string
	saveErr  error
}

func (s *fakeStore) SaveRun(run storage.Run) (storage.Run, error) {
	if s.saveErr != nil {
		return storage.Run{}, s.saveErr
	}
	s.saved = append(s.saved, run)
	return run, nil
}

func (s *fakeStore) SetVerdict(runID, text string) error {
	if s.verdicts == nil {
		s.verdicts = make(map[string]string)
	}
	s.verdicts[runID] = text
	return nil
}

func (s *fakeStore) HighScore(string) (int, error) {
	return s.best, s.bestErr
}

type recordingSink struct {
	played []core.Event
	closed bool
}

func (s *recordingSink) Play(ev core.Event) { s.played = append(s.played, ev) }
func (s *recordingSink) Close() error       { s.closed = true; return nil }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 60, Seed: 7}
}

// update feeds msg to m and returns the concrete model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func TestModelStartsOnTitle(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{})

	if m.Status() != StatusStart {
		t.Fatalf("status = %v, want start", m.Status())
	}
	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}

	m, _ = update(t, m, TickMsg{})
	if game.steps != 0 {
		t.Error("game stepped before start")
	}

	m, _ = update(t, m, space())
	if m.Status() != StatusPlaying {
		t.Fatalf("status = %v, want playing", m.Status())
	}
	update(t, m, TickMsg{})
	if game.steps != 1 {
		t.Errorf("steps = %d, want 1", game.steps)
	}
}

func TestModelKeyThrustLatches(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{KeyHoldTicks: 3})

	m, _ = update(t, m, space())
	for range 5 {
		m, _ = update(t, m, TickMsg{})
	}

	want := []bool{true, true, true, false, false}
	for i, h := range want {
		if game.held[i] != h {
			t.Errorf("tick %d held = %v, want %v", i, game.held[i], h)
		}
	}
}

func TestModelMouseThrustHoldsUntilRelease(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{KeyHoldTicks: 1})

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Status() != StatusPlaying {
		t.Fatal("mouse press should start the run")
	}
	for range 4 {
		m, _ = update(t, m, TickMsg{})
	}
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{})

	want := []bool{true, true, true, true, false}
	for i, h := range want {
		if game.held[i] != h {
			t.Errorf("tick %d held = %v, want %v", i, game.held[i], h)
		}
	}
}

func TestModelForwardsEventsToSink(t *testing.T) {
	game := &stubGame{events: []core.Event{core.EventCollect}}
	sink := &recordingSink{}
	m := NewModel(game, testConfig(), Options{Sink: sink})

	m, _ = update(t, m, space())
	update(t, m, TickMsg{})

	if len(sink.played) != 1 || sink.played[0] != core.EventCollect {
		t.Errorf("played = %v, want [Collect]", sink.played)
	}
}

func TestModelGameOverSavesOnceAndStoresVerdict(t *testing.T) {
	game := &stubGame{endAfter: 2, score: 4200}
	store := &fakeStore{best: 1000}
	sink := &recordingSink{}
	m := NewModel(game, testConfig(), Options{Store: store, Sink: sink, Difficulty: "hard"})

	m, _ = update(t, m, space())
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	if m.Status() != StatusGameOver {
		t.Fatalf("status = %v, want game over", m.Status())
	}

	// More ticks after the end must not save again.
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if len(store.saved) != 1 {
		t.Fatalf("saved %d runs, want 1", len(store.saved))
	}
	run := store.saved[0]
	if run.Score != 4200 || run.Presents != 2 || run.Difficulty != "hard" || run.GameID != "stub" {
		t.Errorf("saved run = %+v", run)
	}
	if run.RunID == "" || run.RunID != m.runID {
		t.Errorf("run id = %q, model has %q", run.RunID, m.runID)
	}
	if m.best != 4200 {
		t.Errorf("best = %d, want 4200", m.best)
	}
	if sink.played[len(sink.played)-1] != core.EventGameOver {
		t.Errorf("last sound = %v, want GameOver", sink.played[len(sink.played)-1])
	}

	msg := m.judgeCmd(m.runID, run.Score, run.Presents)()
	m, _ = update(t, m, msg)
	if !strings.Contains(m.verdict, "Sleigh Team Material") {
		t.Errorf("verdict = %q", m.verdict)
	}
	if store.verdicts[run.RunID] != m.verdict {
		t.Errorf("stored verdict = %q, want %q", store.verdicts[run.RunID], m.verdict)
	}
}

func TestModelStaleVerdictIgnored(t *testing.T) {
	game := &stubGame{endAfter: 1}
	store := &fakeStore{}
	m := NewModel(game, testConfig(), Options{Store: store})

	m, _ = update(t, m, space())
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, verdictMsg{runID: "someone-else", text: "nope"})

	if m.verdict != "" {
		t.Errorf("verdict = %q, want empty", m.verdict)
	}
	if len(store.verdicts) != 0 {
		t.Errorf("stored %v", store.verdicts)
	}
}

func TestModelVerdictFallback(t *testing.T) {
	game := &stubGame{endAfter: 1}
	failing := verdict.ProviderFunc(func(context.Context, int, int) (string, error) {
		return "", errors.New("chimney blocked")
	})
	m := NewModel(game, testConfig(), Options{Judge: failing})

	m, _ = update(t, m, space())
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, m.judgeCmd(m.runID, 0, 0)())

	if m.verdict != verdict.Fallback {
		t.Errorf("verdict = %q, want fallback", m.verdict)
	}
}

func TestModelStorageFailureKeepsPlaying(t *testing.T) {
	game := &stubGame{endAfter: 1, score: 10}
	store := &fakeStore{bestErr: errors.New("locked"), saveErr: errors.New("disk full")}
	m := NewModel(game, testConfig(), Options{Store: store})

	m, _ = update(t, m, space())
	m, _ = update(t, m, TickMsg{})
	if m.Status() != StatusGameOver {
		t.Fatalf("status = %v, want game over", m.Status())
	}

	m, _ = update(t, m, runeKey('r'))
	if m.Status() != StatusPlaying {
		t.Errorf("status after restart = %v, want playing", m.Status())
	}
}

func TestModelRestart(t *testing.T) {
	tests := []struct {
		name      string
		seed      int64
		sameSeeds bool
	}{
		{"fixed seed replays", 42, true},
		{"random seed changes", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &stubGame{endAfter: 1}
			cfg := testConfig()
			cfg.Seed = tt.seed
			m := NewModel(game, cfg, Options{})

			// Restart is ignored while playing.
			m, _ = update(t, m, space())
			m, _ = update(t, m, runeKey('r'))
			if game.resets != 1 {
				t.Fatalf("resets = %d before game over", game.resets)
			}

			m, _ = update(t, m, TickMsg{})
			m, _ = update(t, m, runeKey('r'))
			if game.resets != 2 {
				t.Fatalf("resets = %d, want 2", game.resets)
			}
			if m.runID != "" || m.verdict != "" {
				t.Error("restart kept the previous run")
			}
			if got := game.seeds[0] == game.seeds[1]; got != tt.sameSeeds {
				t.Errorf("seeds %v, same = %v, want %v", game.seeds, got, tt.sameSeeds)
			}
		})
	}
}

func TestModelResize(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testConfig(), Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 24})
	if game.resets != 1 {
		t.Error("same size should not reset")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := NewModel(&stubGame{}, testConfig(), Options{})

	back, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || cmd == nil {
		t.Error("esc should return to the menu")
	}

	quit, cmd := update(t, m, runeKey('q'))
	if quit.BackToMenu() || cmd == nil || quit.View() != "" {
		t.Error("q should quit")
	}
}

func TestModelViewOverlays(t *testing.T) {
	game := &stubGame{endAfter: 1}
	m := NewModel(game, testConfig(), Options{Store: &fakeStore{best: 1500}})

	if !strings.Contains(m.screen.String()+m.View(), "NORTHERN LIGHTS DASH") {
		t.Error("start panel missing")
	}
	if !strings.Contains(m.screen.String(), "Best 1,500") {
		t.Error("best score missing from start panel")
	}

	m, _ = update(t, m, space())
	m, _ = update(t, m, TickMsg{})
	m.View()
	if !strings.Contains(m.screen.String(), "Santa is checking his list") {
		t.Error("pending verdict missing")
	}
}

func TestModelWithDashGame(t *testing.T) {
	game := dash.NewWithConfig(config.DefaultDashConfig())
	m := NewModel(game, testConfig(), Options{})

	m, _ = update(t, m, space())
	for range 30 {
		m, _ = update(t, m, TickMsg{})
	}
	if m.gameState.Score <= 0 {
		t.Errorf("score = %d after 30 ticks", m.gameState.Score)
	}
	if !strings.Contains(m.View(), "Score") {
		t.Error("HUD missing from view")
	}
}
