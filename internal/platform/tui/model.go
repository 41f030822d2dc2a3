package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/northern-dash/internal/audio"
	"github.com/vovakirdan/northern-dash/internal/core"
	"github.com/vovakirdan/northern-dash/internal/registry"
	"github.com/vovakirdan/northern-dash/internal/storage"
	"github.com/vovakirdan/northern-dash/internal/verdict"
)

// Status is the phase of the play screen.
type Status int

const (
	StatusStart Status = iota
	StatusPlaying
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusStart:
		return "start"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// RunStore is the part of the score storage the play screen needs.
type RunStore interface {
	SaveRun(run storage.Run) (storage.Run, error)
	SetVerdict(runID, verdict string) error
	HighScore(gameID string) (int, error)
}

// Options wires the collaborators of a play session. Zero values are safe:
// no store disables persistence, no sink is silent, no judge uses Santa.
type Options struct {
	Store          RunStore
	Sink           audio.Sink
	Judge          verdict.Provider
	Logger         *log.Logger
	Difficulty     string
	KeyHoldTicks   int
	VerdictTimeout time.Duration
}

const defaultVerdictTimeout = 3 * time.Second

// verdictMsg carries the verdict for a saved run.
type verdictMsg struct {
	runID string
	text  string
}

// Model is the Bubble Tea model for playing Northern Lights Dash.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	keyMapper  *KeyMapper
	thrust     *core.HoldLatch
	config     core.RuntimeConfig
	fixedSeed  bool
	inputFrame core.InputFrame
	gameState  core.GameState
	status     Status
	best       int
	runID      string
	verdict    string
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	fixedSeed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Judge == nil {
		opts.Judge = verdict.Santa{}
	}
	if opts.VerdictTimeout <= 0 {
		opts.VerdictTimeout = defaultVerdictTimeout
	}
	opts.Judge = verdict.WithFallback(opts.Judge, opts.VerdictTimeout)
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		thrust:     core.NewHoldLatch(opts.KeyHoldTicks),
		config:     cfg,
		fixedSeed:  fixedSeed,
		inputFrame: core.NewInputFrame(),
	}

	if opts.Store != nil {
		best, err := opts.Store.HighScore(game.ID())
		if err != nil {
			opts.Logger.Warn("cannot load best score", "err", err)
		}
		m.best = best
	}

	// Reset here rather than in Init so the start screen shows the world.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case verdictMsg:
		return m.handleVerdict(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keyMapper.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionThrust:
		// Terminals send repeats while a key is down but never a release.
		m.thrust.Press()
		if m.status == StatusStart {
			m.status = StatusPlaying
			m.opts.Logger.Info("run started", "seed", m.config.Seed, "difficulty", m.opts.Difficulty)
		}
	case core.ActionConfirm:
		if m.status == StatusStart {
			m.status = StatusPlaying
		}
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.status == StatusGameOver {
			m.restart()
		}
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	}

	return m, nil
}

// handleMouse maps button press and release to an exact thrust hold.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if !IsThrustButton(msg) {
			return m, nil
		}
		m.thrust.Pin()
		if m.status == StatusStart {
			m.status = StatusPlaying
		}
	case tea.MouseActionRelease:
		m.thrust.Release()
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The world is sized from the screen, so a live run starts over.
	if m.status != StatusGameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.thrust.Release()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.config.TickRate)
	if m.status != StatusPlaying {
		m.inputFrame.Clear()
		return m, next
	}

	m.inputFrame.SetHeld(core.ActionThrust, m.thrust.Down())
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.thrust.Tick()
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.opts.Sink.Play(ev)
	}

	if m.gameState.GameOver {
		judge := m.finishRun()
		return m, tea.Batch(next, judge)
	}
	return m, next
}

// finishRun records the finished run once and asks for its verdict.
func (m *Model) finishRun() tea.Cmd {
	m.status = StatusGameOver
	m.thrust.Release()
	m.runID = storage.NewRunID()
	m.verdict = ""

	score, presents := m.gameState.Score, m.gameState.Presents
	m.opts.Logger.Info("game over", "run", m.runID, "score", score, "presents", presents, "best", m.best)
	if score > m.best {
		m.best = score
	}

	if m.opts.Store != nil {
		_, err := m.opts.Store.SaveRun(storage.Run{
			RunID:      m.runID,
			GameID:     m.game.ID(),
			Score:      score,
			Presents:   presents,
			Difficulty: m.opts.Difficulty,
		})
		if err != nil {
			m.opts.Logger.Error("cannot save run", "err", err)
		}
	}

	return m.judgeCmd(m.runID, score, presents)
}

// judgeCmd asks the verdict provider off the update loop.
func (m Model) judgeCmd(runID string, score, presents int) tea.Cmd {
	judge, timeout := m.opts.Judge, m.opts.VerdictTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		text, _ := judge.Verdict(ctx, score, presents)
		return verdictMsg{runID: runID, text: text}
	}
}

// handleVerdict shows and stores a verdict unless a newer run replaced it.
func (m Model) handleVerdict(msg verdictMsg) (tea.Model, tea.Cmd) {
	if msg.runID != m.runID || m.status != StatusGameOver {
		return m, nil
	}
	m.verdict = msg.text
	if msg.text == verdict.Fallback {
		m.opts.Logger.Warn("verdict fell back", "run", msg.runID)
	}

	if m.opts.Store != nil {
		if err := m.opts.Store.SetVerdict(msg.runID, msg.text); err != nil {
			m.opts.Logger.Error("cannot store verdict", "run", msg.runID, "err", err)
		}
	}
	return m, nil
}

// restart begins a fresh run, with a new seed unless one was fixed.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.status = StatusPlaying
	m.runID = ""
	m.verdict = ""
	m.thrust.Release()
	m.inputFrame.Clear()
	m.opts.Logger.Info("run started", "seed", m.config.Seed, "difficulty", m.opts.Difficulty)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
	}
}

// render draws the game and the overlays for the current status.
func (m Model) render() {
	m.game.Render(m.screen)

	switch m.status {
	case StatusStart:
		drawPanel(m.screen, m.screen.Height()/2-4, "NORTHERN LIGHTS DASH", []string{
			"Hold SPACE or the mouse button to fly.",
			"Land on the ice to recover magic dust.",
			"Grab presents, dodge the coal.",
			"",
			"Best " + humanize.Comma(int64(m.best)) + "  |  Press SPACE to start",
		}, core.ColorWhite)

	case StatusGameOver:
		text := m.verdict
		if text == "" {
			text = "Santa is checking his list..."
		}
		drawPanel(m.screen, m.screen.Height()/2+3, "SANTA'S VERDICT", []string{
			text,
			"",
			"Best " + humanize.Comma(int64(m.best)),
		}, core.ColorBrightWhite)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// Status returns the current phase of the play screen.
func (m Model) Status() Status {
	return m.status
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
// It reports whether the player went back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press and release drive thrust
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
