package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/northern-dash/internal/audio"
	"github.com/vovakirdan/northern-dash/internal/config"
	"github.com/vovakirdan/northern-dash/internal/core"
	"github.com/vovakirdan/northern-dash/internal/games/dash"
	"github.com/vovakirdan/northern-dash/internal/platform/tui"
	"github.com/vovakirdan/northern-dash/internal/storage"
	"github.com/vovakirdan/northern-dash/internal/verdict"
)

// session holds what an interactive command shares across screens.
type session struct {
	logger  *log.Logger
	logFile io.Closer
	store   *storage.Store
	sink    audio.Sink
	cfg     config.DashConfig
}

// openSession builds the logger, loads the config and opens storage and
// audio. Storage and audio failures are logged and the session goes on
// without them.
func openSession() *session {
	s := &session{}
	s.logger, s.logFile = newLogger(flagLogPath)

	dash.SetConfigPath(flagConfig)
	dash.SetDifficultyPreset(flagDifficulty)
	s.cfg = loadConfig(s.logger, flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		s.logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
	} else {
		s.store = store
	}

	s.sink = audio.Open(flagMute, audio.DefaultVolume, s.logger)
	return s
}

// loadConfig returns the effective game config, falling back to defaults.
func loadConfig(logger *log.Logger, preset string) config.DashConfig {
	cfg, err := config.LoadDash(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultDashConfig()
	}
	config.ApplyDashPreset(&cfg, config.ParsePreset(preset))
	return cfg
}

// options wires the session into a play screen.
func (s *session) options(difficulty string) tui.Options {
	opts := tui.Options{
		Sink:         s.sink,
		Judge:        verdict.Santa{},
		Logger:       s.logger,
		Difficulty:   difficulty,
		KeyHoldTicks: s.cfg.Input.KeyHoldTicks,
	}
	if s.store != nil {
		opts.Store = s.store
	}
	return opts
}

// best returns the stored high score, or 0 without storage.
func (s *session) best() int {
	if s.store == nil {
		return 0
	}
	best, err := s.store.HighScore(dash.GameID)
	if err != nil {
		s.logger.Warn("cannot load best score", "err", err)
	}
	return best
}

func (s *session) close() {
	if err := s.sink.Close(); err != nil {
		s.logger.Warn("cannot close audio", "err", err)
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("cannot close scores database", "err", err)
		}
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// newLogger writes to the log file, since the game owns the terminal.
// "-" or an unwritable path logs to stderr instead.
func newLogger(path string) (*log.Logger, io.Closer) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "dash",
	}
	if path == "-" || path == "" {
		return log.NewWithOptions(os.Stderr, opts), nil
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err == nil {
			return log.NewWithOptions(f, opts), f
		}
	}
	return log.NewWithOptions(os.Stderr, opts), nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// defaultDifficulty labels runs played on the config file's own tuning.
const defaultDifficulty = "default"

// difficultyName is the preset label stored with each run.
func difficultyName(preset string) string {
	if p := config.ParsePreset(preset); p != "" {
		return string(p)
	}
	return defaultDifficulty
}
