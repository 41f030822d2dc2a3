package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/northern-dash/internal/games/dash"
	"github.com/vovakirdan/northern-dash/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start Northern Lights Dash on the title menu.

Pick a difficulty with Left/Right, Enter to fly, Tab for high scores.
Esc during a run returns to the menu.

Examples:
  dash menu
  dash menu --fps 30
  dash menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s := openSession()
	defer s.close()

	cfg := runtimeConfig()
	difficulty := flagDifficulty

	// Menu loop
	for {
		result, err := tui.RunMenu(cfg, difficulty, s.best())
		if err != nil {
			return fmt.Errorf("cannot run menu: %w", err)
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoicePlay:
			difficulty = string(result.Difficulty)
			dash.SetDifficultyPreset(difficulty)
			s.cfg = loadConfig(s.logger, difficulty)

			back, err := playOnce(s, difficulty)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(s.scoreStore(), dash.GameID, dash.Title, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("cannot show scores: %w", err)
			}
			if !back {
				return nil
			}

		default:
			return nil
		}
	}
}

// scoreStore returns the store as a tui.ScoreStore, nil without storage.
func (s *session) scoreStore() tui.ScoreStore {
	if s.store == nil {
		return nil
	}
	return s.store
}
