package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/northern-dash/internal/games/dash"
	"github.com/vovakirdan/northern-dash/internal/platform/tui"
	"github.com/vovakirdan/northern-dash/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Northern Lights Dash.

Controls:
  Space/Up/W/Mouse - Hold to fly
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at base speed, progresses to max
  normal - Start at 30% speed, progresses to max
  hard   - Start at 70% speed, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  dash play
  dash play --difficulty hard
  dash play --seed 42 --mute
  dash play --config ./my-dash.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s := openSession()
	defer s.close()

	_, err := playOnce(s, flagDifficulty)
	return err
}

// playOnce runs the play screen until the player quits or leaves.
func playOnce(s *session, difficulty string) (backToMenu bool, err error) {
	game, err := registry.Create(dash.GameID)
	if err != nil {
		return false, fmt.Errorf("cannot create game: %w", err)
	}

	back, err := tui.Run(game, runtimeConfig(), s.options(difficultyName(difficulty)))
	if err != nil {
		return false, fmt.Errorf("cannot run game: %w", err)
	}
	return back, nil
}
