// dash is Northern Lights Dash, an endless sleigh flight in the terminal.
//
// Usage:
//
//	dash                  - Play (same as dash play)
//	dash play             - Play a run
//	dash menu             - Title menu with difficulty and high scores
//	dash scores           - Show the best runs
//	dash config           - Print the effective game config as YAML
//	dash list             - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable sound
//	--log <path>          - Log file (default: ~/.arcade/dash.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/northern-dash/internal/games/dash"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Northern Lights Dash - fly Santa's sleigh through the aurora",
	Long: `Northern Lights Dash is an endless flight game for the terminal.
Hold thrust to climb, land on the ice to recover magic dust, collect
presents and power-ups and keep away from the coal.

Available commands:
  play     - Play a run (default)
  menu     - Title menu with difficulty and high scores
  scores   - View the best runs
  config   - Print the effective config
  list     - Show registered games

Examples:
  dash
  dash play --difficulty hard
  dash menu --mute
  dash scores
  dash config > ~/.arcade/configs/dash.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects")
	pf.StringVar(&flagLogPath, "log", "~/.arcade/dash.log", "Log file path (- for stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}
