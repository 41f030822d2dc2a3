package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/northern-dash/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after applying --config and --difficulty.
The output can be saved to ~/.arcade/configs/dash.yaml and edited.

Examples:
  dash config
  dash config --difficulty hard
  dash config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the embedded defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML("dash"))
		return err
	}

	cfg, err := config.LoadDash(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	config.ApplyDashPreset(&cfg, config.ParsePreset(flagDifficulty))

	data, err := config.MarshalDash(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
