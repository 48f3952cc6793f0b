package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/knifefall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML.

Save it to ~/.knifefall/configs/knifefall.yaml or pass it with --config
to tune the playfield, spawn rates, lives and the speed ramp.

Examples:
  knifefall config > ~/.knifefall/configs/knifefall.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
