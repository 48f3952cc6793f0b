package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knifefall/internal/config"
	"github.com/vovakirdan/knifefall/internal/game"
	"github.com/vovakirdan/knifefall/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start knifefall directly, skipping the menu.

Controls:
  Left/Right, h/l, a/d  - Move (hold)
  Mouse                 - Move to pointer, click to throw
  Space                 - Throw a knife
  S/Enter               - Start
  P                     - Pause
  R                     - Reset to the ready screen
  +/-                   - Change speed
  ?                     - Toggle help
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Slower start, more lives
  normal - Config defaults
  hard   - Faster start, fewer lives
  fixed  - No speed ramp over time

Examples:
  knifefall play
  knifefall play --difficulty easy
  knifefall play --seed 42 --fps 30
  knifefall play --config ./my-knifefall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Set config path and difficulty before the game loads its config
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(string(preset))
	if _, cfgErr := game.LoadConfig(); cfgErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", cfgErr)
	}

	store := openStore()

	runErr := tui.Run(game.New(), runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		Player:     localPlayer(),
		Difficulty: string(preset),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
