package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knifefall/internal/config"
	"github.com/vovakirdan/knifefall/internal/game"
	"github.com/vovakirdan/knifefall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start knifefall with the main menu",
	Long: `Start knifefall in interactive menu mode.

Pick a difficulty, play, and check the high scores. Esc after a round
returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  knifefall menu
  knifefall menu --difficulty hard
  knifefall menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	player := localPlayer()
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Keep size changes and the picked difficulty for the next screen
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		switch menuResult.Choice {
		case tui.MenuChoiceScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, player, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}

		case tui.MenuChoicePlay:
			gameCfg, cfgErr := config.LoadWithPreset(flagConfig, preset)
			if cfgErr != nil {
				logger.Warn("using default game config", "err", cfgErr)
				gameCfg = config.DefaultConfig()
				config.ApplyPreset(&gameCfg, preset)
			}

			// Fresh seed per round unless one was pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}

			model, runErr := tui.RunEmbedded(game.NewWithConfig(gameCfg), cfg, tui.Options{
				Store:      store,
				Logger:     logger,
				Player:     player,
				Difficulty: string(preset),
				Embedded:   true,
			})
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				continue
			}
			if !model.BackToMenu() {
				return
			}

		default:
			return
		}
	}
}
