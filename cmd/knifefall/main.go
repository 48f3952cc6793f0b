// knifefall is a terminal arcade game: throw knives at falling fruit and
// keep the bombs off the floor.
//
// Usage:
//
//	knifefall play           - Play a round directly
//	knifefall menu           - Start with the main menu
//	knifefall serve          - Start SSH server for remote play
//	knifefall scores         - Show high scores
//	knifefall config         - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 50)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.knifefall/scores.db)
//	--log <path>    - Write a debug log to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "knifefall",
	Short: "Knifefall - slice falling fruit in your terminal",
	Long: `Knifefall is a terminal arcade game. Fruit and bombs fall from the
sky; throw knives to slice the fruit and stop bombs before they land.

Available commands:
  play     - Play a round directly
  menu     - Main menu with difficulty picker and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default game config

Examples:
  knifefall play
  knifefall play --difficulty hard
  knifefall menu
  knifefall serve --ssh :2222
  knifefall scores --player alice`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.knifefall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
