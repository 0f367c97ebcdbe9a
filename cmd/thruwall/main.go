// thruwall is a terminal rendition of the classic single-screen
// ball-and-paddle game Thru' The Wall.
//
// Usage:
//
//	thruwall                 - Play the game
//	thruwall controls        - Show the key bindings
//	thruwall version         - Show the version
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 20)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Path to custom game config YAML
//	--difficulty <preset> - easy, normal, hard, or fixed
//	--debug               - Write a debug log to ~/.thruwall/debug.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "thruwall",
	Short: "Thru' The Wall - a ball-and-paddle game for your terminal",
	Long: `Thru' The Wall is a single-screen ball-and-paddle game. Keep the
ball in play by catching it with your paddle; every catch scores points.
Miss it and you lose a life.

Controls:
  O / P        - Move the paddle left / right
  Shift+O / P  - Move at double speed
  Esc          - Pause
  Q / Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  thruwall
  thruwall --difficulty hard
  thruwall --config ./my-thruwall.yaml --seed 42`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.thruwall/debug.log")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(controlsCmd)
	rootCmd.AddCommand(versionCmd)
}
