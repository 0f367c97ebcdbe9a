package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show the key bindings",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Thru' The Wall - Controls")
		fmt.Println()
		fmt.Println("  O            Move paddle left")
		fmt.Println("  P            Move paddle right")
		fmt.Println("  Shift+O      Move paddle left at double speed")
		fmt.Println("  Shift+P      Move paddle right at double speed")
		fmt.Println("  Esc          Pause / resume")
		fmt.Println("  Y            Play again (after game over)")
		fmt.Println("  N            Exit (after game over)")
		fmt.Println("  Ctrl+S       Save a screenshot to ~/.thruwall/screenshots")
		fmt.Println("  Q, Ctrl+C    Quit")
		fmt.Println()
		fmt.Println("Any key starts the game from the title screen.")
	},
}
