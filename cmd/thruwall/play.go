package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zxarcade/thruwall/internal/config"
	"github.com/zxarcade/thruwall/internal/core"
	"github.com/zxarcade/thruwall/internal/game"
	"github.com/zxarcade/thruwall/internal/platform/tui"
)

// playCmd is an explicit alias for the root behavior.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Run:   runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	// Fail fast on a broken --config instead of falling back silently.
	if _, err := config.Load(flagConfig); err != nil {
		if flagConfig != "" {
			fmt.Fprintf(os.Stderr, "Error: cannot load config %s: %v\n", flagConfig, err)
			os.Exit(1)
		}
		logger.Warn("could not load config, using defaults", "error", err)
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	// Probe the terminal size; the TUI tracks resizes from there.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Debug("starting game",
		"screen_w", cfg.ScreenW,
		"screen_h", cfg.ScreenH,
		"tick_rate", cfg.TickRate,
		"seed", cfg.Seed,
		"difficulty", flagDifficulty,
	)

	if err := tui.Run(game.New(), cfg); err != nil {
		logger.Error("game exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. Logging to stderr would tear up
// the alternate screen, so without --debug everything is discarded; with
// it, the log goes to a file under the user's home.
func newLogger() *log.Logger {
	if !flagDebug {
		return log.New(io.Discard)
	}

	dir := filepath.Join(os.Getenv("HOME"), ".thruwall")
	//nolint:errcheck // Fall through to the open error below
	os.MkdirAll(dir, 0o755)

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open debug log: %v\n", err)
		return log.New(io.Discard)
	}

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "thruwall",
		Level:           log.DebugLevel,
	})
}
