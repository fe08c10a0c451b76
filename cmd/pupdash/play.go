package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pupdash/internal/config"
	"pupdash/internal/core"
	"pupdash/internal/platform/tui"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a play session in the current terminal.

Controls:
  Space/W/Up - Jump
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  pupdash play
  pupdash play --fps 30
  pupdash play --config ./my-pupdash.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Warn("could not detect terminal size, using defaults", "err", termErr)
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Debug("starting session",
		"screen", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH),
		"fps", rt.TickRate,
		"seed", rt.Seed)

	if err := tui.Run(cfg, rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
