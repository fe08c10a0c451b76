// pupdash is a terminal runner game: guide the pup over crates and cones
// and catch as many treats as you can.
//
// Usage:
//
//	pupdash                  - Play (same as 'pupdash play')
//	pupdash play             - Play the game
//	pupdash config           - Print the default config YAML
//	pupdash version          - Print the version
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS   int
	flagSeed  int64
	flagDebug bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "pupdash",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pupdash",
	Short: "Pupdash - a terminal runner game",
	Long: `Pupdash is a single-screen runner played in the terminal. The pup runs
at a constant pace while crates and cones scroll in from the right.
Jump over the obstacles and catch the treats floating at three heights.

Available commands:
  play     - Play the game (default when no command is given)
  config   - Print the default config YAML
  version  - Print the version

Examples:
  pupdash
  pupdash play --fps 30
  pupdash play --seed 42 --config ./my-pupdash.yaml
  pupdash config > ~/.pupdash/configs/pupdash.yaml`,
	Run: runPlay,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
