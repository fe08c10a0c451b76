package main

import (
	"os"

	"github.com/spf13/cobra"

	"pupdash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the built-in default config to stdout. Redirect it to
~/.pupdash/configs/pupdash.yaml to customize the game, or pass a copy
via 'pupdash play --config <path>'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}
