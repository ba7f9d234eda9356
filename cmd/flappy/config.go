package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in YAML configuration. Save it as ~/.flappy/flappy.yaml
or pass it with --config to change the rules.

Example:
  flappy config > ~/.flappy/flappy.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.OutOrStdout().Write(config.DefaultYAML())
	},
}
