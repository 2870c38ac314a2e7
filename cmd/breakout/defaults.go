package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in configuration",
	Long: `Print the embedded default configuration as YAML.

Save it to ~/.breakout/breakout.yaml or pass it with --config to
customize the field, ball, paddle, bricks and particles.

Examples:
  breakout defaults > ~/.breakout/breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
