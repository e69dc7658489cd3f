package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Search order:
  --config <path>, $FLAPPY_CONFIG, ~/.flappy/config.yaml,
  ./configs/flappy.yaml, then the built-in defaults.

The output is a complete config file: save it and pass it to --config.

Examples:
  flappy config
  flappy config --defaults > ~/.flappy/config.yaml
  flappy config --config ./my-flappy.yaml --fps 30`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	a, err := setup(false)
	if err != nil {
		return err
	}
	defer a.close()

	data, err := config.Marshal(a.settings)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s\n", a.source)
	_, err = out.Write(data)
	return err
}
