package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Flappy Bird in a desktop window.

Controls:
  Space/Up/W  - Flap
  Space/R     - Restart (after game over)
  Q/Esc       - Quit (closing the window works too)

Examples:
  flappy window
  flappy window --scale 1.5 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, _ []string) error {
	a, err := setup(false)
	if err != nil {
		return err
	}
	defer a.close()

	game := flappy.New(a.settings, a.runtime.Seed)
	if err := window.Run(game, a.logger, flagScale); err != nil {
		a.logger.Error("window failed", "error", err)
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
