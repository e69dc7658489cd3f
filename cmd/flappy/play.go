package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Play Flappy Bird in the current terminal.

The 400x600 playfield is scaled to the terminal size.

Controls:
  Space/Up/W  - Flap
  Space/R     - Restart (after game over)
  Q/Esc       - Quit

Logs are only written when --log-file is set, so they do not
interfere with the game screen.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := setup(true)
	if err != nil {
		return err
	}
	defer a.close()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		a.runtime.ScreenW = w
		a.runtime.ScreenH = h
	}

	a.logger.Info("starting game", "cols", a.runtime.ScreenW, "rows", a.runtime.ScreenH, "seed", a.runtime.Seed)

	game := flappy.New(a.settings, a.runtime.Seed)
	if err := tui.Run(game, a.logger, a.runtime.ScreenW, a.runtime.ScreenH); err != nil {
		a.logger.Error("game failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
