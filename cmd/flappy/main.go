// flappy is a Flappy Bird clone for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	flappy play              - Play in the current terminal
//	flappy window            - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//	flappy simulate          - Let the autopilot play and print the results
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search order, then embedded)
//	--fps <rate>        - Override the tick rate from the config
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird - flap through the pipes",
	Long: `Flappy Bird guides a bird through an endless row of pipes.
Flap to climb, fall with gravity, and score a point for every pipe you pass.

Available commands:
  play      - Play in the current terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  simulate  - Let the autopilot play and print the results
  config    - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy window --scale 1.5
  flappy serve --ssh :2222
  flappy simulate --rounds 10 --skill 0.7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// app is the state shared by every subcommand.
type app struct {
	settings config.Settings
	source   string // Where the settings came from
	runtime  core.RuntimeConfig
	logger   *log.Logger
	logFile  *os.File
}

// setup loads settings and builds the logger. Logs go to --log-file when set,
// otherwise to stderr unless quiet is set.
func setup(quiet bool) (*app, error) {
	a := &app{}

	var w io.Writer = os.Stderr
	if quiet {
		w = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		w = f
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	a.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "flappy",
	})

	settings, source, err := config.Load(flagConfig)
	if err != nil {
		a.logger.Error("cannot load config", "source", source, "error", err)
		a.close()
		return nil, err
	}
	if flagFPS > 0 {
		settings.Screen.FPS = flagFPS
	}
	a.settings, a.source = settings, source

	a.runtime = core.DefaultConfig()
	a.runtime.Seed = flagSeed
	if a.runtime.Seed == 0 {
		a.runtime.Seed = time.Now().UnixNano()
	}

	a.logger.Debug("config loaded", "source", source, "fps", settings.Screen.FPS, "seed", a.runtime.Seed)
	return a, nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}
