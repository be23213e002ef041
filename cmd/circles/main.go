// circles plays two small circle games in the terminal or in a window.
//
// Usage:
//
//	circles list              - List available games
//	circles play <game>       - Play a game
//	circles menu              - Start menu to pick games interactively
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 100, one frame per 10 ms)
//	--debug            - Log per-frame positions and velocities
//	--log-file <path>  - Write logs to a file
//	--window           - Open a desktop window instead of using the terminal
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/circle-arcade/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/circle-arcade/internal/games/drift"
	_ "github.com/vovakirdan/circle-arcade/internal/games/jumper"
)

var (
	// Global flags
	flagFPS     int
	flagDebug   bool
	flagLogFile string
	flagWindow  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "circles",
	Short: "Circles - keyboard-driven circle games",
	Long: `Circles moves circles around in response to the keyboard.

Available games:
  drift    - Moving Red Circle: accelerate left/right, friction on release
  jumper   - Jump & Shoot: run, jump and shoot the enemies above

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu

Examples:
  circles list
  circles play drift --window
  circles play jumper --difficulty hard
  circles menu --debug --log-file circles.log`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log per-frame game state at debug level")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of the terminal")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}

// newLogger builds the process logger. The terminal frontend owns the
// screen, so without --log-file it logs nowhere; the window frontend logs
// to stderr.
func newLogger() (*log.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("log: open %s: %w", flagLogFile, err)
		}
		w = f
		closeFn = f.Close
	case flagWindow:
		w = os.Stderr
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "circles",
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig builds the frontend config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}
