package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/circle-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc or B in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q            - Quit

Examples:
  circles menu
  circles menu --window
  circles menu --fps 60`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for jumper: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if menuResult.Quit {
			return nil
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if err := configureGame(menuResult.GameID, "", flagDifficulty); err != nil {
			return err
		}

		back, err := playGame(menuResult.GameID, cfg, logger, true)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
