package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/circle-arcade/internal/config"
	"github.com/vovakirdan/circle-arcade/internal/core"
	"github.com/vovakirdan/circle-arcade/internal/games/drift"
	"github.com/vovakirdan/circle-arcade/internal/games/jumper"
	"github.com/vovakirdan/circle-arcade/internal/platform/tui"
	"github.com/vovakirdan/circle-arcade/internal/platform/window"
	"github.com/vovakirdan/circle-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move (drift: accelerate on press, friction on release)
  Space/Up         - Jump (jumper)
  Left Ctrl        - Shoot (jumper, window)
  F/X              - Shoot (jumper, terminal)
  P                - Pause
  R                - Restart (after the round is cleared)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Screenshot (terminal)

Difficulty options (jumper):
  easy   - Enemies patrol slowly, speeding up with each hit
  normal - Enemies patrol at 30% difficulty, speeding up with each hit
  hard   - Enemies start fast and take two hits
  fixed  - No progression, keeps the config values

Examples:
  circles play drift
  circles play drift --window
  circles play jumper --difficulty easy
  circles play jumper --config ./my-jumper.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'circles list' to see available games", gameID)
	}

	if err := configureGame(gameID, flagConfig, flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	_, err = playGame(gameID, runtimeConfig(), logger, false)
	return err
}

// configureGame passes CLI config and difficulty to the game package
// before it is created. Config errors surface here rather than being
// replaced by defaults.
func configureGame(gameID, path, difficulty string) error {
	if difficulty != "" && config.ParsePreset(difficulty) == "" {
		return fmt.Errorf("unknown difficulty %q, expected easy, normal, hard or fixed", difficulty)
	}

	switch gameID {
	case "drift":
		return drift.SetConfigPath(path)
	case "jumper":
		jumper.SetDifficultyPreset(difficulty)
		return jumper.SetConfigPath(path)
	}
	return nil
}

// playGame runs one game session on the selected frontend. It reports
// whether the player asked to go back to the menu.
func playGame(gameID string, cfg core.RuntimeConfig, logger *log.Logger, fromMenu bool) (bool, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}

	if flagWindow {
		// Closing the window always returns to the menu.
		return fromMenu, window.Run(game, cfg, window.Options{Logger: logger, ShowTPS: flagDebug})
	}

	result, err := tui.Run(game, cfg, tui.Options{Logger: logger, AllowBack: fromMenu})
	if err != nil {
		return false, err
	}
	if result.State.Score > 0 {
		logger.Info("session ended", "game", gameID, "score", result.State.Score)
	}
	return result.Back, nil
}
