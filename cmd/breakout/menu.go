package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Breakout with a menu",
	Long: `Start Breakout in interactive menu mode.

Pick the difficulty with Left/Right, then play or browse the high scores.
After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --db ./scores.db`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalRuntime()
	difficulty := flagDifficulty
	sessionID := uuid.NewString()

	for {
		result, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = result.Config
		difficulty = result.Difficulty

		switch result.Choice {
		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, playerName())
			if err != nil {
				return fmt.Errorf("running scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			game := breakout.New()
			game.SetPreset(difficulty)
			logger.Debug("game started", "difficulty", difficulty, "session", sessionID)

			if err := tui.Run(game, store, cfg,
				tui.WithPlayer(playerName()),
				tui.WithSessionID(sessionID),
				tui.WithLogger(logger),
			); err != nil {
				return fmt.Errorf("running game: %w", err)
			}

		default:
			return nil
		}
	}
}
