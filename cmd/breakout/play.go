package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout in this terminal",
	Long: `Start a game of Breakout.

Controls:
  A/D, Left/Right  - Move paddle
  Mouse            - Paddle follows the pointer
  Space            - Launch ball, then pause/resume
  P                - Pause/resume
  R                - Restart
  Esc/B            - Leave (when paused or game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, wide paddle, slow ball
  normal - 3 lives, the configured defaults
  hard   - 2 lives, narrow paddle, fast ball

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml
  breakout play --seed 42`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your results (default: current user)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(breakout.GameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalRuntime()
	if err := tui.Run(game, store, cfg,
		tui.WithPlayer(playerName()),
		tui.WithSessionID(uuid.NewString()),
		tui.WithLogger(logger),
	); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalRuntime builds the runtime config from the flags and the
// current terminal size.
func terminalRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// playerName returns --player or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
