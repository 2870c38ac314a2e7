package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagAutoMaxTicks uint64
	flagAutoRuns     int
	flagAutoWinAfter int
	flagAutoSave     bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let the autopilot play without a terminal",
	Long: `Run Breakout headless with a paddle-tracking autopilot on a simulated
clock and print the outcome of every run.

The same --seed always produces the same game, which makes autoplay
useful for checking a custom --config.

Examples:
  breakout autoplay --seed 42
  breakout autoplay --runs 10 --max-ticks 50000
  breakout autoplay --win-after 3 --save`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().Uint64Var(&flagAutoMaxTicks, "max-ticks", 100000, "Stop a run after this many ticks")
	autoplayCmd.Flags().IntVar(&flagAutoRuns, "runs", 1, "Number of runs, seeded seed, seed+1, ...")
	autoplayCmd.Flags().IntVar(&flagAutoWinAfter, "win-after", 0, "Declare a win after clearing this many levels (0 = never)")
	autoplayCmd.Flags().BoolVar(&flagAutoSave, "save", false, "Record finished runs in the scores database")
}

func runAutoplay(_ *cobra.Command, _ []string) error {
	if flagAutoRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagAutoRuns)
	}

	cfg := breakout.LoadConfig()
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tick := time.Second / time.Duration(flagFPS)

	var store *storage.Store
	if flagAutoSave {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	fmt.Printf("  %-20s  %-9s  %-7s  %-5s  %-5s  %s\n", "Seed", "Ticks", "Score", "Level", "Lives", "Outcome")
	for i := range flagAutoRuns {
		runSeed := seed + int64(i)
		res, hash := autoplayOnce(cfg, runSeed, tick)

		fmt.Printf("  %-20d  %-9d  %-7d  %-5d  %-5d  %s\n",
			runSeed, res.Ticks, res.Score, res.Level, res.Lives, outcome(res))
		logger.Debug("autoplay run", "seed", runSeed, "ticks", res.Ticks, "score", res.Score, "hash", fmt.Sprintf("%016x", hash))

		if store != nil && res.Finished {
			if _, err := store.SaveResult(storage.Result{
				GameID:    breakout.GameID,
				Player:    "autopilot",
				SessionID: fmt.Sprintf("autoplay-%d", runSeed),
				Score:     res.Score,
				Level:     res.Level,
				Won:       res.Won,
			}); err != nil {
				logger.Warn("could not save result", "seed", runSeed, "err", err)
			}
		}
	}
	return nil
}

// autoplayOnce plays one game and returns its outcome and final state hash.
func autoplayOnce(cfg config.BreakoutConfig, seed int64, tick time.Duration) (breakout.RunResult, uint64) {
	clock := core.NewManualClock(time.Unix(0, 0))
	opts := []breakout.Option{
		breakout.WithClock(clock),
		breakout.WithSeed(seed),
		breakout.WithObserver(breakout.EventLogger(logger)),
	}
	if flagAutoWinAfter > 0 {
		opts = append(opts, breakout.WithWinCondition(func(level, _ int) bool {
			return level >= flagAutoWinAfter
		}))
	}

	sim := breakout.NewSim(cfg, opts...)
	res := breakout.RunHeadless(sim, breakout.NewAutopilot(seed), clock, tick, flagAutoMaxTicks)
	snap := sim.Snapshot()
	return res, snap.Hash()
}

func outcome(res breakout.RunResult) string {
	switch {
	case !res.Finished:
		return "tick limit"
	case res.Won:
		return "won"
	default:
		return "lost"
	}
}
