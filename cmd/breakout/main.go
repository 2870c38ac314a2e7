// breakout is a terminal brick breaker: a ball, a paddle and a wall of
// bricks, playable locally or over SSH.
//
// Usage:
//
//	breakout play            - Play in this terminal
//	breakout menu            - Start menu with difficulty picker and scores
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show high scores
//	breakout autoplay        - Let the autopilot play headless and print the outcome
//	breakout defaults        - Print the built-in YAML configuration
//	breakout list            - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: $BREAKOUT_DB or ~/.breakout/scores.db)
//	--config <path>       - Custom YAML config (default: $BREAKOUT_CONFIG)
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write rotated logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// annotationInteractive marks commands that own the terminal; their logs
// are dropped unless --log-file is set.
const annotationInteractive = "interactive"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagLogJSON    bool
)

var (
	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal brick breaker. Bounce the ball off the paddle,
clear the wall of bricks and advance through the levels.

Available commands:
  play      - Play in this terminal
  menu      - Start menu with difficulty picker and scores
  serve     - Start SSH server for remote play
  scores    - View high scores
  autoplay  - Headless run with the autopilot
  defaults  - Print the built-in configuration
  list      - Show registered games

Examples:
  breakout play
  breakout play --difficulty hard
  breakout serve --ssh :2222
  breakout scores --tui
  breakout autoplay --seed 42`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default $"+storage.EnvPath+" or "+storage.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv(config.EnvConfigPath), "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to a rotated file")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Log JSON lines instead of text")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// setup builds the logger and hands the global flags to the game package.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
	}

	opts := logging.DefaultOptions()
	opts.Level = flagLogLevel
	opts.File = flagLogFile
	opts.JSON = flagLogJSON
	if opts.File == "" && cmd.Annotations[annotationInteractive] == "true" {
		opts.Output = io.Discard
	}

	l, closer, err := logging.New(opts)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	log.SetDefault(logger)

	breakout.SetLogger(logger)
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openStore opens the scores database. Failures are logged and yield nil,
// since every command except scores works without it.
func openStore() *storage.Store {
	path := storage.ResolvePath(flagDBPath)
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "err", err)
		return nil
	}
	return store
}
