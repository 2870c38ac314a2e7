// Package logging builds the charmbracelet/log logger shared by the CLI,
// the SSH server and game event observers. File output is rotated with
// lumberjack.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a logger.
type Options struct {
	// Level is one of debug, info, warn, error, fatal. Empty means info.
	Level string

	// File enables rotated file output. Empty writes to Output.
	File string

	// Output is used when File is empty. Nil means stderr.
	Output io.Writer

	// JSON switches from the text formatter to JSON lines.
	JSON bool

	// Rotation limits for File.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultOptions returns info-level text logging to stderr with the rotation
// limits used for --log-file.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// New creates a logger. The returned closer releases the log file and is
// never nil.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("logging: invalid level %q: %w", opts.Level, err)
		}
		level = l
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		w, closer = lj, lj
	case opts.Output != nil:
		w = opts.Output
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "breakout",
		ReportTimestamp: true,
	})
	if opts.JSON {
		logger.SetFormatter(log.JSONFormatter)
	}

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
