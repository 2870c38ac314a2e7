package main

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func TestAutoplayDeterministic(t *testing.T) {
	logger = log.New(io.Discard)
	flagAutoMaxTicks = 5000
	flagAutoWinAfter = 0

	cfg := config.DefaultBreakoutConfig()
	tick := time.Second / 60

	a, hashA := autoplayOnce(cfg, 7, tick)
	b, hashB := autoplayOnce(cfg, 7, tick)

	if a != b || hashA != hashB {
		t.Errorf("autoplayOnce(7) differs between runs: %+v/%x vs %+v/%x", a, hashA, b, hashB)
	}
	if a.Ticks != 5000 && !a.Finished {
		t.Errorf("Ticks = %d, expected the limit or a finished game", a.Ticks)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		res  breakout.RunResult
		want string
	}{
		{breakout.RunResult{}, "tick limit"},
		{breakout.RunResult{Finished: true, Won: true}, "won"},
		{breakout.RunResult{Finished: true}, "lost"},
	}
	for _, tt := range tests {
		if got := outcome(tt.res); got != tt.want {
			t.Errorf("outcome(%+v) = %q, expected %q", tt.res, got, tt.want)
		}
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"nonsense", "nonsense"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}
