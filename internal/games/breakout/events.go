package breakout

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// GameEvent is emitted by the simulation when observable state changes.
type GameEvent interface {
	gameEvent()
}

// ScoreChanged is emitted after points are awarded or the score is reset.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) gameEvent() {}

// LevelChanged is emitted on level-up and restart.
type LevelChanged struct {
	Level int
}

func (LevelChanged) gameEvent() {}

// LivesChanged is emitted when a life is lost or lives are reset.
type LivesChanged struct {
	Lives int
}

func (LivesChanged) gameEvent() {}

// BrickDestroyed is emitted for every brick removed by the ball.
type BrickDestroyed struct {
	Row, Col int
	X, Y     float64 // Brick centre
	Color    core.Color
	Points   int
}

func (BrickDestroyed) gameEvent() {}

// GameOver is emitted once when the game ends.
type GameOver struct {
	Won        bool
	FinalScore int
}

func (GameOver) gameEvent() {}

// Observer receives simulation events synchronously during a tick.
type Observer interface {
	OnEvent(GameEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(GameEvent)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e GameEvent) {
	f(e)
}

// EventLogger returns an observer that logs every event at debug level.
func EventLogger(logger *log.Logger) Observer {
	return ObserverFunc(func(e GameEvent) {
		switch ev := e.(type) {
		case ScoreChanged:
			logger.Debug("score changed", "score", ev.Score)
		case LevelChanged:
			logger.Debug("level changed", "level", ev.Level)
		case LivesChanged:
			logger.Debug("lives changed", "lives", ev.Lives)
		case BrickDestroyed:
			logger.Debug("brick destroyed", "row", ev.Row, "col", ev.Col, "points", ev.Points)
		case GameOver:
			logger.Info("game over", "won", ev.Won, "score", ev.FinalScore)
		}
	})
}
