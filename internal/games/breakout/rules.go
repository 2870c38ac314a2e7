package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// collideBricks destroys every alive brick containing the ball centre.
// Each hit flips the vertical velocity, so an even number of hits in one
// tick leaves the direction unchanged.
func (s *Sim) collideBricks(out []Collision) []Collision {
	hits := brickHits(s.ball, s.grid)
	if len(hits) == 0 {
		return out
	}

	for _, rc := range hits {
		s.ball.DY = -s.ball.DY
		b := s.grid.destroy(rc[0], rc[1])
		s.score += b.Points

		cx, cy := b.Rect().Center()
		s.emit(BrickDestroyed{Row: rc[0], Col: rc[1], X: cx, Y: cy, Color: b.Color, Points: b.Points})
		s.emit(ScoreChanged{Score: s.score})
		out = append(out, Collision{Kind: CollisionBrick, Row: rc[0], Col: rc[1]})
	}

	if s.grid.AllDestroyed() {
		if s.winCondition != nil && s.winCondition(s.level, s.score) {
			s.endGame(true)
		} else {
			s.levelUp()
		}
	}
	return out
}

// collideWallsAndPaddle resolves side walls and the ceiling, then either
// bounces the ball off the paddle or counts a miss.
func (s *Sim) collideWallsAndPaddle(out []Collision) []Collision {
	side, ceiling := bounceWalls(&s.ball, s.cfg.Field.Width)
	if side {
		out = append(out, Collision{Kind: CollisionWall})
	}
	if ceiling {
		out = append(out, Collision{Kind: CollisionCeiling})
	}

	if !reachesPaddle(s.ball, s.paddle) {
		return out
	}
	if core.PointInPaddleRange(s.ball.X, s.paddle.X, s.paddle.Width) {
		bouncePaddle(&s.ball, s.paddle)
		return append(out, Collision{Kind: CollisionPaddle})
	}
	if missed(s.ball, s.cfg.Field.Height) {
		s.loseLife()
		out = append(out, Collision{Kind: CollisionMiss})
	}
	return out
}

// levelUp advances to the next level with a faster ball and a fresh grid.
func (s *Sim) levelUp() {
	s.level++
	s.ball.Speed += s.cfg.Ball.SpeedStep
	s.resetBallAndPaddle()
	s.grid = NewGrid(s.cfg.Bricks)
	s.hold(HoldLevelUp)
	s.emit(LevelChanged{Level: s.level})
}

// loseLife handles a ball that fell past the paddle.
func (s *Sim) loseLife() {
	s.lives--
	s.emit(LivesChanged{Lives: s.lives})

	if s.lives <= 0 {
		s.lives = 0
		s.endGame(false)
		return
	}
	s.resetBallAndPaddle()
	s.hold(HoldMiss)
}

// endGame stops the simulation. Only Restart leaves this state.
func (s *Sim) endGame(won bool) {
	if s.over {
		return
	}
	s.over = true
	s.won = won
	s.emit(GameOver{Won: won, FinalScore: s.score})
}
