package breakout

import (
	"errors"
	"fmt"
	"math"
)

const velocityTolerance = 1e-9

// Validate checks the structural invariants of the simulation and
// reports every violation at once.
func (s *Sim) Validate() error {
	var errs []error

	if s.ball.Speed < 0 {
		errs = append(errs, fmt.Errorf("ball speed %g is negative", s.ball.Speed))
	}
	if v := s.ball.Velocity(); math.Abs(v-s.ball.Speed) > velocityTolerance*math.Max(1, s.ball.Speed) {
		errs = append(errs, fmt.Errorf("ball velocity %g does not match speed %g", v, s.ball.Speed))
	}
	if s.lives < 0 {
		errs = append(errs, fmt.Errorf("lives %d is negative", s.lives))
	}
	if s.grid.Rows() != s.cfg.Bricks.Rows || s.grid.Cols() != s.cfg.Bricks.Cols || s.grid.Len() != s.cfg.Bricks.Rows*s.cfg.Bricks.Cols {
		errs = append(errs, fmt.Errorf("grid shape %dx%d (%d bricks) does not match %dx%d",
			s.grid.Rows(), s.grid.Cols(), s.grid.Len(), s.cfg.Bricks.Rows, s.cfg.Bricks.Cols))
	}
	if s.paddle.X < 0 || s.paddle.X > s.cfg.Field.Width-s.paddle.Width {
		errs = append(errs, fmt.Errorf("paddle x %g outside [0, %g]", s.paddle.X, s.cfg.Field.Width-s.paddle.Width))
	}

	return errors.Join(errs...)
}
