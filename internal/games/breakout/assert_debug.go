//go:build debug

package breakout

import "fmt"

// assertInvariants panics on the first tick that breaks an invariant.
func (s *Sim) assertInvariants() {
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("breakout: invariant violated at tick %d: %v", s.tick, err))
	}
}
