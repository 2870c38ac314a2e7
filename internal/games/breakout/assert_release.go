//go:build !debug

package breakout

func (s *Sim) assertInvariants() {}
