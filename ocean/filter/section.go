package filter

// coefficients holds the transfer function of one second-order section
// with a0 normalized to 1.
type coefficients struct {
	b0, b1, b2 float64 // feedforward
	a1, a2     float64 // feedback
}

// section is a biquad in Direct Form II Transposed with internal state.
type section struct {
	coefficients

	d0, d1 float64
}

// processBlock filters buf in place.
func (s *section) processBlock(buf []float64) {
	b0, b1, b2 := s.b0, s.b1, s.b2
	a1, a2 := s.a1, s.a2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// primeSteadyState seeds the state with the step-response steady state
// for input level x, so a constant signal passes through without a
// start-up transient. It returns the corresponding output level for
// priming the next section in a cascade.
func (s *section) primeSteadyState(x float64) float64 {
	y := x * (s.b0 + s.b1 + s.b2) / (1 + s.a1 + s.a2)
	s.d1 = s.b2*x - s.a2*y
	s.d0 = s.b1*x - s.a1*y + s.d1

	return y
}

// cascade runs buf through every section in order, in place.
func cascade(sections []section, buf []float64) {
	for i := range sections {
		sections[i].processBlock(buf)
	}
}

// primeAll seeds every section of a cascade for input level x.
func primeAll(sections []section, x float64) {
	for i := range sections {
		x = sections[i].primeSteadyState(x)
	}
}
