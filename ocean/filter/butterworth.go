package filter

import "math"

// butterworthLowpass designs a lowpass Butterworth cascade at the given
// cutoff frequency (cycles per meter) for the given sampling rate
// (samples per meter). For odd orders the final section is first-order.
func butterworthLowpass(cutoff, sampleRate float64, order int) []section {
	sections := make([]section, 0, (order+1)/2)

	for i := order/2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, section{coefficients: lowpassBiquad(cutoff, q, sampleRate)})
	}

	if order%2 != 0 {
		sections = append(sections, section{coefficients: firstOrderLowpass(cutoff, sampleRate)})
	}

	return sections
}

// butterworthQ returns the quality factor of biquad section index for a
// Butterworth filter of the given order.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2
	}

	return 1 / (2 * s)
}

// lowpassBiquad designs a second-order lowpass section (RBJ form) at
// freq with quality factor q.
func lowpassBiquad(freq, q, sampleRate float64) coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	a0 := 1 + alpha
	norm := 1 / a0

	return coefficients{
		b0: (1 - cw) / 2 * norm,
		b1: (1 - cw) * norm,
		b2: (1 - cw) / 2 * norm,
		a1: -2 * cw * norm,
		a2: (1 - alpha) * norm,
	}
}

// firstOrderLowpass designs the first-order section used by odd-order
// cascades.
func firstOrderLowpass(freq, sampleRate float64) coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return coefficients{
		b0: k * norm,
		b1: k * norm,
		a1: (k - 1) * norm,
	}
}
