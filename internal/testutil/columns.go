package testutil

import "math"

// UniformN2 returns a constant N² profile of the given length.
func UniformN2(value float64, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = value
	}
	return out
}

// ExponentialN2 returns N²(z) = surface·exp(-z/scale) sampled at the
// given depths (typically grid midpoints).
func ExponentialN2(surface, scale float64, depths []float64) []float64 {
	out := make([]float64, len(depths))
	for i, z := range depths {
		out[i] = surface * math.Exp(-z/scale)
	}
	return out
}

// SyntheticColumn builds a stably stratified temperature/salinity
// column with an exponential thermocline, sampled every step meters.
func SyntheticColumn(levels int, step float64) (salinity, temperature, depths []float64) {
	salinity = make([]float64, levels)
	temperature = make([]float64, levels)
	depths = make([]float64, levels)

	for i := range depths {
		z := float64(i) * step
		depths[i] = z
		temperature[i] = 2 + 18*math.Exp(-z/300)
		salinity[i] = 35 + 0.4*math.Exp(-z/500)
	}

	return salinity, temperature, depths
}
