package eos

import (
	"errors"
	"fmt"
	"math"
)

// ErrShapeMismatch is returned when the salinity, temperature and depth
// slices passed to Density differ in length.
var ErrShapeMismatch = errors.New("eos: salinity, temperature and depth must have the same length")

// config holds options for Density.
type config struct {
	insitu      bool
	local       bool
	refPressure float64
	latitude    float64
}

// Option configures Density.
type Option func(*config)

// WithInSituTemperature declares the temperature input as in-situ
// temperature. Each sample is converted to potential temperature at the
// reference pressure before the density polynomial is applied.
func WithInSituTemperature() Option {
	return func(cfg *config) { cfg.insitu = true }
}

// WithReferencePressure sets the pressure (dbar) the density is
// referenced to. Default is 0 (surface-referenced potential density,
// the sigma-0 convention used for stratification).
func WithReferencePressure(p float64) Option {
	return func(cfg *config) { cfg.refPressure = p }
}

// WithLocalPressure evaluates each sample at its own depth-derived
// pressure, yielding in-situ density instead of potential density.
func WithLocalPressure() Option {
	return func(cfg *config) { cfg.local = true }
}

// WithLatitude sets the latitude (degrees) used by the Saunders
// depth-to-pressure conversion on the in-situ temperature path.
// Default is 45°.
func WithLatitude(deg float64) Option {
	return func(cfg *config) { cfg.latitude = deg }
}

// Density computes seawater density in kg/m³ for each sample of the
// given salinity (PSU), temperature (°C) and depth (m, positive
// downward) slices.
//
// Temperature is treated as potential temperature unless
// WithInSituTemperature is set. By default the result is potential
// density referenced to the surface; WithLocalPressure switches to
// in-situ density.
//
// Missing inputs (NaN) propagate to the output. Physical ranges are not
// validated; only the slice shapes are, returning ErrShapeMismatch on
// inconsistency.
func Density(salinity, temperature, depth []float64, opts ...Option) ([]float64, error) {
	cfg := config{latitude: 45}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(salinity) != len(temperature) || len(salinity) != len(depth) {
		return nil, fmt.Errorf("%w: %d/%d/%d", ErrShapeMismatch, len(salinity), len(temperature), len(depth))
	}

	out := make([]float64, len(salinity))
	for i := range out {
		t := temperature[i]
		if cfg.insitu {
			p := PressureFromDepth(depth[i], cfg.latitude)
			t = PotentialTemperature(salinity[i], t, p, cfg.refPressure)
		}

		p := cfg.refPressure
		if cfg.local {
			// As in NEMO, pressure in dbar is approximated by depth
			// in meters.
			p = math.Abs(depth[i])
		}

		out[i] = DensityAt(salinity[i], t, p)
	}

	return out, nil
}

// DensityAt computes seawater density in kg/m³ from practical salinity
// (PSU), potential temperature (°C) and pressure (dbar; depth in meters
// is an accepted approximation).
func DensityAt(salinity, temperature, pressure float64) float64 {
	// The JM95 bulk modulus coefficients expect pressure in bar.
	p := math.Abs(pressure) / 10

	rho := surfaceDensity(salinity, temperature)
	k0 := bulkModulusK0(salinity, temperature)
	ka := bulkModulusA(salinity, temperature)
	kb := bulkModulusB(salinity, temperature)

	return rho / (1 - p/(k0+p*(ka+p*kb)))
}

// surfaceDensity is the international one-atmosphere equation of state
// (Millero and Poisson, 1981): rho(S,θ,0) = rho_w + A*S + B*S^3/2 + C*S².
func surfaceDensity(s, t float64) float64 {
	sr := math.Sqrt(s)

	// Pure water density.
	rhoW := ((((6.536336e-9*t-1.120083e-6)*t+1.001685e-4)*t-9.095290e-3)*t+6.793952e-2)*t + 999.842594

	a := (((5.3875e-9*t-8.2467e-7)*t+7.6438e-5)*t-4.0899e-3)*t + 0.824493
	b := (-1.6546e-6*t+1.0227e-4)*t - 5.72466e-3
	const c = 4.8314e-4

	return rhoW + (a+b*sr+c*s)*s
}

// bulkModulusK0 is the secant bulk modulus at atmospheric pressure,
// K_0 = Kw + a*S + b*S^3/2 (JM95, Table A1).
func bulkModulusK0(s, t float64) float64 {
	sr := math.Sqrt(s)

	kw := (((-4.190253e-5*t+9.648704e-3)*t-1.706103)*t+1.444304e2)*t + 1.965933e4
	a := ((-5.084188e-5*t+6.283263e-3)*t-3.101089e-1)*t + 5.284855e1
	b := (-4.619924e-4*t+9.085835e-3)*t + 3.886640e-1

	return kw + (a+b*sr)*s
}

// bulkModulusA is the linear compression coefficient, A = Aw + c*S + d*S^3/2.
func bulkModulusA(s, t float64) float64 {
	sr := math.Sqrt(s)

	aw := ((1.956415e-6*t-2.984642e-4)*t+2.212276e-2)*t + 3.186519
	c := (2.059331e-7*t-1.847318e-4)*t + 6.704388e-3
	const d = 1.480266e-4

	return aw + (c+d*sr)*s
}

// bulkModulusB is the quadratic compression coefficient, B = Bw + e*S.
func bulkModulusB(s, t float64) float64 {
	bw := (1.394680e-7*t-1.202016e-5)*t + 2.102898e-4
	e := (6.207323e-10*t+6.128773e-8)*t - 2.040237e-6

	return bw + e*s
}
