package profile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// resampleConfig holds options for Resample.
type resampleConfig struct {
	cubic bool
}

// Option configures Resample.
type Option func(*resampleConfig)

// WithCubic selects monotone cubic (Fritsch-Butland) interpolation
// instead of the default piecewise-linear interpolation. The monotone
// scheme does not overshoot between samples.
func WithCubic() Option {
	return func(cfg *resampleConfig) { cfg.cubic = true }
}

// Resample maps a vertical profile onto a uniform grid.
//
// Missing samples (NaN depth or value) are dropped before fitting the
// interpolant. Grid depths above the first valid sample take the first
// valid value (constant extension); grid depths below the deepest valid
// sample are returned as NaN, never extrapolated.
//
// It returns ErrInsufficientData if fewer than two valid samples remain.
func Resample(p VerticalProfile, grid GridSpec, opts ...Option) ([]float64, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	return ResampleAt(p, grid.Depths(), opts...)
}

// ResampleAt evaluates the profile at arbitrary target depths with the
// same missing-data and extension rules as Resample.
func ResampleAt(p VerticalProfile, targets []float64, opts ...Option) ([]float64, error) {
	var cfg resampleConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	xs, ys := validSamples(p)
	if len(xs) < 2 {
		return nil, ErrInsufficientData
	}

	var predictor interp.FittablePredictor
	if cfg.cubic {
		predictor = &interp.FritschButland{}
	} else {
		predictor = &interp.PiecewiseLinear{}
	}

	if err := predictor.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("profile: fitting interpolant: %w", err)
	}

	first, last := xs[0], xs[len(xs)-1]
	out := make([]float64, len(targets))

	for i, z := range targets {
		switch {
		case z < first:
			out[i] = ys[0]
		case z > last:
			out[i] = math.NaN()
		default:
			out[i] = predictor.Predict(z)
		}
	}

	return out, nil
}

// validSamples extracts the non-missing (depth, value) pairs in order.
func validSamples(p VerticalProfile) (xs, ys []float64) {
	xs = make([]float64, 0, len(p.Depths))
	ys = make([]float64, 0, len(p.Values))

	for i := range p.Depths {
		if math.IsNaN(p.Depths[i]) || math.IsNaN(p.Values[i]) {
			continue
		}
		xs = append(xs, p.Depths[i])
		ys = append(ys, p.Values[i])
	}

	return xs, ys
}
