package profile

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by profile functions.
var (
	ErrInvalidProfile   = errors.New("profile: depths must be strictly increasing and match values in length")
	ErrInvalidGrid      = errors.New("profile: grid step and bottom depth must be positive")
	ErrInsufficientData = errors.New("profile: fewer than 2 valid samples")
)

// VerticalProfile is an ordered sequence of (depth, value) samples.
// Depths are in meters, positive downward and strictly increasing.
// NaN values mark missing samples.
type VerticalProfile struct {
	Depths []float64
	Values []float64
}

// Validate checks the profile invariants: matching slice lengths,
// at least two samples and strictly increasing depths.
func (p VerticalProfile) Validate() error {
	if len(p.Depths) != len(p.Values) {
		return fmt.Errorf("%w: %d depths vs %d values", ErrInvalidProfile, len(p.Depths), len(p.Values))
	}

	if len(p.Depths) < 2 {
		return ErrInsufficientData
	}

	for i := 1; i < len(p.Depths); i++ {
		if !(p.Depths[i] > p.Depths[i-1]) {
			return fmt.Errorf("%w: depth[%d]=%g after depth[%d]=%g",
				ErrInvalidProfile, i, p.Depths[i], i-1, p.Depths[i-1])
		}
	}

	return nil
}

// DeepestValid returns the greatest depth whose value is not missing.
// It returns NaN if the profile holds no valid sample.
func (p VerticalProfile) DeepestValid() float64 {
	for i := len(p.Values) - 1; i >= 0; i-- {
		if !math.IsNaN(p.Values[i]) && !math.IsNaN(p.Depths[i]) {
			return p.Depths[i]
		}
	}

	return math.NaN()
}

// GridSpec describes a uniform vertical grid from the surface (0 m) down
// to BottomDepth, sampled every Step meters.
type GridSpec struct {
	Step        float64 // grid spacing in meters
	BottomDepth float64 // bottom depth in meters, positive
}

// Validate checks the grid invariants.
func (g GridSpec) Validate() error {
	if g.Step <= 0 || g.BottomDepth <= 0 {
		return fmt.Errorf("%w: step=%g bottom=%g", ErrInvalidGrid, g.Step, g.BottomDepth)
	}

	return nil
}

// Levels returns the number of grid levels, floor(BottomDepth/Step)+1.
// Level k sits at depth k*Step.
func (g GridSpec) Levels() int {
	return int(math.Floor(g.BottomDepth/g.Step)) + 1
}

// Depths returns the depth of every grid level.
func (g GridSpec) Depths() []float64 {
	out := make([]float64, g.Levels())
	for k := range out {
		out[k] = float64(k) * g.Step
	}

	return out
}

// Midpoints returns the depths halfway between adjacent grid levels.
// Its length is Levels()-1. Layer quantities (such as the squared
// Brunt-Vaisala frequency) live on this grid.
func (g GridSpec) Midpoints() []float64 {
	out := make([]float64, g.Levels()-1)
	for k := range out {
		out[k] = (float64(k) + 0.5) * g.Step
	}

	return out
}
