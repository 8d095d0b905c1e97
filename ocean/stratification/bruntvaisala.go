package stratification

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-ocean/ocean/profile"
)

// Gravity is the standard gravitational acceleration in m/s².
const Gravity = 9.806

// Errors returned by BruntVaisala.
var (
	ErrShapeMismatch  = errors.New("stratification: density length does not match grid level count")
	ErrMissingDensity = errors.New("stratification: density contains missing values")
)

// BruntVaisala computes the squared Brunt-Vaisala frequency (rad²/s²)
// from a density profile sampled on the levels of grid, as in Grilli
// and Pinardi (1999):
//
//	N² = -(g/rho0) ∂rho/∂z   (z positive upward)
//
// evaluated by the finite difference between adjacent levels, so the
// k-th output sample represents the layer midpoint between levels k and
// k+1 and the output has grid.Levels()-1 samples. rho0 is the column
// mean density.
//
// The output is signed; negative values flag statically unstable
// layers and are not clipped here.
func BruntVaisala(density []float64, grid profile.GridSpec) ([]float64, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	if len(density) != grid.Levels() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, len(density), grid.Levels())
	}

	for i, rho := range density {
		if math.IsNaN(rho) {
			return nil, fmt.Errorf("%w: level %d", ErrMissingDensity, i)
		}
	}

	rho0 := stat.Mean(density, nil)

	out := make([]float64, len(density)-1)
	for k := range out {
		// Depth is positive downward, so ∂rho/∂z flips sign.
		out[k] = Gravity / rho0 * (density[k+1] - density[k]) / grid.Step
	}

	return out, nil
}
