package modes

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-ocean/ocean/profile"
	"github.com/cwbudde/algo-ocean/ocean/stratification"
)

// EarthAngularVelocity is the angular velocity of the Earth in rad/s.
const EarthAngularVelocity = 7.29e-5

// DefaultN2Floor is the positive floor (rad²/s²) applied to N² samples
// before the operator is assembled, unless strict mode is enabled.
// Clipping happens here, after any filtering, and only perturbs layers
// that were unphysical to begin with.
const DefaultN2Floor = 1e-9

// eigenvalues below zeroTolerance times the largest retained eigenvalue
// count as numerically null (barotropic).
const zeroTolerance = 1e-10

// Errors returned by Solve.
var (
	ErrShapeMismatch    = errors.New("modes: N² length does not match grid midpoint count")
	ErrInvalidModeCount = errors.New("modes: requested mode count not resolvable on grid")
	ErrNonPositiveN2    = errors.New("modes: non-positive N² in stratification")
	ErrSingularMatrix   = errors.New("modes: eigendecomposition failed")
)

// ModeSet holds the solved eigenmodes of one column, ordered by
// ascending eigenvalue. Index 0 is the barotropic mode.
type ModeSet struct {
	Grid profile.GridSpec

	// Eigenvalues of the discretized problem, ascending, in 1/m².
	Eigenvalues []float64

	// Radii are the deformation radii in meters. Radii[0] is the
	// external (barotropic) Rossby radius sqrt(g·H)/|f0|; higher
	// entries are 1/sqrt(λ). A degenerate near-zero baroclinic
	// eigenvalue reports +Inf instead of a division by ~0.
	Radii []float64

	// Modes[m] is the vertical structure function φ of mode m on the
	// grid levels, scaled to unit maximum absolute value with
	// non-negative surface value.
	Modes [][]float64

	// WModes[m] is the vertical-velocity structure of mode m on the
	// layer midpoints, derived as (f0²/N²)·dφ/dz and normalized like
	// Modes. Nil unless WithVerticalVelocity was set.
	WModes [][]float64
}

// config holds options for Solve.
type config struct {
	f0      float64
	n2Floor float64
	strict  bool
	wModes  bool
}

// Option configures Solve.
type Option func(*config)

// WithCoriolis sets the Coriolis parameter f0 (1/s) used for scaling
// and for the deformation radii. Default is the value at 45°N.
func WithCoriolis(f0 float64) Option {
	return func(cfg *config) { cfg.f0 = f0 }
}

// WithVerticalVelocity additionally derives the vertical-velocity
// structure function of every mode.
func WithVerticalVelocity() Option {
	return func(cfg *config) { cfg.wModes = true }
}

// WithStrictStratification makes negative N² input an error
// (ErrNonPositiveN2) instead of flooring it at the configured floor.
func WithStrictStratification() Option {
	return func(cfg *config) { cfg.strict = true }
}

// WithN2Floor overrides DefaultN2Floor.
func WithN2Floor(floor float64) Option {
	return func(cfg *config) {
		if floor > 0 {
			cfg.n2Floor = floor
		}
	}
}

// CoriolisAt returns the Coriolis parameter f = 2Ω·sin(lat) for a
// latitude in degrees.
func CoriolisAt(latitudeDeg float64) float64 {
	return 2 * EarthAngularVelocity * math.Sin(latitudeDeg*math.Pi/180)
}

// Solve discretizes and solves the vertical-mode eigenproblem for one
// column. n2 is the squared Brunt-Vaisala frequency on the layer
// midpoints of grid (length grid.Levels()-1, the stratification
// package's convention).
//
// It returns nModes+1 eigenpairs: index 0 is the barotropic mode,
// indices 1..nModes the requested baroclinic modes.
func Solve(n2 []float64, grid profile.GridSpec, nModes int, opts ...Option) (*ModeSet, error) {
	cfg := config{
		f0:      CoriolisAt(45),
		n2Floor: DefaultN2Floor,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := grid.Validate(); err != nil {
		return nil, err
	}

	n := grid.Levels()
	if len(n2) != n-1 {
		return nil, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, len(n2), n-1)
	}

	if nModes < 1 || nModes+1 > n {
		return nil, fmt.Errorf("%w: %d modes on %d levels", ErrInvalidModeCount, nModes, n)
	}

	c, err := coupling(n2, cfg)
	if err != nil {
		return nil, err
	}

	vals, vecs, err := decompose(c, grid.Step, n)
	if err != nil {
		return nil, err
	}

	keep := nModes + 1
	vals = vals[:keep]

	// Symmetric positive semidefinite operator: tiny negative
	// eigenvalues are roundoff.
	for i, v := range vals {
		if v < 0 {
			vals[i] = 0
		}
	}

	tol := zeroTolerance * vals[keep-1]
	if cfg.strict && nullCount(vals, tol) > 1 {
		return nil, fmt.Errorf("%w: degenerate stratification (multiple null modes)", ErrSingularMatrix)
	}

	ms := &ModeSet{
		Grid:        grid,
		Eigenvalues: vals,
		Radii:       radii(vals, tol, grid.BottomDepth, cfg.f0),
		Modes:       make([][]float64, keep),
	}

	for m := 0; m < keep; m++ {
		phi := make([]float64, n)
		mat.Col(phi, m, vecs)
		normalize(phi)
		ms.Modes[m] = phi
	}

	if cfg.wModes {
		ms.WModes = make([][]float64, keep)
		for m := 0; m < keep; m++ {
			w := verticalVelocity(ms.Modes[m], c, grid.Step)
			// A null mode has no vertical motion; scaling its
			// roundoff-level w to unit maximum would be noise.
			if vals[m] > tol {
				normalize(w)
			}
			ms.WModes[m] = w
		}
	}

	return ms, nil
}

// coupling builds f0²/N² on the midpoints, applying the floor or the
// strict check.
func coupling(n2 []float64, cfg config) ([]float64, error) {
	c := make([]float64, len(n2))
	for j, v := range n2 {
		if v < cfg.n2Floor {
			if cfg.strict && v <= 0 {
				return nil, fmt.Errorf("%w: N²=%g at midpoint %d", ErrNonPositiveN2, v, j)
			}
			v = cfg.n2Floor
		}
		c[j] = cfg.f0 * cfg.f0 / v
	}

	return c, nil
}

// decompose assembles the symmetric tridiagonal operator and computes
// its full eigendecomposition, eigenvalues ascending.
func decompose(c []float64, dz float64, n int) ([]float64, *mat.Dense, error) {
	inv := 1 / (dz * dz)

	sym := mat.NewSymDense(n, nil)
	sym.SetSym(0, 0, c[0]*inv)
	sym.SetSym(n-1, n-1, c[n-2]*inv)

	for i := 1; i < n-1; i++ {
		sym.SetSym(i, i, (c[i-1]+c[i])*inv)
	}

	for i := 0; i < n-1; i++ {
		sym.SetSym(i, i+1, -c[i]*inv)
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, nil, ErrSingularMatrix
	}

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	return eig.Values(nil), &vecs, nil
}

// nullCount counts eigenvalues at or below tol.
func nullCount(vals []float64, tol float64) int {
	count := 0
	for _, v := range vals {
		if v <= tol {
			count++
		}
	}

	return count
}

// radii converts eigenvalues to deformation radii in meters.
func radii(vals []float64, tol, bottomDepth, f0 float64) []float64 {
	out := make([]float64, len(vals))
	out[0] = math.Sqrt(stratification.Gravity*bottomDepth) / math.Abs(f0)

	for i := 1; i < len(vals); i++ {
		if vals[i] <= tol {
			out[i] = math.Inf(1)
			continue
		}
		out[i] = 1 / math.Sqrt(vals[i])
	}

	return out
}

// normalize scales a structure function to unit maximum absolute value
// with a non-negative surface value. All-zero vectors are left alone.
func normalize(phi []float64) {
	maxAbs := 0.0
	for _, v := range phi {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}

	if maxAbs < 1e-30 {
		return
	}

	s := 1 / maxAbs
	if phi[0] < 0 {
		s = -s
	}

	floats.Scale(s, phi)
}

// verticalVelocity derives the w-structure on the layer midpoints from
// the φ-structure: w = (f0²/N²)·dφ/dz.
func verticalVelocity(phi, c []float64, dz float64) []float64 {
	dphi := make([]float64, len(phi)-1)
	for j := range dphi {
		dphi[j] = (phi[j+1] - phi[j]) / dz
	}

	w := make([]float64, len(dphi))
	vecmath.MulBlock(w, c, dphi)

	return w
}
