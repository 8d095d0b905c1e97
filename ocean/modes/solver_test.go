package modes

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ocean/internal/testutil"
	"github.com/cwbudde/algo-ocean/ocean/profile"
)

const (
	testN0     = 2e-3 // uniform buoyancy frequency, 1/s
	testF0     = 1e-4 // Coriolis parameter, 1/s
	testBottom = 300.0
)

func uniformGrid(t *testing.T) (profile.GridSpec, []float64) {
	t.Helper()

	grid := profile.GridSpec{Step: 1, BottomDepth: testBottom}
	n2 := testutil.UniformN2(testN0*testN0, grid.Levels()-1)

	return grid, n2
}

func TestSolveUniformStratificationAnalytic(t *testing.T) {
	grid, n2 := uniformGrid(t)

	ms, err := Solve(n2, grid, 3, WithCoriolis(testF0))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if len(ms.Eigenvalues) != 4 {
		t.Fatalf("got %d eigenpairs, want 4", len(ms.Eigenvalues))
	}

	// Barotropic eigenvalue is numerically null.
	if ms.Eigenvalues[0] > 1e-12 {
		t.Fatalf("barotropic eigenvalue = %v, want ~0", ms.Eigenvalues[0])
	}

	// λ_n = (nπ/H)² · f0²/N0² for the continuous problem.
	for n := 1; n <= 3; n++ {
		want := math.Pow(float64(n)*math.Pi/testBottom, 2) * testF0 * testF0 / (testN0 * testN0)
		got := ms.Eigenvalues[n]

		if rel := math.Abs(got-want) / want; rel > 0.02 {
			t.Fatalf("mode %d eigenvalue = %v, want %v (rel err %v)", n, got, want, rel)
		}
	}

	// R_1 = N0·H/(π·f0) for uniform stratification.
	wantR1 := testN0 * testBottom / (math.Pi * testF0)
	if rel := math.Abs(ms.Radii[1]-wantR1) / wantR1; rel > 0.02 {
		t.Fatalf("R1 = %v, want %v", ms.Radii[1], wantR1)
	}

	// Barotropic radius is the external Rossby radius sqrt(gH)/|f0|.
	wantR0 := math.Sqrt(9.806*testBottom) / testF0
	testutil.RequireNear(t, ms.Radii[0], wantR0, 1)
}

func TestSolveEigenvaluesAscendingDistinct(t *testing.T) {
	grid := profile.GridSpec{Step: 1, BottomDepth: testBottom}
	n2 := testutil.ExponentialN2(1e-4, 150, grid.Midpoints())

	ms, err := Solve(n2, grid, 5, WithCoriolis(testF0))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	for i := 1; i < len(ms.Eigenvalues); i++ {
		if ms.Eigenvalues[i] <= ms.Eigenvalues[i-1] {
			t.Fatalf("eigenvalues not strictly increasing at %d: %v", i, ms.Eigenvalues)
		}
	}

	for i, v := range ms.Eigenvalues {
		if v < 0 {
			t.Fatalf("negative eigenvalue at %d: %v", i, v)
		}
	}
}

func TestSolveNormalizationConvention(t *testing.T) {
	grid, n2 := uniformGrid(t)

	ms, err := Solve(n2, grid, 3, WithCoriolis(testF0))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	for m, phi := range ms.Modes {
		if len(phi) != grid.Levels() {
			t.Fatalf("mode %d length %d, want %d", m, len(phi), grid.Levels())
		}

		maxAbs := 0.0
		for _, v := range phi {
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
		testutil.RequireNear(t, maxAbs, 1, 1e-12)

		if phi[0] < 0 {
			t.Fatalf("mode %d surface value %v, want non-negative", m, phi[0])
		}
	}

	// The barotropic structure is depth-independent.
	for _, v := range ms.Modes[0] {
		testutil.RequireNear(t, v, 1, 1e-6)
	}
}

func TestSolveModeShapeNodeCount(t *testing.T) {
	grid, n2 := uniformGrid(t)

	ms, err := Solve(n2, grid, 3, WithCoriolis(testF0))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	// φ_n ≈ cos(nπz/H): mode n crosses zero n times.
	for n := 0; n <= 3; n++ {
		crossings := 0
		phi := ms.Modes[n]
		for i := 1; i < len(phi); i++ {
			if phi[i-1]*phi[i] < 0 {
				crossings++
			}
		}
		if crossings != n {
			t.Fatalf("mode %d has %d zero crossings, want %d", n, crossings, n)
		}
	}
}

func TestSolveVerticalVelocityModes(t *testing.T) {
	grid, n2 := uniformGrid(t)

	ms, err := Solve(n2, grid, 2, WithCoriolis(testF0), WithVerticalVelocity())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if len(ms.WModes) != 3 {
		t.Fatalf("got %d w-modes, want 3", len(ms.WModes))
	}

	// No vertical motion in the barotropic mode.
	for _, v := range ms.WModes[0] {
		if math.Abs(v) > 1e-10 {
			t.Fatalf("barotropic w = %v, want ~0", v)
		}
	}

	// Mode 1: w ∝ sin(πz/H), unit maximum, vanishing at the lid and
	// the bottom.
	w := ms.WModes[1]
	if len(w) != grid.Levels()-1 {
		t.Fatalf("w length %d, want %d", len(w), grid.Levels()-1)
	}

	maxAbs := 0.0
	for _, v := range w {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	testutil.RequireNear(t, maxAbs, 1, 1e-12)

	if math.Abs(w[0]) > 0.05 || math.Abs(w[len(w)-1]) > 0.05 {
		t.Fatalf("w does not vanish at the boundaries: %v, %v", w[0], w[len(w)-1])
	}
}

func TestSolveHomogeneousColumn(t *testing.T) {
	grid := profile.GridSpec{Step: 1, BottomDepth: testBottom}
	n2 := make([]float64, grid.Levels()-1)

	ms, err := Solve(n2, grid, 2, WithCoriolis(testF0))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	// With the floor in place the baroclinic radii collapse toward
	// zero: an unstratified column supports no baroclinic motion.
	if ms.Radii[1] > 100 {
		t.Fatalf("R1 = %v m for homogeneous column, want tiny", ms.Radii[1])
	}

	if ms.Eigenvalues[0] > 1e-9 {
		t.Fatalf("barotropic eigenvalue = %v, want ~0", ms.Eigenvalues[0])
	}
}

func TestSolveStrictStratification(t *testing.T) {
	grid := profile.GridSpec{Step: 1, BottomDepth: 10}
	n2 := testutil.UniformN2(1e-5, grid.Levels()-1)
	n2[3] = -1e-6

	_, err := Solve(n2, grid, 2, WithCoriolis(testF0), WithStrictStratification())
	if !errors.Is(err, ErrNonPositiveN2) {
		t.Fatalf("err = %v, want ErrNonPositiveN2", err)
	}

	// Without strict mode the same column solves via the floor.
	if _, err := Solve(n2, grid, 2, WithCoriolis(testF0)); err != nil {
		t.Fatalf("Solve with floor: %v", err)
	}
}

func TestSolveShapeAndModeCountErrors(t *testing.T) {
	grid := profile.GridSpec{Step: 1, BottomDepth: 10}

	if _, err := Solve(make([]float64, 4), grid, 2); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}

	n2 := testutil.UniformN2(1e-5, grid.Levels()-1)

	if _, err := Solve(n2, grid, 0); !errors.Is(err, ErrInvalidModeCount) {
		t.Fatalf("err = %v, want ErrInvalidModeCount for 0 modes", err)
	}

	if _, err := Solve(n2, grid, 50); !errors.Is(err, ErrInvalidModeCount) {
		t.Fatalf("err = %v, want ErrInvalidModeCount for too many modes", err)
	}
}

func TestCoriolisAt(t *testing.T) {
	testutil.RequireNear(t, CoriolisAt(90), 2*EarthAngularVelocity, 1e-12)
	testutil.RequireNear(t, CoriolisAt(0), 0, 1e-20)
	testutil.RequireNear(t, CoriolisAt(-45), -CoriolisAt(45), 1e-18)
}
