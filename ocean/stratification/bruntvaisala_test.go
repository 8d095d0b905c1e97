package stratification

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ocean/internal/testutil"
	"github.com/cwbudde/algo-ocean/ocean/profile"
)

func TestBruntVaisalaLinearStratification(t *testing.T) {
	grid := profile.GridSpec{Step: 1, BottomDepth: 10}

	const slope = 0.01 // kg/m³ per meter
	density := make([]float64, grid.Levels())
	sum := 0.0
	for k := range density {
		density[k] = 1025 + slope*float64(k)
		sum += density[k]
	}
	rho0 := sum / float64(len(density))

	got, err := BruntVaisala(density, grid)
	if err != nil {
		t.Fatalf("BruntVaisala: %v", err)
	}

	if len(got) != grid.Levels()-1 {
		t.Fatalf("len = %d, want %d", len(got), grid.Levels()-1)
	}

	want := Gravity / rho0 * slope
	for _, v := range got {
		testutil.RequireNear(t, v, want, 1e-12)
	}
}

func TestBruntVaisalaHomogeneousColumn(t *testing.T) {
	grid := profile.GridSpec{Step: 2, BottomDepth: 20}

	density := make([]float64, grid.Levels())
	for k := range density {
		density[k] = 1026.5
	}

	got, err := BruntVaisala(density, grid)
	if err != nil {
		t.Fatalf("BruntVaisala: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, make([]float64, grid.Levels()-1), 1e-15)
}

func TestBruntVaisalaUnstableLayerIsNegative(t *testing.T) {
	grid := profile.GridSpec{Step: 1, BottomDepth: 3}

	// Density inversion between levels 1 and 2.
	density := []float64{1025, 1025.5, 1025.2, 1026}

	got, err := BruntVaisala(density, grid)
	if err != nil {
		t.Fatalf("BruntVaisala: %v", err)
	}

	if got[1] >= 0 {
		t.Fatalf("inverted layer N² = %v, want negative", got[1])
	}

	if got[0] <= 0 || got[2] <= 0 {
		t.Fatalf("stable layers N² = %v, %v, want positive", got[0], got[2])
	}
}

func TestBruntVaisalaShapeMismatch(t *testing.T) {
	grid := profile.GridSpec{Step: 1, BottomDepth: 10}

	_, err := BruntVaisala(make([]float64, 5), grid)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestBruntVaisalaRejectsMissingDensity(t *testing.T) {
	grid := profile.GridSpec{Step: 1, BottomDepth: 3}

	density := []float64{1025, math.NaN(), 1026, 1026.5}

	_, err := BruntVaisala(density, grid)
	if !errors.Is(err, ErrMissingDensity) {
		t.Fatalf("err = %v, want ErrMissingDensity", err)
	}
}
