package profile_test

import (
	"fmt"

	"github.com/cwbudde/algo-ocean/ocean/profile"
)

func ExampleResample() {
	p := profile.VerticalProfile{
		Depths: []float64{0, 10, 20},
		Values: []float64{1025, 1026, 1027},
	}
	grid := profile.GridSpec{Step: 5, BottomDepth: 20}

	values, err := profile.Resample(p, grid)
	if err != nil {
		panic(err)
	}

	for i, z := range grid.Depths() {
		fmt.Printf("%4.0f m  %.1f\n", z, values[i])
	}

	// Output:
	//    0 m  1025.0
	//    5 m  1025.5
	//   10 m  1026.0
	//   15 m  1026.5
	//   20 m  1027.0
}
