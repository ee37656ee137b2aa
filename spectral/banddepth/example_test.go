package banddepth_test

import (
	"fmt"

	"github.com/langa1999/n2n4m/spectral/banddepth"
	"github.com/langa1999/n2n4m/spectral/cube"
)

func ExampleCompute() {
	// Five-band grid with an absorption feature at 1.9 um.
	grid, err := banddepth.NewGrid([]float64{1.7, 1.8, 1.9, 2.0, 2.1})
	if err != nil {
		panic(err)
	}

	spectra := cube.Matrix{
		{0.30, 0.30, 0.15, 0.30, 0.30}, // deep feature
		{0.30, 0.30, 0.30, 0.30, 0.30}, // flat continuum
	}

	depth, err := banddepth.Compute(spectra, grid,
		banddepth.Wavelengths{Short: 1.8, Center: 1.9, Long: 2.0},
		banddepth.Kernels{Short: 1, Center: 1, Long: 1},
	)
	if err != nil {
		panic(err)
	}

	for i, d := range depth {
		fmt.Printf("spectrum %d: depth %.2f\n", i, d)
	}
	// Output:
	// spectrum 0: depth 0.50
	// spectrum 1: depth 1.00
}

func ExampleWeights() {
	a, b := banddepth.Weights(1.0, 1.5, 3.0)
	fmt.Printf("a = %.2f, b = %.2f\n", a, b)
	// Output:
	// a = 0.75, b = 0.25
}
