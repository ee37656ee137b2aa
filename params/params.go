// Package params computes named mineralogical summary parameters from
// reflectance spectra by combining band-depth evaluations at fixed
// wavelength triples.
//
// Each index is a small arithmetic combination of the generic
// band-depth primitive; the wavelength and kernel constants are data
// (see Catalog), not behavior. Band depths compare observed center
// reflectance against an interpolated continuum, so 1-depth terms are
// clamped at zero where the published formulas do so. Non-finite values
// from degenerate continua propagate to the output.
package params

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/langa1999/n2n4m/spectral/banddepth"
	"github.com/langa1999/n2n4m/spectral/cube"
)

// Component is one band-depth evaluation of an index formula.
type Component struct {
	Wavelengths banddepth.Wavelengths
	Kernels     banddepth.Kernels
}

// Definition describes a summary parameter: its band-depth components
// and the formula that combines them.
type Definition struct {
	Name        string
	Description string
	Components  []Component
	Compute     func(spectra cube.Matrix, grid *banddepth.Grid) ([]float64, error)
}

// Index constants below are CRISM wavelengths in micrometers. Kernel
// sizes follow the published parameter definitions.
var (
	hydFeMgClayComponents = []Component{
		{banddepth.Wavelengths{Short: 1.33578, Center: 1.41459, Long: 1.55264}, banddepth.Kernels{Short: 5, Center: 3, Long: 5}},
		{banddepth.Wavelengths{Short: 1.86212, Center: 1.92146, Long: 2.07985}, banddepth.Kernels{Short: 5, Center: 5, Long: 5}},
		{banddepth.Wavelengths{Short: 2.15251, Center: 2.28472, Long: 2.34426}, banddepth.Kernels{Short: 3, Center: 5, Long: 3}},
		{banddepth.Wavelengths{Short: 2.15251, Center: 2.30456, Long: 2.34426}, banddepth.Kernels{Short: 3, Center: 3, Long: 3}},
		{banddepth.Wavelengths{Short: 2.15251, Center: 2.32441, Long: 2.34426}, banddepth.Kernels{Short: 3, Center: 3, Long: 3}},
		{banddepth.Wavelengths{Short: 2.34426, Center: 2.38396, Long: 2.4303}, banddepth.Kernels{Short: 3, Center: 3, Long: 3}},
		{banddepth.Wavelengths{Short: 2.34426, Center: 2.3972, Long: 2.4303}, banddepth.Kernels{Short: 3, Center: 3, Long: 3}},
	}

	d2300DropComponents = []Component{
		{banddepth.Wavelengths{Short: 1.81598, Center: 2.30456, Long: 2.52951}, banddepth.Kernels{Short: 5, Center: 3, Long: 5}},
		{banddepth.Wavelengths{Short: 1.81598, Center: 2.32441, Long: 2.52951}, banddepth.Kernels{Short: 5, Center: 3, Long: 5}},
		{banddepth.Wavelengths{Short: 1.81598, Center: 2.23182, Long: 2.52951}, banddepth.Kernels{Short: 5, Center: 3, Long: 5}},
	}

	d2300BaseComponents = []Component{
		{banddepth.Wavelengths{Short: 1.81598, Center: 2.11948, Long: 2.52951}, banddepth.Kernels{Short: 5, Center: 5, Long: 5}},
		{banddepth.Wavelengths{Short: 1.81598, Center: 2.17233, Long: 2.52951}, banddepth.Kernels{Short: 5, Center: 5, Long: 5}},
		{banddepth.Wavelengths{Short: 1.81598, Center: 2.21199, Long: 2.52951}, banddepth.Kernels{Short: 5, Center: 5, Long: 5}},
	}

	bd1750Component = Component{
		Wavelengths: banddepth.Wavelengths{Short: 1.55264, Center: 1.75009, Long: 1.81598},
		Kernels:     banddepth.Kernels{Short: 1, Center: 1, Long: 1},
	}

	// BD175 reference wavelengths: two center bands over the short and
	// long shoulder bands, no kernel averaging.
	bd175Center1 = 1.75009
	bd175Center2 = 1.75668
	bd175Short   = 1.69082
	bd175Long    = 1.77644
)

// Catalog lists the summary parameters this package computes, keyed by
// index name.
var Catalog = map[string]Definition{
	"hyd_femg_clay": {
		Name:        "hyd_femg_clay",
		Description: "Hydrated Fe/Mg clay index: sum of seven clamped band depths",
		Components:  hydFeMgClayComponents,
		Compute:     HydFeMgClayIndex,
	},
	"d2300": {
		Name:        "d2300",
		Description: "Dropoff at 2.3 um: Mg,Fe-OH minerals, Mg-carbonates, CO2 ice",
		Components:  append(append([]Component(nil), d2300DropComponents...), d2300BaseComponents...),
		Compute:     D2300,
	},
	"bd1750": {
		Name:        "bd1750",
		Description: "1.75 um band depth: alunite and gypsum",
		Components:  []Component{bd1750Component},
		Compute:     BD1750,
	},
	"bd175": {
		Name:        "bd175",
		Description: "1.75 um band depth, CoTCAT shoulder-ratio formulation",
		Compute:     BD175,
	},
}

// clampedBandDepth returns max(0, 1-depth) for one component.
func clampedBandDepth(spectra cube.Matrix, grid *banddepth.Grid, c Component) ([]float64, error) {
	depth, err := banddepth.Compute(spectra, grid, c.Wavelengths, c.Kernels)
	if err != nil {
		return nil, err
	}

	oneMinus(depth)
	clampNegative(depth)

	return depth, nil
}

// HydFeMgClayIndex sums seven clamped band depths covering the 1.4 um
// and 1.9 um hydration features and the 2.28-2.40 um metal-OH features.
func HydFeMgClayIndex(spectra cube.Matrix, grid *banddepth.Grid) ([]float64, error) {
	total := make([]float64, len(spectra))

	for _, c := range hydFeMgClayComponents {
		bd, err := clampedBandDepth(spectra, grid, c)
		if err != nil {
			return nil, fmt.Errorf("hyd_femg_clay at %g: %w", c.Wavelengths.Center, err)
		}

		vecmath.AddBlockInPlace(total, bd)
	}

	return total, nil
}

// D2300 measures the reflectance dropoff at 2.3 um as one minus the
// ratio of summed band depths inside the dropoff to summed band depths
// on its shoulder. Depths are used unclamped, as published.
func D2300(spectra cube.Matrix, grid *banddepth.Grid) ([]float64, error) {
	sumDepths := func(components []Component) ([]float64, error) {
		total := make([]float64, len(spectra))
		for _, c := range components {
			depth, err := banddepth.Compute(spectra, grid, c.Wavelengths, c.Kernels)
			if err != nil {
				return nil, fmt.Errorf("d2300 at %g: %w", c.Wavelengths.Center, err)
			}

			vecmath.AddBlockInPlace(total, depth)
		}

		return total, nil
	}

	drop, err := sumDepths(d2300DropComponents)
	if err != nil {
		return nil, err
	}

	base, err := sumDepths(d2300BaseComponents)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(spectra))
	floats.DivTo(out, drop, base)
	oneMinus(out)

	return out, nil
}

// BD1750 is the 1.75 um band depth with single-band kernels, clamped
// at zero.
func BD1750(spectra cube.Matrix, grid *banddepth.Grid) ([]float64, error) {
	out, err := clampedBandDepth(spectra, grid, bd1750Component)
	if err != nil {
		return nil, fmt.Errorf("bd1750: %w", err)
	}

	return out, nil
}

// BD175 is the CoTCAT formulation of the 1.75 um band depth: one minus
// the ratio of the two center-band reflectances to the two shoulder
// reflectances, read directly from the spectra without kernel medians.
// Unlike the other indices it is not clamped.
func BD175(spectra cube.Matrix, grid *banddepth.Grid) ([]float64, error) {
	if err := spectra.Validate(); err != nil {
		return nil, err
	}

	bands := make([]int, 4)
	for i, w := range []float64{bd175Center1, bd175Center2, bd175Short, bd175Long} {
		b, err := grid.Band(w)
		if err != nil {
			return nil, fmt.Errorf("bd175: %w", err)
		}

		bands[i] = b
	}

	out := make([]float64, len(spectra))
	for i, s := range spectra {
		out[i] = 1 - (s[bands[0]]+s[bands[1]])/(s[bands[2]]+s[bands[3]])
	}

	return out, nil
}

// oneMinus rewrites each element x as 1-x.
func oneMinus(v []float64) {
	for i, x := range v {
		v[i] = 1 - x
	}
}

// clampNegative rewrites negative elements as zero. NaN is left alone.
func clampNegative(v []float64) {
	for i, x := range v {
		if x < 0 {
			v[i] = 0
		}
	}
}
