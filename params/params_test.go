package params

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langa1999/n2n4m/spectral/banddepth"
	"github.com/langa1999/n2n4m/spectral/cube"
)

// requiredWavelengths collects every wavelength any catalog formula
// looks up.
func requiredWavelengths() []float64 {
	seen := map[float64]bool{}
	for _, def := range Catalog {
		for _, c := range def.Components {
			seen[c.Wavelengths.Short] = true
			seen[c.Wavelengths.Center] = true
			seen[c.Wavelengths.Long] = true
		}
	}
	for _, w := range []float64{bd175Center1, bd175Center2, bd175Short, bd175Long} {
		seen[w] = true
	}

	out := make([]float64, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Float64s(out)

	return out
}

// testGrid builds a grid holding every required wavelength with two
// filler bands on each side, so kernels up to 5 always have a full
// window. Filler spacing is well inside the smallest gap between
// required wavelengths.
func testGrid(t *testing.T) *banddepth.Grid {
	t.Helper()

	var wavelengths []float64
	for _, w := range requiredWavelengths() {
		wavelengths = append(wavelengths, w-0.002, w-0.001, w, w+0.001, w+0.002)
	}
	sort.Float64s(wavelengths)

	g, err := banddepth.NewGrid(wavelengths)
	require.NoError(t, err)

	return g
}

// flatSpectra returns n identical constant spectra on the grid.
func flatSpectra(g *banddepth.Grid, n int, value float64) cube.Matrix {
	m := make(cube.Matrix, n)
	for i := range m {
		s := make([]float64, g.Len())
		for j := range s {
			s[j] = value
		}
		m[i] = s
	}

	return m
}

// setAround writes value into the bands within halfBands of the exact
// wavelength position.
func setAround(t *testing.T, s []float64, g *banddepth.Grid, wavelength float64, halfBands int, value float64) {
	t.Helper()

	pos, err := g.Band(wavelength)
	require.NoError(t, err)

	for i := pos - halfBands; i <= pos+halfBands; i++ {
		s[i] = value
	}
}

func TestAllIndicesZeroOnFlatSpectra(t *testing.T) {
	g := testGrid(t)
	spectra := flatSpectra(g, 3, 0.3)

	for name, def := range Catalog {
		t.Run(name, func(t *testing.T) {
			got, err := def.Compute(spectra, g)
			require.NoError(t, err)
			require.Len(t, got, len(spectra))

			for i, v := range got {
				assert.InDeltaf(t, 0, v, 1e-9, "spectrum %d", i)
			}
		})
	}
}

func TestHydFeMgClayIndexSingleFeature(t *testing.T) {
	g := testGrid(t)
	spectra := flatSpectra(g, 2, 1)

	// Depress the full 1.92 um center kernel of spectrum 0 to half the
	// continuum; all other features stay flat.
	setAround(t, spectra[0], g, 1.92146, 2, 0.5)

	got, err := HydFeMgClayIndex(spectra, g)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, got[0], 1e-9)
	assert.InDelta(t, 0, got[1], 1e-9)
}

func TestHydFeMgClayIndexClampsNegativeTerms(t *testing.T) {
	g := testGrid(t)
	spectra := flatSpectra(g, 1, 1)

	// A peak instead of an absorption: depth > 1 makes 1-depth
	// negative, which clamps to zero instead of reducing the index.
	setAround(t, spectra[0], g, 1.92146, 2, 1.5)

	got, err := HydFeMgClayIndex(spectra, g)
	require.NoError(t, err)
	assert.InDelta(t, 0, got[0], 1e-9)
}

func TestD2300(t *testing.T) {
	g := testGrid(t)
	spectra := flatSpectra(g, 2, 1)

	// Depress the three dropoff centers of spectrum 0 to 0.5; the base
	// band depths and both shoulders stay at the continuum.
	for _, w := range []float64{2.30456, 2.32441, 2.23182} {
		setAround(t, spectra[0], g, w, 1, 0.5)
	}

	got, err := D2300(spectra, g)
	require.NoError(t, err)

	// drop sum = 1.5, base sum = 3: 1 - 1.5/3.
	assert.InDelta(t, 0.5, got[0], 1e-9)
	assert.InDelta(t, 0, got[1], 1e-9)
}

func TestBD1750(t *testing.T) {
	g := testGrid(t)
	spectra := flatSpectra(g, 1, 1)

	// Kernel size 1: only the exact center band matters.
	setAround(t, spectra[0], g, 1.75009, 0, 0.5)

	got, err := BD1750(spectra, g)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got[0], 1e-9)
}

func TestBD175(t *testing.T) {
	g := testGrid(t)
	spectra := flatSpectra(g, 1, 1)

	setAround(t, spectra[0], g, bd175Center1, 0, 0.8)
	setAround(t, spectra[0], g, bd175Center2, 0, 0.8)

	got, err := BD175(spectra, g)
	require.NoError(t, err)

	// 1 - (0.8+0.8)/(1+1).
	assert.InDelta(t, 0.2, got[0], 1e-9)
}

func TestIndicesFailOnMissingWavelength(t *testing.T) {
	// A grid without the catalog wavelengths: every formula reports the
	// lookup failure instead of approximating.
	g, err := banddepth.NewGrid([]float64{1.0, 1.1, 1.2, 1.3, 1.4})
	require.NoError(t, err)

	spectra := flatSpectra(g, 1, 1)

	for name, def := range Catalog {
		t.Run(name, func(t *testing.T) {
			_, err := def.Compute(spectra, g)
			assert.ErrorIs(t, err, banddepth.ErrWavelengthNotFound)
		})
	}
}

func TestCatalogDefinitions(t *testing.T) {
	require.NotEmpty(t, Catalog)

	for name, def := range Catalog {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, def.Name)
			assert.NotEmpty(t, def.Description)
			require.NotNil(t, def.Compute)

			for _, c := range def.Components {
				assert.Less(t, c.Wavelengths.Short, c.Wavelengths.Center)
				assert.Less(t, c.Wavelengths.Center, c.Wavelengths.Long)

				for _, k := range []int{c.Kernels.Short, c.Kernels.Center, c.Kernels.Long} {
					assert.Positive(t, k)
					assert.Equal(t, 1, k%2, "kernel sizes must be odd")
				}
			}
		})
	}
}
