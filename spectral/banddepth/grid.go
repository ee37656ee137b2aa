package banddepth

import "fmt"

// Grid is an ordered wavelength grid with exact-value band lookup.
// Position i in the grid is band index i of every spectrum sampled on
// it. Lookup is by floating-point equality: callers pass the same
// literal values the grid was built from, never approximations.
type Grid struct {
	values []float64
	index  map[float64]int
}

// NewGrid builds a Grid from the ordered wavelength list. The lookup
// map is built once here so repeated band-depth calls avoid a linear
// scan per wavelength. Duplicate values are rejected.
func NewGrid(wavelengths []float64) (*Grid, error) {
	if len(wavelengths) == 0 {
		return nil, ErrEmptyGrid
	}

	values := make([]float64, len(wavelengths))
	copy(values, wavelengths)

	index := make(map[float64]int, len(values))
	for i, w := range values {
		if _, ok := index[w]; ok {
			return nil, fmt.Errorf("%w: %g", ErrDuplicateWavelength, w)
		}

		index[w] = i
	}

	return &Grid{values: values, index: index}, nil
}

// Len returns the number of bands in the grid.
func (g *Grid) Len() int { return len(g.values) }

// Values returns a copy of the grid's wavelength list.
func (g *Grid) Values() []float64 {
	out := make([]float64, len(g.values))
	copy(out, g.values)

	return out
}

// Band returns the band index of an exact wavelength value.
func (g *Grid) Band(wavelength float64) (int, error) {
	i, ok := g.index[wavelength]
	if !ok {
		return 0, fmt.Errorf("%w: %g", ErrWavelengthNotFound, wavelength)
	}

	return i, nil
}

// window returns the inclusive band range [lo, hi] of a symmetric
// kernel of the given size centered on wavelength. Windows that would
// run past either end of the grid are rejected rather than wrapped or
// clamped.
func (g *Grid) window(wavelength float64, size int) (lo, hi int, err error) {
	pos, err := g.Band(wavelength)
	if err != nil {
		return 0, 0, err
	}

	half := size / 2
	lo, hi = pos-half, pos+half
	if lo < 0 || hi >= len(g.values) {
		return 0, 0, fmt.Errorf("%w: kernel %d at %g spans bands [%d,%d], grid has %d",
			ErrWindowOutOfRange, size, wavelength, lo, hi, len(g.values))
	}

	return lo, hi, nil
}
