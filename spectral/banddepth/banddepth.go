// Package banddepth computes absorption band depths from reflectance
// spectra sampled on a fixed wavelength grid.
//
// The band depth at a feature is the ratio of the observed reflectance
// at the feature's center wavelength to a continuum estimate obtained
// by linear interpolation between a short and a long reference
// wavelength. Each of the three reflectance values is a median over a
// small kernel of adjacent bands, which keeps single-band noise out of
// the ratio. Values below 1 indicate an absorption feature.
//
// The engine is a pure function layer: it never mutates its inputs and
// holds no state beyond the precomputed grid lookup, so concurrent use
// across spectra or cubes needs no coordination.
package banddepth

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/langa1999/n2n4m/internal/kernel"
	"github.com/langa1999/n2n4m/spectral/cube"
)

// Wavelengths is the (short, center, long) wavelength triple of one
// band-depth evaluation. Callers guarantee Short < Center < Long and
// that all three values exist in the grid.
type Wavelengths struct {
	Short  float64
	Center float64
	Long   float64
}

// Kernels holds the odd kernel sizes paired with a Wavelengths triple,
// one per wavelength.
type Kernels struct {
	Short  int
	Center int
	Long   int
}

// Weights returns the linear interpolation weights (a, b) such that
// a*shortRef + b*longRef estimates the continuum reflectance at the
// center wavelength. b is the fractional position of center between
// short and long. A degenerate short == long divides by zero and
// propagates the resulting NaN/Inf; downstream formulas filter
// non-finite values rather than this layer raising an error.
func Weights(short, center, long float64) (a, b float64) {
	b = (center - short) / (long - short)
	a = 1 - b

	return a, b
}

// InterpolatedCenter returns the continuum reflectance estimate at the
// center wavelength for every spectrum: a*shortRef[i] + b*longRef[i].
// shortRef and longRef must have equal length.
func InterpolatedCenter(shortRef []float64, wl Wavelengths, longRef []float64) []float64 {
	a, b := Weights(wl.Short, wl.Center, wl.Long)

	out := make([]float64, len(shortRef))
	floats.ScaleTo(out, a, shortRef)
	floats.AddScaled(out, b, longRef)

	return out
}

// Compute returns one band depth per spectrum: the kernel-median
// reflectance at the center wavelength divided by the continuum
// estimate interpolated between the short and long kernel medians.
//
// A flat or zero continuum divides by zero; the resulting non-finite
// depth is returned as-is. Kernel windows running past the grid ends
// are rejected with ErrWindowOutOfRange.
func Compute(spectra cube.Matrix, grid *Grid, wl Wavelengths, k Kernels) ([]float64, error) {
	if err := spectra.Validate(); err != nil {
		return nil, err
	}

	if spectra.Bands() != grid.Len() {
		return nil, fmt.Errorf("%w: %d bands, grid %d", ErrBandCountMismatch, spectra.Bands(), grid.Len())
	}

	shortRef, err := kernelReflectance(spectra, grid, wl.Short, k.Short)
	if err != nil {
		return nil, err
	}

	centerRef, err := kernelReflectance(spectra, grid, wl.Center, k.Center)
	if err != nil {
		return nil, err
	}

	longRef, err := kernelReflectance(spectra, grid, wl.Long, k.Long)
	if err != nil {
		return nil, err
	}

	depth := InterpolatedCenter(shortRef, wl, longRef)
	floats.DivTo(depth, centerRef, depth)

	return depth, nil
}

// kernelReflectance returns the median reflectance of a symmetric
// kernel centered on wavelength, one value per spectrum.
func kernelReflectance(spectra cube.Matrix, grid *Grid, wavelength float64, size int) ([]float64, error) {
	lo, hi, err := grid.window(wavelength, size)
	if err != nil {
		return nil, err
	}

	var scratch kernel.Scratch

	out := make([]float64, len(spectra))
	for i, s := range spectra {
		out[i] = scratch.Median(s[lo : hi+1])
	}

	return out, nil
}
