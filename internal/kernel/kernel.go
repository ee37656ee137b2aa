// Package kernel provides the small sliding-window primitives shared by
// the denoising filters and the band-depth engine: median and mean of a
// short contiguous span of samples.
//
// Windows here are always small (3..11 bands), so the median sorts a
// reusable scratch buffer instead of maintaining an order statistic
// structure.
package kernel

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Scratch is a reusable sort buffer for Median. A zero value is ready to
// use; one Scratch must not be shared between goroutines.
type Scratch struct {
	buf []float64
}

// Median returns the median of window using s as sort scratch space.
// The window is left untouched. Window length is expected to be odd;
// for even lengths the lower of the two middle elements is returned,
// matching the empirical quantile definition.
func (s *Scratch) Median(window []float64) float64 {
	if len(window) == 0 {
		return 0
	}

	if cap(s.buf) < len(window) {
		s.buf = make([]float64, len(window))
	}

	s.buf = s.buf[:len(window)]
	copy(s.buf, window)
	sort.Float64s(s.buf)

	return stat.Quantile(0.5, stat.Empirical, s.buf, nil)
}

// Mean returns the arithmetic mean of window.
func Mean(window []float64) float64 {
	if len(window) == 0 {
		return 0
	}

	return stat.Mean(window, nil)
}
