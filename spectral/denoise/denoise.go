// Package denoise provides sliding-window spectral filters for
// reflectance cubes: a spike-correcting ("sharpening") median filter, a
// moving median, and a moving mean.
//
// Every filter runs independently along the band axis of each (row,
// column) pixel spectrum; no filter couples neighboring pixels. Band
// positions without a full window on both sides pass through unchanged,
// so output shape always equals input shape. All filters are pure and
// allocate a fresh output cube.
package denoise

import (
	"github.com/langa1999/n2n4m/internal/kernel"
	"github.com/langa1999/n2n4m/spectral/cube"
)

const (
	// DefaultSharpenWindow is the neighborhood width of the sharpening
	// median filter.
	DefaultSharpenWindow = 3

	// DefaultSmoothWindow is the neighborhood width of the moving
	// median and moving mean filters.
	DefaultSmoothWindow = 5

	// DefaultSpikeThreshold is the deviation from the window median
	// above which the sharpening filter replaces a sample.
	DefaultSpikeThreshold = 0.1
)

// Option configures a filter call.
type Option func(*config)

type config struct {
	window    int
	threshold float64
}

// WithWindow sets the sliding-window width in bands. The width must be
// odd and positive; other values are ignored.
func WithWindow(n int) Option {
	return func(c *config) {
		if n > 0 && n%2 == 1 {
			c.window = n
		}
	}
}

// WithThreshold sets the sharpening filter's spike threshold. Only the
// sharpening filter reads it.
func WithThreshold(v float64) Option {
	return func(c *config) {
		if v > 0 {
			c.threshold = v
		}
	}
}

func applyOptions(window int, opts []Option) config {
	cfg := config{window: window, threshold: DefaultSpikeThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// SharpeningMedian corrects isolated spectral spikes: an interior band
// value is replaced by its window median only when it deviates from
// that median by more than the spike threshold. Smooth regions pass
// through bit-identical, unlike a full median filter which rewrites
// every sample.
func SharpeningMedian(c cube.Cube, opts ...Option) cube.Cube {
	cfg := applyOptions(DefaultSharpenWindow, opts)

	return mapSpectra(c, func(in, out []float64, scratch *kernel.Scratch) {
		half := cfg.window / 2
		for i := half; i < len(in)-half; i++ {
			m := scratch.Median(in[i-half : i+half+1])
			if diff := in[i] - m; diff > cfg.threshold || diff < -cfg.threshold {
				out[i] = m
			}
		}
	})
}

// MovingMedian replaces every interior band value with the median of
// its window. Edge bands without a full window pass through unchanged.
func MovingMedian(c cube.Cube, opts ...Option) cube.Cube {
	cfg := applyOptions(DefaultSmoothWindow, opts)

	return mapSpectra(c, func(in, out []float64, scratch *kernel.Scratch) {
		half := cfg.window / 2
		for i := half; i < len(in)-half; i++ {
			out[i] = scratch.Median(in[i-half : i+half+1])
		}
	})
}

// MovingMean replaces every interior band value with the arithmetic
// mean of its window. Edge bands without a full window pass through
// unchanged.
func MovingMean(c cube.Cube, opts ...Option) cube.Cube {
	cfg := applyOptions(DefaultSmoothWindow, opts)

	return mapSpectra(c, func(in, out []float64, scratch *kernel.Scratch) {
		half := cfg.window / 2
		for i := half; i < len(in)-half; i++ {
			out[i] = kernel.Mean(in[i-half : i+half+1])
		}
	})
}

// mapSpectra applies fn to every pixel spectrum of the cube. The output
// spectrum starts as a copy of the input, so positions fn leaves alone
// pass through unchanged.
func mapSpectra(c cube.Cube, fn func(in, out []float64, scratch *kernel.Scratch)) cube.Cube {
	var scratch kernel.Scratch

	out := make(cube.Cube, len(c))
	for r, row := range c {
		out[r] = make([][]float64, len(row))
		for cl, px := range row {
			s := make([]float64, len(px))
			copy(s, px)
			fn(px, s, &scratch)
			out[r][cl] = s
		}
	}

	return out
}
