// Package cube provides the container types shared by the spectral
// engines: a 3-D reflectance cube (row, column, band) and a flat 2-D
// matrix of spectra (spectrum, band).
//
// Both types are plain slices. The engines treat them as immutable
// inputs and always allocate fresh output storage; nothing in this
// module aliases caller memory across a call boundary.
package cube

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCube reports a cube with no rows, no columns, or no bands.
	ErrEmptyCube = errors.New("cube: empty cube")

	// ErrRaggedCube reports rows or columns of unequal length.
	ErrRaggedCube = errors.New("cube: ragged cube")

	// ErrRaggedSpectra reports spectra of unequal band count.
	ErrRaggedSpectra = errors.New("cube: ragged spectra")
)

// Cube is a 3-D reflectance array indexed as [row][column][band].
// The band axis holds one spectrum per (row, column) pixel.
type Cube [][][]float64

// Matrix is a 2-D reflectance array indexed as [spectrum][band],
// the shape the band-depth engine consumes.
type Matrix [][]float64

// Dims returns (rows, columns, bands). It assumes a rectangular cube;
// call Validate first on untrusted input.
func (c Cube) Dims() (rows, cols, bands int) {
	rows = len(c)
	if rows == 0 {
		return 0, 0, 0
	}

	cols = len(c[0])
	if cols == 0 {
		return rows, 0, 0
	}

	return rows, cols, len(c[0][0])
}

// Validate checks that the cube is non-empty and rectangular: every row
// has the same column count and every pixel the same band count.
func (c Cube) Validate() error {
	rows, cols, bands := c.Dims()
	if rows == 0 || cols == 0 || bands == 0 {
		return ErrEmptyCube
	}

	for i, row := range c {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedCube, i, len(row), cols)
		}

		for j, px := range row {
			if len(px) != bands {
				return fmt.Errorf("%w: pixel (%d,%d) has %d bands, want %d", ErrRaggedCube, i, j, len(px), bands)
			}
		}
	}

	return nil
}

// Flatten copies the cube into a Matrix in row-major pixel order:
// spectrum index i of the result is pixel (i/cols, i%cols).
func (c Cube) Flatten() Matrix {
	rows, cols, bands := c.Dims()
	out := make(Matrix, 0, rows*cols)

	for _, row := range c {
		for _, px := range row {
			s := make([]float64, bands)
			copy(s, px)
			out = append(out, s)
		}
	}

	return out
}

// Bands returns the band count of the matrix, or 0 when empty.
func (m Matrix) Bands() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Validate checks that the matrix is non-empty and rectangular.
func (m Matrix) Validate() error {
	bands := m.Bands()
	if len(m) == 0 || bands == 0 {
		return ErrEmptyCube
	}

	for i, s := range m {
		if len(s) != bands {
			return fmt.Errorf("%w: spectrum %d has %d bands, want %d", ErrRaggedSpectra, i, len(s), bands)
		}
	}

	return nil
}
