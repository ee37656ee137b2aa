package banddepth

import "errors"

var (
	// ErrEmptyGrid reports a wavelength grid with no bands.
	ErrEmptyGrid = errors.New("banddepth: empty wavelength grid")

	// ErrDuplicateWavelength reports a grid value appearing more than once.
	ErrDuplicateWavelength = errors.New("banddepth: duplicate wavelength in grid")

	// ErrWavelengthNotFound reports a requested wavelength with no
	// exact-match band in the grid.
	ErrWavelengthNotFound = errors.New("banddepth: wavelength not in grid")

	// ErrWindowOutOfRange reports a kernel window extending past either
	// end of the grid.
	ErrWindowOutOfRange = errors.New("banddepth: kernel window out of grid range")

	// ErrBandCountMismatch reports spectra whose band count differs from
	// the grid length.
	ErrBandCountMismatch = errors.New("banddepth: spectra band count does not match grid")
)
