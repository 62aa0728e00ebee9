package loading

import "errors"

var (
	// ErrUnknownPreset is returned for a preset name with no tabulated
	// coefficients.
	ErrUnknownPreset = errors.New("loading: unknown preset")

	// ErrOrder is returned for a polynomial order the package cannot
	// represent.
	ErrOrder = errors.New("loading: invalid polynomial order")

	// ErrShapeFit is returned when a least-squares shape fit cannot be
	// computed.
	ErrShapeFit = errors.New("loading: shape fit failed")
)
