package metrics

import "errors"

var (
	// ErrZeroRotation is returned when coefficients are requested for a
	// rotor that is not spinning.
	ErrZeroRotation = errors.New("metrics: coefficients undefined for zero rotational speed")

	// ErrZeroPower is returned when efficiency is requested with zero
	// shaft power but nonzero thrust.
	ErrZeroPower = errors.New("metrics: efficiency undefined for zero power with nonzero thrust")

	// ErrRPMRange is returned for a sweep range that cannot produce at
	// least one operating point.
	ErrRPMRange = errors.New("metrics: invalid rpm range")
)
