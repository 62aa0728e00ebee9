package optim

import "errors"

var (
	// ErrInvalidConfig is returned for an optimization request the
	// driver cannot set up: negative polynomial order, inverted bounds,
	// a missing target, or an unknown objective.
	ErrInvalidConfig = errors.New("optim: invalid optimization configuration")

	// ErrInfeasibleTarget is returned when the requested target cannot
	// be met anywhere inside the coefficient bounds.
	ErrInfeasibleTarget = errors.New("optim: target unreachable within coefficient bounds")

	// ErrUnknownMethod is returned for a solver name with no registered
	// backend.
	ErrUnknownMethod = errors.New("optim: unknown solver method")
)
