package disk

import "errors"

// Configuration errors for model construction.
var (
	// ErrStations indicates a radial grid too short to integrate over.
	ErrStations = errors.New("disk: station count must be at least 2")

	// ErrTipLoss indicates a tip-loss factor outside (0, 1].
	ErrTipLoss = errors.New("disk: tip loss factor must be in (0, 1]")

	// ErrSwirl indicates a negative swirl constant.
	ErrSwirl = errors.New("disk: swirl constant must be non-negative")
)
