package rotor

import "errors"

// Configuration errors for geometry and flow validation.
var (
	// ErrDiameter indicates a non-positive or non-finite diameter.
	ErrDiameter = errors.New("rotor: diameter must be positive")

	// ErrBlades indicates a blade count below the physical minimum.
	ErrBlades = errors.New("rotor: blade count must be at least 2")

	// ErrHubRatio indicates a hub-to-tip ratio outside (0, 1).
	ErrHubRatio = errors.New("rotor: hub radius ratio must be in (0, 1)")

	// ErrVelocity indicates a negative or non-finite free-stream velocity.
	ErrVelocity = errors.New("rotor: free-stream velocity must be non-negative")

	// ErrRPM indicates a non-positive rotational speed.
	ErrRPM = errors.New("rotor: rpm must be positive")

	// ErrDensity indicates a non-positive fluid density.
	ErrDensity = errors.New("rotor: density must be positive")
)
