package validate

import "errors"

var (
	// ErrMissingColumn is returned when a dataset lacks a required
	// column.
	ErrMissingColumn = errors.New("validate: missing required column")

	// ErrBadData is returned for a dataset file that cannot be parsed.
	ErrBadData = errors.New("validate: bad dataset")

	// ErrLengthMismatch is returned when predicted and measured
	// sequences disagree in length.
	ErrLengthMismatch = errors.New("validate: sequence length mismatch")
)
