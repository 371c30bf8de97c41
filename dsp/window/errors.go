package window

import "errors"

var (
	// ErrUnknown is returned when a window name or Type is not registered.
	ErrUnknown = errors.New("window: unknown window")

	ErrInvalidLength = errors.New("window: length must be > 0")
	ErrInvalidAlpha  = errors.New("window: shape parameter out of range")
)
