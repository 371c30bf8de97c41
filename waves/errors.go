package waves

import "errors"

var (
	// ErrModeNotAvailable is returned when a requested (l, m) is absent.
	ErrModeNotAvailable = errors.New("waves: mode not available")
	// ErrCutoffTooLarge is returned when the series is shorter than two cutoff periods.
	ErrCutoffTooLarge = errors.New("waves: cutoff period too large for series length")
	// ErrUnknownWindow is returned for window names missing from the registry.
	ErrUnknownWindow = errors.New("waves: unknown window")
	// ErrUnsupported is returned for quantities the field does not define.
	ErrUnsupported = errors.New("waves: not supported for this field")
	// ErrInvalidCutoff is returned for a non-positive cutoff period.
	ErrInvalidCutoff = errors.New("waves: cutoff period must be positive")
	// ErrInvalidOrder is returned for an integration order below one.
	ErrInvalidOrder = errors.New("waves: integration order must be at least 1")
	// ErrInvalidMode is returned for modes outside the field's multipole range.
	ErrInvalidMode = errors.New("waves: invalid mode")
	// ErrDuplicateMode is returned when a radius carries the same mode twice.
	ErrDuplicateMode = errors.New("waves: duplicate mode")
	// ErrNoModes is returned when a detector or a sum has no modes to work on.
	ErrNoModes = errors.New("waves: no modes")
	// ErrInvalidRadius is returned for non-positive or non-finite radii.
	ErrInvalidRadius = errors.New("waves: invalid radius")
	// ErrRadiiMismatch is returned when radii and waveforms differ in count.
	ErrRadiiMismatch = errors.New("waves: number of radii and waveforms differ")
	// ErrOrderTooHigh is returned when the fit order is not below the radius count.
	ErrOrderTooHigh = errors.New("waves: extrapolation order too high for number of radii")
	// ErrDuplicateRadius is returned when extrapolation radii repeat.
	ErrDuplicateRadius = errors.New("waves: duplicate radius")
	// ErrNoRetardedTimes is returned for an empty retarded-time grid.
	ErrNoRetardedTimes = errors.New("waves: no retarded times")
	// ErrNoData is returned when a collection has no detector at a radius.
	ErrNoData = errors.New("waves: no data at this radius")
	// ErrInvalidSource is returned for a nil or failing multipole source.
	ErrInvalidSource = errors.New("waves: invalid multipole source")
)
