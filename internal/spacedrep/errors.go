package spacedrep

import "errors"

// Sentinel errors for the spacedrep package.
// Use errors.Is to check: errors.Is(err, spacedrep.ErrInvalidQuality)
var (
	// ErrInvalidQuality is returned for ratings outside [0, 5] or with a
	// fractional part. It is a client input error.
	ErrInvalidQuality = errors.New("spacedrep: invalid quality")

	// ErrInvalidState is returned when incoming scheduling state breaks its
	// invariants (ease factor below the floor or not finite, negative
	// interval). It signals corrupt persisted data and is never clamped.
	ErrInvalidState = errors.New("spacedrep: invalid scheduling state")

	// ErrInvalidLimit is returned for a negative due-set limit.
	ErrInvalidLimit = errors.New("spacedrep: invalid limit")
)
