package spacedrep

// Scheduling constants for the ease-factor algorithm.
const (
	// MinEaseFactor is the floor for every ease factor the scheduler produces
	// or accepts.
	MinEaseFactor = 1.3

	// DefaultEaseFactor is assigned to items that have never been reviewed.
	DefaultEaseFactor = 2.5

	// MaxIntervalDays caps the spacing between two reviews.
	MaxIntervalDays = 365

	// FirstIntervalDays is the interval after the first successful review.
	FirstIntervalDays = 1

	// SecondIntervalDays is the interval after the second successful review.
	SecondIntervalDays = 6

	// LapseIntervalFactor scales the interval down after a failed recall.
	LapseIntervalFactor = 0.5

	// LapseEasePenalty is subtracted from the ease factor after a failed recall.
	LapseEasePenalty = 0.15

	// OverdueGraceFactor is the fraction of the current interval an item may
	// sit past its due date before it is reported as overdue rather than due.
	OverdueGraceFactor = 0.5
)
