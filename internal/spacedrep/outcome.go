package spacedrep

import (
	"fmt"
	"math"
)

// Quality is a learner-reported recall rating for one review.
type Quality int

const (
	QualityBlackout   Quality = 0 // no recall at all
	QualityWrong      Quality = 1 // wrong, but the answer looked familiar
	QualityAlmost     Quality = 2 // wrong, but the answer came easily once seen
	QualityHard       Quality = 3 // correct with serious difficulty
	QualityHesitant   Quality = 4 // correct after hesitation
	QualityPerfect    Quality = 5 // instant, confident recall
	PassingQuality            = QualityHard
	maxQuality                = QualityPerfect
	minQuality                = QualityBlackout
)

// Validate returns ErrInvalidQuality if q is outside [0, 5].
func (q Quality) Validate() error {
	if q < minQuality || q > maxQuality {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidQuality, int(q), minQuality, maxQuality)
	}
	return nil
}

// Passed reports whether q counts as a successful recall.
func (q Quality) Passed() bool {
	return q >= PassingQuality
}

var qualityLabels = [...]string{"blackout", "wrong", "almost", "hard", "good", "easy"}

// Label is a short name for q, used in prompts and the study screen.
func (q Quality) Label() string {
	if q.Validate() != nil {
		return fmt.Sprintf("quality(%d)", int(q))
	}
	return qualityLabels[q]
}

// QualityFromFloat converts a decoded JSON number into a Quality, rejecting
// fractional and out-of-range values.
func QualityFromFloat(v float64) (Quality, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidQuality, v)
	}
	if v < float64(minQuality) || v > float64(maxQuality) {
		return 0, fmt.Errorf("%w: %v not in [%d, %d]", ErrInvalidQuality, v, minQuality, maxQuality)
	}
	return Quality(v), nil
}

// ValidateState checks the incoming scheduling parameters. A failure here
// means the stored state is corrupt.
func ValidateState(easeFactor float64, interval int) error {
	if math.IsNaN(easeFactor) || math.IsInf(easeFactor, 0) {
		return fmt.Errorf("%w: ease factor %v is not finite", ErrInvalidState, easeFactor)
	}
	if easeFactor < MinEaseFactor {
		return fmt.Errorf("%w: ease factor %v below floor %v", ErrInvalidState, easeFactor, MinEaseFactor)
	}
	if interval < 0 {
		return fmt.Errorf("%w: negative interval %d", ErrInvalidState, interval)
	}
	return nil
}

// ComputeNext returns the interval (days) and ease factor that follow a
// review of the given quality. The result always satisfies
// newEase >= MinEaseFactor and 1 <= newInterval <= MaxIntervalDays.
func ComputeNext(quality Quality, easeFactor float64, interval int) (newInterval int, newEase float64, err error) {
	if err := quality.Validate(); err != nil {
		return 0, 0, err
	}
	if err := ValidateState(easeFactor, interval); err != nil {
		return 0, 0, err
	}

	if !quality.Passed() {
		// Halve rather than reset, so a lapse keeps part of the progress.
		newInterval = max(1, int(float64(interval)*LapseIntervalFactor))
		newEase = max(MinEaseFactor, easeFactor-LapseEasePenalty)
	} else {
		switch interval {
		case 0:
			newInterval = FirstIntervalDays
		case 1:
			newInterval = SecondIntervalDays
		default:
			newInterval = grow(interval, easeFactor)
		}
		newEase = max(MinEaseFactor, easeFactor+easeDelta(quality))
	}

	newInterval = min(newInterval, MaxIntervalDays)
	return newInterval, newEase, nil
}

// easeDelta is the SM-2 ease adjustment for a passing quality.
func easeDelta(q Quality) float64 {
	miss := float64(maxQuality - q)
	return 0.1 - miss*(0.08+miss*0.02)
}

// grow multiplies interval by ease and floors it. The product is capped in
// floating point before conversion so very large inputs cannot overflow int.
func grow(interval int, easeFactor float64) int {
	next := math.Floor(float64(interval) * easeFactor)
	if next >= MaxIntervalDays {
		return MaxIntervalDays
	}
	return int(next)
}
