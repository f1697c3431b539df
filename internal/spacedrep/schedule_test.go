package spacedrep

import "testing"

func TestConstants(t *testing.T) {
	if MinEaseFactor != 1.3 {
		t.Errorf("MinEaseFactor = %v, want 1.3", MinEaseFactor)
	}
	if DefaultEaseFactor != 2.5 {
		t.Errorf("DefaultEaseFactor = %v, want 2.5", DefaultEaseFactor)
	}
	if MaxIntervalDays != 365 {
		t.Errorf("MaxIntervalDays = %d, want 365", MaxIntervalDays)
	}
	if FirstIntervalDays != 1 || SecondIntervalDays != 6 {
		t.Errorf("first/second intervals = %d/%d, want 1/6", FirstIntervalDays, SecondIntervalDays)
	}
}

func TestNewState(t *testing.T) {
	s := NewState()
	if s.EaseFactor != DefaultEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", s.EaseFactor, DefaultEaseFactor)
	}
	if s.Interval != 0 {
		t.Errorf("Interval = %d, want 0", s.Interval)
	}
	if s.NextReview != nil {
		t.Errorf("NextReview = %v, want nil", s.NextReview)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
