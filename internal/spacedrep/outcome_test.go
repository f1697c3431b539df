package spacedrep

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNext_Examples(t *testing.T) {
	tests := []struct {
		name         string
		quality      Quality
		ease         float64
		interval     int
		wantInterval int
		wantEase     float64
	}{
		{"failure halves interval", 2, 2.5, 10, 5, 2.35},
		{"failure floors ease and interval", 0, 1.3, 2, 1, 1.3},
		{"failure never drops to zero", 1, 2.0, 1, 1, 1.85},
		{"failure from new card", 0, 2.5, 0, 1, 2.35},
		{"failure odd interval floors", 2, 2.5, 7, 3, 2.35},
		{"first success", 4, 2.5, 0, 1, 2.5},
		{"second success", 5, 2.6, 1, 6, 2.7},
		{"geometric growth", 4, 2.5, 6, 15, 2.5},
		{"growth floors product", 5, 2.5, 7, 17, 2.6},
		{"quality 3 lowers ease", 3, 2.5, 6, 15, 2.36},
		{"quality 3 clamps ease at floor", 3, 1.3, 10, 13, 1.3},
		{"interval capped", 5, 2.5, 300, 365, 2.6},
		{"oversized interval capped", 4, 2.5, 1000, 365, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotInterval, gotEase, err := ComputeNext(tt.quality, tt.ease, tt.interval)
			require.NoError(t, err)
			assert.Equal(t, tt.wantInterval, gotInterval)
			assert.InDelta(t, tt.wantEase, gotEase, 1e-9)
		})
	}
}

func TestComputeNext_Bounds(t *testing.T) {
	eases := []float64{1.3, 1.31, 1.5, 2.0, 2.5, 3.7, 10, 1e6}
	intervals := []int{0, 1, 2, 3, 6, 30, 200, 364, 365, 1000, math.MaxInt32, math.MaxInt}

	for q := QualityBlackout; q <= QualityPerfect; q++ {
		for _, ease := range eases {
			for _, interval := range intervals {
				gotInterval, gotEase, err := ComputeNext(q, ease, interval)
				if err != nil {
					t.Fatalf("ComputeNext(%d, %v, %d): %v", q, ease, interval, err)
				}
				if gotEase < MinEaseFactor {
					t.Errorf("ComputeNext(%d, %v, %d) ease = %v, below floor", q, ease, interval, gotEase)
				}
				if gotInterval < 1 || gotInterval > MaxIntervalDays {
					t.Errorf("ComputeNext(%d, %v, %d) interval = %d, out of [1, %d]",
						q, ease, interval, gotInterval, MaxIntervalDays)
				}
			}
		}
	}
}

func TestComputeNext_Deterministic(t *testing.T) {
	i1, e1, err1 := ComputeNext(4, 2.17, 23)
	i2, e2, err2 := ComputeNext(4, 2.17, 23)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, i1, i2)
	assert.Equal(t, e1, e2)
}

func TestComputeNext_HigherQualityMoreEase(t *testing.T) {
	var prev float64
	for q := PassingQuality; q <= QualityPerfect; q++ {
		_, ease, err := ComputeNext(q, 2.5, 6)
		require.NoError(t, err)
		if q > PassingQuality {
			assert.Greater(t, ease, prev, "quality %d", q)
		}
		prev = ease
	}
}

func TestComputeNext_InvalidQuality(t *testing.T) {
	for _, q := range []Quality{-1, 6, 100} {
		_, _, err := ComputeNext(q, 2.5, 1)
		if !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("ComputeNext(%d) err = %v, want ErrInvalidQuality", q, err)
		}
	}
}

func TestComputeNext_InvalidState(t *testing.T) {
	tests := []struct {
		name     string
		ease     float64
		interval int
	}{
		{"ease below floor", 1.0, 3},
		{"ease just below floor", 1.29, 3},
		{"nan ease", math.NaN(), 3},
		{"infinite ease", math.Inf(1), 3},
		{"negative interval", 2.5, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ComputeNext(4, tt.ease, tt.interval)
			assert.ErrorIs(t, err, ErrInvalidState)
		})
	}
}

func TestComputeNext_QualityCheckedFirst(t *testing.T) {
	_, _, err := ComputeNext(9, 0.5, -3)
	assert.ErrorIs(t, err, ErrInvalidQuality)
}

func TestQualityFromFloat(t *testing.T) {
	tests := []struct {
		in      float64
		want    Quality
		wantErr bool
	}{
		{0, 0, false},
		{3, 3, false},
		{5, 5, false},
		{-1, 0, true},
		{6, 0, true},
		{2.5, 0, true},
		{math.NaN(), 0, true},
		{math.Inf(-1), 0, true},
	}
	for _, tt := range tests {
		got, err := QualityFromFloat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidQuality, "input %v", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestQuality_Passed(t *testing.T) {
	for q := QualityBlackout; q <= QualityPerfect; q++ {
		want := q >= 3
		if q.Passed() != want {
			t.Errorf("Quality(%d).Passed() = %v, want %v", q, q.Passed(), want)
		}
	}
}

func TestQualityLabel(t *testing.T) {
	assert.Equal(t, "blackout", QualityBlackout.Label())
	assert.Equal(t, "hard", QualityHard.Label())
	assert.Equal(t, "easy", QualityPerfect.Label())
	assert.Equal(t, "quality(9)", Quality(9).Label())
}
