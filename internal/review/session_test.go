package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartanki/smartanki/internal/spacedrep"
)

func TestSessionSummarize(t *testing.T) {
	s := NewSession(t0)
	assert.NotEmpty(t, s.ID)

	empty := s.Summarize(t0)
	assert.Equal(t, 0, empty.Reviewed)
	assert.Zero(t, empty.Accuracy())
	assert.Nil(t, empty.NextDue)

	in1 := t0.AddDate(0, 0, 1)
	in6 := t0.AddDate(0, 0, 6)
	s.Record(Result{Quality: spacedrep.QualityPerfect, Next: spacedrep.State{NextReview: &in6}})
	s.Record(Result{Quality: spacedrep.QualityWrong, Next: spacedrep.State{NextReview: &in1}})
	s.Record(Result{Quality: spacedrep.QualityHard, Next: spacedrep.State{NextReview: &in6}})

	sum := s.Summarize(t0.Add(5 * time.Minute))
	assert.Equal(t, 3, sum.Reviewed)
	assert.Equal(t, 2, sum.Passed)
	assert.Equal(t, 1, sum.Lapsed)
	assert.InDelta(t, 3.0, sum.AvgQuality, 1e-9)
	assert.InDelta(t, 2.0/3.0, sum.Accuracy(), 1e-9)
	assert.Equal(t, 5*time.Minute, sum.Duration)
	require.NotNil(t, sum.NextDue)
	assert.True(t, sum.NextDue.Equal(in1))
}

func TestNewSessionIDUnique(t *testing.T) {
	assert.NotEqual(t, NewSessionID(), NewSessionID())
}
