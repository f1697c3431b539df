package study

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/router"
	"github.com/smartanki/smartanki/internal/screens/summary"
	"github.com/smartanki/smartanki/internal/spacedrep"
	"github.com/smartanki/smartanki/internal/store"
)

var t0 = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newTestScreen(t *testing.T, cards ...store.NewCard) (*StudyScreen, *store.Store) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:study_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	if len(cards) > 0 {
		_, err = s.CardRepo().CreateBulk(context.Background(), cards)
		require.NoError(t, err)
	}

	svc := review.NewService(review.Deps{
		Cards:   s.CardRepo(),
		Reviews: s.ReviewRepo(),
		Events:  s.EventRepo(),
		Clock:   spacedrep.NewFixedClock(t0),
	}, review.DefaultConfig())
	return New(svc, review.DueRequest{}), s
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

// run executes cmd and feeds its message back into the screen, the way
// the Bubble Tea runtime would.
func run(t *testing.T, s *StudyScreen, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	s.Update(msg)
	return msg
}

func load(t *testing.T, s *StudyScreen) {
	t.Helper()
	s.Update(s.loadDue()())
	require.True(t, s.loaded)
}

func TestStudyFlow(t *testing.T) {
	s, st := newTestScreen(t,
		store.NewCard{Front: "2+2", Back: "4", Type: store.CardTypeReverse},
		store.NewCard{Front: "capital of Peru", Back: "Lima", Type: store.CardTypeReverse},
	)
	load(t, s)
	require.Len(t, s.queue, 2)
	assert.Contains(t, s.View(80, 30), "2+2")

	// Grades are ignored until the answer is revealed.
	_, cmd := s.Update(key('5'))
	assert.Nil(t, cmd)

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	require.True(t, s.revealed)
	require.Len(t, s.projections, 6)
	view := s.View(80, 30)
	assert.Contains(t, view, "4")
	assert.Contains(t, view, "easy")

	_, cmd = s.Update(key('5'))
	run(t, s, cmd)
	assert.Equal(t, 1, s.pos)
	assert.False(t, s.revealed)
	require.NotNil(t, s.last)
	assert.Equal(t, 1, s.last.Next.Interval)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd = s.Update(key('1'))
	msg := cmd()
	_, finish := s.Update(msg)

	// The last grade hands over to the summary.
	require.NotNil(t, finish)
	replace, ok := finish().(router.ReplaceScreenMsg)
	require.True(t, ok)
	_, ok = replace.Screen.(*summary.SummaryScreen)
	assert.True(t, ok)

	c, err := st.CardRepo().List(context.Background(), store.CardFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, c[0].ReviewCount)
	assert.Equal(t, 1, c[1].LapseCount)
	assert.Len(t, s.session.Results, 2)
}

func TestStudyTypedAnswer(t *testing.T) {
	s, _ := newTestScreen(t, store.NewCard{Front: "capital of Chile", Back: "Santiago"})
	load(t, s)
	require.True(t, s.typed())

	for _, r := range "Santiago" {
		s.Update(key(r))
	}
	// Digits and spaces go to the input before reveal.
	assert.False(t, s.revealed)
	assert.Equal(t, "Santiago", s.input.Value())

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.True(t, s.revealed)
	assert.Contains(t, s.View(80, 30), "you typed: Santiago")
}

func TestStudyNothingDue(t *testing.T) {
	s, _ := newTestScreen(t)
	load(t, s)
	assert.Contains(t, s.View(80, 30), "Nothing due")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok, "leaving without reviews skips the summary")
}

func TestStudyGradeErrorKeepsCard(t *testing.T) {
	s, st := newTestScreen(t, store.NewCard{Front: "q", Back: "a", Type: store.CardTypeReverse})
	load(t, s)
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})

	// The card disappears between reveal and grade.
	require.NoError(t, st.CardRepo().Delete(context.Background(), s.current().Card.ID))

	_, cmd := s.Update(key('4'))
	run(t, s, cmd)
	assert.Equal(t, 0, s.pos)
	assert.True(t, s.revealed)
	assert.NotEmpty(t, s.errMsg)
	assert.False(t, s.submitting)
}

func TestStudyEscAfterReviewShowsSummary(t *testing.T) {
	s, _ := newTestScreen(t,
		store.NewCard{Front: "a", Back: "1", Type: store.CardTypeReverse},
		store.NewCard{Front: "b", Back: "2", Type: store.CardTypeReverse},
	)
	load(t, s)
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	_, cmd := s.Update(key('3'))
	run(t, s, cmd)

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.ReplaceScreenMsg)
	assert.True(t, ok)
}

func TestStudyKeyHints(t *testing.T) {
	s, _ := newTestScreen(t, store.NewCard{Front: "a", Back: "1", Type: store.CardTypeReverse})
	load(t, s)
	assert.Equal(t, "Reveal", s.KeyHints()[0].Description)
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	assert.Equal(t, "0-2", s.KeyHints()[0].Key)
}
