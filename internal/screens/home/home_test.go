package home

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
	"github.com/smartanki/smartanki/internal/screens/study"
	"github.com/smartanki/smartanki/internal/spacedrep"
	"github.com/smartanki/smartanki/internal/store"
)

func newHome(t *testing.T) (*HomeScreen, *store.Store) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:home_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	svc := review.NewService(review.Deps{
		Cards:   s.CardRepo(),
		Reviews: s.ReviewRepo(),
		Events:  s.EventRepo(),
		Clock:   spacedrep.NewFixedClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)),
	}, review.DefaultConfig())
	return New(svc, s.EventRepo(), review.DueRequest{}), s
}

func TestHomeShowsStats(t *testing.T) {
	h, s := newHome(t)
	_, err := s.CardRepo().CreateBulk(context.Background(), []store.NewCard{{Front: "a"}, {Front: "b"}})
	require.NoError(t, err)

	assert.Contains(t, h.View(80, 24), "Loading")
	_, ok := h.DueCount()
	assert.False(t, ok)

	h.Update(h.Init()())
	due, ok := h.DueCount()
	require.True(t, ok)
	assert.Equal(t, 2, due)
	assert.Contains(t, h.View(80, 24), "2 due")
}

func TestHomeStudyPushesStudyScreen(t *testing.T) {
	h, _ := newHome(t)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*study.StudyScreen)
	assert.True(t, ok)
}

func TestHomeResumeReloads(t *testing.T) {
	h, s := newHome(t)
	h.Update(h.Init()())
	due, _ := h.DueCount()
	assert.Equal(t, 0, due)

	_, err := s.CardRepo().Create(context.Background(), store.NewCard{Front: "c"})
	require.NoError(t, err)
	h.Update(h.Resume()())
	due, _ = h.DueCount()
	assert.Equal(t, 1, due)
}
