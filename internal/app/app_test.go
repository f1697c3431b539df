package app

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
	"github.com/smartanki/smartanki/internal/screens/home"
	"github.com/smartanki/smartanki/internal/screens/study"
	"github.com/smartanki/smartanki/internal/spacedrep"
	"github.com/smartanki/smartanki/internal/store"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:app_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.CardRepo().CreateBulk(context.Background(), []store.NewCard{{Front: "a"}, {Front: "b"}, {Front: "c"}})
	require.NoError(t, err)

	svc := review.NewService(review.Deps{
		Cards:   s.CardRepo(),
		Reviews: s.ReviewRepo(),
		Events:  s.EventRepo(),
		Clock:   spacedrep.NewFixedClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)),
	}, review.DefaultConfig())
	return Options{Review: svc, Events: s.EventRepo()}
}

func TestModelStartsOnHome(t *testing.T) {
	m := NewModel(testOptions(t))
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
	assert.Equal(t, 1, m.router.Depth())
}

func TestModelStudyNow(t *testing.T) {
	opts := testOptions(t)
	opts.StudyNow = true
	m := NewModel(opts)
	_, ok := m.router.Active().(*study.StudyScreen)
	assert.True(t, ok)
	assert.Equal(t, 2, m.router.Depth())
}

func TestModelHeaderShowsDueCount(t *testing.T) {
	opts := testOptions(t)
	opts.StudyNow = true
	var model tea.Model = NewModel(opts)

	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	// Stats reach the home screen even though study is on top.
	model, _ = model.Update(home.StatsMsg{Stats: &store.ReviewStats{DueCards: 3}})

	out := model.(Model).render()
	assert.Contains(t, out, "3 due")
	assert.Contains(t, out, "Study")
}

func TestModelTooSmall(t *testing.T) {
	var model tea.Model = NewModel(testOptions(t))
	model, _ = model.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, model.(Model).render(), "Terminal too small")
}

func TestModelCtrlCQuits(t *testing.T) {
	m := NewModel(testOptions(t))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
