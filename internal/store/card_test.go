package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartanki/smartanki/internal/spacedrep"
)

func TestCardCreateGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	c, err := repo.Create(ctx, NewCard{
		Front:    "capital of France",
		Back:     "Paris",
		Metadata: map[string]any{"source": "atlas"},
	})
	require.NoError(t, err)
	assert.Equal(t, CardTypeTypeIn, c.Type)
	assert.Equal(t, spacedrep.DefaultEaseFactor, c.State.EaseFactor)
	assert.Equal(t, 0, c.State.Interval)
	assert.Nil(t, c.State.NextReview)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.Back)
	assert.Equal(t, "atlas", got.Metadata["source"])
}

func TestCardCreateValidation(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, NewCard{Front: ""})
	assert.Error(t, err)

	_, err = repo.Create(ctx, NewCard{Front: "q", Type: "essay"})
	assert.Error(t, err)
}

func TestCardGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.CardRepo().Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	c, err := repo.Create(ctx, NewCard{Front: "q"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), ErrNotFound)
}

func TestCardListFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cat, err := s.CategoryRepo().Create(ctx, NewCategory{Name: "geo"})
	require.NoError(t, err)

	repo := s.CardRepo()
	_, err = repo.CreateBulk(ctx, []NewCard{
		{Front: "a", CategoryID: &cat.ID},
		{Front: "b"},
		{Front: "c", CategoryID: &cat.ID, Type: CardTypeCloze},
	})
	require.NoError(t, err)

	all, err := repo.List(ctx, CardFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	inCat, err := repo.List(ctx, CardFilter{CategoryID: &cat.ID})
	require.NoError(t, err)
	require.Len(t, inCat, 2)
	assert.Equal(t, "a", inCat[0].Front)
	assert.Equal(t, CardTypeCloze, inCat[1].Type)

	page, err := repo.List(ctx, CardFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].Front)
}

// schedule forces a card's next review date.
func schedule(t *testing.T, s *Store, id int, at time.Time) {
	t.Helper()
	_, err := s.Client().Card.UpdateOneID(id).
		SetNextReview(at.UTC()).
		SetInterval(1).
		Save(context.Background())
	require.NoError(t, err)
}

func TestDueCandidates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	cats := s.CategoryRepo()
	on, err := cats.Create(ctx, NewCategory{Name: "on"})
	require.NoError(t, err)
	off, err := cats.Create(ctx, NewCategory{Name: "off"})
	require.NoError(t, err)
	_, err = cats.SetEnabled(ctx, off.ID, false)
	require.NoError(t, err)

	repo := s.CardRepo()
	created, err := repo.CreateBulk(ctx, []NewCard{
		{Front: "new uncategorised"},
		{Front: "past due", CategoryID: &on.ID},
		{Front: "exactly now", CategoryID: &on.ID},
		{Front: "future", CategoryID: &on.ID},
		{Front: "disabled", CategoryID: &off.ID},
	})
	require.NoError(t, err)
	schedule(t, s, created[1].ID, now.AddDate(0, 0, -2))
	schedule(t, s, created[2].ID, now)
	schedule(t, s, created[3].ID, now.Add(time.Second))

	due, err := repo.DueCandidates(ctx, now, nil)
	require.NoError(t, err)
	var fronts []string
	for _, c := range due {
		fronts = append(fronts, c.Front)
	}
	assert.Equal(t, []string{"new uncategorised", "past due", "exactly now"}, fronts)

	due, err = repo.DueCandidates(ctx, now, &on.ID)
	require.NoError(t, err)
	assert.Len(t, due, 2)

	due, err = repo.DueCandidates(ctx, now, &off.ID)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestCategoryRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.CategoryRepo()
	ctx := context.Background()

	parent, err := repo.Create(ctx, NewCategory{Name: "science", Description: "all of it"})
	require.NoError(t, err)
	assert.True(t, parent.IsEnabled)

	child, err := repo.Create(ctx, NewCategory{Name: "biology", ParentID: &parent.ID})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)

	_, err = s.CardRepo().Create(ctx, NewCard{Front: "cell", CategoryID: &child.ID})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "biology", list[0].Name)
	assert.Equal(t, 1, list[0].CardCount)
	assert.Equal(t, 0, list[1].CardCount)

	found, err := repo.FindByName(ctx, "science")
	require.NoError(t, err)
	assert.Equal(t, parent.ID, found.ID)

	_, err = repo.FindByName(ctx, "history")
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := repo.SetEnabled(ctx, child.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsEnabled)

	_, err = repo.SetEnabled(ctx, 999, true)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Create(ctx, NewCategory{})
	assert.Error(t, err)
}
