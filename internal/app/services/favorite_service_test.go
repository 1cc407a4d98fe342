package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

func newFavoriteService(store *memStore) FavoriteService {
	return NewFavoriteService(store.Favorites(), store.Questions(), zerolog.Nop())
}

func TestFavoriteService_AddRemoveStatus(t *testing.T) {
	store := newMemStore()
	svc := newFavoriteService(store)
	ctx := context.Background()

	asker := seedUser(store, "sara_5a", models.RoleUser)
	reader := seedUser(store, "omar_6b", models.RoleUser)
	question := seedQuestion(t, store, asker.ID)

	t.Run("first add changes state", func(t *testing.T) {
		added, err := svc.Add(ctx, reader.ID, question.ID)
		require.NoError(t, err)
		assert.True(t, added)

		favorited, err := svc.Status(ctx, reader.ID, question.ID)
		require.NoError(t, err)
		assert.True(t, favorited)
	})

	t.Run("duplicate add reports false, not an error", func(t *testing.T) {
		added, err := svc.Add(ctx, reader.ID, question.ID)
		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("remove changes state once", func(t *testing.T) {
		removed, err := svc.Remove(ctx, reader.ID, question.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = svc.Remove(ctx, reader.ID, question.ID)
		require.NoError(t, err)
		assert.False(t, removed)

		favorited, err := svc.Status(ctx, reader.ID, question.ID)
		require.NoError(t, err)
		assert.False(t, favorited)
	})

	t.Run("adding a missing question fails", func(t *testing.T) {
		_, err := svc.Add(ctx, reader.ID, 999)
		assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
	})
}

func TestFavoriteService_ListQuestions(t *testing.T) {
	store := newMemStore()
	svc := newFavoriteService(store)
	ctx := context.Background()

	asker := seedUser(store, "sara_5a", models.RoleUser)
	reader := seedUser(store, "omar_6b", models.RoleUser)
	other := seedUser(store, "hala_4c", models.RoleUser)

	first := seedQuestion(t, store, asker.ID)
	second := seedQuestion(t, store, asker.ID)
	third := seedQuestion(t, store, asker.ID)

	for _, id := range []int64{first.ID, second.ID} {
		_, err := svc.Add(ctx, reader.ID, id)
		require.NoError(t, err)
	}
	_, err := svc.Add(ctx, other.ID, third.ID)
	require.NoError(t, err)

	questions, err := svc.ListQuestions(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	// Most recently favorited first, other users' favorites excluded
	assert.Equal(t, second.ID, questions[0].ID)
	assert.Equal(t, first.ID, questions[1].ID)

	empty, err := svc.ListQuestions(ctx, asker.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
