package notes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/rest-notes/internal/entity"
	"github.com/evgeniy-krivenko/rest-notes/internal/repository/memory"
)

func newUsecase(t *testing.T, opts ...memory.Option) *Usecase {
	t.Helper()

	repo := memory.New(opts...)
	uc, err := New(NewOptions(repo, repo))
	require.NoError(t, err)

	return uc
}

func ptr[T any](v T) *T { return &v }

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(NewOptions(nil, nil))
	require.Error(t, err)
}

func TestUsecase_CreateNote(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	t.Run("Success", func(t *testing.T) {
		note, err := uc.CreateNote(ctx, "New Test Note", "This is a test note content")
		require.NoError(t, err)

		got, err := uc.GetNote(ctx, note.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Test Note", got.Title)
	})

	t.Run("InvalidNotStored", func(t *testing.T) {
		_, err := uc.CreateNote(ctx, "", "Content")

		var verr *entity.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.HasField("title"))

		notes, err := uc.ListNotes(ctx)
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})
}

func TestUsecase_UpdateNote(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	uc := newUsecase(t, memory.WithClock(func() time.Time { return now }))

	note, err := uc.CreateNote(ctx, "Original Title", "Original Content")
	require.NoError(t, err)

	t.Run("TitleOnlyKeepsContent", func(t *testing.T) {
		now = now.Add(time.Second)

		updated, err := uc.UpdateNote(ctx, note.ID, entity.NotePatch{Title: ptr("Updated Title")})
		require.NoError(t, err)
		assert.Equal(t, "Updated Title", updated.Title)
		assert.Equal(t, "Original Content", updated.Content)
		assert.Equal(t, note.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(note.UpdatedAt))
	})

	t.Run("EmptyPatchRefreshesUpdatedAt", func(t *testing.T) {
		before, err := uc.GetNote(ctx, note.ID)
		require.NoError(t, err)
		now = now.Add(time.Second)

		updated, err := uc.UpdateNote(ctx, note.ID, entity.NotePatch{})
		require.NoError(t, err)
		assert.Equal(t, before.Title, updated.Title)
		assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
	})

	t.Run("InvalidMergeLeavesNoteUntouched", func(t *testing.T) {
		before, err := uc.GetNote(ctx, note.ID)
		require.NoError(t, err)

		_, err = uc.UpdateNote(ctx, note.ID, entity.NotePatch{Content: ptr("   ")})

		var verr *entity.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.HasField("content"))

		after, err := uc.GetNote(ctx, note.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := uc.UpdateNote(ctx, 999, entity.NotePatch{Title: ptr("Whatever")})
		assert.ErrorIs(t, err, entity.ErrNoteNotFound)
	})
}

func TestUsecase_DeleteNote(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	note, err := uc.CreateNote(ctx, "Note to Delete", "This note will be deleted")
	require.NoError(t, err)

	require.NoError(t, uc.DeleteNote(ctx, note.ID))

	_, err = uc.GetNote(ctx, note.ID)
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)
	assert.ErrorIs(t, uc.DeleteNote(ctx, note.ID), entity.ErrNoteNotFound)
}

func TestUsecase_ListNotes(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	_, err := uc.CreateNote(ctx, "Test Note 1", "Content 1")
	require.NoError(t, err)
	_, err = uc.CreateNote(ctx, "Test Note 2", "Content 2")
	require.NoError(t, err)

	notes, err := uc.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Test Note 1", notes[0].Title)
	assert.Equal(t, "Test Note 2", notes[1].Title)
}
