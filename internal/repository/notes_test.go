package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/rest-notes/internal/entity"
)

var columns = []string{"id", "title", "content", "created_at", "updated_at"}

func newMock(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return New(mock), mock
}

func TestRepo_CreateNote(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery("INSERT INTO notes").
			WithArgs("Groceries", "milk").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), "Groceries", "milk", now, now))

		note, err := repo.CreateNote(ctx, "Groceries", "milk")
		require.NoError(t, err)
		assert.Equal(t, int64(1), note.ID)
		assert.Equal(t, "Groceries", note.Title)
		assert.Equal(t, now, note.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CheckViolation", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery("INSERT INTO notes").
			WithArgs("ab", "milk").
			WillReturnError(&pgconn.PgError{
				Code:           pgerrcode.CheckViolation,
				ConstraintName: "notes_title_check",
			})

		_, err := repo.CreateNote(ctx, "ab", "milk")

		var verr *entity.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.HasField("title"))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_GetNote(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery("SELECT id, title, content, created_at, updated_at FROM notes WHERE id").
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(5), "Title", "Body", now, now))

		note, err := repo.GetNote(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Body", note.Content)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery("SELECT id, title, content, created_at, updated_at FROM notes WHERE id").
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetNote(ctx, 404)
		assert.ErrorIs(t, err, entity.ErrNoteNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_ListNotes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("InsertionOrder", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery("ORDER BY id ASC").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(1), "First", "a", now, now).
				AddRow(int64(2), "Second", "b", now, now))

		notes, err := repo.ListNotes(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "First", notes[0].Title)
		assert.Equal(t, "Second", notes[1].Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery("ORDER BY id ASC").WillReturnRows(pgxmock.NewRows(columns))

		notes, err := repo.ListNotes(ctx)
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_UpdateNote(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery("UPDATE notes").
			WithArgs(int64(3), "New", "Body").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(3), "New", "Body", created, updated))

		note, err := repo.UpdateNote(ctx, 3, "New", "Body")
		require.NoError(t, err)
		assert.Equal(t, "New", note.Title)
		assert.Equal(t, updated, note.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery("UPDATE notes").
			WithArgs(int64(9), "New", "Body").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.UpdateNote(ctx, 9, "New", "Body")
		assert.ErrorIs(t, err, entity.ErrNoteNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_DeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec("DELETE FROM notes").
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.DeleteNote(ctx, 1))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec("DELETE FROM notes").
			WithArgs(int64(2)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteNote(ctx, 2), entity.ErrNoteNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
