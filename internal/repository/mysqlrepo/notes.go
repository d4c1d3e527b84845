// Package mysqlrepo stores notes in MySQL through database/sql.
package mysqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-sql-driver/mysql"

	"github.com/evgeniy-krivenko/rest-notes/internal/entity"
	conv "github.com/evgeniy-krivenko/rest-notes/internal/repository/converter"
	"github.com/evgeniy-krivenko/rest-notes/pkg/database"
	"github.com/evgeniy-krivenko/rest-notes/pkg/logger/slogx"
)

// ER_CHECK_CONSTRAINT_VIOLATED
const errCheckConstraintViolated = 3819

var constraintNameRe = regexp.MustCompile("[Cc]heck constraint '([^']+)'")

const noteColumns = "id, title, content, created_at, updated_at"

const (
	createNoteQuery = `INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, NOW(6), NOW(6))`

	getNoteQuery = `SELECT ` + noteColumns + ` FROM notes WHERE id = ?`

	listNotesQuery = `SELECT ` + noteColumns + ` FROM notes ORDER BY id ASC`

	updateNoteQuery = `UPDATE notes SET title = ?, content = ?, updated_at = GREATEST(NOW(6), created_at) WHERE id = ?`

	deleteNoteQuery = `DELETE FROM notes WHERE id = ?`
)

type Repo struct {
	db database.SQLTx
}

func New(db database.SQLTx) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateNote(ctx context.Context, title, content string) (entity.Note, error) {
	result, err := r.db.ExecContext(ctx, createNoteQuery, title, content)
	if err != nil {
		return entity.Note{}, fmt.Errorf("create note: %w", mapError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return entity.Note{}, fmt.Errorf("get last insert id: %w", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.NoteID(id))

	return r.GetNote(ctx, id)
}

func (r *Repo) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	var row conv.NoteRow
	err := r.db.QueryRowContext(ctx, getNoteQuery, id).Scan(row.ScanDest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Note{}, entity.ErrNoteNotFound
	}
	if err != nil {
		return entity.Note{}, fmt.Errorf("get note: %w", err)
	}

	return conv.ConvertNoteToEntity(row), nil
}

func (r *Repo) ListNotes(ctx context.Context) ([]entity.Note, error) {
	rows, err := r.db.QueryContext(ctx, listNotesQuery)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var result []conv.NoteRow
	for rows.Next() {
		var row conv.NoteRow
		if err := rows.Scan(row.ScanDest()...); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return conv.ConvertNotesToEntity(result), nil
}

// UpdateNote reads the row back after the write: MySQL reports zero affected rows for
// unchanged values, so RowsAffected cannot tell a missing note apart.
func (r *Repo) UpdateNote(ctx context.Context, id int64, title, content string) (entity.Note, error) {
	if _, err := r.db.ExecContext(ctx, updateNoteQuery, title, content, id); err != nil {
		return entity.Note{}, fmt.Errorf("update note: %w", mapError(err))
	}

	return r.GetNote(ctx, id)
}

func (r *Repo) DeleteNote(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, deleteNoteQuery, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note rows affected: %w", err)
	}
	if affected == 0 {
		return entity.ErrNoteNotFound
	}

	return nil
}

func mapError(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == errCheckConstraintViolated {
		name := ""
		if m := constraintNameRe.FindStringSubmatch(myErr.Message); m != nil {
			name = m[1]
		}
		return entity.ConstraintViolation(name)
	}

	return err
}
