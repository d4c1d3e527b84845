package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/evgeniy-krivenko/rest-notes/internal/entity"
	conv "github.com/evgeniy-krivenko/rest-notes/internal/repository/converter"
	"github.com/evgeniy-krivenko/rest-notes/pkg/logger/slogx"
)

const noteColumns = "id, title, content, created_at, updated_at"

const (
	createNoteQuery = `INSERT INTO notes (title, content) VALUES ($1, $2)
RETURNING ` + noteColumns

	getNoteQuery = `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`

	listNotesQuery = `SELECT ` + noteColumns + ` FROM notes ORDER BY id ASC`

	updateNoteQuery = `UPDATE notes
SET title = $2, content = $3, updated_at = GREATEST(now(), created_at)
WHERE id = $1
RETURNING ` + noteColumns

	deleteNoteQuery = `DELETE FROM notes WHERE id = $1`
)

func (r *Repo) CreateNote(ctx context.Context, title, content string) (entity.Note, error) {
	var row conv.NoteRow
	if err := r.db.QueryRow(ctx, createNoteQuery, title, content).Scan(row.ScanDest()...); err != nil {
		return entity.Note{}, fmt.Errorf("create note: %w", mapError(err))
	}

	slogx.Debug(ctx, "success to create note", slogx.NoteID(row.ID))

	return conv.ConvertNoteToEntity(row), nil
}

func (r *Repo) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	var row conv.NoteRow
	if err := r.db.QueryRow(ctx, getNoteQuery, id).Scan(row.ScanDest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("get note: %w", err)
	}

	return conv.ConvertNoteToEntity(row), nil
}

func (r *Repo) ListNotes(ctx context.Context) ([]entity.Note, error) {
	rows, err := r.db.Query(ctx, listNotesQuery)
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

func (r *Repo) UpdateNote(ctx context.Context, id int64, title, content string) (entity.Note, error) {
	var row conv.NoteRow
	if err := r.db.QueryRow(ctx, updateNoteQuery, id, title, content).Scan(row.ScanDest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("update note: %w", mapError(err))
	}

	return conv.ConvertNoteToEntity(row), nil
}

func (r *Repo) DeleteNote(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteNoteQuery, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNoteNotFound
	}

	return nil
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
		return entity.ConstraintViolation(pgErr.ConstraintName)
	}

	return err
}
