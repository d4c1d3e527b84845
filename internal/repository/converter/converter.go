package converter

import (
	"time"

	"github.com/evgeniy-krivenko/rest-notes/internal/entity"
)

// NoteRow is the column set of the notes table in select order.
type NoteRow struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScanDest returns pointers to the row fields in select order.
func (r *NoteRow) ScanDest() []any {
	return []any{&r.ID, &r.Title, &r.Content, &r.CreatedAt, &r.UpdatedAt}
}

func ConvertNoteToEntity(row NoteRow) entity.Note {
	return entity.Note{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func ConvertNotesToEntity(rows []NoteRow) []entity.Note {
	notes := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, ConvertNoteToEntity(row))
	}

	return notes
}
