package converter

import (
	"time"

	"github.com/evgeniy-krivenko/rest-notes/internal/entity"
)

// TimestampLayout renders timestamps as YYYY-MM-DD HH:MM:SS.
const TimestampLayout = time.DateTime

type NoteResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func ConvertNoteToResponse(note entity.Note, loc *time.Location) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: ConvertTimeToString(note.CreatedAt, loc),
		UpdatedAt: ConvertTimeToString(note.UpdatedAt, loc),
	}
}

func ConvertNotesToResponse(notes []entity.Note, loc *time.Location) []NoteResponse {
	result := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		result = append(result, ConvertNoteToResponse(n, loc))
	}

	return result
}

func ConvertTimeToString(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc).Format(TimestampLayout)
}
