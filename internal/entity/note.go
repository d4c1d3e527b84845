package entity

import (
	"errors"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")

type Note struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotePatch carries the fields of an update request. Nil fields keep their stored value.
type NotePatch struct {
	Title   *string
	Content *string
}

// Apply returns a copy of n with the supplied fields replaced.
func (p NotePatch) Apply(n Note) Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}

	return n
}
