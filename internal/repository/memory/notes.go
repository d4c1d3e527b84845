// Package memory keeps notes in process memory. It backs tests and DB_DRIVER=memory.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/evgeniy-krivenko/rest-notes/internal/entity"
)

type Repo struct {
	mu     sync.RWMutex
	txMu   sync.Mutex
	notes  map[int64]entity.Note
	nextID int64
	now    func() time.Time
}

type Option func(*Repo)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repo) { r.now = now }
}

func New(opts ...Option) *Repo {
	r := &Repo{
		notes:  make(map[int64]entity.Note),
		nextID: 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Repo) CreateNote(_ context.Context, title, content string) (entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	note := entity.Note{
		ID:        r.nextID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.notes[note.ID] = note
	r.nextID++

	return note, nil
}

func (r *Repo) GetNote(_ context.Context, id int64) (entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	return note, nil
}

func (r *Repo) ListNotes(context.Context) ([]entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]entity.Note, 0, len(r.notes))
	for _, note := range r.notes {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })

	return notes, nil
}

func (r *Repo) UpdateNote(_ context.Context, id int64, title, content string) (entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	note.Title = title
	note.Content = content
	note.UpdatedAt = r.now().UTC()
	if note.UpdatedAt.Before(note.CreatedAt) {
		note.UpdatedAt = note.CreatedAt
	}
	r.notes[id] = note

	return note, nil
}

func (r *Repo) DeleteNote(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return entity.ErrNoteNotFound
	}
	delete(r.notes, id)

	return nil
}

// RunInTx serialises transactional sections against each other. Nested calls are not
// supported.
func (r *Repo) RunInTx(ctx context.Context, f func(context.Context) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	return f(ctx)
}
