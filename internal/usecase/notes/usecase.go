package notes

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/rest-notes/internal/entity"
	"github.com/evgeniy-krivenko/rest-notes/pkg/logger/slogx"
)

type notesRepository interface {
	CreateNote(ctx context.Context, title, content string) (entity.Note, error)
	GetNote(ctx context.Context, id int64) (entity.Note, error)
	ListNotes(ctx context.Context) ([]entity.Note, error)
	UpdateNote(ctx context.Context, id int64, title, content string) (entity.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type transactor interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo notesRepository `option:"mandatory" validate:"required"`
	tx   transactor      `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) CreateNote(ctx context.Context, title, content string) (entity.Note, error) {
	if err := entity.ValidateNote(title, content); err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	note, err := u.repo.CreateNote(ctx, title, content)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	slogx.Info(ctx, "success to create note", slogx.NoteID(note.ID))
	return note, nil
}

func (u *Usecase) GetNote(ctx context.Context, id int64) (entity.Note, error) {
	note, err := u.repo.GetNote(ctx, id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase get note: %w", err)
	}

	return note, nil
}

func (u *Usecase) ListNotes(ctx context.Context) ([]entity.Note, error) {
	notes, err := u.repo.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase list notes: %w", err)
	}

	return notes, nil
}

// UpdateNote merges patch into the stored note, validates the result and persists it
// within one transaction.
func (u *Usecase) UpdateNote(ctx context.Context, id int64, patch entity.NotePatch) (entity.Note, error) {
	var updated entity.Note

	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := u.repo.GetNote(ctx, id)
		if err != nil {
			return err
		}

		merged := patch.Apply(current)
		if err := entity.ValidateNote(merged.Title, merged.Content); err != nil {
			return err
		}

		updated, err = u.repo.UpdateNote(ctx, id, merged.Title, merged.Content)
		return err
	})
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase update note: %w", err)
	}

	slogx.Info(ctx, "success to update note", slogx.NoteID(id))
	return updated, nil
}

func (u *Usecase) DeleteNote(ctx context.Context, id int64) error {
	if err := u.repo.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("usecase delete note: %w", err)
	}

	slogx.Info(ctx, "success to delete note", slogx.NoteID(id))
	return nil
}
