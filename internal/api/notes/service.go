package notes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/evgeniy-krivenko/rest-notes/internal/api/notes/converter"
	"github.com/evgeniy-krivenko/rest-notes/internal/entity"
)

const BasePath = "/api/notes"

type notesUsecase interface {
	CreateNote(ctx context.Context, title, content string) (entity.Note, error)
	GetNote(ctx context.Context, id int64) (entity.Note, error)
	ListNotes(ctx context.Context) ([]entity.Note, error)
	UpdateNote(ctx context.Context, id int64, patch entity.NotePatch) (entity.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type Service struct {
	uc  notesUsecase
	loc *time.Location
}

// New builds the notes resource. Timestamps are rendered in loc, UTC when nil.
func New(uc notesUsecase, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{uc: uc, loc: loc}
}

func (s *Service) RegisterRoutes(router fiber.Router) {
	r := router.Group(BasePath)

	r.Get("/", s.listNotes)
	r.Post("/", s.createNote)
	r.Get("/:id<int>", s.getNote)
	r.Put("/:id<int>", s.updateNote)
	r.Delete("/:id<int>", s.deleteNote)
}

func (s *Service) listNotes(c *fiber.Ctx) error {
	notes, err := s.uc.ListNotes(c.UserContext())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(converter.ConvertNotesToResponse(notes, s.loc))
}

func (s *Service) getNote(c *fiber.Ctx) error {
	id, err := noteID(c)
	if err != nil {
		return err
	}

	note, err := s.uc.GetNote(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(converter.ConvertNoteToResponse(note, s.loc))
}

func (s *Service) createNote(c *fiber.Ctx) error {
	var req createNoteRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	note, err := s.uc.CreateNote(c.UserContext(), req.Title, req.Content)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(converter.ConvertNoteToResponse(note, s.loc))
}

func (s *Service) updateNote(c *fiber.Ctx) error {
	id, err := noteID(c)
	if err != nil {
		return err
	}

	var req updateNoteRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	note, err := s.uc.UpdateNote(c.UserContext(), id, entity.NotePatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(converter.ConvertNoteToResponse(note, s.loc))
}

func (s *Service) deleteNote(c *fiber.Ctx) error {
	id, err := noteID(c)
	if err != nil {
		return err
	}

	if err := s.uc.DeleteNote(c.UserContext(), id); err != nil {
		return err
	}

	c.Status(fiber.StatusNoContent)
	return nil
}

func noteID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fiber.ErrNotFound
	}

	return int64(id), nil
}

// decodeBody treats an empty body as an empty JSON object.
func decodeBody(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}

	if err := c.App().Config().JSONDecoder(body, v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	return nil
}
