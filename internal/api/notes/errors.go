package notes

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/evgeniy-krivenko/rest-notes/internal/entity"
	"github.com/evgeniy-krivenko/rest-notes/pkg/logger/slogx"
)

// ErrorHandler renders handler errors for fiber.Config.ErrorHandler.
// Not-found responses carry no body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		verr     *entity.ValidationError
		fiberErr *fiber.Error
	)

	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Errors: verr.Violations})

	case errors.Is(err, entity.ErrNoteNotFound):
		return emptyStatus(c, fiber.StatusNotFound)

	case errors.As(err, &fiberErr):
		if fiberErr.Code == fiber.StatusNotFound || fiberErr.Code == fiber.StatusMethodNotAllowed {
			return emptyStatus(c, fiberErr.Code)
		}
		return c.Status(fiberErr.Code).JSON(messageResponse(fiberErr.Message))

	default:
		slogx.Error(c.UserContext(), "unhandled request error",
			slogx.Err(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(messageResponse("internal server error"))
	}
}

func emptyStatus(c *fiber.Ctx, code int) error {
	c.Response().ResetBody()
	c.Status(code)
	return nil
}
