package notes

import "github.com/evgeniy-krivenko/rest-notes/internal/entity"

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Absent and null fields stay nil and keep the stored value.
type updateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type errorResponse struct {
	Errors []entity.Violation `json:"errors"`
}

func messageResponse(msg string) errorResponse {
	return errorResponse{Errors: []entity.Violation{{Message: msg}}}
}
