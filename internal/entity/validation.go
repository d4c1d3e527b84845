package entity

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	TitleMinLength = 3
	TitleMaxLength = 255
)

type Violation struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}

	return "invalid note: " + strings.Join(msgs, "; ")
}

// HasField reports whether any violation refers to field.
func (e *ValidationError) HasField(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}

	return false
}

type noteFields struct {
	Title   string `json:"title" validate:"notblank,min=3,max=255"`
	Content string `json:"content" validate:"notblank"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// ValidateNote checks title and content and returns *ValidationError listing every
// violated rule, at most one per field.
func ValidateNote(title, content string) error {
	err := validate.Struct(noteFields{Title: title, Content: content})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate note: %v", err)
	}

	verr := &ValidationError{Violations: make([]Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Violations = append(verr.Violations, Violation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}

	return verr
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return fmt.Sprintf("%s must not be blank", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ConstraintViolation converts a storage CHECK constraint failure into a validation error.
// Constraint names follow the notes_<field>_check convention of the migrations.
func ConstraintViolation(constraint string) *ValidationError {
	field := ""
	switch {
	case strings.Contains(constraint, "title"):
		field = "title"
	case strings.Contains(constraint, "content"):
		field = "content"
	}

	return &ValidationError{Violations: []Violation{{
		Field:   field,
		Message: fmt.Sprintf("note violates constraint %q", constraint),
	}}}
}
