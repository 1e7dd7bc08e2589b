package handler

import (
	"errors"

	"github.com/emberwell/assess-api/internal/model"
	"github.com/emberwell/assess-api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	var validationErr *model.ValidationError

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrQuestionNotFound):
		return model.NewNotFoundError("question")

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrNoAnswers):
		return model.NewValidationError([]model.FieldError{
			{Field: "answers", Message: "please answer at least one question"},
		})
	case errors.Is(err, service.ErrInvalidOption):
		return model.NewValidationError([]model.FieldError{
			{Field: "letter", Message: "invalid option for this question"},
		})
	case errors.Is(err, service.ErrInvalidStep):
		return model.NewValidationError([]model.FieldError{
			{Field: "step", Message: "step must be zero or positive"},
		})
	case errors.As(err, &validationErr):
		return model.NewValidationError(validationErr.Issues)

	// ===== Definition Defects → 500 =====
	// A band coverage gap is a configuration bug, not a client problem.
	case errors.Is(err, service.ErrNoBandMatch):
		return model.NewInternalError("")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
