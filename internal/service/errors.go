package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Scoring Errors =====
var (
	// ErrNoAnswers means zero in-route questions have been answered.
	// Recoverable: the caller should send the user back to the question
	// flow rather than render a result.
	ErrNoAnswers = errors.New("no eligible questions have been answered")

	// ErrNoBandMatch means the computed score has no covering band. This
	// is a questionnaire-data defect (a gap in band coverage), never a
	// user error, and must not be papered over with a default band.
	ErrNoBandMatch = errors.New("no score band covers the computed score")
)

// ===== Session Errors =====
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidOption    = errors.New("selected option is not offered by this question")
	ErrInvalidStep      = errors.New("step must not be negative")
)
