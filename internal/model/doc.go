// Package model defines domain entities and data structures for the
// assessment API.
//
// The model package contains the questionnaire definition schema, the
// caller-owned session state types (answers, profile), and the scoring
// result types. Models are used across all layers of the application.
//
// # Questionnaire Definitions
//
// Questionnaire definitions arrive as untrusted blobs (JSON or YAML) and
// must pass through ParseQuestionnaire or DecodeQuestionnaire before any
// other component touches them. A parsed *Questionnaire is immutable by
// convention: it is loaded once at startup and shared read-only across
// requests.
//
// # JSON Serialization
//
// Definition types mirror the published questionnaire format and use its
// camelCase keys (letterPoints, scoreBands, appliesTo). API-owned response
// types use snake_case keys:
//
//	type QuizProgress struct {
//	    TotalQuestions int `json:"total_questions"`
//	    AnsweredCount  int `json:"answered_count"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go, along with
// ValidationError, the load-time failure type for malformed definitions.
package model
