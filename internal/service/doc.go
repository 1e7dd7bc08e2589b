// Package service implements the business logic layer for the assessment
// API.
//
// The service package contains the scoring engine, the profile deriver,
// and the session orchestration that ties them to persisted wizard state.
// Services are the primary abstraction between HTTP handlers and storage.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through on operations that touch storage
//
// The scoring and profile services are pure: they perform no I/O, hold no
// state between calls, and may be shared freely across goroutines. Only
// SessionService touches storage, through the StateStore interface it
// defines, allowing easy mocking for unit tests and decoupling from the
// concrete store.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level
// variables:
//
//	var (
//	    ErrNoAnswers   = errors.New("no eligible questions have been answered")
//	    ErrNoBandMatch = errors.New("no score band covers the computed score")
//	)
package service
