// Package handler provides HTTP request handlers for the assessment API.
//
// The handler package contains all HTTP endpoint implementations. Each
// handler struct encapsulates the dependencies needed to serve requests
// for a feature area (questionnaire metadata, quiz sessions).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: List of resources
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Example Usage
//
//	handler := NewSessionHandler(sessionService)
//	mux.HandleFunc("POST /v1/sessions", handler.Create)
//	mux.HandleFunc("GET /v1/sessions/{sessionId}", handler.Get)
package handler
