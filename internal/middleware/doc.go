// Package middleware provides HTTP middleware for the assessment API.
//
// The middleware package contains reusable middleware components for
// request identification, logging, rate limiting, and response shaping.
//
// # Available Middleware
//
// Core middleware components:
//
//   - RequestID: Unique request identifier generation
//   - Logger: Structured request logging via slog
//   - Recovery: Panic recovery with RFC 9457 error responses
//   - CORS: Cross-origin request handling
//   - RateLimit: Request rate limiting per client address
//   - Compress: gzip response compression
//
// # Composition
//
// Middleware is composed with Chain, applied in order:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
