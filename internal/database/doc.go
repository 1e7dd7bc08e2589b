// Package database provides the database abstraction layer for the
// assessment API.
//
// This package defines the Database interface that abstracts SurrealDB
// operations, allowing for clean separation between business logic and
// data access.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns the rows of a single-statement query
//   - QueryOne: Returns the first row, or ErrNotFound when there is none
//   - Execute: No return value (for CREATE/UPSERT/DELETE mutations)
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Usage Example
//
//	db := database.NewSurrealDB(cfg)
//	db.Connect(ctx)
//	defer db.Close()
//
//	row, err := db.QueryOne(ctx, "SELECT * FROM quiz_state WHERE key = $key", map[string]interface{}{"key": key})
package database
