// Package repository implements the data access layer for the
// assessment API.
//
// The package provides the persistent backing for session state. Two
// implementations of the service.StateStore interface are offered:
//
//   - SurrealStateStore: SurrealDB-backed, the production store
//   - MemoryStateStore: in-process map, for tests and local runs
//
// # Repository Pattern
//
// Both stores follow the same pattern:
//
//   - Constructor function (NewXxxStateStore) accepts its dependencies
//   - Values are stored opaquely; stores never inspect the blobs
//   - Get returns (nil, nil) for a missing key, never an error
//
// # Query Patterns
//
// The SurrealDB store uses:
//
//   - Parameterized queries with $variable syntax for security
//   - type::thing() for safe record ID handling
//   - time::now() for automatic timestamps
//
// # Example Usage
//
//	store := NewSurrealStateStore(db)
//	value, err := store.Get(ctx, "quiz:2024-09:abc:answers")
//	if err != nil {
//	    return err
//	}
//	if value == nil {
//	    // Nothing recorded yet
//	}
package repository
