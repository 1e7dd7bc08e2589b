package repository

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/emberwell/assess-api/internal/database"
)

// SurrealStateStore persists session state blobs in SurrealDB.
// It implements service.StateStore.
type SurrealStateStore struct {
	db database.Database
}

// NewSurrealStateStore creates a new SurrealDB-backed state store
func NewSurrealStateStore(db database.Database) *SurrealStateStore {
	return &SurrealStateStore{db: db}
}

// Get retrieves the value stored under key, or (nil, nil) when absent.
func (r *SurrealStateStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM quiz_state WHERE key = $key LIMIT 1`
	vars := map[string]interface{}{"key": key}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return decodeStateValue(result)
}

// Set stores value under key, replacing any previous value.
func (r *SurrealStateStore) Set(ctx context.Context, key string, value []byte) error {
	// Blobs travel as base64 so the store stays agnostic about their
	// content. type::thing keys the record on the full state key, making
	// the write an idempotent upsert.
	query := `
		UPSERT type::thing("quiz_state", $key) SET
			key = $key,
			value = $value,
			updated_on = time::now()
	`

	vars := map[string]interface{}{
		"key":   key,
		"value": base64.StdEncoding.EncodeToString(value),
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes the value stored under key. Deleting a missing key is
// not an error.
func (r *SurrealStateStore) Delete(ctx context.Context, key string) error {
	query := `DELETE quiz_state WHERE key = $key`
	vars := map[string]interface{}{"key": key}

	return r.db.Execute(ctx, query, vars)
}

// PruneStale removes state records not touched within olderThan and
// returns how many were removed.
func (r *SurrealStateStore) PruneStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan).Format(time.RFC3339)
	query := `DELETE quiz_state WHERE updated_on < <datetime>$cutoff RETURN BEFORE`
	vars := map[string]interface{}{"cutoff": cutoff}

	rows, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func decodeStateValue(result interface{}) ([]byte, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected state row format %T", result)
	}

	encoded, ok := data["value"].(string)
	if !ok {
		return nil, errors.New("state row has no value field")
	}

	value, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("corrupt state value: %w", err)
	}
	return value, nil
}
