package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	updatedOn time.Time
}

// MemoryStateStore is an in-process implementation of service.StateStore.
// It backs local runs and tests; state does not survive a restart.
type MemoryStateStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStateStore creates a new in-memory state store
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get retrieves the value stored under key, or (nil, nil) when absent.
func (r *MemoryStateStore) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[key]
	if !ok {
		return nil, nil
	}

	// Copy so callers cannot mutate stored state.
	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (r *MemoryStateStore) Set(ctx context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = memoryEntry{value: stored, updatedOn: r.now()}
	return nil
}

// Delete removes the value stored under key. Deleting a missing key is
// not an error.
func (r *MemoryStateStore) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}

// PruneStale removes entries not touched within olderThan and returns
// how many were removed.
func (r *MemoryStateStore) PruneStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := r.now().Add(-olderThan)

	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0
	for key, entry := range r.entries {
		if entry.updatedOn.Before(cutoff) {
			delete(r.entries, key)
			pruned++
		}
	}
	return pruned, nil
}
