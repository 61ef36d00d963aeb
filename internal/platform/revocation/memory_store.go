package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process revocation set used when Redis is unavailable.
// Logout through a MemoryStore is only visible within a single process, so
// multi-instance deployments must use the Redis store instead.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

// NewMemoryStore creates an empty in-memory revocation set.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]time.Time)}
}

// Revoke records the token ID until the token's natural expiry.
func (s *MemoryStore) Revoke(_ context.Context, tokenID string, until time.Time) error {
	if time.Until(until) <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[tokenID] = until
	return nil
}

// IsRevoked reports whether the token ID is revoked and not yet past its
// expiry. Stale entries are dropped on read.
func (s *MemoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	until, ok := s.entries[tokenID]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		s.mu.Lock()
		delete(s.entries, tokenID)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}
