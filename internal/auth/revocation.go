package auth

import (
	"sync"
	"time"
)

// RevocationStore holds the token IDs revoked by logout. Each entry
// carries the token's own expiry, so the store stays bounded: an entry
// is useless once the token it belongs to would be rejected anyway.
type RevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time

	// now is swappable for tests.
	now func() time.Time
}

// Revocations is the process-wide store used by the auth middleware
// and the logout flow.
var Revocations = NewRevocationStore()

func NewRevocationStore() *RevocationStore {
	return &RevocationStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke marks a token ID revoked until expiresAt. Already-expired
// tokens are ignored.
func (s *RevocationStore) Revoke(tokenID string, expiresAt time.Time) {
	if tokenID == "" || !expiresAt.After(s.now()) {
		return
	}
	s.mu.Lock()
	s.entries[tokenID] = expiresAt
	s.mu.Unlock()
}

// IsRevoked reports whether a token ID is currently revoked.
func (s *RevocationStore) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	expiresAt, ok := s.entries[tokenID]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if !expiresAt.After(s.now()) {
		// Token expired on its own; drop the entry.
		s.mu.Lock()
		delete(s.entries, tokenID)
		s.mu.Unlock()
		return false
	}
	return true
}

// Len returns the number of live entries, sweeping expired ones first.
func (s *RevocationStore) Len() int {
	s.sweep()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// StartJanitor sweeps expired entries on the given interval until the
// stop channel closes.
func (s *RevocationStore) StartJanitor(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-stop:
				return
			}
		}
	}()
}

func (s *RevocationStore) sweep() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, expiresAt := range s.entries {
		if !expiresAt.After(now) {
			delete(s.entries, id)
		}
	}
}
