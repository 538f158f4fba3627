package fallback

import "sync"

// MemoryStore is an in-process Store used in tests and as a last-ditch
// stand-in when the sqlite file cannot be opened.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string][]byte
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string][]byte)}
}

// ReadCache returns the payload stored under key, and whether one exists.
func (s *MemoryStore) ReadCache(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.buckets[key]
	if !ok {
		return nil, false, nil
	}

	// Copy so callers cannot mutate the stored slice.
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true, nil
}

// WriteCache stores payload under key, replacing any previous value.
func (s *MemoryStore) WriteCache(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(payload))
	copy(stored, payload)
	s.buckets[key] = stored
	return nil
}

// Delete removes the payload stored under key, if any.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.buckets, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }
