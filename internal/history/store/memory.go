package store

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps history in process memory. It is used when redis is not configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
	limit   int
	now     func() time.Time
}

// NewMemoryStore creates an in-memory store holding at most limit entries.
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{limit: limitOrDefault(limit), now: time.Now}
}

// Append stamps entry and prepends it, dropping the oldest entry past the limit.
func (s *MemoryStore) Append(_ context.Context, entry Entry) error {
	entry = Stamp(entry, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}
	return nil
}

// List returns a copy of the entries, newest first.
func (s *MemoryStore) List(_ context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Clear removes every entry.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}

var _ Store = (*MemoryStore)(nil)
