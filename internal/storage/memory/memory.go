package memory

import (
	"context"
	"sync"
	"time"

	"eventDetails/internal/storage"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Storage is an in-process response cache. Expired entries are never
// returned; DeleteExpired reclaims their memory.
type Storage struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Storage {
	return &Storage{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, storage.ErrCacheMiss
	}

	return e.value, nil
}

func (s *Storage) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}

	return nil
}

// DeleteExpired drops every expired entry and reports how many were removed.
func (s *Storage) DeleteExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0

	for key, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}

	return removed
}

func (s *Storage) Ping(_ context.Context) error {
	return nil
}

func (s *Storage) Close() error {
	return nil
}
