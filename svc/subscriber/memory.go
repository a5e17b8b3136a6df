package subscriber

import (
	"context"
	"sync"
)

// MemoryStorage is a Storage kept in a map. It is meant for tests and local
// development; data does not survive a restart.
type MemoryStorage struct {
	mu      sync.Mutex
	records map[string]Record
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string]Record)}
}

func (s *MemoryStorage) InsertIfAbsent(ctx context.Context, rec Record) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.Email]; ok {
		return false, nil
	}
	s.records[rec.Email] = rec
	return true, nil
}

func (s *MemoryStorage) FindByEmail(ctx context.Context, email string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[email]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Len returns the number of stored records.
func (s *MemoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Healthcheck always succeeds; it lets MemoryStorage stand in wherever a
// readiness check is expected.
func (s *MemoryStorage) Healthcheck(context.Context) error {
	return nil
}
