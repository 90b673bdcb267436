package storage

import (
	"context"
	"sync"
)

type MemStorage struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		snapshots: make(map[string][]byte),
	}
}

func (s *MemStorage) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.snapshots[key]
	if !ok {
		return nil, ErrNoRows
	}

	copied := make([]byte, len(data))
	copy(copied, data)

	return copied, nil
}

func (s *MemStorage) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)

	s.snapshots[key] = copied

	return nil
}

func (s *MemStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.snapshots, key)

	return nil
}
