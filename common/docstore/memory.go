package docstore

import (
	"context"
	"sync"
)

// MemoryStore keeps every collection in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data collections
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: collections{}}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) FindByID(_ context.Context, collection, id string, dest any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.data.findByID(collection, id)
	if !ok {
		return false, nil
	}
	return true, decodeInto(doc, dest)
}

func (s *MemoryStore) FindOne(_ context.Context, collection, field string, value any, dest any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.data.findOne(collection, field, value)
	if !ok {
		return false, nil
	}
	return true, decodeInto(doc, dest)
}

func (s *MemoryStore) FindAll(_ context.Context, collection string, dest any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return decodeInto(s.data.all(collection), dest)
}

func (s *MemoryStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.insert(collection, doc)
}

func (s *MemoryStore) UpdateByID(_ context.Context, collection, id string, patch map[string]any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.update(collection, id, patch)
}

func (s *MemoryStore) DeleteByID(_ context.Context, collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.remove(collection, id), nil
}

func (s *MemoryStore) Increment(_ context.Context, collection, id, field string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.increment(collection, id, field, delta)
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close(context.Context) error { return nil }
