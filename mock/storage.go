package mock

import (
	"context"

	"github.com/fwojciec/resdesk"
)

var _ resdesk.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore is a mock implementation of resdesk.KeyValueStore.
type KeyValueStore struct {
	GetFn func(ctx context.Context, key string) (string, error)
	SetFn func(ctx context.Context, key, value string) error
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, error) {
	return s.GetFn(ctx, key)
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	return s.SetFn(ctx, key, value)
}

// MemoryStore is an in-memory resdesk.KeyValueStore for tests.
type MemoryStore struct {
	Values map[string]string
	Sets   int
}

var _ resdesk.KeyValueStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.Values[key]
	if !ok {
		return "", resdesk.Errorf(resdesk.ENOTFOUND, "key %q not found", key)
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.Values[key] = value
	s.Sets++
	return nil
}
