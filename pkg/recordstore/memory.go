package recordstore

import (
	"context"
	"errors"
	"sync"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

var errMissingKey = errors.New("record has no dedup key")

type memoryStore struct {
	mu   sync.RWMutex
	sets map[string][]transfer.Record
}

// NewMemoryStore returns a process-local store.
func NewMemoryStore() Store {
	return &memoryStore{sets: make(map[string][]transfer.Record)}
}

func (s *memoryStore) Get(_ context.Context, id transfer.Identity) ([]transfer.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.sets[id.StoreKey()]
	out := make([]transfer.Record, len(set))
	for i, r := range set {
		out[i] = r.Clone()
	}
	return out, nil
}

func (s *memoryStore) PutMany(_ context.Context, id transfer.Identity, records []transfer.Record) error {
	if err := checkKeys(records); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := id.StoreKey()
	s.sets[key] = upsert(s.sets[key], records)
	return nil
}
