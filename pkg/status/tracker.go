package status

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// DefaultTrackerSize bounds the best-status cache.
const DefaultTrackerSize = 10_000

// Tracker remembers the best status seen per record for callers that read
// derivations without going through the store.
type Tracker struct {
	mu    sync.Mutex
	cache *lru.Cache[string, transfer.Status]
}

// NewTracker creates a tracker holding up to size records.
func NewTracker(size int) (*Tracker, error) {
	if size <= 0 {
		size = DefaultTrackerSize
	}
	cache, err := lru.New[string, transfer.Status](size)
	if err != nil {
		return nil, err
	}
	return &Tracker{cache: cache}, nil
}

// Observe folds next into the cached status for the record and returns the
// status callers should show.
func (t *Tracker) Observe(id transfer.Identity, key string, next transfer.Status) transfer.Status {
	k := id.StoreKey() + "/" + key

	t.mu.Lock()
	defer t.mu.Unlock()
	prev, _ := t.cache.Get(k)
	best := Best(prev, next)
	t.cache.Add(k, best)
	return best
}

// Seed records a status loaded from elsewhere, such as the store, without
// letting it lower what the tracker already holds.
func (t *Tracker) Seed(id transfer.Identity, key string, s transfer.Status) {
	if s == "" {
		return
	}
	t.Observe(id, key, s)
}
