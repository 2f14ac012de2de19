package reconcile

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/internal/metrics"
	"github.com/chainsafe/bridge-tracker/pkg/historyfeed"
	"github.com/chainsafe/bridge-tracker/pkg/recordstore"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// ErrStale is returned when the commit guard rejected the result.
var ErrStale = errors.New("reconciliation result is stale")

// Fetcher fetches the indexed history of an identity.
//
//go:generate mockery --name Fetcher --output mocks --outpkg mocks --filename mock_fetcher.go --with-expecter
type Fetcher interface {
	Fetch(ctx context.Context, id transfer.Identity) (*historyfeed.Result, error)
}

// CommitGuard reports whether results may still be written. It is checked
// right before anything is persisted.
type CommitGuard func() bool

// Result is the outcome of one reconciliation.
type Result struct {
	Records       []transfer.Record
	NewlyObserved []transfer.Record
	// FeedDegraded is set when the feed could not be read and only local
	// records were used.
	FeedDegraded bool
	FeedErr      error
	Quarantined  int
}

// Engine reconciles the record store with the history feed.
type Engine struct {
	store  recordstore.Store
	feed   Fetcher
	logger *zap.Logger
}

// NewEngine creates an engine.
func NewEngine(store recordstore.Store, feed Fetcher, logger *zap.Logger) *Engine {
	return &Engine{
		store:  store,
		feed:   feed,
		logger: logger,
	}
}

// Reconcile reads the identity's stored records and its feed history, merges
// them and persists newly observed records. A feed failure other than a
// validation error degrades to local-only data and is reported through
// Result.FeedDegraded. A nil guard always commits.
func (e *Engine) Reconcile(ctx context.Context, id transfer.Identity, guard CommitGuard) (*Result, error) {
	local, err := e.store.Get(ctx, id)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("reconcile", "store").Inc()
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	res := &Result{}
	var fetched []transfer.Record
	feed, err := e.feed.Fetch(ctx, id)
	switch {
	case err == nil:
		fetched = feed.Records
		res.Quarantined = len(feed.Quarantined)
	case transfer.IsValidation(err):
		return nil, err
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		metrics.ErrorsTotal.WithLabelValues("reconcile", "feed").Inc()
		e.logger.Warn("History feed unavailable, using local records only",
			zap.String("identity", id.String()),
			zap.Error(err))
		res.FeedDegraded = true
		res.FeedErr = err
	}

	res.Records, res.NewlyObserved = Merge(local, fetched)
	if len(res.NewlyObserved) == 0 {
		return res, nil
	}

	if guard != nil && !guard() {
		return nil, ErrStale
	}
	if err := e.store.PutMany(ctx, id, res.NewlyObserved); err != nil {
		metrics.ErrorsTotal.WithLabelValues("reconcile", "store").Inc()
		return nil, fmt.Errorf("failed to persist newly observed records: %w", err)
	}
	for _, r := range res.NewlyObserved {
		metrics.NewlyObservedTotal.WithLabelValues(string(id.NetworkType), string(r.Kind)).Inc()
	}
	e.logger.Info("Persisted newly observed records",
		zap.String("identity", id.String()),
		zap.Int("count", len(res.NewlyObserved)))
	return res, nil
}
