package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/bridge-tracker/internal/metrics"
	"github.com/chainsafe/bridge-tracker/pkg/chainstatus"
	"github.com/chainsafe/bridge-tracker/pkg/notify"
	"github.com/chainsafe/bridge-tracker/pkg/reconcile"
	"github.com/chainsafe/bridge-tracker/pkg/recordstore"
	"github.com/chainsafe/bridge-tracker/pkg/status"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// ErrStale is returned when a cycle finished after its identity was replaced.
var ErrStale = reconcile.ErrStale

// Reconciler merges the store with the history feed.
type Reconciler interface {
	Reconcile(ctx context.Context, id transfer.Identity, guard reconcile.CommitGuard) (*reconcile.Result, error)
}

// Resolver reads the on-chain state of one record.
type Resolver interface {
	ResolveRecord(ctx context.Context, rec *transfer.Record) (*chainstatus.Resolution, error)
}

// Transfer is a record annotated with its derivation.
type Transfer struct {
	transfer.Record
	Derivation status.Derivation `json:"derivation"`
}

// Snapshot is the published result of one cycle.
type Snapshot struct {
	CycleID      uuid.UUID         `json:"cycleId"`
	Identity     transfer.Identity `json:"identity"`
	Generation   uint64            `json:"generation"`
	Transfers    []Transfer        `json:"transfers"`
	FeedDegraded bool              `json:"feedDegraded"`
	Quarantined  int               `json:"quarantined"`
	At           time.Time         `json:"at"`
}

// Cycle runs one reconcile, resolve, derive and persist pass for an identity.
type Cycle struct {
	engine    Reconciler
	resolver  Resolver
	deriver   *status.Deriver
	tracker   *status.Tracker
	store     recordstore.Store
	locks     *KeyLocks
	publisher notify.Publisher
	workers   int
	logger    *zap.Logger
	now       func() time.Time
}

// NewCycle wires a cycle. workers bounds concurrent resolver calls.
func NewCycle(
	engine Reconciler,
	resolver Resolver,
	deriver *status.Deriver,
	tracker *status.Tracker,
	store recordstore.Store,
	locks *KeyLocks,
	publisher notify.Publisher,
	workers int,
	logger *zap.Logger,
) *Cycle {
	if workers <= 0 {
		workers = 1
	}
	if publisher == nil {
		publisher = notify.Nop{}
	}
	return &Cycle{
		engine:    engine,
		resolver:  resolver,
		deriver:   deriver,
		tracker:   tracker,
		store:     store,
		locks:     locks,
		publisher: publisher,
		workers:   workers,
		logger:    logger,
		now:       time.Now,
	}
}

// Run executes one cycle. Nothing is persisted, published or returned once
// guard reports false; the cycle then ends with ErrStale. A nil guard always
// commits.
func (c *Cycle) Run(ctx context.Context, id transfer.Identity, generation uint64, guard reconcile.CommitGuard) (*Snapshot, error) {
	if guard == nil {
		guard = func() bool { return true }
	}
	start := c.now()
	nt := string(id.NetworkType)
	defer func() {
		metrics.PollCycleDuration.WithLabelValues(nt).Observe(time.Since(start).Seconds())
	}()

	snap, err := c.run(ctx, id, generation, guard)
	switch {
	case err == nil && snap.FeedDegraded:
		metrics.PollCyclesTotal.WithLabelValues(nt, "degraded").Inc()
	case err == nil:
		metrics.PollCyclesTotal.WithLabelValues(nt, "ok").Inc()
	case errors.Is(err, ErrStale), errors.Is(err, context.Canceled):
		metrics.PollCyclesTotal.WithLabelValues(nt, "stale").Inc()
	default:
		metrics.PollCyclesTotal.WithLabelValues(nt, "error").Inc()
	}
	return snap, err
}

func (c *Cycle) run(ctx context.Context, id transfer.Identity, generation uint64, guard reconcile.CommitGuard) (*Snapshot, error) {
	rec, err := c.engine.Reconcile(ctx, id, guard)
	if err != nil {
		return nil, err
	}

	records := rec.Records
	resolutions, err := c.resolveAll(ctx, records)
	if err != nil {
		return nil, err
	}

	now := c.now()
	derivations := make([]status.Derivation, len(records))
	changed := make([]int, 0)
	previous := make(map[int]transfer.Status)
	flagged := make(map[int]bool)
	for i := range records {
		r := &records[i]
		d := c.deriver.Derive(r, resolutions[i])
		best := c.tracker.Observe(id, r.Key(), d.Status)

		prev := r.Status
		before := stamps(r)
		filled := fillDestination(r, resolutions[i])
		if status.Apply(r, best, now) || stamps(r) != before || filled {
			changed = append(changed, i)
			if r.Status != prev {
				previous[i] = prev
				// records seen for the first time are already flagged by
				// the reconcile step
				if prev != "" && status.Notifiable(r.Kind, r.Status) {
					r.Seen = false
					r.IsNewlyObserved = true
					flagged[i] = true
				}
			}
		}
		d.Status = r.Status
		d.Rank = r.StatusRank
		derivations[i] = d
	}

	events, err := c.commit(ctx, id, records, changed, previous, flagged, rec.NewlyObserved, now, guard)
	if err != nil {
		return nil, err
	}
	if err := c.publisher.Publish(ctx, events); err != nil {
		c.logger.Warn("Failed to publish transfer events", zap.String("identity", id.String()), zap.Error(err))
	}

	snap := &Snapshot{
		CycleID:      uuid.New(),
		Identity:     id,
		Generation:   generation,
		Transfers:    make([]Transfer, len(records)),
		FeedDegraded: rec.FeedDegraded,
		Quarantined:  rec.Quarantined,
		At:           now,
	}
	for i := range records {
		snap.Transfers[i] = Transfer{Record: records[i], Derivation: derivations[i]}
	}
	recordGauges(id, records)

	c.logger.Debug("Cycle completed",
		zap.String("identity", id.String()),
		zap.Uint64("generation", generation),
		zap.Int("records", len(records)),
		zap.Int("updated", len(changed)),
		zap.Bool("feed_degraded", rec.FeedDegraded))
	return snap, nil
}

// fillDestination records the child-chain hash the resolver derived for a
// deposit whose indexer row carries none.
func fillDestination(r *transfer.Record, res *chainstatus.Resolution) bool {
	if r.Kind != transfer.Deposit || r.DestinationHash != "" || res == nil || res.DestinationTxHash == nil {
		return false
	}
	if !res.DestinationExecuted {
		return false
	}
	r.DestinationHash = res.DestinationTxHash.Hex()
	return true
}

// resolveAll resolves every non-terminal record on a bounded pool. A failed
// resolution leaves a nil entry and never aborts its siblings.
func (c *Cycle) resolveAll(ctx context.Context, records []transfer.Record) ([]*chainstatus.Resolution, error) {
	out := make([]*chainstatus.Resolution, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i := range records {
		if records[i].Status.Terminal() {
			continue
		}
		g.Go(func() error {
			res, err := c.resolver.ResolveRecord(gctx, &records[i])
			if err != nil {
				if transfer.IsChainState(err) {
					c.logger.Debug("Record not yet visible on chain", zap.String("key", records[i].Key()), zap.Error(err))
				} else {
					c.logger.Warn("Failed to resolve record", zap.String("key", records[i].Key()), zap.Error(err))
				}
				return nil
			}
			out[i] = res
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// commit writes the changed records under the identity's writer lock and
// returns the events to publish. flagged marks records this cycle moved into
// a notifiable status; they are written unseen.
func (c *Cycle) commit(
	ctx context.Context,
	id transfer.Identity,
	records []transfer.Record,
	changed []int,
	previous map[int]transfer.Status,
	flagged map[int]bool,
	observed []transfer.Record,
	now time.Time,
	guard reconcile.CommitGuard,
) ([]notify.Event, error) {
	unlock := c.locks.Lock(id.StoreKey())
	defer unlock()

	if !guard() {
		return nil, ErrStale
	}

	if len(changed) > 0 {
		stored, err := c.store.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to reload records: %w", err)
		}
		byKey := make(map[string]*transfer.Record, len(stored))
		for i := range stored {
			byKey[stored[i].Key()] = &stored[i]
		}

		writes := make([]transfer.Record, 0, len(changed))
		for _, i := range changed {
			r := &records[i]
			if s, ok := byKey[r.Key()]; ok {
				// keep concurrent notification edits unless this cycle moved
				// the record into a notifiable status the store has not seen,
				// and never undercut a status written by another writer
				if !flagged[i] || status.Rank(s.Status) >= status.Rank(r.Status) {
					r.Seen = s.Seen
					r.IsNewlyObserved = s.IsNewlyObserved
				}
				status.Apply(r, s.Status, now)
			}
			writes = append(writes, r.Clone())
		}
		if err := c.store.PutMany(ctx, id, writes); err != nil {
			metrics.ErrorsTotal.WithLabelValues("poller", "store").Inc()
			return nil, fmt.Errorf("failed to persist statuses: %w", err)
		}
	}

	events := make([]notify.Event, 0, len(observed)+len(previous))
	fresh := make(map[string]bool, len(observed))
	for i := range observed {
		fresh[observed[i].Key()] = true
	}
	for i := range records {
		if fresh[records[i].Key()] {
			events = append(events, notify.NewEvent(notify.EventObserved, id, records[i], "", now))
		}
	}
	for _, i := range changed {
		prev, ok := previous[i]
		if !ok || prev == "" {
			continue
		}
		events = append(events, notify.NewEvent(notify.EventStatusChanged, id, records[i], prev, now))
	}
	return events, nil
}

type stampSet struct {
	claimable, completion int64
}

func stamps(r *transfer.Record) stampSet {
	var s stampSet
	if r.ClaimableTimestamp != nil {
		s.claimable = *r.ClaimableTimestamp
	}
	if r.CompletionTimestamp != nil {
		s.completion = *r.CompletionTimestamp
	}
	return s
}

var trackedStatuses = []transfer.Status{
	transfer.StatusSubmitted,
	transfer.StatusPendingOnDestination,
	transfer.StatusCompleted,
	transfer.StatusUnconfirmed,
	transfer.StatusClaimable,
	transfer.StatusExecuted,
	transfer.StatusFailed,
}

func recordGauges(id transfer.Identity, records []transfer.Record) {
	counts := make(map[transfer.Kind]map[transfer.Status]int)
	for _, k := range []transfer.Kind{transfer.Deposit, transfer.Withdrawal, transfer.Claim} {
		counts[k] = make(map[transfer.Status]int)
	}
	for _, r := range records {
		if m, ok := counts[r.Kind]; ok {
			m[r.Status]++
		}
	}
	for kind, m := range counts {
		for _, s := range trackedStatuses {
			metrics.RecordsByStatus.WithLabelValues(string(id.NetworkType), string(kind), string(s)).Set(float64(m[s]))
		}
	}
}
