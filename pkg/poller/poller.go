// Package poller drives periodic reconciliation of the identity a session is
// watching. Switching identities cancels the in-flight cycle and discards
// anything it would still produce.
package poller

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/internal/metrics"
	"github.com/chainsafe/bridge-tracker/pkg/reconcile"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// Runner executes a single cycle.
type Runner interface {
	Run(ctx context.Context, id transfer.Identity, generation uint64, guard reconcile.CommitGuard) (*Snapshot, error)
}

// Poller polls one identity at a time.
type Poller struct {
	runner       Runner
	interval     time.Duration
	cycleTimeout time.Duration
	logger       *zap.Logger

	mu         sync.Mutex
	identity   *transfer.Identity
	generation uint64
	cancel     context.CancelFunc
	snapshot   *Snapshot

	wake     chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a stopped poller.
func New(runner Runner, interval, cycleTimeout time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		runner:       runner,
		interval:     interval,
		cycleTimeout: cycleTimeout,
		logger:       logger,
		wake:         make(chan struct{}, 1),
		stopCh:       make(chan struct{}),
	}
}

// Select switches the poller to id. The current cycle is cancelled, the last
// snapshot is discarded and a new cycle is scheduled immediately. Selecting
// the identity already being polled is a no-op.
func (p *Poller) Select(id transfer.Identity) uint64 {
	p.mu.Lock()
	if p.identity != nil && *p.identity == id {
		gen := p.generation
		p.mu.Unlock()
		return gen
	}
	p.identity = &id
	p.generation++
	p.snapshot = nil
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	gen := p.generation
	p.mu.Unlock()

	p.logger.Info("Poller switched identity",
		zap.String("identity", id.String()),
		zap.Uint64("generation", gen))

	select {
	case p.wake <- struct{}{}:
	default:
	}
	return gen
}

// Start runs the polling loop until ctx is done or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-p.stopCh:
				return
			case <-p.wake:
			case <-ticker.C:
			}
			p.Poll(ctx)
		}
	}()
}

// Stop cancels the in-flight cycle and waits for the loop to exit.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
		p.mu.Lock()
		if p.cancel != nil {
			p.cancel()
		}
		p.mu.Unlock()
	})
	p.wg.Wait()
}

// Poll runs one cycle for the selected identity, if any.
func (p *Poller) Poll(ctx context.Context) {
	p.mu.Lock()
	if p.identity == nil {
		p.mu.Unlock()
		return
	}
	id := *p.identity
	gen := p.generation
	cctx, cancel := context.WithTimeout(ctx, p.cycleTimeout)
	p.cancel = cancel
	p.mu.Unlock()
	defer cancel()

	snap, err := p.runner.Run(cctx, id, gen, func() bool { return p.current(gen) })
	if err != nil {
		if errors.Is(err, ErrStale) || !p.current(gen) {
			metrics.StaleResponsesTotal.Inc()
			p.logger.Debug("Dropped stale cycle", zap.String("identity", id.String()), zap.Uint64("generation", gen))
			return
		}
		metrics.ErrorsTotal.WithLabelValues("poller", "cycle").Inc()
		p.logger.Warn("Poll cycle failed", zap.String("identity", id.String()), zap.Error(err))
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		metrics.StaleResponsesTotal.Inc()
		return
	}
	p.snapshot = snap
	p.cancel = nil
}

// Snapshot returns the latest snapshot of the selected identity.
func (p *Poller) Snapshot() *Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

// Selected returns the identity being polled.
func (p *Poller) Selected() (transfer.Identity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.identity == nil {
		return transfer.Identity{}, false
	}
	return *p.identity, true
}

func (p *Poller) current(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return gen == p.generation
}
