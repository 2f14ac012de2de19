package poller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// Manager owns one poller per client session. Sessions share nothing but
// the cycle's store and writer locks.
type Manager struct {
	ctx          context.Context
	cycle        Runner
	interval     time.Duration
	cycleTimeout time.Duration
	logger       *zap.Logger

	mu      sync.Mutex
	pollers map[string]*Poller
}

// NewManager creates a manager whose pollers live until ctx is done.
func NewManager(ctx context.Context, cycle Runner, interval, cycleTimeout time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		ctx:          ctx,
		cycle:        cycle,
		interval:     interval,
		cycleTimeout: cycleTimeout,
		logger:       logger,
		pollers:      make(map[string]*Poller),
	}
}

// Select points session at id, starting a poller for new sessions.
func (m *Manager) Select(session string, id transfer.Identity) uint64 {
	m.mu.Lock()
	p, ok := m.pollers[session]
	if !ok {
		p = New(m.cycle, m.interval, m.cycleTimeout, m.logger.With(zap.String("session", session)))
		m.pollers[session] = p
		p.Start(m.ctx)
	}
	m.mu.Unlock()
	return p.Select(id)
}

// Snapshot returns the latest snapshot of session, nil while the first
// cycle is still running.
func (m *Manager) Snapshot(session string) (*Snapshot, bool) {
	m.mu.Lock()
	p, ok := m.pollers[session]
	m.mu.Unlock()
	if !ok {
		return nil, false
	}
	return p.Snapshot(), true
}

// Stop ends session. It reports whether the session existed.
func (m *Manager) Stop(session string) bool {
	m.mu.Lock()
	p, ok := m.pollers[session]
	delete(m.pollers, session)
	m.mu.Unlock()
	if ok {
		p.Stop()
	}
	return ok
}

// StopAll ends every session.
func (m *Manager) StopAll() {
	m.mu.Lock()
	pollers := m.pollers
	m.pollers = make(map[string]*Poller)
	m.mu.Unlock()

	for _, p := range pollers {
		p.Stop()
	}
}

// Sessions returns the number of live sessions.
func (m *Manager) Sessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pollers)
}

// RunOnce runs a synchronous cycle for id outside any session.
func (m *Manager) RunOnce(ctx context.Context, id transfer.Identity) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, m.cycleTimeout)
	defer cancel()
	return m.cycle.Run(ctx, id, 0, nil)
}
