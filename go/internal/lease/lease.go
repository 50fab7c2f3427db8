// Package lease provides a time-limited exclusive lock keyed by string.
// Fight generation holds one lease per competition so two concurrent runs
// can never interleave fight numbering.
package lease

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Lease is a non-blocking, TTL-bounded lock. Acquire reports false when the
// key is already held and not yet expired; it never waits. A multi-process
// deployment swaps this for a distributed implementation with the same
// contract.
type Lease interface {
	Acquire(key string, ttl time.Duration) bool
	Release(key string)
}

// Memory is the single-process Lease: a mutex-guarded map of expiry times.
type Memory struct {
	clock clockwork.Clock

	mu   sync.Mutex
	held map[string]time.Time
}

// NewMemory creates a lease store on the real clock.
func NewMemory() *Memory {
	return NewMemoryWithClock(clockwork.NewRealClock())
}

// NewMemoryWithClock creates a lease store on the given clock. Tests pass a
// clockwork.FakeClock to drive expiry.
func NewMemoryWithClock(clock clockwork.Clock) *Memory {
	return &Memory{
		clock: clock,
		held:  make(map[string]time.Time),
	}
}

// Acquire takes the lease for key when it is free or its previous holder's
// TTL has lapsed.
func (m *Memory) Acquire(key string, ttl time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if expiry, ok := m.held[key]; ok && now.Before(expiry) {
		return false
	}
	m.held[key] = now.Add(ttl)
	return true
}

// Release frees the lease for key. Releasing a key that is not held is a
// no-op.
func (m *Memory) Release(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, key)
}
