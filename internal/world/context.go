package world

import (
	"sync"
	"time"

	"github.com/udisondev/statusfx/internal/game/combat"
)

// ManualClock is a simulation clock advanced explicitly by the tick loop.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock set to start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current simulation time.
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set moves the clock to t. Time never goes backwards.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.After(c.now) {
		c.now = t
	}
}

// Advance moves the clock forward by d and returns the new time.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return c.now
}

// AttackQueue collects attacks produced during a parallel tick.
type AttackQueue struct {
	mu      sync.Mutex
	pending []combat.Attack
}

func NewAttackQueue() *AttackQueue {
	return &AttackQueue{pending: make([]combat.Attack, 0, 32)}
}

// Push enqueues an attack (concurrent-safe).
func (q *AttackQueue) Push(a combat.Attack) {
	q.mu.Lock()
	q.pending = append(q.pending, a)
	q.mu.Unlock()
}

// Drain returns queued attacks in push order and empties the queue.
func (q *AttackQueue) Drain() []combat.Attack {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = make([]combat.Attack, 0, cap(out))
	return out
}

// DeferredQueue holds commands to run once the parallel tick is over.
type DeferredQueue struct {
	mu  sync.Mutex
	fns []func()
}

// Defer implements status.CommandSink.
func (q *DeferredQueue) Defer(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.fns = append(q.fns, fn)
	q.mu.Unlock()
}

// Flush runs every deferred command in order. Returns how many ran.
func (q *DeferredQueue) Flush() int {
	q.mu.Lock()
	fns := q.fns
	q.fns = nil
	q.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}
