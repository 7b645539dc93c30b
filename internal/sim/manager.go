// Package sim drives the status engine: it owns the message inbox and runs
// one simulation step per tick.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/statusfx/internal/game/status"
	"github.com/udisondev/statusfx/internal/world"
)

// DefaultInterval is the step period used by Start.
const DefaultInterval = 100 * time.Millisecond

// Config tunes the tick manager.
type Config struct {
	// Interval between steps driven by Start.
	Interval time.Duration
	// Workers bounds the number of sets ticked in parallel. <= 0 means GOMAXPROCS.
	Workers int
}

// StepStats summarizes one step.
type StepStats struct {
	Messages int
	Ticked   int
	Changed  int
	Deferred int
	Attacks  int
	Damage   int64
	Deaths   int
}

// TickManager dispatches queued status messages and ticks every
// character's status set.
type TickManager struct {
	world      *world.World
	dispatcher *status.Dispatcher
	ids        status.IDAllocator
	deferred   world.DeferredQueue

	interval time.Duration
	workers  int

	inboxMu sync.Mutex
	inbox   []status.Message

	steps atomic.Uint64
}

// NewTickManager creates a tick manager over w.
func NewTickManager(w *world.World, dispatcher *status.Dispatcher, ids status.IDAllocator, cfg Config) *TickManager {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return &TickManager{
		world:      w,
		dispatcher: dispatcher,
		ids:        ids,
		interval:   cfg.Interval,
		workers:    cfg.Workers,
	}
}

// Post queues messages for the next step (concurrent-safe).
func (m *TickManager) Post(msgs ...status.Message) {
	if len(msgs) == 0 {
		return
	}
	m.inboxMu.Lock()
	m.inbox = append(m.inbox, msgs...)
	m.inboxMu.Unlock()
}

// Pending returns the number of queued messages.
func (m *TickManager) Pending() int {
	m.inboxMu.Lock()
	defer m.inboxMu.Unlock()
	return len(m.inbox)
}

// Steps returns how many steps have completed.
func (m *TickManager) Steps() uint64 {
	return m.steps.Load()
}

func (m *TickManager) takeInbox() []status.Message {
	m.inboxMu.Lock()
	defer m.inboxMu.Unlock()
	msgs := m.inbox
	m.inbox = nil
	return msgs
}

// Step runs one simulation step at now:
//  1. the world clock moves to now;
//  2. queued messages are dispatched in order on the calling goroutine;
//  3. every character's set ticks in parallel;
//  4. deferred commands run, then queued attacks are resolved.
func (m *TickManager) Step(ctx context.Context, now time.Time) (StepStats, error) {
	var stats StepStats

	m.world.Clock().Set(now)

	msgs := m.takeInbox()
	m.dispatcher.Dispatch(msgs...)
	stats.Messages = len(msgs)

	chars := m.world.Characters()
	var changed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for _, c := range chars {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tc := status.TickContext{
				Self:     c.ID(),
				Position: c.Location(),
				World:    m.world,
				IDs:      m.ids,
				Deferred: &m.deferred,
			}
			if c.Statuses().Tick(tc) {
				changed.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, fmt.Errorf("ticking statuses: %w", err)
	}
	stats.Ticked = len(chars)
	stats.Changed = int(changed.Load())

	stats.Deferred = m.deferred.Flush()

	for _, a := range m.world.DrainAttacks() {
		target, ok := m.world.Character(a.DstID)
		wasAlive := ok && !target.IsDead()
		outcome, ok := m.world.ResolveAttack(a)
		if !ok {
			continue
		}
		stats.Attacks++
		stats.Damage += int64(outcome.Damage)
		if wasAlive && target.IsDead() {
			stats.Deaths++
		}
	}

	m.steps.Add(1)
	return stats, nil
}

// Start runs Step on every interval until ctx is canceled.
func (m *TickManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	slog.Info("status tick manager started",
		"interval", m.interval,
		"workers", m.workers)

	clock := m.world.Clock()
	for {
		select {
		case <-ctx.Done():
			slog.Info("status tick manager stopping", "steps", m.steps.Load())
			return ctx.Err()

		case <-ticker.C:
			stats, err := m.Step(ctx, clock.Now().Add(m.interval))
			if err != nil {
				return err
			}
			if stats.Messages > 0 || stats.Attacks > 0 {
				slog.Debug("status step completed",
					"messages", stats.Messages,
					"changed", stats.Changed,
					"attacks", stats.Attacks,
					"damage", stats.Damage,
					"deaths", stats.Deaths)
			}
		}
	}
}
