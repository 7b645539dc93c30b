package status

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/statusfx/internal/game/area"
)

// Targets resolves message targets to their status sets.
type Targets interface {
	// StatusSet returns the set of a live character.
	StatusSet(id uint32) (*Set, bool)
	// ForEachInArea calls fn for every character whose position lies in
	// shape placed at pose.
	ForEachInArea(shape area.Shape, pose area.Pose, fn func(id uint32, set *Set))
}

// Dispatcher is the single mutation entry point for status messages.
// Failures (unknown target, full set) are logged and absorbed; dispatch
// never fails the tick.
//
// Not safe for concurrent use: run it once per tick before parallel
// queries start.
type Dispatcher struct {
	targets        Targets
	clock          Clock
	stunDuration   time.Duration
	poisonDuration time.Duration
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithStunDuration sets the duration of stuns applied by kind.
func WithStunDuration(d time.Duration) DispatcherOption {
	return func(disp *Dispatcher) { disp.stunDuration = d }
}

// WithPoisonDuration sets the duration of poisons applied by kind.
func WithPoisonDuration(d time.Duration) DispatcherOption {
	return func(disp *Dispatcher) { disp.poisonDuration = d }
}

// NewDispatcher creates a Dispatcher resolving targets through targets.
func NewDispatcher(targets Targets, clock Clock, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		targets:        targets,
		clock:          clock,
		stunDuration:   DefaultStunDuration,
		poisonDuration: DefaultPoisonDuration,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch applies messages in order. Nil and unknown messages are logged
// and skipped.
func (d *Dispatcher) Dispatch(msgs ...Message) {
	for _, msg := range msgs {
		switch m := msg.(type) {
		case ApplyStatus:
			d.ApplyStatus(m)
		case *ApplyStatus:
			if m == nil {
				slog.Warn("nil status message", "type", "ApplyStatus")
				continue
			}
			d.ApplyStatus(*m)
		case ApplyStatusInArea:
			d.ApplyStatusInArea(m)
		case *ApplyStatusInArea:
			if m == nil {
				slog.Warn("nil status message", "type", "ApplyStatusInArea")
				continue
			}
			d.ApplyStatusInArea(*m)
		case RemoveStatus:
			d.RemoveStatus(m)
		case *RemoveStatus:
			if m == nil {
				slog.Warn("nil status message", "type", "RemoveStatus")
				continue
			}
			d.RemoveStatus(*m)
		case nil:
			slog.Warn("nil status message")
		default:
			slog.Warn("unknown status message", "type", fmt.Sprintf("%T", msg))
		}
	}
}

// ApplyStatus applies m.Payload to m.TargetID.
func (d *Dispatcher) ApplyStatus(m ApplyStatus) {
	set, ok := d.targets.StatusSet(m.TargetID)
	if !ok {
		slog.Debug("apply status: target not found",
			"source", m.SourceID,
			"target", m.TargetID)
		return
	}
	d.apply(m.SourceID, m.TargetID, set, m.Payload)
}

// ApplyStatusInArea applies a copy of m.Payload to every character in the
// area except m.ExceptID. Returns the number of targets affected.
func (d *Dispatcher) ApplyStatusInArea(m ApplyStatusInArea) int {
	if m.Shape == nil {
		slog.Debug("apply status in area: nil shape", "source", m.SourceID)
		return 0
	}
	applied := 0
	d.targets.ForEachInArea(m.Shape, m.Pose, func(id uint32, set *Set) {
		if m.ExceptID != 0 && id == m.ExceptID {
			return
		}
		d.apply(m.SourceID, id, set, m.Payload.Clone())
		applied++
	})
	return applied
}

// RemoveStatus removes the statuses selected by m.Payload from m.TargetID.
func (d *Dispatcher) RemoveStatus(m RemoveStatus) {
	set, ok := d.targets.StatusSet(m.TargetID)
	if !ok {
		slog.Debug("remove status: target not found",
			"source", m.SourceID,
			"target", m.TargetID)
		return
	}
	if kind, ok := m.Payload.Main(); ok {
		set.RemoveMain(kind)
		return
	}
	if c, ok := m.Payload.Classification(); ok {
		set.Remove(c)
	}
}

func (d *Dispatcher) apply(sourceID, targetID uint32, set *Set, p Payload) {
	if kind, ok := p.Main(); ok {
		now := d.clock.Now()
		switch kind {
		case MainMounted:
			set.SwitchMounted()
		case MainStun:
			set.AddStun(now, now.Add(d.stunDuration))
		case MainPoison:
			set.AddPoison(sourceID, now, now.Add(d.poisonDuration))
		default:
			slog.Warn("apply status: unknown main kind", "kind", kind, "target", targetID)
		}
		return
	}

	st, ok := p.Secondary()
	if !ok {
		return
	}
	if !set.Merge(st) {
		slog.Debug("status not applied",
			"status", st.Name(),
			"source", sourceID,
			"target", targetID)
	}
}
