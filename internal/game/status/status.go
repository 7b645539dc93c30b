// Package status implements the per-character status-effect engine:
// the Status capability contract, the fixed-capacity Set that holds active
// effects, the built-in main statuses (Mounted, Stun, Poison), a registry
// for externally defined secondary effects, and the messages used to add or
// remove statuses from outside the subsystem.
package status

import (
	"fmt"
	"time"

	"github.com/udisondev/statusfx/internal/game/combat"
	"github.com/udisondev/statusfx/internal/model"
)

// Classification drives bulk removal (cleanse/dispel).
type Classification uint8

const (
	Supportive Classification = iota
	Harmful
)

func (c Classification) String() string {
	switch c {
	case Supportive:
		return "supportive"
	case Harmful:
		return "harmful"
	default:
		return fmt.Sprintf("Classification(%d)", uint8(c))
	}
}

// UpdateResult is returned by Status.Tick.
type UpdateResult uint8

const (
	Keep UpdateResult = iota
	Remove
)

// StackingResult is the reapplication policy returned by Status.Merge.
type StackingResult uint8

const (
	AddAsNewInstance StackingResult = iota
	DropIncoming
)

// Targetability reports what the affected character may still undergo.
type Targetability struct {
	CanMove       bool // can be moved while affected
	CanBeCastUpon bool // can be targeted by further casts
}

// Color is a multiplicative RGBA tint.
type Color [4]float32

// White is the neutral tint.
var White = Color{1, 1, 1, 1}

// Mul multiplies two tints component-wise.
func (c Color) Mul(o Color) Color {
	for i := range c {
		c[i] *= o[i]
	}
	return c
}

// Force is an external push (knockback, pull) about to be applied to a
// character.
type Force struct {
	SrcID uint32
	X, Y  float32
}

// Clock provides the current simulation time.
type Clock interface {
	Now() time.Time
}

// WorldContext is the mutable simulation context handed to Tick.
// Implementations must be safe for concurrent use: the tick manager runs
// many sets in parallel against one context.
type WorldContext interface {
	Clock
	// PushAttack enqueues a follow-on damage event.
	PushAttack(a combat.Attack)
}

// IDAllocator hands out object IDs for entities created during a tick.
type IDAllocator interface {
	NextID() uint32
}

// CommandSink defers work until after the parallel tick completes.
type CommandSink interface {
	Defer(fn func())
}

// TickContext bundles everything an effect may touch while ticking.
type TickContext struct {
	Self     uint32
	Position model.Location
	World    WorldContext
	IDs      IDAllocator
	Deferred CommandSink
}

// Now is a shorthand for tc.World.Now().
func (tc *TickContext) Now() time.Time {
	return tc.World.Now()
}

// SpriteTable is a read-only sprite lookup keyed by job and sex.
type SpriteTable interface {
	Character(job model.JobID, sex model.Sex) *model.SpriteResource
	Mounted(job model.JobID, sex model.Sex) *model.SpriteResource
	Transformed(transformID int32, sex model.Sex) *model.SpriteResource
}

// RenderSink accepts overlay draw commands. Write-only.
type RenderSink interface {
	DrawText(text string, pos model.Location, startedAt time.Time)
	DrawSprite(sprite *model.SpriteResource, pos model.Location, scale float32, tint Color)
}

// Status is the capability contract every effect kind implements.
//
// Methods may mutate the receiver (Tick, Merge, FilterIncomingDamage,
// FilterPush); they are only ever called with the owning Set locked.
type Status interface {
	// Name identifies the effect kind. Two statuses with the same name are
	// "the same kind" for stacking and render de-duplication.
	Name() string
	// Duplicate returns an independent copy with identical current state.
	Duplicate() Status
	Classification() Classification
	Targetability() Targetability
	RenderTint() Color
	RenderScale() float32
	// SpriteOverride returns a replacement sprite or nil.
	SpriteOverride(job model.JobID, head int, sex model.Sex, table SpriteTable) *model.SpriteResource
	// ContributeAttributes pushes zero or more modifiers into m.
	ContributeAttributes(m *Modifiers)
	Tick(tc *TickContext) UpdateResult
	FilterIncomingDamage(o combat.Outcome) combat.Outcome
	FilterPush(f Force) bool
	Render(pos model.Location, clock Clock, sink RenderSink)
	// Completion returns when the effect ends and how much of it elapsed.
	// ok is false for effects with no natural end.
	Completion(now time.Time) (endsAt time.Time, fraction float32, ok bool)
	// Merge decides what happens when incoming is applied while the
	// receiver is active. The receiver may absorb incoming (e.g. refresh its
	// expiry) and return DropIncoming.
	Merge(incoming Status) StackingResult
}
