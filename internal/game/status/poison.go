package status

import (
	"time"

	"github.com/udisondev/statusfx/internal/game/combat"
	"github.com/udisondev/statusfx/internal/model"
)

const (
	// PoisonDamage is dealt once per PoisonTickInterval.
	PoisonDamage = 30
	// PoisonTickInterval separates two poison damage events.
	PoisonTickInterval = time.Second
	// DefaultPoisonDuration is used when poison is applied by kind only.
	DefaultPoisonDuration = 5 * time.Second
)

var poisonTint = Color{0.5, 1, 0.5, 1}

// Poison deals periodic damage attributed to its caster.
// It lives in a reserved slot; reapplication goes through Set.AddPoison,
// which replaces the instance and keeps the later expiry.
type Poison struct {
	Base
	casterID     uint32
	started      time.Time
	until        time.Time
	nextDamageAt time.Time
	damage       int32
}

// NewPoison creates a poison whose first damage lands one tick after started.
func NewPoison(casterID uint32, started, until time.Time) *Poison {
	return &Poison{
		casterID:     casterID,
		started:      started,
		until:        until,
		nextDamageAt: started.Add(PoisonTickInterval),
		damage:       PoisonDamage,
	}
}

// CasterID returns the entity damage is attributed to.
func (p *Poison) CasterID() uint32 { return p.casterID }

// Started returns when the poison was applied.
func (p *Poison) Started() time.Time { return p.started }

// Until returns the expiry.
func (p *Poison) Until() time.Time { return p.until }

// NextDamageAt returns when the next damage event is due.
func (p *Poison) NextDamageAt() time.Time { return p.nextDamageAt }

func (p *Poison) Name() string { return "Poison" }

func (p *Poison) Duplicate() Status {
	c := *p
	return &c
}

func (p *Poison) Classification() Classification { return Harmful }
func (p *Poison) RenderTint() Color              { return poisonTint }

func (p *Poison) Tick(tc *TickContext) UpdateResult {
	now := tc.Now()
	if !now.Before(p.until) {
		return Remove
	}
	if !now.Before(p.nextDamageAt) {
		tc.World.PushAttack(combat.Attack{
			SrcID:  p.casterID,
			DstID:  tc.Self,
			Type:   combat.AttackPoison,
			Amount: p.damage,
		})
		p.nextDamageAt = now.Add(PoisonTickInterval)
	}
	return Keep
}

func (p *Poison) Render(pos model.Location, _ Clock, sink RenderSink) {
	sink.DrawText("quagmire", pos, p.started)
}

func (p *Poison) Completion(now time.Time) (time.Time, float32, bool) {
	return p.until, elapsedFraction(now, p.started, p.until), true
}

// Merge always reports AddAsNewInstance; stacking is reconciled by
// Set.AddPoison, which owns the reserved slot.
func (p *Poison) Merge(Status) StackingResult { return AddAsNewInstance }
