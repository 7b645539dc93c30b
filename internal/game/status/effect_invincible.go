package status

import (
	"time"

	"github.com/udisondev/statusfx/internal/game/combat"
)

var invincibleTint = Color{1, 1, 0.7, 1}

// Invincible blocks all incoming damage and further casts.
// No params needed.
type Invincible struct {
	Base
	Timing
	name string
}

func NewInvincible(p Params) Status {
	return &Invincible{Timing: p.timing(), name: p.name("Invincible")}
}

func (e *Invincible) Name() string { return e.name }

func (e *Invincible) Duplicate() Status {
	c := *e
	return &c
}

func (e *Invincible) Classification() Classification { return Supportive }
func (e *Invincible) RenderTint() Color              { return invincibleTint }

func (e *Invincible) Targetability() Targetability {
	return Targetability{CanMove: true, CanBeCastUpon: false}
}

func (e *Invincible) FilterIncomingDamage(o combat.Outcome) combat.Outcome {
	return o.Blocked()
}

func (e *Invincible) Tick(tc *TickContext) UpdateResult {
	if e.Expired(tc.Now()) {
		return Remove
	}
	return Keep
}

func (e *Invincible) Completion(now time.Time) (time.Time, float32, bool) {
	return e.Progress(now)
}

func (e *Invincible) Merge(incoming Status) StackingResult {
	if other, ok := incoming.(*Invincible); ok {
		e.Extend(other.Until)
	}
	return DropIncoming
}
