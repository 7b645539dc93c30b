package status

import (
	"time"

	"github.com/udisondev/statusfx/internal/game/combat"
)

var shieldTint = Color{0.8, 0.8, 0.8, 1}

// DamageShield reduces incoming damage by a percentage.
// Params: "reduction" (percent 0-100, default 50), "blockPoison" (bool).
type DamageShield struct {
	Base
	Timing
	name        string
	reduction   int32
	blockPoison bool
}

func NewDamageShield(p Params) Status {
	reduction := p.Int("reduction", 50)
	reduction = max(0, min(100, reduction))
	return &DamageShield{
		Timing:      p.timing(),
		name:        p.name("DamageShield"),
		reduction:   reduction,
		blockPoison: p.Bool("blockPoison", false),
	}
}

func (e *DamageShield) Name() string { return e.name }

func (e *DamageShield) Duplicate() Status {
	c := *e
	return &c
}

func (e *DamageShield) Classification() Classification { return Supportive }
func (e *DamageShield) RenderTint() Color              { return shieldTint }

func (e *DamageShield) FilterIncomingDamage(o combat.Outcome) combat.Outcome {
	switch o.Kind {
	case combat.OutcomePoison:
		if e.blockPoison {
			return o.Blocked()
		}
		return o
	case combat.OutcomeDamage, combat.OutcomeCrit:
		return o.ScaledDamage(100 - e.reduction)
	default:
		return o
	}
}

func (e *DamageShield) Tick(tc *TickContext) UpdateResult {
	if e.Expired(tc.Now()) {
		return Remove
	}
	return Keep
}

func (e *DamageShield) Completion(now time.Time) (time.Time, float32, bool) {
	return e.Progress(now)
}

// Merge keeps one shield per kind and extends it.
func (e *DamageShield) Merge(incoming Status) StackingResult {
	if other, ok := incoming.(*DamageShield); ok {
		e.Extend(other.Until)
	}
	return DropIncoming
}
