package status

import (
	"time"

	"github.com/udisondev/statusfx/internal/game/combat"
	"github.com/udisondev/statusfx/internal/model"
)

var burnTint = Color{1, 0.6, 0.6, 1}

// DamageOverTime deals periodic damage attributed to its caster.
// Params: "power" (int32 per tick), "intervalMs" (default 1000),
// "burstOnExpire" (int32 dealt once when the effect runs out).
//
// Instances from different casts stack independently.
type DamageOverTime struct {
	Base
	Timing
	name     string
	casterID uint32
	power    int32
	interval time.Duration
	nextAt   time.Time
	burst    int32
}

func NewDamageOverTime(p Params) Status {
	interval := time.Duration(p.Int("intervalMs", 1000)) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}
	return &DamageOverTime{
		Timing:   p.timing(),
		name:     p.name("DamageOverTime"),
		casterID: p.CasterID,
		power:    p.Int("power", 0),
		interval: interval,
		nextAt:   p.Started.Add(interval),
		burst:    p.Int("burstOnExpire", 0),
	}
}

func (e *DamageOverTime) Name() string { return e.name }

func (e *DamageOverTime) Duplicate() Status {
	c := *e
	return &c
}

func (e *DamageOverTime) Classification() Classification { return Harmful }
func (e *DamageOverTime) RenderTint() Color              { return burnTint }

func (e *DamageOverTime) Tick(tc *TickContext) UpdateResult {
	now := tc.Now()
	if e.Expired(now) {
		e.detonate(tc)
		return Remove
	}
	if e.power > 0 && !now.Before(e.nextAt) {
		tc.World.PushAttack(combat.Attack{
			SrcID:  e.casterID,
			DstID:  tc.Self,
			Type:   combat.AttackBurn,
			Amount: e.power,
		})
		e.nextAt = now.Add(e.interval)
	}
	return Keep
}

// detonate spawns the expiry burst as its own effect object. The burst
// attack is queued only after every set has finished ticking.
func (e *DamageOverTime) detonate(tc *TickContext) {
	if e.burst <= 0 {
		return
	}
	a := combat.Attack{
		SrcID:  e.casterID,
		DstID:  tc.Self,
		Type:   combat.AttackBurn,
		Amount: e.burst,
	}
	if tc.IDs != nil {
		a.EffectID = tc.IDs.NextID()
	}
	world := tc.World
	if tc.Deferred == nil {
		world.PushAttack(a)
		return
	}
	tc.Deferred.Defer(func() { world.PushAttack(a) })
}

func (e *DamageOverTime) Render(pos model.Location, _ Clock, sink RenderSink) {
	sink.DrawText("burning", pos, e.Started)
}

func (e *DamageOverTime) Completion(now time.Time) (time.Time, float32, bool) {
	return e.Progress(now)
}

func (e *DamageOverTime) Merge(Status) StackingResult { return AddAsNewInstance }
