package status

import (
	"time"

	"github.com/udisondev/statusfx/internal/game/combat"
	"github.com/udisondev/statusfx/internal/model"
)

// Base supplies the neutral implementation of every optional capability.
// Effect kinds embed it and override what they change.
type Base struct{}

func (Base) Targetability() Targetability { return Targetability{CanMove: true, CanBeCastUpon: true} }
func (Base) RenderTint() Color            { return White }
func (Base) RenderScale() float32         { return 1 }

func (Base) SpriteOverride(model.JobID, int, model.Sex, SpriteTable) *model.SpriteResource {
	return nil
}

func (Base) ContributeAttributes(*Modifiers) {}

func (Base) FilterIncomingDamage(o combat.Outcome) combat.Outcome { return o }

func (Base) FilterPush(Force) bool { return true }

func (Base) Render(model.Location, Clock, RenderSink) {}

func (Base) Completion(time.Time) (time.Time, float32, bool) { return time.Time{}, 0, false }

// Timing is the started/until window shared by expiring effects.
type Timing struct {
	Started time.Time
	Until   time.Time
}

// Expired reports whether the window has closed at now.
func (t Timing) Expired(now time.Time) bool {
	return !now.Before(t.Until)
}

// Progress reports the end time and the elapsed fraction in [0, 1].
func (t Timing) Progress(now time.Time) (time.Time, float32, bool) {
	return t.Until, elapsedFraction(now, t.Started, t.Until), true
}

// Extend moves Until forward to until. Never shortens.
func (t *Timing) Extend(until time.Time) {
	if until.After(t.Until) {
		t.Until = until
	}
}

func elapsedFraction(now, from, to time.Time) float32 {
	total := to.Sub(from)
	if total <= 0 {
		return 1
	}
	f := float64(now.Sub(from)) / float64(total)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return float32(f)
}
