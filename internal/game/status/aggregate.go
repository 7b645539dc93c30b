package status

import (
	"reflect"
	"slices"
	"time"

	"github.com/udisondev/statusfx/internal/game/combat"
	"github.com/udisondev/statusfx/internal/model"
)

// Attributes clears and refills the cached accumulator from every active
// status in slot order (reserved slots first).
//
// The returned accumulator is owned by the set and reused by the next call.
// Concurrent callers should use ApplyAttributes instead.
func (s *Set) Attributes() *Modifiers {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collectLocked()
	return s.mods
}

// ApplyAttributes folds every active modifier over base and returns the
// result. Safe for concurrent use.
func (s *Set) ApplyAttributes(base model.Attributes) model.Attributes {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collectLocked()
	return s.mods.ApplyTo(base)
}

func (s *Set) collectLocked() {
	s.mods.Clear()
	for _, st := range s.slots[:s.hwm] {
		if st != nil {
			st.ContributeAttributes(s.mods)
		}
	}
}

// RenderTint multiplies every active tint into opaque white.
func (s *Set) RenderTint() Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	tint := White
	for _, st := range s.slots[:s.hwm] {
		if st != nil {
			tint = tint.Mul(st.RenderTint())
		}
	}
	return tint
}

// RenderScale multiplies every active render scale.
func (s *Set) RenderScale() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	scale := float32(1)
	for _, st := range s.slots[:s.hwm] {
		if st != nil {
			scale *= st.RenderScale()
		}
	}
	return scale
}

// SpriteOverride starts from the base sprite for job/sex and lets each
// active status replace it in slot order. The last override wins.
func (s *Set) SpriteOverride(job model.JobID, head int, sex model.Sex, table SpriteTable) *model.SpriteResource {
	var sprite *model.SpriteResource
	if table != nil {
		sprite = table.Character(job, sex)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.slots[:s.hwm] {
		if st == nil {
			continue
		}
		if spr := st.SpriteOverride(job, head, sex, table); spr != nil {
			sprite = spr
		}
	}
	return sprite
}

// Render emits overlays. Only the first status of each concrete effect
// type renders; later instances of that type are suppressed even when
// they come from differently named templates.
func (s *Set) Render(pos model.Location, clock Clock, sink RenderSink) {
	if sink == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rendered := make([]reflect.Type, 0, 8)
	for _, st := range s.slots[:s.hwm] {
		if st == nil {
			continue
		}
		typ := reflect.TypeOf(st)
		if slices.Contains(rendered, typ) {
			continue
		}
		st.Render(pos, clock, sink)
		rendered = append(rendered, typ)
	}
}

// LargestRemainingTimeFraction returns the elapsed fraction of the status
// that ends last. A candidate replaces the current pick only if it ends
// strictly later. ok is false if no status reports completion.
func (s *Set) LargestRemainingTimeFraction(now time.Time) (float32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		found    bool
		bestEnd  time.Time
		bestFrac float32
	)
	for _, st := range s.slots[:s.hwm] {
		if st == nil {
			continue
		}
		endsAt, frac, ok := st.Completion(now)
		if !ok {
			continue
		}
		if !found || endsAt.After(bestEnd) {
			found = true
			bestEnd = endsAt
			bestFrac = frac
		}
	}
	return bestFrac, found
}

// AllowPush asks every active status whether f may move the character.
func (s *Set) AllowPush(f Force) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	allow := true
	for _, st := range s.slots[:s.hwm] {
		if st != nil {
			// Every status sees the force, even after a veto.
			allow = st.FilterPush(f) && allow
		}
	}
	return allow
}

// FilterIncomingDamage runs o through every active status in slot order.
func (s *Set) FilterIncomingDamage(o combat.Outcome) combat.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.slots[:s.hwm] {
		if st != nil {
			o = st.FilterIncomingDamage(o)
		}
	}
	return o
}

// CanMove reports whether no active status pins the character.
func (s *Set) CanMove() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.slots[:s.hwm] {
		if st != nil && !st.Targetability().CanMove {
			return false
		}
	}
	return true
}

// CanBeCastUpon reports whether further casts may target the character.
func (s *Set) CanBeCastUpon() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.slots[:s.hwm] {
		if st != nil && !st.Targetability().CanBeCastUpon {
			return false
		}
	}
	return true
}
