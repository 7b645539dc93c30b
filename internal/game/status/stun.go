package status

import (
	"log/slog"
	"time"

	"github.com/udisondev/statusfx/internal/model"
)

// DefaultStunDuration is used when a stun is applied by kind only.
const DefaultStunDuration = 2 * time.Second

var stunTint = Color{0.6, 0.6, 0.6, 1}

// Stun pins the character in place until it expires.
type Stun struct {
	Base
	Timing
}

// NewStun creates a Stun lasting from started to until.
func NewStun(started, until time.Time) *Stun {
	return &Stun{Timing: Timing{Started: started, Until: until}}
}

func (s *Stun) Name() string { return "Stun" }

func (s *Stun) Duplicate() Status {
	c := *s
	return &c
}

func (s *Stun) Classification() Classification { return Harmful }
func (s *Stun) RenderTint() Color              { return stunTint }

func (s *Stun) Targetability() Targetability {
	return Targetability{CanMove: false, CanBeCastUpon: true}
}

func (s *Stun) Tick(tc *TickContext) UpdateResult {
	if s.Expired(tc.Now()) {
		slog.Debug("stun expired", "target", tc.Self)
		return Remove
	}
	return Keep
}

func (s *Stun) Render(pos model.Location, _ Clock, sink RenderSink) {
	sink.DrawText("stunned", pos, s.Started)
}

func (s *Stun) Completion(now time.Time) (time.Time, float32, bool) {
	return s.Progress(now)
}

// Merge keeps the longer stun.
func (s *Stun) Merge(incoming Status) StackingResult {
	if other, ok := incoming.(*Stun); ok {
		s.Extend(other.Until)
	}
	return DropIncoming
}
