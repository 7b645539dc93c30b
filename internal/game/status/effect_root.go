package status

import (
	"log/slog"
	"time"

	"github.com/udisondev/statusfx/internal/model"
)

// Root disables movement and external pushes. Casts still land.
// No params needed.
type Root struct {
	Base
	Timing
	name string
}

func NewRoot(p Params) Status {
	return &Root{Timing: p.timing(), name: p.name("Root")}
}

func (e *Root) Name() string { return e.name }

func (e *Root) Duplicate() Status {
	c := *e
	return &c
}

func (e *Root) Classification() Classification { return Harmful }

func (e *Root) Targetability() Targetability {
	return Targetability{CanMove: false, CanBeCastUpon: true}
}

func (e *Root) FilterPush(Force) bool { return false }

func (e *Root) Tick(tc *TickContext) UpdateResult {
	if e.Expired(tc.Now()) {
		slog.Debug("root removed", "target", tc.Self)
		return Remove
	}
	return Keep
}

func (e *Root) Render(pos model.Location, _ Clock, sink RenderSink) {
	sink.DrawText("rooted", pos, e.Started)
}

func (e *Root) Completion(now time.Time) (time.Time, float32, bool) {
	return e.Progress(now)
}

func (e *Root) Merge(incoming Status) StackingResult {
	if other, ok := incoming.(*Root); ok {
		e.Extend(other.Until)
	}
	return DropIncoming
}
