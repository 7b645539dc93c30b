package status

import (
	"time"

	"github.com/udisondev/statusfx/internal/model"
)

// Transform swaps the character sprite for a transformation model.
// Params: "transformID" (int32), "scale" (float, default 1).
type Transform struct {
	Base
	Timing
	name        string
	transformID int32
	scale       float32
}

func NewTransform(p Params) Status {
	return &Transform{
		Timing:      p.timing(),
		name:        p.name("Transform"),
		transformID: p.Int("transformID", 0),
		scale:       float32(p.Float("scale", 1)),
	}
}

// TransformID returns the transformation template ID.
func (e *Transform) TransformID() int32 { return e.transformID }

func (e *Transform) Name() string { return e.name }

func (e *Transform) Duplicate() Status {
	c := *e
	return &c
}

func (e *Transform) Classification() Classification { return Supportive }
func (e *Transform) RenderScale() float32           { return e.scale }

func (e *Transform) SpriteOverride(_ model.JobID, _ int, sex model.Sex, table SpriteTable) *model.SpriteResource {
	if table == nil {
		return nil
	}
	return table.Transformed(e.transformID, sex)
}

func (e *Transform) Tick(tc *TickContext) UpdateResult {
	if e.Expired(tc.Now()) {
		return Remove
	}
	return Keep
}

func (e *Transform) Completion(now time.Time) (time.Time, float32, bool) {
	return e.Progress(now)
}

// Merge keeps one transformation per kind. A different model replaces the
// current one outright; the same model only has its expiry extended.
func (e *Transform) Merge(incoming Status) StackingResult {
	other, ok := incoming.(*Transform)
	if !ok {
		return AddAsNewInstance
	}
	if other.transformID != e.transformID {
		e.Timing = other.Timing
		e.transformID = other.transformID
		e.scale = other.scale
		return DropIncoming
	}
	e.Extend(other.Until)
	return DropIncoming
}
