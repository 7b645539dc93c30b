package status

import "time"

var slowTint = Color{0.7, 0.7, 1, 1}

// SpeedChange modifies walking speed by a percentage for a duration.
// Params: "value" (percent, negative slows).
//
// Reapplying refreshes the active instance instead of stacking.
type SpeedChange struct {
	Base
	Timing
	name     string
	casterID uint32
	percent  float64
}

func NewSpeedChange(p Params) Status {
	return &SpeedChange{
		Timing:   p.timing(),
		name:     p.name("SpeedChange"),
		casterID: p.CasterID,
		percent:  p.Float("value", 0),
	}
}

// Percent returns the speed change in percent.
func (e *SpeedChange) Percent() float64 { return e.percent }

func (e *SpeedChange) Name() string { return e.name }

func (e *SpeedChange) Duplicate() Status {
	c := *e
	return &c
}

func (e *SpeedChange) Classification() Classification {
	if e.percent < 0 {
		return Harmful
	}
	return Supportive
}

func (e *SpeedChange) RenderTint() Color {
	if e.percent < 0 {
		return slowTint
	}
	return White
}

func (e *SpeedChange) ContributeAttributes(m *Modifiers) {
	m.Push(Modifier{Stat: StatWalkingSpeed, Type: ModPercent, Value: e.percent})
}

func (e *SpeedChange) Tick(tc *TickContext) UpdateResult {
	if e.Expired(tc.Now()) {
		return Remove
	}
	return Keep
}

func (e *SpeedChange) Completion(now time.Time) (time.Time, float32, bool) {
	return e.Progress(now)
}

// Merge refreshes the active instance: later expiry wins, and a stronger
// incoming value replaces a weaker one.
func (e *SpeedChange) Merge(incoming Status) StackingResult {
	other, ok := incoming.(*SpeedChange)
	if !ok {
		return AddAsNewInstance
	}
	e.Extend(other.Until)
	if abs(other.percent) > abs(e.percent) {
		e.percent = other.percent
		e.casterID = other.casterID
	}
	return DropIncoming
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
