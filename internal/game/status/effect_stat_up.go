package status

import (
	"log/slog"
	"strings"
	"time"
)

// StatUp applies one attribute modifier for a duration.
// Params: "stat" (e.g. "attackDamage"), "type" ("ADD"/"PERCENT"/"MUL",
// default "ADD"), "value" (float64), "harmful" (bool, default false).
//
// Different sources stack as separate instances.
type StatUp struct {
	Base
	Timing
	name    string
	stat    Stat
	mType   ModType
	value   float64
	harmful bool
	valid   bool
}

func NewStatUp(p Params) Status {
	e := &StatUp{
		Timing:  p.timing(),
		name:    p.name("StatUp"),
		value:   p.Float("value", 0),
		harmful: p.Bool("harmful", false),
	}
	e.stat, e.valid = ParseStat(p.Values["stat"])
	if !e.valid {
		slog.Warn("stat up with unknown stat, contributes nothing",
			"status", e.name,
			"stat", p.Values["stat"])
	}
	switch strings.ToUpper(p.Values["type"]) {
	case "PERCENT":
		e.mType = ModPercent
	case "MUL":
		e.mType = ModMul
	default:
		e.mType = ModAdd
	}
	return e
}

func (e *StatUp) Name() string { return e.name }

func (e *StatUp) Duplicate() Status {
	c := *e
	return &c
}

func (e *StatUp) Classification() Classification {
	if e.harmful {
		return Harmful
	}
	return Supportive
}

func (e *StatUp) ContributeAttributes(m *Modifiers) {
	if !e.valid {
		return
	}
	m.Push(Modifier{Stat: e.stat, Type: e.mType, Value: e.value})
}

func (e *StatUp) Tick(tc *TickContext) UpdateResult {
	if e.Expired(tc.Now()) {
		return Remove
	}
	return Keep
}

func (e *StatUp) Completion(now time.Time) (time.Time, float32, bool) {
	return e.Progress(now)
}

func (e *StatUp) Merge(Status) StackingResult { return AddAsNewInstance }
