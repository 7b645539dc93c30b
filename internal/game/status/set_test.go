package status

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/statusfx/internal/game/combat"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// fakeWorld records attacks pushed by ticking statuses.
type fakeWorld struct {
	now     time.Time
	attacks []combat.Attack
}

func (w *fakeWorld) Now() time.Time             { return w.now }
func (w *fakeWorld) PushAttack(a combat.Attack) { w.attacks = append(w.attacks, a) }

func tickAt(s *Set, w *fakeWorld, now time.Time) bool {
	w.now = now
	return s.Tick(TickContext{Self: 1, World: w})
}

// testStatus is a configurable secondary status.
type testStatus struct {
	Base
	name   string
	class  Classification
	tint   Color
	until  time.Time
	remove bool
	merge  StackingResult
	merged int
}

func newTestStatus(name string) *testStatus {
	return &testStatus{name: name, tint: White, merge: AddAsNewInstance}
}

func (s *testStatus) Name() string                   { return s.name }
func (s *testStatus) Classification() Classification { return s.class }
func (s *testStatus) RenderTint() Color              { return s.tint }

func (s *testStatus) Duplicate() Status {
	c := *s
	return &c
}

func (s *testStatus) Tick(*TickContext) UpdateResult {
	if s.remove {
		return Remove
	}
	return Keep
}

func (s *testStatus) Merge(Status) StackingResult {
	s.merged++
	return s.merge
}

func TestNewSet_Empty(t *testing.T) {
	s := NewSet()
	assert.Equal(t, MainKindCount, s.HighWaterMark())
	assert.Zero(t, s.Len())
	assert.False(t, s.IsMounted())
	assert.False(t, s.IsStunned())
	assert.False(t, s.IsPoisoned())
	assert.Empty(t, s.Snapshot())
}

func TestSet_AddRemoveAllCounts(t *testing.T) {
	tests := []struct {
		name string
		ops  []string // "add" or "clear"
		want int
	}{
		{"no ops", nil, 0},
		{"three adds", []string{"add", "add", "add"}, 3},
		{"add then clear", []string{"add", "add", "clear"}, 0},
		{"clear then add", []string{"add", "clear", "add", "add"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet()
			for i, op := range tt.ops {
				switch op {
				case "add":
					require.True(t, s.Add(newTestStatus(fmt.Sprintf("s%d", i))))
				case "clear":
					s.RemoveAll()
				}
				assert.LessOrEqual(t, s.HighWaterMark(), SlotCount)
			}
			assert.Equal(t, tt.want, s.SecondaryLen())
		})
	}
}

func TestSet_CapacityRejectsOverflow(t *testing.T) {
	s := NewSet()
	capacity := SlotCount - MainKindCount
	for i := range capacity {
		require.True(t, s.Add(newTestStatus(fmt.Sprintf("s%d", i))), "add %d", i)
	}
	assert.Equal(t, SlotCount, s.HighWaterMark())

	assert.False(t, s.Add(newTestStatus("overflow")))
	assert.Equal(t, capacity, s.SecondaryLen())
	assert.False(t, s.Has("overflow"))

	snap := s.Snapshot()
	require.Len(t, snap, capacity)
	for i, st := range snap {
		assert.Equal(t, fmt.Sprintf("s%d", i), st.Name())
	}

	// Main slots stay usable when the secondary region is full.
	s.SwitchMounted()
	assert.True(t, s.IsMounted())
}

func TestSet_AddNil(t *testing.T) {
	s := NewSet()
	assert.False(t, s.Add(nil))
	assert.False(t, s.Merge(nil))
}

func TestSet_AddRoutesBuiltinsToReservedSlots(t *testing.T) {
	s := NewSet()
	require.True(t, s.Add(NewStun(t0, t0.Add(time.Second))))
	require.True(t, s.Add(NewMounted()))
	require.True(t, s.Add(NewPoison(7, t0, t0.Add(time.Second))))

	assert.True(t, s.IsStunned())
	assert.True(t, s.IsMounted())
	assert.True(t, s.IsPoisoned())
	assert.Equal(t, MainKindCount, s.HighWaterMark())
	assert.Zero(t, s.SecondaryLen())
}

func TestSet_SwitchMounted(t *testing.T) {
	s := NewSet()

	s.SwitchMounted()
	assert.True(t, s.IsMounted())

	s.SwitchMounted()
	assert.False(t, s.IsMounted(), "second toggle dismounts")

	s.SwitchMounted()
	s.SwitchMounted()
	assert.False(t, s.IsMounted(), "two toggles return to empty")
}

func TestSet_RemoveMain(t *testing.T) {
	s := NewSet()
	s.AddStun(t0, t0.Add(time.Second))
	s.AddPoison(1, t0, t0.Add(time.Second))

	s.RemoveMain(MainStun)
	assert.False(t, s.IsStunned())
	assert.True(t, s.IsPoisoned())

	// Absent or invalid kinds are no-ops.
	s.RemoveMain(MainStun)
	s.RemoveMain(MainKind(99))
	assert.True(t, s.IsPoisoned())
}

func TestSet_RemoveByClassification(t *testing.T) {
	s := NewSet()
	good := newTestStatus("good")
	bad1 := newTestStatus("bad1")
	bad1.class = Harmful
	bad2 := newTestStatus("bad2")
	bad2.class = Harmful

	s.AddStun(t0, t0.Add(time.Second)) // harmful, but reserved
	require.True(t, s.Add(bad1))
	require.True(t, s.Add(good))
	require.True(t, s.Add(bad2))

	s.Remove(Harmful)

	assert.True(t, s.Has("good"))
	assert.False(t, s.Has("bad1"))
	assert.False(t, s.Has("bad2"))
	assert.True(t, s.IsStunned(), "reserved slots are not cleared by classification")

	s.Remove(Harmful)
	assert.Equal(t, 1, s.SecondaryLen())
}

func TestSet_RemoveAll(t *testing.T) {
	s := NewSet()
	s.SwitchMounted()
	s.AddPoison(1, t0, t0.Add(time.Second))
	require.True(t, s.Add(newTestStatus("a")))

	s.RemoveAll()
	assert.Zero(t, s.Len())
	assert.Equal(t, MainKindCount, s.HighWaterMark())
}

func TestSet_TickCompactsTrailingSlots(t *testing.T) {
	s := NewSet()
	w := &fakeWorld{}
	a, b, c := newTestStatus("a"), newTestStatus("b"), newTestStatus("c")
	for _, st := range []*testStatus{a, b, c} {
		require.True(t, s.Add(st))
	}
	assert.Equal(t, MainKindCount+3, s.HighWaterMark())

	// Removing a middle slot leaves a hole, hwm stays.
	b.remove = true
	assert.True(t, tickAt(s, w, t0))
	assert.Equal(t, MainKindCount+3, s.HighWaterMark())
	assert.Equal(t, 2, s.SecondaryLen())

	// Removing the tail reclaims the hole behind it too.
	c.remove = true
	assert.True(t, tickAt(s, w, t0))
	assert.Equal(t, MainKindCount+1, s.HighWaterMark())

	assert.False(t, tickAt(s, w, t0), "nothing changed")

	// New statuses go to the high-water mark.
	require.True(t, s.Add(newTestStatus("d")))
	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a", snap[0].Name())
	assert.Equal(t, "d", snap[1].Name())
}

func TestSet_MergePolicies(t *testing.T) {
	t.Run("drop incoming keeps one instance", func(t *testing.T) {
		s := NewSet()
		first := newTestStatus("x")
		first.merge = DropIncoming
		require.True(t, s.Merge(first))

		assert.False(t, s.Merge(newTestStatus("x")))
		assert.Equal(t, 1, s.SecondaryLen())
		assert.Equal(t, 1, first.merged)
	})

	t.Run("add as new instance stacks", func(t *testing.T) {
		s := NewSet()
		require.True(t, s.Merge(newTestStatus("x")))
		require.True(t, s.Merge(newTestStatus("x")))
		assert.Equal(t, 2, s.SecondaryLen())
	})

	t.Run("different kinds never merge", func(t *testing.T) {
		s := NewSet()
		first := newTestStatus("x")
		first.merge = DropIncoming
		require.True(t, s.Merge(first))
		require.True(t, s.Merge(newTestStatus("y")))
		assert.Zero(t, first.merged)
	})
}

func TestSet_MergeSpeedChangeRefreshes(t *testing.T) {
	s := NewSet()
	mk := func(value string, until time.Time) Status {
		st, err := CreateEffect("SpeedChange", Params{
			Started: t0,
			Until:   until,
			Values:  map[string]string{"value": value},
		})
		require.NoError(t, err)
		return st
	}

	require.True(t, s.Merge(mk("-20", t0.Add(5*time.Second))))
	assert.False(t, s.Merge(mk("-50", t0.Add(10*time.Second))))
	assert.Equal(t, 1, s.SecondaryLen())

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	sc := snap[0].(*SpeedChange)
	assert.Equal(t, -50.0, sc.Percent(), "stronger change wins")
	assert.Equal(t, t0.Add(10*time.Second), sc.Until)
}

func TestSet_MainReturnsCopy(t *testing.T) {
	s := NewSet()
	s.AddStun(t0, t0.Add(time.Second))

	st, ok := s.Main(MainStun)
	require.True(t, ok)
	st.(*Stun).Until = t0.Add(time.Hour)

	again, ok := s.Main(MainStun)
	require.True(t, ok)
	assert.Equal(t, t0.Add(time.Second), again.(*Stun).Until)

	_, ok = s.Main(MainMounted)
	assert.False(t, ok)
	_, ok = s.Main(MainKind(42))
	assert.False(t, ok)
}

func TestSet_StunExpires(t *testing.T) {
	s := NewSet()
	w := &fakeWorld{}
	s.AddStun(t0, t0.Add(2*time.Second))
	assert.False(t, s.CanMove())

	assert.False(t, tickAt(s, w, t0.Add(time.Second)))
	assert.True(t, s.IsStunned())

	assert.True(t, tickAt(s, w, t0.Add(2*time.Second)))
	assert.False(t, s.IsStunned())
	assert.True(t, s.CanMove())
}
