package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/statusfx/internal/game/combat"
)

func poisonOf(t *testing.T, s *Set) *Poison {
	t.Helper()
	st, ok := s.Main(MainPoison)
	require.True(t, ok, "poison slot is empty")
	p, ok := st.(*Poison)
	require.True(t, ok)
	return p
}

func TestAddPoison_ExtendsToLaterExpiry(t *testing.T) {
	s := NewSet()
	t1 := t0.Add(3 * time.Second)
	t2 := t0.Add(8 * time.Second)

	s.AddPoison(1, t0, t1)
	s.AddPoison(2, t0.Add(time.Second), t2)

	p := poisonOf(t, s)
	assert.Equal(t, t2, p.Until())
	assert.Equal(t, uint32(2), p.CasterID(), "latest caster owns the damage")
	assert.Equal(t, 1, s.Len(), "exactly one poison instance")
	assert.Equal(t, MainKindCount, s.HighWaterMark())
}

func TestAddPoison_NeverShortens(t *testing.T) {
	s := NewSet()
	t1 := t0.Add(3 * time.Second)
	t2 := t0.Add(8 * time.Second)

	s.AddPoison(1, t0, t2)
	s.AddPoison(2, t0.Add(time.Second), t1)

	p := poisonOf(t, s)
	assert.Equal(t, t2, p.Until())
	assert.Equal(t, t0.Add(2*time.Second), p.NextDamageAt(), "fresh instance restarts the damage clock")
}

func TestAddPoison_ViaAddKeepsLaterExpiry(t *testing.T) {
	s := NewSet()
	t2 := t0.Add(8 * time.Second)

	require.True(t, s.Add(NewPoison(1, t0, t2)))
	require.True(t, s.Add(NewPoison(1, t0, t0.Add(time.Second))))

	assert.Equal(t, t2, poisonOf(t, s).Until())
}

func TestPoison_TickDamagesOncePerBoundary(t *testing.T) {
	s := NewSet()
	w := &fakeWorld{}
	s.AddPoison(9, t0, t0.Add(5*time.Second))

	steps := []struct {
		at          time.Duration
		wantAttacks int
	}{
		{0, 0},
		{500 * time.Millisecond, 0},
		{time.Second, 1},
		{1500 * time.Millisecond, 1},
		{2 * time.Second, 2},
		{4 * time.Second, 3},
		{4900 * time.Millisecond, 3},
	}
	for _, step := range steps {
		tickAt(s, w, t0.Add(step.at))
		assert.Len(t, w.attacks, step.wantAttacks, "at %s", step.at)
		assert.True(t, s.IsPoisoned(), "at %s", step.at)
	}

	for _, a := range w.attacks {
		assert.Equal(t, combat.Attack{SrcID: 9, DstID: 1, Type: combat.AttackPoison, Amount: PoisonDamage}, a)
	}

	assert.True(t, tickAt(s, w, t0.Add(5*time.Second)), "removed once until <= now")
	assert.False(t, s.IsPoisoned())
	assert.Len(t, w.attacks, 3, "no damage on the removal tick")
}

func TestPoison_SkippedTicksDoNotBurst(t *testing.T) {
	s := NewSet()
	w := &fakeWorld{}
	s.AddPoison(9, t0, t0.Add(10*time.Second))

	// Three boundaries crossed in one call: still a single event.
	tickAt(s, w, t0.Add(3500*time.Millisecond))
	assert.Len(t, w.attacks, 1)

	p := poisonOf(t, s)
	assert.Equal(t, t0.Add(4500*time.Millisecond), p.NextDamageAt())
}

func TestPoison_CompletionAndRender(t *testing.T) {
	p := NewPoison(1, t0, t0.Add(4*time.Second))

	until, frac, ok := p.Completion(t0.Add(time.Second))
	require.True(t, ok)
	assert.Equal(t, t0.Add(4*time.Second), until)
	assert.InDelta(t, 0.25, frac, 1e-6)

	sink := &recordingSink{}
	p.Render(origin, nil, sink)
	assert.Equal(t, []string{"quagmire"}, sink.texts)
	assert.Equal(t, Harmful, p.Classification())
}
