package sim

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/statusfx/internal/game/status"
)

// beacon spawns one marker object on its first tick and registers it from
// a deferred command.
type beacon struct {
	status.Base
	spawned  bool
	registry *spawnLog
}

type spawnLog struct {
	mu  sync.Mutex
	ids []uint32
}

func (b *beacon) Name() string { return "Beacon" }

func (b *beacon) Classification() status.Classification { return status.Supportive }

func (b *beacon) Merge(status.Status) status.StackingResult { return status.DropIncoming }

func (b *beacon) Duplicate() status.Status {
	c := *b
	return &c
}

func (b *beacon) Tick(tc *status.TickContext) status.UpdateResult {
	if b.spawned {
		return status.Keep
	}
	b.spawned = true
	id := tc.IDs.NextID()
	log := b.registry
	tc.Deferred.Defer(func() {
		log.mu.Lock()
		defer log.mu.Unlock()
		log.ids = append(log.ids, id)
	})
	return status.Keep
}

func TestTickManager_DeferredCommandsRunAfterTick(t *testing.T) {
	log := &spawnLog{}
	status.RegisterEffect("Beacon", func(status.Params) status.Status {
		return &beacon{registry: log}
	})

	f := newFixture(t, 1)
	ctx := context.Background()

	st, err := status.CreateEffect("Beacon", status.Params{Started: epoch})
	require.NoError(t, err)
	f.mgr.Post(status.NewApplySecondary(1, 1, st))

	stats, err := f.mgr.Step(ctx, epoch)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Deferred)

	log.mu.Lock()
	ids := append([]uint32(nil), log.ids...)
	log.mu.Unlock()
	require.Len(t, ids, 1)
	assert.GreaterOrEqual(t, ids[0], uint32(0x30000000), "effect objects use their own ID range")

	stats, err = f.mgr.Step(ctx, epoch.Add(time.Second))
	require.NoError(t, err)
	assert.Zero(t, stats.Deferred, "spawns once")
}

func TestTickManager_DamageOverTimeBurstResolvesSameStep(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	victim := f.character(t, 1)

	dot, err := status.CreateEffect("DamageOverTime", status.Params{
		CasterID: 9,
		Started:  epoch,
		Until:    epoch.Add(2 * time.Second),
		Values:   map[string]string{"burstOnExpire": "55"},
	})
	require.NoError(t, err)
	f.mgr.Post(status.NewApplySecondary(9, 1, dot))
	_, err = f.mgr.Step(ctx, epoch)
	require.NoError(t, err)

	stats, err := f.mgr.Step(ctx, epoch.Add(2*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Changed)
	assert.Equal(t, 1, stats.Deferred)
	assert.Equal(t, 1, stats.Attacks)
	assert.Equal(t, int64(55), stats.Damage)
	assert.Equal(t, victim.MaxHP()-55, victim.HP())
	assert.Zero(t, victim.Statuses().SecondaryLen())
}
