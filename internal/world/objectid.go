package world

import "sync/atomic"

// ObjectIDGenerator hands out unique IDs for everything the world tracks.
//
// ID ranges:
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = no entity)
//	0x10000000 - 0x1FFFFFFF: Players
//	0x20000000 - 0x2FFFFFFF: Monsters
//	0x30000000 - 0x3FFFFFFF: Entities spawned by effects during a tick
type ObjectIDGenerator struct {
	nextPlayerID  atomic.Uint32
	nextMonsterID atomic.Uint32
	nextEffectID  atomic.Uint32
}

// NewObjectIDGenerator creates a generator positioned at the start of each range.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextPlayerID.Store(0x10000000)
	gen.nextMonsterID.Store(0x20000000)
	gen.nextEffectID.Store(0x30000000)
	return gen
}

// NextPlayerID returns the next player ID.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	return g.nextPlayerID.Add(1)
}

// NextMonsterID returns the next monster ID.
func (g *ObjectIDGenerator) NextMonsterID() uint32 {
	return g.nextMonsterID.Add(1)
}

// NextID implements status.IDAllocator for entities created by effects.
func (g *ObjectIDGenerator) NextID() uint32 {
	return g.nextEffectID.Add(1)
}
