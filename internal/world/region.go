package world

import (
	"sync"
	"sync/atomic"
)

// Region is one grid cell (2048×2048 units) holding the characters
// currently standing in it.
type Region struct {
	rx, ry int32

	characters sync.Map // map[uint32]*Character — objectID → character

	// Snapshot cache (immutable slice), rebuilt lazily when dirty.
	snapshotCache atomic.Value // []*Character
	snapshotDirty atomic.Bool

	version atomic.Uint64 // incremented on Add/Remove
}

// NewRegion creates an empty region.
func NewRegion(rx, ry int32) *Region {
	return &Region{rx: rx, ry: ry}
}

// RX returns region X index.
func (r *Region) RX() int32 { return r.rx }

// RY returns region Y index.
func (r *Region) RY() int32 { return r.ry }

// Version returns the number of Add/Remove operations applied so far.
func (r *Region) Version() uint64 {
	return r.version.Load()
}

// Add puts a character into the region (concurrent-safe).
func (r *Region) Add(c *Character) {
	r.characters.Store(c.ID(), c)
	r.version.Add(1)
	r.snapshotDirty.Store(true)
}

// Remove drops a character from the region (concurrent-safe).
func (r *Region) Remove(id uint32) {
	r.characters.Delete(id)
	r.version.Add(1)
	r.snapshotDirty.Store(true)
}

// ForEach iterates over the region's characters until fn returns false.
func (r *Region) ForEach(fn func(*Character) bool) {
	r.characters.Range(func(_, value any) bool {
		return fn(value.(*Character))
	})
}

// Snapshot returns the cached character list, rebuilding it if dirty.
// IMPORTANT: Returned slice is shared — DO NOT modify.
func (r *Region) Snapshot() []*Character {
	if !r.snapshotDirty.Load() {
		if cache := r.snapshotCache.Load(); cache != nil {
			return cache.([]*Character)
		}
	}
	return r.rebuildSnapshot()
}

func (r *Region) rebuildSnapshot() []*Character {
	// Clear the flag first: a concurrent Add after this point re-dirties it.
	r.snapshotDirty.Store(false)

	chars := make([]*Character, 0, 16)
	r.characters.Range(func(_, value any) bool {
		chars = append(chars, value.(*Character))
		return true
	})
	r.snapshotCache.Store(chars)
	return chars
}
