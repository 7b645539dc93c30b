package world

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/udisondev/statusfx/internal/game/area"
	"github.com/udisondev/statusfx/internal/game/combat"
	"github.com/udisondev/statusfx/internal/game/status"
	"github.com/udisondev/statusfx/internal/model"
)

// World holds every live character on a 2D region grid and serves as the
// status system's target resolver and tick context.
type World struct {
	regions    [][]*Region // [RegionsX][RegionsY]
	characters sync.Map    // map[uint32]*Character

	clock   *ManualClock
	attacks *AttackQueue
}

var (
	_ status.Targets      = (*World)(nil)
	_ status.WorldContext = (*World)(nil)
)

// New creates an empty world driven by clock.
func New(clock *ManualClock) *World {
	w := &World{
		regions: make([][]*Region, RegionsX),
		clock:   clock,
		attacks: NewAttackQueue(),
	}
	for rx := range RegionsX {
		w.regions[rx] = make([]*Region, RegionsY)
		for ry := range RegionsY {
			w.regions[rx][ry] = NewRegion(int32(rx), int32(ry))
		}
	}
	return w
}

// Region returns the region at world coordinates (x, y), or nil if out of bounds.
func (w *World) Region(x, y int32) *Region {
	rx, ry := CoordToRegionIndex(x, y)
	return w.RegionByIndex(rx, ry)
}

// RegionByIndex returns the region at index (rx, ry), or nil if out of bounds.
func (w *World) RegionByIndex(rx, ry int32) *Region {
	if !IsValidRegionIndex(rx, ry) {
		return nil
	}
	return w.regions[rx][ry]
}

// AddCharacter places c in the world.
func (w *World) AddCharacter(c *Character) error {
	loc := c.Location()
	region := w.Region(loc.X, loc.Y)
	if region == nil {
		return fmt.Errorf("invalid coordinates for character %d: (%d, %d)", c.ID(), loc.X, loc.Y)
	}
	if _, loaded := w.characters.LoadOrStore(c.ID(), c); loaded {
		return fmt.Errorf("character %d already in world", c.ID())
	}
	region.Add(c)
	return nil
}

// RemoveCharacter drops a character. Returns false if it was not present.
func (w *World) RemoveCharacter(id uint32) bool {
	value, ok := w.characters.LoadAndDelete(id)
	if !ok {
		return false
	}
	c := value.(*Character)
	loc := c.Location()
	if region := w.Region(loc.X, loc.Y); region != nil {
		region.Remove(id)
	}
	return true
}

// MoveCharacter updates a character's position, migrating it between
// regions when it crosses a border.
func (w *World) MoveCharacter(id uint32, to model.Location) error {
	c, ok := w.Character(id)
	if !ok {
		return fmt.Errorf("character %d not found", id)
	}
	newRegion := w.Region(to.X, to.Y)
	if newRegion == nil {
		return fmt.Errorf("invalid coordinates for character %d: (%d, %d)", id, to.X, to.Y)
	}

	from := c.Location()
	oldRegion := w.Region(from.X, from.Y)
	c.setLocation(to)
	if oldRegion != newRegion {
		if oldRegion != nil {
			oldRegion.Remove(id)
		}
		newRegion.Add(c)
	}
	return nil
}

// Character returns a character by ID.
func (w *World) Character(id uint32) (*Character, bool) {
	value, ok := w.characters.Load(id)
	if !ok {
		return nil, false
	}
	return value.(*Character), true
}

// ForEachCharacter iterates over all characters until fn returns false.
func (w *World) ForEachCharacter(fn func(*Character) bool) {
	w.characters.Range(func(_, value any) bool {
		return fn(value.(*Character))
	})
}

// Characters returns a point-in-time slice of all characters.
func (w *World) Characters() []*Character {
	chars := make([]*Character, 0, 64)
	w.ForEachCharacter(func(c *Character) bool {
		chars = append(chars, c)
		return true
	})
	return chars
}

// Count returns the number of characters in the world.
func (w *World) Count() int {
	n := 0
	w.characters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// StatusSet implements status.Targets.
func (w *World) StatusSet(id uint32) (*status.Set, bool) {
	c, ok := w.Character(id)
	if !ok {
		return nil, false
	}
	return c.Statuses(), true
}

// ForEachInArea implements status.Targets. Only regions overlapping the
// shape's bounding circle are scanned.
func (w *World) ForEachInArea(shape area.Shape, pose area.Pose, fn func(id uint32, set *status.Set)) {
	if shape == nil {
		return
	}
	r := shape.Radius()
	if r < 0 || math.IsNaN(r) {
		return
	}
	radius := int32(min(math.Ceil(r), math.MaxInt32))
	minRX, minRY, maxRX, maxRY := RegionSpan(pose.X, pose.Y, radius)

	for rx := minRX; rx <= maxRX; rx++ {
		for ry := minRY; ry <= maxRY; ry++ {
			for _, c := range w.regions[rx][ry].Snapshot() {
				if area.Contains(shape, pose, c.Location()) {
					fn(c.ID(), c.Statuses())
				}
			}
		}
	}
}

// Now implements status.Clock.
func (w *World) Now() time.Time {
	return w.clock.Now()
}

// Clock returns the world's simulation clock.
func (w *World) Clock() *ManualClock {
	return w.clock
}

// PushAttack implements status.WorldContext.
func (w *World) PushAttack(a combat.Attack) {
	w.attacks.Push(a)
}

// DrainAttacks returns and clears all attacks queued since the last drain.
func (w *World) DrainAttacks() []combat.Attack {
	return w.attacks.Drain()
}

// ResolveAttack runs an attack through the target's damage filters and
// applies the result. Attacks on missing or dead targets are dropped.
func (w *World) ResolveAttack(a combat.Attack) (combat.Outcome, bool) {
	target, ok := w.Character(a.DstID)
	if !ok || target.IsDead() {
		return combat.Outcome{}, false
	}
	outcome := target.Statuses().FilterIncomingDamage(combat.OutcomeFor(a))
	if outcome.Damage > 0 {
		left := target.ReduceHP(outcome.Damage)
		if left == 0 {
			slog.Debug("character died",
				"character", target.ID(),
				"attacker", a.SrcID,
				"attack", a.Type,
				"effect", a.EffectID)
		}
	}
	return outcome, true
}
