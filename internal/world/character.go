package world

import (
	"sync"
	"sync/atomic"

	"github.com/udisondev/statusfx/internal/game/status"
	"github.com/udisondev/statusfx/internal/model"
)

// Character is a living entity that can carry statuses.
type Character struct {
	id     uint32
	name   string
	job    model.JobID
	sex    model.Sex
	player bool

	mu  sync.RWMutex
	loc model.Location

	hp    atomic.Int32
	maxHP int32

	statuses *status.Set
}

// NewCharacter creates a character at loc with full HP.
func NewCharacter(id uint32, name string, loc model.Location, player bool) *Character {
	base := model.BaseAttributes(player)
	c := &Character{
		id:       id,
		name:     name,
		player:   player,
		loc:      loc,
		maxHP:    base.MaxHP,
		statuses: status.NewSet(),
	}
	c.hp.Store(base.MaxHP)
	return c
}

// WithAppearance sets job and sex. Call before adding to the world.
func (c *Character) WithAppearance(job model.JobID, sex model.Sex) *Character {
	c.job = job
	c.sex = sex
	return c
}

// ID returns the character's object ID.
func (c *Character) ID() uint32 { return c.id }

// Name returns the display name.
func (c *Character) Name() string { return c.name }

func (c *Character) Job() model.JobID { return c.job }

func (c *Character) Sex() model.Sex { return c.sex }

func (c *Character) IsPlayer() bool { return c.player }

// Statuses returns the character's status set.
func (c *Character) Statuses() *status.Set { return c.statuses }

// Location returns the current position.
func (c *Character) Location() model.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loc
}

func (c *Character) setLocation(loc model.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loc = loc
}

// BaseAttributes returns the attribute table before statuses apply.
func (c *Character) BaseAttributes() model.Attributes {
	return model.BaseAttributes(c.player)
}

// Attributes returns base attributes with every active status folded in.
func (c *Character) Attributes() model.Attributes {
	return c.statuses.ApplyAttributes(c.BaseAttributes())
}

// HP returns current hit points.
func (c *Character) HP() int32 { return c.hp.Load() }

// MaxHP returns maximum hit points.
func (c *Character) MaxHP() int32 { return c.maxHP }

// IsDead reports whether HP reached zero.
func (c *Character) IsDead() bool { return c.hp.Load() <= 0 }

// ReduceHP subtracts damage, clamping at zero. Returns the HP left.
func (c *Character) ReduceHP(damage int32) int32 {
	if damage <= 0 {
		return c.hp.Load()
	}
	for {
		cur := c.hp.Load()
		next := max(cur-damage, 0)
		if c.hp.CompareAndSwap(cur, next) {
			return next
		}
	}
}
