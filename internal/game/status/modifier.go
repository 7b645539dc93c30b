package status

import (
	"math"

	"github.com/udisondev/statusfx/internal/model"
)

// Stat names an attribute a modifier targets.
type Stat uint8

const (
	StatWalkingSpeed Stat = iota
	StatAttackRange
	StatAttackSpeed
	StatAttackDamage
	StatArmor
	StatHealing
	StatHPRegen
	StatMaxHP
	StatManaRegen
)

var statNames = map[string]Stat{
	"walkingSpeed": StatWalkingSpeed,
	"attackRange":  StatAttackRange,
	"attackSpeed":  StatAttackSpeed,
	"attackDamage": StatAttackDamage,
	"armor":        StatArmor,
	"healing":      StatHealing,
	"hpRegen":      StatHPRegen,
	"maxHP":        StatMaxHP,
	"manaRegen":    StatManaRegen,
}

// ParseStat resolves a stat by its template name.
func ParseStat(name string) (Stat, bool) {
	s, ok := statNames[name]
	return s, ok
}

// ModType defines how a modifier is applied.
type ModType uint8

const (
	ModAdd     ModType = iota // value += v
	ModPercent                // value += value * v / 100
	ModMul                    // value *= v
)

// Modifier is a single attribute change pushed by a status.
type Modifier struct {
	Stat  Stat
	Type  ModType
	Value float64
}

// Modifiers accumulates modifiers in push order. Order matters: modifiers
// are folded sequentially, so a percentage applied after an innate bonus
// scales the already-boosted value.
type Modifiers struct {
	mods []Modifier
}

// NewModifiers creates an empty accumulator.
func NewModifiers() *Modifiers {
	return &Modifiers{mods: make([]Modifier, 0, 16)}
}

// Clear empties the accumulator keeping its capacity.
func (m *Modifiers) Clear() {
	m.mods = m.mods[:0]
}

// Push appends a modifier.
func (m *Modifiers) Push(mod Modifier) {
	m.mods = append(m.mods, mod)
}

// Len returns the number of accumulated modifiers.
func (m *Modifiers) Len() int {
	return len(m.mods)
}

// All returns the accumulated modifiers. The slice is reused on the next
// aggregation; copy it to keep it.
func (m *Modifiers) All() []Modifier {
	return m.mods
}

// Apply folds every modifier targeting stat over base.
func (m *Modifiers) Apply(stat Stat, base float64) float64 {
	v := base
	for _, mod := range m.mods {
		if mod.Stat != stat {
			continue
		}
		switch mod.Type {
		case ModAdd:
			v += mod.Value
		case ModPercent:
			v += v * mod.Value / 100.0
		case ModMul:
			v *= mod.Value
		}
	}
	return v
}

// ApplyTo returns base with every modifier folded in.
func (m *Modifiers) ApplyTo(base model.Attributes) model.Attributes {
	pct := func(s Stat, p model.Percentage) model.Percentage {
		return model.Percentage(math.Round(m.Apply(s, float64(p))))
	}
	abs := func(s Stat, v int32) int32 {
		return int32(math.Round(m.Apply(s, float64(v))))
	}
	return model.Attributes{
		WalkingSpeed: pct(StatWalkingSpeed, base.WalkingSpeed),
		AttackRange:  pct(StatAttackRange, base.AttackRange),
		AttackSpeed:  pct(StatAttackSpeed, base.AttackSpeed),
		AttackDamage: abs(StatAttackDamage, base.AttackDamage),
		Armor:        pct(StatArmor, base.Armor),
		Healing:      pct(StatHealing, base.Healing),
		HPRegen:      pct(StatHPRegen, base.HPRegen),
		MaxHP:        abs(StatMaxHP, base.MaxHP),
		ManaRegen:    pct(StatManaRegen, base.ManaRegen),
	}
}
