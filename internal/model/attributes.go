package model

// Percentage is an integral percent value (100 = unchanged).
type Percentage int32

// Of applies the percentage to v.
func (p Percentage) Of(v float64) float64 {
	return v * float64(p) / 100.0
}

// Attributes holds the combat and movement values a character starts from
// before status effects are folded in.
type Attributes struct {
	WalkingSpeed Percentage
	AttackRange  Percentage
	AttackSpeed  Percentage
	AttackDamage int32
	Armor        Percentage
	Healing      Percentage
	HPRegen      Percentage
	MaxHP        int32
	ManaRegen    Percentage
}

// BaseAttributes returns the base attribute table for a character outlook.
// Players and monsters share the same table for now.
func BaseAttributes(isPlayer bool) Attributes {
	attrs := Attributes{
		WalkingSpeed: 100,
		AttackRange:  100,
		AttackSpeed:  100,
		AttackDamage: 76,
		Armor:        10,
		Healing:      100,
		HPRegen:      100,
		MaxHP:        2000,
		ManaRegen:    100,
	}
	if !isPlayer {
		attrs.Armor = 0
	}
	return attrs
}
