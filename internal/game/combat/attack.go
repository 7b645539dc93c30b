package combat

import "fmt"

// AttackType classifies a queued damage event.
type AttackType uint8

const (
	AttackBasic AttackType = iota
	AttackPoison
	AttackBurn
	AttackSkill
)

func (t AttackType) String() string {
	switch t {
	case AttackBasic:
		return "basic"
	case AttackPoison:
		return "poison"
	case AttackBurn:
		return "burn"
	case AttackSkill:
		return "skill"
	default:
		return fmt.Sprintf("AttackType(%d)", uint8(t))
	}
}

// Attack is a damage event queued for the attack calculator.
// Status effects emit these during Tick (e.g. poison every second).
type Attack struct {
	SrcID  uint32
	DstID  uint32
	Type   AttackType
	Amount int32

	// EffectID is the object spawned to carry the attack, 0 if none.
	EffectID uint32
}
