package combat

// OutcomeKind describes how an attack landed.
type OutcomeKind uint8

const (
	OutcomeDamage OutcomeKind = iota
	OutcomeCrit
	OutcomePoison
	OutcomeBlock
	OutcomeMiss
)

// Outcome is the result of one attack as seen by the target.
// Status effects may rewrite it (shields reduce Damage, immunities turn it
// into a block) but never construct one from scratch.
type Outcome struct {
	AttackerID uint32
	TargetID   uint32
	Kind       OutcomeKind
	Damage     int32
}

// Blocked returns a copy with the damage cancelled.
func (o Outcome) Blocked() Outcome {
	o.Kind = OutcomeBlock
	o.Damage = 0
	return o
}

// ScaledDamage returns a copy with Damage multiplied by pct/100.
// Damage never goes negative.
func (o Outcome) ScaledDamage(pct int32) Outcome {
	d := int64(o.Damage) * int64(pct) / 100
	if d < 0 {
		d = 0
	}
	o.Damage = int32(d)
	return o
}

// OutcomeFor is the pass-through calculation used for status-driven
// attacks: no hit roll, no defense, the queued amount lands as-is.
func OutcomeFor(a Attack) Outcome {
	kind := OutcomeDamage
	if a.Type == AttackPoison {
		kind = OutcomePoison
	}
	return Outcome{
		AttackerID: a.SrcID,
		TargetID:   a.DstID,
		Kind:       kind,
		Damage:     a.Amount,
	}
}
