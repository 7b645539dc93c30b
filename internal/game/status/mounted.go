package status

import "github.com/udisondev/statusfx/internal/model"

// MountedSpeedBonus is the walking speed percentage a mount adds.
const MountedSpeedBonus = 200

// Mounted is the on/off mount main status.
type Mounted struct {
	Base
}

// NewMounted creates a Mounted status.
func NewMounted() *Mounted {
	return &Mounted{}
}

func (m *Mounted) Name() string                   { return "Mounted" }
func (m *Mounted) Duplicate() Status              { return &Mounted{} }
func (m *Mounted) Classification() Classification { return Supportive }

// ContributeAttributes boosts walking speed. Main slots are folded first,
// so the bonus lands on the base speed.
func (m *Mounted) ContributeAttributes(mods *Modifiers) {
	mods.Push(Modifier{Stat: StatWalkingSpeed, Type: ModPercent, Value: MountedSpeedBonus})
}

func (m *Mounted) SpriteOverride(job model.JobID, _ int, sex model.Sex, table SpriteTable) *model.SpriteResource {
	if table == nil {
		return nil
	}
	return table.Mounted(job, sex)
}

func (m *Mounted) Tick(*TickContext) UpdateResult { return Keep }

// Merge never runs for Mounted: the reserved slot toggles instead.
func (m *Mounted) Merge(Status) StackingResult { return DropIncoming }
