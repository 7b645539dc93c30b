package status

import "github.com/udisondev/statusfx/internal/game/area"

// Payload is what an apply message carries: a main kind or a secondary
// status instance owned by the message.
type Payload struct {
	main      bool
	kind      MainKind
	secondary Status
}

// MainPayload addresses a reserved slot.
func MainPayload(kind MainKind) Payload {
	return Payload{main: true, kind: kind}
}

// SecondaryPayload carries a secondary status. The message takes ownership.
func SecondaryPayload(st Status) Payload {
	return Payload{secondary: st}
}

// Main returns the main kind if the payload addresses one.
func (p Payload) Main() (MainKind, bool) {
	return p.kind, p.main
}

// Secondary returns the carried status if any.
func (p Payload) Secondary() (Status, bool) {
	return p.secondary, !p.main && p.secondary != nil
}

// Clone deep-copies the carried status so two targets never share one
// instance.
func (p Payload) Clone() Payload {
	if p.main || p.secondary == nil {
		return p
	}
	return Payload{secondary: p.secondary.Duplicate()}
}

// RemovePayload selects what RemoveStatus clears: one main kind or every
// secondary status of a classification.
type RemovePayload struct {
	main           bool
	kind           MainKind
	classification Classification
}

// RemoveMainPayload clears a reserved slot.
func RemoveMainPayload(kind MainKind) RemovePayload {
	return RemovePayload{main: true, kind: kind}
}

// RemoveClassifiedPayload clears secondary statuses of classification c.
func RemoveClassifiedPayload(c Classification) RemovePayload {
	return RemovePayload{classification: c}
}

// Main returns the main kind if the payload addresses one.
func (p RemovePayload) Main() (MainKind, bool) {
	return p.kind, p.main
}

// Classification returns the classification for secondary removal.
func (p RemovePayload) Classification() (Classification, bool) {
	return p.classification, !p.main
}

// Message is one of ApplyStatus, ApplyStatusInArea, RemoveStatus.
type Message interface {
	statusMessage()
}

// ApplyStatus applies a payload to one target.
type ApplyStatus struct {
	SourceID uint32
	TargetID uint32
	Payload  Payload
}

// ApplyStatusInArea applies a payload to every character inside Shape
// placed at Pose, except ExceptID (0 = nobody excluded).
type ApplyStatusInArea struct {
	SourceID uint32
	Payload  Payload
	Shape    area.Shape
	Pose     area.Pose
	ExceptID uint32
}

// RemoveStatus removes statuses from one target.
type RemoveStatus struct {
	SourceID uint32
	TargetID uint32
	Payload  RemovePayload
}

func (ApplyStatus) statusMessage()       {}
func (ApplyStatusInArea) statusMessage() {}
func (RemoveStatus) statusMessage()      {}

// NewApplyMain builds an ApplyStatus for a main kind.
func NewApplyMain(sourceID, targetID uint32, kind MainKind) ApplyStatus {
	return ApplyStatus{SourceID: sourceID, TargetID: targetID, Payload: MainPayload(kind)}
}

// NewApplySecondary builds an ApplyStatus carrying st.
func NewApplySecondary(sourceID, targetID uint32, st Status) ApplyStatus {
	return ApplyStatus{SourceID: sourceID, TargetID: targetID, Payload: SecondaryPayload(st)}
}

// NewRemoveMain builds a RemoveStatus for a main kind.
func NewRemoveMain(sourceID, targetID uint32, kind MainKind) RemoveStatus {
	return RemoveStatus{SourceID: sourceID, TargetID: targetID, Payload: RemoveMainPayload(kind)}
}

// NewRemoveClassified builds a RemoveStatus for a classification.
func NewRemoveClassified(sourceID, targetID uint32, c Classification) RemoveStatus {
	return RemoveStatus{SourceID: sourceID, TargetID: targetID, Payload: RemoveClassifiedPayload(c)}
}
