package model

import "fmt"

// JobID identifies a character class. Values are owned by the asset
// pipeline; the status engine only compares them.
type JobID int32

// Sex selects the sprite variant.
type Sex uint8

const (
	SexMale Sex = iota
	SexFemale
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return fmt.Sprintf("Sex(%d)", uint8(s))
	}
}

// SpriteResource is an opaque handle to a loaded sprite.
// The renderer resolves Name; status effects only pass it around.
type SpriteResource struct {
	Name string
}
