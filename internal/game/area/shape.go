// Package area describes the regions used by area-of-effect status
// application: a Shape in local coordinates placed into the world by a Pose.
package area

import (
	"math"

	"github.com/udisondev/statusfx/internal/model"
)

// Shape is a planar region in shape-local coordinates (origin at the pose).
type Shape interface {
	// Contains reports whether the local point (x, y) lies inside.
	Contains(x, y float64) bool
	// Radius bounds the shape around the origin. Used for broad-phase pruning.
	Radius() float64
}

// Pose places a Shape in the world: translation plus heading rotation.
type Pose struct {
	X       int32
	Y       int32
	Heading uint16
}

// PoseAt builds a Pose from a world location (Z is ignored).
func PoseAt(loc model.Location) Pose {
	return Pose{X: loc.X, Y: loc.Y, Heading: loc.Heading}
}

// Center returns the pose origin as a Location.
func (p Pose) Center() model.Location {
	return model.Location{X: p.X, Y: p.Y, Heading: p.Heading}
}

// ToLocal converts a world position into the pose's local frame.
func (p Pose) ToLocal(loc model.Location) (x, y float64) {
	dx := float64(loc.X) - float64(p.X)
	dy := float64(loc.Y) - float64(p.Y)
	if p.Heading == 0 {
		return dx, dy
	}
	a := -float64(p.Heading) * (2 * math.Pi / 65536.0)
	sin, cos := math.Sincos(a)
	return dx*cos - dy*sin, dx*sin + dy*cos
}

// Contains reports whether loc falls inside shape placed at pose.
// A nil shape contains nothing.
func Contains(shape Shape, pose Pose, loc model.Location) bool {
	if shape == nil {
		return false
	}
	x, y := pose.ToLocal(loc)
	return shape.Contains(x, y)
}
