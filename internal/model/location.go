package model

import "math"

// Location is a point in the game world plus facing.
// Value type, passed by value (immutable).
type Location struct {
	X       int32
	Y       int32
	Z       int32
	Heading uint16 // 0-65535 maps to a full turn
}

// NewLocation creates a Location with the given coordinates.
func NewLocation(x, y, z int32, heading uint16) Location {
	return Location{X: x, Y: y, Z: z, Heading: heading}
}

// WithHeading returns a copy with the new heading.
func (l Location) WithHeading(heading uint16) Location {
	l.Heading = heading
	return l
}

// WithCoordinates returns a copy with the new coordinates.
func (l Location) WithCoordinates(x, y, z int32) Location {
	l.X = x
	l.Y = y
	l.Z = z
	return l
}

// DistanceSquared returns squared 3D distance (no sqrt).
func (l Location) DistanceSquared(other Location) int64 {
	dx := int64(l.X) - int64(other.X)
	dy := int64(l.Y) - int64(other.Y)
	dz := int64(l.Z) - int64(other.Z)
	return dx*dx + dy*dy + dz*dz
}

// DistanceSquared2D ignores Z. Area checks are planar.
func (l Location) DistanceSquared2D(other Location) int64 {
	dx := int64(l.X) - int64(other.X)
	dy := int64(l.Y) - int64(other.Y)
	return dx*dx + dy*dy
}

// HeadingRadians converts the 16-bit heading into radians in [0, 2π).
func (l Location) HeadingRadians() float64 {
	return float64(l.Heading) * (2 * math.Pi / 65536.0)
}
