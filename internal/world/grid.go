package world

// Grid layout. The world is split into square regions of 2^ShiftBy units;
// area queries only visit regions overlapping the query's bounding box.
const (
	// ShiftBy - 2^11 = 2048 units per region side.
	ShiftBy = 11

	// World boundaries (game coordinates).
	WorldXMin = -131072
	WorldYMin = -262144
	WorldXMax = 196608
	WorldYMax = 229376

	// OffsetX = abs(WorldXMin >> ShiftBy), OffsetY = abs(WorldYMin >> ShiftBy).
	OffsetX = 64
	OffsetY = 128

	// Regions per axis: (WorldMax >> ShiftBy) + Offset, Y rounded up by one.
	RegionsX = 160
	RegionsY = 241

	RegionSize = 1 << ShiftBy
)

// CoordToRegionIndex converts a world coordinate to a region index.
func CoordToRegionIndex(x, y int32) (rx, ry int32) {
	rx = (x >> ShiftBy) + OffsetX
	ry = (y >> ShiftBy) + OffsetY
	return rx, ry
}

// IsValidRegionIndex checks if a region index is within bounds.
func IsValidRegionIndex(rx, ry int32) bool {
	return rx >= 0 && rx < RegionsX && ry >= 0 && ry < RegionsY
}

// RegionIndexToCoord returns the world coordinate of a region's center.
func RegionIndexToCoord(rx, ry int32) (x, y int32) {
	x = ((rx - OffsetX) << ShiftBy) + (RegionSize / 2)
	y = ((ry - OffsetY) << ShiftBy) + (RegionSize / 2)
	return x, y
}

// RegionSpan returns the inclusive region index box covering a square of
// half-side radius around (x, y), clamped to the grid.
func RegionSpan(x, y, radius int32) (minRX, minRY, maxRX, maxRY int32) {
	if radius < 0 {
		radius = 0
	}
	minRX, minRY = CoordToRegionIndex(clampX(int64(x)-int64(radius)), clampY(int64(y)-int64(radius)))
	maxRX, maxRY = CoordToRegionIndex(clampX(int64(x)+int64(radius)), clampY(int64(y)+int64(radius)))
	return max(minRX, 0), max(minRY, 0), min(maxRX, RegionsX-1), min(maxRY, RegionsY-1)
}

func clampX(v int64) int32 {
	return int32(max(min(v, WorldXMax-1), WorldXMin))
}

func clampY(v int64) int32 {
	return int32(max(min(v, WorldYMax-1), WorldYMin))
}
