package area

import "math"

// Circle is a disc of radius R around the origin.
type Circle struct {
	R float64
}

func (c Circle) Contains(x, y float64) bool {
	if c.R <= 0 {
		return false
	}
	return x*x+y*y <= c.R*c.R
}

func (c Circle) Radius() float64 { return c.R }

// Rect is an origin-centred rectangle with half extents HalfW × HalfH.
// Rotates with the pose heading, so a "front cone" can be modelled as a Rect
// offset along the heading by the caller.
type Rect struct {
	HalfW float64
	HalfH float64
}

func (r Rect) Contains(x, y float64) bool {
	return math.Abs(x) <= r.HalfW && math.Abs(y) <= r.HalfH
}

func (r Rect) Radius() float64 { return math.Hypot(r.HalfW, r.HalfH) }

// Polygon is an arbitrary simple polygon given by its vertices in local
// coordinates. Points on the boundary count as inside.
type Polygon struct {
	X []float64
	Y []float64
}

// Contains uses ray casting (even-odd rule).
func (p Polygon) Contains(x, y float64) bool {
	n := len(p.X)
	if n < 3 || len(p.Y) != n {
		return false
	}

	inside := false
	j := n - 1
	for i := range n {
		yi, yj := p.Y[i], p.Y[j]
		if (yi > y) != (yj > y) {
			cross := (x-p.X[i])*(yj-yi) - (p.X[j]-p.X[i])*(y-yi)
			if cross == 0 {
				// On the edge.
				return true
			}
			if (cross < 0) != (yj-yi < 0) {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

func (p Polygon) Radius() float64 {
	var r float64
	for i := range p.X {
		if i >= len(p.Y) {
			break
		}
		if d := math.Hypot(p.X[i], p.Y[i]); d > r {
			r = d
		}
	}
	return r
}
