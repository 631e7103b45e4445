package geom

import "math"

// Epsilon is the tolerance for near-zero distances in push-apart math.
// Detection and resolution both use it so a detected overlap is always
// resolvable with the same thresholds.
const Epsilon = 1e-6

// Kind discriminates collider shapes
type Kind uint8

const (
	KindCircle Kind = iota
	KindBox
)

// Shape is a closed set of collider geometries: Circle or Box
type Shape interface {
	Kind() Kind
	// BoundRadius returns a radius covering the shape from its center
	BoundRadius() float64
}

// Circle is a circular collider
type Circle struct {
	Radius float64
}

// NewCircle creates a circle shape. Panics on a non-positive radius.
func NewCircle(radius float64) Circle {
	if radius <= 0 {
		panic("geom: circle radius must be positive")
	}
	return Circle{Radius: radius}
}

func (c Circle) Kind() Kind           { return KindCircle }
func (c Circle) BoundRadius() float64 { return c.Radius }

// Box is an axis-aligned box collider stored as half extents
type Box struct {
	HalfW, HalfH float64
}

// NewBox creates a box shape from full width/height. Panics on
// non-positive dimensions.
func NewBox(width, height float64) Box {
	if width <= 0 || height <= 0 {
		panic("geom: box dimensions must be positive")
	}
	return Box{HalfW: width / 2, HalfH: height / 2}
}

func (b Box) Kind() Kind { return KindBox }

func (b Box) BoundRadius() float64 {
	if b.HalfW > b.HalfH {
		return b.HalfW
	}
	return b.HalfH
}

// ---- Overlap predicates ----
// All boundary conditions are inclusive: touching counts as overlap.

// CirclesOverlap reports whether two circles intersect
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	rr := r1 + r2
	return dx*dx+dy*dy <= rr*rr
}

// BoxesOverlap reports whether two axis-aligned boxes intersect
func BoxesOverlap(x1, y1, hw1, hh1, x2, y2, hw2, hh2 float64) bool {
	if math.Abs(x2-x1) > hw1+hw2 {
		return false
	}
	return math.Abs(y2-y1) <= hh1+hh2
}

// CircleBoxOverlap reports whether a circle and an axis-aligned box intersect
func CircleBoxOverlap(cx, cy, r, bx, by, hw, hh float64) bool {
	px, py := ClampToBox(cx, cy, bx, by, hw, hh)
	dx := cx - px
	dy := cy - py
	return dx*dx+dy*dy <= r*r
}

// ClampToBox returns the closest point on a box to (px, py)
func ClampToBox(px, py, bx, by, hw, hh float64) (float64, float64) {
	cx := px
	if cx < bx-hw {
		cx = bx - hw
	} else if cx > bx+hw {
		cx = bx + hw
	}
	cy := py
	if cy < by-hh {
		cy = by - hh
	} else if cy > by+hh {
		cy = by + hh
	}
	return cx, cy
}

// ---- Minimum translation vectors ----
// Each returns the displacement that moves the FIRST shape out of the
// second along the axis of least overlap, single correction per call.

// PushCircleFromCircle separates circle 1 from circle 2 along the line
// between centers. Coincident centers push the full combined radius
// along +X.
func PushCircleFromCircle(x1, y1, r1, x2, y2, r2 float64) (float64, float64, bool) {
	dx := x1 - x2
	dy := y1 - y2
	rr := r1 + r2
	distSq := dx*dx + dy*dy
	if distSq > rr*rr {
		return 0, 0, false
	}
	dist := math.Sqrt(distSq)
	if dist < Epsilon {
		return rr, 0, true
	}
	push := (rr - dist) / dist
	return dx * push, dy * push, true
}

// PushCircleFromBox separates a circle from a box, pushing away from the
// closest point on the box. A center inside the box pushes along the
// axis with the smaller penetration.
func PushCircleFromBox(cx, cy, r, bx, by, hw, hh float64) (float64, float64, bool) {
	px, py := ClampToBox(cx, cy, bx, by, hw, hh)
	dx := cx - px
	dy := cy - py
	distSq := dx*dx + dy*dy
	if distSq > r*r {
		return 0, 0, false
	}
	dist := math.Sqrt(distSq)
	if dist >= Epsilon {
		push := (r - dist) / dist
		return dx * push, dy * push, true
	}
	// Center inside the box
	ox := cx - bx
	oy := cy - by
	penX := hw + r - math.Abs(ox)
	penY := hh + r - math.Abs(oy)
	if penX < penY {
		if ox < 0 {
			return -penX, 0, true
		}
		return penX, 0, true
	}
	if oy < 0 {
		return 0, -penY, true
	}
	return 0, penY, true
}

// PushBoxFromBox separates box 1 from box 2 along the axis with the
// smaller positive overlap. No correction when either axis is separated.
func PushBoxFromBox(x1, y1, hw1, hh1, x2, y2, hw2, hh2 float64) (float64, float64, bool) {
	dx := x1 - x2
	dy := y1 - y2
	overlapX := hw1 + hw2 - math.Abs(dx)
	overlapY := hh1 + hh2 - math.Abs(dy)
	if overlapX <= 0 || overlapY <= 0 {
		return 0, 0, false
	}
	if overlapX < overlapY {
		if dx < 0 {
			return -overlapX, 0, true
		}
		return overlapX, 0, true
	}
	if dy < 0 {
		return 0, -overlapY, true
	}
	return 0, overlapY, true
}
