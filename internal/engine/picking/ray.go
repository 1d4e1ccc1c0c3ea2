// Package picking casts rays against the bounding volumes of layer objects.
package picking

import (
	gomath "math"

	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    [3]float32
	Direction [3]float32 // Normalized direction
}

// NewRay creates a ray with a normalized direction.
func NewRay(origin, direction [3]float32) Ray {
	l := float32(gomath.Sqrt(float64(direction[0]*direction[0] + direction[1]*direction[1] + direction[2]*direction[2])))
	if l > 0 {
		direction = [3]float32{direction[0] / l, direction[1] / l, direction[2] / l}
	}
	return Ray{Origin: origin, Direction: direction}
}

// Down returns a ray cast straight down onto (x, z) from height.
func Down(x, z, height float32) Ray {
	return Ray{Origin: [3]float32{x, height, z}, Direction: [3]float32{0, -1, 0}}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) [3]float32 {
	return [3]float32{
		r.Origin[0] + t*r.Direction[0],
		r.Origin[1] + t*r.Direction[1],
		r.Origin[2] + t*r.Direction[2],
	}
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// NewAABB creates an AABB from two corners in any order.
func NewAABB(a, b [3]float32) AABB {
	box := AABB{Min: a, Max: b}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// FromBounds converts geometry bounds.
func FromBounds(b mesh.Bounds) AABB {
	return NewAABB(b.Min, b.Max)
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] == 0 {
			if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
		t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
