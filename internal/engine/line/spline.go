// Package line builds polyline and segment-pair geometry for roads and borders.
package line

import (
	gomath "math"

	"github.com/Faultbox/midgard-geo/pkg/math"
)

// DefaultTension keeps the curve close to the control polygon.
const DefaultTension = 0.001

// CatmullRom is an open Catmull-Rom spline through control points. The
// tangent at each point is tension times the chord between its neighbours;
// missing neighbours at the ends are mirrored.
type CatmullRom struct {
	Points  []math.Vec3
	Tension float64
}

// NewCatmullRom creates a spline through points.
func NewCatmullRom(points []math.Vec3, tension float64) *CatmullRom {
	return &CatmullRom{Points: points, Tension: tension}
}

// Point evaluates the spline at t in [0, 1].
func (c *CatmullRom) Point(t float64) math.Vec3 {
	l := len(c.Points)
	switch l {
	case 0:
		return math.Vec3{}
	case 1:
		return c.Points[0]
	}

	p := float64(l-1) * gomath.Min(gomath.Max(t, 0), 1)
	seg := int(gomath.Floor(p))
	weight := p - float64(seg)
	if seg >= l-1 {
		seg, weight = l-2, 1
	}

	var p0, p3 math.Vec3
	if seg > 0 {
		p0 = c.Points[seg-1]
	} else {
		p0 = c.Points[0].Sub(c.Points[1]).Add(c.Points[0])
	}
	p1, p2 := c.Points[seg], c.Points[seg+1]
	if seg+2 < l {
		p3 = c.Points[seg+2]
	} else {
		p3 = c.Points[l-1].Sub(c.Points[l-2]).Add(c.Points[l-1])
	}

	return math.Vec3{
		X: cubic(p0.X, p1.X, p2.X, p3.X, c.Tension, weight),
		Y: cubic(p0.Y, p1.Y, p2.Y, p3.Y, c.Tension, weight),
		Z: cubic(p0.Z, p1.Z, p2.Z, p3.Z, c.Tension, weight),
	}
}

// Sample returns divisions+1 points at evenly spaced parameters, both ends
// included.
func (c *CatmullRom) Sample(divisions int) []math.Vec3 {
	if divisions < 1 {
		divisions = 1
	}
	out := make([]math.Vec3, 0, divisions+1)
	for d := 0; d <= divisions; d++ {
		out = append(out, c.Point(float64(d)/float64(divisions)))
	}
	return out
}

// Divisions returns round(perPoint * pointCount), at least 1.
func Divisions(pointCount int, perPoint float64) int {
	d := int(gomath.Round(perPoint * float64(pointCount)))
	if d < 1 {
		return 1
	}
	return d
}

// cubic evaluates the Hermite segment from x1 to x2 at w.
func cubic(x0, x1, x2, x3 float32, tension, w float64) float32 {
	a, b := float64(x1), float64(x2)
	t0 := tension * (b - float64(x0))
	t1 := tension * (float64(x3) - a)
	c2 := -3*a + 3*b - 2*t0 - t1
	c3 := 2*a - 2*b + t0 + t1
	return float32(a + t0*w + c2*w*w + c3*w*w*w)
}
