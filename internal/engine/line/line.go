package line

import (
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/pkg/math"
)

// Length returns the total length of a polyline.
func Length(points []math.Vec3) float32 {
	var total float32
	for i := 1; i < len(points); i++ {
		total += points[i].Distance(points[i-1])
	}
	return total
}

// Polyline builds a non-indexed line strip with cumulative line distances.
func Polyline(points []math.Vec3) *mesh.Geometry {
	positions := make([]float32, 0, len(points)*3)
	for _, p := range points {
		positions = append(positions, p.X, p.Y, p.Z)
	}
	g := mesh.New()
	g.SetAttribute(mesh.AttrPosition, 3, positions)
	ComputeLineDistances(g, false)
	return g
}

// Segments builds segment pairs (a, b), (b, c), ... from a polyline, the
// layout consumed by wide line renderers.
func Segments(points []math.Vec3) *mesh.Geometry {
	n := 0
	if len(points) > 1 {
		n = len(points) - 1
	}
	positions := make([]float32, 0, n*6)
	for i := 0; i < n; i++ {
		a, b := points[i], points[i+1]
		positions = append(positions, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
	g := mesh.New()
	g.SetAttribute(mesh.AttrPosition, 3, positions)
	ComputeLineDistances(g, true)
	return g
}

// ComputeLineDistances stores the distance from the start of the line at
// each vertex. For segment pairs every pair continues the running total of
// the previous one.
func ComputeLineDistances(g *mesh.Geometry, pairs bool) {
	n := g.VertexCount()
	dist := make([]float32, n)
	at := func(i int) math.Vec3 {
		p := g.Position(i)
		return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}

	if pairs {
		var total float32
		for i := 0; i+1 < n; i += 2 {
			dist[i] = total
			total += at(i + 1).Distance(at(i))
			dist[i+1] = total
		}
	} else {
		for i := 1; i < n; i++ {
			dist[i] = dist[i-1] + at(i).Distance(at(i-1))
		}
	}
	g.SetAttribute(mesh.AttrLineDistance, 1, dist)
}

// TotalDistance returns the last line distance of g.
func TotalDistance(g *mesh.Geometry) float32 {
	d := g.Attribute(mesh.AttrLineDistance)
	if d == nil || len(d.Data) == 0 {
		return 0
	}
	return d.Data[len(d.Data)-1]
}
