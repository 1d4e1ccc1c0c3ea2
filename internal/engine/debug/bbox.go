// Package debug provides wireframe helpers for inspecting colliders.
package debug

import (
	"github.com/Faultbox/midgard-geo/internal/engine/line"
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/internal/layer"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding expands collider boxes slightly so they do not z-fight
// with the geometry they wrap.
const DefaultBBoxPadding = 0.01

// BBoxWireframeVertices returns the 12 box edges as segment pairs, [x, y, z]
// per vertex, expanded by padding on every side.
func BBoxWireframeVertices(b mesh.Bounds, padding float32) []float32 {
	minX, minY, minZ := b.Min[0]-padding, b.Min[1]-padding, b.Min[2]-padding
	maxX, maxY, maxZ := b.Max[0]+padding, b.Max[1]+padding, b.Max[2]+padding
	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// ColliderWireframes builds one segment line per collider mesh under
// colliders, named after the collider. It returns nil when there is nothing
// to draw.
func ColliderWireframes(colliders *layer.Group, m *material.Material, padding float32) *layer.Group {
	if colliders == nil {
		return nil
	}
	out := layer.NewGroup(colliders.Name() + "_wireframes")
	colliders.Walk(func(r layer.Renderable) bool {
		cm, ok := layer.AsMesh(r)
		if !ok || cm.Geometry == nil || cm.Geometry.VertexCount() == 0 {
			return true
		}
		g := mesh.New()
		g.SetAttribute(mesh.AttrPosition, 3, BBoxWireframeVertices(cm.Geometry.Bounds(), padding))
		line.ComputeLineDistances(g, true)
		out.Add(layer.NewSegments(cm.Name(), g, m))
		return true
	})
	if out.Len() == 0 {
		return nil
	}
	return out
}
