package picking

import (
	"github.com/Faultbox/midgard-geo/internal/layer"
)

// Hit is the result of a successful pick.
type Hit struct {
	Object   *layer.Mesh
	Distance float32
	Point    [3]float32
}

// Pick returns the nearest mesh whose bounds the ray crosses. Inside a group
// with an enabled collider descriptor only its colliders are tested, so
// merged geometry does not hide per-feature colliders.
func Pick(root *layer.Group, r Ray) (Hit, bool) {
	var best Hit
	found := false
	consider := func(m *layer.Mesh) {
		if m.Geometry == nil || m.Geometry.VertexCount() == 0 {
			return
		}
		t, ok := r.IntersectAABB(FromBounds(m.Geometry.Bounds()))
		if ok && (!found || t < best.Distance) {
			best = Hit{Object: m, Distance: t, Point: r.At(t)}
			found = true
		}
	}
	pickGroup(root, consider)
	return best, found
}

func pickGroup(g *layer.Group, consider func(*layer.Mesh)) {
	if g.Collider != nil && g.Collider.Enabled && g.Collider.Colliders != nil {
		g.Collider.Colliders.Walk(func(r layer.Renderable) bool {
			if m, ok := layer.AsMesh(r); ok {
				consider(m)
			}
			return true
		})
		return
	}
	for _, c := range g.Children() {
		if sub, ok := c.(*layer.Group); ok {
			pickGroup(sub, consider)
			continue
		}
		if m, ok := layer.AsMesh(c); ok && m.Visible {
			consider(m)
		}
	}
}
