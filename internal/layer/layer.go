package layer

import (
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
)

// Layer owns a root group.
type Layer struct {
	root *Group
}

// New creates an empty layer.
func New(name string) *Layer {
	return &Layer{root: NewGroup(name)}
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.root.Name()
}

// Root returns the layer's group.
func (l *Layer) Root() *Group {
	return l.root
}

// Add appends r to the layer.
func (l *Layer) Add(r Renderable) *Layer {
	l.root.Add(r)
	return l
}

// Delete disposes r and removes it from the layer.
func (l *Layer) Delete(r Renderable) *Layer {
	if r == nil {
		return l
	}
	r.Dispose()
	l.root.Remove(r)
	return l
}

// Clear disposes and removes everything.
func (l *Layer) Clear() *Layer {
	l.root.Clear()
	return l
}

// Find returns the first renderable named name, or nil.
func (l *Layer) Find(name string) Renderable {
	return l.root.Find(name)
}

// Stats summarizes the geometry held by a layer.
type Stats struct {
	Groups    int
	Meshes    int
	Lines     int
	Vertices  int
	Triangles int
}

// Stats walks the layer and tallies its contents.
func (l *Layer) Stats() Stats {
	var s Stats
	l.root.Walk(func(r Renderable) bool {
		var g *mesh.Geometry
		switch v := r.(type) {
		case *Group:
			s.Groups++
			return true
		case *Line:
			s.Lines++
			g = v.Geometry
		case meshNode:
			s.Meshes++
			g = v.Base().Geometry
			s.Triangles += g.TriangleCount()
		}
		if g != nil {
			s.Vertices += g.VertexCount()
		}
		return true
	})
	return s
}
