// Package layer groups renderable meshes and lines into named, disposable layers.
package layer

import (
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/pkg/math"
)

// Renderable is a node in a layer tree: *Mesh, *Line, *Group or a type
// embedding one of them.
type Renderable interface {
	Name() string
	Dispose()
	renderable()
}

type node struct {
	name     string
	Visible  bool
	Info     map[string]any // Source feature properties, if any
	Position math.Vec3
}

// Name returns the node name.
func (n *node) Name() string { return n.name }

// SetName renames the node.
func (n *node) SetName(name string) { n.name = name }

func (n *node) renderable() {}

// Mesh is triangle geometry drawn with one material.
type Mesh struct {
	node
	Geometry *mesh.Geometry
	Material *material.Material

	disposed bool
}

// NewMesh creates a visible mesh and registers it as a material user.
func NewMesh(name string, g *mesh.Geometry, m *material.Material) *Mesh {
	m.Acquire()
	return &Mesh{node: node{name: name, Visible: true}, Geometry: g, Material: m}
}

// Dispose releases the geometry and the mesh's hold on its material.
func (m *Mesh) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	if m.Geometry != nil {
		m.Geometry.Dispose()
	}
	m.Material.Release()
}

// Disposed reports whether Dispose has been called.
func (m *Mesh) Disposed() bool { return m.disposed }

// Base returns m. Types embedding *Mesh inherit it, which lets walkers
// reach the underlying mesh.
func (m *Mesh) Base() *Mesh { return m }

type meshNode interface {
	Renderable
	Base() *Mesh
}

// AsMesh returns the mesh behind r when r is a *Mesh or embeds one.
func AsMesh(r Renderable) (*Mesh, bool) {
	if m, ok := r.(meshNode); ok {
		return m.Base(), true
	}
	return nil, false
}

// Line is polyline or segment-pair geometry.
type Line struct {
	node
	Geometry *mesh.Geometry
	Material *material.Material
	Segments bool // Positions are (start, end) pairs rather than a strip

	disposed bool
}

// NewLine creates a visible line strip.
func NewLine(name string, g *mesh.Geometry, m *material.Material) *Line {
	m.Acquire()
	return &Line{node: node{name: name, Visible: true}, Geometry: g, Material: m}
}

// NewSegments creates a visible segment-pair line.
func NewSegments(name string, g *mesh.Geometry, m *material.Material) *Line {
	l := NewLine(name, g, m)
	l.Segments = true
	return l
}

// Dispose releases the geometry and the line's hold on its material.
func (l *Line) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	if l.Geometry != nil {
		l.Geometry.Dispose()
	}
	l.Material.Release()
}

// Disposed reports whether Dispose has been called.
func (l *Line) Disposed() bool { return l.disposed }
