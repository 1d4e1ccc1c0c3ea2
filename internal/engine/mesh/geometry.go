// Package mesh provides attribute-based triangle and line geometry buffers.
package mesh

import (
	gomath "math"
	"sort"

	"github.com/Faultbox/midgard-geo/pkg/math"
)

// Standard attribute names.
const (
	AttrPosition     = "position"
	AttrNormal       = "normal"
	AttrUV           = "uv"
	AttrLineDistance = "lineDistance"
)

// Attribute is a flat float32 buffer of fixed-size items.
type Attribute struct {
	ItemSize int
	Data     []float32
}

// Count returns the number of items.
func (a *Attribute) Count() int {
	if a == nil || a.ItemSize == 0 {
		return 0
	}
	return len(a.Data) / a.ItemSize
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Center returns the box centre.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Empty reports whether the box contains nothing.
func (b Bounds) Empty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

// Sphere is a bounding sphere.
type Sphere struct {
	Center [3]float32
	Radius float32
}

// Geometry is a set of named vertex attributes with an optional index buffer.
type Geometry struct {
	attributes map[string]*Attribute
	Index      []uint32

	bounds   Bounds
	sphere   Sphere
	disposed bool
}

// New creates an empty geometry.
func New() *Geometry {
	return &Geometry{attributes: make(map[string]*Attribute), bounds: emptyBounds()}
}

// SetAttribute stores data under name. Bounds are refreshed when the
// position attribute changes.
func (g *Geometry) SetAttribute(name string, itemSize int, data []float32) {
	g.attributes[name] = &Attribute{ItemSize: itemSize, Data: data}
	if name == AttrPosition {
		g.ComputeBounds()
	}
}

// Attribute returns the named attribute or nil.
func (g *Geometry) Attribute(name string) *Attribute {
	return g.attributes[name]
}

// AttributeNames returns attribute names in sorted order.
func (g *Geometry) AttributeNames() []string {
	names := make([]string, 0, len(g.attributes))
	for name := range g.attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Indexed reports whether the geometry has an index buffer.
func (g *Geometry) Indexed() bool {
	return g.Index != nil
}

// VertexCount returns the number of positions.
func (g *Geometry) VertexCount() int {
	return g.attributes[AttrPosition].Count()
}

// TriangleCount returns the number of triangles drawn.
func (g *Geometry) TriangleCount() int {
	if g.Indexed() {
		return len(g.Index) / 3
	}
	return g.VertexCount() / 3
}

// Position returns vertex i.
func (g *Geometry) Position(i int) [3]float32 {
	d := g.attributes[AttrPosition].Data
	return [3]float32{d[i*3], d[i*3+1], d[i*3+2]}
}

// Bounds returns the cached bounding box.
func (g *Geometry) Bounds() Bounds {
	return g.bounds
}

// Sphere returns the cached bounding sphere.
func (g *Geometry) Sphere() Sphere {
	return g.sphere
}

// ComputeBounds recomputes the bounding box and sphere from positions.
func (g *Geometry) ComputeBounds() {
	g.bounds = emptyBounds()
	pos := g.attributes[AttrPosition]
	n := pos.Count()
	if n == 0 {
		g.sphere = Sphere{}
		return
	}
	for i := 0; i < n; i++ {
		p := g.Position(i)
		for j := 0; j < 3; j++ {
			if p[j] < g.bounds.Min[j] {
				g.bounds.Min[j] = p[j]
			}
			if p[j] > g.bounds.Max[j] {
				g.bounds.Max[j] = p[j]
			}
		}
	}

	// Sphere centred on the box, radius to the farthest vertex
	center := g.bounds.Center()
	var maxSq float32
	for i := 0; i < n; i++ {
		p := g.Position(i)
		dx, dy, dz := p[0]-center[0], p[1]-center[1], p[2]-center[2]
		if d := dx*dx + dy*dy + dz*dz; d > maxSq {
			maxSq = d
		}
	}
	g.sphere = Sphere{Center: center, Radius: float32(gomath.Sqrt(float64(maxSq)))}
}

// ApplyMatrix transforms positions as points and normals as directions,
// then refreshes bounds.
func (g *Geometry) ApplyMatrix(m math.Mat4) {
	if pos := g.attributes[AttrPosition]; pos != nil {
		for i := 0; i < pos.Count(); i++ {
			p := m.TransformPoint([3]float32{pos.Data[i*3], pos.Data[i*3+1], pos.Data[i*3+2]})
			copy(pos.Data[i*3:i*3+3], p[:])
		}
	}
	if nrm := g.attributes[AttrNormal]; nrm != nil {
		for i := 0; i < nrm.Count(); i++ {
			d := m.TransformDirection([3]float32{nrm.Data[i*3], nrm.Data[i*3+1], nrm.Data[i*3+2]})
			v := math.Vec3{X: d[0], Y: d[1], Z: d[2]}.Normalize()
			nrm.Data[i*3], nrm.Data[i*3+1], nrm.Data[i*3+2] = v.X, v.Y, v.Z
		}
	}
	g.ComputeBounds()
}

// Translate moves every position by (x, y, z).
func (g *Geometry) Translate(x, y, z float32) {
	g.ApplyMatrix(math.Translate(x, y, z))
}

// Clone returns a deep copy.
func (g *Geometry) Clone() *Geometry {
	c := New()
	for name, a := range g.attributes {
		c.attributes[name] = &Attribute{ItemSize: a.ItemSize, Data: append([]float32(nil), a.Data...)}
	}
	if g.Index != nil {
		c.Index = append([]uint32(nil), g.Index...)
	}
	c.bounds, c.sphere = g.bounds, g.sphere
	return c
}

// Dispose releases the buffers. Calling it twice is a no-op.
func (g *Geometry) Dispose() {
	if g.disposed {
		return
	}
	g.attributes = make(map[string]*Attribute)
	g.Index = nil
	g.disposed = true
}

// Disposed reports whether Dispose has been called.
func (g *Geometry) Disposed() bool {
	return g.disposed
}
