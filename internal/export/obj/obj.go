// Package obj writes layers as Wavefront OBJ text.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Faultbox/midgard-geo/internal/engine/debug"
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/internal/layer"
)

// Options control what is exported.
type Options struct {
	Hidden    bool // Include invisible meshes
	Colliders bool // Append collider boxes as wireframes
}

// Summary counts what was written.
type Summary struct {
	Objects  int
	Vertices int
	Faces    int
	Lines    int
}

// WriteFile exports l to path.
func WriteFile(path string, l *layer.Layer, opts Options) (Summary, error) {
	f, err := os.Create(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create %s: %w", path, err)
	}
	s, err := Write(f, l, opts)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	return s, err
}

// Write exports every mesh and line under l. Node positions are baked into
// the vertices.
func Write(w io.Writer, l *layer.Layer, opts Options) (Summary, error) {
	e := &encoder{w: bufio.NewWriter(w), base: 1}
	fmt.Fprintf(e.w, "# %s\n", l.Name())

	l.Root().Walk(func(r layer.Renderable) bool {
		switch v := r.(type) {
		case *layer.Group:
			return v.Visible || opts.Hidden
		case *layer.Line:
			if v.Visible || opts.Hidden {
				e.line(v)
			}
		default:
			if m, ok := layer.AsMesh(r); ok && (m.Visible || opts.Hidden) {
				e.mesh(m)
			}
		}
		return true
	})

	if col := l.Root().Collider; opts.Colliders && col != nil && col.Enabled {
		wire := material.New(material.KindLine, 0xff00ff)
		if frames := debug.ColliderWireframes(col.Colliders, wire, debug.DefaultBBoxPadding); frames != nil {
			for _, r := range frames.Children() {
				e.line(r.(*layer.Line))
			}
			frames.Dispose()
		}
	}

	if e.err == nil {
		e.err = e.w.Flush()
	}
	return e.sum, e.err
}

type encoder struct {
	w    *bufio.Writer
	base int // OBJ indices are global and 1-based
	sum  Summary
	err  error
}

func (e *encoder) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *encoder) vertices(g *mesh.Geometry, off [3]float32) int {
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		p := g.Position(i)
		e.printf("v %g %g %g\n", p[0]+off[0], p[1]+off[1], p[2]+off[2])
	}
	e.sum.Vertices += n
	return n
}

func (e *encoder) mesh(m *layer.Mesh) {
	g := m.Geometry
	if g == nil || g.Disposed() || g.VertexCount() == 0 {
		return
	}
	e.printf("o %s\n", objectName(m.Name()))
	n := e.vertices(g, m.Position.Array())

	normals := g.Attribute(mesh.AttrNormal)
	uvs := g.Attribute(mesh.AttrUV)
	if normals != nil {
		for i := 0; i+2 < len(normals.Data); i += 3 {
			e.printf("vn %g %g %g\n", normals.Data[i], normals.Data[i+1], normals.Data[i+2])
		}
	}
	if uvs != nil {
		for i := 0; i+1 < len(uvs.Data); i += 2 {
			e.printf("vt %g %g\n", uvs.Data[i], uvs.Data[i+1])
		}
	}

	ref := func(i int) string {
		k := e.base + i
		switch {
		case normals != nil && uvs != nil:
			return fmt.Sprintf("%d/%d/%d", k, k, k)
		case normals != nil:
			return fmt.Sprintf("%d//%d", k, k)
		case uvs != nil:
			return fmt.Sprintf("%d/%d", k, k)
		default:
			return fmt.Sprint(k)
		}
	}
	index := func(i int) int { return i }
	count := n
	if g.Indexed() {
		index = func(i int) int { return int(g.Index[i]) }
		count = len(g.Index)
	}
	for i := 0; i+2 < count; i += 3 {
		e.printf("f %s %s %s\n", ref(index(i)), ref(index(i+1)), ref(index(i+2)))
		e.sum.Faces++
	}
	e.base += n
	e.sum.Objects++
}

func (e *encoder) line(l *layer.Line) {
	g := l.Geometry
	if g == nil || g.Disposed() || g.VertexCount() < 2 {
		return
	}
	e.printf("o %s\n", objectName(l.Name()))
	n := e.vertices(g, l.Position.Array())
	if l.Segments {
		for i := 0; i+1 < n; i += 2 {
			e.printf("l %d %d\n", e.base+i, e.base+i+1)
			e.sum.Lines++
		}
	} else {
		var b strings.Builder
		b.WriteString("l")
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, " %d", e.base+i)
		}
		e.printf("%s\n", b.String())
		e.sum.Lines++
	}
	e.base += n
	e.sum.Objects++
}

// objectName keeps OBJ object names on one token.
func objectName(name string) string {
	if name == "" {
		return "object"
	}
	return strings.Join(strings.Fields(name), "_")
}
