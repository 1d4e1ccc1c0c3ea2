package layer

import (
	"testing"

	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
)

func box() *mesh.Geometry {
	return mesh.NewBox(mesh.Bounds{Max: [3]float32{1, 1, 1}})
}

func managed() *material.Material {
	return material.Default().Resolve(func() *material.Material {
		return material.New(material.KindSurface, 0x123456)
	})
}

type surface struct {
	*Mesh
}

func TestLayerAddFind(t *testing.T) {
	l := New("city")
	objects := NewGroup("city_objects")
	l.Add(objects)
	hall := NewMesh("hall", box(), managed())
	objects.Add(hall)

	if l.Name() != "city" {
		t.Errorf("unexpected name %q", l.Name())
	}
	if got := l.Find("hall"); got != hall {
		t.Errorf("expected nested mesh, got %v", got)
	}
	if got := l.Find("city_objects"); got != objects {
		t.Errorf("expected group, got %v", got)
	}
	if l.Find("missing") != nil {
		t.Error("expected nil for unknown name")
	}
}

func TestLayerDelete(t *testing.T) {
	mat := managed()
	a := NewMesh("a", box(), mat)
	b := NewMesh("b", box(), mat)
	l := New("test").Add(a).Add(b)

	l.Delete(a)
	if l.Root().Len() != 1 || l.Find("a") != nil {
		t.Error("expected a to be removed")
	}
	if !a.Disposed() || !a.Geometry.Disposed() {
		t.Error("expected a to be disposed")
	}
	if mat.Disposed() {
		t.Error("shared material disposed while b still uses it")
	}

	l.Clear()
	if l.Root().Len() != 0 {
		t.Error("expected empty layer after Clear")
	}
	if !mat.Disposed() {
		t.Error("expected managed material disposed after last user")
	}

	// Delete of nil and repeated Dispose are no-ops
	l.Delete(nil)
	a.Dispose()
}

func TestCallerMaterialSurvives(t *testing.T) {
	own := material.New(material.KindLine, 0xffffff)
	l := New("roads")
	l.Add(NewLine("road", mesh.New(), material.Use(own).Resolve(nil)))
	l.Clear()
	if own.Disposed() {
		t.Error("caller material must not be disposed by the layer")
	}
}

func TestStatsAndEmbedding(t *testing.T) {
	l := New("geo")
	sub := NewGroup("geo_objects")
	sub.Add(NewMesh("m", box(), managed()))
	sub.Add(NewSegments("s", mesh.New(), managed()))
	l.Add(sub)
	water := surface{NewMesh("water", box(), managed())}
	l.Add(water)

	s := l.Stats()
	if s.Groups != 1 || s.Meshes != 2 || s.Lines != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
	if s.Triangles != 24 || s.Vertices != 48 {
		t.Errorf("unexpected geometry totals %+v", s)
	}

	if m, ok := AsMesh(water); !ok || m.Name() != "water" {
		t.Error("expected embedded mesh to be reachable")
	}
	if _, ok := AsMesh(sub); ok {
		t.Error("group is not a mesh")
	}
	if !sub.Children()[1].(*Line).Segments {
		t.Error("expected segment line")
	}
}

func TestWalkSkip(t *testing.T) {
	root := NewGroup("root")
	inner := NewGroup("inner")
	inner.Add(NewMesh("hidden", box(), managed()))
	root.Add(inner)

	var seen []string
	root.Walk(func(r Renderable) bool {
		seen = append(seen, r.Name())
		return false
	})
	if len(seen) != 1 || seen[0] != "inner" {
		t.Errorf("expected walk to skip group children, saw %v", seen)
	}
}

func TestClearDisposesColliders(t *testing.T) {
	l := New("geo")
	colliders := NewGroup("geo_colliders")
	c := NewMesh("Hall", box(), managed())
	colliders.Add(c)
	l.Root().Collider = &Collider{Enabled: true, Colliders: colliders}

	l.Clear()
	if !c.Disposed() || colliders.Len() != 0 {
		t.Error("expected colliders to be disposed with the layer")
	}
}
