package line

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/pkg/math"
)

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-3
}

func TestCatmullRomInterpolates(t *testing.T) {
	pts := []math.Vec3{{X: 0}, {X: 1, Z: 1}, {X: 3, Z: 1}, {X: 4, Z: 3}}
	c := NewCatmullRom(pts, DefaultTension)

	// Control points are hit at t = i / (n-1)
	for i, p := range pts {
		got := c.Point(float64(i) / float64(len(pts)-1))
		if !near(got.X, p.X) || !near(got.Z, p.Z) {
			t.Errorf("point %d: got %+v, want %+v", i, got, p)
		}
	}

	// Low tension keeps the curve near the chord
	mid := c.Point(0.5)
	if !near(mid.Z, 1) || !near(mid.X, 2) {
		t.Errorf("expected mid-curve near (2, 0, 1), got %+v", mid)
	}
}

func TestCatmullRomEdgeCases(t *testing.T) {
	if (&CatmullRom{}).Point(0.5) != (math.Vec3{}) {
		t.Error("expected zero point for empty spline")
	}
	one := NewCatmullRom([]math.Vec3{{X: 2, Y: 3}}, DefaultTension)
	if one.Point(0.7) != (math.Vec3{X: 2, Y: 3}) {
		t.Error("single point spline should return that point")
	}
	two := NewCatmullRom([]math.Vec3{{}, {X: 10}}, 0.5)
	if got := two.Point(1); !near(got.X, 10) {
		t.Errorf("expected end point, got %+v", got)
	}
	if got := two.Point(2); !near(got.X, 10) {
		t.Errorf("parameters past 1 clamp to the end, got %+v", got)
	}
}

func TestSample(t *testing.T) {
	c := NewCatmullRom([]math.Vec3{{}, {X: 1}, {X: 2}}, DefaultTension)
	divisions := Divisions(3, 24)
	if divisions != 72 {
		t.Fatalf("expected 72 divisions, got %d", divisions)
	}
	pts := c.Sample(divisions)
	if len(pts) != 73 {
		t.Fatalf("expected 73 samples, got %d", len(pts))
	}
	if !near(pts[72].X, 2) {
		t.Errorf("expected last sample at the end point, got %+v", pts[72])
	}
	if Divisions(0, 24) != 1 {
		t.Error("expected at least one division")
	}
}

func TestPolyline(t *testing.T) {
	g := Polyline([]math.Vec3{{}, {X: 3}, {X: 3, Z: 4}})
	if g.VertexCount() != 3 || g.Indexed() {
		t.Fatalf("unexpected polyline layout")
	}
	d := g.Attribute(mesh.AttrLineDistance).Data
	if d[0] != 0 || d[1] != 3 || d[2] != 7 {
		t.Errorf("unexpected line distances %v", d)
	}
	if TotalDistance(g) != 7 || Length([]math.Vec3{{}, {X: 3}, {X: 3, Z: 4}}) != 7 {
		t.Error("expected total length 7")
	}
}

func TestSegments(t *testing.T) {
	g := Segments([]math.Vec3{{}, {X: 3}, {X: 3, Z: 4}})
	if g.VertexCount() != 4 {
		t.Fatalf("expected 4 vertices for 2 segments, got %d", g.VertexCount())
	}
	if g.Position(1) != g.Position(2) {
		t.Error("consecutive segments should share an end point")
	}
	d := g.Attribute(mesh.AttrLineDistance).Data
	if d[0] != 0 || d[1] != 3 || d[2] != 3 || d[3] != 7 {
		t.Errorf("unexpected segment distances %v", d)
	}
	if Segments([]math.Vec3{{}}).VertexCount() != 0 {
		t.Error("expected no segments from a single point")
	}
}
