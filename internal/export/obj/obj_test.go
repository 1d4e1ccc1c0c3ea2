package obj

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/Faultbox/midgard-geo/internal/engine/line"
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/internal/layer"
	"github.com/Faultbox/midgard-geo/pkg/math"
)

func unitBox() *mesh.Geometry {
	return mesh.NewBox(mesh.Bounds{Max: [3]float32{1, 1, 1}})
}

func testLayer() *layer.Layer {
	l := layer.New("city")
	m := layer.NewMesh("Town Hall", unitBox(), material.New(material.KindSurface, 0xffffff))
	m.Position.Y = 1
	l.Add(m)

	hidden := layer.NewMesh("hidden", unitBox(), material.New(material.KindBasic, 0))
	hidden.Visible = false
	l.Add(hidden)

	road := line.Polyline([]math.Vec3{{X: 0}, {X: 1}, {X: 1, Z: 1}})
	l.Add(layer.NewLine("road", road, material.New(material.KindLine, 0)))
	return l
}

func prefixed(out, prefix string) []string {
	var lines []string
	for _, s := range strings.Split(out, "\n") {
		if strings.HasPrefix(s, prefix) {
			lines = append(lines, s)
		}
	}
	return lines
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	sum, err := Write(&buf, testLayer(), Options{})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	if sum.Objects != 2 || sum.Faces != 12 || sum.Lines != 1 || sum.Vertices != 27 {
		t.Errorf("summary = %+v", sum)
	}
	if !strings.Contains(out, "o Town_Hall\n") {
		t.Error("mesh object name not sanitized")
	}
	if len(prefixed(out, "f ")) != 12 {
		t.Errorf("faces = %d", len(prefixed(out, "f ")))
	}
	if got := prefixed(out, "l "); len(got) != 1 || got[0] != "l 25 26 27" {
		t.Errorf("line records = %q", got)
	}
	for i, v := range prefixed(out, "v ")[:24] {
		y, _ := strconv.ParseFloat(strings.Fields(v)[2], 64)
		if y < 1 {
			t.Fatalf("vertex %d: y = %v, position offset not applied", i, y)
		}
	}
}

func TestWriteHiddenAndColliders(t *testing.T) {
	l := testLayer()
	colliders := layer.NewGroup("city_colliders")
	colliders.Add(layer.NewMesh("Town Hall", unitBox(), material.New(material.KindBasic, 0)))
	l.Root().Collider = &layer.Collider{Enabled: true, Colliders: colliders}

	var buf bytes.Buffer
	sum, err := Write(&buf, l, Options{Hidden: true, Colliders: true})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	// Two boxes, the road and one wireframe of 12 segments.
	if sum.Objects != 4 || sum.Faces != 24 || sum.Lines != 13 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city.obj")
	if _, err := WriteFile(path, testLayer(), Options{}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# city\n") {
		t.Errorf("unexpected header: %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}
