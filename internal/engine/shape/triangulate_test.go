package shape

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func triangleArea(pts []orb.Point, tri [3]int) float64 {
	return cross(pts[tri[0]], pts[tri[1]], pts[tri[2]]) / 2
}

func allPoints(contour orb.Ring, holes []orb.Ring) []orb.Point {
	pts := append([]orb.Point(nil), contour...)
	for _, h := range holes {
		pts = append(pts, h...)
	}
	return pts
}

func closed(r orb.Ring) orb.Ring {
	return append(append(orb.Ring(nil), r...), r[0])
}

// ringArea is the unsigned shoelace area of an open ring.
func ringArea(r orb.Ring) float64 {
	var sum float64
	for i := range r {
		j := (i + 1) % len(r)
		sum += r[i][0]*r[j][1] - r[j][0]*r[i][1]
	}
	return gomath.Abs(sum) / 2
}

// checkCover triangulates and verifies that the triangles wind
// counter-clockwise, lie inside the polygon and add up to its area.
func checkCover(t *testing.T, contour orb.Ring, holes []orb.Ring) [][3]int {
	t.Helper()
	tris := Triangulate(contour, holes)

	pts := allPoints(contour, holes)
	poly := orb.Polygon{closed(contour)}
	want := ringArea(contour)
	for _, h := range holes {
		poly = append(poly, closed(h))
		want -= ringArea(h)
	}

	var sum float64
	for _, tri := range tris {
		a := triangleArea(pts, tri)
		if a <= 0 {
			t.Errorf("triangle %v is not counter-clockwise (area %g)", tri, a)
		}
		sum += a
		c := orb.Point{
			(pts[tri[0]][0] + pts[tri[1]][0] + pts[tri[2]][0]) / 3,
			(pts[tri[0]][1] + pts[tri[1]][1] + pts[tri[2]][1]) / 3,
		}
		if !planar.PolygonContains(poly, c) {
			t.Errorf("triangle %v lies outside the polygon", tri)
		}
	}
	if gomath.Abs(sum-want) > 1e-9*gomath.Max(1, want) {
		t.Errorf("triangle area %f, polygon area %f (%d triangles)", sum, want, len(tris))
	}
	return tris
}

func TestTriangulate(t *testing.T) {
	tests := []struct {
		name     string
		contour  orb.Ring
		holes    []orb.Ring
		wantTris int
	}{
		{
			name:     "square",
			contour:  orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			wantTris: 2,
		},
		{
			name:     "concave L",
			contour:  orb.Ring{{0, 0}, {3, 0}, {3, 1}, {1, 1}, {1, 3}, {0, 3}},
			wantTris: 4,
		},
		{
			name:     "square with hole",
			contour:  orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
			holes:    []orb.Ring{{{4, 4}, {4, 6}, {6, 6}, {6, 4}}},
			wantTris: 8,
		},
		{
			name:    "two holes",
			contour: orb.Ring{{0, 0}, {20, 0}, {20, 10}, {0, 10}},
			holes: []orb.Ring{
				{{2, 2}, {2, 8}, {8, 8}, {8, 2}},
				{{12, 2}, {12, 8}, {18, 8}, {18, 2}},
			},
			wantTris: 14,
		},
		{
			name:    "holes sharing a column",
			contour: orb.Ring{{-50, -50}, {50, -50}, {50, 50}, {-50, 50}},
			holes: []orb.Ring{
				{{12, 12}, {12, 17}, {17, 17}, {17, 12}},
				{{20, -10}, {20, -5}, {25, -5}, {25, -10}},
				{{12, -18}, {12, -13}, {17, -13}, {17, -18}},
			},
			wantTris: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tris := checkCover(t, tt.contour, tt.holes)
			if len(tris) != tt.wantTris {
				t.Errorf("expected %d triangles, got %d", tt.wantTris, len(tris))
			}
		})
	}
}

func TestTriangulateAlignedHoles(t *testing.T) {
	// Leftmost vertices share x, and a later hole sits level with an
	// earlier one, so bridges meet at duplicated outline vertices.
	contour := orb.Ring{{-50, -50}, {50, -50}, {50, 50}, {-50, 50}}
	holes := []orb.Ring{
		square(12, -18, 5),
		square(22, 12, 5),
		square(12, 12, 5),
	}
	tris := checkCover(t, contour, holes)
	if len(tris) > 20 {
		t.Errorf("expected at most 20 triangles, got %d", len(tris))
	}
}

// square returns a clockwise square hole with its lower left corner at (x, y).
func square(x, y, size float64) orb.Ring {
	return orb.Ring{{x, y}, {x, y + size}, {x + size, y + size}, {x + size, y}}
}

// star returns a counter-clockwise concave ring whose radius varies
// between 40 and 60. With at least 8 points its edges stay clear of the
// box [-25, 25] x [-25, 25].
func star(rng *rand.Rand, n int) orb.Ring {
	r := make(orb.Ring, n)
	for i := range r {
		a := 2 * gomath.Pi * float64(i) / float64(n)
		d := 40 + 20*rng.Float64()
		r[i] = orb.Point{d * gomath.Cos(a), d * gomath.Sin(a)}
	}
	return r
}

// quadrantHoles places up to four square holes, one per quadrant of
// [-25, 25] x [-25, 25], so that they never touch.
func quadrantHoles(rng *rand.Rand, count int) []orb.Ring {
	corners := []orb.Point{{-25, -25}, {0, -25}, {-25, 0}, {0, 0}}
	rng.Shuffle(len(corners), func(i, j int) { corners[i], corners[j] = corners[j], corners[i] })
	holes := make([]orb.Ring, 0, count)
	for _, c := range corners[:count] {
		size := 3 + 7*rng.Float64()
		x := c[0] + 1 + (23-size)*rng.Float64()
		y := c[1] + 1 + (23-size)*rng.Float64()
		holes = append(holes, square(x, y, size))
	}
	return holes
}

func TestTriangulateGeneratedPolygons(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		n := 8 + rng.Intn(13)
		h := rng.Intn(5)
		contour := star(rng, n)
		holes := quadrantHoles(rng, h)

		tris := checkCover(t, contour, holes)
		if want := n + 6*h - 2; len(tris) != want {
			t.Errorf("polygon %d (%d points, %d holes): expected %d triangles, got %d", i, n, h, want, len(tris))
		}
		if t.Failed() {
			t.Fatalf("polygon %d: contour %v holes %v", i, contour, holes)
		}
	}
}

func TestTriangulateHoleWinding(t *testing.T) {
	// Counter-clockwise holes are reversed internally.
	contour := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	hole := orb.Ring{{4, 4}, {6, 4}, {6, 6}, {4, 6}}
	if tris := checkCover(t, contour, []orb.Ring{hole}); len(tris) != 8 {
		t.Errorf("expected 8 triangles, got %d", len(tris))
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	if tris := Triangulate(orb.Ring{{0, 0}, {1, 1}}, nil); tris != nil {
		t.Errorf("expected no triangles, got %v", tris)
	}
	// Collinear points must terminate without producing slivers
	tris := Triangulate(orb.Ring{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {0, 1}}, nil)
	pts := []orb.Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {0, 1}}
	var sum float64
	for _, tri := range tris {
		sum += triangleArea(pts, tri)
	}
	if gomath.Abs(sum-2) > 1e-9 {
		t.Errorf("expected area 2, got %f", sum)
	}
}
