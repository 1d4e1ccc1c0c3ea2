package shape

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/Faultbox/midgard-geo/internal/engine/projection"
	"github.com/Faultbox/midgard-geo/internal/geo/feature"
	"github.com/Faultbox/midgard-geo/pkg/math"
)

// identity maps lon to x and lat to z.
var identity = projection.Func(func(lat, lon float64) math.Vec3 {
	return math.Vec3{X: float32(lon), Z: float32(lat)}
})

func TestPath(t *testing.T) {
	var p Path
	p.MoveTo(1, 1)
	p.LineTo(2, 1)
	p.LineTo(2, 2)
	if p.Len() != 3 {
		t.Fatalf("expected 3 points, got %d", p.Len())
	}
	p.MoveTo(5, 5)
	if p.Len() != 1 || p.Points()[0] != (orb.Point{5, 5}) {
		t.Errorf("MoveTo should restart the path, got %v", p.Points())
	}
}

func TestBuildShape(t *testing.T) {
	ring := orb.Ring{{0, 0}, {4, 0}, {4, 3}, {0, 0}}
	s, err := BuildShape(ring, identity)
	if err != nil {
		t.Fatalf("BuildShape failed: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 points, got %d", s.Len())
	}
	// lat 3 projects to z 3 and becomes shape y
	if got := s.Points()[2]; got != (orb.Point{4, 3}) {
		t.Errorf("expected (4,3), got %v", got)
	}
}

func TestBuildShapeErrors(t *testing.T) {
	if _, err := BuildShape(orb.Ring{}, identity); !errors.Is(err, ErrEmptyRing) {
		t.Errorf("expected ErrEmptyRing, got %v", err)
	}
	if _, err := BuildShape(orb.Ring{{0, 0}, {gomath.NaN(), 1}}, identity); !errors.Is(err, feature.ErrMalformedPoint) {
		t.Errorf("expected ErrMalformedPoint, got %v", err)
	}
	if _, err := BuildShapeWithHoles(nil, identity); !errors.Is(err, ErrEmptyRing) {
		t.Errorf("expected ErrEmptyRing, got %v", err)
	}
	rings := []orb.Ring{{{0, 0}, {1, 0}, {1, 1}}, {}}
	if _, err := BuildShapeWithHoles(rings, identity); !errors.Is(err, ErrEmptyRing) {
		t.Errorf("expected ErrEmptyRing for empty hole, got %v", err)
	}
}

func TestExtractOrientation(t *testing.T) {
	outerCW := orb.Ring{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}
	holeCCW := orb.Ring{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}}
	s, err := BuildShapeWithHoles([]orb.Ring{outerCW, holeCCW}, identity)
	if err != nil {
		t.Fatalf("BuildShapeWithHoles failed: %v", err)
	}

	contour, holes, err := s.Extract()
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(contour) != 4 {
		t.Errorf("expected closing point removed, got %d points", len(contour))
	}
	if contour.Orientation() != orb.CCW {
		t.Error("expected counter-clockwise contour")
	}
	if len(holes) != 1 || holes[0].Orientation() != orb.CW {
		t.Error("expected one clockwise hole")
	}
	// Source shape is untouched
	if s.Points()[1] != (orb.Point{0, 10}) {
		t.Errorf("Extract modified the path: %v", s.Points())
	}
}

func TestExtractDegenerate(t *testing.T) {
	s, _ := BuildShape(orb.Ring{{0, 0}, {1, 1}, {1, 1}, {0, 0}}, identity)
	if _, _, err := s.Extract(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("expected ErrDegenerate, got %v", err)
	}
}
