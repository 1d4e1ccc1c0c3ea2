package feature

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
)

func square() []any {
	return []any{
		[]any{0.0, 0.0}, []any{1.0, 0.0}, []any{1.0, 1.0}, []any{0.0, 1.0}, []any{0.0, 0.0},
	}
}

func hole() []any {
	return []any{
		[]any{0.25, 0.25}, []any{0.25, 0.75}, []any{0.75, 0.75}, []any{0.25, 0.25},
	}
}

func TestNormalizePolygon(t *testing.T) {
	tests := []struct {
		name      string
		coords    any
		wantOuter int
		wantHoles int
	}{
		{"flat ring", square(), 5, 0},
		{"ring list", []any{square()}, 5, 0},
		{"ring list with hole", []any{square(), hole()}, 5, 1},
		{"ring of rings", []any{[]any{square(), hole()}}, 5, 1},
		{"doubly wrapped", []any{[]any{[]any{square()}}}, 5, 0},
		{"typed slices", [][][]float64{{{0, 0}, {3, 0}, {3, 3}, {0, 0}}}, 4, 0},
		{"orb ring", orb.Ring{{0, 0}, {1, 0}, {0, 1}}, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NormalizePolygon(tt.coords)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p.Outer) != tt.wantOuter {
				t.Errorf("outer ring: got %d points, want %d", len(p.Outer), tt.wantOuter)
			}
			if len(p.Holes) != tt.wantHoles {
				t.Errorf("holes: got %d, want %d", len(p.Holes), tt.wantHoles)
			}
			if len(p.Rings()) != 1+tt.wantHoles {
				t.Errorf("Rings: got %d", len(p.Rings()))
			}
		})
	}
}

func TestNormalizePolygonErrors(t *testing.T) {
	tests := []struct {
		name   string
		coords any
		want   error
	}{
		{"empty", []any{}, ErrEmptyCoordinates},
		{"empty ring", []any{[]any{}}, ErrEmptyCoordinates},
		{"scalar", 4.0, ErrUnexpectedNesting},
		{"string", "ring", ErrUnexpectedNesting},
		{"nil", nil, ErrUnexpectedNesting},
		{"single point", []any{1.0, 2.0}, ErrUnexpectedNesting},
		{"short point", []any{[]any{1.0}, []any{1.0, 2.0}}, ErrMalformedPoint},
		{"non-numeric ordinate", []any{[]any{"a", 1.0}, []any{1.0, 2.0}}, ErrMalformedPoint},
		{"scalar in ring list", []any{square(), 3.0}, ErrUnexpectedNesting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizePolygon(tt.coords)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPolygons(t *testing.T) {
	multi := &Feature{
		Type:        TypeMultiPolygon,
		Coordinates: []any{[]any{square()}, []any{square(), hole()}},
	}
	polys, err := Polygons(multi)
	if err != nil {
		t.Fatalf("Polygons failed: %v", err)
	}
	if len(polys) != 2 {
		t.Fatalf("expected 2 polygons, got %d", len(polys))
	}
	if len(polys[1].Holes) != 1 {
		t.Errorf("expected second polygon to keep its hole")
	}
	if got := polys[1].Orb(); len(got) != 2 {
		t.Errorf("expected orb polygon with 2 rings, got %d", len(got))
	}

	if _, err := Polygons(&Feature{Type: TypeLineString}); !errors.Is(err, ErrUnexpectedNesting) {
		t.Errorf("expected nesting error for line string, got %v", err)
	}
	if _, err := Polygons(&Feature{Type: TypeMultiPolygon, Coordinates: []any{}}); !errors.Is(err, ErrEmptyCoordinates) {
		t.Errorf("expected empty error, got %v", err)
	}
}

func TestLineString(t *testing.T) {
	ls, err := LineString([]any{[]any{0.0, 0.0}, []any{1.0, 2.0, 30.0}})
	if err != nil {
		t.Fatalf("LineString failed: %v", err)
	}
	if ls[1] != (orb.Point{1, 2}) {
		t.Errorf("expected altitude to be dropped, got %v", ls[1])
	}
	if _, err := LineString([]any{[]any{0.0}}); !errors.Is(err, ErrMalformedPoint) {
		t.Errorf("expected malformed point, got %v", err)
	}
}
