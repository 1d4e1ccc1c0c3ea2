package terrain

import (
	"testing"

	"github.com/Faultbox/midgard-geo/pkg/math"
)

func TestNearestElevation(t *testing.T) {
	samples := Samples{
		{X: 0, Y: 1, Z: 0},
		{X: 10, Y: 2, Z: 0},
		{X: 0, Y: 3, Z: 10},
		{X: 10, Y: 4, Z: 10},
	}

	tests := []struct {
		name  string
		point math.Vec2
		want  float32
	}{
		{"exact", math.Vec2{X: 10, Y: 10}, 4},
		{"near first", math.Vec2{X: 1, Y: 2}, 1},
		{"near third", math.Vec2{X: -3, Y: 8}, 3},
		{"tie goes to first", math.Vec2{X: 5, Y: 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := NearestElevation(tt.point, samples)
			if !ok {
				t.Fatal("expected a sample")
			}
			if v.Y != tt.want {
				t.Errorf("got elevation %f, want %f", v.Y, tt.want)
			}
		})
	}
}

func TestNearestElevationDeterministic(t *testing.T) {
	samples := Samples{{X: 1, Y: 7, Z: 1}, {X: -1, Y: 9, Z: -1}, {X: 1, Y: 8, Z: 1}}
	p := math.Vec2{X: 0.9, Y: 1.2}
	first, _ := NearestElevation(p, samples)
	for i := 0; i < 10; i++ {
		if got, _ := NearestElevation(p, samples); got != first {
			t.Fatalf("call %d returned %+v, first returned %+v", i, got, first)
		}
	}
	if first.Y != 7 {
		t.Errorf("duplicate position should resolve to the earliest sample, got %f", first.Y)
	}
}

func TestNearestElevationSingletonAndEmpty(t *testing.T) {
	only := Samples{{X: 3, Y: 5, Z: -2}}
	for _, p := range []math.Vec2{{}, {X: 1e6, Y: -1e6}, {X: 3, Y: -2}} {
		v, ok := NearestElevation(p, only)
		if !ok || v != only[0] {
			t.Errorf("singleton set at %+v returned %+v, %v", p, v, ok)
		}
	}

	if _, ok := NearestElevation(math.Vec2{}, nil); ok {
		t.Error("expected no sample from empty set")
	}
	if Samples(nil).Elevation(0, 0) != 0 {
		t.Error("expected zero elevation from empty set")
	}
}

func TestSamplesBounds(t *testing.T) {
	min, max := Samples{{X: 1, Y: -2, Z: 3}, {X: -1, Y: 5, Z: 0}}.Bounds()
	if min != (math.Vec3{X: -1, Y: -2, Z: 0}) || max != (math.Vec3{X: 1, Y: 5, Z: 3}) {
		t.Errorf("unexpected bounds %+v %+v", min, max)
	}
}
