package water

import (
	"testing"

	"github.com/Faultbox/midgard-geo/internal/engine/animation"
	"github.com/Faultbox/midgard-geo/internal/engine/lighting"
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/internal/layer"
)

func TestNewSurface(t *testing.T) {
	g := mesh.NewBox(mesh.Bounds{Max: [3]float32{1, 0.01, 1}})
	m := material.New(material.KindWater, DefaultWaterColor)
	s := NewSurface("lake", g, m, lighting.DefaultSun())

	if s.Params.SunDirection != [3]float32{0, 1, 0} || s.Params.SunIntensity != 0.5 {
		t.Errorf("unexpected params %+v", s.Params)
	}
	if s.Params.Distortion != DefaultDistortion || s.Params.WaterColor != DefaultWaterColor {
		t.Errorf("unexpected defaults %+v", s.Params)
	}
	if m.Refs() != 1 {
		t.Errorf("expected surface to hold the material, refs=%d", m.Refs())
	}

	// Surfaces live in layers and animation loops
	var r layer.Renderable = s
	var a animation.Animation = s
	if r.Name() != "lake" || a.Name() != "lake" {
		t.Error("unexpected names")
	}
	l := layer.New("water").Add(s)
	l.Clear()
	if !g.Disposed() {
		t.Error("expected geometry disposed with the layer")
	}
}

func TestSurfaceAnimation(t *testing.T) {
	s := NewSurface("pond", mesh.New(), material.New(material.KindWater, 0), lighting.DefaultSun())
	loop := animation.NewLoop()
	loop.Register(s)
	loop.Update(0.25)
	loop.Update(0.25)
	if s.Time != 0.5 {
		t.Errorf("expected time 0.5, got %f", s.Time)
	}
	if s.Frame(DefaultNumFrames) != 5 {
		t.Errorf("expected frame 5, got %d", s.Frame(DefaultNumFrames))
	}
}

func TestCalculateAnimFrame(t *testing.T) {
	tests := []struct {
		time, speed float32
		frames      int
		want        int
	}{
		{0, 1, 32, 0},
		{3.2, 1, 32, 0},
		{3.35, 1, 32, 1},
		{1, 2, 8, 4},
		{1, 1, 0, 0},
		{-1, 1, 8, 0},
	}
	for _, tt := range tests {
		if got := CalculateAnimFrame(tt.time, tt.speed, tt.frames); got != tt.want {
			t.Errorf("CalculateAnimFrame(%v, %v, %d) = %d, want %d", tt.time, tt.speed, tt.frames, got, tt.want)
		}
	}
}
