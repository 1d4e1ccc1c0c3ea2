package animation

import (
	"math"
	"testing"

	"github.com/Faultbox/midgard-geo/internal/engine/material"
)

func dashed(length float32) *material.Material {
	m := material.New(material.KindDashedLine, 0x00ffff)
	m.GapSize = length + 10
	return m
}

func TestDashLineLoops(t *testing.T) {
	m := dashed(6)
	d := NewDashLine("road", m, 6)
	if d.Speed != 2 {
		t.Fatalf("expected speed 2, got %f", d.Speed)
	}

	d.Update(1)
	if m.DashSize != 2 {
		t.Errorf("expected dash 2 after 1s, got %f", m.DashSize)
	}
	d.Update(2.5)
	if m.DashSize != 1 {
		t.Errorf("expected dash to wrap to 1, got %f", m.DashSize)
	}
	if m.GapSize != 16 {
		t.Errorf("gap must stay fixed, got %f", m.GapSize)
	}
}

func TestDashLineLargeSteps(t *testing.T) {
	tests := []struct {
		name string
		dt   float32
	}{
		{"beyond float32 precision", 1e9},
		{"max float", math.MaxFloat32},
		{"infinite", float32(math.Inf(1))},
		{"negative infinite", float32(math.Inf(-1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := dashed(6)
			d := NewDashLine("road", m, 6)
			d.Update(tt.dt)
			if m.DashSize < 0 || m.DashSize > 6 || math.IsNaN(float64(m.DashSize)) {
				t.Errorf("dash %f outside [0, 6]", m.DashSize)
			}
		})
	}
}

func TestDashLineZeroLength(t *testing.T) {
	m := dashed(0)
	NewDashLine("dot", m, 0).Update(5)
	if m.DashSize != 0 {
		t.Errorf("expected no change, got %f", m.DashSize)
	}
}

func TestLoop(t *testing.T) {
	loop := NewLoop()
	var e Engine = loop
	m := dashed(3)
	e.Register(NewDashLine("a", m, 3))
	e.Register(nil)

	loop.Update(0.5)
	loop.Update(0.5)
	if loop.Len() != 1 || loop.Elapsed() != 1 {
		t.Errorf("unexpected loop state len=%d elapsed=%f", loop.Len(), loop.Elapsed())
	}
	if m.DashSize != 1 {
		t.Errorf("expected dash 1, got %f", m.DashSize)
	}
	if loop.Find("a") == nil || loop.Find("b") != nil {
		t.Error("Find mismatch")
	}
}
