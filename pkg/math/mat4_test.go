package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateXQuarterTurn(t *testing.T) {
	// +90 degrees about X maps +Z to -Y.
	result := RotateX(math.Pi / 2).TransformPoint([3]float32{0, 0, 1})
	expected := [3]float32{0, -1, 0}
	if result != expected {
		t.Errorf("RotateX 90: got %v, want %v", result, expected)
	}
}

func TestRotateZHalfTurn(t *testing.T) {
	result := RotateZ(math.Pi).TransformPoint([3]float32{1, 2, 3})
	expected := [3]float32{-1, -2, 3}
	if result != expected {
		t.Errorf("RotateZ 180: got %v, want %v", result, expected)
	}
}

func TestComposedReorientation(t *testing.T) {
	// X first, then Z: (x, y, z) -> (-x, z, y).
	m := RotateZ(math.Pi).Mul(RotateX(math.Pi / 2))
	result := m.TransformPoint([3]float32{1, 2, 3})
	expected := [3]float32{-1, 3, 2}
	if result != expected {
		t.Errorf("reorientation: got %v, want %v", result, expected)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(5, 5, 5)
	d := m.TransformDirection([3]float32{0, 1, 0})
	if d != [3]float32{0, 1, 0} {
		t.Errorf("TransformDirection: got %v, want (0, 1, 0)", d)
	}
}
