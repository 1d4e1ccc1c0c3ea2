package lighting

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestDefaultSun(t *testing.T) {
	sun := DefaultSun()
	if sun.Color != 0xffffff || sun.Intensity != 0.5 {
		t.Errorf("unexpected default sun %+v", sun)
	}
	if d := sun.Direction(); d != [3]float32{0, 1, 0} {
		t.Errorf("expected straight up, got %v", d)
	}
	if d := (Light{}).Direction(); d != [3]float32{0, 1, 0} {
		t.Errorf("zero position should fall back to up, got %v", d)
	}
}

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name          string
		azimuth, elev float64
		want          [3]float32
	}{
		{"zenith", 0, 90, [3]float32{0, 1, 0}},
		{"south horizon", 0, 0, [3]float32{0, 0, 1}},
		{"east horizon", 90, 0, [3]float32{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.azimuth, tt.elev)
			for i := range got {
				if !near(got[i], tt.want[i]) {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFromAngles(t *testing.T) {
	l := FromAngles(90, 0, 10, 0xff0000, 1)
	if !near(l.Position[0], 10) || !near(l.Direction()[0], 1) {
		t.Errorf("unexpected light %+v", l)
	}
}
