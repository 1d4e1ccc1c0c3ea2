// Package lighting describes the light that shades water surfaces.
package lighting

import "math"

// Light is a directional light placed at Position and aimed at the origin.
type Light struct {
	Color     uint32
	Intensity float32
	Position  [3]float32
}

// DefaultSun is a white light of intensity 0.5 above the origin.
func DefaultSun() Light {
	return Light{Color: 0xffffff, Intensity: 0.5, Position: [3]float32{0, 4, 0}}
}

// Direction returns the normalized vector from the origin towards the light.
func (l Light) Direction() [3]float32 {
	p := l.Position
	n := float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
	if n == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{p[0] / n, p[1] / n, p[2] / n}
}

// SunDirection converts azimuth and elevation angles in degrees to a unit
// vector pointing towards the sun. Azimuth rotates about Y starting at +Z.
func SunDirection(azimuth, elevation float64) [3]float32 {
	azRad := azimuth * math.Pi / 180.0
	elRad := elevation * math.Pi / 180.0

	x := float32(math.Cos(elRad) * math.Sin(azRad))
	y := float32(math.Sin(elRad))
	z := float32(math.Cos(elRad) * math.Cos(azRad))

	return [3]float32{x, y, z}
}

// FromAngles places a light at distance along SunDirection.
func FromAngles(azimuth, elevation float64, distance float32, color uint32, intensity float32) Light {
	d := SunDirection(azimuth, elevation)
	return Light{
		Color:     color,
		Intensity: intensity,
		Position:  [3]float32{d[0] * distance, d[1] * distance, d[2] * distance},
	}
}
