package terrain

import (
	"github.com/Faultbox/midgard-geo/pkg/math"
)

// NearestElevation returns the sample closest to p on the horizontal plane,
// where p.X is world X and p.Y is world Z. Ties go to the earliest sample.
// It reports false for an empty sample set.
func NearestElevation(p math.Vec2, samples Samples) (math.Vec3, bool) {
	if len(samples) == 0 {
		return math.Vec3{}, false
	}
	best := 0
	bestDist := p.DistanceSq(samples[0].XZ())
	for i := 1; i < len(samples); i++ {
		if d := p.DistanceSq(samples[i].XZ()); d < bestDist {
			best, bestDist = i, d
		}
	}
	return samples[best], true
}

// Elevation returns the Y of the nearest sample, or 0 when there is none.
func (s Samples) Elevation(x, z float32) float32 {
	v, ok := NearestElevation(math.Vec2{X: x, Y: z}, s)
	if !ok {
		return 0
	}
	return v.Y
}

// Bounds returns the extent of the samples.
func (s Samples) Bounds() (min, max math.Vec3) {
	if len(s) == 0 {
		return
	}
	min, max = s[0], s[0]
	for _, v := range s[1:] {
		min = math.Vec3{X: minf(min.X, v.X), Y: minf(min.Y, v.Y), Z: minf(min.Z, v.Z)}
		max = math.Vec3{X: maxf(max.X, v.X), Y: maxf(max.Y, v.Y), Z: maxf(max.Z, v.Z)}
	}
	return min, max
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
