package projection

import (
	gomath "math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"

	"github.com/Faultbox/midgard-geo/pkg/math"
)

// DefaultScale is world units per metre used when none is configured.
const DefaultScale = 0.01

// Mercator projects through spherical Web Mercator, recentred on an origin
// and corrected by the cosine of the origin latitude so that one world unit
// is Scale metres-on-the-ground near the origin. East maps to +X and north
// to -Z.
type Mercator struct {
	origin orb.Point // origin in mercator metres
	factor float64   // scale times latitude correction
}

// NewMercator creates a projector centred at (lat, lon). A non-positive
// scale falls back to DefaultScale.
func NewMercator(lat, lon, scale float64) *Mercator {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Mercator{
		origin: project.WGS84.ToMercator(orb.Point{lon, lat}),
		factor: scale * gomath.Cos(lat*gomath.Pi/180),
	}
}

// Project implements Projector.
func (m *Mercator) Project(lat, lon float64) math.Vec3 {
	p := project.WGS84.ToMercator(orb.Point{lon, lat})
	return math.Vec3{
		X: float32((p[0] - m.origin[0]) * m.factor),
		Y: 0,
		Z: float32(-(p[1] - m.origin[1]) * m.factor),
	}
}

// Unproject is the inverse of Project for the X/Z plane.
func (m *Mercator) Unproject(v math.Vec3) (lat, lon float64) {
	p := orb.Point{
		float64(v.X)/m.factor + m.origin[0],
		-float64(v.Z)/m.factor + m.origin[1],
	}
	g := project.Mercator.ToWGS84(p)
	return g[1], g[0]
}
