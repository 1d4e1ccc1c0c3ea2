// Package projection maps geographic coordinates into the local world frame.
package projection

import (
	"github.com/Faultbox/midgard-geo/pkg/math"
)

// Projector converts latitude/longitude into world coordinates. Shapes are
// built from the X and Z components; Y is ignored by the builders.
type Projector interface {
	Project(lat, lon float64) math.Vec3
}

// Func adapts a plain function to Projector.
type Func func(lat, lon float64) math.Vec3

// Project calls f.
func (f Func) Project(lat, lon float64) math.Vec3 {
	return f(lat, lon)
}
