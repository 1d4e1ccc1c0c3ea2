package geolayer

import (
	"github.com/Faultbox/midgard-geo/internal/engine/animation"
	"github.com/Faultbox/midgard-geo/internal/engine/lighting"
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/terrain"
)

// Class defaults.
const (
	DefaultBuildingColor = 0x7884B2
	DefaultAreaColor     = 0x2E3342
	DefaultRoadColor     = 0x4287F5
	DefaultRoadLineColor = 0x1B4686
	DefaultBorderColor   = 0x8E9AC7
	DefaultDashColor     = 0x9CC2FF
	DefaultWidth         = 2.0

	AdministrativeHeight = 2.0
	PolygonHeight        = 1.0

	// LevelHeight is the extrusion depth of one building level.
	LevelHeight = 0.1

	// BorderOffset lifts borders just above the area's top face.
	BorderOffset = 0.01

	// RoadLineElevation is the Y offset of unmerged road polylines.
	RoadLineElevation = 1.0

	// MinDashLength is the shortest road that gets an animated overlay.
	MinDashLength = 0.8

	waterDepth         = 0.01
	waterCurveSegments = 2
	areaCurveSegments  = 12
)

// SplineOptions tune road smoothing and width.
type SplineOptions struct {
	DivisionsPerPoint float64
	Tension           float64
	WidthFactor       float64
}

// DefaultSpline returns the standard road spline constants.
func DefaultSpline() SplineOptions {
	return SplineOptions{
		DivisionsPerPoint: 24,
		Tension:           0.001,
		WidthFactor:       0.0001,
	}
}

func (s SplineOptions) withDefaults() SplineOptions {
	d := DefaultSpline()
	if s.DivisionsPerPoint <= 0 {
		s.DivisionsPerPoint = d.DivisionsPerPoint
	}
	if s.Tension <= 0 {
		s.Tension = d.Tension
	}
	if s.WidthFactor <= 0 {
		s.WidthFactor = d.WidthFactor
	}
	return s
}

// Options configure a single generator call. Zero values select the class
// defaults.
type Options struct {
	Merge    bool
	Border   bool
	Collider bool // Ignored unless Merge is set
	Height   float64
	Color    uint32
	Width    float64
	Terrain  terrain.Samples
	MapScale float64
	Strict   bool
	Steps    int
	Simplify float64 // Douglas-Peucker threshold in world units, 0 disables

	Animation animation.Engine
	Spline    SplineOptions
	Light     *lighting.Light

	Material       material.Choice
	BorderMaterial material.Choice
}

func (o Options) color(def uint32) uint32 {
	if o.Color == 0 {
		return def
	}
	return o.Color
}

func (o Options) height(def float64) float64 {
	if o.Height <= 0 {
		return def
	}
	return o.Height
}

func (o Options) width() float64 {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

func (o Options) mapScale() float64 {
	if o.MapScale <= 0 {
		return 1
	}
	return o.MapScale
}

func (o Options) steps() int {
	if o.Steps < 1 {
		return 1
	}
	return o.Steps
}

func (o Options) light() lighting.Light {
	if o.Light == nil {
		return lighting.DefaultSun()
	}
	return *o.Light
}
