// Package water provides animated water surfaces for geo layers.
package water

import (
	"github.com/Faultbox/midgard-geo/internal/engine/lighting"
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/internal/layer"
)

// Default shading parameters.
const (
	DefaultWaterColor = 0x001e0f
	DefaultDistortion = 3.7
	DefaultAlpha      = 1.0
	DefaultAnimSpeed  = 1.0
	DefaultNumFrames  = 32
)

// Params holds the shading inputs of a water surface.
type Params struct {
	SunDirection [3]float32
	SunColor     uint32
	SunIntensity float32
	WaterColor   uint32
	Distortion   float32
	Alpha        float32
}

// ParamsFromLight derives shading parameters from a light.
func ParamsFromLight(l lighting.Light) Params {
	return Params{
		SunDirection: l.Direction(),
		SunColor:     l.Color,
		SunIntensity: l.Intensity,
		WaterColor:   DefaultWaterColor,
		Distortion:   DefaultDistortion,
		Alpha:        DefaultAlpha,
	}
}

// Surface is a water mesh with its shading parameters and animation clock.
type Surface struct {
	*layer.Mesh
	Params Params
	Time   float32
	Speed  float32
}

// NewSurface wraps g as a water surface lit by l.
func NewSurface(name string, g *mesh.Geometry, m *material.Material, l lighting.Light) *Surface {
	return &Surface{
		Mesh:   layer.NewMesh(name, g, m),
		Params: ParamsFromLight(l),
		Speed:  DefaultAnimSpeed,
	}
}

// Update advances the surface clock; it makes Surface an animation.
func (s *Surface) Update(dt float32) {
	s.Time += dt * s.Speed
}

// Frame returns the current normal-map frame out of numFrames.
func (s *Surface) Frame(numFrames int) int {
	return CalculateAnimFrame(s.Time, 1, numFrames)
}

// CalculateAnimFrame returns the frame index for an animated texture.
func CalculateAnimFrame(time, speed float32, numFrames int) int {
	if numFrames <= 0 || time < 0 {
		return 0
	}
	frameTime := time * speed * 10
	return int(frameTime) % numFrames
}
