package geolayer

import (
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/internal/engine/water"
	"github.com/Faultbox/midgard-geo/internal/geo/feature"
	"github.com/Faultbox/midgard-geo/internal/layer"
)

// Water turns natural=water polygons into thin animated surfaces. Surfaces
// sit directly under the layer root and are registered with the animation
// engine when one is set.
func (g *GeoLayer) Water(opts Options) (*layer.Layer, error) {
	light := opts.light()
	mat := opts.Material.Resolve(func() *material.Material {
		m := material.New(material.KindWater, opts.color(water.DefaultWaterColor))
		m.Name = "water"
		m.Transparent = true
		return m
	})

	var (
		merged   []*mesh.Geometry
		surfaces []*water.Surface
	)
	err := g.each("water", opts, func(i int, f *feature.Feature) (bool, error) {
		if f.Type != feature.TypePolygon || !feature.IsWater(f.Properties) {
			return false, nil
		}
		poly, err := feature.NormalizePolygon(f.Coordinates)
		if err != nil {
			return false, err
		}
		geom, _, err := g.solid(poly.Rings(), waterDepth, waterCurveSegments, 1)
		if err != nil {
			return false, err
		}
		if opts.Merge {
			merged = append(merged, geom)
			return true, nil
		}
		s := water.NewSurface(nameOr(f.Properties, "water"), geom, mat, light)
		s.Info = f.Properties
		surfaces = append(surfaces, s)
		return true, nil
	})

	if len(merged) > 0 {
		geom, merr := mergeAndDispose(merged)
		if merr != nil {
			return g.layer, merr
		}
		surfaces = append(surfaces, water.NewSurface(g.name+"_water", geom, mat, light))
	}
	for _, s := range surfaces {
		g.layer.Add(s)
		if opts.Animation != nil {
			opts.Animation.Register(s)
		}
	}
	return g.layer, err
}
