package geolayer

import (
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/internal/geo/feature"
	"github.com/Faultbox/midgard-geo/internal/layer"
)

// Buildings extrudes every Polygon feature tagged as a building to
// levels * LevelHeight. With Merge all solids become one mesh, and Collider
// adds one invisible box per building for picking.
func (g *GeoLayer) Buildings(opts Options) (*layer.Layer, error) {
	objects := g.objectGroup()
	collide := opts.Collider && opts.Merge
	mat := opts.Material.Resolve(func() *material.Material {
		m := material.New(material.KindSurface, opts.color(DefaultBuildingColor))
		m.Name = "building"
		m.Specular = 0xfafafa
		m.Reflectivity = 0.6
		return m
	})
	var boxes *material.Material
	if collide {
		boxes = colliderMaterial()
	}

	var merged []*mesh.Geometry
	err := g.each("buildings", opts, func(i int, f *feature.Feature) (bool, error) {
		if f.Type != feature.TypePolygon || !feature.IsBuilding(f.Properties) {
			return false, nil
		}
		poly, err := feature.NormalizePolygon(f.Coordinates)
		if err != nil {
			return false, err
		}
		depth := float64(feature.Levels(f.Properties)) * LevelHeight
		geom, anchor, err := g.solid(poly.Rings(), depth, 1, opts.steps())
		if err != nil {
			return false, err
		}
		drapeSolid(geom, anchor, opts.Terrain)

		name := nameOr(f.Properties, "building")
		if !opts.Merge {
			m := layer.NewMesh(name, geom, mat)
			m.Info = f.Properties
			objects.Add(m)
			return true, nil
		}
		if collide {
			g.collider(geom, name, f.Properties, boxes)
		}
		merged = append(merged, geom)
		return true, nil
	})
	if _, merr := g.mergeInto(objects, g.name+"_buildings", merged, mat); merr != nil {
		return g.layer, merr
	}
	return g.layer, err
}
