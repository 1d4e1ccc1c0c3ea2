package geolayer

import (
	"github.com/paulmach/orb"

	"github.com/Faultbox/midgard-geo/internal/engine/line"
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/internal/geo/feature"
	"github.com/Faultbox/midgard-geo/internal/layer"
	"github.com/Faultbox/midgard-geo/pkg/math"
)

type areaClass struct {
	kind         string
	height       float64
	colliderName string // Empty disables colliders
}

// Administrative extrudes every Polygon and MultiPolygon feature to
// Options.Height (default 2). Border adds an outline per ring above the top
// face; Collider (merge only) adds one box per polygon named after the
// feature or "Area".
func (g *GeoLayer) Administrative(opts Options) (*layer.Layer, error) {
	return g.areas(opts, areaClass{kind: "administrative", height: AdministrativeHeight, colliderName: "Area"})
}

// Polygon extrudes Polygon and MultiPolygon features like Administrative,
// with a default height of 1 and no colliders.
func (g *GeoLayer) Polygon(opts Options) (*layer.Layer, error) {
	return g.areas(opts, areaClass{kind: "polygon", height: PolygonHeight})
}

func (g *GeoLayer) areas(opts Options, class areaClass) (*layer.Layer, error) {
	objects := g.objectGroup()
	height := opts.height(class.height)
	collide := opts.Collider && opts.Merge && class.colliderName != ""

	mat := opts.Material.Resolve(func() *material.Material {
		m := material.New(material.KindSurface, opts.color(DefaultAreaColor))
		m.Name = class.kind
		return m
	})
	var borderMat, boxes *material.Material
	if opts.Border {
		borderMat = opts.BorderMaterial.Resolve(func() *material.Material {
			m := material.New(material.KindLine, DefaultBorderColor)
			m.Name = class.kind + "_border"
			m.Transparent = true
			m.Opacity = 0.8
			return m
		})
	}
	if collide {
		boxes = colliderMaterial()
	}

	var merged []*mesh.Geometry
	err := g.each(class.kind, opts, func(i int, f *feature.Feature) (bool, error) {
		if f.Coordinates == nil {
			return false, nil
		}
		if f.Type != feature.TypePolygon && f.Type != feature.TypeMultiPolygon {
			return false, nil
		}
		polys, err := feature.Polygons(f)
		if err != nil {
			return false, err
		}
		name := feature.Name(f.Properties)

		// Build every polygon first so a malformed part skips the whole
		// feature.
		geoms := make([]*mesh.Geometry, 0, len(polys))
		for _, p := range polys {
			geom, _, err := g.solid(p.Rings(), height, areaCurveSegments, opts.steps())
			if err != nil {
				for _, built := range geoms {
					built.Dispose()
				}
				return false, err
			}
			geoms = append(geoms, geom)
		}

		for pi, geom := range geoms {
			if opts.Border {
				g.addBorders(polys[pi].Rings(), height, name, borderMat)
			}
			switch {
			case opts.Merge:
				if collide {
					g.collider(geom, nameOr(f.Properties, class.colliderName), f.Properties, boxes)
				}
				merged = append(merged, geom)
			default:
				m := layer.NewMesh(nameOr(f.Properties, class.kind), geom, mat)
				m.Info = f.Properties
				objects.Add(m)
			}
		}
		return true, nil
	})
	if _, merr := g.mergeInto(objects, g.name+"_"+class.kind, merged, mat); merr != nil {
		return g.layer, merr
	}
	return g.layer, err
}

// addBorders adds one closed outline per ring at height + BorderOffset.
func (g *GeoLayer) addBorders(rings []orb.Ring, height float64, name string, m *material.Material) {
	borders := g.borderGroup()
	if name == "" {
		name = "border"
	}
	for _, ring := range rings {
		pts := make([]math.Vec3, 0, len(ring))
		for _, p := range ring {
			w := g.projector.Project(p[1], p[0])
			pts = append(pts, math.Vec3{X: w.X, Y: 0, Z: w.Z})
		}
		if len(pts) < 2 {
			continue
		}
		if pts[0] != pts[len(pts)-1] {
			pts = append(pts, pts[0])
		}
		geom := line.Polyline(pts)
		geom.ApplyMatrix(flip)
		l := layer.NewLine(name, geom, m)
		l.Position.Y = float32(height + BorderOffset)
		borders.Add(l)
	}
}
