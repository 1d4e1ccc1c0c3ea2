package geolayer

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/Faultbox/midgard-geo/internal/engine/animation"
	"github.com/Faultbox/midgard-geo/internal/engine/line"
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/internal/geo/feature"
	"github.com/Faultbox/midgard-geo/internal/layer"
	"github.com/Faultbox/midgard-geo/pkg/math"
)

// Road renders renderable highways as smoothed wide lines. Points are
// draped on the terrain, resampled along a Catmull-Rom spline and emitted
// as segment pairs. With Merge every road shares one line object.
func (g *GeoLayer) Road(opts Options) (*layer.Layer, error) {
	objects := g.objectGroup()
	spline := opts.Spline.withDefaults()
	mat := opts.Material.Resolve(func() *material.Material {
		m := material.New(material.KindFatLine, opts.color(DefaultRoadColor))
		m.Name = "road"
		m.Width = float32(opts.mapScale() * opts.width() * spline.WidthFactor)
		return m
	})

	var merged []*mesh.Geometry
	err := g.each("road", opts, func(i int, f *feature.Feature) (bool, error) {
		if f.Type != feature.TypeLineString || !feature.IsRenderableRoad(f.Properties) {
			return false, nil
		}
		pts, err := g.roadPoints(f, opts)
		if err != nil {
			return false, err
		}
		curve := line.NewCatmullRom(pts, spline.Tension)
		geom := line.Segments(curve.Sample(line.Divisions(len(pts), spline.DivisionsPerPoint)))
		geom.ApplyMatrix(flip)

		if opts.Merge {
			merged = append(merged, geom)
			return true, nil
		}
		l := layer.NewSegments(nameOr(f.Properties, "road"), geom, mat)
		l.Info = f.Properties
		objects.Add(l)
		return true, nil
	})

	if len(merged) > 0 {
		geom, merr := mergeAndDispose(merged)
		if merr != nil {
			return g.layer, merr
		}
		objects.Add(layer.NewSegments(g.name+"_roads", geom, mat))
	}
	return g.layer, err
}

// RoadLines renders each renderable highway as a straight polyline raised
// by RoadLineElevation. When an animation engine is set, roads longer than
// MinDashLength also get a dashed overlay driven by a DashLine.
func (g *GeoLayer) RoadLines(opts Options) (*layer.Layer, error) {
	objects := g.objectGroup()
	mat := opts.Material.Resolve(func() *material.Material {
		m := material.New(material.KindLine, opts.color(DefaultRoadLineColor))
		m.Name = "road_line"
		return m
	})

	err := g.each("road_lines", opts, func(i int, f *feature.Feature) (bool, error) {
		if f.Type != feature.TypeLineString || !feature.IsRenderableRoad(f.Properties) {
			return false, nil
		}
		pts, err := g.roadPoints(f, opts)
		if err != nil {
			return false, err
		}
		geom := line.Polyline(pts)
		geom.ApplyMatrix(flip)

		name := nameOr(f.Properties, "road")
		l := layer.NewLine(name, geom, mat)
		l.Position.Y = RoadLineElevation
		l.Info = f.Properties
		objects.Add(l)

		length := line.TotalDistance(geom)
		if opts.Animation != nil && length > MinDashLength {
			g.addDash(objects, name, geom, length, opts.Animation)
		}
		return true, nil
	})
	return g.layer, err
}

func (g *GeoLayer) addDash(parent *layer.Group, name string, geom *mesh.Geometry, length float32, engine animation.Engine) {
	dashed := material.Default().Resolve(func() *material.Material {
		m := material.New(material.KindDashedLine, DefaultDashColor)
		m.Name = "road_dash"
		m.Transparent = true
		m.DashSize = 0
		m.GapSize = length + 10
		return m
	})
	overlay := layer.NewLine(name+"_dash", geom.Clone(), dashed)
	overlay.Position.Y = RoadLineElevation
	parent.Add(overlay)
	engine.Register(animation.NewDashLine(name, dashed, length))
}

// roadPoints projects a road, optionally simplifies it on the ground plane
// and drapes it: each point is lowered by the elevation under its final
// position, so that flipping the line yields Y = elevation.
func (g *GeoLayer) roadPoints(f *feature.Feature, opts Options) ([]math.Vec3, error) {
	ls, err := feature.LineString(f.Coordinates)
	if err != nil {
		return nil, err
	}
	pts := make([]math.Vec3, 0, len(ls))
	for _, p := range ls {
		pts = append(pts, g.projector.Project(p[1], p[0]))
	}
	if opts.Simplify > 0 {
		pts = simplifyGround(pts, opts.Simplify)
	}
	if len(pts) < 2 {
		return nil, ErrShortLine
	}
	if len(opts.Terrain) > 0 {
		for i := range pts {
			pts[i].Y -= opts.Terrain.Elevation(-pts[i].X, pts[i].Z)
		}
	}
	return pts, nil
}

// simplifyGround runs Douglas-Peucker on the XZ plane, keeping the Y of
// the surviving points.
func simplifyGround(pts []math.Vec3, threshold float64) []math.Vec3 {
	ls := make(orb.LineString, len(pts))
	heights := make(map[orb.Point]float32, len(pts))
	for i, p := range pts {
		ls[i] = orb.Point{float64(p.X), float64(p.Z)}
		heights[ls[i]] = p.Y
	}
	out, ok := simplify.DouglasPeucker(threshold).Simplify(ls.Clone()).(orb.LineString)
	if !ok {
		return pts
	}
	res := make([]math.Vec3, 0, len(out))
	for _, p := range out {
		res = append(res, math.Vec3{X: float32(p[0]), Y: heights[p], Z: float32(p[1])})
	}
	return res
}
