// Package geolayer converts a feature collection into renderable layer
// geometry: extruded buildings and areas, fat-line and polyline roads, and
// animated water.
package geolayer

import (
	gomath "math"

	"github.com/paulmach/orb"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-geo/internal/engine/extrude"
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/internal/engine/projection"
	"github.com/Faultbox/midgard-geo/internal/engine/shape"
	"github.com/Faultbox/midgard-geo/internal/engine/terrain"
	"github.com/Faultbox/midgard-geo/internal/geo/feature"
	"github.com/Faultbox/midgard-geo/internal/layer"
	"github.com/Faultbox/midgard-geo/internal/logger"
	"github.com/Faultbox/midgard-geo/pkg/math"
)

// Tag marks the root group of every geo layer.
const Tag = "GeoLayer"

// flip turns the XY plane upside down; lines are built in the projected
// frame and flipped so that their final Y equals the terrain elevation.
var flip = math.RotateZ(gomath.Pi)

// GeoLayer builds geometry for one feature collection into one layer.
// Every generator adds to the same layer and returns it.
type GeoLayer struct {
	name       string
	collection *feature.Collection
	projector  projection.Projector
	log        *zap.Logger

	layer     *layer.Layer
	objects   *layer.Group
	borders   *layer.Group
	colliders *layer.Group

	skipped error
}

// New creates a geo layer. A nil collection behaves as an empty one.
func New(name string, c *feature.Collection, p projection.Projector) *GeoLayer {
	if c == nil {
		c = &feature.Collection{}
	}
	l := layer.New(name)
	l.Root().Tag = Tag
	l.Root().Collider = &layer.Collider{}
	return &GeoLayer{
		name:       name,
		collection: c,
		projector:  p,
		log:        logger.Named("geolayer").With(zap.String("layer", name)),
		layer:      l,
	}
}

// Name returns the layer name.
func (g *GeoLayer) Name() string {
	return g.name
}

// Layer returns the layer built so far.
func (g *GeoLayer) Layer() *layer.Layer {
	return g.layer
}

// Skipped returns the features skipped by the most recent generator call,
// combined with multierr, or nil. Use SkippedFeatures to inspect them.
func (g *GeoLayer) Skipped() error {
	return g.skipped
}

func (g *GeoLayer) objectGroup() *layer.Group {
	if g.objects == nil {
		g.objects = layer.NewGroup(g.name + "_objects")
		g.layer.Add(g.objects)
	}
	return g.objects
}

func (g *GeoLayer) borderGroup() *layer.Group {
	if g.borders == nil {
		g.borders = layer.NewGroup(g.name + "_borders")
		g.layer.Add(g.borders)
	}
	return g.borders
}

// colliderGroup is referenced by the root's collider descriptor only; it is
// not part of the visible tree.
func (g *GeoLayer) colliderGroup() *layer.Group {
	if g.colliders == nil {
		g.colliders = layer.NewGroup(g.name + "_colliders")
		g.layer.Root().Collider.Colliders = g.colliders
	}
	g.layer.Root().Collider.Enabled = true
	return g.colliders
}

// each runs fn over every feature. Features without properties are skipped
// or, in strict mode, stop the iteration. Errors returned by fn always skip
// the feature.
func (g *GeoLayer) each(kind string, opts Options, fn func(i int, f *feature.Feature) (bool, error)) error {
	g.skipped = nil
	used := 0
	for i, f := range g.collection.Features {
		if !f.HasProperties() {
			ferr := &FeatureError{Index: i, Err: feature.ErrMissingProperties}
			if opts.Strict {
				g.log.Warn("missing properties, stopping", zap.String("kind", kind), zap.Int("index", i))
				return ferr
			}
			g.skip(kind, ferr)
			continue
		}
		ok, err := fn(i, f)
		if err != nil {
			g.skip(kind, &FeatureError{Index: i, Err: err})
			continue
		}
		if ok {
			used++
		}
	}
	g.log.Debug("generated",
		zap.String("kind", kind),
		zap.Int("features", g.collection.Len()),
		zap.Int("used", used),
		zap.Int("skipped", len(multierr.Errors(g.skipped))),
	)
	return nil
}

func (g *GeoLayer) skip(kind string, ferr *FeatureError) {
	g.log.Warn("skipping feature", zap.String("kind", kind), zap.Int("index", ferr.Index), zap.Error(ferr.Err))
	g.skipped = multierr.Append(g.skipped, ferr)
}

// solid extrudes rings (outer first) to depth and returns the solid along
// with the footprint's first point in the final frame.
func (g *GeoLayer) solid(rings []orb.Ring, depth float64, curveSegments, steps int) (*mesh.Geometry, math.Vec2, error) {
	s, err := shape.BuildShapeWithHoles(rings, g.projector)
	if err != nil {
		return nil, math.Vec2{}, err
	}
	geom, err := extrude.Extrude(s, extrude.Options{
		CurveSegments: curveSegments,
		Steps:         steps,
		Depth:         depth,
	})
	if err != nil {
		return nil, math.Vec2{}, err
	}
	first := s.Points()[0]
	return geom, math.Vec2{X: float32(-first[0]), Y: float32(first[1])}, nil
}

// drapeSolid lifts a solid onto the terrain sample nearest to anchor.
func drapeSolid(geom *mesh.Geometry, anchor math.Vec2, samples terrain.Samples) {
	if len(samples) == 0 {
		return
	}
	if e := samples.Elevation(anchor.X, anchor.Y); e != 0 {
		geom.Translate(0, e, 0)
	}
}

// mergeInto merges geoms into one mesh added to parent and disposes the
// inputs. Nothing is added when geoms is empty.
func (g *GeoLayer) mergeInto(parent *layer.Group, name string, geoms []*mesh.Geometry, m *material.Material) (*layer.Mesh, error) {
	if len(geoms) == 0 {
		return nil, nil
	}
	merged, err := mergeAndDispose(geoms)
	if err != nil {
		return nil, err
	}
	out := layer.NewMesh(name, merged, m)
	parent.Add(out)
	return out, nil
}

// mergeAndDispose merges geoms and disposes the inputs on success.
func mergeAndDispose(geoms []*mesh.Geometry) (*mesh.Geometry, error) {
	merged, err := mesh.Merge(geoms)
	if err != nil {
		return nil, err
	}
	for _, geom := range geoms {
		geom.Dispose()
	}
	return merged, nil
}

// collider adds an invisible box covering geom to the collider group.
func (g *GeoLayer) collider(geom *mesh.Geometry, name string, props feature.Properties, m *material.Material) {
	c := layer.NewMesh(name, mesh.NewBox(geom.Bounds()), m)
	c.Visible = false
	c.Info = props
	g.colliderGroup().Add(c)
}

func colliderMaterial() *material.Material {
	return material.Default().Resolve(func() *material.Material {
		m := material.New(material.KindBasic, 0xffffff)
		m.Name = "collider"
		m.Visible = false
		return m
	})
}

func nameOr(props feature.Properties, def string) string {
	if n := feature.Name(props); n != "" {
		return n
	}
	return def
}
