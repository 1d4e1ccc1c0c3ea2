// Package scene assembles geo layers, terrain and animations from a
// configuration and a feature collection.
package scene

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-geo/internal/config"
	"github.com/Faultbox/midgard-geo/internal/engine/animation"
	"github.com/Faultbox/midgard-geo/internal/engine/lighting"
	"github.com/Faultbox/midgard-geo/internal/engine/material"
	"github.com/Faultbox/midgard-geo/internal/engine/picking"
	"github.com/Faultbox/midgard-geo/internal/engine/projection"
	"github.com/Faultbox/midgard-geo/internal/engine/terrain"
	"github.com/Faultbox/midgard-geo/internal/geo/feature"
	"github.com/Faultbox/midgard-geo/internal/geo/geolayer"
	"github.com/Faultbox/midgard-geo/internal/layer"
	"github.com/Faultbox/midgard-geo/internal/logger"
)

// Kind names a generator.
type Kind string

const (
	KindBuildings      Kind = "buildings"
	KindAdministrative Kind = "administrative"
	KindPolygon        Kind = "polygon"
	KindRoads          Kind = "roads"
	KindWater          Kind = "water"
)

// AllKinds lists the generators in build order.
var AllKinds = []Kind{KindAdministrative, KindPolygon, KindWater, KindBuildings, KindRoads}

// ParseKinds parses a comma separated generator list. An empty string
// selects buildings, roads and water.
func ParseKinds(s string) ([]Kind, error) {
	if strings.TrimSpace(s) == "" {
		return []Kind{KindWater, KindBuildings, KindRoads}, nil
	}
	var kinds []Kind
	for _, part := range strings.Split(s, ",") {
		k := Kind(strings.ToLower(strings.TrimSpace(part)))
		switch k {
		case KindBuildings, KindAdministrative, KindPolygon, KindRoads, KindWater:
			kinds = append(kinds, k)
		case "all":
			return AllKinds, nil
		default:
			return nil, fmt.Errorf("unknown layer kind %q", part)
		}
	}
	return kinds, nil
}

// TerrainColor is the surface colour of heightmap meshes.
const TerrainColor = 0x6B8E23

// pickHeight is where pick rays start.
const pickHeight = 1e4

// Scene owns the layers built for one collection.
type Scene struct {
	cfg *config.Config
	log *zap.Logger

	Projector *projection.Mercator
	Samples   terrain.Samples
	Heightmap *terrain.Heightmap
	Light     lighting.Light
	Loop      *animation.Loop

	Geo     *geolayer.GeoLayer
	Terrain *layer.Layer // nil without a heightmap

	// Skipped holds the features each generator skipped.
	Skipped map[Kind]error
}

// New prepares a scene: it sets up the projection and loads terrain.
func New(cfg *config.Config, name string, c *feature.Collection) (*Scene, error) {
	s := &Scene{
		cfg:       cfg,
		log:       logger.Named("scene"),
		Projector: projection.NewMercator(cfg.Projection.OriginLatitude, cfg.Projection.OriginLongitude, cfg.Projection.Scale),
		Light:     lighting.DefaultSun(),
		Loop:      animation.NewLoop(),
		Skipped:   make(map[Kind]error),
	}

	if path := cfg.Terrain.Path; path != "" {
		samples, hm, err := terrain.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load terrain: %w", err)
		}
		s.Samples, s.Heightmap = samples, hm
		s.log.Info("terrain loaded", zap.String("path", path), zap.Int("samples", len(samples)))
	}
	if s.Heightmap != nil {
		s.Terrain = layer.New(name + "_terrain")
		m := material.Default().Resolve(func() *material.Material {
			m := material.New(material.KindSurface, TerrainColor)
			m.Name = "terrain"
			return m
		})
		s.Terrain.Add(layer.NewMesh("terrain", terrain.BuildMesh(s.Heightmap), m))
	}

	s.Geo = geolayer.New(name, c, s.Projector)
	return s, nil
}

// Options translates the configuration of one generator.
func (s *Scene) Options(k Kind) geolayer.Options {
	cfg := s.cfg
	opts := geolayer.Options{
		Terrain:   s.Samples,
		MapScale:  cfg.Render.MapScale,
		Strict:    cfg.Render.Strict,
		Steps:     cfg.Render.Steps,
		Animation: s.Loop,
		Light:     &s.Light,
	}
	switch k {
	case KindBuildings:
		opts.Merge = cfg.Buildings.Merge
		opts.Collider = cfg.Buildings.Collider
		opts.Color = cfg.Buildings.Color
	case KindAdministrative:
		applyArea(&opts, cfg.Administrative)
	case KindPolygon:
		applyArea(&opts, cfg.Polygon)
	case KindRoads:
		opts.Merge = cfg.Roads.Smooth
		opts.Width = cfg.Roads.Width
		opts.Color = cfg.Roads.Color
		opts.Simplify = cfg.Roads.Simplify
		opts.Spline = geolayer.SplineOptions{
			DivisionsPerPoint: cfg.Roads.DivisionsPerPoint,
			Tension:           cfg.Roads.Tension,
			WidthFactor:       cfg.Roads.WidthFactor,
		}
	case KindWater:
		opts.Merge = cfg.Water.Merge
	}
	return opts
}

func applyArea(opts *geolayer.Options, a config.AreaConfig) {
	opts.Merge = a.Merge
	opts.Border = a.Border
	opts.Collider = a.Collider
	opts.Height = a.Height
	opts.Color = a.Color
}

// Build runs the generators in order. Skipped features are kept per kind;
// a strict-mode or merge failure stops the build.
func (s *Scene) Build(kinds []Kind) error {
	for _, k := range kinds {
		opts := s.Options(k)
		var err error
		switch k {
		case KindBuildings:
			_, err = s.Geo.Buildings(opts)
		case KindAdministrative:
			_, err = s.Geo.Administrative(opts)
		case KindPolygon:
			_, err = s.Geo.Polygon(opts)
		case KindRoads:
			if s.cfg.Roads.Smooth {
				_, err = s.Geo.Road(opts)
			} else {
				_, err = s.Geo.RoadLines(opts)
			}
		case KindWater:
			_, err = s.Geo.Water(opts)
		default:
			err = fmt.Errorf("unknown layer kind %q", k)
		}
		if skipped := s.Geo.Skipped(); skipped != nil {
			s.Skipped[k] = skipped
		}
		if err != nil {
			return fmt.Errorf("building %s: %w", k, err)
		}
	}

	st := s.Geo.Layer().Stats()
	s.log.Info("scene built",
		zap.Int("meshes", st.Meshes),
		zap.Int("lines", st.Lines),
		zap.Int("vertices", st.Vertices),
		zap.Int("triangles", st.Triangles),
		zap.Int("animations", s.Loop.Len()),
	)
	return nil
}

// Layers returns the terrain layer, when present, followed by the geo layer.
func (s *Scene) Layers() []*layer.Layer {
	if s.Terrain != nil {
		return []*layer.Layer{s.Terrain, s.Geo.Layer()}
	}
	return []*layer.Layer{s.Geo.Layer()}
}

// Update advances every registered animation.
func (s *Scene) Update(dt float32) {
	s.Loop.Update(dt)
}

// Pick casts a ray straight down onto world (x, z).
func (s *Scene) Pick(x, z float32) (picking.Hit, bool) {
	return picking.Pick(s.Geo.Layer().Root(), picking.Down(x, z, pickHeight))
}

// PickLatLon projects a geographic point and picks under it.
func (s *Scene) PickLatLon(lat, lon float64) (picking.Hit, bool) {
	p := s.Projector.Project(lat, lon)
	// Extruded solids mirror the projected X.
	return s.Pick(-p.X, p.Z)
}

// Close disposes every layer.
func (s *Scene) Close() {
	for _, l := range s.Layers() {
		l.Clear()
	}
}
