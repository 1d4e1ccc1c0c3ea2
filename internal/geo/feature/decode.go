package feature

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type rawGeometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

type rawFeature struct {
	Type       string       `json:"type"`
	Geometry   *rawGeometry `json:"geometry"`
	Properties Properties   `json:"properties"`
}

type rawDocument struct {
	Type     string       `json:"type"`
	Features []rawFeature `json:"features"`
	Geometry *rawGeometry `json:"geometry"`
	Props    Properties   `json:"properties"`
}

// Decode parses a GeoJSON FeatureCollection, or a single Feature, keeping
// coordinates as raw nested lists so that malformed rings surface per
// feature instead of failing the whole document.
func Decode(data []byte) (*Collection, error) {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding geojson: %w", err)
	}

	switch doc.Type {
	case "FeatureCollection":
		c := &Collection{Features: make([]*Feature, 0, len(doc.Features))}
		for i := range doc.Features {
			c.Features = append(c.Features, fromRaw(doc.Features[i].Geometry, doc.Features[i].Properties))
		}
		return c, nil
	case "Feature":
		return &Collection{Features: []*Feature{fromRaw(doc.Geometry, doc.Props)}}, nil
	default:
		return nil, fmt.Errorf("decoding geojson: unsupported document type %q", doc.Type)
	}
}

func fromRaw(g *rawGeometry, props Properties) *Feature {
	f := &Feature{Properties: props}
	if g != nil {
		f.Type = g.Type
		f.Coordinates = g.Coordinates
	}
	return f
}

// FromGeoJSON converts an orb feature collection. Coordinates are rebuilt as
// raw nested lists so both decoding paths feed the same normalization.
func FromGeoJSON(fc *geojson.FeatureCollection) *Collection {
	c := &Collection{}
	if fc == nil {
		return c
	}
	c.Features = make([]*Feature, 0, len(fc.Features))
	for _, gf := range fc.Features {
		f := &Feature{}
		if gf.Properties != nil {
			f.Properties = Properties(gf.Properties)
		}
		if gf.Geometry != nil {
			f.Type = gf.Geometry.GeoJSONType()
			f.Coordinates = coordinatesOf(gf.Geometry)
		}
		c.Features = append(c.Features, f)
	}
	return c
}

func coordinatesOf(g orb.Geometry) any {
	switch g := g.(type) {
	case orb.Point:
		return pointList(g)
	case orb.MultiPoint:
		return pointsList(g)
	case orb.LineString:
		return pointsList(g)
	case orb.Ring:
		return pointsList(g)
	case orb.MultiLineString:
		out := make([]any, len(g))
		for i, ls := range g {
			out[i] = pointsList(ls)
		}
		return out
	case orb.Polygon:
		return polygonList(g)
	case orb.MultiPolygon:
		out := make([]any, len(g))
		for i, p := range g {
			out[i] = polygonList(p)
		}
		return out
	case orb.Bound:
		return polygonList(g.ToPolygon())
	default:
		return nil
	}
}

func pointList(p orb.Point) []any {
	return []any{p[0], p[1]}
}

func pointsList(ps []orb.Point) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		out[i] = pointList(p)
	}
	return out
}

func polygonList(p orb.Polygon) []any {
	out := make([]any, len(p))
	for i, r := range p {
		out[i] = pointsList(r)
	}
	return out
}
