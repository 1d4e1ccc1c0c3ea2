// Package feature holds geographic vector records and the helpers that
// classify them and normalize their coordinate trees.
package feature

import (
	"errors"

	"github.com/paulmach/orb"
)

// Geometry types matched by the layer generators. Other GeoJSON types are
// carried through decoding but never produce geometry.
const (
	TypePolygon      = "Polygon"
	TypeMultiPolygon = "MultiPolygon"
	TypeLineString   = "LineString"
)

var (
	// ErrMissingProperties is reported for a feature with no property map.
	ErrMissingProperties = errors.New("feature has no properties")
	// ErrMalformedPoint is reported for a point with fewer than two numeric ordinates.
	ErrMalformedPoint = errors.New("malformed coordinate point")
	// ErrEmptyCoordinates is reported when a ring or ring list is empty.
	ErrEmptyCoordinates = errors.New("empty coordinates")
	// ErrUnexpectedNesting is reported when a scalar sits where a list belongs.
	ErrUnexpectedNesting = errors.New("unexpected coordinate nesting")
)

// Properties is the free-form attribute map of a feature. OSM exports may
// keep their tags in a nested "tags" map.
type Properties map[string]any

// Feature is one decoded vector record.
type Feature struct {
	Type        string     // Geometry type, empty for null geometry
	Coordinates any        // Raw nested coordinate tree
	Properties  Properties // nil when the record carries no properties
}

// HasProperties reports whether the feature carries a property map.
func (f *Feature) HasProperties() bool {
	return f != nil && f.Properties != nil
}

// Collection is an ordered list of features.
type Collection struct {
	Features []*Feature
}

// Len returns the number of features.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Features)
}

// CountByType tallies features per geometry type.
func (c *Collection) CountByType() map[string]int {
	counts := make(map[string]int)
	if c == nil {
		return counts
	}
	for _, f := range c.Features {
		counts[f.Type]++
	}
	return counts
}

// Polygon is a normalized outer boundary with optional holes, in
// geographic [lon, lat] order.
type Polygon struct {
	Outer orb.Ring
	Holes []orb.Ring
}

// Rings returns the outer ring followed by the holes.
func (p Polygon) Rings() []orb.Ring {
	rings := make([]orb.Ring, 0, 1+len(p.Holes))
	rings = append(rings, p.Outer)
	return append(rings, p.Holes...)
}

// Orb converts the polygon into an orb.Polygon.
func (p Polygon) Orb() orb.Polygon {
	return orb.Polygon(p.Rings())
}
