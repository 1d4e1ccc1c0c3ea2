package feature

import (
	"fmt"
	"reflect"

	"github.com/paulmach/orb"
)

// NormalizePolygon turns a raw polygon coordinate tree into a Polygon.
//
// Accepted shapes, by nesting depth counted down to a point:
//   - depth 2, a flat ring [[lon,lat],...]: outer only;
//   - depth 3, a list of rings: first is outer, the rest are holes;
//   - deeper trees (ring-of-rings exports): the first element is taken
//     until depth 3 is reached.
//
// Empty lists fail with ErrEmptyCoordinates, points with fewer than two
// numeric ordinates with ErrMalformedPoint, and scalars where a list is
// expected with ErrUnexpectedNesting.
func NormalizePolygon(coords any) (Polygon, error) {
	d, err := depth(coords)
	if err != nil {
		return Polygon{}, err
	}
	if d < 2 {
		return Polygon{}, fmt.Errorf("%w: polygon of depth %d", ErrUnexpectedNesting, d)
	}
	if d == 2 {
		outer, err := toRing(coords)
		if err != nil {
			return Polygon{}, err
		}
		return Polygon{Outer: outer}, nil
	}

	for ; d > 3; d-- {
		list, _ := asList(coords)
		coords = list[0]
	}

	list, _ := asList(coords)
	rings := make([]orb.Ring, 0, len(list))
	for i, raw := range list {
		r, err := toRing(raw)
		if err != nil {
			return Polygon{}, fmt.Errorf("ring %d: %w", i, err)
		}
		rings = append(rings, r)
	}
	return Polygon{Outer: rings[0], Holes: rings[1:]}, nil
}

// Polygons normalizes the coordinates of a Polygon or MultiPolygon feature.
func Polygons(f *Feature) ([]Polygon, error) {
	switch f.Type {
	case TypePolygon:
		p, err := NormalizePolygon(f.Coordinates)
		if err != nil {
			return nil, err
		}
		return []Polygon{p}, nil
	case TypeMultiPolygon:
		list, ok := asList(f.Coordinates)
		if !ok {
			return nil, fmt.Errorf("%w: multipolygon is not a list", ErrUnexpectedNesting)
		}
		if len(list) == 0 {
			return nil, ErrEmptyCoordinates
		}
		polys := make([]Polygon, 0, len(list))
		for i, raw := range list {
			p, err := NormalizePolygon(raw)
			if err != nil {
				return nil, fmt.Errorf("polygon %d: %w", i, err)
			}
			polys = append(polys, p)
		}
		return polys, nil
	default:
		return nil, fmt.Errorf("%w: %q is not a polygon type", ErrUnexpectedNesting, f.Type)
	}
}

// LineString converts the coordinates of a LineString feature.
func LineString(coords any) (orb.LineString, error) {
	r, err := toRing(coords)
	if err != nil {
		return nil, err
	}
	return orb.LineString(r), nil
}

// depth counts list levels down to and including the first point.
// A point is depth 1, a ring depth 2.
func depth(v any) (int, error) {
	list, ok := asList(v)
	if !ok {
		if _, isNum := number(v); isNum {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %T", ErrUnexpectedNesting, v)
	}
	if len(list) == 0 {
		return 0, ErrEmptyCoordinates
	}
	if _, nested := asList(list[0]); !nested {
		return 1, nil
	}
	d, err := depth(list[0])
	if err != nil {
		return 0, err
	}
	return d + 1, nil
}

func toRing(v any) (orb.Ring, error) {
	list, ok := asList(v)
	if !ok {
		return nil, fmt.Errorf("%w: ring is %T", ErrUnexpectedNesting, v)
	}
	if len(list) == 0 {
		return nil, ErrEmptyCoordinates
	}
	ring := make(orb.Ring, 0, len(list))
	for i, raw := range list {
		p, err := toPoint(raw)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		ring = append(ring, p)
	}
	return ring, nil
}

func toPoint(v any) (orb.Point, error) {
	list, ok := asList(v)
	if !ok {
		return orb.Point{}, fmt.Errorf("%w: point is %T", ErrUnexpectedNesting, v)
	}
	if len(list) < 2 {
		return orb.Point{}, fmt.Errorf("%w: %d ordinates", ErrMalformedPoint, len(list))
	}
	lon, ok := number(list[0])
	if !ok {
		return orb.Point{}, fmt.Errorf("%w: longitude %v", ErrMalformedPoint, list[0])
	}
	lat, ok := number(list[1])
	if !ok {
		return orb.Point{}, fmt.Errorf("%w: latitude %v", ErrMalformedPoint, list[1])
	}
	return orb.Point{lon, lat}, nil
}

// asList accepts decoded []any as well as typed slices and arrays such as
// [][]float64 or orb.Ring built by hand.
func asList(v any) ([]any, bool) {
	if list, ok := v.([]any); ok {
		return list, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint32:
		return float64(n), true
	default:
		return 0, false
	}
}
