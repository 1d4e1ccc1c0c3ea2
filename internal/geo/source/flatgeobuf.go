package source

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	flatgeobuf "github.com/flatgeobuf/flatgeobuf/src/go"
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Faultbox/midgard-geo/internal/geo/feature"
)

// ErrNoIndex is returned for FlatGeobuf files without a spatial index.
// Features are read with a search over the header envelope.
var ErrNoIndex = errors.New("flatgeobuf file has no spatial index")

// Header summarizes a FlatGeobuf file.
type Header struct {
	Name          string
	GeometryType  string
	FeaturesCount uint64
	Envelope      orb.Bound
	Columns       []Column
}

// Column is a property column of a FlatGeobuf file.
type Column struct {
	Name string
	Type flattypes.ColumnType
}

// LoadFlatGeobuf reads every feature of an indexed FlatGeobuf file.
func LoadFlatGeobuf(path string) (*feature.Collection, error) {
	fgb, err := flatgeobuf.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return readFlatGeobuf(fgb)
}

// DecodeFlatGeobuf reads every feature of an indexed FlatGeobuf buffer.
func DecodeFlatGeobuf(data []byte) (*feature.Collection, error) {
	fgb, err := flatgeobuf.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse flatgeobuf: %w", err)
	}
	return readFlatGeobuf(fgb)
}

// ReadHeader returns the header of a FlatGeobuf file.
func ReadHeader(path string) (*Header, error) {
	fgb, err := flatgeobuf.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	h := fgb.Header()
	if h == nil {
		return nil, fmt.Errorf("%s: missing header", path)
	}
	out := &Header{
		Name:          string(h.Name()),
		GeometryType:  flattypes.EnumNamesGeometryType[h.GeometryType()],
		FeaturesCount: h.FeaturesCount(),
		Columns:       columns(h),
	}
	if h.EnvelopeLength() >= 4 {
		out.Envelope = orb.Bound{
			Min: orb.Point{h.Envelope(0), h.Envelope(1)},
			Max: orb.Point{h.Envelope(2), h.Envelope(3)},
		}
	}
	return out, nil
}

func readFlatGeobuf(fgb *flatgeobuf.FlatGeoBuf) (*feature.Collection, error) {
	h := fgb.Header()
	fc := geojson.NewFeatureCollection()
	if h == nil || h.FeaturesCount() == 0 {
		return feature.FromGeoJSON(fc), nil
	}
	if h.IndexNodeSize() == 0 || h.EnvelopeLength() < 4 {
		return nil, ErrNoIndex
	}

	found, err := fgb.Search(h.Envelope(0), h.Envelope(1), h.Envelope(2), h.Envelope(3))
	if err != nil {
		return nil, fmt.Errorf("flatgeobuf search: %w", err)
	}
	cols := columns(h)
	for _, f := range found {
		if gf := convertFeature(f, cols); gf != nil {
			fc.Append(gf)
		}
	}
	return feature.FromGeoJSON(fc), nil
}

func columns(h *flattypes.Header) []Column {
	n := h.ColumnsLength()
	out := make([]Column, 0, n)
	for i := 0; i < n; i++ {
		var col flattypes.Column
		if h.Columns(&col, i) {
			out = append(out, Column{Name: string(col.Name()), Type: col.Type()})
		}
	}
	return out
}

func convertFeature(f *flattypes.Feature, cols []Column) *geojson.Feature {
	if f == nil {
		return nil
	}
	var geomObj flattypes.Geometry
	g := f.Geometry(&geomObj)
	if g == nil {
		return nil
	}
	geom := convertGeometry(g)
	if geom == nil {
		return nil
	}

	out := geojson.NewFeature(geom)
	if n := f.PropertiesLength(); n > 0 && len(cols) > 0 {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(f.Properties(i))
		}
		out.Properties = decodeProperties(data, cols)
	}
	return out
}

// coords is the coordinate part of a FlatGeobuf geometry.
type coords interface {
	XyLength() int
	Xy(j int) float64
	EndsLength() int
	Ends(j int) uint32
}

func convertGeometry(g *flattypes.Geometry) orb.Geometry {
	switch g.Type() {
	case flattypes.GeometryTypePoint:
		if g.XyLength() < 2 {
			return nil
		}
		return orb.Point{g.Xy(0), g.Xy(1)}
	case flattypes.GeometryTypeLineString:
		return orb.LineString(points(g, 0, g.XyLength()/2))
	case flattypes.GeometryTypeMultiLineString:
		parts := rings(g)
		mls := make(orb.MultiLineString, 0, len(parts))
		for _, r := range parts {
			mls = append(mls, orb.LineString(r))
		}
		return mls
	case flattypes.GeometryTypePolygon:
		return orb.Polygon(rings(g))
	case flattypes.GeometryTypeMultiPolygon:
		n := g.PartsLength()
		if n == 0 {
			return orb.MultiPolygon{rings(g)}
		}
		mp := make(orb.MultiPolygon, 0, n)
		for i := 0; i < n; i++ {
			var part flattypes.Geometry
			if g.Parts(&part, i) {
				mp = append(mp, rings(&part))
			}
		}
		return mp
	default:
		return nil
	}
}

// rings splits the coordinates at the ends offsets. Without ends all
// points form one ring.
func rings(c coords) []orb.Ring {
	total := c.XyLength() / 2
	n := c.EndsLength()
	if n == 0 {
		if total == 0 {
			return nil
		}
		return []orb.Ring{points(c, 0, total)}
	}
	out := make([]orb.Ring, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		end := int(c.Ends(i))
		if end > total {
			end = total
		}
		if end > start {
			out = append(out, points(c, start, end))
		}
		start = end
	}
	return out
}

func points(c coords, from, to int) orb.Ring {
	r := make(orb.Ring, 0, to-from)
	for i := from; i < to; i++ {
		r = append(r, orb.Point{c.Xy(2 * i), c.Xy(2*i + 1)})
	}
	return r
}

// decodeProperties reads (uint16 column, value) pairs. Numbers become
// float64 so that they behave like decoded GeoJSON.
func decodeProperties(data []byte, cols []Column) geojson.Properties {
	props := make(geojson.Properties)
	for off := 0; off+2 <= len(data); {
		idx := int(binary.LittleEndian.Uint16(data[off:]))
		off += 2
		if idx >= len(cols) {
			break
		}
		v, n, ok := readValue(data[off:], cols[idx].Type)
		if !ok {
			break
		}
		off += n
		props[cols[idx].Name] = v
	}
	return props
}

// readValue decodes one property value, returning the bytes consumed.
func readValue(data []byte, t flattypes.ColumnType) (any, int, bool) {
	need := func(n int) bool { return len(data) >= n }
	le := binary.LittleEndian
	switch t {
	case flattypes.ColumnTypeBool:
		if !need(1) {
			return nil, 0, false
		}
		return data[0] != 0, 1, true
	case flattypes.ColumnTypeByte:
		if !need(1) {
			return nil, 0, false
		}
		return float64(int8(data[0])), 1, true
	case flattypes.ColumnTypeUByte:
		if !need(1) {
			return nil, 0, false
		}
		return float64(data[0]), 1, true
	case flattypes.ColumnTypeShort:
		if !need(2) {
			return nil, 0, false
		}
		return float64(int16(le.Uint16(data))), 2, true
	case flattypes.ColumnTypeUShort:
		if !need(2) {
			return nil, 0, false
		}
		return float64(le.Uint16(data)), 2, true
	case flattypes.ColumnTypeInt:
		if !need(4) {
			return nil, 0, false
		}
		return float64(int32(le.Uint32(data))), 4, true
	case flattypes.ColumnTypeUInt:
		if !need(4) {
			return nil, 0, false
		}
		return float64(le.Uint32(data)), 4, true
	case flattypes.ColumnTypeLong:
		if !need(8) {
			return nil, 0, false
		}
		return float64(int64(le.Uint64(data))), 8, true
	case flattypes.ColumnTypeULong:
		if !need(8) {
			return nil, 0, false
		}
		return float64(le.Uint64(data)), 8, true
	case flattypes.ColumnTypeFloat:
		if !need(4) {
			return nil, 0, false
		}
		return float64(math.Float32frombits(le.Uint32(data))), 4, true
	case flattypes.ColumnTypeDouble:
		if !need(8) {
			return nil, 0, false
		}
		return math.Float64frombits(le.Uint64(data)), 8, true
	case flattypes.ColumnTypeString, flattypes.ColumnTypeDateTime,
		flattypes.ColumnTypeJson, flattypes.ColumnTypeBinary:
		if !need(4) {
			return nil, 0, false
		}
		n := int(le.Uint32(data))
		if !need(4 + n) {
			return nil, 0, false
		}
		raw := data[4 : 4+n]
		switch t {
		case flattypes.ColumnTypeBinary:
			return append([]byte(nil), raw...), 4 + n, true
		case flattypes.ColumnTypeJson:
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return string(raw), 4 + n, true
			}
			return v, 4 + n, true
		default:
			return string(raw), 4 + n, true
		}
	default:
		return nil, 0, false
	}
}
