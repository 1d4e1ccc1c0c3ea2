// Package source loads feature collections from GeoJSON and FlatGeobuf
// files.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/midgard-geo/internal/geo/feature"
)

// ErrUnsupportedFormat is returned for file extensions Load does not know.
var ErrUnsupportedFormat = errors.New("unsupported feature file format")

// Format identifies an input encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatGeoJSON
	FormatFlatGeobuf
)

func (f Format) String() string {
	switch f {
	case FormatGeoJSON:
		return "geojson"
	case FormatFlatGeobuf:
		return "flatgeobuf"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return FormatGeoJSON
	case ".fgb":
		return FormatFlatGeobuf
	default:
		return FormatUnknown
	}
}

// Load reads a feature collection from path.
func Load(path string) (*feature.Collection, error) {
	switch DetectFormat(path) {
	case FormatGeoJSON:
		return LoadGeoJSON(path)
	case FormatFlatGeobuf:
		return LoadFlatGeobuf(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadGeoJSON reads a GeoJSON FeatureCollection or Feature.
func LoadGeoJSON(path string) (*feature.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	c, err := feature.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
