package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/midgard-geo/internal/geo/feature"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"city.geojson", FormatGeoJSON},
		{"CITY.JSON", FormatGeoJSON},
		{"data/roads.fgb", FormatFlatGeobuf},
		{"roads.shp", FormatUnknown},
		{"noext", FormatUnknown},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadGeoJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "city.geojson")
	doc := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"building":"yes"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}},
		{"type":"Feature","properties":{"highway":"primary"},"geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]}}
	]}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	counts := c.CountByType()
	if c.Len() != 2 || counts[feature.TypePolygon] != 1 || counts[feature.TypeLineString] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"type":"Topology"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(filepath.Join(dir, "roads.shp")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("shp: err = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.geojson")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing: err = %v, want not exist", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected an error for a non-feature document")
	}
}
