package terrain

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-geo/pkg/math"
)

// ErrUnsupportedFormat is returned for unknown terrain file extensions.
var ErrUnsupportedFormat = errors.New("unsupported terrain format")

// LoadFile reads terrain samples by extension: .csv (x,y,z with optional
// header), .xyz (whitespace separated) or .yaml/.yml heightmap. The
// heightmap is returned as well when the file is one, nil otherwise.
func LoadFile(path string) (Samples, *Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening terrain: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		s, err := ReadCSV(f)
		return s, nil, err
	case ".xyz", ".txt":
		s, err := ReadXYZ(f)
		return s, nil, err
	case ".yaml", ".yml":
		h, err := ReadHeightmap(f)
		if err != nil {
			return nil, nil, err
		}
		return FromHeightmap(h), h, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadCSV parses comma separated x,y,z rows. A first row that does not
// parse as numbers is treated as a header.
func ReadCSV(r io.Reader) (Samples, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var samples Samples
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("terrain csv: %w", err)
		}
		v, err := parseXYZ(rec)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("terrain csv line %d: %w", line, err)
		}
		samples = append(samples, v)
	}
	return samples, nil
}

// ReadXYZ parses whitespace separated x y z rows, skipping blank and # lines.
func ReadXYZ(r io.Reader) (Samples, error) {
	var samples Samples
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := parseXYZ(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("terrain xyz line %d: %w", line, err)
		}
		samples = append(samples, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("terrain xyz: %w", err)
	}
	return samples, nil
}

// ReadHeightmap decodes a YAML heightmap.
func ReadHeightmap(r io.Reader) (*Heightmap, error) {
	h := &Heightmap{CellSize: 1}
	if err := yaml.NewDecoder(r).Decode(h); err != nil {
		return nil, fmt.Errorf("terrain heightmap: %w", err)
	}
	if h.CellSize <= 0 {
		return nil, fmt.Errorf("terrain heightmap: cell_size must be positive, got %v", h.CellSize)
	}
	return h, nil
}

func parseXYZ(fields []string) (math.Vec3, error) {
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("expected 3 values, got %d", len(fields))
	}
	var out [3]float32
	for i := range out {
		f, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 32)
		if err != nil {
			return math.Vec3{}, err
		}
		out[i] = float32(f)
	}
	return math.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}
