// Package terrain provides elevation samples, heightmaps and nearest-sample
// draping for extruded map features.
package terrain

import (
	"github.com/Faultbox/midgard-geo/pkg/math"
)

// Samples is an unordered point cloud of terrain vertices in the final
// world frame (Y up). It is read-only once built and safe to share.
type Samples []math.Vec3

// Heightmap is a regular altitude grid.
type Heightmap struct {
	Altitudes [][]float32 `yaml:"altitudes"` // [x][z] heights
	OriginX   float32     `yaml:"origin_x"`  // World X of cell (0, 0)
	OriginZ   float32     `yaml:"origin_z"`  // World Z of cell (0, 0)
	CellSize  float32     `yaml:"cell_size"` // World units between grid points
}

// Size returns the grid dimensions.
func (h *Heightmap) Size() (x, z int) {
	if h == nil || len(h.Altitudes) == 0 {
		return 0, 0
	}
	return len(h.Altitudes), len(h.Altitudes[0])
}
