package terrain

import (
	"github.com/Faultbox/midgard-geo/pkg/math"
)

// FromHeightmap expands a grid into samples, one per grid point.
func FromHeightmap(h *Heightmap) Samples {
	tilesX, tilesZ := h.Size()
	samples := make(Samples, 0, tilesX*tilesZ)
	for x := range tilesX {
		for z := range len(h.Altitudes[x]) {
			samples = append(samples, math.Vec3{
				X: h.OriginX + float32(x)*h.CellSize,
				Y: h.Altitudes[x][z],
				Z: h.OriginZ + float32(z)*h.CellSize,
			})
		}
	}
	return samples
}

// HeightAt returns the bilinearly interpolated height at a world position.
// Positions outside the grid clamp to the border.
func (h *Heightmap) HeightAt(worldX, worldZ float32) float32 {
	tilesX, tilesZ := h.Size()
	if tilesX == 0 || tilesZ == 0 || h.CellSize <= 0 {
		return 0
	}
	if tilesX == 1 || tilesZ == 1 {
		x := clampi(int((worldX-h.OriginX)/h.CellSize+0.5), 0, tilesX-1)
		z := clampi(int((worldZ-h.OriginZ)/h.CellSize+0.5), 0, tilesZ-1)
		return h.at(x, z)
	}

	cellFX := (worldX - h.OriginX) / h.CellSize
	cellFZ := (worldZ - h.OriginZ) / h.CellSize

	cellX := clampi(int(cellFX), 0, tilesX-2)
	cellZ := clampi(int(cellFZ), 0, tilesZ-2)

	fracX := clampf(cellFX-float32(cellX), 0, 1)
	fracZ := clampf(cellFZ-float32(cellZ), 0, 1)

	// Lerp along X on both Z edges, then between them
	near := h.at(cellX, cellZ)*(1-fracX) + h.at(cellX+1, cellZ)*fracX
	far := h.at(cellX, cellZ+1)*(1-fracX) + h.at(cellX+1, cellZ+1)*fracX
	return near*(1-fracZ) + far*fracZ
}

// at tolerates ragged rows.
func (h *Heightmap) at(x, z int) float32 {
	col := h.Altitudes[x]
	if z >= len(col) {
		if len(col) == 0 {
			return 0
		}
		return col[len(col)-1]
	}
	return col[z]
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampi(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
