package terrain

import (
	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/pkg/math"
)

// BuildMesh creates an indexed surface from a heightmap with smooth normals.
// It returns nil for grids smaller than 2x2.
func BuildMesh(h *Heightmap) *mesh.Geometry {
	tilesX, tilesZ := h.Size()
	if tilesX < 2 || tilesZ < 2 {
		return nil
	}

	n := tilesX * tilesZ
	positions := make([]float32, 0, n*3)
	uvs := make([]float32, 0, n*2)
	for x := range tilesX {
		for z := range tilesZ {
			positions = append(positions,
				h.OriginX+float32(x)*h.CellSize,
				h.at(x, z),
				h.OriginZ+float32(z)*h.CellSize,
			)
			uvs = append(uvs, float32(x)/float32(tilesX-1), float32(z)/float32(tilesZ-1))
		}
	}

	vertex := func(x, z int) uint32 { return uint32(x*tilesZ + z) }
	indices := make([]uint32, 0, (tilesX-1)*(tilesZ-1)*6)
	for x := 0; x < tilesX-1; x++ {
		for z := 0; z < tilesZ-1; z++ {
			// Wound so the face normal points up (+Y)
			v00, v10 := vertex(x, z), vertex(x+1, z)
			v01, v11 := vertex(x, z+1), vertex(x+1, z+1)
			indices = append(indices, v00, v01, v10, v10, v01, v11)
		}
	}

	g := mesh.New()
	g.SetAttribute(mesh.AttrNormal, 3, smoothNormals(positions, indices))
	g.SetAttribute(mesh.AttrUV, 2, uvs)
	g.SetAttribute(mesh.AttrPosition, 3, positions)
	g.Index = indices
	return g
}

// smoothNormals accumulates area-weighted face normals per vertex.
func smoothNormals(positions []float32, indices []uint32) []float32 {
	acc := make([]math.Vec3, len(positions)/3)
	at := func(i uint32) math.Vec3 {
		return math.Vec3{X: positions[i*3], Y: positions[i*3+1], Z: positions[i*3+2]}
	}
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		face := at(b).Sub(at(a)).Cross(at(c).Sub(at(a)))
		acc[a] = acc[a].Add(face)
		acc[b] = acc[b].Add(face)
		acc[c] = acc[c].Add(face)
	}

	normals := make([]float32, 0, len(positions))
	for _, n := range acc {
		n = n.Normalize()
		if n == (math.Vec3{}) {
			n = math.Vec3{Y: 1}
		}
		normals = append(normals, n.X, n.Y, n.Z)
	}
	return normals
}
