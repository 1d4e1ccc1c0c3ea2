package mesh

// boxFaces lists each face as a normal and four corner selectors into
// Min (0) and Max (1), counter-clockwise seen from outside.
var boxFaces = [6]struct {
	normal  [3]float32
	corners [4][3]int
}{
	{[3]float32{1, 0, 0}, [4][3]int{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}},
	{[3]float32{-1, 0, 0}, [4][3]int{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}},
	{[3]float32{0, 1, 0}, [4][3]int{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}},
	{[3]float32{0, -1, 0}, [4][3]int{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{[3]float32{0, 0, 1}, [4][3]int{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	{[3]float32{0, 0, -1}, [4][3]int{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}},
}

// NewBox builds an indexed box spanning b: 24 vertices, 12 triangles.
func NewBox(b Bounds) *Geometry {
	positions := make([]float32, 0, 24*3)
	normals := make([]float32, 0, 24*3)
	uvs := make([]float32, 0, 24*2)
	indices := make([]uint32, 0, 36)
	quadUV := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	ext := [2][3]float32{b.Min, b.Max}
	for _, f := range boxFaces {
		base := uint32(len(positions) / 3)
		for i, c := range f.corners {
			positions = append(positions, ext[c[0]][0], ext[c[1]][1], ext[c[2]][2])
			normals = append(normals, f.normal[0], f.normal[1], f.normal[2])
			uvs = append(uvs, quadUV[i][0], quadUV[i][1])
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	g := New()
	g.SetAttribute(AttrNormal, 3, normals)
	g.SetAttribute(AttrUV, 2, uvs)
	g.SetAttribute(AttrPosition, 3, positions)
	g.Index = indices
	return g
}
