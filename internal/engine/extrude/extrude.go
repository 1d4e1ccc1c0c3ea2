// Package extrude turns planar shapes into closed solids.
package extrude

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/paulmach/orb"

	"github.com/Faultbox/midgard-geo/internal/engine/mesh"
	"github.com/Faultbox/midgard-geo/internal/engine/shape"
	"github.com/Faultbox/midgard-geo/pkg/math"
)

// ErrInvalidDepth is returned for a non-positive or non-finite depth.
var ErrInvalidDepth = errors.New("invalid extrusion depth")

// Options control extrusion.
type Options struct {
	CurveSegments int     // Kept for parity with curve shapes; straight paths ignore it
	Steps         int     // Wall subdivisions along the depth, defaults to 1
	Depth         float64 // Extrusion distance
	BevelEnabled  bool    // Always false for map features
}

// Reorientation maps the shape frame (x, y, depth) onto the world frame so
// that the solid stands on Y = 0: rotate +90° about X, then 180° about Z.
// A shape point (x, y) at depth z lands at (-x, z, y).
var Reorientation = math.RotateZ(gomath.Pi).Mul(math.RotateX(gomath.Pi / 2))

// Extrude builds an indexed solid from s with flat normals and world UVs,
// already re-oriented so it spans Y in [0, Depth].
func Extrude(s *shape.Shape, opts Options) (*mesh.Geometry, error) {
	if opts.Depth <= 0 || gomath.IsNaN(opts.Depth) || gomath.IsInf(opts.Depth, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDepth, opts.Depth)
	}
	if opts.BevelEnabled {
		return nil, errors.New("bevelled extrusion is not supported")
	}
	steps := opts.Steps
	if steps < 1 {
		steps = 1
	}

	contour, holes, err := s.Extract()
	if err != nil {
		return nil, err
	}

	b := &builder{depth: float32(opts.Depth)}
	b.caps(contour, holes)
	b.wall(contour, steps)
	for _, h := range holes {
		b.wall(h, steps)
	}

	g := mesh.New()
	g.SetAttribute(mesh.AttrNormal, 3, b.normals)
	g.SetAttribute(mesh.AttrUV, 2, b.uvs)
	g.SetAttribute(mesh.AttrPosition, 3, b.positions)
	g.Index = b.indices
	g.ApplyMatrix(Reorientation)
	return g, nil
}

type builder struct {
	depth     float32
	positions []float32
	normals   []float32
	uvs       []float32
	indices   []uint32
}

func (b *builder) vertex(x, y, z float32, n [3]float32, u, v float32) uint32 {
	idx := uint32(len(b.positions) / 3)
	b.positions = append(b.positions, x, y, z)
	b.normals = append(b.normals, n[0], n[1], n[2])
	b.uvs = append(b.uvs, u, v)
	return idx
}

// caps emits the bottom cap facing -z and the top cap facing +z.
func (b *builder) caps(contour orb.Ring, holes []orb.Ring) {
	tris := shape.Triangulate(contour, holes)

	pts := make([]orb.Point, 0, len(contour))
	pts = append(pts, contour...)
	for _, h := range holes {
		pts = append(pts, h...)
	}

	for _, layer := range []struct {
		z       float32
		normal  [3]float32
		reverse bool
	}{
		{0, [3]float32{0, 0, -1}, true},
		{b.depth, [3]float32{0, 0, 1}, false},
	} {
		base := uint32(len(b.positions) / 3)
		for _, p := range pts {
			x, y := float32(p[0]), float32(p[1])
			b.vertex(x, y, layer.z, layer.normal, x, y)
		}
		for _, t := range tris {
			if layer.reverse {
				b.indices = append(b.indices, base+uint32(t[2]), base+uint32(t[1]), base+uint32(t[0]))
			} else {
				b.indices = append(b.indices, base+uint32(t[0]), base+uint32(t[1]), base+uint32(t[2]))
			}
		}
	}
}

// wall emits one quad per edge per step. Counter-clockwise contours face
// outward and clockwise holes face into the hole.
func (b *builder) wall(ring orb.Ring, steps int) {
	n := len(ring)
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		ax, ay := float32(p[0]), float32(p[1])
		bx, by := float32(q[0]), float32(q[1])
		normal := math.Vec3{X: by - ay, Y: -(bx - ax)}.Normalize()
		nrm := normal.Array()

		// World UVs run along the dominant edge axis
		useX := gomath.Abs(float64(ay-by)) < gomath.Abs(float64(ax-bx))
		ua, ub := ay, by
		if useX {
			ua, ub = ax, bx
		}

		for s := 0; s < steps; s++ {
			z0 := b.depth * float32(s) / float32(steps)
			z1 := b.depth * float32(s+1) / float32(steps)
			i0 := b.vertex(ax, ay, z0, nrm, ua, 1-z0)
			i1 := b.vertex(bx, by, z0, nrm, ub, 1-z0)
			i2 := b.vertex(bx, by, z1, nrm, ub, 1-z1)
			i3 := b.vertex(ax, ay, z1, nrm, ua, 1-z1)
			b.indices = append(b.indices, i0, i1, i2, i0, i2, i3)
		}
	}
}
