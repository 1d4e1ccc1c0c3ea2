// Package shape builds planar shapes from projected rings and triangulates them.
package shape

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/paulmach/orb"

	"github.com/Faultbox/midgard-geo/internal/engine/projection"
	"github.com/Faultbox/midgard-geo/internal/geo/feature"
)

var (
	// ErrEmptyRing is returned when a ring has no points.
	ErrEmptyRing = errors.New("empty ring")
	// ErrDegenerate is returned when a contour has fewer than three distinct points.
	ErrDegenerate = errors.New("degenerate contour")
)

// Path is a straight-segment outline in the local (x, z) plane, stored as
// 2D (x, y) pairs.
type Path struct {
	points orb.Ring
}

// MoveTo starts the path at (x, y), discarding previous points.
func (p *Path) MoveTo(x, y float64) {
	p.points = append(p.points[:0], orb.Point{x, y})
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.points = append(p.points, orb.Point{x, y})
}

// Points returns the raw points as added.
func (p *Path) Points() orb.Ring {
	return p.points
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.points)
}

// Shape is an outer path with optional holes.
type Shape struct {
	Path
	Holes []*Path
}

// BuildShape projects a [lon, lat] ring into a shape.
func BuildShape(ring orb.Ring, proj projection.Projector) (*Shape, error) {
	s := &Shape{}
	if err := projectInto(&s.Path, ring, proj); err != nil {
		return nil, err
	}
	return s, nil
}

// BuildShapeWithHoles projects rings[0] as the outer path and the rest as holes.
func BuildShapeWithHoles(rings []orb.Ring, proj projection.Projector) (*Shape, error) {
	if len(rings) == 0 {
		return nil, ErrEmptyRing
	}
	s, err := BuildShape(rings[0], proj)
	if err != nil {
		return nil, err
	}
	for i, r := range rings[1:] {
		h := &Path{}
		if err := projectInto(h, r, proj); err != nil {
			return nil, fmt.Errorf("hole %d: %w", i, err)
		}
		s.Holes = append(s.Holes, h)
	}
	return s, nil
}

func projectInto(p *Path, ring orb.Ring, proj projection.Projector) error {
	if len(ring) == 0 {
		return ErrEmptyRing
	}
	for i, pt := range ring {
		if !finite(pt[0]) || !finite(pt[1]) {
			return fmt.Errorf("point %d: %w", i, feature.ErrMalformedPoint)
		}
		w := proj.Project(pt[1], pt[0])
		if i == 0 {
			p.MoveTo(float64(w.X), float64(w.Z))
		} else {
			p.LineTo(float64(w.X), float64(w.Z))
		}
	}
	return nil
}

// Extract returns the contour counter-clockwise and every hole clockwise,
// with repeated consecutive points and the closing duplicate removed.
// Holes that collapse below three points are dropped.
func (s *Shape) Extract() (contour orb.Ring, holes []orb.Ring, err error) {
	contour = clean(s.points)
	if len(contour) < 3 {
		return nil, nil, ErrDegenerate
	}
	if contour.Orientation() == orb.CW {
		contour.Reverse()
	}
	for _, h := range s.Holes {
		ring := clean(h.points)
		if len(ring) < 3 {
			continue
		}
		if ring.Orientation() == orb.CCW {
			ring.Reverse()
		}
		holes = append(holes, ring)
	}
	return contour, holes, nil
}

// clean copies r without consecutive duplicates or a closing duplicate.
func clean(r orb.Ring) orb.Ring {
	out := make(orb.Ring, 0, len(r))
	for _, p := range r {
		if n := len(out); n > 0 && out[n-1].Equal(p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0].Equal(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func finite(v float64) bool {
	return !gomath.IsNaN(v) && !gomath.IsInf(v, 0)
}
