package mesh

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNothingToMerge is returned by Merge for an empty input.
var ErrNothingToMerge = errors.New("no geometries to merge")

// LayoutError reports an input whose layout differs from the first one.
type LayoutError struct {
	Index  int    // Offending input
	Reason string // What differs
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("geometry %d: incompatible layout: %s", e.Index, e.Reason)
}

// Merge concatenates geometries into a new one. Every input must carry the
// same attribute names and item sizes and must agree on being indexed;
// indices are re-based by the accumulated vertex count. Inputs are left
// untouched.
func Merge(geometries []*Geometry) (*Geometry, error) {
	if len(geometries) == 0 {
		return nil, ErrNothingToMerge
	}

	first := geometries[0]
	names := first.AttributeNames()
	indexed := first.Indexed()

	sizes := make(map[string]int, len(names))
	total := make(map[string]int, len(names))
	indexTotal := 0
	for i, g := range geometries {
		if g == nil || g.Disposed() {
			return nil, &LayoutError{Index: i, Reason: "geometry is nil or disposed"}
		}
		if g.Indexed() != indexed {
			return nil, &LayoutError{Index: i, Reason: "mixes indexed and non-indexed geometry"}
		}
		got := g.AttributeNames()
		if strings.Join(got, ",") != strings.Join(names, ",") {
			return nil, &LayoutError{Index: i, Reason: fmt.Sprintf("attributes %v, want %v", got, names)}
		}
		for _, name := range names {
			a := g.Attribute(name)
			if i == 0 {
				sizes[name] = a.ItemSize
			} else if a.ItemSize != sizes[name] {
				return nil, &LayoutError{
					Index:  i,
					Reason: fmt.Sprintf("attribute %q item size %d, want %d", name, a.ItemSize, sizes[name]),
				}
			}
			total[name] += len(a.Data)
		}
		indexTotal += len(g.Index)
	}

	merged := New()
	for _, name := range names {
		data := make([]float32, 0, total[name])
		for _, g := range geometries {
			data = append(data, g.Attribute(name).Data...)
		}
		merged.attributes[name] = &Attribute{ItemSize: sizes[name], Data: data}
	}

	if indexed {
		merged.Index = make([]uint32, 0, indexTotal)
		var offset uint32
		for _, g := range geometries {
			for _, idx := range g.Index {
				merged.Index = append(merged.Index, idx+offset)
			}
			offset += uint32(g.VertexCount())
		}
	}

	merged.ComputeBounds()
	return merged, nil
}
