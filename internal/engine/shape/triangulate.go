package shape

import (
	gomath "math"
	"sort"

	"github.com/paulmach/orb"
)

// vertex is a node of the circular outline being clipped. Bridging a hole
// duplicates the two bridge ends, so several vertices may share an index.
type vertex struct {
	i          int
	x, y       float64
	prev, next *vertex
	steiner    bool
}

// Triangulate splits a contour with holes into triangles by ear clipping.
// Holes are bridged into the contour leftmost first, each by a ray cast to
// the left of its leftmost vertex. The returned triples index the
// concatenation of contour followed by each hole in order, and wind
// counter-clockwise.
func Triangulate(contour orb.Ring, holes []orb.Ring) [][3]int {
	if len(contour) < 3 {
		return nil
	}
	outer := linkRing(contour, 0, true)
	if outer == nil || outer.next == outer.prev {
		return nil
	}

	offset := len(contour)
	var queue []*vertex
	for _, h := range holes {
		start := offset
		offset += len(h)
		if len(h) < 3 {
			continue
		}
		list := linkRing(h, start, false)
		if list == nil {
			continue
		}
		if list == list.next {
			list.steiner = true
		}
		queue = append(queue, leftmost(list))
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return compareLeftmost(queue[i], queue[j]) < 0
	})
	for _, h := range queue {
		outer = eliminateHole(h, outer)
	}

	tris := make([][3]int, 0, offset)
	clipEars(outer, &tris, 0)
	return tris
}

// linkRing builds a circular list of r, counter-clockwise for the contour
// and clockwise for holes, whatever the input winding.
func linkRing(r orb.Ring, start int, ccw bool) *vertex {
	var last *vertex
	if ccw == (signedArea(r) > 0) {
		for j, p := range r {
			last = insertVertex(start+j, p, last)
		}
	} else {
		for j := len(r) - 1; j >= 0; j-- {
			last = insertVertex(start+j, r[j], last)
		}
	}
	if last != nil && equal(last, last.next) {
		removeVertex(last)
		last = last.next
	}
	return last
}

func signedArea(r orb.Ring) float64 {
	var sum float64
	for i, j := 0, len(r)-1; i < len(r); j, i = i, i+1 {
		sum += (r[j][0] - r[i][0]) * (r[i][1] + r[j][1])
	}
	return sum
}

// clipEars cuts ears off the list until one triangle is left. When a full
// turn finds no ear, the list is cleaned, then local self-intersections are
// cured, and finally the outline is split along a valid diagonal.
func clipEars(ear *vertex, tris *[][3]int, pass int) {
	if ear == nil {
		return
	}
	stop := ear
	for ear.prev != ear.next {
		prev, next := ear.prev, ear.next
		if isEar(ear) {
			*tris = append(*tris, [3]int{prev.i, ear.i, next.i})
			removeVertex(ear)
			ear = next.next
			stop = next.next
			continue
		}
		ear = next
		if ear != stop {
			continue
		}
		switch pass {
		case 0:
			clipEars(filterPoints(ear, nil), tris, 1)
		case 1:
			ear = cureLocalIntersections(filterPoints(ear, nil), tris)
			clipEars(ear, tris, 2)
		case 2:
			splitClip(ear, tris)
		}
		return
	}
}

func isEar(ear *vertex) bool {
	a, b, c := ear.prev, ear, ear.next
	if area(a, b, c) >= 0 {
		return false
	}
	for p := c.next; p != a; p = p.next {
		if !(p.x == a.x && p.y == a.y) &&
			pointInTriangle(a.x, a.y, b.x, b.y, c.x, c.y, p.x, p.y) &&
			area(p.prev, p, p.next) >= 0 {
			return false
		}
	}
	return true
}

// filterPoints drops duplicate and collinear vertices between start and end.
func filterPoints(start, end *vertex) *vertex {
	if start == nil {
		return nil
	}
	if end == nil {
		end = start
	}
	p := start
	for {
		again := false
		if !p.steiner && (equal(p, p.next) || area(p.prev, p, p.next) == 0) {
			removeVertex(p)
			p = p.prev
			end = p
			if p == p.next {
				break
			}
			again = true
		} else {
			p = p.next
		}
		if !again && p == end {
			break
		}
	}
	return end
}

// cureLocalIntersections removes small self-crossings of the form
// a-p-p.next-b where a-p crosses p.next-b.
func cureLocalIntersections(start *vertex, tris *[][3]int) *vertex {
	p := start
	for {
		a, b := p.prev, p.next.next
		if !equal(a, b) && intersects(a, p, p.next, b) && locallyInside(a, b) && locallyInside(b, a) {
			*tris = append(*tris, [3]int{a.i, p.i, b.i})
			removeVertex(p)
			removeVertex(p.next)
			p, start = b, b
		}
		p = p.next
		if p == start {
			break
		}
	}
	return filterPoints(p, nil)
}

// splitClip splits the outline along the first valid diagonal and clips
// both halves.
func splitClip(start *vertex, tris *[][3]int) {
	a := start
	for {
		for b := a.next.next; b != a.prev; b = b.next {
			if a.i != b.i && isValidDiagonal(a, b) {
				c := splitPolygon(a, b)
				a = filterPoints(a, a.next)
				c = filterPoints(c, c.next)
				clipEars(a, tris, 0)
				clipEars(c, tris, 0)
				return
			}
		}
		a = a.next
		if a == start {
			return
		}
	}
}

// eliminateHole links hole into outer with a pair of bridge edges.
func eliminateHole(hole, outer *vertex) *vertex {
	bridge := findHoleBridge(hole, outer)
	if bridge == nil {
		return outer
	}
	reverse := splitPolygon(bridge, hole)
	filterPoints(reverse, reverse.next)
	return filterPoints(bridge, bridge.next)
}

// findHoleBridge finds the outline vertex to connect hole to. A ray from
// hole to the left picks the nearest crossed edge; a vertex inside the
// triangle spanned by the hit and that edge's end may shadow it. When
// several copies of a vertex qualify, the one whose sector contains the
// bridge wins.
func findHoleBridge(hole, outer *vertex) *vertex {
	hx, hy := hole.x, hole.y
	qx := gomath.Inf(-1)
	var m *vertex

	p := outer
	for {
		if equal(hole, p) {
			return p
		}
		if hy <= p.y && hy >= p.next.y && p.next.y != p.y {
			x := p.x + (hy-p.y)*(p.next.x-p.x)/(p.next.y-p.y)
			if x <= hx && x > qx {
				qx = x
				m = p
				if p.next.x < p.x {
					m = p.next
				}
				if x == hx {
					return m
				}
			}
		}
		p = p.next
		if p == outer {
			break
		}
	}
	if m == nil {
		return nil
	}

	stop := m
	mx, my := m.x, m.y
	tanMin := gomath.Inf(1)
	p = m
	for {
		ax, cx := qx, hx
		if hy < my {
			ax, cx = hx, qx
		}
		if hx >= p.x && p.x >= mx && hx != p.x &&
			pointInTriangle(ax, hy, mx, my, cx, hy, p.x, p.y) {
			tan := gomath.Abs(hy-p.y) / (hx - p.x)
			if locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (p.x > m.x || (p.x == m.x && sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}
		p = p.next
		if p == stop {
			break
		}
	}
	return m
}

// sectorContainsSector reports whether the sector at p lies within the
// sector at m, for two copies of the same point.
func sectorContainsSector(m, p *vertex) bool {
	return area(m.prev, m, p.prev) < 0 && area(p.next, m, m.next) < 0
}

func leftmost(start *vertex) *vertex {
	best := start
	for p := start.next; p != start; p = p.next {
		if p.x < best.x || (p.x == best.x && p.y < best.y) {
			best = p
		}
	}
	return best
}

// compareLeftmost orders holes by x, then y, then by the slope of the edge
// leaving the leftmost vertex.
func compareLeftmost(a, b *vertex) float64 {
	if d := a.x - b.x; d != 0 {
		return d
	}
	if d := a.y - b.y; d != 0 {
		return d
	}
	return (a.next.y-a.y)/(a.next.x-a.x) - (b.next.y-b.y)/(b.next.x-b.x)
}

func isValidDiagonal(a, b *vertex) bool {
	if a.next.i == b.i || a.prev.i == b.i || intersectsPolygon(a, b) {
		return false
	}
	if locallyInside(a, b) && locallyInside(b, a) && middleInside(a, b) &&
		(area(a.prev, a, b.prev) != 0 || area(a, b.prev, b) != 0) {
		return true
	}
	return equal(a, b) && area(a.prev, a, a.next) > 0 && area(b.prev, b, b.next) > 0
}

func intersectsPolygon(a, b *vertex) bool {
	p := a
	for {
		if p.i != a.i && p.next.i != a.i && p.i != b.i && p.next.i != b.i &&
			intersects(p, p.next, a, b) {
			return true
		}
		p = p.next
		if p == a {
			return false
		}
	}
}

// locallyInside reports whether the diagonal a-b starts inside the outline
// at a.
func locallyInside(a, b *vertex) bool {
	if area(a.prev, a, a.next) < 0 {
		return area(a, b, a.next) >= 0 && area(a, a.prev, b) >= 0
	}
	return area(a, b, a.prev) < 0 || area(a, a.next, b) < 0
}

// middleInside reports whether the midpoint of a-b is inside the outline.
func middleInside(a, b *vertex) bool {
	inside := false
	px, py := (a.x+b.x)/2, (a.y+b.y)/2
	p := a
	for {
		if (p.y > py) != (p.next.y > py) && p.next.y != p.y &&
			px < (p.next.x-p.x)*(py-p.y)/(p.next.y-p.y)+p.x {
			inside = !inside
		}
		p = p.next
		if p == a {
			return inside
		}
	}
}

func intersects(p1, q1, p2, q2 *vertex) bool {
	o1 := sign(area(p1, q1, p2))
	o2 := sign(area(p1, q1, q2))
	o3 := sign(area(p2, q2, p1))
	o4 := sign(area(p2, q2, q1))
	switch {
	case o1 != o2 && o3 != o4:
		return true
	case o1 == 0 && onSegment(p1, p2, q1),
		o2 == 0 && onSegment(p1, q2, q1),
		o3 == 0 && onSegment(p2, p1, q2),
		o4 == 0 && onSegment(p2, q1, q2):
		return true
	}
	return false
}

func onSegment(p, q, r *vertex) bool {
	return q.x <= max(p.x, r.x) && q.x >= min(p.x, r.x) &&
		q.y <= max(p.y, r.y) && q.y >= min(p.y, r.y)
}

// splitPolygon joins a and b with two opposite edges, producing two
// outlines. It returns the copy of b on the second one.
func splitPolygon(a, b *vertex) *vertex {
	a2 := &vertex{i: a.i, x: a.x, y: a.y}
	b2 := &vertex{i: b.i, x: b.x, y: b.y}
	an, bp := a.next, b.prev

	a.next, b.prev = b, a
	a2.next, an.prev = an, a2
	b2.next, a2.prev = a2, b2
	bp.next, b2.prev = b2, bp
	return b2
}

func insertVertex(i int, pt orb.Point, last *vertex) *vertex {
	p := &vertex{i: i, x: pt[0], y: pt[1]}
	if last == nil {
		p.prev, p.next = p, p
		return p
	}
	p.next, p.prev = last.next, last
	last.next.prev = p
	last.next = p
	return p
}

func removeVertex(p *vertex) {
	p.next.prev = p.prev
	p.prev.next = p.next
}

func equal(a, b *vertex) bool {
	return a.x == b.x && a.y == b.y
}

// area is twice the signed area of p, q, r; negative when counter-clockwise.
func area(p, q, r *vertex) float64 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

// cross is twice the signed area of a, b, c; positive when counter-clockwise.
func cross(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
