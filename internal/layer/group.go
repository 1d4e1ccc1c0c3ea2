package layer

// Collider describes the invisible picking volumes attached to a group.
type Collider struct {
	Enabled   bool
	Colliders *Group
}

// Group is an ordered container of renderables.
type Group struct {
	node
	Tag      string    // Type marker, "GeoLayer" for geo layers
	Collider *Collider // nil when the group carries no collider descriptor

	children []Renderable
}

// NewGroup creates an empty visible group.
func NewGroup(name string) *Group {
	return &Group{node: node{name: name, Visible: true}}
}

// Add appends r.
func (g *Group) Add(r Renderable) {
	if r == nil {
		return
	}
	g.children = append(g.children, r)
}

// Remove detaches r without disposing it. It reports whether r was a child.
func (g *Group) Remove(r Renderable) bool {
	for i, c := range g.children {
		if c == r {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns the direct children.
func (g *Group) Children() []Renderable {
	return g.children
}

// Len returns the number of direct children.
func (g *Group) Len() int {
	return len(g.children)
}

// Find returns the first renderable named name, searching depth first and
// including g itself.
func (g *Group) Find(name string) Renderable {
	if g.name == name {
		return g
	}
	for _, c := range g.children {
		if c.Name() == name {
			return c
		}
		if sub := asGroup(c); sub != nil {
			if found := sub.Find(name); found != nil {
				return found
			}
		}
	}
	return nil
}

// Walk visits every descendant depth first. Returning false from fn skips
// the children of a group.
func (g *Group) Walk(fn func(Renderable) bool) {
	for _, c := range g.children {
		if !fn(c) {
			continue
		}
		if sub := asGroup(c); sub != nil {
			sub.Walk(fn)
		}
	}
}

// Clear disposes and removes every child, and the colliders referenced by
// the collider descriptor.
func (g *Group) Clear() {
	for _, c := range g.children {
		c.Dispose()
	}
	g.children = nil
	if g.Collider != nil && g.Collider.Colliders != nil {
		g.Collider.Colliders.Clear()
	}
}

// Dispose disposes the whole subtree.
func (g *Group) Dispose() {
	g.Clear()
}

func asGroup(r Renderable) *Group {
	if sub, ok := r.(*Group); ok {
		return sub
	}
	return nil
}
