// Package material describes surface and line appearance shared by meshes.
package material

// Kind selects how a material is drawn.
type Kind int

const (
	KindSurface    Kind = iota // Lit surface
	KindBasic                  // Unlit, used for invisible colliders
	KindLine                   // One-pixel line
	KindFatLine                // Screen-space wide line
	KindDashedLine             // Dashed line with animated dash size
	KindWater                  // Water surface
)

func (k Kind) String() string {
	switch k {
	case KindSurface:
		return "surface"
	case KindBasic:
		return "basic"
	case KindLine:
		return "line"
	case KindFatLine:
		return "fatline"
	case KindDashedLine:
		return "dashed"
	case KindWater:
		return "water"
	default:
		return "unknown"
	}
}

// Material is reference counted by the meshes that use it. Managed
// materials are disposed when the last user releases them; materials
// supplied by callers are never disposed here.
type Material struct {
	Kind         Kind
	Name         string
	Color        uint32
	Opacity      float32
	Transparent  bool
	Visible      bool
	Specular     uint32
	Reflectivity float32
	Width        float32 // Fat line width
	DashSize     float32
	GapSize      float32

	managed  bool
	refs     int
	disposed bool
}

// New creates an opaque visible material.
func New(kind Kind, color uint32) *Material {
	return &Material{Kind: kind, Color: color, Opacity: 1, Visible: true}
}

// Managed reports whether the material is released with its last user.
func (m *Material) Managed() bool {
	return m.managed
}

// Refs returns the number of current users.
func (m *Material) Refs() int {
	return m.refs
}

// Disposed reports whether the material has been released.
func (m *Material) Disposed() bool {
	return m.disposed
}

// Acquire registers one more user.
func (m *Material) Acquire() {
	if m == nil {
		return
	}
	m.refs++
}

// Release drops one user and disposes a managed material once unused.
func (m *Material) Release() {
	if m == nil || m.refs == 0 {
		return
	}
	m.refs--
	if m.refs == 0 && m.managed {
		m.disposed = true
	}
}

// RGB splits Color into components in [0, 1].
func (m *Material) RGB() (r, g, b float32) {
	return float32(m.Color>>16&0xff) / 255, float32(m.Color>>8&0xff) / 255, float32(m.Color&0xff) / 255
}
