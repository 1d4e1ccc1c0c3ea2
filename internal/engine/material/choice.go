package material

// Choice is either a caller-supplied material or the generator's class
// default.
type Choice struct {
	custom *Material
}

// Use selects a caller-owned material. A nil material means Default.
func Use(m *Material) Choice {
	return Choice{custom: m}
}

// Default selects the generator's class default.
func Default() Choice {
	return Choice{}
}

// IsDefault reports whether the class default is selected.
func (c Choice) IsDefault() bool {
	return c.custom == nil
}

// Resolve returns the caller's material, or the result of build marked as
// managed.
func (c Choice) Resolve(build func() *Material) *Material {
	if c.custom != nil {
		return c.custom
	}
	m := build()
	m.managed = true
	return m
}
