package animation

import (
	"math"

	"github.com/Faultbox/midgard-geo/internal/engine/material"
)

// DefaultDashDuration is the time in seconds for a dash to grow over the
// whole line.
const DefaultDashDuration = 3.0

// DashLine grows the dash of a dashed line material from zero to the line
// length, then starts over.
type DashLine struct {
	name     string
	Material *material.Material
	Length   float32
	Speed    float32 // Length units per second
}

// NewDashLine creates a dash animation over a line of the given length.
func NewDashLine(name string, m *material.Material, length float32) *DashLine {
	return &DashLine{
		name:     name,
		Material: m,
		Length:   length,
		Speed:    length / DefaultDashDuration,
	}
}

// Name implements Animation.
func (d *DashLine) Name() string {
	return d.name
}

// Update implements Animation.
func (d *DashLine) Update(dt float32) {
	if d.Length <= 0 {
		return
	}
	size := float64(d.Material.DashSize + dt*d.Speed)
	if math.IsNaN(size) || math.IsInf(size, 0) {
		size = 0
	}
	if size > float64(d.Length) {
		size = math.Mod(size, float64(d.Length))
	}
	d.Material.DashSize = float32(size)
}
