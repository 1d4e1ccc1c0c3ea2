// Package math provides the small vector and matrix types used by mesh builders.
package math

import "math"

// Vec2 is a 2D vector. Geometry builders use it for horizontal (X, Z) positions.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSq returns the squared magnitude.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// DistanceSq returns the squared distance to another point.
func (v Vec2) DistanceSq(other Vec2) float32 {
	return v.Sub(other).LengthSq()
}
