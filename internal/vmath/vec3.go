package vmath

import (
	"github.com/chewxy/math32"
)

// Vec3 is a float32 3D vector (Y-up, matching the scene's world space).
type Vec3 struct {
	X, Y, Z float32
}

func Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func Scale(v Vec3, s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func Dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func MagSq(v Vec3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func Mag(v Vec3) float32 {
	return math32.Sqrt(MagSq(v))
}

// Normalize returns v scaled to unit length, or the zero vector if v is zero.
func Normalize(v Vec3) Vec3 {
	mag := Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Array returns v as a [3]float32 for code that passes vectors to the renderer.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// FromArray builds a Vec3 from a [3]float32.
func FromArray(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}
