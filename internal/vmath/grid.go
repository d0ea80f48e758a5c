package vmath

import (
	"github.com/chewxy/math32"
)

// Snap returns the nearest grid cell center to p for the given cell size:
// X and Z are rounded independently to the nearest multiple of cell, Y is
// preserved. Snap is idempotent. cell must be positive; a non-positive cell
// returns p unchanged.
func Snap(p Vec3, cell float32) Vec3 {
	if cell <= 0 {
		return p
	}
	return Vec3{
		X: math32.Round(p.X/cell) * cell,
		Y: p.Y,
		Z: math32.Round(p.Z/cell) * cell,
	}
}
