package vmath

import (
	"github.com/chewxy/math32"
)

// Ray is a half-line from Origin along Direction. Direction should be unit
// length for distance comparisons; construction via NewRay normalizes it.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay returns a ray with a normalized direction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: Normalize(direction)}
}

// At returns the point on the ray at parameter t (Origin + t*Direction).
func (r Ray) At(t float32) Vec3 {
	return Add(r.Origin, Scale(r.Direction, t))
}

// parallelEpsilon: a vertical direction component smaller than this counts as
// parallel to a horizontal plane.
const parallelEpsilon = 1e-6

// RayPlaneY intersects a ray with the horizontal plane Y = height.
// Solves origin.Y + t*dir.Y == height and returns the hit point with ok=true
// only when t is positive and the ray is not parallel to the plane. A ray
// running level with the plane, or one whose intersection lies behind the
// origin, returns ok=false.
func RayPlaneY(r Ray, height float32) (Vec3, float32, bool) {
	if math32.Abs(r.Direction.Y) < parallelEpsilon {
		return Vec3{}, 0, false
	}
	t := (height - r.Origin.Y) / r.Direction.Y
	if t <= 0 {
		return Vec3{}, 0, false
	}
	return r.At(t), t, true
}
