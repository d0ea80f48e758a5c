package physics

import (
	"tabletop/internal/vmath"
)

// World holds the set of collision bodies and answers synchronous spatial
// queries against them. There is no broad phase: the body count here is a
// board plus a handful of pieces, so every query walks the full list.
type World struct {
	Bodies []*Body
}

// NewWorld returns an empty collision world.
func NewWorld() *World {
	return &World{}
}

// AddBody appends a body to the world. Order is preserved; ties in raycast
// distance resolve to the earlier body.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Hit is the result of a successful raycast: the body that was struck, the
// world-space point of entry, and the distance along the ray.
type Hit struct {
	Body     *Body
	Point    vmath.Vec3
	Distance float32
}

// Raycast casts a ray up to maxDist against every body whose layer is in
// mask and returns the nearest hit, or ok=false when nothing is struck.
// The query is one-shot and synchronous.
func (w *World) Raycast(ray vmath.Ray, maxDist float32, mask Layer) (Hit, bool) {
	best := Hit{Distance: maxDist}
	found := false
	for _, b := range w.Bodies {
		if b.Layer&mask == 0 {
			continue
		}
		t, ok := rayBoxEntry(ray, b)
		if !ok || t > best.Distance {
			continue
		}
		if !found || t < best.Distance {
			best = Hit{Body: b, Point: ray.At(t), Distance: t}
			found = true
		}
	}
	return best, found
}

// rayBoxEntry returns the ray parameter where the ray enters the body's AABB
// (slab method). A ray starting inside the box hits at t=0. Boxes entirely
// behind the origin do not hit.
func rayBoxEntry(ray vmath.Ray, b *Body) (float32, bool) {
	boxMin, boxMax := b.AABB()
	tmin := float32(-1e30)
	tmax := float32(1e30)

	for axis := 0; axis < 3; axis++ {
		o := pick(ray.Origin, axis)
		d := pick(ray.Direction, axis)
		lo := pick(boxMin, axis)
		hi := pick(boxMax, axis)
		if d == 0 {
			// Parallel to this slab: miss unless the origin is inside it.
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}

func pick(v vmath.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
