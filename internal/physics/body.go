package physics

import (
	"tabletop/internal/vmath"
)

// Layer is a collision category bitmask. Raycasts take a mask and only
// consider bodies whose layer is in it.
type Layer uint32

const (
	// LayerBoard is the board surface.
	LayerBoard Layer = 1 << 0
	// LayerPiece is the movable pieces.
	LayerPiece Layer = 1 << 1
)

// Body is a static axis-aligned box in the collision world: center position,
// full extents, and a collision layer. Owner points back at the scene object
// the body belongs to (e.g. a piece) so a raycast hit can be resolved to it.
type Body struct {
	Position vmath.Vec3
	Size     vmath.Vec3
	Layer    Layer
	Owner    any
}

// NewBody returns a body with the given center position and full extents on
// the given layer. Zero extents default to 1 on each axis.
func NewBody(position, size vmath.Vec3, layer Layer, owner any) *Body {
	return &Body{
		Position: position,
		Size:     size,
		Layer:    layer,
		Owner:    owner,
	}
}

// AABB returns the body's min and max corners (center ± half extents).
func (b *Body) AABB() (min, max vmath.Vec3) {
	sx, sy, sz := b.Size.X, b.Size.Y, b.Size.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	half := vmath.Vec3{X: sx * 0.5, Y: sy * 0.5, Z: sz * 0.5}
	return vmath.Sub(b.Position, half), vmath.Add(b.Position, half)
}
