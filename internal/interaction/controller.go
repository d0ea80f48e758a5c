// Package interaction implements the drag state machine: picking a piece up
// with the pointer, moving it along a fixed horizontal drag plane, and
// dropping it snapped to the nearest grid cell. It is host-independent: the
// pointer-to-ray projection and the collision query are ports, so the
// controller runs against synthetic rays and geometry in tests.
package interaction

import (
	"fmt"

	"tabletop/internal/physics"
	"tabletop/internal/vmath"
)

// RaySource projects a 2D pointer position into a world-space ray. The scene
// camera is the host implementation.
type RaySource interface {
	PointerRay(x, y float32) vmath.Ray
}

// HitTester answers synchronous first-hit raycast queries against collision
// geometry. physics.World is the host implementation.
type HitTester interface {
	Raycast(ray vmath.Ray, maxDist float32, mask physics.Layer) (physics.Hit, bool)
}

// Draggable is the capability a hit object must expose to be picked up.
// A raycast hit whose owner does not implement it is ignored.
type Draggable interface {
	Position() vmath.Vec3
	SetPosition(pos vmath.Vec3)
	Hold()
	Rest(at vmath.Vec3)
}

// LineLogger receives one-line diagnostics (pickup, drop). May be nil.
type LineLogger interface {
	Log(line string)
}

// Options configures a Controller.
type Options struct {
	// PlaneHeight is the Y of the drag plane a held piece follows.
	PlaneHeight float32
	// CellSize is the snap grid pitch applied on drop.
	CellSize float32
	// MaxDistance bounds pick raycasts; 0 uses DefaultMaxDistance.
	MaxDistance float32
}

// DefaultMaxDistance is how far a pick ray is cast into the world.
const DefaultMaxDistance = 100

// session is the transient drag state: the held piece and the vertical
// offset between the piece center and the drag plane, captured at pick-up
// so the piece does not visually jump.
type session struct {
	piece   Draggable
	offsetY float32
}

// Controller owns the idle/dragging state machine. The session pointer is
// the whole of its mutable state: nil means idle, non-nil means dragging,
// so at most one piece can ever be held.
type Controller struct {
	rays  RaySource
	world HitTester
	log   LineLogger

	planeHeight float32
	cellSize    float32
	maxDist     float32

	session *session
}

// NewController wires the controller to its ports. log may be nil.
func NewController(rays RaySource, world HitTester, log LineLogger, opts Options) *Controller {
	maxDist := opts.MaxDistance
	if maxDist <= 0 {
		maxDist = DefaultMaxDistance
	}
	cell := opts.CellSize
	if cell <= 0 {
		cell = 1
	}
	return &Controller{
		rays:        rays,
		world:       world,
		log:         log,
		planeHeight: opts.PlaneHeight,
		cellSize:    cell,
		maxDist:     maxDist,
	}
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool {
	return c.session != nil
}

// Held returns the currently held piece, or nil when idle.
func (c *Controller) Held() Draggable {
	if c.session == nil {
		return nil
	}
	return c.session.piece
}

// Press handles a pointer press at screen position (x, y). If the pick ray
// hits a draggable piece, a drag session starts and the vertical offset
// between the piece and the hit point is captured. Pressing empty space, a
// non-draggable body, or pressing while already dragging is a no-op.
func (c *Controller) Press(x, y float32) {
	if c.session != nil {
		return
	}
	ray := c.rays.PointerRay(x, y)
	hit, ok := c.world.Raycast(ray, c.maxDist, physics.LayerPiece)
	if !ok {
		return
	}
	d, ok := hit.Body.Owner.(Draggable)
	if !ok {
		return
	}
	// Offset is captured against the drag plane, not the collider hit, so
	// the piece keeps its current height on the first Move and never jumps.
	c.session = &session{
		piece:   d,
		offsetY: d.Position().Y - c.planeHeight,
	}
	d.Hold()
	c.logf("picked up piece at %.2f, %.2f, %.2f", hit.Point.X, hit.Point.Y, hit.Point.Z)
}

// Move handles the per-frame pointer position while dragging: the current
// pointer ray is intersected with the drag plane and the held piece follows
// the intersection, lifted by the captured offset. A ray parallel to the
// plane or intersecting behind the origin leaves the piece where it is for
// that frame. A no-op when idle.
func (c *Controller) Move(x, y float32) {
	if c.session == nil {
		return
	}
	ray := c.rays.PointerRay(x, y)
	pt, _, ok := vmath.RayPlaneY(ray, c.planeHeight)
	if !ok {
		return
	}
	pt.Y = c.planeHeight + c.session.offsetY
	c.session.piece.SetPosition(pt)
}

// Release ends the drag session: the held piece is dropped on the nearest
// grid cell center at its resting height and the session is cleared. A
// no-op when idle.
func (c *Controller) Release() {
	if c.session == nil {
		return
	}
	p := c.session.piece
	at := vmath.Snap(p.Position(), c.cellSize)
	p.Rest(at)
	c.session = nil
	c.logf("dropped piece at %.2f, %.2f", at.X, at.Z)
}

func (c *Controller) logf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.Log(fmt.Sprintf(format, args...))
}
