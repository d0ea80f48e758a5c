package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabletop/internal/physics"
	"tabletop/internal/piece"
	"tabletop/internal/vmath"
)

// stubRays returns a canned ray regardless of pointer position, so tests
// drive the controller with exact geometry.
type stubRays struct {
	ray vmath.Ray
}

func (s *stubRays) PointerRay(x, y float32) vmath.Ray {
	return s.ray
}

type memLog struct {
	lines []string
}

func (m *memLog) Log(line string) {
	m.lines = append(m.lines, line)
}

func pieceSize() vmath.Vec3 { return vmath.Vec3{X: 0.8, Y: 0.5, Z: 0.8} }

// rayDownAt returns a ray dropping straight down onto (x, z) from above.
func rayDownAt(x, z float32) vmath.Ray {
	return vmath.NewRay(vmath.Vec3{X: x, Y: 5, Z: z}, vmath.Vec3{Y: -1})
}

func newFixture(t *testing.T) (*Controller, *stubRays, *physics.World, *piece.Piece) {
	t.Helper()
	world := physics.NewWorld()
	p := piece.New("pawn", piece.Color{R: 200, A: 255}, pieceSize())
	p.PlaceAt(vmath.Vec3{X: 1, Z: 1})
	world.AddBody(p.Body())

	rays := &stubRays{}
	c := NewController(rays, world, nil, Options{PlaneHeight: 0, CellSize: 1})
	return c, rays, world, p
}

func TestPressOnEmptySpaceStaysIdle(t *testing.T) {
	c, rays, _, _ := newFixture(t)
	rays.ray = rayDownAt(3, -3)

	c.Press(100, 100)
	assert.False(t, c.Dragging())
	assert.Nil(t, c.Held())
}

func TestPressOnPieceStartsDragging(t *testing.T) {
	c, rays, _, p := newFixture(t)
	rays.ray = rayDownAt(1, 1)

	c.Press(100, 100)
	require.True(t, c.Dragging())
	assert.Same(t, p, c.Held())
	assert.True(t, p.Held())
}

func TestPressOnNonDraggableBodyStaysIdle(t *testing.T) {
	c, rays, world, _ := newFixture(t)
	world.AddBody(physics.NewBody(vmath.Vec3{X: -2, Y: 0.25}, pieceSize(), physics.LayerPiece, "not a piece"))
	rays.ray = rayDownAt(-2, 0)

	c.Press(100, 100)
	assert.False(t, c.Dragging())
}

func TestAtMostOnePieceHeld(t *testing.T) {
	c, rays, world, first := newFixture(t)
	second := piece.New("rook", piece.Color{B: 200, A: 255}, pieceSize())
	second.PlaceAt(vmath.Vec3{X: -2, Z: -2})
	world.AddBody(second.Body())

	rays.ray = rayDownAt(1, 1)
	c.Press(100, 100)
	require.Same(t, first, c.Held())

	// Pressing again over the other piece while dragging changes nothing.
	rays.ray = rayDownAt(-2, -2)
	c.Press(50, 50)
	assert.Same(t, first, c.Held())
	assert.False(t, second.Held())
}

func TestMoveFollowsDragPlane(t *testing.T) {
	c, rays, _, p := newFixture(t)
	heldHeight := p.Position().Y
	rays.ray = rayDownAt(1, 1)
	c.Press(100, 100)

	rays.ray = rayDownAt(2.4, -1.6)
	c.Move(120, 80)
	got := p.Position()
	assert.InDelta(t, 2.4, got.X, 1e-5)
	assert.InDelta(t, -1.6, got.Z, 1e-5)
	// Plane height plus the captured offset restores the pick-up height.
	assert.InDelta(t, float64(heldHeight), float64(got.Y), 1e-5)
}

func TestOffsetPreventsVerticalJump(t *testing.T) {
	c, rays, _, p := newFixture(t)
	before := p.Position()

	// Pick straight down onto the piece, then move with the same ray: the
	// piece must not change position at all.
	rays.ray = rayDownAt(1, 1)
	c.Press(100, 100)
	c.Move(100, 100)

	got := p.Position()
	assert.InDelta(t, float64(before.X), float64(got.X), 1e-5)
	assert.InDelta(t, float64(before.Y), float64(got.Y), 1e-5)
	assert.InDelta(t, float64(before.Z), float64(got.Z), 1e-5)
}

func TestDegenerateRayLeavesPieceInPlace(t *testing.T) {
	c, rays, _, p := newFixture(t)
	rays.ray = rayDownAt(1, 1)
	c.Press(100, 100)

	rays.ray = rayDownAt(2, 2)
	c.Move(1, 1)
	before := p.Position()

	// Horizontal ray: parallel to the drag plane, no valid intersection.
	rays.ray = vmath.NewRay(vmath.Vec3{Y: 5}, vmath.Vec3{X: 1})
	c.Move(2, 2)
	assert.Equal(t, before, p.Position())

	// Ray pointing away from the plane: intersection parameter non-positive.
	rays.ray = vmath.NewRay(vmath.Vec3{Y: 5}, vmath.Vec3{Y: 1})
	c.Move(3, 3)
	assert.Equal(t, before, p.Position())
}

func TestReleaseSnapsToCellAndRestingHeight(t *testing.T) {
	c, rays, _, p := newFixture(t)
	rays.ray = rayDownAt(1, 1)
	c.Press(100, 100)

	rays.ray = rayDownAt(1.3, 1.7)
	c.Move(100, 100)
	c.Release()

	assert.False(t, c.Dragging())
	assert.False(t, p.Held())
	got := p.Position()
	assert.InDelta(t, 1.0, got.X, 1e-5)
	assert.InDelta(t, 2.0, got.Z, 1e-5)
	assert.InDelta(t, float64(pieceSize().Y*0.5), float64(got.Y), 1e-5)
}

func TestDropAlwaysLandsOnGrid(t *testing.T) {
	c, rays, _, p := newFixture(t)
	targets := [][2]float32{{0.2, 0.2}, {-1.49, 3.49}, {2.5, -2.5}}
	for _, tgt := range targets {
		rays.ray = rayDownAt(p.Position().X, p.Position().Z)
		c.Press(0, 0)
		require.True(t, c.Dragging())

		rays.ray = rayDownAt(tgt[0], tgt[1])
		c.Move(0, 0)
		c.Release()

		got := p.Position()
		snapped := vmath.Snap(got, 1)
		assert.Equal(t, snapped, got, "drop from (%v,%v) not on a cell center", tgt[0], tgt[1])
		assert.InDelta(t, float64(p.RestingHeight()), float64(got.Y), 1e-5)
	}
}

func TestMoveAndReleaseWhenIdleAreNoops(t *testing.T) {
	c, rays, _, p := newFixture(t)
	before := p.Position()

	rays.ray = rayDownAt(0, 0)
	c.Move(10, 10)
	c.Release()
	assert.Equal(t, before, p.Position())
	assert.False(t, c.Dragging())
}

func TestPickupAndDropAreLogged(t *testing.T) {
	world := physics.NewWorld()
	p := piece.New("pawn", piece.Color{}, pieceSize())
	p.PlaceAt(vmath.Vec3{X: 1, Z: 1})
	world.AddBody(p.Body())

	rays := &stubRays{ray: rayDownAt(1, 1)}
	log := &memLog{}
	c := NewController(rays, world, log, Options{PlaneHeight: 0, CellSize: 1})

	c.Press(0, 0)
	c.Release()
	require.Len(t, log.lines, 2)
	assert.Contains(t, log.lines[0], "picked up")
	assert.Contains(t, log.lines[1], "dropped")
}

func TestMaxDistanceDefaultApplied(t *testing.T) {
	rays := &stubRays{}
	c := NewController(rays, physics.NewWorld(), nil, Options{})
	assert.Equal(t, float32(DefaultMaxDistance), c.maxDist)
	assert.Equal(t, float32(1), c.cellSize)
}
