package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tabletop/internal/board"
	"tabletop/internal/piece"
	"tabletop/internal/primitives"
	"tabletop/internal/vmath"
)

const (
	// gridLineY lifts the cell grid slightly above the board surface to
	// avoid z-fighting with the plane mesh.
	gridLineY      = 0.01
	gridLineAlpha  = 90
	gridFrameAlpha = 200
	// heldLift is how far wireframe highlights sit outside the held piece.
	heldLift = 0.02
)

// boardColor is the albedo of the board surface.
var boardColor = rl.NewColor(168, 136, 98, 255)

// gridColor is the cell line color drawn over the surface.
var gridColor = rl.NewColor(60, 48, 36, gridLineAlpha)

// Scene holds the 3D camera and draws the board and pieces. It also projects
// screen points into world rays for the interaction controller, which is the
// camera's only non-rendering job. Camera is fixed; the cursor stays enabled
// so the mouse drives picking rather than camera control.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	prims       *primitives.Registry
	lightDir    [3]float32
}

// New returns a scene with a perspective camera above and behind the board,
// looking at the origin (fovy 45°, Y-up). Grid is visible by default.
func New() *Scene {
	s := &Scene{
		prims:    primitives.NewRegistry(),
		lightDir: [3]float32{0.4, 1, 0.3},
	}
	s.Camera.Position = rl.NewVector3(0, 9, 8)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	return s
}

// SetGridVisible sets whether the cell grid lines are drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// PointerRay builds a world-space ray from the camera through the screen
// point (x, y). This is the interaction controller's ray source.
func (s *Scene) PointerRay(x, y float32) vmath.Ray {
	r := rl.GetScreenToWorldRay(rl.NewVector2(x, y), s.Camera)
	return vmath.NewRay(
		vmath.Vec3{X: r.Position.X, Y: r.Position.Y, Z: r.Position.Z},
		vmath.Vec3{X: r.Direction.X, Y: r.Direction.Y, Z: r.Direction.Z},
	)
}

// Draw renders the board and pieces. Call between ClearBackground and any 2D
// overlay. held may be nil; the held piece gets a wireframe highlight.
func (s *Scene) Draw(b *board.Board, pieces []*piece.Piece, held *piece.Piece) {
	pos := s.Camera.Position
	s.prims.SetView([3]float32{pos.X, pos.Y, pos.Z}, s.lightDir)

	rl.BeginMode3D(s.Camera)
	s.drawBoard(b)
	if s.GridVisible {
		drawCellGrid(b)
	}
	for _, p := range pieces {
		s.drawPiece(p, p == held)
	}
	rl.EndMode3D()
}

// drawBoard draws the board slab: a plane for the top surface and a darker
// cube for the body below it.
func (s *Scene) drawBoard(b *board.Board) {
	center, size := b.Collider()
	body := rl.NewColor(boardColor.R/2, boardColor.G/2, boardColor.B/2, 255)
	s.prims.Draw("cube", center.Array(), size.Array(), body)
	// Top surface sits a hair above the slab's top face so it wins the
	// depth test cleanly.
	s.prims.Draw("plane", [3]float32{center.X, 0.001, center.Z}, [3]float32{size.X, 1, size.Z}, boardColor)
}

// drawPiece draws one piece as a colored cube; the held piece also gets a
// white wireframe so it reads as picked up.
func (s *Scene) drawPiece(p *piece.Piece, held bool) {
	c := p.Color
	s.prims.Draw("cube", p.Position().Array(), p.Size.Array(), rl.NewColor(c.R, c.G, c.B, c.A))
	if held {
		pos := p.Position()
		rl.DrawCubeWires(
			rl.NewVector3(pos.X, pos.Y, pos.Z),
			p.Size.X+heldLift, p.Size.Y+heldLift, p.Size.Z+heldLift,
			rl.RayWhite,
		)
	}
}

// drawCellGrid draws the cell boundary lines over the board surface.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawCellGrid(b *board.Board) {
	minX, minZ, maxX, maxZ := b.Bounds()
	frame := rl.NewColor(gridColor.R, gridColor.G, gridColor.B, gridFrameAlpha)

	var start, end rl.Vector3
	start.Y, end.Y = gridLineY, gridLineY

	for col := 0; col <= b.Cols; col++ {
		x := minX + float32(col)*b.Cell
		c := gridColor
		if col == 0 || col == b.Cols {
			c = frame
		}
		start.X, start.Z = x, minZ
		end.X, end.Z = x, maxZ
		rl.DrawLine3D(start, end, c)
	}
	for row := 0; row <= b.Rows; row++ {
		z := minZ + float32(row)*b.Cell
		c := gridColor
		if row == 0 || row == b.Rows {
			c = frame
		}
		start.X, start.Z = minX, z
		end.X, end.Z = maxX, z
		rl.DrawLine3D(start, end, c)
	}
}
