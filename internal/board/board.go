// Package board models the flat playing surface: a fixed grid of square
// cells on the XZ plane whose top face sits at Y=0. The board is built once
// and never mutated; cell centers land on whole multiples of the cell size so
// snapped piece positions line up with them.
package board

import (
	"tabletop/internal/vmath"
)

// Thickness is the vertical extent of the board slab, below Y=0.
const Thickness = 0.2

// Board is a cols×rows grid of square cells of size Cell, roughly centered
// on the world origin in XZ.
type Board struct {
	Cols, Rows int
	Cell       float32
}

// New returns a board with the given grid dimensions and cell size.
// Non-positive dimensions are clamped to 1; a non-positive cell size
// defaults to 1.
func New(cols, rows int, cell float32) *Board {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cell <= 0 {
		cell = 1
	}
	return &Board{Cols: cols, Rows: rows, Cell: cell}
}

// CellCenter returns the world position of the center of cell (col, row) on
// the board surface (Y=0). Centers are whole multiples of the cell size:
// column cols/2 maps to X=0, so an even-sized board extends half a cell
// further on the negative side.
func (b *Board) CellCenter(col, row int) vmath.Vec3 {
	return vmath.Vec3{
		X: float32(col-b.Cols/2) * b.Cell,
		Y: 0,
		Z: float32(row-b.Rows/2) * b.Cell,
	}
}

// Bounds returns the board's XZ extent: min and max corners of the surface.
func (b *Board) Bounds() (minX, minZ, maxX, maxZ float32) {
	half := b.Cell * 0.5
	lo := b.CellCenter(0, 0)
	hi := b.CellCenter(b.Cols-1, b.Rows-1)
	return lo.X - half, lo.Z - half, hi.X + half, hi.Z + half
}

// Contains reports whether the XZ point lies on the board surface.
func (b *Board) Contains(x, z float32) bool {
	minX, minZ, maxX, maxZ := b.Bounds()
	return x >= minX && x <= maxX && z >= minZ && z <= maxZ
}

// Collider returns the center and full extents of the board's collision box.
// The slab sits entirely below the surface so its top face is exactly Y=0.
func (b *Board) Collider() (center, size vmath.Vec3) {
	minX, minZ, maxX, maxZ := b.Bounds()
	center = vmath.Vec3{
		X: (minX + maxX) * 0.5,
		Y: -Thickness * 0.5,
		Z: (minZ + maxZ) * 0.5,
	}
	size = vmath.Vec3{X: maxX - minX, Y: Thickness, Z: maxZ - minZ}
	return center, size
}
