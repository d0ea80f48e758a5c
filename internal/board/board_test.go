package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tabletop/internal/vmath"
)

func TestCellCentersAreMultiplesOfCellSize(t *testing.T) {
	b := New(8, 8, 1.0)
	for col := 0; col < b.Cols; col++ {
		for row := 0; row < b.Rows; row++ {
			c := b.CellCenter(col, row)
			snapped := vmath.Snap(c, b.Cell)
			assert.Equal(t, snapped, c, "center of (%d,%d) not on the snap grid", col, row)
		}
	}
}

func TestCellCenterOrigin(t *testing.T) {
	b := New(8, 8, 1.0)
	assert.Equal(t, vmath.Vec3{}, b.CellCenter(4, 4))
	assert.Equal(t, vmath.Vec3{X: -4, Z: -4}, b.CellCenter(0, 0))
	assert.Equal(t, vmath.Vec3{X: 3, Z: 3}, b.CellCenter(7, 7))
}

func TestOddBoardIsSymmetric(t *testing.T) {
	b := New(3, 3, 2.0)
	assert.Equal(t, vmath.Vec3{}, b.CellCenter(1, 1))
	minX, minZ, maxX, maxZ := b.Bounds()
	assert.InDelta(t, -3, minX, 1e-6)
	assert.InDelta(t, 3, maxX, 1e-6)
	assert.InDelta(t, -3, minZ, 1e-6)
	assert.InDelta(t, 3, maxZ, 1e-6)
}

func TestContains(t *testing.T) {
	b := New(8, 8, 1.0)
	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(-4.4, 3.4))
	assert.False(t, b.Contains(10, 0))
	assert.False(t, b.Contains(0, -5))
}

func TestColliderTopFaceAtSurface(t *testing.T) {
	b := New(8, 8, 1.0)
	center, size := b.Collider()
	assert.InDelta(t, 0, center.Y+size.Y*0.5, 1e-6)
	assert.InDelta(t, 8, size.X, 1e-6)
	assert.InDelta(t, 8, size.Z, 1e-6)
}

func TestNewClampsDegenerateArguments(t *testing.T) {
	b := New(0, -2, 0)
	assert.Equal(t, 1, b.Cols)
	assert.Equal(t, 1, b.Rows)
	assert.Equal(t, float32(1), b.Cell)
}
