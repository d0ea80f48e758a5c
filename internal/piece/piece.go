// Package piece models the movable board pieces: small colored boxes that
// rest on grid cell centers and can be picked up and dragged by the
// interaction controller.
package piece

import (
	"tabletop/internal/physics"
	"tabletop/internal/vmath"
)

// State is a piece's binary drag state.
type State uint8

const (
	// StateResting: the piece sits on the board, base touching the surface.
	StateResting State = iota
	// StateHeld: the piece follows the pointer along the drag plane.
	StateHeld
)

// Color is an RGBA color, renderer-independent so piece and config code can
// be tested without the window stack.
type Color struct {
	R, G, B, A uint8
}

// Piece is a box-shaped piece. Its collision body shares the piece position;
// SetPosition keeps the two in sync.
type Piece struct {
	Name  string
	Color Color
	Size  vmath.Vec3

	position vmath.Vec3
	state    State
	body     *physics.Body
}

// New returns a resting piece of the given size with a collision body on the
// piece layer. The body's Owner is the piece itself, which is what the
// interaction controller's capability check resolves a raycast hit to.
func New(name string, color Color, size vmath.Vec3) *Piece {
	p := &Piece{Name: name, Color: color, Size: size}
	p.body = physics.NewBody(p.position, size, physics.LayerPiece, p)
	return p
}

// Body returns the piece's collision body for registration with the world.
func (p *Piece) Body() *physics.Body {
	return p.body
}

// RestingHeight is the Y of the piece center when resting: half its height,
// so the base touches the board surface at Y=0.
func (p *Piece) RestingHeight() float32 {
	return p.Size.Y * 0.5
}

// Position returns the piece's current world position (its center).
func (p *Piece) Position() vmath.Vec3 {
	return p.position
}

// SetPosition moves the piece and its collision body.
func (p *Piece) SetPosition(pos vmath.Vec3) {
	p.position = pos
	p.body.Position = pos
}

// State returns the piece's drag state.
func (p *Piece) State() State {
	return p.state
}

// Held reports whether the piece is currently being dragged.
func (p *Piece) Held() bool {
	return p.state == StateHeld
}

// Hold marks the piece as held. Position updates follow via SetPosition.
func (p *Piece) Hold() {
	p.state = StateHeld
}

// Rest drops the piece at the given XZ, snapped by the caller, pinning its
// height to the resting height.
func (p *Piece) Rest(at vmath.Vec3) {
	at.Y = p.RestingHeight()
	p.SetPosition(at)
	p.state = StateResting
}

// PlaceAt rests the piece on the given cell center (used during setup).
func (p *Piece) PlaceAt(cellCenter vmath.Vec3) {
	p.Rest(cellCenter)
}
