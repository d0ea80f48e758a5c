// Package input polls the host's pointer device once per frame and forwards
// press, move, and release events to the interaction controller. It is the
// only package that reads raylib mouse state.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tabletop/internal/interaction"
)

// Pointer drives the drag controller from the raylib mouse.
type Pointer struct {
	controller *interaction.Controller
}

// NewPointer returns a pointer adapter bound to the controller.
func NewPointer(c *interaction.Controller) *Pointer {
	return &Pointer{controller: c}
}

// Update runs once per frame: press starts a drag, release ends it, and the
// current position feeds the per-frame move. Move while idle is a no-op in
// the controller, so it is safe to call unconditionally.
func (p *Pointer) Update() {
	pos := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p.controller.Press(pos.X, pos.Y)
	}
	p.controller.Move(pos.X, pos.Y)
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		p.controller.Release()
	}
}
