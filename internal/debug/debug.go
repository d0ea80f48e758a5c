package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime overlays: the FPS counter and the drag-state line.
// All overlays are off by default.
type Debug struct {
	ShowFPS     bool
	frameCount  uint32
	lastFpsText string
	statusText  string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetStatus sets the drag-state line drawn at the bottom-left ("idle" or the
// held piece's name). Empty hides the line.
func (d *Debug) SetStatus(text string) {
	d.statusText = text
}

// Draw renders any enabled overlays. Call after the 3D scene in the draw
// loop. FPS text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++

	if d.ShowFPS {
		if d.lastFpsText == "" || d.frameCount%updateInterval == 0 {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		w := rl.MeasureText(d.lastFpsText, overlayFontSize)
		x := int32(rl.GetScreenWidth()) - w - overlayPadding
		rl.DrawText(d.lastFpsText, x, overlayPadding, overlayFontSize, rl.Green)
	}

	if d.statusText != "" {
		y := int32(rl.GetScreenHeight()) - overlayLineHeight
		rl.DrawText(d.statusText, overlayPadding, y, overlayFontSize, rl.RayWhite)
	}
}
