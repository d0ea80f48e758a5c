package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 720
	targetFPS    = 60
)

// Run starts the window and main loop. Each frame it calls update (input and
// drag logic), then clears the screen and calls draw (3D scene and overlays).
// The cursor stays enabled: the mouse is a picking device here, not a camera
// control. Close via window button or ESC.
func Run(title string, update, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 26, 32, 255))
		draw()
		rl.EndDrawing()
	}
}
