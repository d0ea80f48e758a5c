package main

import (
	"tabletop/internal/board"
	"tabletop/internal/config"
	"tabletop/internal/debug"
	"tabletop/internal/graphics"
	"tabletop/internal/input"
	"tabletop/internal/interaction"
	"tabletop/internal/layout"
	"tabletop/internal/logger"
	"tabletop/internal/physics"
	"tabletop/internal/piece"
	"tabletop/internal/scene"
)

func main() {
	game := config.LoadGame(config.DefaultGamePath)
	prefs := config.LoadPrefs(config.DefaultPrefsPath)
	log := logger.New(logger.DefaultPath)

	b := board.New(game.Board.Cols, game.Board.Rows, game.Board.CellSize)
	pieces := layout.Place(b, game.Defs(), layout.Options{Seed: game.Seed})

	world := physics.NewWorld()
	center, size := b.Collider()
	world.AddBody(physics.NewBody(center, size, physics.LayerBoard, b))
	for _, p := range pieces {
		world.AddBody(p.Body())
	}

	scn := scene.New()
	scn.SetGridVisible(prefs.GridVisible)

	// Drag plane at the board surface; drop snap uses the board's cell size.
	ctl := interaction.NewController(scn, world, log, interaction.Options{
		PlaneHeight: 0,
		CellSize:    b.Cell,
	})
	pointer := input.NewPointer(ctl)

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)

	update := func() {
		pointer.Update()
		if held, ok := ctl.Held().(*piece.Piece); ok {
			dbg.SetStatus("dragging: " + held.Name)
		} else {
			dbg.SetStatus("idle")
		}
	}
	draw := func() {
		held, _ := ctl.Held().(*piece.Piece)
		scn.Draw(b, pieces, held)
		dbg.Draw()
	}
	graphics.Run("tabletop", update, draw)
}
