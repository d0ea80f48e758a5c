// Package config loads the game configuration: board dimensions and the
// piece set from a YAML file, and engine preferences (overlays, grid) from a
// JSON file. Missing or invalid files fall back to defaults so the demo
// always starts.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tabletop/internal/layout"
	"tabletop/internal/piece"
	"tabletop/internal/vmath"
)

// DefaultGamePath is the game config file, relative to the working directory.
const DefaultGamePath = "config/game.yaml"

// BoardConfig is the board section of the game config.
type BoardConfig struct {
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
	CellSize float32 `yaml:"cell_size"`
}

// PieceConfig describes one starting piece. Color is a named color or
// #rrggbb; Size is the full box extents (zero size uses the default).
type PieceConfig struct {
	Name  string     `yaml:"name"`
	Color string     `yaml:"color"`
	Size  [3]float32 `yaml:"size,omitempty"`
}

// Game is the full game configuration.
type Game struct {
	Board  BoardConfig   `yaml:"board"`
	Pieces []PieceConfig `yaml:"pieces"`
	// Seed drives initial piece placement; 0 means time-based.
	Seed int64 `yaml:"seed"`
}

// defaultPieceSize is the box extents used when a piece entry has no size.
var defaultPieceSize = [3]float32{0.8, 0.5, 0.8}

// DefaultGame returns the built-in configuration: an 8×8 unit-cell board
// with four colored pieces.
func DefaultGame() Game {
	return Game{
		Board: BoardConfig{Cols: 8, Rows: 8, CellSize: 1.0},
		Pieces: []PieceConfig{
			{Name: "red", Color: "red"},
			{Name: "green", Color: "green"},
			{Name: "blue", Color: "blue"},
			{Name: "yellow", Color: "yellow"},
		},
		Seed: 0,
	}
}

// LoadGame reads the game config from path. A missing or unparsable file
// returns DefaultGame() and no error, matching the engine prefs behavior.
func LoadGame(path string) Game {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultGame()
	}
	var g Game
	if err := yaml.Unmarshal(data, &g); err != nil {
		return DefaultGame()
	}
	if g.Board.Cols < 1 || g.Board.Rows < 1 {
		g.Board = DefaultGame().Board
	}
	if g.Board.CellSize <= 0 {
		g.Board.CellSize = 1.0
	}
	if len(g.Pieces) == 0 {
		g.Pieces = DefaultGame().Pieces
	}
	return g
}

// Defs converts the configured piece list into layout definitions, parsing
// colors and filling in the default size.
func (g Game) Defs() []layout.Def {
	defs := make([]layout.Def, 0, len(g.Pieces))
	for _, pc := range g.Pieces {
		size := pc.Size
		if size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
			size = defaultPieceSize
		}
		defs = append(defs, layout.Def{
			Name:  pc.Name,
			Color: ParseColor(pc.Color),
			Size:  vmath.FromArray(size),
		})
	}
	return defs
}

// namedColors are the color names accepted in piece configs.
var namedColors = map[string]piece.Color{
	"red":    {R: 230, G: 70, B: 70, A: 255},
	"green":  {R: 80, G: 200, B: 100, A: 255},
	"blue":   {R: 80, G: 110, B: 230, A: 255},
	"yellow": {R: 235, G: 200, B: 60, A: 255},
	"orange": {R: 240, G: 150, B: 50, A: 255},
	"purple": {R: 170, G: 90, B: 220, A: 255},
	"white":  {R: 240, G: 240, B: 240, A: 255},
	"black":  {R: 30, G: 30, B: 30, A: 255},
	"gray":   {R: 128, G: 128, B: 128, A: 255},
}

// ParseColor parses a named color or a #rrggbb hex string. Unknown values
// fall back to gray so a typo in the config never loses a piece.
func ParseColor(s string) piece.Color {
	if c, ok := namedColors[s]; ok {
		return c
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
		return piece.Color{R: r, G: g, B: b, A: 255}
	}
	return namedColors["gray"]
}
