// Package layout places the starting pieces on the board: each piece gets a
// distinct random cell, so a fresh scene never starts with stacked pieces.
package layout

import (
	"math/rand"
	"time"

	"tabletop/internal/board"
	"tabletop/internal/piece"
	"tabletop/internal/vmath"
)

// Def describes one piece to place: display name, color, and box size.
type Def struct {
	Name  string
	Color piece.Color
	Size  vmath.Vec3
}

// Options controls initial placement. Seed == 0 uses a time-based seed.
type Options struct {
	Seed int64
}

// Place builds pieces from defs and rests each on a distinct random cell of
// the board. If there are more defs than cells, the overflow is dropped.
// A fixed non-zero seed gives a deterministic layout.
func Place(b *board.Board, defs []Def, opts Options) []*piece.Piece {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cellCount := b.Cols * b.Rows
	if len(defs) > cellCount {
		defs = defs[:cellCount]
	}

	// Shuffle the cell indices and take the first len(defs): distinct cells
	// without rejection sampling.
	cells := rng.Perm(cellCount)

	pieces := make([]*piece.Piece, 0, len(defs))
	for i, def := range defs {
		cell := cells[i]
		col := cell % b.Cols
		row := cell / b.Cols
		p := piece.New(def.Name, def.Color, def.Size)
		p.PlaceAt(b.CellCenter(col, row))
		pieces = append(pieces, p)
	}
	return pieces
}
