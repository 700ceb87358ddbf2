// internal/grid/builder.go
//
// Word placement and filler generation.
//
// Responsibilities:
//   - Place candidate words onto an empty grid by raster-scan first fit.
//   - Drop words that fit nowhere (partial puzzles are a legal outcome).
//   - Fill remaining empty cells with random alphabet letters.
//
// Placement policy:
//   • Candidates are tried in input order; output preserves that order.
//   • A candidate cell must be empty or already hold the identical letter.
//     Identical-letter overlap keeps the earlier word's cell ownership.
//   • The scan is deterministic: rows top-down, columns left-right, first
//     fitting anchor wins. Randomness enters only through filler letters.

package grid

import (
	"math/rand"

	"github.com/bukvigrad/wordgrid/internal/alphabet"
)

// Builder places words and fills grids using an explicit random source,
// so a fixed seed reproduces the exact same board.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder returns a Builder drawing filler letters from rng.
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{rng: rng}
}

// Build places the candidates on a fresh size×size grid, fills the gaps and
// returns the finished grid together with the words that found a spot.
func (b *Builder) Build(size int, candidates []Candidate) (*Grid, []PlacedWord) {
	g := New(size)
	placed := make([]PlacedWord, 0, len(candidates))
	for _, cand := range candidates {
		if pw, ok := Place(g, cand); ok {
			placed = append(placed, pw)
		}
	}
	b.Fill(g)
	return g, placed
}

// Place writes one candidate onto the first fitting anchor found by raster
// scan. It reports false when no anchor fits; the grid is left untouched
// in that case.
func Place(g *Grid, cand Candidate) (PlacedWord, bool) {
	runes := []rune(cand.Text)
	if len(runes) == 0 || len(runes) > g.Size {
		return PlacedWord{}, false
	}

	dr, dc := 0, 1
	if cand.Direction == Vertical {
		dr, dc = 1, 0
	}
	maxRow := g.Size - 1 - dr*(len(runes)-1)
	maxCol := g.Size - 1 - dc*(len(runes)-1)

	for row := 0; row <= maxRow; row++ {
		for col := 0; col <= maxCol; col++ {
			if !fits(g, runes, row, col, dr, dc) {
				continue
			}
			pw := PlacedWord{
				ID:        cand.ID,
				Text:      cand.Text,
				Direction: cand.Direction,
				Row:       row,
				Col:       col,
				Cells:     make([]Coord, len(runes)),
			}
			for i, r := range runes {
				cr, cc := row+dr*i, col+dc*i
				pw.Cells[i] = Coord{Row: cr, Col: cc}
				if g.Cells[cr][cc].Letter == 0 {
					g.Cells[cr][cc] = Cell{Letter: r, WordID: cand.ID}
				}
			}
			return pw, true
		}
	}
	return PlacedWord{}, false
}

// fits reports whether the word can occupy the run starting at (row, col)
// without a letter conflict.
func fits(g *Grid, runes []rune, row, col, dr, dc int) bool {
	for i, r := range runes {
		cell := g.Cells[row+dr*i][col+dc*i]
		if cell.Letter != 0 && cell.Letter != r {
			return false
		}
	}
	return true
}

// Fill writes a uniformly random alphabet letter into every empty cell.
// Filler cells carry no word reference.
func (b *Builder) Fill(g *Grid) {
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.Cells[r][c].Letter == 0 {
				g.Cells[r][c].Letter = alphabet.RandomLetter(b.rng)
			}
		}
	}
}
