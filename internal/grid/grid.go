// internal/grid/grid.go
//
// Core type definitions for the letter grid.
// Defines:
//   - Direction: orientation of a placed word (horizontal/vertical).
//   - Cell: one grid square holding a letter and an optional word back-reference.
//   - Grid: the square board under construction or returned to callers.
//   - Candidate / PlacedWord: builder input and output records.

package grid

// Direction is the orientation a word is written in.
// Possible values:
//   - "horizontal": left to right along a row.
//   - "vertical":   top to bottom along a column.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Coord addresses one cell by row and column, zero-based.
type Coord struct {
	Row int
	Col int
}

// Cell is a single grid square. Letter is 0 while the cell is empty during
// construction; a finished grid has a letter in every cell. WordID is empty
// for filler cells and for crossing cells owned by an earlier word.
type Cell struct {
	Letter rune
	WordID string
}

// Grid is a square board of Size×Size cells.
type Grid struct {
	Size  int
	Cells [][]Cell
}

// New returns an empty Size×Size grid.
func New(size int) *Grid {
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}
	return &Grid{Size: size, Cells: cells}
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Size && col >= 0 && col < g.Size
}

// At returns the cell at (row, col). Callers must check InBounds first.
func (g *Grid) At(row, col int) Cell {
	return g.Cells[row][col]
}

// IsEmpty reports whether the cell at (row, col) has no letter yet.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.Cells[row][col].Letter == 0
}

// Rows renders the grid as one string per row. Empty cells render as spaces,
// so finished grids contain letters only.
func (g *Grid) Rows() []string {
	out := make([]string, g.Size)
	for r := 0; r < g.Size; r++ {
		runes := make([]rune, g.Size)
		for c := 0; c < g.Size; c++ {
			if g.Cells[r][c].Letter == 0 {
				runes[c] = ' '
			} else {
				runes[c] = g.Cells[r][c].Letter
			}
		}
		out[r] = string(runes)
	}
	return out
}

// Candidate is a word handed to the builder, with its pre-assigned direction.
type Candidate struct {
	ID        string
	Text      string // canonical uppercase
	Direction Direction
}

// PlacedWord records where a candidate ended up on the grid.
type PlacedWord struct {
	ID        string
	Text      string
	Direction Direction
	Row       int     // anchor row
	Col       int     // anchor col
	Cells     []Coord // every cell of the word, in reading order
}
