// internal/puzzle/puzzle.go
//
// Puzzle types and the fixed difficulty table.
// Defines:
//   - DifficultyConfig: read-only per-level generation parameters.
//   - Clue: a placed word's clue, with the solved flag owned by the caller.
//   - Puzzle: the immutable generation result.

package puzzle

import (
	"time"

	"github.com/bukvigrad/wordgrid/internal/grid"
)

// DifficultyConfig fixes the generation parameters of one difficulty level.
type DifficultyConfig struct {
	GridSize      int
	WordCount     int
	MaxWordLength int
	EstimatedTime time.Duration
}

// difficultyConfigs holds levels 1..5. Index 0 is unused.
var difficultyConfigs = [6]DifficultyConfig{
	{},
	{GridSize: 6, WordCount: 4, MaxWordLength: 5, EstimatedTime: 3 * time.Minute},
	{GridSize: 8, WordCount: 6, MaxWordLength: 7, EstimatedTime: 5 * time.Minute},
	{GridSize: 10, WordCount: 7, MaxWordLength: 9, EstimatedTime: 8 * time.Minute},
	{GridSize: 12, WordCount: 8, MaxWordLength: 11, EstimatedTime: 12 * time.Minute},
	{GridSize: 14, WordCount: 9, MaxWordLength: 13, EstimatedTime: 15 * time.Minute},
}

// ClampDifficulty maps out-of-range levels to level 1.
func ClampDifficulty(difficulty int) int {
	if difficulty < 1 || difficulty > 5 {
		return 1
	}
	return difficulty
}

// ConfigFor returns the difficulty configuration, treating out-of-range
// levels as level 1.
func ConfigFor(difficulty int) DifficultyConfig {
	return difficultyConfigs[ClampDifficulty(difficulty)]
}

// Clue pairs a placed word with its text. Solved is the only field the
// play layer mutates.
type Clue struct {
	WordID    string
	Direction grid.Direction
	Text      string
	Solved    bool
}

// Puzzle is an immutable generation result. Words and Clues are index
// aligned. RequestedWords counts the candidates handed to the builder, so
// callers can detect that placement dropped words (RequestedWords >
// len(Words)) and, for example, retry on a larger grid.
type Puzzle struct {
	ID             string
	Theme          string
	Difficulty     int
	Size           int
	Grid           *grid.Grid
	Words          []grid.PlacedWord
	Clues          []Clue
	CreatedAt      time.Time
	EstimatedTime  time.Duration
	MaxPoints      int
	RequestedWords int
}

// WordByID returns the placed word with the given id.
func (p *Puzzle) WordByID(id string) (grid.PlacedWord, bool) {
	for _, w := range p.Words {
		if w.ID == id {
			return w, true
		}
	}
	return grid.PlacedWord{}, false
}

// TotalLetters sums the rune lengths of all placed words.
func (p *Puzzle) TotalLetters() int {
	n := 0
	for _, w := range p.Words {
		n += len([]rune(w.Text))
	}
	return n
}
