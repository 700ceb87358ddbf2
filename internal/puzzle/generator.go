// internal/puzzle/generator.go
//
// Puzzle generation: word selection, direction assignment, grid building
// and clue compilation.
//
// Responsibilities:
//   - Pick theme words under the difficulty's length cap, shuffled uniformly.
//   - Alternate horizontal/vertical directions across the selection.
//   - Delegate placement and filler to the grid builder.
//   - Attach authored clues, falling back to a generated length clue.
//   - Price the puzzle: maxPoints from total placed letters and difficulty.
//
// Determinism:
//   GenerateWithRand draws every random decision (puzzle id, shuffle,
//   filler letters) from the provided source, so a fixed seed reproduces
//   the puzzle exactly. Generate seeds from the wall clock.

package puzzle

import (
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/bukvigrad/wordgrid/internal/grid"
	"github.com/bukvigrad/wordgrid/internal/score"
	"github.com/bukvigrad/wordgrid/internal/wordbank"
)

// Generator builds puzzles from a word bank. The clock is swappable for
// tests.
type Generator struct {
	bank *wordbank.Bank
	now  func() time.Time
}

// NewGenerator returns a Generator reading words and clues from bank.
func NewGenerator(bank *wordbank.Bank) *Generator {
	return &Generator{bank: bank, now: time.Now}
}

// Generate builds a puzzle with wall-clock randomness.
func (g *Generator) Generate(difficulty int, theme string) *Puzzle {
	rng := rand.New(rand.NewSource(g.now().UnixNano()))
	return g.GenerateWithRand(difficulty, theme, rng)
}

// GenerateWithRand builds a puzzle drawing all randomness from rng.
// Out-of-range difficulties act as level 1; unknown themes fall back to
// the default theme. The result may carry fewer words than configured
// when the pool is small or placement drops candidates.
func (g *Generator) GenerateWithRand(difficulty int, theme string, rng *rand.Rand) *Puzzle {
	difficulty = ClampDifficulty(difficulty)
	cfg := difficultyConfigs[difficulty]
	if !g.bank.HasTheme(theme) {
		theme = wordbank.DefaultTheme
	}

	id := fmt.Sprintf("%016x", rng.Uint64())

	pool := lo.Filter(g.bank.WordsForTheme(theme), func(w string, _ int) bool {
		return utf8.RuneCountInString(w) <= cfg.MaxWordLength
	})
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > cfg.WordCount {
		pool = pool[:cfg.WordCount]
	}

	candidates := make([]grid.Candidate, len(pool))
	for i, w := range pool {
		dir := grid.Horizontal
		if i%2 == 1 {
			dir = grid.Vertical
		}
		candidates[i] = grid.Candidate{
			ID:        fmt.Sprintf("w%d", i+1),
			Text:      w,
			Direction: dir,
		}
	}

	board, placed := grid.NewBuilder(rng).Build(cfg.GridSize, candidates)

	clues := make([]Clue, len(placed))
	for i, pw := range placed {
		clues[i] = Clue{
			WordID:    pw.ID,
			Direction: pw.Direction,
			Text:      g.clueFor(pw.Text),
		}
	}

	p := &Puzzle{
		ID:             id,
		Theme:          theme,
		Difficulty:     difficulty,
		Size:           cfg.GridSize,
		Grid:           board,
		Words:          placed,
		Clues:          clues,
		CreatedAt:      g.now(),
		EstimatedTime:  cfg.EstimatedTime,
		RequestedWords: len(candidates),
	}
	p.MaxPoints = score.PuzzleMaxPoints(p.TotalLetters(), difficulty)
	return p
}

// clueFor returns the authored clue or a generated length clue.
func (g *Generator) clueFor(word string) string {
	if clue, ok := g.bank.ClueFor(word); ok {
		return clue
	}
	return fmt.Sprintf("Дума от %d букви", utf8.RuneCountInString(word))
}
