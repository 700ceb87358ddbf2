package puzzle

import (
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bukvigrad/wordgrid/internal/grid"
	"github.com/bukvigrad/wordgrid/internal/score"
	"github.com/bukvigrad/wordgrid/internal/wordbank"
)

func testBank(t *testing.T) *wordbank.Bank {
	t.Helper()
	b, err := wordbank.Load()
	if err != nil {
		t.Fatalf("wordbank.Load: %v", err)
	}
	return b
}

// TestGenerateGridSizes ensures each difficulty produces its configured
// square grid, with out-of-range levels acting as level 1.
func TestGenerateGridSizes(t *testing.T) {
	gen := NewGenerator(testBank(t))
	tcs := []struct {
		difficulty int
		wantSize   int
		wantLevel  int
	}{
		{1, 6, 1}, {2, 8, 2}, {3, 10, 3}, {4, 12, 4}, {5, 14, 5},
		{0, 6, 1}, {9, 6, 1}, {-3, 6, 1},
	}
	for _, tc := range tcs {
		p := gen.GenerateWithRand(tc.difficulty, "nature", rand.New(rand.NewSource(1)))
		if p.Size != tc.wantSize {
			t.Fatalf("difficulty %d: size %d, want %d", tc.difficulty, p.Size, tc.wantSize)
		}
		if p.Grid.Size != tc.wantSize {
			t.Fatalf("difficulty %d: grid size %d, want %d", tc.difficulty, p.Grid.Size, tc.wantSize)
		}
		if p.Difficulty != tc.wantLevel {
			t.Fatalf("difficulty %d recorded as %d, want %d", tc.difficulty, p.Difficulty, tc.wantLevel)
		}
	}
}

// TestGenerateWordSelection ensures length caps, word counts and the
// alternating direction assignment.
func TestGenerateWordSelection(t *testing.T) {
	gen := NewGenerator(testBank(t))
	for _, difficulty := range []int{1, 2, 3, 4, 5} {
		cfg := ConfigFor(difficulty)
		p := gen.GenerateWithRand(difficulty, "animals", rand.New(rand.NewSource(7)))

		if len(p.Words) > cfg.WordCount {
			t.Fatalf("difficulty %d: %d words placed, cap %d", difficulty, len(p.Words), cfg.WordCount)
		}
		if p.RequestedWords > cfg.WordCount {
			t.Fatalf("difficulty %d: %d requested, cap %d", difficulty, p.RequestedWords, cfg.WordCount)
		}
		if len(p.Words) > p.RequestedWords {
			t.Fatalf("difficulty %d: placed %d > requested %d", difficulty, len(p.Words), p.RequestedWords)
		}
		for _, w := range p.Words {
			if n := utf8.RuneCountInString(w.Text); n > cfg.MaxWordLength {
				t.Fatalf("difficulty %d: %q has %d letters, cap %d", difficulty, w.Text, n, cfg.MaxWordLength)
			}
			idx, err := strconv.Atoi(strings.TrimPrefix(w.ID, "w"))
			if err != nil {
				t.Fatalf("unexpected word id %q", w.ID)
			}
			wantDir := grid.Horizontal
			if (idx-1)%2 == 1 {
				wantDir = grid.Vertical
			}
			if w.Direction != wantDir {
				t.Fatalf("word %s direction %s, want %s", w.ID, w.Direction, wantDir)
			}
		}
	}
}

// TestGenerateCluesAligned ensures one clue per placed word, in order,
// with non-empty text.
func TestGenerateCluesAligned(t *testing.T) {
	gen := NewGenerator(testBank(t))
	p := gen.GenerateWithRand(3, "food", rand.New(rand.NewSource(2)))
	if len(p.Clues) != len(p.Words) {
		t.Fatalf("%d clues for %d words", len(p.Clues), len(p.Words))
	}
	for i, c := range p.Clues {
		if c.WordID != p.Words[i].ID {
			t.Fatalf("clue %d references %q, want %q", i, c.WordID, p.Words[i].ID)
		}
		if c.Direction != p.Words[i].Direction {
			t.Fatalf("clue %d direction %s, want %s", i, c.Direction, p.Words[i].Direction)
		}
		if c.Text == "" {
			t.Fatalf("clue %d has empty text", i)
		}
		if c.Solved {
			t.Fatalf("clue %d starts solved", i)
		}
	}
}

// TestGenerateMaxPoints ensures the exact integer pricing of a puzzle.
func TestGenerateMaxPoints(t *testing.T) {
	gen := NewGenerator(testBank(t))
	for _, difficulty := range []int{1, 2, 3, 4, 5} {
		p := gen.GenerateWithRand(difficulty, "sport", rand.New(rand.NewSource(4)))
		want := score.PuzzleMaxPoints(p.TotalLetters(), difficulty)
		if p.MaxPoints != want {
			t.Fatalf("difficulty %d: maxPoints %d, want %d", difficulty, p.MaxPoints, want)
		}
		if p.MaxPoints <= 0 {
			t.Fatalf("difficulty %d: non-positive maxPoints %d", difficulty, p.MaxPoints)
		}
	}
}

// TestGenerateWordsSpellOnGrid ensures placed words read back from the
// final grid.
func TestGenerateWordsSpellOnGrid(t *testing.T) {
	gen := NewGenerator(testBank(t))
	p := gen.GenerateWithRand(4, "cities", rand.New(rand.NewSource(12)))
	if len(p.Words) == 0 {
		t.Fatal("expected at least one placed word")
	}
	for _, w := range p.Words {
		runes := []rune(w.Text)
		for i, coord := range w.Cells {
			if got := p.Grid.At(coord.Row, coord.Col).Letter; got != runes[i] {
				t.Fatalf("%s cell %d holds %q, want %q", w.ID, i, got, runes[i])
			}
		}
	}
}

// TestGenerateUnknownThemeFallsBack ensures the default theme is used.
func TestGenerateUnknownThemeFallsBack(t *testing.T) {
	gen := NewGenerator(testBank(t))
	p := gen.GenerateWithRand(1, "космос", rand.New(rand.NewSource(3)))
	if p.Theme != wordbank.DefaultTheme {
		t.Fatalf("theme %q, want %q", p.Theme, wordbank.DefaultTheme)
	}
}

// TestGenerateDeterministicForSeed ensures a fixed seed reproduces id,
// grid and word list exactly.
func TestGenerateDeterministicForSeed(t *testing.T) {
	gen := NewGenerator(testBank(t))
	a := gen.GenerateWithRand(2, "tech", rand.New(rand.NewSource(2024)))
	b := gen.GenerateWithRand(2, "tech", rand.New(rand.NewSource(2024)))

	if a.ID != b.ID {
		t.Fatalf("ids diverged: %q vs %q", a.ID, b.ID)
	}
	if len(a.Words) != len(b.Words) {
		t.Fatalf("word counts diverged: %d vs %d", len(a.Words), len(b.Words))
	}
	for i := range a.Words {
		if a.Words[i].Text != b.Words[i].Text || a.Words[i].Row != b.Words[i].Row ||
			a.Words[i].Col != b.Words[i].Col || a.Words[i].Direction != b.Words[i].Direction {
			t.Fatalf("word %d diverged: %+v vs %+v", i, a.Words[i], b.Words[i])
		}
	}
	ra, rb := a.Grid.Rows(), b.Grid.Rows()
	for i := range ra {
		if ra[i] != rb[i] {
			t.Fatalf("grid row %d diverged:\n%q\n%q", i, ra[i], rb[i])
		}
	}
}

// TestGenerateClockSeam ensures CreatedAt comes from the injected clock.
func TestGenerateClockSeam(t *testing.T) {
	gen := NewGenerator(testBank(t))
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	gen.now = func() time.Time { return fixed }
	p := gen.GenerateWithRand(1, "animals", rand.New(rand.NewSource(1)))
	if !p.CreatedAt.Equal(fixed) {
		t.Fatalf("CreatedAt %v, want %v", p.CreatedAt, fixed)
	}
}

// TestGenerateSmallPool ensures a sparse bank yields fewer requested words
// rather than an error.
func TestGenerateSmallPool(t *testing.T) {
	dir := t.TempDir()
	lists := map[string]string{
		"animals.txt": "ЕЖ,Бодлив горски обитател\n",
		"nature.txt":  "ХЪЛМ,Малка планина\n",
		"cities.txt":  "ЕЛЕНА,Балканско градче\n",
		"food.txt":    "СОЛ,Бяла подправка\n",
		"sport.txt":   "ДАРТС,Стрелички по мишена\n",
		"tech.txt":    "ЧИП,Малка интегрална схема\n",
	}
	for name, body := range lists {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	bank, err := wordbank.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	p := NewGenerator(bank).GenerateWithRand(2, "animals", rand.New(rand.NewSource(1)))
	if p.RequestedWords != 1 {
		t.Fatalf("requested %d words from a one-word pool", p.RequestedWords)
	}
	if len(p.Words) != 1 || p.Words[0].Text != "ЕЖ" {
		t.Fatalf("expected ЕЖ placed, got %+v", p.Words)
	}
}

// TestClueFallbackText ensures words without authored clues get the
// generated length clue.
func TestClueFallbackText(t *testing.T) {
	gen := NewGenerator(testBank(t))
	if got := gen.clueFor("ВАЛИДНА"); got != "Дума от 7 букви" {
		t.Fatalf("fallback clue = %q", got)
	}
}
