// internal/wordbank/bank.go
//
// Themed word lists and the master dictionary for the puzzle engine.
//
// Responsibilities:
//   - Load theme word lists and the extra dictionary from an environment-provided
//     directory or fall back to the embedded defaults.
//   - Maintain the master set for dictionary validation (union of all themes
//     plus the extra list).
//   - Supply lookups: WordsForTheme, ClueFor, IsValidWord, length/pattern filters.
//
// Word Lists:
//   - one file per theme ("animals.txt", ...): `WORD,clue text` per line.
//   - "dictionary.txt": extra valid words without clues, one per line.
//
// Initialization behavior:
//   1. If WORDBANK_DIR is set (via config), load every list from that directory.
//   2. Otherwise fall back to the embedded defaults under data/.
//
// Constraints:
//   • Words are normalized to uppercase; lookups are case-insensitive.
//   • Lines starting with '#' and lines with non-alphabet characters are skipped.
//   • Word lengths are rune counts, never byte counts.

package wordbank

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/bukvigrad/wordgrid/internal/alphabet"
)

//go:embed data/*.txt
var embeddedData embed.FS

// DefaultTheme is the fallback when a requested theme is unknown.
const DefaultTheme = "animals"

// themeOrder fixes the theme indexing used by the daily seeder.
// Changing the order or count changes which theme a date maps to.
var themeOrder = []string{"animals", "nature", "cities", "food", "sport", "tech"}

// dictionaryFile holds extra valid words that belong to no theme.
const dictionaryFile = "dictionary.txt"

// Entry is one themed word with its authored clue.
type Entry struct {
	Word string
	Clue string
}

// Bank is an immutable word source. Build one with Load or LoadDir.
type Bank struct {
	themes    map[string][]Entry
	master    []string            // unique words in load order
	masterSet map[string]struct{} // master dictionary
	clues     map[string]string   // word → first authored clue
}

// Load builds a Bank from the embedded default lists.
func Load() (*Bank, error) {
	return load(func(name string) ([]byte, error) {
		return embeddedData.ReadFile("data/" + name)
	})
}

// LoadDir builds a Bank from list files in dir, using the same file layout
// as the embedded defaults. Missing theme files are an error; a missing
// dictionary file is not.
func LoadDir(dir string) (*Bank, error) {
	return load(func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	})
}

func load(read func(name string) ([]byte, error)) (*Bank, error) {
	b := &Bank{
		themes:    make(map[string][]Entry, len(themeOrder)),
		masterSet: make(map[string]struct{}),
		clues:     make(map[string]string),
	}
	for _, theme := range themeOrder {
		raw, err := read(theme + ".txt")
		if err != nil {
			return nil, fmt.Errorf("wordbank: read theme %s: %w", theme, err)
		}
		entries := parseEntries(string(raw))
		if len(entries) == 0 {
			return nil, fmt.Errorf("wordbank: theme %s is empty", theme)
		}
		b.themes[theme] = entries
		for _, e := range entries {
			b.add(e.Word)
			if e.Clue != "" {
				if _, ok := b.clues[e.Word]; !ok {
					b.clues[e.Word] = e.Clue
				}
			}
		}
	}
	if raw, err := read(dictionaryFile); err == nil {
		for _, e := range parseEntries(string(raw)) {
			b.add(e.Word)
		}
	}
	return b, nil
}

func (b *Bank) add(word string) {
	if _, ok := b.masterSet[word]; ok {
		return
	}
	b.masterSet[word] = struct{}{}
	b.master = append(b.master, word)
}

// parseEntries turns `WORD,clue` lines into entries. Blank lines, comment
// lines and words outside the alphabet are skipped. The clue part is optional.
func parseEntries(s string) []Entry {
	var out []Entry
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, clue := line, ""
		if i := strings.IndexByte(line, ','); i >= 0 {
			word, clue = line[:i], strings.TrimSpace(line[i+1:])
		}
		word = alphabet.Normalize(strings.TrimSpace(word))
		if !alphabet.IsAlphabetic(word) {
			continue
		}
		out = append(out, Entry{Word: word, Clue: clue})
	}
	return out
}

// Themes returns the theme names in their fixed daily-seeding order.
func (b *Bank) Themes() []string {
	return append([]string{}, themeOrder...)
}

// HasTheme reports whether theme is one of the loaded themes.
func (b *Bank) HasTheme(theme string) bool {
	_, ok := b.themes[theme]
	return ok
}

// WordsForTheme returns the words of a theme. Unknown themes fall back to
// DefaultTheme rather than erroring.
func (b *Bank) WordsForTheme(theme string) []string {
	entries, ok := b.themes[theme]
	if !ok {
		entries = b.themes[DefaultTheme]
	}
	return lo.Map(entries, func(e Entry, _ int) string { return e.Word })
}

// ClueFor returns the authored clue for a word, if any theme supplies one.
func (b *Bank) ClueFor(word string) (string, bool) {
	clue, ok := b.clues[alphabet.Normalize(word)]
	return clue, ok
}

// IsValidWord reports whether candidate is an alphabet-only string present
// in the master dictionary. Empty input is invalid.
func (b *Bank) IsValidWord(candidate string) bool {
	if !alphabet.IsAlphabetic(candidate) {
		return false
	}
	_, ok := b.masterSet[alphabet.Normalize(candidate)]
	return ok
}

// WordsMatchingLength returns every master-dictionary word of exactly n runes.
func (b *Bank) WordsMatchingLength(n int) []string {
	return lo.Filter(b.master, func(w string, _ int) bool {
		return utf8.RuneCountInString(w) == n
	})
}

// PatternWildcard stands for an unknown letter in WordsMatchingPattern.
// It is the same placeholder the hint engine masks with.
const PatternWildcard = '_'

// WordsMatchingPattern returns master-dictionary words matching pattern,
// where PatternWildcard matches any single letter. Lengths are compared in
// runes, so `К____` matches every five-letter word starting with К.
func (b *Bank) WordsMatchingPattern(pattern string) []string {
	want := []rune(alphabet.Normalize(pattern))
	return lo.Filter(b.master, func(w string, _ int) bool {
		runes := []rune(w)
		if len(runes) != len(want) {
			return false
		}
		for i, r := range want {
			if r != PatternWildcard && r != runes[i] {
				return false
			}
		}
		return true
	})
}

// Stats returns counts of loaded data: (themes, master words).
func (b *Bank) Stats() (themeCount int, wordCount int) {
	return len(b.themes), len(b.master)
}
