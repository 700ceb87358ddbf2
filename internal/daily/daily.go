// internal/daily/daily.go
//
// Deterministic daily puzzle derivation.
//
// Every client must agree on "today's puzzle" without a server round-trip,
// so the theme index and the generation seed both derive from a string
// hash of the ISO date. The hash is a polynomial rolling hash over UTF-16
// code units with 32-bit wraparound; its exact arithmetic is an external
// contract shared with non-Go clients and must not be changed.

package daily

import (
	"fmt"
	"math/rand"
	"time"
	"unicode/utf16"

	"github.com/bukvigrad/wordgrid/internal/puzzle"
)

// Difficulty is the fixed level of every daily puzzle.
const Difficulty = 2

// dateLayout is the wire format for daily dates.
const dateLayout = "2006-01-02"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// DateHash returns the shared 32-bit rolling hash of a date string.
// Each step computes h = h*31 + unit with two's-complement wraparound,
// matching the arithmetic of the companion clients.
func DateHash(date string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(date)) {
		h = h<<5 - h + int32(u)
	}
	return h
}

// ThemeIndex maps a date onto one of themeCount themes. The absolute
// value is taken in 64-bit space so the minimum int32 hash cannot
// overflow back to a negative index.
func ThemeIndex(date string, themeCount int) int {
	if themeCount <= 0 {
		return 0
	}
	h := int64(DateHash(date))
	if h < 0 {
		h = -h
	}
	return int(h % int64(themeCount))
}

// Seed returns the generation seed for a date. Using the same hash that
// picks the theme makes the whole grid reproduce on every client.
func Seed(date string) int64 {
	return int64(DateHash(date))
}

// PuzzleFor generates the daily puzzle for an ISO date against the given
// theme list. Malformed dates are a boundary error; generation itself
// cannot fail.
func PuzzleFor(gen *puzzle.Generator, themes []string, date string) (*puzzle.Puzzle, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("daily: invalid date %q: %w", date, err)
	}
	if len(themes) == 0 {
		return nil, fmt.Errorf("daily: no themes available")
	}
	theme := themes[ThemeIndex(date, len(themes))]
	rng := rand.New(rand.NewSource(Seed(date)))
	return gen.GenerateWithRand(Difficulty, theme, rng), nil
}
