// internal/hint/hint.go
//
// Partial word revelation for clue assistance.
//
// A hint reveals the leading part of a word and masks the rest, except
// that every masked position has a small chance of being revealed anyway.
// Randomness comes only from the caller-provided source, so a fixed seed
// reproduces the exact same hint.

package hint

import (
	"math"
	"math/rand"

	"github.com/bukvigrad/wordgrid/internal/alphabet"
)

// MaskRune hides unrevealed letters. It matches the word-bank pattern
// wildcard so hints can feed pattern lookups directly.
const MaskRune = '_'

// DefaultFraction is the reveal fraction of a first-level hint.
const DefaultFraction = 0.3

// extraRevealChance is the per-position probability that a masked letter
// shows anyway.
const extraRevealChance = 0.1

// levelFractions maps hint levels 1..4 to reveal fractions.
var levelFractions = [5]float64{0, DefaultFraction, 0.5, 0.75, 1.0}

// Reveal returns word with the first ceil(length*fraction) letters shown
// and the rest masked. Each masked position independently shows its letter
// with a small probability drawn from rng.
func Reveal(word string, fraction float64, rng *rand.Rand) string {
	runes := []rune(alphabet.Normalize(word))
	if len(runes) == 0 {
		return ""
	}
	shown := int(math.Ceil(float64(len(runes)) * fraction))
	if shown > len(runes) {
		shown = len(runes)
	}
	out := make([]rune, len(runes))
	for i, r := range runes {
		switch {
		case i < shown:
			out[i] = r
		case rng.Float64() < extraRevealChance:
			out[i] = r
		default:
			out[i] = MaskRune
		}
	}
	return string(out)
}

// ForLevel reveals word at hint level 1..4, from a 30% prefix up to the
// full word. Out-of-range levels clamp into that range.
func ForLevel(word string, level int, rng *rand.Rand) string {
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	return Reveal(word, levelFractions[level], rng)
}
