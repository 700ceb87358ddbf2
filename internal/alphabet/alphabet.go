// internal/alphabet/alphabet.go
//
// Bulgarian alphabet domain knowledge shared by the word bank, the grid
// filler and the scoring rules.
//
// Responsibilities:
//   - Define the 30-letter uppercase alphabet and the designated rare subset.
//   - Validate that strings are made of alphabet letters only.
//   - Normalize words to their canonical uppercase form.
//   - Supply uniform random filler letters from a caller-provided RNG.
//
// Constraints:
//   • All word handling is rune-based; byte lengths are never meaningful here.
//   • The rare subset is fixed and part of the scoring contract.

package alphabet

import (
	"math/rand"
	"strings"
)

// Letters is the full uppercase alphabet in dictionary order.
const Letters = "АБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЬЮЯ"

// rare letters attract scoring bonuses and weigh into difficulty.
const rareLetters = "ФХЦЧШЩЬЮ"

var (
	letterRunes = []rune(Letters)
	letterSet   = toSet(Letters)
	rareSet     = toSet(rareLetters)
)

func toSet(s string) map[rune]struct{} {
	m := make(map[rune]struct{}, len(s))
	for _, r := range s {
		m[r] = struct{}{}
	}
	return m
}

// Size is the number of letters in the alphabet.
const Size = 30

// Normalize returns the canonical uppercase form of a word.
func Normalize(s string) string {
	return strings.ToUpper(s)
}

// IsLetter reports whether r is an uppercase alphabet letter.
func IsLetter(r rune) bool {
	_, ok := letterSet[r]
	return ok
}

// IsRare reports whether r belongs to the rare letter subset.
func IsRare(r rune) bool {
	_, ok := rareSet[r]
	return ok
}

// IsAlphabetic reports whether s is non-empty and made of alphabet
// letters only, after normalization.
func IsAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range Normalize(s) {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}

// CountRare returns how many runes of the normalized word are rare letters.
// Repeated rare letters count every time they appear.
func CountRare(s string) int {
	n := 0
	for _, r := range Normalize(s) {
		if IsRare(r) {
			n++
		}
	}
	return n
}

// RandomLetter returns a uniformly random alphabet letter from rng.
func RandomLetter(rng *rand.Rand) rune {
	return letterRunes[rng.Intn(len(letterRunes))]
}
