// internal/wordbank/classify.go
//
// Informational word metrics derived from length and rare-letter count.
// Used for hint UIs and word-list curation, never for placement.

package wordbank

import (
	"unicode/utf8"

	"github.com/bukvigrad/wordgrid/internal/alphabet"
)

// Frequency buckets words by how common their shape is.
type Frequency string

const (
	FrequencyHigh   Frequency = "high"
	FrequencyMedium Frequency = "medium"
	FrequencyLow    Frequency = "low"
	FrequencyRare   Frequency = "rare"
)

// ClassifyFrequency buckets a word by rune length and rare-letter count.
// Short words without rare letters rank high; long words or words loaded
// with rare letters rank rare.
func ClassifyFrequency(word string) Frequency {
	n := utf8.RuneCountInString(word)
	rare := alphabet.CountRare(word)
	switch {
	case n <= 4 && rare == 0:
		return FrequencyHigh
	case n <= 6 && rare <= 1:
		return FrequencyMedium
	case n <= 9 && rare <= 2:
		return FrequencyLow
	default:
		return FrequencyRare
	}
}

// DifficultyScore rates a word 1 (easiest) to 5 (hardest) from its rune
// length and rare-letter count.
func DifficultyScore(word string) int {
	n := utf8.RuneCountInString(word)
	score := 1 + (n-3)/3 + alphabet.CountRare(word)
	if score < 1 {
		score = 1
	}
	if score > 5 {
		score = 5
	}
	return score
}
