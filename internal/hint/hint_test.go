package hint

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

// TestRevealPrefix ensures the leading fraction is always shown and the
// rest is the original letter or the mask.
func TestRevealPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	word := "КОСТЕНУРКА" // 10 letters, 30% reveals 3
	got := Reveal(word, 0.3, rng)

	if utf8.RuneCountInString(got) != 10 {
		t.Fatalf("hint length %d, want 10", utf8.RuneCountInString(got))
	}
	wordRunes := []rune(word)
	gotRunes := []rune(got)
	for i := 0; i < 3; i++ {
		if gotRunes[i] != wordRunes[i] {
			t.Fatalf("prefix position %d = %q, want %q", i, gotRunes[i], wordRunes[i])
		}
	}
	for i := 3; i < len(gotRunes); i++ {
		if gotRunes[i] != MaskRune && gotRunes[i] != wordRunes[i] {
			t.Fatalf("position %d = %q, want mask or %q", i, gotRunes[i], wordRunes[i])
		}
	}
}

// TestRevealDeterministicForSeed ensures a fixed seed reproduces the hint.
func TestRevealDeterministicForSeed(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		a := Reveal("КЛАВИАТУРА", 0.3, rand.New(rand.NewSource(seed)))
		b := Reveal("КЛАВИАТУРА", 0.3, rand.New(rand.NewSource(seed)))
		if a != b {
			t.Fatalf("seed %d produced two hints: %q vs %q", seed, a, b)
		}
	}
}

// TestRevealCeilRounding ensures the revealed count rounds up.
func TestRevealCeilRounding(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got := []rune(Reveal("КОТКА", 0.3, rng)) // ceil(5*0.3) = 2
	if got[0] != 'К' || got[1] != 'О' {
		t.Fatalf("expected КО prefix, got %q%q", got[0], got[1])
	}
}

// TestRevealNormalizesCase ensures lowercase input reveals uppercase letters.
func TestRevealNormalizesCase(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	got := Reveal("котка", 1.0, rng)
	if got != "КОТКА" {
		t.Fatalf("expected КОТКА, got %q", got)
	}
}

// TestRevealEmptyWord ensures empty input yields an empty hint.
func TestRevealEmptyWord(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := Reveal("", 0.3, rng); got != "" {
		t.Fatalf("expected empty hint, got %q", got)
	}
}

// TestForLevelFractions ensures level 4 reveals everything and levels clamp.
func TestForLevelFractions(t *testing.T) {
	word := "ШАХМАТ"
	if got := ForLevel(word, 4, rand.New(rand.NewSource(1))); got != word {
		t.Fatalf("level 4 = %q, want %q", got, word)
	}
	if got := ForLevel(word, 9, rand.New(rand.NewSource(1))); got != word {
		t.Fatalf("level 9 should clamp to 4, got %q", got)
	}

	// Level 0 clamps to level 1, so the 30% prefix (2 of 6) is shown.
	got := []rune(ForLevel(word, 0, rand.New(rand.NewSource(2))))
	if got[0] != 'Ш' || got[1] != 'А' {
		t.Fatalf("level 0 should reveal ША prefix, got %q", string(got))
	}
}

// TestRevealExtraChanceStaysRare ensures random extras stay a small
// minority across many draws.
func TestRevealExtraChanceStaysRare(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	extras, masked := 0, 0
	wordRunes := []rune("КЛАВИАТУРА")
	for i := 0; i < 500; i++ {
		got := []rune(Reveal("КЛАВИАТУРА", 0.3, rng))
		for p := 3; p < len(got); p++ {
			if got[p] == MaskRune {
				masked++
			} else if got[p] == wordRunes[p] {
				extras++
			}
		}
	}
	total := extras + masked
	if total == 0 {
		t.Fatal("no masked positions sampled")
	}
	ratio := float64(extras) / float64(total)
	if ratio < 0.02 || ratio > 0.25 {
		t.Fatalf("extra reveal ratio %.3f outside the expected band", ratio)
	}
	if strings.ContainsRune(string(wordRunes), MaskRune) {
		t.Fatal("test word must not contain the mask rune")
	}
}
