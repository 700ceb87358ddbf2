// internal/score/score.go
//
// Point awards for word submissions, puzzle completions and daily streaks.
//
// Responsibilities:
//   - WordPoints/WordBreakdown: per-submission award from word shape, solve
//     time, hints used and difficulty.
//   - PuzzleCompletionBonus and DailyChallengeBonus: one-off completion awards.
//   - Combo and streak helpers applied by the play-session layer.
//
// Constraints:
//   • Every function is pure and deterministic; tests assert exact integers,
//     so the rounding order (floor right after the multiplier, integer
//     penalty subtracted afterwards) must not be rearranged.
//   • Word lengths are rune counts.

package score

import (
	"math"

	"github.com/bukvigrad/wordgrid/internal/alphabet"
)

// difficultyMultiplier scales word points per difficulty level 1..5.
var difficultyMultiplier = [6]float64{0, 1.0, 1.2, 1.5, 1.8, 2.0}

// maxPointsPerLetter is length*10 pre-scaled by the difficulty multiplier,
// kept as integers so puzzle maxPoints stays exact.
var maxPointsPerLetter = [6]int{0, 10, 12, 15, 18, 20}

// completionFlatBonus is the difficulty-indexed part of the completion award.
var completionFlatBonus = [6]int{0, 0, 25, 50, 75, 100}

// Multiplier returns the difficulty multiplier, treating out-of-range
// levels as level 1.
func Multiplier(difficulty int) float64 {
	if difficulty < 1 || difficulty > 5 {
		difficulty = 1
	}
	return difficultyMultiplier[difficulty]
}

// PuzzleMaxPoints returns the maximum achievable points for a puzzle whose
// placed words total totalLetters letters.
func PuzzleMaxPoints(totalLetters, difficulty int) int {
	if difficulty < 1 || difficulty > 5 {
		difficulty = 1
	}
	return totalLetters * maxPointsPerLetter[difficulty]
}

// Breakdown names every component of an award next to its sum. Submission
// awards fill the word components; the session layer adds combo and
// completion components.
type Breakdown struct {
	Base            int
	TimeBonus       int
	ComplexityBonus int
	Multiplied      int // (base+time+complexity) scaled by difficulty, floored
	HintPenalty     int
	PuzzleBonus     int
	StreakBonus     int
	ComboBonus      int
	Total           int
}

// WordPoints returns the award for solving word in timeSpentSeconds with
// hintsUsed hints at the given difficulty. Never less than 5.
func WordPoints(word string, timeSpentSeconds, hintsUsed, difficulty int) int {
	return WordBreakdown(word, timeSpentSeconds, hintsUsed, difficulty).Total
}

// WordBreakdown is WordPoints with the components exposed.
//
// base = length*10, timeBonus = max(0, 60-timeSpent)*2, then the complexity
// bonus, all scaled by the difficulty multiplier and floored; each hint
// costs 5 points after scaling.
func WordBreakdown(word string, timeSpentSeconds, hintsUsed, difficulty int) Breakdown {
	runes := []rune(alphabet.Normalize(word))

	bd := Breakdown{Base: len(runes) * 10}
	if timeSpentSeconds < 60 {
		bd.TimeBonus = (60 - timeSpentSeconds) * 2
	}
	bd.ComplexityBonus = complexityBonus(runes)
	raw := float64(bd.Base+bd.TimeBonus+bd.ComplexityBonus) * Multiplier(difficulty)
	bd.Multiplied = int(math.Floor(raw))
	bd.HintPenalty = hintsUsed * 5

	bd.Total = bd.Multiplied - bd.HintPenalty
	if bd.Total < 5 {
		bd.Total = 5
	}
	return bd
}

// complexityBonus rewards long words, rare letters and palindromes, and
// penalizes heavy letter repetition.
func complexityBonus(runes []rune) int {
	bonus := 0
	n := len(runes)
	if n > 8 {
		bonus += 20
	}
	if n > 12 {
		bonus += 30
	}
	for _, r := range runes {
		if alphabet.IsRare(r) {
			bonus += 5
		}
	}
	if n > 1 && isPalindrome(runes) {
		bonus += 50
	}
	counts := make(map[rune]int, n)
	for _, r := range runes {
		counts[r]++
	}
	for _, c := range counts {
		if c > 2 {
			bonus -= 5 * (c - 2)
		}
	}
	return bonus
}

func isPalindrome(runes []rune) bool {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// PuzzleCompletionBonus returns the one-off award for finishing a puzzle.
// Speed tiers are cumulative: a 90 second solve earns all three.
func PuzzleCompletionBonus(completionTimeSeconds int, perfectSolve bool, hintsUsed, difficulty int) int {
	bonus := 0
	if perfectSolve {
		bonus += 100
	}
	if completionTimeSeconds < 300 {
		bonus += 50
	}
	if completionTimeSeconds < 180 {
		bonus += 100
	}
	if completionTimeSeconds < 120 {
		bonus += 200
	}
	if hintsUsed == 0 {
		bonus += 50
	}
	if difficulty >= 1 && difficulty <= 5 {
		bonus += completionFlatBonus[difficulty]
	}
	return bonus
}

// DailyChallengeBonus returns the extra award for finishing the daily
// puzzle, including the capped streak reward.
func DailyChallengeBonus(completionTimeSeconds, hintsUsed, streakDays int) int {
	bonus := 100
	if completionTimeSeconds < 600 {
		bonus += 50
	}
	if completionTimeSeconds < 300 {
		bonus += 100
	}
	streak := streakDays * 10
	if streak > 100 {
		streak = 100
	}
	if streak > 0 {
		bonus += streak
	}
	if hintsUsed == 0 {
		bonus += 25
	}
	return bonus
}

// ComboMultiplier scales a submission by the current run of consecutive
// correct answers.
func ComboMultiplier(comboCount int) float64 {
	switch {
	case comboCount <= 1:
		return 1.0
	case comboCount <= 3:
		return 1.1
	case comboCount <= 5:
		return 1.2
	case comboCount <= 10:
		return 1.5
	default:
		return 2.0
	}
}

// ComboBonus is the flat extra for keeping a combo alive.
func ComboBonus(comboCount int) int {
	if comboCount <= 1 {
		return 0
	}
	return int(math.Floor(float64(comboCount) * 5))
}

// StreakBonus rewards consecutive daily play, growing superlinearly.
func StreakBonus(currentStreak int) int {
	if currentStreak <= 1 {
		return 0
	}
	return int(math.Floor(math.Pow(float64(currentStreak), 1.5) * 5))
}
