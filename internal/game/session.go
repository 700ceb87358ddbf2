// internal/game/session.go
//
// Play-session state machine for a single puzzle.
// Responsibilities:
//   - Accept word submissions: validate against the dictionary, match them
//     to unsolved placed words, award points with combo scaling.
//   - Serve hints for unsolved words and track their cost.
//   - Detect completion and apply the one-off completion bonus.
//
// Notes:
//   - Per-word solve time runs from the previous correct submission (or
//     session start), so slow players lose the time bonus word by word.
//   - A combo is consecutive correct submissions; any mistake resets it.
//   - Daily bonuses are applied by the HTTP layer, which knows the streak.
package game

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bukvigrad/wordgrid/internal/alphabet"
	"github.com/bukvigrad/wordgrid/internal/grid"
	"github.com/bukvigrad/wordgrid/internal/hint"
	"github.com/bukvigrad/wordgrid/internal/puzzle"
	"github.com/bukvigrad/wordgrid/internal/score"
	"github.com/bukvigrad/wordgrid/internal/wordbank"
)

var (
	ErrFinished      = errors.New("session finished")
	ErrUnknownWord   = errors.New("unknown word id")
	ErrAlreadySolved = errors.New("word already solved")
)

// New constructs a session for one player and one puzzle.
func New(userID string, p *puzzle.Puzzle, bank *wordbank.Bank) *Session {
	now := time.Now()
	return &Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		Puzzle:      p,
		StartedAt:   now,
		Solved:      make(map[string]bool, len(p.Words)),
		HintsUsed:   make(map[string]int),
		bank:        bank,
		rng:         rand.New(rand.NewSource(now.UnixNano())),
		now:         time.Now,
		lastSolveAt: now,
	}
}

// NewDaily constructs a session for the daily challenge of date.
func NewDaily(userID string, p *puzzle.Puzzle, bank *wordbank.Bank, date string) *Session {
	s := New(userID, p, bank)
	s.Daily = true
	s.Date = date
	return s
}

// Submit applies one word submission. Wrong attempts are reported through
// the Outcome, not as errors; the only error on a live session is
// submitting after completion.
func (s *Session) Submit(word string) (SubmitResult, error) {
	if s.Finished {
		return SubmitResult{}, ErrFinished
	}

	word = alphabet.Normalize(strings.TrimSpace(word))
	res := SubmitResult{Word: word, Combo: s.Combo, Mistakes: s.Mistakes, Score: s.Score}

	if !s.bank.IsValidWord(word) {
		res.Outcome = OutcomeInvalid
		s.miss(&res)
		return res, nil
	}

	target, ok := s.findUnsolved(word)
	if !ok {
		if s.solvedText(word) {
			res.Outcome = OutcomeAlreadySolved
			return res, nil
		}
		res.Outcome = OutcomeNotInPuzzle
		s.miss(&res)
		return res, nil
	}

	now := s.now()
	elapsed := int(now.Sub(s.lastSolveAt).Seconds())
	s.Combo++
	s.lastSolveAt = now
	s.Solved[target.ID] = true
	s.markClueSolved(target.ID)

	bd := score.WordBreakdown(word, elapsed, s.HintsUsed[target.ID], s.Puzzle.Difficulty)
	bd.ComboBonus = score.ComboBonus(s.Combo)
	bd.Total = int(math.Floor(float64(bd.Total)*score.ComboMultiplier(s.Combo))) + bd.ComboBonus
	s.Score += bd.Total

	res.Outcome = OutcomeCorrect
	res.WordID = target.ID
	res.Points = bd.Total
	res.Breakdown = bd
	res.Combo = s.Combo

	if len(s.Solved) == len(s.Puzzle.Words) {
		s.Finished = true
		res.Completed = true
		res.Perfect = s.Mistakes == 0
		res.CompletionBonus = score.PuzzleCompletionBonus(
			int(now.Sub(s.StartedAt).Seconds()), res.Perfect, s.TotalHints(), s.Puzzle.Difficulty)
		s.Score += res.CompletionBonus
	}
	res.Score = s.Score
	return res, nil
}

// miss records a wrong attempt and breaks the combo.
func (s *Session) miss(res *SubmitResult) {
	s.Mistakes++
	s.Combo = 0
	res.Mistakes = s.Mistakes
	res.Combo = 0
}

// UseHint reveals part of an unsolved word at the given level and charges
// the hint to that word.
func (s *Session) UseHint(wordID string, level int) (string, error) {
	if s.Finished {
		return "", ErrFinished
	}
	w, ok := s.Puzzle.WordByID(wordID)
	if !ok {
		return "", ErrUnknownWord
	}
	if s.Solved[wordID] {
		return "", ErrAlreadySolved
	}
	masked := hint.ForLevel(w.Text, level, s.rng)
	s.HintsUsed[wordID]++
	return masked, nil
}

// findUnsolved matches a normalized submission against the unsolved
// placed words, in placement order.
func (s *Session) findUnsolved(word string) (grid.PlacedWord, bool) {
	for _, w := range s.Puzzle.Words {
		if w.Text == word && !s.Solved[w.ID] {
			return w, true
		}
	}
	return grid.PlacedWord{}, false
}

// TotalHints sums the hints taken across all words.
func (s *Session) TotalHints() int {
	n := 0
	for _, c := range s.HintsUsed {
		n += c
	}
	return n
}

// ElapsedSeconds is the whole-session play time so far.
func (s *Session) ElapsedSeconds() int {
	return int(s.now().Sub(s.StartedAt).Seconds())
}

// State reports "playing" or "completed".
func (s *Session) State() string {
	if s.Finished {
		return "completed"
	}
	return "playing"
}

// markClueSolved flips the solved flag of the clue for wordID.
func (s *Session) markClueSolved(wordID string) {
	for i := range s.Puzzle.Clues {
		if s.Puzzle.Clues[i].WordID == wordID {
			s.Puzzle.Clues[i].Solved = true
			return
		}
	}
}

// solvedText reports whether an already-solved placed word has this text.
func (s *Session) solvedText(word string) bool {
	for _, w := range s.Puzzle.Words {
		if w.Text == word && s.Solved[w.ID] {
			return true
		}
	}
	return false
}
