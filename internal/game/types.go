// internal/game/types.go
//
// Core type definitions for play sessions.
// Defines:
//   - Outcome: classification of one word submission.
//   - SubmitResult: everything a caller needs to render a submission.
//   - Session: state for a single in-progress or finished puzzle.

package game

import (
	"math/rand"
	"time"

	"github.com/bukvigrad/wordgrid/internal/puzzle"
	"github.com/bukvigrad/wordgrid/internal/score"
	"github.com/bukvigrad/wordgrid/internal/wordbank"
)

// Outcome classifies a submission.
// Possible values:
//   - "correct":       the word is in the puzzle and was not solved yet.
//   - "invalid":       not a dictionary word; counts as a mistake.
//   - "notInPuzzle":   a real word, but not part of this puzzle; a mistake.
//   - "alreadySolved": solved earlier; ignored without penalty.
type Outcome string

const (
	OutcomeCorrect       Outcome = "correct"
	OutcomeInvalid       Outcome = "invalid"
	OutcomeNotInPuzzle   Outcome = "notInPuzzle"
	OutcomeAlreadySolved Outcome = "alreadySolved"
)

// SubmitResult reports the effect of one submission on the session.
type SubmitResult struct {
	Word            string          // normalized submission
	WordID          string          // placed word id on a correct submission
	Outcome         Outcome
	Points          int             // awarded for this submission
	Breakdown       score.Breakdown // component view of Points
	Combo           int             // combo count after this submission
	Mistakes        int             // mistake count after this submission
	Completed       bool            // true when this submission finished the puzzle
	Perfect         bool            // no mistakes over the whole session
	CompletionBonus int             // one-off bonus when Completed
	Score           int             // running session total
}

// Session tracks one player solving one puzzle. It owns the puzzle's
// solved flags; no other layer mutates the puzzle.
type Session struct {
	ID        string
	UserID    string
	Puzzle    *puzzle.Puzzle
	Daily     bool
	Date      string // set for daily sessions
	StartedAt time.Time
	Solved    map[string]bool // placed word id → solved
	HintsUsed map[string]int  // placed word id → hints taken
	Mistakes  int
	Combo     int
	Score     int
	Finished  bool

	bank        *wordbank.Bank
	rng         *rand.Rand
	now         func() time.Time
	lastSolveAt time.Time
}
