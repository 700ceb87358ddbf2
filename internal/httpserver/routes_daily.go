// internal/httpserver/routes_daily.go
//
// HTTP routes and persistence glue for the daily challenge.
// Exposes:
//   - GET /puzzle/daily       → the deterministic puzzle for a date (default today)
//   - GET /daily/leaderboard  → top 20 results for a date (default today)
//
// Each user records one result per day (enforced by the DB unique key).
// Active daily sessions are tracked by userID|date so a reload resumes the
// same game instead of granting a fresh grid. Completion flows through
// finishDaily: streak bump, daily + streak bonuses, result row.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/bukvigrad/wordgrid/internal/daily"
	"github.com/bukvigrad/wordgrid/internal/game"
	"github.com/bukvigrad/wordgrid/internal/score"
)

// mountDaily registers the daily challenge routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Get("/puzzle/daily", s.handleDailyPuzzle)
	r.Route("/daily", func(r chi.Router) {
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

// todayKey returns the current UTC date key.
func (s *Server) todayKey() string {
	return daily.DateKey(time.Now())
}

// -----------------------------------------------------------------------------
// /puzzle/daily

// dailyPuzzleRes is returned by GET /puzzle/daily.
type dailyPuzzleRes struct {
	Date   string      `json:"date"`
	Puzzle *puzzleView `json:"puzzle"`
}

// handleDailyPuzzle serves the deterministic puzzle for ?date= (default
// today). Every client gets the identical grid for a given date.
func (s *Server) handleDailyPuzzle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.todayKey()
	}
	p, err := daily.PuzzleFor(s.gen, s.bank.Themes(), date)
	if err != nil {
		http.Error(w, `{"error":"invalid_date"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(dailyPuzzleRes{Date: date, Puzzle: viewOfPuzzle(p)})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by GET /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.todayKey()
	}
	rows, err := s.daily.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []daily.LBRow{}
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}

// -----------------------------------------------------------------------------
// daily session tracking + completion

// dailySessionID returns the active session id for userID|date, if any.
func (s *Server) dailySessionID(userID, date string) string {
	s.dailyMu.Lock()
	defer s.dailyMu.Unlock()
	return s.dailySessions[userID+"|"+date]
}

// rememberDailySession records the active session for userID|date.
func (s *Server) rememberDailySession(userID, date, sessionID string) {
	s.dailyMu.Lock()
	defer s.dailyMu.Unlock()
	s.dailySessions[userID+"|"+date] = sessionID
}

// forgetDailySession drops the userID|date entry after completion.
func (s *Server) forgetDailySession(userID, date string) {
	s.dailyMu.Lock()
	defer s.dailyMu.Unlock()
	delete(s.dailySessions, userID+"|"+date)
}

// finishDaily settles a completed daily session: bumps the streak for
// registered users, adds the daily and streak bonuses to the session
// score, and persists the result row. Returns the bonus and the streak.
func (s *Server) finishDaily(ctx context.Context, sess *game.Session, registered bool) (int, int) {
	elapsed := sess.ElapsedSeconds()
	hints := sess.TotalHints()

	streak := 0
	if registered {
		n, err := s.daily.BumpStreak(ctx, sess.UserID, sess.Date)
		if err != nil {
			log.Warn().Err(err).Str("user", sess.UserID).Msg("bump daily streak")
		} else {
			streak = n
		}
	}

	bonus := score.DailyChallengeBonus(elapsed, hints, streak) + score.StreakBonus(streak)
	sess.Score += bonus

	if err := s.daily.InsertResult(ctx, daily.Result{
		UserID:      sess.UserID,
		Date:        sess.Date,
		Theme:       sess.Puzzle.Theme,
		Score:       sess.Score,
		TimeSeconds: elapsed,
		HintsUsed:   hints,
	}); err != nil {
		log.Warn().Err(err).Str("user", sess.UserID).Str("date", sess.Date).Msg("insert daily result")
	}

	s.forgetDailySession(sess.UserID, sess.Date)
	return bonus, streak
}
