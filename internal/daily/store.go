// internal/daily/store.go
//
// SQLite persistence for daily challenge results and streaks.
// Each user records at most one result per date (INSERT OR IGNORE on the
// unique key); the streak bump runs in a transaction so concurrent
// completions cannot double-count a day.

package daily

import (
	"context"
	"database/sql"
	"time"
)

// Result is one finished daily challenge.
type Result struct {
	UserID      string `json:"userId"`
	Date        string `json:"date"`
	Theme       string `json:"theme"`
	Score       int    `json:"score"`
	TimeSeconds int    `json:"timeSeconds"`
	HintsUsed   int    `json:"hintsUsed"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether the user has a result for the date.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?",
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records a finished daily. Replays of the same (user, date)
// are ignored, keeping the first result.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, date, theme, score, time_seconds, hints_used)
		 VALUES(?,?,?,?,?,?)`,
		r.UserID, r.Date, r.Theme, r.Score, r.TimeSeconds, r.HintsUsed,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID      string `json:"userId"`
	Score       int    `json:"score"`
	TimeSeconds int    `json:"timeSeconds"`
}

// Leaderboard returns the top results for a date, best score first with
// faster solves breaking ties.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, score, time_seconds
		 FROM daily_results
		 WHERE date=?
		 ORDER BY score DESC, time_seconds ASC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LBRow
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Score, &r.TimeSeconds); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// BumpStreak advances the user's daily streak for a completion on date
// and returns the new streak. Completing consecutive days grows the
// streak; a gap resets it to 1; a repeat of the same day leaves it alone.
func (s *Store) BumpStreak(ctx context.Context, userID, date string) (int, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, err
	}
	yesterday := DateKey(day.AddDate(0, 0, -1))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var streak int
	var last sql.NullString
	err = tx.QueryRowContext(ctx,
		"SELECT daily_streak, last_daily_date FROM users WHERE id=?", userID,
	).Scan(&streak, &last)
	if err != nil {
		return 0, err
	}

	switch {
	case last.Valid && last.String == date:
		// already counted today
	case last.Valid && last.String == yesterday:
		streak++
	default:
		streak = 1
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET daily_streak=?, last_daily_date=? WHERE id=?",
		streak, date, userID,
	); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return streak, nil
}
