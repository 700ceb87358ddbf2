// internal/httpserver/routes_game.go
//
// HTTP routes for puzzle generation and the play loop.
// Exposes:
//   - POST /puzzle/new   → generate a puzzle without starting a session
//   - POST /game/new     → start a play session (fresh or daily puzzle)
//   - POST /game/submit  → submit a word for an active session
//   - POST /game/hint    → reveal part of an unsolved word
//
// Sessions live in the in-memory store while active. Finished sessions
// are persisted to the DB (play_results + user stats, plus the daily
// tables for daily runs).
// Placed word texts never leave the server; clients get the filled grid,
// clue texts, and word lengths.

package httpserver

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/bukvigrad/wordgrid/internal/daily"
	"github.com/bukvigrad/wordgrid/internal/game"
	"github.com/bukvigrad/wordgrid/internal/puzzle"
	"github.com/bukvigrad/wordgrid/internal/score"
)

// mountGame registers puzzle generation and session play routes.
func (s *Server) mountGame(r chi.Router) {
	r.Post("/puzzle/new", s.handleNewPuzzle)
	r.Post("/game/new", s.handleNewGame)
	r.Post("/game/submit", s.handleSubmit)
	r.Post("/game/hint", s.handleHint)
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (s *Server) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return s.ensureAnonID(w, r)
}

// ------------------------------ JSON views ---------------------------------

// clueView is the client-facing form of one clue. Word text stays hidden;
// the length is enough to render the answer slots.
type clueView struct {
	WordID    string `json:"wordId"`
	Direction string `json:"direction"`
	Length    int    `json:"length"`
	Text      string `json:"text"`
	Solved    bool   `json:"solved"`
}

// puzzleView is the client-facing form of a generated puzzle.
type puzzleView struct {
	ID                   string     `json:"id"`
	Theme                string     `json:"theme"`
	Difficulty           int        `json:"difficulty"`
	Size                 int        `json:"size"`
	Grid                 []string   `json:"grid"`
	Clues                []clueView `json:"clues"`
	EstimatedTimeSeconds int        `json:"estimatedTimeSeconds"`
	MaxPoints            int        `json:"maxPoints"`
}

// viewOfPuzzle shapes a puzzle for the wire. Clues and Words are index
// aligned, which is where the per-clue word length comes from.
func viewOfPuzzle(p *puzzle.Puzzle) *puzzleView {
	clues := make([]clueView, len(p.Clues))
	for i, c := range p.Clues {
		clues[i] = clueView{
			WordID:    c.WordID,
			Direction: string(c.Direction),
			Length:    utf8.RuneCountInString(p.Words[i].Text),
			Text:      c.Text,
			Solved:    c.Solved,
		}
	}
	return &puzzleView{
		ID:                   p.ID,
		Theme:                p.Theme,
		Difficulty:           p.Difficulty,
		Size:                 p.Size,
		Grid:                 p.Grid.Rows(),
		Clues:                clues,
		EstimatedTimeSeconds: int(p.EstimatedTime.Seconds()),
		MaxPoints:            p.MaxPoints,
	}
}

// coordView is one highlightable grid cell.
type coordView struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// breakdownView is the word-level part of a score breakdown.
type breakdownView struct {
	Base            int `json:"base"`
	TimeBonus       int `json:"timeBonus"`
	ComplexityBonus int `json:"complexityBonus"`
	Multiplied      int `json:"multiplied"`
	HintPenalty     int `json:"hintPenalty"`
	ComboBonus      int `json:"comboBonus"`
	Total           int `json:"total"`
}

func viewOfBreakdown(b score.Breakdown) *breakdownView {
	return &breakdownView{
		Base:            b.Base,
		TimeBonus:       b.TimeBonus,
		ComplexityBonus: b.ComplexityBonus,
		Multiplied:      b.Multiplied,
		HintPenalty:     b.HintPenalty,
		ComboBonus:      b.ComboBonus,
		Total:           b.Total,
	}
}

// ----------------------------- /puzzle/new ---------------------------------

// newPuzzleReq is the request payload for POST /puzzle/new.
// Both fields are optional; the engine falls back to difficulty 1 and the
// default theme.
type newPuzzleReq struct {
	Difficulty int    `json:"difficulty"`
	Theme      string `json:"theme"`
}

// handleNewPuzzle generates a one-off puzzle without session state.
func (s *Server) handleNewPuzzle(w http.ResponseWriter, r *http.Request) {
	var req newPuzzleReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	p := s.gen.Generate(req.Difficulty, req.Theme)
	_ = json.NewEncoder(w).Encode(viewOfPuzzle(p))
}

// ------------------------------ /game/new ----------------------------------

// newGameReq is the request payload for POST /game/new.
// Daily=true ignores Difficulty/Theme and plays today's challenge.
type newGameReq struct {
	Difficulty int    `json:"difficulty"`
	Theme      string `json:"theme"`
	Daily      bool   `json:"daily"`
}

// newGameRes is returned by POST /game/new.
type newGameRes struct {
	GameID string      `json:"gameId"`
	Date   string      `json:"date,omitempty"`
	Played bool        `json:"played"`
	Puzzle *puzzleView `json:"puzzle,omitempty"`
}

// handleNewGame starts a play session and saves it in the session store.
// For daily games:
//   - If the user already has a result row for today → return Played=true.
//   - An unfinished session for today is reused, so a reload resumes play.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	uid := s.userIDWithAnon(w, r)

	if req.Daily {
		s.handleNewDailyGame(w, r, uid)
		return
	}

	p := s.gen.Generate(req.Difficulty, req.Theme)
	sess := game.New(uid, p, s.bank)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID, Puzzle: viewOfPuzzle(p)})
}

// handleNewDailyGame creates or reuses the session for today's challenge.
func (s *Server) handleNewDailyGame(w http.ResponseWriter, r *http.Request, uid string) {
	date := s.todayKey()

	// Check if already played (persisted in DB).
	if played, err := s.daily.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(newGameRes{GameID: "", Date: date, Played: true})
		return
	}

	// Reuse an in-flight session so a reload resumes instead of restarting.
	if gid := s.dailySessionID(uid, date); gid != "" {
		if sess, err := s.store.Get(r.Context(), gid); err == nil && !sess.Finished {
			_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID, Date: date, Puzzle: viewOfPuzzle(sess.Puzzle)})
			return
		}
	}

	p, err := daily.PuzzleFor(s.gen, s.bank.Themes(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("build daily puzzle")
		http.Error(w, `{"error":"daily_unavailable"}`, http.StatusInternalServerError)
		return
	}
	sess := game.NewDaily(uid, p, s.bank, date)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.rememberDailySession(uid, date, sess.ID)

	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID, Date: date, Puzzle: viewOfPuzzle(p)})
}

// ----------------------------- /game/submit --------------------------------

// submitReq is the request payload for POST /game/submit.
type submitReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

// submitView is returned by POST /game/submit.
type submitView struct {
	Outcome         string         `json:"outcome"`
	Word            string         `json:"word"`
	WordID          string         `json:"wordId,omitempty"`
	Cells           []coordView    `json:"cells,omitempty"`
	Points          int            `json:"points"`
	Breakdown       *breakdownView `json:"breakdown,omitempty"`
	Combo           int            `json:"combo"`
	Mistakes        int            `json:"mistakes"`
	Completed       bool           `json:"completed"`
	Perfect         bool           `json:"perfect,omitempty"`
	CompletionBonus int            `json:"completionBonus,omitempty"`
	DailyBonus      int            `json:"dailyBonus,omitempty"`
	Streak          int            `json:"streak,omitempty"`
	Score           int            `json:"score"`
	State           string         `json:"state"`
}

// handleSubmit applies a word submission to an active session, persists
// progress, and on completion records the result (and daily bonuses).
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.GameID == "" || req.Word == "" {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	res, err := sess.Submit(req.Word)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	view := submitView{
		Outcome:         string(res.Outcome),
		Word:            res.Word,
		WordID:          res.WordID,
		Points:          res.Points,
		Combo:           res.Combo,
		Mistakes:        res.Mistakes,
		Completed:       res.Completed,
		Perfect:         res.Perfect,
		CompletionBonus: res.CompletionBonus,
		Score:           res.Score,
		State:           sess.State(),
	}
	if res.Outcome == game.OutcomeCorrect {
		view.Breakdown = viewOfBreakdown(res.Breakdown)
		if pw, ok := sess.Puzzle.WordByID(res.WordID); ok {
			view.Cells = make([]coordView, len(pw.Cells))
			for i, c := range pw.Cells {
				view.Cells[i] = coordView{Row: c.Row, Col: c.Col}
			}
		}
	}

	if res.Completed {
		if sess.Daily {
			me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
			bonus, streak := s.finishDaily(r.Context(), sess, me != nil)
			view.DailyBonus = bonus
			view.Streak = streak
			view.Score = sess.Score
		}
		s.recordResult(w, r, sess)
	}

	_ = json.NewEncoder(w).Encode(view)
}

// ------------------------------ /game/hint ---------------------------------

// hintReq is the request payload for POST /game/hint.
// Level 1 reveals ~30%, 2 half, 3 three quarters, 4 the whole word.
type hintReq struct {
	GameID string `json:"gameId"`
	WordID string `json:"wordId"`
	Level  int    `json:"level"`
}

// hintRes is returned by POST /game/hint.
type hintRes struct {
	WordID     string `json:"wordId"`
	Masked     string `json:"masked"`
	HintsUsed  int    `json:"hintsUsed"`
	TotalHints int    `json:"totalHints"`
}

// handleHint reveals part of an unsolved word and charges the hint.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.GameID == "" || req.WordID == "" {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	masked, err := sess.UseHint(req.WordID, req.Level)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(hintRes{
		WordID:     req.WordID,
		Masked:     masked,
		HintsUsed:  sess.HintsUsed[req.WordID],
		TotalHints: sess.TotalHints(),
	})
}
