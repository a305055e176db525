// apps/go-server/internal/httpserver/routes_twentyq.go
//
// Twenty Questions endpoints.
//
//	POST /games/twentyq/start  {mode, target?, category?} -> session + snapshot
//	POST /games/twentyq/ask    {sessionId, question, askedBy} -> record + snapshot
//	POST /games/twentyq/answer {sessionId, answer}            -> record + snapshot
//	POST /games/twentyq/guess  {sessionId, guess}             -> result + snapshot
//
// In ai-guesses mode the caller supplies the secret; in user-guesses mode
// the server draws one from the secrets catalog and hides it until the game
// ends. Twenty Questions is a practice game: it feeds the practice tallies,
// never the daily streak or ledger.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordplay/apps/go-server/internal/puzzles"
	"github.com/robalobadob/wordplay/apps/go-server/internal/session"
	"github.com/robalobadob/wordplay/apps/go-server/internal/twentyq"
)

const gameTwentyQ = "twentyq"

func (s *Server) mountTwentyQ(r chi.Router) {
	r.Route("/twentyq", func(r chi.Router) {
		r.Post("/start", s.handleTwentyQStart)
		r.Post("/ask", s.handleTwentyQAsk)
		r.Post("/answer", s.handleTwentyQAnswer)
		r.Post("/guess", s.handleTwentyQGuess)
	})
}

type twentyQStartRequest struct {
	Mode     string `json:"mode"` // "ai-guesses" | "user-guesses"
	Target   string `json:"target,omitempty"`
	Category string `json:"category,omitempty"`
}

type twentyQStartResponse struct {
	SessionID string           `json:"sessionId"`
	Game      twentyq.Snapshot `json:"game"`
}

func (s *Server) handleTwentyQStart(w http.ResponseWriter, r *http.Request) {
	var req twentyQStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	userID := s.ensureUserID(w, r)

	target, category := strings.TrimSpace(req.Target), strings.TrimSpace(req.Category)
	if req.Mode == twentyq.ModeUserGuesses || target == "" {
		target, category = puzzles.RandomSecret()
	}

	eng := twentyq.New(target, category, req.Mode)
	sess := s.registry.Create(gameTwentyQ, modePractice, userID, eng)
	log.Info().Str("session", sess.ID).Str("mode", eng.Mode()).Msg("twentyq game started")

	writeJSON(w, twentyQStartResponse{SessionID: sess.ID, Game: eng.Snapshot()})
}

type twentyQAskRequest struct {
	SessionID string `json:"sessionId"`
	Question  string `json:"question"`
	AskedBy   string `json:"askedBy,omitempty"`
}

type twentyQRecordResponse struct {
	Record twentyq.Record   `json:"record"`
	Game   twentyq.Snapshot `json:"game"`
}

func (s *Server) handleTwentyQAsk(w http.ResponseWriter, r *http.Request) {
	var req twentyQAskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	var resp twentyQRecordResponse
	err := s.registry.Do(req.SessionID, func(sess *session.Session) error {
		eng, ok := sess.Engine.(*twentyq.Game)
		if !ok {
			return errWrongGame
		}
		rec, err := eng.AskQuestion(req.Question, req.AskedBy)
		if err != nil {
			return err
		}
		resp = twentyQRecordResponse{Record: rec, Game: eng.Snapshot()}
		return nil
	})
	if err != nil {
		engineError(w, err)
		return
	}
	writeJSON(w, resp)
}

type twentyQAnswerRequest struct {
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
}

func (s *Server) handleTwentyQAnswer(w http.ResponseWriter, r *http.Request) {
	var req twentyQAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	var resp twentyQRecordResponse
	err := s.registry.Do(req.SessionID, func(sess *session.Session) error {
		eng, ok := sess.Engine.(*twentyq.Game)
		if !ok {
			return errWrongGame
		}
		wasPlaying := eng.Status() == twentyq.StatusPlaying
		rec, err := eng.SubmitAnswer(req.Answer)
		if err != nil {
			return err
		}
		snap := eng.Snapshot()
		if wasPlaying && snap.Status != twentyq.StatusPlaying {
			// Budget exhausted without a correct guess.
			s.recordFinish(r, sess, false, 0)
		}
		resp = twentyQRecordResponse{Record: rec, Game: snap}
		return nil
	})
	if err != nil {
		engineError(w, err)
		return
	}
	writeJSON(w, resp)
}

type twentyQGuessRequest struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
}

type twentyQGuessResponse struct {
	Result twentyq.GuessResult `json:"result"`
	Game   twentyq.Snapshot    `json:"game"`
}

func (s *Server) handleTwentyQGuess(w http.ResponseWriter, r *http.Request) {
	var req twentyQGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	var resp twentyQGuessResponse
	err := s.registry.Do(req.SessionID, func(sess *session.Session) error {
		eng, ok := sess.Engine.(*twentyq.Game)
		if !ok {
			return errWrongGame
		}
		res, err := eng.MakeGuess(req.Guess)
		if err != nil {
			return err
		}
		snap := eng.Snapshot()
		score := twentyq.MaxQuestions - snap.QuestionsAsked
		if !res.Correct {
			score = 0
		}
		s.recordFinish(r, sess, res.Correct, score)
		resp = twentyQGuessResponse{Result: res, Game: snap}
		return nil
	})
	if err != nil {
		engineError(w, err)
		return
	}
	writeJSON(w, resp)
}
