// apps/go-server/internal/httpserver/routes_morph.go
//
// Word Morph endpoints.
//
//	POST /games/morph/start  {mode}            -> session + snapshot
//	POST /games/morph/guess  {sessionId, word} -> feedback + snapshot
//
// Daily mode picks the date-keyed answer and enforces one play per user per
// UTC day; practice mode picks a random answer.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordplay/apps/go-server/internal/morph"
	"github.com/robalobadob/wordplay/apps/go-server/internal/session"
	"github.com/robalobadob/wordplay/apps/go-server/internal/words"
)

const gameMorph = "morph"

func (s *Server) mountMorph(r chi.Router) {
	r.Route("/morph", func(r chi.Router) {
		r.Post("/start", s.handleMorphStart)
		r.Post("/guess", s.handleMorphGuess)
	})
}

type morphStartRequest struct {
	Mode string `json:"mode"` // "daily" | "practice"
}

type morphStartResponse struct {
	SessionID string         `json:"sessionId"`
	Game      morph.Snapshot `json:"game"`
}

func (s *Server) handleMorphStart(w http.ResponseWriter, r *http.Request) {
	var req morphStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	mode := normalizeMode(req.Mode)
	userID := s.ensureUserID(w, r)

	if err := words.Init(); err != nil {
		log.Error().Err(err).Msg("word list init")
		jsonError(w, "word lists unavailable", http.StatusInternalServerError)
		return
	}

	var target string
	if mode == modeDaily {
		if s.alreadyPlayedDaily(r, userID, gameMorph) {
			jsonError(w, "daily puzzle already played today", http.StatusConflict)
			return
		}
		target = words.DailyAnswer(time.Now(), s.salt)
	} else {
		target = words.RandomAnswer()
	}

	eng := morph.New(target, mode, words.IsWord)
	sess := s.registry.Create(gameMorph, mode, userID, eng)
	log.Info().Str("session", sess.ID).Str("mode", mode).Msg("morph game started")

	writeJSON(w, morphStartResponse{SessionID: sess.ID, Game: eng.Snapshot()})
}

type morphGuessRequest struct {
	SessionID string `json:"sessionId"`
	Word      string `json:"word"`
}

type morphGuessResponse struct {
	Guess morph.GuessRecord `json:"guess"`
	Game  morph.Snapshot    `json:"game"`
}

func (s *Server) handleMorphGuess(w http.ResponseWriter, r *http.Request) {
	var req morphGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	var resp morphGuessResponse
	err := s.registry.Do(req.SessionID, func(sess *session.Session) error {
		eng, ok := sess.Engine.(*morph.Game)
		if !ok {
			return errWrongGame
		}
		wasPlaying := eng.Status() == morph.StatusPlaying
		rec, err := eng.MakeGuess(req.Word)
		if err != nil {
			return err
		}
		snap := eng.Snapshot()
		if wasPlaying && snap.Status != morph.StatusPlaying {
			s.recordFinish(r, sess, snap.Status == morph.StatusWon, morphScore(snap))
		}
		resp = morphGuessResponse{Guess: rec, Game: snap}
		return nil
	})
	if err != nil {
		engineError(w, err)
		return
	}
	writeJSON(w, resp)
}

// morphScore rewards solving in fewer guesses: 6 points for a first-guess
// win down to 1 for the last row, 0 on a loss.
func morphScore(snap morph.Snapshot) int {
	if snap.Status != morph.StatusWon {
		return 0
	}
	return morph.MaxGuesses - len(snap.Guesses) + 1
}
