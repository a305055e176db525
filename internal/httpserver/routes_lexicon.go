// apps/go-server/internal/httpserver/routes_lexicon.go
//
// Lexicon Smith endpoints.
//
//	POST /games/lexicon/start  {mode}             -> session + snapshot
//	POST /games/lexicon/submit {sessionId, word}  -> submission + snapshot
//	POST /games/lexicon/hint   {sessionId}        -> hint + snapshot
//
// Invalid words are not errors: the submission comes back with an outcome
// tag and zero points. Finding every accepted word wins and is recorded.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordplay/apps/go-server/internal/lexicon"
	"github.com/robalobadob/wordplay/apps/go-server/internal/puzzles"
	"github.com/robalobadob/wordplay/apps/go-server/internal/session"
	"github.com/robalobadob/wordplay/apps/go-server/internal/words"
)

const gameLexicon = "lexicon"

func (s *Server) mountLexicon(r chi.Router) {
	r.Route("/lexicon", func(r chi.Router) {
		r.Post("/start", s.handleLexiconStart)
		r.Post("/submit", s.handleLexiconSubmit)
		r.Post("/hint", s.handleLexiconHint)
	})
}

type lexiconStartRequest struct {
	Mode string `json:"mode"`
}

type lexiconStartResponse struct {
	SessionID string           `json:"sessionId"`
	Game      lexicon.Snapshot `json:"game"`
}

func (s *Server) handleLexiconStart(w http.ResponseWriter, r *http.Request) {
	var req lexiconStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	mode := normalizeMode(req.Mode)
	userID := s.ensureUserID(w, r)

	var (
		letters  lexicon.LetterSet
		accepted []string
		err      error
	)
	if mode == modeDaily {
		if s.alreadyPlayedDaily(r, userID, gameLexicon) {
			jsonError(w, "daily puzzle already played today", http.StatusConflict)
			return
		}
		letters, accepted, err = puzzles.DailyLetterSet(time.Now(), s.salt)
	} else {
		letters, accepted, err = puzzles.RandomLetterSet()
	}
	if err != nil {
		log.Error().Err(err).Msg("letter set selection")
		jsonError(w, "puzzle unavailable", http.StatusInternalServerError)
		return
	}

	// Fallback dictionary for words outside the accepted list.
	if err := words.Init(); err != nil {
		log.Warn().Err(err).Msg("fallback dictionary unavailable")
	}

	eng := lexicon.New(letters, mode, accepted, words.IsWord)
	sess := s.registry.Create(gameLexicon, mode, userID, eng)
	log.Info().Str("session", sess.ID).Str("mode", mode).Msg("lexicon game started")

	writeJSON(w, lexiconStartResponse{SessionID: sess.ID, Game: eng.Snapshot()})
}

type lexiconSubmitRequest struct {
	SessionID string `json:"sessionId"`
	Word      string `json:"word"`
}

type lexiconSubmitResponse struct {
	Submission lexicon.Submission `json:"submission"`
	Game       lexicon.Snapshot   `json:"game"`
}

func (s *Server) handleLexiconSubmit(w http.ResponseWriter, r *http.Request) {
	var req lexiconSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	var resp lexiconSubmitResponse
	err := s.registry.Do(req.SessionID, func(sess *session.Session) error {
		eng, ok := sess.Engine.(*lexicon.Game)
		if !ok {
			return errWrongGame
		}
		wasPlaying := eng.Status() == lexicon.StatusPlaying
		sub, err := eng.Submit(req.Word)
		if err != nil {
			return err
		}
		snap := eng.Snapshot()
		if wasPlaying && snap.Status == lexicon.StatusWon {
			s.recordFinish(r, sess, true, snap.Score)
		}
		resp = lexiconSubmitResponse{Submission: sub, Game: snap}
		return nil
	})
	if err != nil {
		engineError(w, err)
		return
	}
	writeJSON(w, resp)
}

type lexiconHintRequest struct {
	SessionID string `json:"sessionId"`
}

type lexiconHintResponse struct {
	Hint string           `json:"hint"`
	Game lexicon.Snapshot `json:"game"`
}

func (s *Server) handleLexiconHint(w http.ResponseWriter, r *http.Request) {
	var req lexiconHintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	var resp lexiconHintResponse
	err := s.registry.Do(req.SessionID, func(sess *session.Session) error {
		eng, ok := sess.Engine.(*lexicon.Game)
		if !ok {
			return errWrongGame
		}
		hint, err := eng.Hint()
		if err != nil {
			return err
		}
		resp = lexiconHintResponse{Hint: hint, Game: eng.Snapshot()}
		return nil
	})
	if err != nil {
		engineError(w, err)
		return
	}
	writeJSON(w, resp)
}
