// apps/go-server/internal/httpserver/routes_connections.go
//
// Connections endpoints.
//
//	POST /games/connections/start   {mode}              -> session + snapshot
//	POST /games/connections/guess   {sessionId, words}  -> result + snapshot
//	POST /games/connections/shuffle {sessionId}         -> snapshot
//
// A wrong guess is a 200 with correct=false and a wordsAway count; only
// precondition violations (bad size, off-board word, repeats) are 400s.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordplay/apps/go-server/internal/connections"
	"github.com/robalobadob/wordplay/apps/go-server/internal/puzzles"
	"github.com/robalobadob/wordplay/apps/go-server/internal/session"
)

const gameConnections = "connections"

func (s *Server) mountConnections(r chi.Router) {
	r.Route("/connections", func(r chi.Router) {
		r.Post("/start", s.handleConnectionsStart)
		r.Post("/guess", s.handleConnectionsGuess)
		r.Post("/shuffle", s.handleConnectionsShuffle)
	})
}

type connectionsStartRequest struct {
	Mode string `json:"mode"`
}

type connectionsStartResponse struct {
	SessionID string               `json:"sessionId"`
	Game      connections.Snapshot `json:"game"`
}

func (s *Server) handleConnectionsStart(w http.ResponseWriter, r *http.Request) {
	var req connectionsStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	mode := normalizeMode(req.Mode)
	userID := s.ensureUserID(w, r)

	var (
		puzzle connections.Puzzle
		err    error
	)
	if mode == modeDaily {
		if s.alreadyPlayedDaily(r, userID, gameConnections) {
			jsonError(w, "daily puzzle already played today", http.StatusConflict)
			return
		}
		puzzle, err = puzzles.DailyConnections(time.Now(), s.salt)
	} else {
		puzzle, err = puzzles.RandomConnections()
	}
	if err != nil {
		log.Error().Err(err).Msg("connections puzzle selection")
		jsonError(w, "puzzle unavailable", http.StatusInternalServerError)
		return
	}

	eng := connections.New(puzzle, mode)
	sess := s.registry.Create(gameConnections, mode, userID, eng)
	log.Info().Str("session", sess.ID).Str("mode", mode).Msg("connections game started")

	writeJSON(w, connectionsStartResponse{SessionID: sess.ID, Game: eng.Snapshot()})
}

type connectionsGuessRequest struct {
	SessionID string   `json:"sessionId"`
	Words     []string `json:"words"`
}

type connectionsGuessResponse struct {
	Result connections.GuessResult `json:"result"`
	Game   connections.Snapshot    `json:"game"`
}

func (s *Server) handleConnectionsGuess(w http.ResponseWriter, r *http.Request) {
	var req connectionsGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	var resp connectionsGuessResponse
	err := s.registry.Do(req.SessionID, func(sess *session.Session) error {
		eng, ok := sess.Engine.(*connections.Game)
		if !ok {
			return errWrongGame
		}
		wasPlaying := eng.Status() == connections.StatusPlaying
		res, err := eng.SubmitGuess(req.Words)
		if err != nil {
			return err
		}
		snap := eng.Snapshot()
		if wasPlaying && snap.Status != connections.StatusPlaying {
			s.recordFinish(r, sess, snap.Status == connections.StatusWon, len(snap.SolvedGroups))
		}
		resp = connectionsGuessResponse{Result: res, Game: snap}
		return nil
	})
	if err != nil {
		engineError(w, err)
		return
	}
	writeJSON(w, resp)
}

type connectionsShuffleRequest struct {
	SessionID string `json:"sessionId"`
}

type connectionsShuffleResponse struct {
	Game connections.Snapshot `json:"game"`
}

func (s *Server) handleConnectionsShuffle(w http.ResponseWriter, r *http.Request) {
	var req connectionsShuffleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	var resp connectionsShuffleResponse
	err := s.registry.Do(req.SessionID, func(sess *session.Session) error {
		eng, ok := sess.Engine.(*connections.Game)
		if !ok {
			return errWrongGame
		}
		if err := eng.Shuffle(); err != nil {
			return err
		}
		resp = connectionsShuffleResponse{Game: eng.Snapshot()}
		return nil
	})
	if err != nil {
		engineError(w, err)
		return
	}
	writeJSON(w, resp)
}
