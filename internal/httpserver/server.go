// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the game backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Tool-call endpoints per game, mounted under /games/{type}.
//   - Stats + leaderboard endpoints.
//   - Anonymous user cookie: every caller gets a stable id for streak lookup.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so the cookie works).
//   - Engine precondition failures come back as 400 with a JSON error body;
//     unknown sessions as 404. Gameplay outcomes (wrong guess, invalid word)
//     are 200s carrying an outcome field; failing a guess is not an error.
//   - Each request locks its session for the duration of the handler, so
//     concurrent calls against one session are serialized.

package httpserver

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordplay/apps/go-server/internal/daily"
	"github.com/robalobadob/wordplay/apps/go-server/internal/session"
	"github.com/robalobadob/wordplay/apps/go-server/internal/streak"
)

// Server bundles router, session registry, and the persistence stores.
type Server struct {
	r        *chi.Mux
	registry *session.Registry
	streaks  *streak.Store
	results  *daily.Store
	salt     string
}

// New constructs a Server, installs middleware, and registers routes.
func New(reg *session.Registry, db *sql.DB) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		registry: reg,
		streaks:  streak.NewStore(db),
		results:  daily.NewStore(db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordplay-go","games":["morph","lexicon","connections","twentyq"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- game tool-call endpoints ---
	s.r.Route("/games", func(r chi.Router) {
		s.mountMorph(r)
		s.mountLexicon(r)
		s.mountConnections(r)
		s.mountTwentyQ(r)
	})

	// --- stats + leaderboard ---
	s.mountStats(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --------------------------- request helpers -------------------------------

const (
	modeDaily    = "daily"
	modePractice = "practice"
)

// errWrongGame covers a session id presented to the wrong game's endpoint.
var errWrongGame = errors.New("session belongs to a different game")

// normalizeMode clamps arbitrary input to the two supported modes.
func normalizeMode(m string) string {
	if m == modeDaily {
		return modeDaily
	}
	return modePractice
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

// jsonError writes a tagged failure object with the given status code.
func jsonError(w http.ResponseWriter, msg string, code int) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// engineError maps core errors onto HTTP codes: unknown sessions are 404,
// everything else is a precondition violation (400).
func engineError(w http.ResponseWriter, err error) {
	if err == session.ErrNotFound {
		jsonError(w, "session not found, start a new game", http.StatusNotFound)
		return
	}
	jsonError(w, err.Error(), http.StatusBadRequest)
}

const anonCookieName = "wordplay_user"

// ensureUserID returns an existing user cookie or sets a new one.
// This is the stable identifier streak data is keyed by.
func (s *Server) ensureUserID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := genID()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("NODE_ENV") == "production",
		SameSite: func() http.SameSite {
			if os.Getenv("NODE_ENV") == "production" {
				return http.SameSiteNoneMode
			}
			return http.SameSiteLaxMode
		}(),
		Expires: time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// ----------------------------- game finish ---------------------------------

// recordFinish applies a finished game to the user's streak data and, for
// daily games, the daily-result ledger. Best effort: storage failures are
// logged, never surfaced, since the game result already happened.
func (s *Server) recordFinish(r *http.Request, sess *session.Session, won bool, score int) {
	ctx := r.Context()
	date := daily.DateKey(time.Now())
	data := s.streaks.Load(ctx, sess.UserID)

	if sess.Mode == "daily" {
		data = streak.UpdateDaily(data, won, date)
		err := s.results.InsertResult(ctx, daily.Result{
			UserID: sess.UserID, GameType: sess.GameType, Date: date, Won: won, Score: score,
		})
		if err != nil {
			log.Warn().Err(err).Str("session", sess.ID).Msg("insert daily result")
		}
	} else {
		data = streak.UpdatePractice(data, won)
	}

	if err := s.streaks.Save(ctx, sess.UserID, data); err != nil {
		log.Warn().Err(err).Str("user", sess.UserID).Msg("save streak")
	}
}

// alreadyPlayedDaily guards daily starts: one daily game per user per day.
func (s *Server) alreadyPlayedDaily(r *http.Request, userID, gameType string) bool {
	played, err := s.results.AlreadyPlayed(r.Context(), userID, gameType, daily.DateKey(time.Now()))
	if err != nil {
		log.Warn().Err(err).Str("game", gameType).Msg("already-played check")
		return false
	}
	return played
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
