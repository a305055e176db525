// apps/go-server/internal/httpserver/routes_stats.go
//
// Player statistics and the daily leaderboard.
//
//	GET /stats/me                        -> streak data + win rates
//	GET /daily/leaderboard?game=&date=   -> top daily winners by score

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordplay/apps/go-server/internal/daily"
	"github.com/robalobadob/wordplay/apps/go-server/internal/streak"
)

func (s *Server) mountStats(r chi.Router) {
	r.Get("/stats/me", s.handleStatsMe)
	r.Get("/daily/leaderboard", s.handleLeaderboard)
}

type statsResponse struct {
	Streak  streak.Data `json:"streak"`
	WinRate int         `json:"winRate"`
}

func (s *Server) handleStatsMe(w http.ResponseWriter, r *http.Request) {
	userID := s.ensureUserID(w, r)
	data := s.streaks.Load(r.Context(), userID)
	writeJSON(w, statsResponse{Streak: data, WinRate: streak.WinRate(data)})
}

type leaderboardResponse struct {
	Game    string        `json:"game"`
	Date    string        `json:"date"`
	Entries []daily.LBRow `json:"entries"`
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	game := r.URL.Query().Get("game")
	if game == "" {
		jsonError(w, "game query parameter is required", http.StatusBadRequest)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(time.Now())
	} else if _, err := time.Parse(streak.DateLayout, date); err != nil {
		jsonError(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	rows, err := s.results.Leaderboard(r.Context(), game, date, 20)
	if err != nil {
		log.Error().Err(err).Str("game", game).Str("date", date).Msg("leaderboard query")
		jsonError(w, "leaderboard unavailable", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []daily.LBRow{}
	}
	writeJSON(w, leaderboardResponse{Game: game, Date: date, Entries: rows})
}
