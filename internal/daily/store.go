// apps/go-server/internal/daily/store.go
//
// SQLite ledger of completed daily games, one row per user/game/date.
// Used to stop a user replaying the same daily puzzle and to build a
// per-game leaderboard for a date.

package daily

import (
	"context"
	"database/sql"
)

// Result records one finished daily game.
// Score carries the game's own notion of points (word points, groups
// solved, guesses remaining); higher is better.
type Result struct {
	UserID   string `json:"userId"`
	GameType string `json:"gameType"`
	Date     string `json:"date"`
	Won      bool   `json:"won"`
	Score    int    `json:"score"`
}

// Store reads and writes daily result rows.
type Store struct{ db *sql.DB }

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether the user has a result for this game and date.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, gameType, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE user_id=? AND game_type=? AND date=?`,
		userID, gameType, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult appends a result row. A duplicate user/game/date insert is
// ignored (UNIQUE constraint), so re-submission is harmless.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, game_type, date, won, score)
		 VALUES(?,?,?,?,?)`, r.UserID, r.GameType, r.Date, won, r.Score,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID string `json:"userId"`
	Score  int    `json:"score"`
}

// Leaderboard returns the top scorers for a game and date.
func (s *Store) Leaderboard(ctx context.Context, gameType, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, score
		 FROM daily_results
		 WHERE game_type=? AND date=? AND won=1
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`, gameType, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Score); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
