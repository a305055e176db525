// apps/go-server/internal/streak/store.go
//
// SQLite persistence for per-user streak data.
// Load never fails outward: missing rows and read errors come back as
// zero-value Data (a failed load is treated as "new user"), with the error
// logged. Save is a plain upsert; concurrent completions for the same user
// are last-write-wins at this layer.

package streak

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
)

// Store reads and writes streak rows.
type Store struct{ db *sql.DB }

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Load returns the user's streak data, or defaults when absent or unreadable.
func (s *Store) Load(ctx context.Context, userID string) Data {
	var d Data
	var last sql.NullString
	err := s.db.QueryRowContext(ctx, `
        SELECT current_streak, max_streak, last_played_date,
               total_played, total_won, daily_played, daily_won
        FROM streaks WHERE user_id=?`, userID,
	).Scan(&d.CurrentStreak, &d.MaxStreak, &last,
		&d.TotalGamesPlayed, &d.TotalGamesWon, &d.DailyGamesPlayed, &d.DailyGamesWon)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Warn().Err(err).Str("user", userID).Msg("load streak; using defaults")
		}
		return Data{}
	}
	if last.Valid {
		d.LastPlayedDate = &last.String
	}
	return d
}

// Save upserts the user's streak row.
func (s *Store) Save(ctx context.Context, userID string, d Data) error {
	var last interface{}
	if d.LastPlayedDate != nil {
		last = *d.LastPlayedDate
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO streaks
            (user_id, current_streak, max_streak, last_played_date,
             total_played, total_won, daily_played, daily_won)
        VALUES (?,?,?,?,?,?,?,?)
        ON CONFLICT(user_id) DO UPDATE SET
            current_streak=excluded.current_streak,
            max_streak=excluded.max_streak,
            last_played_date=excluded.last_played_date,
            total_played=excluded.total_played,
            total_won=excluded.total_won,
            daily_played=excluded.daily_played,
            daily_won=excluded.daily_won`,
		userID, d.CurrentStreak, d.MaxStreak, last,
		d.TotalGamesPlayed, d.TotalGamesWon, d.DailyGamesPlayed, d.DailyGamesWon,
	)
	return err
}
