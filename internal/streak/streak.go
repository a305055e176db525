// apps/go-server/internal/streak/streak.go
//
// Streak and statistics bookkeeping shared by every game.
// The transition functions are pure: they take the stored Data plus the
// outcome and return the updated Data. Loading and saving is the Store's
// job; callers run load → update → save at game boundaries.

package streak

import (
	"math"
	"time"
)

// DateLayout is the calendar-day format used for LastPlayedDate.
const DateLayout = "2006-01-02"

// Data is one user's persisted streak state.
// A nil LastPlayedDate means the user has never finished a daily game.
type Data struct {
	CurrentStreak    int     `json:"currentStreak"`
	MaxStreak        int     `json:"maxStreak"`
	LastPlayedDate   *string `json:"lastPlayedDate"`
	TotalGamesPlayed int     `json:"totalGamesPlayed"`
	TotalGamesWon    int     `json:"totalGamesWon"`
	DailyGamesPlayed int     `json:"dailyGamesPlayed"`
	DailyGamesWon    int     `json:"dailyGamesWon"`
}

// Today returns the current UTC calendar day in DateLayout.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// UpdateDaily applies one finished daily game to the streak state.
//
// Rules:
//   - Play counters always bump; win counters only on a win.
//   - A loss resets the current streak to 0 and leaves the max alone.
//   - A win on the same day as the last play changes no streak values
//     (already credited today).
//   - A win exactly one day after the last play extends the streak.
//   - A win after a longer gap (or the first-ever play) starts a fresh
//     streak of 1.
func UpdateDaily(d Data, won bool, today string) Data {
	d.TotalGamesPlayed++
	d.DailyGamesPlayed++
	if !won {
		d.CurrentStreak = 0
		d.LastPlayedDate = &today
		return d
	}
	d.TotalGamesWon++
	d.DailyGamesWon++

	switch {
	case d.LastPlayedDate == nil:
		d.CurrentStreak = 1
		if d.MaxStreak < 1 {
			d.MaxStreak = 1
		}
	case *d.LastPlayedDate == today:
		// Already credited for today; counters bumped above.
	case daysBetween(*d.LastPlayedDate, today) == 1:
		d.CurrentStreak++
		if d.CurrentStreak > d.MaxStreak {
			d.MaxStreak = d.CurrentStreak
		}
	default:
		d.CurrentStreak = 1
		if d.MaxStreak < 1 {
			d.MaxStreak = 1
		}
	}
	d.LastPlayedDate = &today
	return d
}

// UpdatePractice applies one finished practice game.
// Practice never touches the daily streak or the last-played date.
func UpdatePractice(d Data, won bool) Data {
	d.TotalGamesPlayed++
	if won {
		d.TotalGamesWon++
	}
	return d
}

// WinRate is the rounded win percentage over all games, 0 when unplayed.
func WinRate(d Data) int {
	if d.TotalGamesPlayed == 0 {
		return 0
	}
	return int(math.Round(100 * float64(d.TotalGamesWon) / float64(d.TotalGamesPlayed)))
}

// daysBetween counts calendar days from a to b.
// Unparseable dates count as a large gap, which resets the streak.
func daysBetween(a, b string) int {
	ta, errA := time.Parse(DateLayout, a)
	tb, errB := time.Parse(DateLayout, b)
	if errA != nil || errB != nil {
		return 1 << 30
	}
	return int(tb.Sub(ta).Hours() / 24)
}
