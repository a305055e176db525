// apps/go-server/internal/puzzles/puzzles.go
//
// Static puzzle catalogs for Connections and Lexicon Smith, plus the
// deterministic daily selection over them.
//
// Responsibilities:
//   - Hold the curated Connections puzzles (4 groups of 4), the Lexicon
//     Smith letter sets with their accepted-word lists, and the Twenty
//     Questions secrets.
//   - Select the puzzle for a UTC date via daily.Index (stable per day).
//   - Select a random puzzle for practice mode.

package puzzles

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/robalobadob/wordplay/apps/go-server/internal/connections"
	"github.com/robalobadob/wordplay/apps/go-server/internal/daily"
	"github.com/robalobadob/wordplay/apps/go-server/internal/lexicon"
)

// LetterSetEntry is one Lexicon Smith puzzle: the letter set plus every
// word it accepts.
type LetterSetEntry struct {
	Center   string
	Outer    []string
	Accepted []string
}

// SecretEntry is one Twenty Questions secret: the hidden target and a
// coarse category hint.
type SecretEntry struct {
	Target   string
	Category string
}

// RandomSecret draws a Twenty Questions target for server-chosen games.
func RandomSecret() (target, category string) {
	e := secretCatalog[randomIndex(len(secretCatalog))]
	return e.Target, e.Category
}

// DailyConnections returns the Connections puzzle for the UTC day of t.
func DailyConnections(t time.Time, salt string) (connections.Puzzle, error) {
	return buildConnections(daily.Index(t, salt, len(connectionsCatalog)))
}

// RandomConnections returns a random Connections puzzle for practice mode.
func RandomConnections() (connections.Puzzle, error) {
	return buildConnections(randomIndex(len(connectionsCatalog)))
}

// DailyLetterSet returns the Lexicon Smith puzzle for the UTC day of t.
func DailyLetterSet(t time.Time, salt string) (lexicon.LetterSet, []string, error) {
	return buildLetterSet(daily.Index(t, salt, len(letterSetCatalog)))
}

// RandomLetterSet returns a random Lexicon Smith puzzle for practice mode.
func RandomLetterSet() (lexicon.LetterSet, []string, error) {
	return buildLetterSet(randomIndex(len(letterSetCatalog)))
}

// CatalogSizes reports how many puzzles each catalog holds.
func CatalogSizes() (connectionsCount, letterSetCount int) {
	return len(connectionsCatalog), len(letterSetCatalog)
}

func buildConnections(i int) (connections.Puzzle, error) {
	return connections.NewPuzzle(connectionsCatalog[i])
}

func buildLetterSet(i int) (lexicon.LetterSet, []string, error) {
	entry := letterSetCatalog[i]
	ls, err := lexicon.NewLetterSet(entry.Center, entry.Outer)
	if err != nil {
		return lexicon.LetterSet{}, nil, err
	}
	return ls, append([]string{}, entry.Accepted...), nil
}

// randomIndex picks a cryptographically random catalog index.
func randomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}
