// apps/go-server/internal/morph/engine.go
//
// Core game engine for a single Word Morph session.
// Responsibilities:
//   - Create new games with fixed dimensions (6 guesses x 5 letters).
//   - Validate and apply guesses (status, length, dictionary).
//   - Score guesses using the classic two-pass algorithm.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The dictionary is injected as a func so the engine stays pure and
//     testable without loading word lists.
//   - All words are normalized to uppercase on the way in.

package morph

import (
	"errors"
	"strings"
)

const (
	// MaxGuesses is the number of attempts before the game is lost.
	MaxGuesses = 6
	// WordLength is the fixed length of targets and guesses.
	WordLength = 5
)

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusLost    = "lost"
)

var (
	// ErrGameOver is returned for mutating calls on a finished game.
	ErrGameOver = errors.New("game is already over")
	// ErrInvalidLength is returned when a guess is not exactly WordLength letters.
	ErrInvalidLength = errors.New("guess must be exactly 5 letters")
	// ErrUnknownWord is returned when a guess is not in the accepted dictionary.
	ErrUnknownWord = errors.New("not a recognized word")
)

// New constructs a game around an uppercase-normalized target.
// isWord decides guess legality; a nil isWord accepts every 5-letter guess.
func New(target, mode string, isWord func(string) bool) *Game {
	if isWord == nil {
		isWord = func(string) bool { return true }
	}
	return &Game{
		target:  strings.ToUpper(strings.TrimSpace(target)),
		mode:    mode,
		guesses: []GuessRecord{},
		status:  StatusPlaying,
		isWord:  isWord,
	}
}

// Check compares a guess against a target and classifies every letter.
// Both inputs must be equal-length uppercase alphabetic strings.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non-matched) target letters by letter index.
//
// Pass 2:
//   - For each unmatched guess letter: if there is remaining count for that
//     letter, mark present and decrement the count; otherwise mark absent.
//
// This ordering keeps duplicate letters honest: exact matches are never
// stolen by an earlier duplicate, and excess occurrences of a letter in the
// guess go absent left to right.
func Check(guess, target string) []LetterFeedback {
	n := len(guess)
	out := make([]LetterFeedback, n)

	// Letter frequency for the non-matched target positions (A-Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		out[i].Letter = string(guess[i])
		if guess[i] == target[i] {
			out[i].Classification = ClassCorrect
		} else {
			counts[idx(target[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if out[i].Classification == ClassCorrect {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			out[i].Classification = ClassPresent
			counts[j]--
		} else {
			out[i].Classification = ClassAbsent
		}
	}
	return out
}

// idx maps an uppercase ASCII letter byte to 0..25.
// Assumes inputs are validated to A-Z elsewhere.
func idx(b byte) int { return int(b - 'A') }

// MakeGuess validates a guess, scores it, and applies the state transition.
// The returned record is the appended history entry.
//
// Validation rules, first failure wins:
//   - Game must still be playing.
//   - Guess must be exactly WordLength uppercase letters after normalization.
//   - Guess must be in the accepted dictionary.
func (g *Game) MakeGuess(word string) (GuessRecord, error) {
	if g.status != StatusPlaying {
		return GuessRecord{}, ErrGameOver
	}
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) != WordLength || !isUpperAlpha(word) {
		return GuessRecord{}, ErrInvalidLength
	}
	if !g.isWord(word) {
		return GuessRecord{}, ErrUnknownWord
	}

	rec := GuessRecord{Word: word, Feedback: Check(word, g.target)}
	g.guesses = append(g.guesses, rec)

	if word == g.target {
		g.status = StatusWon
	} else if len(g.guesses) >= MaxGuesses {
		g.status = StatusLost
	}
	return rec, nil
}

// Status reports the coarse lifecycle state: playing, won or lost.
func (g *Game) Status() string { return g.status }

// Mode reports the mode tag the game was created with.
func (g *Game) Mode() string { return g.mode }

// Snapshot returns a defensive copy of the public state.
// The target and share text stay hidden until the game is over.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:       g.mode,
		Status:     g.status,
		WordLength: WordLength,
		MaxGuesses: MaxGuesses,
		Guesses:    make([]GuessRecord, len(g.guesses)),
	}
	for i, rec := range g.guesses {
		fb := make([]LetterFeedback, len(rec.Feedback))
		copy(fb, rec.Feedback)
		snap.Guesses[i] = GuessRecord{Word: rec.Word, Feedback: fb}
	}
	if g.status != StatusPlaying {
		snap.Target = g.target
		snap.ShareText = g.shareText()
	}
	return snap
}

// shareText renders the guess grid as emoji rows, suitable for pasting.
func (g *Game) shareText() string {
	var b strings.Builder
	score := "X"
	if g.status == StatusWon {
		score = itoa(len(g.guesses))
	}
	b.WriteString("Word Morph " + score + "/" + itoa(MaxGuesses) + "\n")
	for _, rec := range g.guesses {
		for _, fb := range rec.Feedback {
			switch fb.Classification {
			case ClassCorrect:
				b.WriteString("🟩")
			case ClassPresent:
				b.WriteString("🟨")
			default:
				b.WriteString("⬛")
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// itoa avoids strconv for single-digit guess counts.
func itoa(n int) string {
	if n >= 0 && n <= 9 {
		return string(rune('0' + n))
	}
	return "?"
}

// isUpperAlpha checks that a string consists only of uppercase A-Z.
func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
