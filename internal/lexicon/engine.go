// apps/go-server/internal/lexicon/engine.go
//
// Core game engine for a single Lexicon Smith session.
// Responsibilities:
//   - Hold a fixed 7-letter set (1 center + 6 outer, all distinct).
//   - Validate submissions in a fixed order so the first failing check
//     determines the user-facing outcome.
//   - Score valid words (length-based, pangram override).
//   - Track found words, an append-only submission log, and hints.
//
// Notes:
//   - Invalid submissions are expected gameplay, not errors: they come back
//     as a Submission with a non-valid Outcome. The only error is submitting
//     to an already-won game.
//   - When no accepted-word list is supplied, only 5-letter submissions can
//     be checked against the dictionary collaborator; other lengths pass the
//     dictionary step unchecked.

package lexicon

import (
	"errors"
	"strings"
)

// Outcome classifies one submission.
type Outcome string

const (
	OutcomeValid         Outcome = "valid"
	OutcomeTooShort      Outcome = "too-short"
	OutcomeMissingCenter Outcome = "missing-center"
	OutcomeDuplicate     Outcome = "duplicate"
	OutcomeNotInDict     Outcome = "not-in-dictionary"
	OutcomeBadLetters    Outcome = "invalid-letters"
)

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
)

// MinWordLength is the shortest accepted submission.
const MinWordLength = 4

// PangramPoints is the flat score for a word using all seven letters.
const PangramPoints = 7

var (
	// ErrGameWon is returned for mutating calls after the game is won.
	ErrGameWon = errors.New("game is already won")
	// ErrNoHint is returned when every accepted word has been found.
	ErrNoHint = errors.New("no hints available")
)

// LetterSet is the fixed alphabet for one game: a center letter that must
// appear in every accepted word plus six outer letters. All seven are
// distinct uppercase A-Z and never change for the lifetime of a game.
type LetterSet struct {
	Center string   `json:"center"`
	Outer  []string `json:"outer"`
}

// NewLetterSet validates and normalizes a center letter and six outer letters.
func NewLetterSet(center string, outer []string) (LetterSet, error) {
	center = strings.ToUpper(strings.TrimSpace(center))
	if len(center) != 1 || center[0] < 'A' || center[0] > 'Z' {
		return LetterSet{}, errors.New("center must be a single letter A-Z")
	}
	if len(outer) != 6 {
		return LetterSet{}, errors.New("letter set needs exactly 6 outer letters")
	}
	seen := map[string]bool{center: true}
	norm := make([]string, 6)
	for i, l := range outer {
		l = strings.ToUpper(strings.TrimSpace(l))
		if len(l) != 1 || l[0] < 'A' || l[0] > 'Z' {
			return LetterSet{}, errors.New("outer letters must be single letters A-Z")
		}
		if seen[l] {
			return LetterSet{}, errors.New("letter set letters must be distinct")
		}
		seen[l] = true
		norm[i] = l
	}
	return LetterSet{Center: center, Outer: norm}, nil
}

// contains reports whether the set includes letter b.
func (ls LetterSet) contains(b byte) bool {
	if ls.Center[0] == b {
		return true
	}
	for _, l := range ls.Outer {
		if l[0] == b {
			return true
		}
	}
	return false
}

// all returns every letter in the set, center first.
func (ls LetterSet) all() []byte {
	out := []byte{ls.Center[0]}
	for _, l := range ls.Outer {
		out = append(out, l[0])
	}
	return out
}

// Submission is one entry in the append-only submission log.
// Every submission is logged, valid or not; only valid ones join the
// found-words set.
type Submission struct {
	Word      string  `json:"word"`
	Outcome   Outcome `json:"outcome"`
	Points    int     `json:"points"`
	IsPangram bool    `json:"isPangram"`
}

// Game holds the state of a single Lexicon Smith session.
type Game struct {
	letters   LetterSet
	mode      string
	accepted  map[string]bool   // full accepted-word list, may be empty
	found     []string          // valid words in submission order (for display)
	foundSet  map[string]bool   // membership checks
	log       []Submission      // append-only, includes invalid submissions
	score     int
	hintsUsed int
	status    string
	isWord    func(string) bool // fallback dictionary for 5-letter words
}

// New constructs a game for a letter set.
// accepted lists every word the puzzle recognizes; pass nil to fall back to
// the dictionary collaborator. isWord may be nil when accepted is supplied.
func New(letters LetterSet, mode string, accepted []string, isWord func(string) bool) *Game {
	acc := make(map[string]bool, len(accepted))
	for _, w := range accepted {
		acc[strings.ToUpper(strings.TrimSpace(w))] = true
	}
	if isWord == nil {
		isWord = func(string) bool { return false }
	}
	return &Game{
		letters:  letters,
		mode:     mode,
		accepted: acc,
		found:    []string{},
		foundSet: map[string]bool{},
		log:      []Submission{},
		status:   StatusPlaying,
		isWord:   isWord,
	}
}

// Score computes the point value of a word.
// Pangrams are a flat 7 regardless of length; otherwise 1 point for a
// 4-letter word, 2 for 5 letters, 3 for 6 or more.
func Score(word string, isPangram bool) int {
	if isPangram {
		return PangramPoints
	}
	switch n := len(word); {
	case n <= 4:
		return 1
	case n == 5:
		return 2
	default:
		return 3
	}
}

// IsPangram reports whether word uses every letter of the set at least once.
func IsPangram(word string, letters LetterSet) bool {
	word = strings.ToUpper(word)
	for _, b := range letters.all() {
		if strings.IndexByte(word, b) < 0 {
			return false
		}
	}
	return true
}

// Submit validates and scores a word.
// Checks run in a fixed order; the first failing check decides the outcome:
//   1. shorter than 4 letters      → too-short
//   2. missing the center letter   → missing-center
//   3. already found               → duplicate
//   4. letter outside the set      → invalid-letters
//   5. not a recognized word       → not-in-dictionary
// Every submission, valid or not, is appended to the log.
func (g *Game) Submit(word string) (Submission, error) {
	if g.status != StatusPlaying {
		return Submission{}, ErrGameWon
	}
	word = strings.ToUpper(strings.TrimSpace(word))

	sub := Submission{Word: word, Outcome: g.validate(word)}
	if sub.Outcome == OutcomeValid {
		sub.IsPangram = IsPangram(word, g.letters)
		sub.Points = Score(word, sub.IsPangram)
		g.found = append(g.found, word)
		g.foundSet[word] = true
		g.score += sub.Points
	}
	g.log = append(g.log, sub)

	// The game is complete once every accepted word has been found.
	if len(g.accepted) > 0 && len(g.found) == len(g.accepted) {
		g.status = StatusWon
	}
	return sub, nil
}

// validate runs the ordered checks and returns the first failure, if any.
func (g *Game) validate(word string) Outcome {
	if len(word) < MinWordLength {
		return OutcomeTooShort
	}
	if !strings.Contains(word, g.letters.Center) {
		return OutcomeMissingCenter
	}
	if g.foundSet[word] {
		return OutcomeDuplicate
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' || !g.letters.contains(word[i]) {
			return OutcomeBadLetters
		}
	}
	if len(g.accepted) > 0 {
		if !g.accepted[word] {
			return OutcomeNotInDict
		}
	} else if len(word) == WordCheckLength && !g.isWord(word) {
		// Without an accepted list the dictionary collaborator only knows
		// 5-letter words; other lengths cannot be checked here.
		return OutcomeNotInDict
	}
	return OutcomeValid
}

// WordCheckLength is the only word length the fallback dictionary covers.
const WordCheckLength = 5

// Hint returns the first letter of an arbitrary unfound accepted word and
// bumps the hint counter. Found words are untouched.
func (g *Game) Hint() (string, error) {
	if g.status != StatusPlaying {
		return "", ErrGameWon
	}
	for w := range g.accepted {
		if !g.foundSet[w] {
			g.hintsUsed++
			return "Try a word starting with " + string(w[0]), nil
		}
	}
	return "", ErrNoHint
}

// Status reports the lifecycle state: playing or won.
// Lexicon Smith has no losing transition.
func (g *Game) Status() string { return g.status }

// Mode reports the mode tag the game was created with.
func (g *Game) Mode() string { return g.mode }

// Snapshot is an immutable copy of the public game state.
type Snapshot struct {
	Letters     LetterSet    `json:"letters"`
	Mode        string       `json:"mode"`
	Status      string       `json:"status"`
	Score       int          `json:"score"`
	FoundWords  []string     `json:"foundWords"`
	Submissions []Submission `json:"submissions"`
	HintsUsed   int          `json:"hintsUsed"`
	TotalWords  int          `json:"totalWords"` // 0 when no accepted list is loaded
}

// Snapshot returns a defensive copy of the public state.
func (g *Game) Snapshot() Snapshot {
	letters := LetterSet{Center: g.letters.Center, Outer: append([]string{}, g.letters.Outer...)}
	return Snapshot{
		Letters:     letters,
		Mode:        g.mode,
		Status:      g.status,
		Score:       g.score,
		FoundWords:  append([]string{}, g.found...),
		Submissions: append([]Submission{}, g.log...),
		HintsUsed:   g.hintsUsed,
		TotalWords:  len(g.accepted),
	}
}
