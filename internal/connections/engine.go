// apps/go-server/internal/connections/engine.go
//
// Core game engine for a single Connections session.
// Responsibilities:
//   - Hold a fixed partition of 16 words into 4 labeled groups.
//   - Validate 4-word guesses (shape, pool membership, duplicates,
//     repeated guesses) and match them against unsolved groups.
//   - Compute the "words away" near-miss hint for incorrect guesses.
//   - Track solved groups, mistakes, and the shuffled remaining pool.
//
// Notes:
//   - Wrong guesses are expected gameplay: they come back as a GuessResult
//     with Correct=false. Errors are reserved for precondition violations.
//   - Word comparison is case-insensitive; the puzzle's own casing is kept
//     for display.

package connections

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
)

// Difficulty tiers, easiest to hardest.
type Difficulty string

const (
	DifficultyYellow Difficulty = "yellow"
	DifficultyGreen  Difficulty = "green"
	DifficultyBlue   Difficulty = "blue"
	DifficultyPurple Difficulty = "purple"
)

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusLost    = "lost"
)

const (
	// GroupCount and GroupSize fix the 4x4 puzzle shape.
	GroupCount = 4
	GroupSize  = 4
	// MaxMistakes is the number of wrong guesses before the game is lost.
	MaxMistakes = 4
)

var (
	// ErrGameOver is returned for mutating calls on a finished game.
	ErrGameOver = errors.New("game is already over")
	// ErrGuessSize is returned when a guess is not exactly 4 words.
	ErrGuessSize = errors.New("guess must contain exactly 4 words")
	// ErrUnknownWord is returned when a guessed word is not in the remaining pool.
	ErrUnknownWord = errors.New("word is not on the board")
	// ErrDuplicateWord is returned when a guess repeats a word within itself.
	ErrDuplicateWord = errors.New("guess contains a duplicate word")
	// ErrRepeatedGuess is returned when the same 4-word set was tried before.
	ErrRepeatedGuess = errors.New("that combination was already guessed")
)

// Group is one quarter of a puzzle: 4 words under one category label.
type Group struct {
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Words      []string   `json:"words"`
}

// Puzzle is a complete partition of 16 words into 4 groups.
type Puzzle struct {
	Groups []Group
}

// NewPuzzle validates the 4-groups-of-4 shape and non-empty categories.
func NewPuzzle(groups []Group) (Puzzle, error) {
	if len(groups) != GroupCount {
		return Puzzle{}, errors.New("puzzle needs exactly 4 groups")
	}
	seen := map[string]bool{}
	for _, grp := range groups {
		if strings.TrimSpace(grp.Category) == "" {
			return Puzzle{}, errors.New("group category must not be empty")
		}
		if len(grp.Words) != GroupSize {
			return Puzzle{}, errors.New("each group needs exactly 4 words")
		}
		for _, w := range grp.Words {
			k := strings.ToUpper(strings.TrimSpace(w))
			if seen[k] {
				return Puzzle{}, errors.New("puzzle words must be distinct")
			}
			seen[k] = true
		}
	}
	return Puzzle{Groups: groups}, nil
}

// GuessRecord is one entry in the guess history, kept for share text and
// repeated-guess detection.
type GuessRecord struct {
	Words   []string `json:"words"`
	Correct bool     `json:"correct"`
}

// GuessResult is the outcome of one guess. Category and Difficulty are set
// only on a correct guess; WordsAway only on an incorrect one.
type GuessResult struct {
	Correct    bool       `json:"correct"`
	Category   string     `json:"category,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	WordsAway  int        `json:"wordsAway,omitempty"`
}

// Game holds the state of a single Connections session.
type Game struct {
	puzzle    Puzzle
	mode      string
	remaining []string        // unsolved words in display order, shuffled at start
	solved    []Group         // groups in solve order
	mistakes  int
	history   []GuessRecord
	tried     map[string]bool // order-independent keys of prior guesses
	status    string
}

// New constructs a game and shuffles the 16-word board.
func New(puzzle Puzzle, mode string) *Game {
	g := &Game{
		puzzle: puzzle,
		mode:   mode,
		solved: []Group{},
		tried:  map[string]bool{},
		status: StatusPlaying,
	}
	for _, grp := range puzzle.Groups {
		g.remaining = append(g.remaining, grp.Words...)
	}
	g.shuffleRemaining()
	return g
}

// guessKey builds an order-independent identity for a 4-word guess.
func guessKey(words []string) string {
	norm := make([]string, len(words))
	for i, w := range words {
		norm[i] = strings.ToUpper(strings.TrimSpace(w))
	}
	sort.Strings(norm)
	return strings.Join(norm, "|")
}

// SubmitGuess matches a 4-word selection against the unsolved groups.
// Preconditions are checked in order, each with its own error: game over,
// guess size, pool membership, duplicate within the guess, repeated guess.
func (g *Game) SubmitGuess(words []string) (GuessResult, error) {
	if g.status != StatusPlaying {
		return GuessResult{}, ErrGameOver
	}
	if len(words) != GroupSize {
		return GuessResult{}, ErrGuessSize
	}
	inGuess := map[string]bool{}
	for _, w := range words {
		k := strings.ToUpper(strings.TrimSpace(w))
		if !g.inRemaining(k) {
			return GuessResult{}, ErrUnknownWord
		}
		if inGuess[k] {
			return GuessResult{}, ErrDuplicateWord
		}
		inGuess[k] = true
	}
	key := guessKey(words)
	if g.tried[key] {
		return GuessResult{}, ErrRepeatedGuess
	}
	g.tried[key] = true

	// Match against each unsolved group; track the best overlap for the
	// near-miss hint.
	bestOverlap := 0
	for _, grp := range g.puzzle.Groups {
		if g.isSolved(grp.Category) {
			continue
		}
		overlap := 0
		for _, w := range grp.Words {
			if inGuess[strings.ToUpper(w)] {
				overlap++
			}
		}
		if overlap == GroupSize {
			g.solveGroup(grp)
			g.history = append(g.history, GuessRecord{Words: append([]string{}, words...), Correct: true})
			return GuessResult{Correct: true, Category: grp.Category, Difficulty: grp.Difficulty}, nil
		}
		if overlap > bestOverlap {
			bestOverlap = overlap
		}
	}

	g.history = append(g.history, GuessRecord{Words: append([]string{}, words...), Correct: false})
	g.mistakes++
	if g.mistakes >= MaxMistakes {
		g.status = StatusLost
	}
	return GuessResult{Correct: false, WordsAway: GroupSize - bestOverlap}, nil
}

// Shuffle permutes the remaining pool in place (Fisher-Yates).
// Solved groups are untouched; rejected once the game is over.
func (g *Game) Shuffle() error {
	if g.status != StatusPlaying {
		return ErrGameOver
	}
	g.shuffleRemaining()
	return nil
}

func (g *Game) shuffleRemaining() {
	for i := len(g.remaining) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		g.remaining[i], g.remaining[j] = g.remaining[j], g.remaining[i]
	}
}

// inRemaining reports whether k (uppercase) is still on the board.
func (g *Game) inRemaining(k string) bool {
	for _, w := range g.remaining {
		if strings.ToUpper(w) == k {
			return true
		}
	}
	return false
}

// isSolved reports whether the category has already been solved.
func (g *Game) isSolved(category string) bool {
	for _, grp := range g.solved {
		if grp.Category == category {
			return true
		}
	}
	return false
}

// solveGroup moves a group from unsolved to solved and removes its words
// from the remaining pool. Win triggers when all 4 groups are solved.
func (g *Game) solveGroup(grp Group) {
	g.solved = append(g.solved, grp)
	kept := g.remaining[:0]
	for _, w := range g.remaining {
		member := false
		for _, gw := range grp.Words {
			if strings.EqualFold(w, gw) {
				member = true
				break
			}
		}
		if !member {
			kept = append(kept, w)
		}
	}
	g.remaining = kept
	if len(g.solved) == GroupCount {
		g.status = StatusWon
	}
}

// Status reports the coarse lifecycle state: playing, won or lost.
func (g *Game) Status() string { return g.status }

// Mode reports the mode tag the game was created with.
func (g *Game) Mode() string { return g.mode }

// Snapshot is an immutable copy of the public game state.
// Categories of unsolved groups are never exposed mid-game.
type Snapshot struct {
	Mode           string        `json:"mode"`
	Status         string        `json:"status"`
	RemainingWords []string      `json:"remainingWords"`
	SolvedGroups   []Group       `json:"solvedGroups"`
	Mistakes       int           `json:"mistakes"`
	MaxMistakes    int           `json:"maxMistakes"`
	Guesses        []GuessRecord `json:"guesses"`
	ShareText      string        `json:"shareText,omitempty"`
}

// Snapshot returns a defensive copy of the public state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:           g.mode,
		Status:         g.status,
		RemainingWords: append([]string{}, g.remaining...),
		SolvedGroups:   make([]Group, len(g.solved)),
		Mistakes:       g.mistakes,
		MaxMistakes:    MaxMistakes,
		Guesses:        make([]GuessRecord, len(g.history)),
	}
	for i, grp := range g.solved {
		snap.SolvedGroups[i] = Group{
			Category:   grp.Category,
			Difficulty: grp.Difficulty,
			Words:      append([]string{}, grp.Words...),
		}
	}
	for i, rec := range g.history {
		snap.Guesses[i] = GuessRecord{Words: append([]string{}, rec.Words...), Correct: rec.Correct}
	}
	if g.status != StatusPlaying {
		snap.ShareText = g.shareText()
	}
	return snap
}

// shareText renders each guess as a row of difficulty-colored squares.
func (g *Game) shareText() string {
	var b strings.Builder
	b.WriteString("Connections\n")
	for _, rec := range g.history {
		for _, w := range rec.Words {
			b.WriteString(squareFor(g.difficultyOf(w)))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// difficultyOf finds the difficulty tier of a word within the puzzle.
func (g *Game) difficultyOf(word string) Difficulty {
	for _, grp := range g.puzzle.Groups {
		for _, w := range grp.Words {
			if strings.EqualFold(w, word) {
				return grp.Difficulty
			}
		}
	}
	return DifficultyYellow
}

func squareFor(d Difficulty) string {
	switch d {
	case DifficultyGreen:
		return "🟩"
	case DifficultyBlue:
		return "🟦"
	case DifficultyPurple:
		return "🟪"
	default:
		return "🟨"
	}
}
