// apps/go-server/internal/morph/types.go
//
// Core type definitions for the Word Morph game engine.
// Defines:
//   - Classification: per-letter result of a guess (correct/present/absent).
//   - LetterFeedback: one letter of a guess plus its classification.
//   - GuessRecord: a submitted word with its full feedback row.
//   - Game: state for a single in-progress or finished game.

package morph

// Classification represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is right and in the right position.
//   - "present": letter exists in the target but in a different position.
//   - "absent":  letter is not usable (not in the target, or already accounted for).
type Classification string

const (
	ClassCorrect Classification = "correct"
	ClassPresent Classification = "present"
	ClassAbsent  Classification = "absent"
)

// LetterFeedback pairs one guessed letter with its classification.
// A feedback row is produced fresh per guess and never mutated afterward.
type LetterFeedback struct {
	Letter         string         `json:"letter"`
	Classification Classification `json:"classification"`
}

// GuessRecord is one entry in a game's guess history.
type GuessRecord struct {
	Word     string           `json:"word"`
	Feedback []LetterFeedback `json:"feedback"`
}

// Game holds the state of a single Word Morph session.
// The engine is the sole mutator of its fields; callers receive
// defensive copies via Snapshot.
type Game struct {
	target  string             // The solution word (always uppercase).
	mode    string             // "daily" | "practice".
	guesses []GuessRecord      // Guesses made so far, in order.
	status  string             // "playing" | "won" | "lost".
	isWord  func(string) bool  // Dictionary collaborator for guess legality.
}

// Snapshot is an immutable copy of the public game state.
// Target and ShareText are populated only once the game is over.
type Snapshot struct {
	Mode       string        `json:"mode"`
	Status     string        `json:"status"`
	WordLength int           `json:"wordLength"`
	MaxGuesses int           `json:"maxGuesses"`
	Guesses    []GuessRecord `json:"guesses"`
	Target     string        `json:"target,omitempty"`
	ShareText  string        `json:"shareText,omitempty"`
}
