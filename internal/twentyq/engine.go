// apps/go-server/internal/twentyq/engine.go
//
// Core game engine for a single Twenty Questions session.
// Two cooperating state machines share the session:
//   - Ask/answer alternation: a question must be answered before the next
//     one is asked, within a 20-question budget.
//   - Guess resolution: a separate action that compares a guess against the
//     hidden target and ends the game either way.
//
// Target visibility: while the mode is "ai-guesses" and the game is still
// playing, snapshots omit the target. It is revealed the moment the status
// leaves playing, and is always visible in "user-guesses" mode.

package twentyq

import (
	"errors"
	"strings"
)

const (
	// MaxQuestions is the question budget for one game.
	MaxQuestions = 20
	// MinQuestionLength is the shortest acceptable question after trimming.
	MinQuestionLength = 3
)

const (
	ModeAIGuesses   = "ai-guesses"
	ModeUserGuesses = "user-guesses"
)

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusLost    = "lost"
)

var (
	// ErrGameOver is returned for mutating calls on a finished game.
	ErrGameOver = errors.New("game is already over")
	// ErrNoQuestionsLeft is returned when the 20-question budget is spent.
	ErrNoQuestionsLeft = errors.New("no questions remaining")
	// ErrQuestionTooShort is returned for questions under 3 characters.
	ErrQuestionTooShort = errors.New("question is too short")
	// ErrUnansweredQuestion is returned when asking while an answer is pending.
	ErrUnansweredQuestion = errors.New("previous question has not been answered")
	// ErrNoPendingQuestion is returned when answering with nothing pending.
	ErrNoPendingQuestion = errors.New("no question is awaiting an answer")
)

// Record is one question/answer exchange. The sequence is append-only; the
// newest record stays "current" until it is answered.
type Record struct {
	QuestionNumber int     `json:"questionNumber"`
	Question       string  `json:"question"`
	Answer         *string `json:"answer,omitempty"`
	AskedBy        string  `json:"askedBy"`
}

// GuessResult is returned by MakeGuess. The target is always revealed here,
// win or lose.
type GuessResult struct {
	Correct bool   `json:"correct"`
	Guess   string `json:"guess"`
	Target  string `json:"target"`
}

// Game holds the state of a single Twenty Questions session.
type Game struct {
	target   string
	category string
	mode     string // ModeAIGuesses | ModeUserGuesses
	records  []Record
	answered int // questions fully asked-and-answered
	status   string
}

// New constructs a game around a target in the given mode.
func New(target, category, mode string) *Game {
	if mode != ModeUserGuesses {
		mode = ModeAIGuesses
	}
	return &Game{
		target:   strings.TrimSpace(target),
		category: category,
		mode:     mode,
		records:  []Record{},
		status:   StatusPlaying,
	}
}

// AskQuestion appends an unanswered record for the next question number.
// Fails if the game is over, the previous question is still unanswered, the
// budget is spent, or the trimmed text is under 3 characters.
func (g *Game) AskQuestion(text, askedBy string) (Record, error) {
	if g.status != StatusPlaying {
		return Record{}, ErrGameOver
	}
	if g.pending() != nil {
		return Record{}, ErrUnansweredQuestion
	}
	if len(g.records) >= MaxQuestions {
		return Record{}, ErrNoQuestionsLeft
	}
	text = strings.TrimSpace(text)
	if len(text) < MinQuestionLength {
		return Record{}, ErrQuestionTooShort
	}
	rec := Record{
		QuestionNumber: len(g.records) + 1,
		Question:       text,
		AskedBy:        askedBy,
	}
	g.records = append(g.records, rec)
	return rec, nil
}

// SubmitAnswer sets the answer on the pending question and advances the
// counter. Once all 20 questions are answered without a correct guess, the
// game is lost.
func (g *Game) SubmitAnswer(answer string) (Record, error) {
	if g.status != StatusPlaying {
		return Record{}, ErrGameOver
	}
	p := g.pending()
	if p == nil {
		return Record{}, ErrNoPendingQuestion
	}
	answer = strings.TrimSpace(answer)
	p.Answer = &answer
	g.answered++
	if g.answered >= MaxQuestions {
		g.status = StatusLost
	}
	return *p, nil
}

// MakeGuess resolves the game: case-insensitive, trim-normalized equality
// against the hidden target. The target is revealed either way.
func (g *Game) MakeGuess(text string) (GuessResult, error) {
	if g.status != StatusPlaying {
		return GuessResult{}, ErrGameOver
	}
	guess := strings.TrimSpace(text)
	correct := strings.EqualFold(guess, g.target)
	if correct {
		g.status = StatusWon
	} else {
		g.status = StatusLost
	}
	return GuessResult{Correct: correct, Guess: guess, Target: g.target}, nil
}

// pending returns the newest record if it has no answer yet.
func (g *Game) pending() *Record {
	if len(g.records) == 0 {
		return nil
	}
	last := &g.records[len(g.records)-1]
	if last.Answer == nil {
		return last
	}
	return nil
}

// Status reports the coarse lifecycle state: playing, won or lost.
func (g *Game) Status() string { return g.status }

// Mode reports the guessing mode the game was created with.
func (g *Game) Mode() string { return g.mode }

// Snapshot is an immutable copy of the public game state.
type Snapshot struct {
	Mode               string   `json:"mode"`
	Category           string   `json:"category,omitempty"`
	Status             string   `json:"status"`
	Questions          []Record `json:"questions"`
	QuestionsAsked     int      `json:"questionsAsked"`
	QuestionsRemaining int      `json:"questionsRemaining"`
	Target             string   `json:"target,omitempty"`
}

// Snapshot returns a defensive copy of the public state. The target is
// hidden only during active ai-guesses play.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:               g.mode,
		Category:           g.category,
		Status:             g.status,
		Questions:          make([]Record, len(g.records)),
		QuestionsAsked:     g.answered,
		QuestionsRemaining: MaxQuestions - g.answered,
	}
	for i, rec := range g.records {
		cp := rec
		if rec.Answer != nil {
			a := *rec.Answer
			cp.Answer = &a
		}
		snap.Questions[i] = cp
	}
	if g.mode == ModeUserGuesses || g.status != StatusPlaying {
		snap.Target = g.target
	}
	return snap
}
