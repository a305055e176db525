package twentyq

import (
	"fmt"
	"testing"
)

func TestAskAnswerAlternation(t *testing.T) {
	g := New("penguin", "animals", ModeAIGuesses)

	t.Run("answer with nothing pending", func(t *testing.T) {
		if _, err := g.SubmitAnswer("yes"); err != ErrNoPendingQuestion {
			t.Fatalf("err = %v, want ErrNoPendingQuestion", err)
		}
	})

	t.Run("ask then answer", func(t *testing.T) {
		rec, err := g.AskQuestion("Is it an animal?", "ai")
		if err != nil {
			t.Fatalf("AskQuestion: %v", err)
		}
		if rec.QuestionNumber != 1 || rec.Answer != nil {
			t.Fatalf("record = %+v", rec)
		}
		if _, err := g.AskQuestion("Is it big?", "ai"); err != ErrUnansweredQuestion {
			t.Fatalf("double ask: err = %v, want ErrUnansweredQuestion", err)
		}
		ans, err := g.SubmitAnswer("yes")
		if err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		if ans.Answer == nil || *ans.Answer != "yes" {
			t.Fatalf("answer not set: %+v", ans)
		}
		if _, err := g.SubmitAnswer("yes"); err != ErrNoPendingQuestion {
			t.Fatalf("double answer: err = %v, want ErrNoPendingQuestion", err)
		}
	})

	t.Run("rejects short question", func(t *testing.T) {
		if _, err := g.AskQuestion("  a ", "ai"); err != ErrQuestionTooShort {
			t.Fatalf("err = %v, want ErrQuestionTooShort", err)
		}
	})
}

func TestBudgetExhaustionLoses(t *testing.T) {
	g := New("penguin", "animals", ModeAIGuesses)
	for i := 1; i <= MaxQuestions; i++ {
		if _, err := g.AskQuestion(fmt.Sprintf("Question number %d?", i), "ai"); err != nil {
			t.Fatalf("ask %d: %v", i, err)
		}
		if _, err := g.SubmitAnswer("no"); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	if g.Status() != StatusLost {
		t.Fatalf("status = %q, want lost after 20 answers", g.Status())
	}
	if _, err := g.AskQuestion("One more?", "ai"); err != ErrGameOver {
		t.Fatalf("ask after loss: err = %v, want ErrGameOver", err)
	}
	snap := g.Snapshot()
	if snap.QuestionsAsked != MaxQuestions || snap.QuestionsRemaining != 0 {
		t.Fatalf("accounting off: %+v", snap)
	}
	if snap.Target != "penguin" {
		t.Fatalf("target not revealed after loss: %q", snap.Target)
	}
}

func TestMakeGuess(t *testing.T) {
	t.Run("correct guess wins and reveals", func(t *testing.T) {
		g := New("Penguin", "animals", ModeAIGuesses)
		res, err := g.MakeGuess("  penguin ")
		if err != nil {
			t.Fatalf("MakeGuess: %v", err)
		}
		if !res.Correct || res.Target != "Penguin" {
			t.Fatalf("result = %+v", res)
		}
		if g.Status() != StatusWon {
			t.Fatalf("status = %q", g.Status())
		}
	})

	t.Run("wrong guess loses and still reveals", func(t *testing.T) {
		g := New("penguin", "animals", ModeAIGuesses)
		res, err := g.MakeGuess("walrus")
		if err != nil {
			t.Fatalf("MakeGuess: %v", err)
		}
		if res.Correct || res.Target != "penguin" {
			t.Fatalf("result = %+v", res)
		}
		if g.Status() != StatusLost {
			t.Fatalf("status = %q", g.Status())
		}
		if _, err := g.MakeGuess("penguin"); err != ErrGameOver {
			t.Fatalf("guess after loss: err = %v", err)
		}
	})
}

func TestTargetVisibility(t *testing.T) {
	t.Run("hidden during ai-guesses play", func(t *testing.T) {
		g := New("penguin", "animals", ModeAIGuesses)
		_, _ = g.AskQuestion("Is it alive?", "ai")
		if snap := g.Snapshot(); snap.Target != "" {
			t.Fatalf("target leaked: %q", snap.Target)
		}
	})
	t.Run("visible in user-guesses mode", func(t *testing.T) {
		g := New("penguin", "animals", ModeUserGuesses)
		if snap := g.Snapshot(); snap.Target != "penguin" {
			t.Fatalf("target = %q, want penguin", snap.Target)
		}
	})
	t.Run("visible the moment the game ends", func(t *testing.T) {
		g := New("penguin", "animals", ModeAIGuesses)
		_, _ = g.MakeGuess("walrus")
		if snap := g.Snapshot(); snap.Target != "penguin" {
			t.Fatalf("target = %q, want penguin", snap.Target)
		}
	})
}

func TestSnapshotCopies(t *testing.T) {
	g := New("penguin", "animals", ModeAIGuesses)
	_, _ = g.AskQuestion("Is it alive?", "ai")
	_, _ = g.SubmitAnswer("yes")
	snap := g.Snapshot()
	*snap.Questions[0].Answer = "mutated"
	snap.Questions[0].Question = "mutated"
	again := g.Snapshot()
	if *again.Questions[0].Answer != "yes" || again.Questions[0].Question != "Is it alive?" {
		t.Fatalf("snapshot mutation reached engine state: %+v", again.Questions[0])
	}
}
