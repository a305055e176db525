package connections

import (
	"sort"
	"strings"
	"testing"
)

func testPuzzle(t *testing.T) Puzzle {
	t.Helper()
	p, err := NewPuzzle([]Group{
		{Category: "Shades of blue", Difficulty: DifficultyYellow, Words: []string{"NAVY", "TEAL", "AZURE", "COBALT"}},
		{Category: "___ bear", Difficulty: DifficultyGreen, Words: []string{"POLAR", "GRIZZLY", "PANDA", "SUN"}},
		{Category: "Chess pieces", Difficulty: DifficultyBlue, Words: []string{"KING", "QUEEN", "ROOK", "BISHOP"}},
		{Category: "___ board", Difficulty: DifficultyPurple, Words: []string{"KEY", "SURF", "CARD", "DASH"}},
	})
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	return p
}

func TestNewPuzzle(t *testing.T) {
	t.Run("rejects wrong group count", func(t *testing.T) {
		if _, err := NewPuzzle([]Group{{Category: "x", Difficulty: DifficultyYellow, Words: []string{"A", "B", "C", "D"}}}); err == nil {
			t.Fatal("expected error for 1 group")
		}
	})
	t.Run("rejects short group", func(t *testing.T) {
		p := testPuzzle(t)
		p.Groups[0].Words = p.Groups[0].Words[:3]
		if _, err := NewPuzzle(p.Groups); err == nil {
			t.Fatal("expected error for 3-word group")
		}
	})
	t.Run("rejects empty category", func(t *testing.T) {
		p := testPuzzle(t)
		p.Groups[2].Category = "  "
		if _, err := NewPuzzle(p.Groups); err == nil {
			t.Fatal("expected error for blank category")
		}
	})
	t.Run("rejects repeated word across groups", func(t *testing.T) {
		p := testPuzzle(t)
		p.Groups[3].Words = []string{"KEY", "SURF", "CARD", "NAVY"}
		if _, err := NewPuzzle(p.Groups); err == nil {
			t.Fatal("expected error for repeated word")
		}
	})
}

func TestSubmitGuess(t *testing.T) {
	t.Run("correct guess solves the group", func(t *testing.T) {
		g := New(testPuzzle(t), "daily")
		res, err := g.SubmitGuess([]string{"king", "queen", "rook", "bishop"})
		if err != nil {
			t.Fatalf("SubmitGuess: %v", err)
		}
		if !res.Correct || res.Category != "Chess pieces" || res.Difficulty != DifficultyBlue {
			t.Fatalf("result = %+v", res)
		}
		snap := g.Snapshot()
		if len(snap.RemainingWords) != 12 || len(snap.SolvedGroups) != 1 {
			t.Fatalf("remaining=%d solved=%d", len(snap.RemainingWords), len(snap.SolvedGroups))
		}
		if snap.Mistakes != 0 {
			t.Fatalf("correct guess counted as mistake")
		}
	})

	t.Run("one away hint", func(t *testing.T) {
		g := New(testPuzzle(t), "daily")
		res, err := g.SubmitGuess([]string{"KING", "QUEEN", "ROOK", "NAVY"})
		if err != nil {
			t.Fatalf("SubmitGuess: %v", err)
		}
		if res.Correct || res.WordsAway != 1 {
			t.Fatalf("result = %+v, want incorrect one away", res)
		}
		if g.Snapshot().Mistakes != 1 {
			t.Fatalf("mistake not counted")
		}
	})

	t.Run("two away hint", func(t *testing.T) {
		g := New(testPuzzle(t), "daily")
		res, err := g.SubmitGuess([]string{"KING", "QUEEN", "NAVY", "TEAL"})
		if err != nil {
			t.Fatalf("SubmitGuess: %v", err)
		}
		if res.WordsAway != 2 {
			t.Fatalf("wordsAway = %d, want 2", res.WordsAway)
		}
	})

	t.Run("repeated guess rejected in any order", func(t *testing.T) {
		g := New(testPuzzle(t), "daily")
		if _, err := g.SubmitGuess([]string{"KING", "QUEEN", "ROOK", "NAVY"}); err != nil {
			t.Fatalf("first guess: %v", err)
		}
		if _, err := g.SubmitGuess([]string{"navy", "rook", "queen", "king"}); err != ErrRepeatedGuess {
			t.Fatalf("err = %v, want ErrRepeatedGuess", err)
		}
		if g.Snapshot().Mistakes != 1 {
			t.Fatalf("rejected repeat counted as mistake")
		}
	})

	t.Run("precondition errors", func(t *testing.T) {
		g := New(testPuzzle(t), "daily")
		if _, err := g.SubmitGuess([]string{"KING", "QUEEN"}); err != ErrGuessSize {
			t.Fatalf("size: err = %v", err)
		}
		if _, err := g.SubmitGuess([]string{"KING", "QUEEN", "ROOK", "ZEBRA"}); err != ErrUnknownWord {
			t.Fatalf("unknown: err = %v", err)
		}
		if _, err := g.SubmitGuess([]string{"KING", "QUEEN", "ROOK", "KING"}); err != ErrDuplicateWord {
			t.Fatalf("duplicate: err = %v", err)
		}
	})

	t.Run("four mistakes lose the game", func(t *testing.T) {
		g := New(testPuzzle(t), "daily")
		wrong := [][]string{
			{"KING", "QUEEN", "ROOK", "NAVY"},
			{"KING", "QUEEN", "ROOK", "TEAL"},
			{"KING", "QUEEN", "ROOK", "SUN"},
			{"KING", "QUEEN", "ROOK", "KEY"},
		}
		for i, words := range wrong {
			if _, err := g.SubmitGuess(words); err != nil {
				t.Fatalf("guess %d: %v", i+1, err)
			}
		}
		if g.Status() != StatusLost {
			t.Fatalf("status = %q, want lost", g.Status())
		}
		if _, err := g.SubmitGuess([]string{"KING", "QUEEN", "ROOK", "BISHOP"}); err != ErrGameOver {
			t.Fatalf("guess after loss: err = %v", err)
		}
	})

	t.Run("solving all four groups wins", func(t *testing.T) {
		g := New(testPuzzle(t), "daily")
		groups := [][]string{
			{"NAVY", "TEAL", "AZURE", "COBALT"},
			{"POLAR", "GRIZZLY", "PANDA", "SUN"},
			{"KING", "QUEEN", "ROOK", "BISHOP"},
			{"KEY", "SURF", "CARD", "DASH"},
		}
		for i, words := range groups {
			res, err := g.SubmitGuess(words)
			if err != nil {
				t.Fatalf("group %d: %v", i+1, err)
			}
			if !res.Correct {
				t.Fatalf("group %d not matched: %+v", i+1, res)
			}
		}
		snap := g.Snapshot()
		if snap.Status != StatusWon {
			t.Fatalf("status = %q, want won", snap.Status)
		}
		if len(snap.RemainingWords) != 0 {
			t.Fatalf("remaining not empty: %v", snap.RemainingWords)
		}
		if len(snap.SolvedGroups) != 4 || snap.SolvedGroups[0].Category != "Shades of blue" {
			t.Fatalf("solve order lost: %+v", snap.SolvedGroups)
		}
		if !strings.Contains(snap.ShareText, "🟨🟨🟨🟨") || !strings.Contains(snap.ShareText, "🟪🟪🟪🟪") {
			t.Fatalf("share text = %q", snap.ShareText)
		}
	})
}

func TestShuffle(t *testing.T) {
	g := New(testPuzzle(t), "practice")
	before := g.Snapshot().RemainingWords
	if err := g.Shuffle(); err != nil {
		t.Fatalf("Shuffle: %v", err)
	}
	after := g.Snapshot().RemainingWords
	if len(after) != len(before) {
		t.Fatalf("shuffle changed pool size")
	}
	a, b := append([]string{}, before...), append([]string{}, after...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffle changed pool contents: %v vs %v", before, after)
		}
	}

	// Shuffle is a board operation, not a guess; it dies with the game.
	wrong := [][]string{
		{"KING", "QUEEN", "ROOK", "NAVY"},
		{"KING", "QUEEN", "ROOK", "TEAL"},
		{"KING", "QUEEN", "ROOK", "SUN"},
		{"KING", "QUEEN", "ROOK", "KEY"},
	}
	for _, words := range wrong {
		if _, err := g.SubmitGuess(words); err != nil {
			t.Fatalf("SubmitGuess: %v", err)
		}
	}
	if err := g.Shuffle(); err != ErrGameOver {
		t.Fatalf("shuffle after loss: err = %v, want ErrGameOver", err)
	}
}
