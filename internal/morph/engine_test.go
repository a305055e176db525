package morph

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func classes(fb []LetterFeedback) []Classification {
	out := make([]Classification, len(fb))
	for i, f := range fb {
		out[i] = f.Classification
	}
	return out
}

func TestCheck(t *testing.T) {
	cases := []struct {
		name   string
		guess  string
		target string
		want   []Classification
	}{
		{
			name:   "duplicate letters in guess",
			guess:  "ERASE",
			target: "SPEED",
			want:   []Classification{ClassPresent, ClassAbsent, ClassAbsent, ClassPresent, ClassPresent},
		},
		{
			name:   "mixed hits and presents",
			guess:  "TRAIN",
			target: "CRANE",
			want:   []Classification{ClassAbsent, ClassCorrect, ClassCorrect, ClassAbsent, ClassPresent},
		},
		{
			name:   "exact match",
			guess:  "CRANE",
			target: "CRANE",
			want:   []Classification{ClassCorrect, ClassCorrect, ClassCorrect, ClassCorrect, ClassCorrect},
		},
		{
			name:   "no overlap",
			guess:  "GUMBO",
			target: "FLINT",
			want:   []Classification{ClassAbsent, ClassAbsent, ClassAbsent, ClassAbsent, ClassAbsent},
		},
		{
			// SPEED holds two Es; the first two guessed Es consume them and
			// the trailing E goes absent.
			name:   "excess duplicates go absent left to right",
			guess:  "EERIE",
			target: "SPEED",
			want:   []Classification{ClassPresent, ClassPresent, ClassAbsent, ClassAbsent, ClassAbsent},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classes(Check(tc.guess, tc.target))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Check(%q,%q) = %v, want %v", tc.guess, tc.target, got, tc.want)
			}
		})
	}
}

func TestCheckLettersEchoGuess(t *testing.T) {
	fb := Check("ERASE", "SPEED")
	var letters strings.Builder
	for _, f := range fb {
		letters.WriteString(f.Letter)
	}
	if letters.String() != "ERASE" {
		t.Fatalf("feedback letters = %q, want ERASE", letters.String())
	}
}

// TestCheckCorrectPresentSubset verifies the multiset property: letters
// classified correct or present never exceed their count in the target.
func TestCheckCorrectPresentSubset(t *testing.T) {
	pairs := [][2]string{
		{"ERASE", "SPEED"}, {"SPEED", "ERASE"}, {"EERIE", "SPEED"},
		{"LLAMA", "ALLAY"}, {"CRANE", "TRAIN"}, {"GEESE", "EASEL"},
	}
	for _, p := range pairs {
		guess, target := p[0], p[1]
		var used [26]int
		for i, f := range Check(guess, target) {
			if f.Classification != ClassAbsent {
				used[guess[i]-'A']++
			}
		}
		var have [26]int
		for i := 0; i < len(target); i++ {
			have[target[i]-'A']++
		}
		for c := 0; c < 26; c++ {
			if used[c] > have[c] {
				t.Fatalf("Check(%q,%q): letter %c used %d times, target has %d",
					guess, target, 'A'+c, used[c], have[c])
			}
		}
	}
}

func TestMakeGuess(t *testing.T) {
	dict := func(w string) bool {
		switch w {
		case "CRANE", "TRAIN", "SLATE", "BRICK", "GHOST", "MOUND", "PLUCK":
			return true
		}
		return false
	}

	t.Run("winning guess", func(t *testing.T) {
		g := New("crane", "practice", dict)
		rec, err := g.MakeGuess("crane")
		if err != nil {
			t.Fatalf("MakeGuess: %v", err)
		}
		if g.Status() != StatusWon {
			t.Fatalf("status = %q, want won", g.Status())
		}
		for _, f := range rec.Feedback {
			if f.Classification != ClassCorrect {
				t.Fatalf("winning guess feedback = %v", rec.Feedback)
			}
		}
	})

	t.Run("loses after six misses", func(t *testing.T) {
		g := New("CRANE", "practice", dict)
		misses := []string{"SLATE", "BRICK", "GHOST", "MOUND", "PLUCK", "TRAIN"}
		for i, w := range misses {
			if _, err := g.MakeGuess(w); err != nil {
				t.Fatalf("guess %d (%s): %v", i+1, w, err)
			}
		}
		if g.Status() != StatusLost {
			t.Fatalf("status = %q, want lost", g.Status())
		}
		if _, err := g.MakeGuess("CRANE"); err != ErrGameOver {
			t.Fatalf("guess after loss: err = %v, want ErrGameOver", err)
		}
	})

	t.Run("rejects bad input without mutating", func(t *testing.T) {
		g := New("CRANE", "practice", dict)
		if _, err := g.MakeGuess("CAT"); err != ErrInvalidLength {
			t.Fatalf("short guess: err = %v, want ErrInvalidLength", err)
		}
		if _, err := g.MakeGuess("ZZZZZ"); err != ErrUnknownWord {
			t.Fatalf("unknown guess: err = %v, want ErrUnknownWord", err)
		}
		if n := len(g.Snapshot().Guesses); n != 0 {
			t.Fatalf("rejected guesses were recorded: %d", n)
		}
	})
}

func TestSnapshot(t *testing.T) {
	dict := func(string) bool { return true }

	t.Run("hides target while playing", func(t *testing.T) {
		g := New("CRANE", "daily", dict)
		_, _ = g.MakeGuess("TRAIN")
		snap := g.Snapshot()
		if snap.Target != "" || snap.ShareText != "" {
			t.Fatalf("target leaked mid-game: %+v", snap)
		}
		if snap.Status != StatusPlaying || len(snap.Guesses) != 1 {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})

	t.Run("reveals target and share text when over", func(t *testing.T) {
		g := New("CRANE", "daily", dict)
		_, _ = g.MakeGuess("TRAIN")
		_, _ = g.MakeGuess("CRANE")
		snap := g.Snapshot()
		if snap.Target != "CRANE" {
			t.Fatalf("target = %q, want CRANE", snap.Target)
		}
		if !strings.HasPrefix(snap.ShareText, "Word Morph 2/6") {
			t.Fatalf("share text = %q", snap.ShareText)
		}
		if !strings.Contains(snap.ShareText, "🟩🟩🟩🟩🟩") {
			t.Fatalf("share text missing winning row: %q", snap.ShareText)
		}
	})

	t.Run("copies do not alias internal state", func(t *testing.T) {
		g := New("CRANE", "practice", dict)
		_, _ = g.MakeGuess("TRAIN")
		snap := g.Snapshot()
		snap.Guesses[0].Word = "MUTATED"
		snap.Guesses[0].Feedback[0].Classification = ClassCorrect
		again := g.Snapshot()
		if again.Guesses[0].Word != "TRAIN" {
			t.Fatalf("snapshot mutation reached engine state")
		}
		if again.Guesses[0].Feedback[0].Classification != ClassAbsent {
			t.Fatalf("feedback mutation reached engine state")
		}
	})

	t.Run("round-trips through JSON", func(t *testing.T) {
		g := New("CRANE", "practice", dict)
		_, _ = g.MakeGuess("TRAIN")
		_, _ = g.MakeGuess("CRANE")
		raw, err := json.Marshal(g.Snapshot())
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back Snapshot
		if err := json.Unmarshal(raw, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !reflect.DeepEqual(back, g.Snapshot()) {
			t.Fatalf("round trip changed snapshot:\n%+v\n%+v", back, g.Snapshot())
		}
	})
}
