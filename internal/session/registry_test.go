package session

import (
	"strings"
	"testing"
	"time"
)

type fakeEngine struct{ status string }

func (f *fakeEngine) Status() string { return f.status }

func TestCreateAndDo(t *testing.T) {
	r := NewRegistry(time.Hour)
	s := r.Create("morph", "daily", "user-1", &fakeEngine{status: "playing"})

	if !strings.HasPrefix(s.ID, "morph-") {
		t.Fatalf("id = %q, want morph- prefix", s.ID)
	}
	err := r.Do(s.ID, func(got *Session) error {
		if got.UserID != "user-1" || got.Mode != "daily" {
			t.Fatalf("session metadata lost: %+v", got)
		}
		if got.Engine.Status() != "playing" {
			t.Fatalf("engine status = %q", got.Engine.Status())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
}

func TestUniqueIDs(t *testing.T) {
	r := NewRegistry(time.Hour)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s := r.Create("lexicon", "practice", "u", &fakeEngine{})
		if seen[s.ID] {
			t.Fatalf("duplicate id %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestNotFound(t *testing.T) {
	r := NewRegistry(time.Hour)
	if err := r.Do("morph-nope", func(*Session) error { return nil }); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	r := NewRegistry(time.Hour)
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	stale := r.Create("twentyq", "ai-guesses", "u", &fakeEngine{})
	clock = clock.Add(30 * time.Minute)
	fresh := r.Create("connections", "daily", "u", &fakeEngine{})

	clock = clock.Add(45 * time.Minute) // stale is now 75m idle, fresh 45m
	if n := r.Sweep(); n != 1 {
		t.Fatalf("Sweep removed %d, want 1", n)
	}
	if err := r.Do(stale.ID, func(*Session) error { return nil }); err != ErrNotFound {
		t.Fatalf("stale session survived: err = %v", err)
	}
	if err := r.Do(fresh.ID, func(*Session) error { return nil }); err != nil {
		t.Fatalf("fresh session evicted: %v", err)
	}
}

func TestDoRefreshesLastAccess(t *testing.T) {
	r := NewRegistry(time.Hour)
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	s := r.Create("morph", "daily", "u", &fakeEngine{})
	clock = clock.Add(50 * time.Minute)
	if err := r.Do(s.ID, func(*Session) error { return nil }); err != nil {
		t.Fatalf("Do: %v", err)
	}
	clock = clock.Add(50 * time.Minute) // 100m since create, 50m since access
	if n := r.Sweep(); n != 0 {
		t.Fatalf("active session swept")
	}
}
