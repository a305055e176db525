// apps/go-server/internal/session/registry.go
//
// In-memory session registry for all game types.
// This is the single process-wide mapping from opaque session ids to live
// game engine instances, plus the metadata the transport needs (mode, owner).
//
// Characteristics:
//   - Ids are minted as "<gameType>-<uuid>"; the prefix is for debugging and
//     display only, callers must not parse it.
//   - Concurrency-safe: the registry map is guarded by an RWMutex, and every
//     call through Do additionally holds a per-session mutex, so concurrent
//     requests against the same id are serialized.
//   - Sessions idle past the TTL are evicted by Sweep (run periodically by
//     the janitor); lookups after eviction return ErrNotFound.

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when a session id is unknown or already evicted.
var ErrNotFound = errors.New("session not found")

// DefaultTTL bounds how long an idle session survives.
const DefaultTTL = 2 * time.Hour

// Engine is the minimal capability surface every game engine shares.
// The concrete engines are otherwise unrelated; the transport type-asserts
// back to the specific game to invoke its actions.
type Engine interface {
	// Status reports "playing", "won" or "lost".
	Status() string
}

// Session is one live game engine plus its metadata.
type Session struct {
	ID         string
	GameType   string
	Mode       string
	UserID     string
	Engine     Engine
	CreatedAt  time.Time
	LastAccess time.Time

	mu sync.Mutex // serializes all calls against this session
}

// Registry owns every active session.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time // swappable in tests
}

// NewRegistry constructs a registry. A non-positive ttl falls back to DefaultTTL.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create mints a session id and registers a new session.
func (r *Registry) Create(gameType, mode, userID string, eng Engine) *Session {
	now := r.now()
	s := &Session{
		ID:         gameType + "-" + uuid.NewString(),
		GameType:   gameType,
		Mode:       mode,
		UserID:     userID,
		Engine:     eng,
		CreatedAt:  now,
		LastAccess: now,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Do looks up a session and runs fn while holding that session's mutex.
// LastAccess is refreshed so active sessions outlive the TTL.
func (r *Registry) Do(id string, fn func(*Session) error) error {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastAccess = r.now()
	return fn(s)
}

// Remove drops a session, if present.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep evicts sessions idle past the TTL and reports how many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.LastAccess.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps on an interval until ctx is cancelled.
func (r *Registry) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = 10 * time.Minute
	}
	go func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if n := r.Sweep(); n > 0 {
					log.Debug().Int("evicted", n).Msg("session sweep")
				}
			}
		}
	}()
}
