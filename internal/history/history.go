// Package history keeps a bounded, ephemeral record of successful searches
// so a client session can revisit them. Nothing here touches disk; a
// session's history disappears with the process or when the session idles
// out.
package history

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fontsmith/fontsmith-backend/internal/domain"
)

// DefaultCapacity bounds a session's history.
const DefaultCapacity = 10

// Entry is one completed, successful search. Never mutated after insertion.
type Entry struct {
	ID        uuid.UUID
	Request   domain.StyleRequest
	Result    domain.SuggestionResult
	CreatedAt time.Time
}

// Store is one session's history: a newest-first sequence bounded at a
// fixed capacity, with a "current" pointer tracking the entry being viewed.
// All operations are serialized with a mutex so concurrent handlers cannot
// break the truncate-on-insert invariant.
type Store struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry // newest-first
	current  uuid.UUID
	lastUsed time.Time
}

// NewStore creates an empty history store. A non-positive capacity falls
// back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		lastUsed: time.Now(),
	}
}

// Record creates an entry for a successful search, prepends it, and
// truncates to capacity, evicting the oldest entry when full. The new entry
// becomes "current". The stored request carries a trimmed prompt.
func (s *Store) Record(req domain.StyleRequest, result domain.SuggestionResult) Entry {
	req.Prompt = strings.TrimSpace(req.Prompt)

	entry := Entry{
		ID:        uuid.New(),
		Request:   req,
		Result:    result,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
	s.current = entry.ID
	return entry
}

// Restore looks up an entry by id. On a hit it becomes "current"; the
// sequence order is untouched (restoring an old entry does not promote it).
// A miss returns false, never an error, and mutates nothing.
func (s *Store) Restore(id uuid.UUID) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	for _, e := range s.entries {
		if e.ID == id {
			s.current = id
			return e, true
		}
	}
	return Entry{}, false
}

// Clear empties the history and unsets "current". Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	s.entries = nil
	s.current = uuid.Nil
}

// Entries returns a copy of the history, newest first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Current returns the entry the "current" pointer refers to, if any.
func (s *Store) Current() (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	if s.current == uuid.Nil {
		return Entry{}, false
	}
	for _, e := range s.entries {
		if e.ID == s.current {
			return e, true
		}
	}
	return Entry{}, false
}

// touch must be called with the mutex held.
func (s *Store) touch() {
	s.lastUsed = time.Now()
}

func (s *Store) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastUsed)
}
