package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontsmith/fontsmith-backend/internal/domain"
)

func record(s *Store, prompt string) Entry {
	return s.Record(
		domain.StyleRequest{Prompt: prompt},
		domain.SuggestionResult{ResponseText: "for " + prompt},
	)
}

func TestRecord_NewestFirst(t *testing.T) {
	t.Parallel()

	s := NewStore(DefaultCapacity)
	record(s, "first")
	record(s, "second")
	record(s, "third")

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Request.Prompt)
	assert.Equal(t, "second", entries[1].Request.Prompt)
	assert.Equal(t, "first", entries[2].Request.Prompt)
}

func TestRecord_BoundAtCapacity(t *testing.T) {
	t.Parallel()

	s := NewStore(DefaultCapacity)
	for i := 1; i <= 11; i++ {
		record(s, fmt.Sprintf("search %d", i))
	}

	entries := s.Entries()
	require.Len(t, entries, 10)

	// The 11th insert is at index 0, the 1st insert is gone.
	assert.Equal(t, "search 11", entries[0].Request.Prompt)
	assert.Equal(t, "search 2", entries[9].Request.Prompt)
	for _, e := range entries {
		assert.NotEqual(t, "search 1", e.Request.Prompt)
	}
}

func TestRecord_SetsCurrentAndTrimsPrompt(t *testing.T) {
	t.Parallel()

	s := NewStore(DefaultCapacity)
	entry := record(s, "  padded prompt  ")

	assert.Equal(t, "padded prompt", entry.Request.Prompt)

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, entry.ID, current.ID)
}

func TestRestore_DoesNotReorder(t *testing.T) {
	t.Parallel()

	s := NewStore(DefaultCapacity)
	oldest := record(s, "oldest")
	record(s, "middle")
	record(s, "newest")

	got, ok := s.Restore(oldest.ID)
	require.True(t, ok)
	assert.Equal(t, oldest.ID, got.ID)
	assert.Equal(t, "oldest", got.Request.Prompt)

	// Restoring promotes "current", never the sequence position.
	entries := s.Entries()
	assert.Equal(t, "newest", entries[0].Request.Prompt)
	assert.Equal(t, "oldest", entries[2].Request.Prompt)

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, oldest.ID, current.ID)
}

func TestRestore_MissIsNotAFault(t *testing.T) {
	t.Parallel()

	s := NewStore(DefaultCapacity)
	record(s, "only")
	before := s.Entries()

	_, ok := s.Restore(uuid.New())
	assert.False(t, ok)
	assert.Equal(t, before, s.Entries(), "a miss must not mutate the cache")
}

func TestClear_IsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewStore(DefaultCapacity)
	entry := record(s, "something")

	s.Clear()
	s.Clear()

	assert.Empty(t, s.Entries())
	_, ok := s.Current()
	assert.False(t, ok)

	_, ok = s.Restore(entry.ID)
	assert.False(t, ok, "restore after clear must always miss")
}

func TestNewStore_NonPositiveCapacityDefaults(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	for i := 0; i < DefaultCapacity+5; i++ {
		record(s, fmt.Sprintf("p%d", i))
	}
	assert.Len(t, s.Entries(), DefaultCapacity)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	t.Parallel()

	m := NewManager(DefaultCapacity, 0)
	defer m.Stop()

	a := m.Session("session-a")
	b := m.Session("session-b")
	record(a, "from a")

	assert.Len(t, a.Entries(), 1)
	assert.Empty(t, b.Entries())

	// The same id always resolves to the same store.
	assert.Same(t, a, m.Session("session-a"))
}

func TestManager_EvictIdle(t *testing.T) {
	t.Parallel()

	m := NewManager(DefaultCapacity, time.Minute)
	defer m.Stop()

	m.Session("stale")
	m.evictIdle(time.Now().Add(2 * time.Minute))

	m.mu.Lock()
	_, ok := m.sessions["stale"]
	m.mu.Unlock()
	assert.False(t, ok, "idle session should be evicted")
}
