package history

import (
	"sync"
	"time"
)

const sweepInterval = 5 * time.Minute

// Manager owns one Store per client session and evicts stores whose
// sessions have gone idle. Call Stop on shutdown.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Store
	capacity int
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a session manager with a background sweeper. ttl <= 0
// disables idle eviction.
func NewManager(capacity int, ttl time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[string]*Store),
		capacity: capacity,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	if ttl > 0 {
		go m.sweep()
	}
	return m
}

// Session returns the store for the given session id, creating it on first
// use.
func (m *Manager) Session(id string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.sessions[id]
	if !ok {
		store = NewStore(m.capacity)
		m.sessions[id] = store
	}
	return store
}

// Stop terminates the background sweeper.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Manager) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.evictIdle(time.Now())
		}
	}
}

func (m *Manager) evictIdle(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, store := range m.sessions {
		if store.idleSince(now) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
