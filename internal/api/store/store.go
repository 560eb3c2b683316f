package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"rent-or-buy/internal/montecarlo"
)

// entry is one stored batch of run results.
type entry struct {
	results   []montecarlo.RunResult
	expiresAt time.Time
}

// ResultStore keeps completed simulation batches in memory so clients can
// fetch per-run results after the summary response. Entries expire after a
// TTL; nothing is ever persisted.
type ResultStore struct {
	mu    sync.RWMutex
	store map[string]*entry
	ttl   time.Duration
}

func New(ttl time.Duration) *ResultStore {
	s := &ResultStore{
		store: make(map[string]*entry),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

// Put stores a batch and returns its id.
func (s *ResultStore) Put(results []montecarlo.RunResult) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[id] = &entry{
		results:   results,
		expiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get retrieves a batch if present and not expired.
func (s *ResultStore) Get(id string) ([]montecarlo.RunResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.store[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.results, true
}

// cleanup periodically removes expired entries.
func (s *ResultStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, e := range s.store {
			if now.After(e.expiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}
