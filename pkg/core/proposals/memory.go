package proposals

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps pending proposals in process memory. Expiry is lazy on
// Get plus a periodic sweep; both compare against the proposal's CreatedAt.
type MemoryStore struct {
	mu        sync.Mutex
	proposals map[string]Proposal
	ttl       time.Duration

	// now is swapped out in tests
	now func() time.Time
}

// NewMemoryStore creates an empty store expiring proposals after ttl.
// A non-positive ttl falls back to DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		proposals: make(map[string]Proposal),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, p Proposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.proposals[p.TripID] = p
	return nil
}

func (s *MemoryStore) Get(_ context.Context, tripID string) (Proposal, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals[tripID]
	if !ok {
		return Proposal{}, false, nil
	}
	if s.expired(p) {
		delete(s.proposals, tripID)
		return Proposal{}, false, nil
	}
	return p, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.proposals, tripID)
	return nil
}

func (s *MemoryStore) SweepExpired(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for tripID, p := range s.proposals {
		if s.expired(p) {
			delete(s.proposals, tripID)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) expired(p Proposal) bool {
	return s.now().Sub(p.CreatedAt) > s.ttl
}
