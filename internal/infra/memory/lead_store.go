package memory

import (
	"context"
	"sync"

	"area-match-service/internal/domain"
)

// LeadStore keeps contact leads in memory, in submission order. The default
// when no Redis is configured; suitable for development and tests.
type LeadStore struct {
	mu    sync.RWMutex
	leads []domain.Lead
}

func NewLeadStore() *LeadStore {
	return &LeadStore{}
}

func (s *LeadStore) SaveLead(_ context.Context, lead domain.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, lead)
	return nil
}

// Leads returns a copy of everything stored so far.
func (s *LeadStore) Leads() []domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}
