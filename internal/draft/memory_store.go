package draft

import (
	"context"
	"sync"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// MemoryStore keeps drafts in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]domain.TicketDraft
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]domain.TicketDraft)}
}

func (s *MemoryStore) Save(_ context.Context, id string, d domain.TicketDraft) error {
	if !ValidID(id) {
		return ErrInvalidID
	}
	s.mu.Lock()
	s.drafts[Key(id)] = d
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Load(_ context.Context, id string) (*domain.TicketDraft, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	s.mu.RLock()
	d, ok := s.drafts[Key(id)]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (s *MemoryStore) Clear(_ context.Context, id string) error {
	if !ValidID(id) {
		return ErrInvalidID
	}
	s.mu.Lock()
	delete(s.drafts, Key(id))
	s.mu.Unlock()
	return nil
}
