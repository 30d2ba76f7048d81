package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// MemoryTicketRepository keeps tickets in process memory. It is used when no database is configured.
type MemoryTicketRepository struct {
	mu       sync.RWMutex
	byID     map[string]*domain.Ticket
	byNumber map[string]string
}

// NewMemoryTicketRepository creates an empty store.
func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{
		byID:     make(map[string]*domain.Ticket),
		byNumber: make(map[string]string),
	}
}

func (r *MemoryTicketRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	key := strings.ToUpper(ticket.TicketNumber)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byNumber[key]; exists {
		return ErrDuplicateTicketNumber
	}
	stored := ticket.Clone()
	stored.Activities = nil
	stored.Attachments = nil
	r.byID[ticket.ID] = stored
	r.byNumber[key] = ticket.ID
	return nil
}

func (r *MemoryTicketRepository) Update(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.byID[ticket.ID]
	if !ok {
		return ErrNotFound
	}
	src := ticket.Clone()
	next := current.Clone()
	next.Status = src.Status
	next.SLAMet = src.SLAMet
	next.ResolvedAt = src.ResolvedAt
	next.ClosedAt = src.ClosedAt
	next.EscalatedAt = src.EscalatedAt
	next.Assignee = src.Assignee
	next.UpdatedAt = src.UpdatedAt
	r.byID[ticket.ID] = next
	return nil
}

func (r *MemoryTicketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t.Clone(), nil
}

// GetByNumber matches the full number case-insensitively. Partial numbers never match.
func (r *MemoryTicketRepository) GetByNumber(_ context.Context, number string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byNumber[strings.ToUpper(strings.TrimSpace(number))]
	if !ok {
		return nil, ErrNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *MemoryTicketRepository) List(_ context.Context, filter TicketFilter) ([]domain.Ticket, int, error) {
	r.mu.RLock()
	matched := make([]domain.Ticket, 0, len(r.byID))
	for _, t := range r.byID {
		if matchTicket(t, filter) {
			matched = append(matched, *t.Clone())
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	start, end := pageBounds(len(matched), filter.Limit, filter.Offset)
	return matched[start:end], len(matched), nil
}

func matchTicket(t *domain.Ticket, f TicketFilter) bool {
	if f.ReporterEmail != nil && !strings.EqualFold(t.Reporter.Email, *f.ReporterEmail) {
		return false
	}
	if f.AssigneeID != nil && (t.Assignee == nil || t.Assignee.ID != *f.AssigneeID) {
		return false
	}
	if len(f.Statuses) > 0 && !contains(f.Statuses, t.Status) {
		return false
	}
	if len(f.Categories) > 0 && !contains(f.Categories, t.Category) {
		return false
	}
	if len(f.Priorities) > 0 && !contains(f.Priorities, t.Priority) {
		return false
	}
	if f.DeadlineBefore != nil && !t.SLADeadline.Before(*f.DeadlineBefore) {
		return false
	}
	if f.NotEscalated && t.EscalatedAt != nil {
		return false
	}
	if f.SearchTerm != nil {
		term := strings.ToLower(strings.TrimSpace(*f.SearchTerm))
		if term != "" &&
			!strings.Contains(strings.ToLower(t.Subject), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) &&
			!strings.Contains(strings.ToLower(t.TicketNumber), term) &&
			!strings.Contains(strings.ToLower(t.Reporter.Name), term) {
			return false
		}
	}
	return true
}

func contains[T comparable](items []T, v T) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

func pageBounds(n, limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end := offset + limit
	if end > n {
		end = n
	}
	return offset, end
}

// MemoryActivityRepository keeps activities per ticket in insertion order.
type MemoryActivityRepository struct {
	mu       sync.RWMutex
	byTicket map[string][]domain.TicketActivity
}

// NewMemoryActivityRepository creates an empty store.
func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{byTicket: make(map[string][]domain.TicketActivity)}
}

func (r *MemoryActivityRepository) Append(_ context.Context, activity *domain.TicketActivity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTicket[activity.TicketID] = append(r.byTicket[activity.TicketID], *activity)
	return nil
}

func (r *MemoryActivityRepository) ListByTicket(_ context.Context, ticketID string) ([]domain.TicketActivity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.TicketActivity(nil), r.byTicket[ticketID]...), nil
}

// MemoryAttachmentRepository keeps attachment metadata per ticket.
type MemoryAttachmentRepository struct {
	mu       sync.RWMutex
	byTicket map[string][]domain.Attachment
}

// NewMemoryAttachmentRepository creates an empty store.
func NewMemoryAttachmentRepository() *MemoryAttachmentRepository {
	return &MemoryAttachmentRepository{byTicket: make(map[string][]domain.Attachment)}
}

func (r *MemoryAttachmentRepository) AddAll(_ context.Context, ticketID string, attachments []domain.Attachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTicket[ticketID] = append(r.byTicket[ticketID], attachments...)
	return nil
}

func (r *MemoryAttachmentRepository) ListByTicket(_ context.Context, ticketID string) ([]domain.Attachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Attachment(nil), r.byTicket[ticketID]...), nil
}
