package repository

import (
	"context"
	"sync"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// CatalogRepository serves read-mostly portal content.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error)
	ListSystemServices(ctx context.Context) ([]domain.SystemService, error)
	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)
	ListFAQs(ctx context.Context) ([]domain.FAQ, error)
}

// CatalogContent is the initial content of a catalog.
type CatalogContent struct {
	Services       []domain.Service
	SystemServices []domain.SystemService
	Announcements  []domain.Announcement
	FAQs           []domain.FAQ
}

// MemoryCatalogRepository holds catalog content in memory.
type MemoryCatalogRepository struct {
	mu      sync.RWMutex
	content CatalogContent
}

// NewMemoryCatalogRepository wraps the given content.
func NewMemoryCatalogRepository(content CatalogContent) *MemoryCatalogRepository {
	return &MemoryCatalogRepository{content: content}
}

func (r *MemoryCatalogRepository) ListServices(_ context.Context) ([]domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Service(nil), r.content.Services...), nil
}

func (r *MemoryCatalogRepository) GetServiceBySlug(_ context.Context, slug string) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.content.Services {
		if s.Slug == slug {
			out := s
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryCatalogRepository) ListSystemServices(_ context.Context) ([]domain.SystemService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.SystemService(nil), r.content.SystemServices...), nil
}

func (r *MemoryCatalogRepository) ListAnnouncements(_ context.Context) ([]domain.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Announcement(nil), r.content.Announcements...), nil
}

func (r *MemoryCatalogRepository) ListFAQs(_ context.Context) ([]domain.FAQ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.FAQ(nil), r.content.FAQs...), nil
}
