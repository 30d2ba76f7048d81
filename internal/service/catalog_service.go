package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
	"github.com/pusdatin-umc/helpdesk-service/internal/validation"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

// StatusBoard is the system status page.
type StatusBoard struct {
	Overall   domain.ServiceStatus
	Services  []domain.SystemService
	CheckedAt time.Time
}

// AnnouncementQuery narrows announcement listings. Limit 0 means all.
type AnnouncementQuery struct {
	PinnedOnly bool
	Limit      int
}

// CatalogService serves read-only portal content.
type CatalogService struct {
	catalog repository.CatalogRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewCatalogService constructs the service.
func NewCatalogService(catalog repository.CatalogRepository, logger *zap.Logger, clock func() time.Time) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = time.Now
	}
	return &CatalogService{catalog: catalog, logger: logger, now: clock}
}

// Services lists the service catalog, optionally for one category.
func (s *CatalogService) Services(ctx context.Context, category domain.ServiceCategory) ([]domain.Service, error) {
	services, err := s.catalog.ListServices(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if category == "" {
		return services, nil
	}
	out := make([]domain.Service, 0, len(services))
	for _, svc := range services {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	return out, nil
}

// Service returns one catalog entry by slug.
func (s *CatalogService) Service(ctx context.Context, slug string) (*domain.Service, error) {
	svc, err := s.catalog.GetServiceBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, mapRepoError(err, "Layanan")
	}
	return svc, nil
}

// SystemStatus builds the status board with an overall state.
func (s *CatalogService) SystemStatus(ctx context.Context) (*StatusBoard, error) {
	services, err := s.catalog.ListSystemServices(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &StatusBoard{
		Overall:   overallStatus(services),
		Services:  services,
		CheckedAt: s.now().UTC(),
	}, nil
}

// overallStatus is operational only when every service is, major_outage when any service
// is down and degraded otherwise.
func overallStatus(services []domain.SystemService) domain.ServiceStatus {
	overall := domain.ServiceStatusOperational
	for _, svc := range services {
		switch svc.Status {
		case domain.ServiceStatusOperational:
		case domain.ServiceStatusMajorOutage:
			return domain.ServiceStatusMajorOutage
		default:
			overall = domain.ServiceStatusDegraded
		}
	}
	return overall
}

// Announcements returns unexpired announcements, pinned first then newest first.
func (s *CatalogService) Announcements(ctx context.Context, q AnnouncementQuery) ([]domain.Announcement, error) {
	all, err := s.catalog.ListAnnouncements(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	now := s.now()
	out := make([]domain.Announcement, 0, len(all))
	for _, a := range all {
		if a.ExpiresAt != nil && !a.ExpiresAt.After(now) {
			continue
		}
		if q.PinnedOnly && !a.IsPinned {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// FAQs returns active entries in display order, optionally for one category.
func (s *CatalogService) FAQs(ctx context.Context, category string) ([]domain.FAQ, error) {
	all, err := s.catalog.ListFAQs(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	category = strings.TrimSpace(category)
	out := make([]domain.FAQ, 0, len(all))
	for _, f := range all {
		if !f.IsActive {
			continue
		}
		if category != "" && !strings.EqualFold(f.Category, category) {
			continue
		}
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

// FAQCategories lists categories of active FAQs in first-seen display order.
func (s *CatalogService) FAQCategories(ctx context.Context) ([]string, error) {
	faqs, err := s.FAQs(ctx, "")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	out := []string{}
	for _, f := range faqs {
		if !seen[f.Category] {
			seen[f.Category] = true
			out = append(out, f.Category)
		}
	}
	return out, nil
}

// SubmitContact validates the contact form. Messages are only logged.
func (s *CatalogService) SubmitContact(_ context.Context, input validation.ContactInput) error {
	in, fieldErrs := validation.ValidateContact(input)
	if fieldErrs != nil {
		return fieldErrs.Err()
	}
	s.logger.Info("contact message received",
		zap.String("name", in.Name),
		zap.String("email", in.Email),
		zap.String("subject", in.Subject),
		zap.String("preview", stringPreview(in.Message, 80)),
	)
	return nil
}
