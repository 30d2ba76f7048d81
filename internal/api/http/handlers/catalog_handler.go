package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pusdatin-umc/helpdesk-service/internal/api/dto"
	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/service"
	"github.com/pusdatin-umc/helpdesk-service/internal/validation"
)

// CatalogHandler serves services, status, announcements, FAQ and the contact form.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// ListServices GET /services.
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.catalog.Services(c.UserContext(), domain.ServiceCategory(c.Query("category")))
	if err != nil {
		return err
	}
	out := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, serviceResponse(&services[i]))
	}
	return respond(c, http.StatusOK, out, "")
}

// GetService GET /services/:slug.
func (h *CatalogHandler) GetService(c *fiber.Ctx) error {
	svc, err := h.catalog.Service(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, serviceResponse(svc), "")
}

// SystemStatus GET /services/status.
func (h *CatalogHandler) SystemStatus(c *fiber.Ctx) error {
	board, err := h.catalog.SystemStatus(c.UserContext())
	if err != nil {
		return err
	}
	resp := dto.SystemStatusResponse{
		Overall:   board.Overall,
		Services:  make([]dto.SystemServiceResponse, 0, len(board.Services)),
		CheckedAt: board.CheckedAt,
	}
	for _, s := range board.Services {
		row := dto.SystemServiceResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Status:      s.Status,
			Uptime:      s.Uptime,
		}
		if s.Incident != nil {
			row.Incident = &dto.IncidentResponse{Title: s.Incident.Title, Message: s.Incident.Message, StartedAt: s.Incident.StartedAt}
		}
		resp.Services = append(resp.Services, row)
	}
	return respond(c, http.StatusOK, resp, "")
}

// Announcements GET /announcements?pinned=&limit=.
func (h *CatalogHandler) Announcements(c *fiber.Ctx) error {
	items, err := h.catalog.Announcements(c.UserContext(), service.AnnouncementQuery{
		PinnedOnly: c.QueryBool("pinned"),
		Limit:      parseInt(c.Query("limit"), 0),
	})
	if err != nil {
		return err
	}
	out := make([]dto.AnnouncementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, dto.AnnouncementResponse{
			ID:          a.ID,
			Title:       a.Title,
			Content:     a.Content,
			Excerpt:     a.Excerpt,
			Priority:    a.Priority,
			Category:    a.Category,
			PublishedAt: a.PublishedAt,
			ExpiresAt:   a.ExpiresAt,
			IsPinned:    a.IsPinned,
		})
	}
	return respond(c, http.StatusOK, out, "")
}

// FAQs GET /faq?category=.
func (h *CatalogHandler) FAQs(c *fiber.Ctx) error {
	faqs, err := h.catalog.FAQs(c.UserContext(), c.Query("category"))
	if err != nil {
		return err
	}
	out := make([]dto.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, dto.FAQResponse{ID: f.ID, Question: f.Question, Answer: f.Answer, Category: f.Category, Order: f.Order})
	}
	return respond(c, http.StatusOK, out, "")
}

// FAQCategories GET /faq/categories.
func (h *CatalogHandler) FAQCategories(c *fiber.Ctx) error {
	cats, err := h.catalog.FAQCategories(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, cats, "")
}

// Contact POST /contact.
func (h *CatalogHandler) Contact(c *fiber.Ctx) error {
	var req validation.ContactInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.catalog.SubmitContact(c.UserContext(), req); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "Pesan Anda telah terkirim")
}

func serviceResponse(s *domain.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:                s.ID,
		Slug:              s.Slug,
		Name:              s.Name,
		Description:       s.Description,
		Category:          s.Category,
		Status:            s.Status,
		URL:               s.URL,
		SLAResponseTime:   s.SLAResponseTime,
		SLAResolutionTime: s.SLAResolutionTime,
		UptimePercentage:  s.UptimePercentage,
		Features:          nonNil(s.Features),
		Requirements:      nonNil(s.Requirements),
		Procedures:        nonNil(s.Procedures),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
