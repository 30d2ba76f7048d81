package dto

import (
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// ServiceResponse is one catalog service.
type ServiceResponse struct {
	ID                string                 `json:"id"`
	Slug              string                 `json:"slug"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description"`
	Category          domain.ServiceCategory `json:"category"`
	Status            domain.ServiceStatus   `json:"status"`
	URL               *string                `json:"url,omitempty"`
	SLAResponseTime   *string                `json:"slaResponseTime,omitempty"`
	SLAResolutionTime *string                `json:"slaResolutionTime,omitempty"`
	UptimePercentage  *float64               `json:"uptimePercentage,omitempty"`
	Features          []string               `json:"features"`
	Requirements      []string               `json:"requirements"`
	Procedures        []string               `json:"procedures"`
}

// IncidentResponse describes an ongoing disruption.
type IncidentResponse struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	StartedAt time.Time `json:"startedAt"`
}

// SystemServiceResponse is one status board row.
type SystemServiceResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      domain.ServiceStatus `json:"status"`
	Uptime      float64              `json:"uptime"`
	Incident    *IncidentResponse    `json:"incident,omitempty"`
}

// SystemStatusResponse is the status board.
type SystemStatusResponse struct {
	Overall   domain.ServiceStatus    `json:"overall"`
	Services  []SystemServiceResponse `json:"services"`
	CheckedAt time.Time               `json:"checkedAt"`
}

// AnnouncementResponse is a published notice.
type AnnouncementResponse struct {
	ID          string                      `json:"id"`
	Title       string                      `json:"title"`
	Content     string                      `json:"content"`
	Excerpt     string                      `json:"excerpt"`
	Priority    domain.AnnouncementPriority `json:"priority"`
	Category    string                      `json:"category"`
	PublishedAt time.Time                   `json:"publishedAt"`
	ExpiresAt   *time.Time                  `json:"expiresAt,omitempty"`
	IsPinned    bool                        `json:"isPinned"`
}

// FAQResponse is one FAQ entry.
type FAQResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}
