package domain

import "time"

// ServiceStatus enumerates operational states of a campus service.
type ServiceStatus string

const (
	ServiceStatusOperational   ServiceStatus = "operational"
	ServiceStatusDegraded      ServiceStatus = "degraded"
	ServiceStatusPartialOutage ServiceStatus = "partial_outage"
	ServiceStatusMajorOutage   ServiceStatus = "major_outage"
	ServiceStatusMaintenance   ServiceStatus = "maintenance"
)

// ServiceCategory groups services.
type ServiceCategory string

const (
	ServiceCategoryAcademic       ServiceCategory = "academic"
	ServiceCategoryNetwork        ServiceCategory = "network"
	ServiceCategoryCommunication  ServiceCategory = "communication"
	ServiceCategoryLearning       ServiceCategory = "learning"
	ServiceCategoryAdministration ServiceCategory = "administration"
)

// Service describes an IT service offered by Pusdatin.
type Service struct {
	ID                string
	Slug              string
	Name              string
	Description       string
	Category          ServiceCategory
	Status            ServiceStatus
	URL               *string
	SLAResponseTime   *string
	SLAResolutionTime *string
	UptimePercentage  *float64
	Features          []string
	Requirements      []string
	Procedures        []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Incident is an ongoing disruption of a system.
type Incident struct {
	Title     string
	Message   string
	StartedAt time.Time
}

// SystemService is an entry on the status board.
type SystemService struct {
	ID          string
	Name        string
	Description string
	Status      ServiceStatus
	Uptime      float64
	Incident    *Incident
}

// AnnouncementPriority ranks announcements.
type AnnouncementPriority string

const (
	AnnouncementPriorityLow      AnnouncementPriority = "low"
	AnnouncementPriorityNormal   AnnouncementPriority = "normal"
	AnnouncementPriorityHigh     AnnouncementPriority = "high"
	AnnouncementPriorityCritical AnnouncementPriority = "critical"
)

// Announcement is a published notice.
type Announcement struct {
	ID          string
	Title       string
	Content     string
	Excerpt     string
	Priority    AnnouncementPriority
	Category    string
	PublishedAt time.Time
	ExpiresAt   *time.Time
	IsPinned    bool
}

// FAQ is a frequently asked question entry.
type FAQ struct {
	ID       string
	Question string
	Answer   string
	Category string
	Order    int
	IsActive bool
}
