package dto

import (
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/sla"
)

// TicketResponse is the full ticket view.
type TicketResponse struct {
	ID            string                `json:"id"`
	TicketNumber  string                `json:"ticketNumber"`
	Category      domain.TicketCategory `json:"category"`
	CategoryLabel string                `json:"categoryLabel"`
	Priority      domain.TicketPriority `json:"priority"`
	PriorityLabel string                `json:"priorityLabel"`
	Status        domain.TicketStatus   `json:"status"`
	StatusLabel   string                `json:"statusLabel"`
	Subject       string                `json:"subject"`
	Description   string                `json:"description"`
	Reporter      ReporterResponse      `json:"reporter"`
	Assignee      *AssigneeResponse     `json:"assignee,omitempty"`
	SLADeadline   time.Time             `json:"slaDeadline"`
	SLAMet        *bool                 `json:"slaMet,omitempty"`
	SLA           SLAResponse           `json:"sla"`
	Attachments   []AttachmentResponse  `json:"attachments"`
	Activities    []ActivityResponse    `json:"activities"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
	ResolvedAt    *time.Time            `json:"resolvedAt,omitempty"`
	ClosedAt      *time.Time            `json:"closedAt,omitempty"`
	EscalatedAt   *time.Time            `json:"escalatedAt,omitempty"`
}

// TicketSummary is the list view.
type TicketSummary struct {
	ID           string                `json:"id"`
	TicketNumber string                `json:"ticketNumber"`
	Category     domain.TicketCategory `json:"category"`
	Priority     domain.TicketPriority `json:"priority"`
	Status       domain.TicketStatus   `json:"status"`
	Subject      string                `json:"subject"`
	ReporterName string                `json:"reporterName"`
	AssigneeName *string               `json:"assigneeName,omitempty"`
	SLADeadline  time.Time             `json:"slaDeadline"`
	SLA          SLAResponse           `json:"sla"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// ReporterResponse identifies the submitter.
type ReporterResponse struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Unit  *string `json:"unit,omitempty"`
}

// AssigneeResponse identifies the technician.
type AssigneeResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// SLAResponse is the countdown shown next to a ticket.
type SLAResponse struct {
	State     sla.State `json:"state"`
	Text      string    `json:"text"`
	IsOverdue bool      `json:"isOverdue"`
	IsWarning bool      `json:"isWarning"`
}

// AttachmentResponse is attachment metadata.
type AttachmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivityResponse is one audit trail entry.
type ActivityResponse struct {
	ID          string              `json:"id"`
	Type        domain.ActivityType `json:"type"`
	Description string              `json:"description"`
	UserName    *string             `json:"userName,omitempty"`
	OldValue    *string             `json:"oldValue,omitempty"`
	NewValue    *string             `json:"newValue,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// CreateTicketResponse is returned after submission.
type CreateTicketResponse struct {
	Ticket   TicketResponse `json:"ticket"`
	Replayed bool           `json:"replayed"`
}
