package events

import (
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated         EventType = "ticket_created"
	EventTicketStatusChanged   EventType = "ticket_status_changed"
	EventTicketAssigned        EventType = "ticket_assigned"
	EventTicketCommentAdded    EventType = "ticket_comment_added"
	EventTicketAttachmentAdded EventType = "ticket_attachment_added"
	EventTicketEscalated       EventType = "ticket_escalated"
	EventBorrowRequested       EventType = "borrow_requested"
	EventBorrowStatusChanged   EventType = "borrow_status_changed"
)

// AllEventTypes lists every event type, for subscribers interested in all of them.
var AllEventTypes = []EventType{
	EventTicketCreated,
	EventTicketStatusChanged,
	EventTicketAssigned,
	EventTicketCommentAdded,
	EventTicketAttachmentAdded,
	EventTicketEscalated,
	EventBorrowRequested,
	EventBorrowStatusChanged,
}

// Actor is the person or process that caused an event.
type Actor struct {
	Name   string  `json:"name"`
	UserID *string `json:"user_id,omitempty"`
}

// SystemActor marks automated changes.
var SystemActor = Actor{Name: domain.SystemActor}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Reference string      `json:"reference"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Category    domain.TicketCategory `json:"category"`
	Priority    domain.TicketPriority `json:"priority"`
	SLADeadline time.Time             `json:"sla_deadline"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
	Note      string              `json:"note,omitempty"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AssigneeID   string `json:"assignee_id"`
	AssigneeName string `json:"assignee_name"`
}

// TicketCommentAddedPayload payload.
type TicketCommentAddedPayload struct {
	ActivityID  string `json:"activity_id"`
	BodyPreview string `json:"body_preview"`
}

// TicketAttachmentAddedPayload payload.
type TicketAttachmentAddedPayload struct {
	AttachmentIDs []string `json:"attachment_ids"`
}

// BorrowStatusChangedPayload payload.
type BorrowStatusChangedPayload struct {
	AssetID   string              `json:"asset_id"`
	OldStatus domain.BorrowStatus `json:"old_status"`
	NewStatus domain.BorrowStatus `json:"new_status"`
}
