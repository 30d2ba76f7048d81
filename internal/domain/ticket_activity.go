package domain

import "time"

// ActivityType captures what happened in an activity entry.
type ActivityType string

const (
	ActivityCreated       ActivityType = "created"
	ActivityStatusChanged ActivityType = "status_changed"
	ActivityAssigned      ActivityType = "assigned"
	ActivityComment       ActivityType = "comment"
	ActivityAttachment    ActivityType = "attachment"
	ActivityEscalated     ActivityType = "escalated"
)

// SystemActor is the user name recorded for automated changes.
const SystemActor = "System"

// TicketActivity is an immutable audit trail entry.
type TicketActivity struct {
	ID          string
	TicketID    string
	Type        ActivityType
	Description string
	UserName    *string
	OldValue    *string
	NewValue    *string
	CreatedAt   time.Time
}
