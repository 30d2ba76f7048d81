package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen        TicketStatus = "open"
	TicketStatusInProgress  TicketStatus = "in_progress"
	TicketStatusWaitingUser TicketStatus = "waiting_user"
	TicketStatusResolved    TicketStatus = "resolved"
	TicketStatusClosed      TicketStatus = "closed"
	TicketStatusEscalated   TicketStatus = "escalated"
)

// TicketStatuses lists every status in display order.
var TicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusWaitingUser,
	TicketStatusResolved,
	TicketStatusClosed,
	TicketStatusEscalated,
}

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusWaitingUser,
		TicketStatusResolved, TicketStatusClosed, TicketStatusEscalated:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s TicketStatus) Terminal() bool {
	return s == TicketStatusClosed
}

// Label returns the Indonesian display label.
func (s TicketStatus) Label() string {
	switch s {
	case TicketStatusOpen:
		return "Menunggu"
	case TicketStatusInProgress:
		return "Diproses"
	case TicketStatusWaitingUser:
		return "Menunggu User"
	case TicketStatusResolved:
		return "Selesai"
	case TicketStatusClosed:
		return "Ditutup"
	case TicketStatusEscalated:
		return "Dieskalasi"
	}
	return string(s)
}

// TicketPriority enumerates SLA urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketPriorities lists priorities from most to least urgent.
var TicketPriorities = []TicketPriority{
	TicketPriorityUrgent,
	TicketPriorityHigh,
	TicketPriorityMedium,
	TicketPriorityLow,
}

// Valid reports whether p is a known priority.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// Label returns the Indonesian display label.
func (p TicketPriority) Label() string {
	switch p {
	case TicketPriorityLow:
		return "Rendah"
	case TicketPriorityMedium:
		return "Sedang"
	case TicketPriorityHigh:
		return "Tinggi"
	case TicketPriorityUrgent:
		return "Mendesak"
	}
	return string(p)
}

// TicketCategory classifies the reported issue.
type TicketCategory string

const (
	TicketCategoryNetwork  TicketCategory = "network"
	TicketCategoryHardware TicketCategory = "hardware"
	TicketCategorySoftware TicketCategory = "software"
	TicketCategoryEmail    TicketCategory = "email"
	TicketCategoryAccount  TicketCategory = "account"
	TicketCategorySiakad   TicketCategory = "siakad"
	TicketCategoryLMS      TicketCategory = "lms"
	TicketCategoryWebsite  TicketCategory = "website"
	TicketCategoryOther    TicketCategory = "other"
)

// TicketCategories lists every category.
var TicketCategories = []TicketCategory{
	TicketCategoryNetwork,
	TicketCategoryHardware,
	TicketCategorySoftware,
	TicketCategoryEmail,
	TicketCategoryAccount,
	TicketCategorySiakad,
	TicketCategoryLMS,
	TicketCategoryWebsite,
	TicketCategoryOther,
}

// Valid reports whether c is a known category.
func (c TicketCategory) Valid() bool {
	for _, candidate := range TicketCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// Label returns the Indonesian display label.
func (c TicketCategory) Label() string {
	switch c {
	case TicketCategoryNetwork:
		return "Jaringan & Internet"
	case TicketCategoryHardware:
		return "Perangkat Keras"
	case TicketCategorySoftware:
		return "Perangkat Lunak"
	case TicketCategoryEmail:
		return "Email Institusi"
	case TicketCategoryAccount:
		return "Akun & SSO"
	case TicketCategorySiakad:
		return "SIAKAD"
	case TicketCategoryLMS:
		return "LMS / E-Learning"
	case TicketCategoryWebsite:
		return "Website Kampus"
	case TicketCategoryOther:
		return "Lainnya"
	}
	return string(c)
}

// Reporter identifies the person who submitted a ticket.
type Reporter struct {
	Name  string
	Email string
	Phone *string
	Unit  *string
}

// Assignee identifies the technician handling a ticket.
type Assignee struct {
	ID    string
	Name  string
	Email *string
}

// Attachment stores metadata for an uploaded file.
type Attachment struct {
	ID         string
	Name       string
	URL        string
	StorageKey string
	Size       int64
	MimeType   string
	CreatedAt  time.Time
}

// MaxAttachments caps files per ticket.
const MaxAttachments = 5

// Ticket is the aggregate for helpdesk requests.
type Ticket struct {
	ID           string
	TicketNumber string
	Category     TicketCategory
	Priority     TicketPriority
	Status       TicketStatus
	Subject      string
	Description  string
	Reporter     Reporter
	Assignee     *Assignee
	SLADeadline  time.Time
	SLAMet       *bool
	Attachments  []Attachment
	Activities   []TicketActivity
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ResolvedAt   *time.Time
	ClosedAt     *time.Time
	// EscalatedAt is set on the first escalation and survives later transitions,
	// so the SLA sweep escalates a ticket at most once.
	EscalatedAt *time.Time
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (t *Ticket) Clone() *Ticket {
	if t == nil {
		return nil
	}
	out := *t
	if t.Assignee != nil {
		a := *t.Assignee
		out.Assignee = &a
	}
	if t.SLAMet != nil {
		v := *t.SLAMet
		out.SLAMet = &v
	}
	if t.ResolvedAt != nil {
		v := *t.ResolvedAt
		out.ResolvedAt = &v
	}
	if t.ClosedAt != nil {
		v := *t.ClosedAt
		out.ClosedAt = &v
	}
	if t.EscalatedAt != nil {
		v := *t.EscalatedAt
		out.EscalatedAt = &v
	}
	out.Attachments = append([]Attachment(nil), t.Attachments...)
	out.Activities = append([]TicketActivity(nil), t.Activities...)
	return &out
}
