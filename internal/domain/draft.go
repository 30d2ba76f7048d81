package domain

import "time"

// TicketDraft is an unsubmitted ticket form cached for later restore.
type TicketDraft struct {
	Category      TicketCategory `json:"category,omitempty"`
	Subject       string         `json:"subject"`
	Description   string         `json:"description"`
	Priority      TicketPriority `json:"priority,omitempty"`
	ReporterName  string         `json:"reporterName"`
	ReporterEmail string         `json:"reporterEmail"`
	ReporterPhone string         `json:"reporterPhone"`
	ReporterUnit  string         `json:"reporterUnit"`
	LastSaved     *time.Time     `json:"lastSaved,omitempty"`
}

// Empty reports whether the draft has nothing worth saving.
func (d TicketDraft) Empty() bool {
	return d.Subject == "" && d.Description == ""
}
