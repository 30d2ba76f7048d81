// Package sla computes SLA deadlines and remaining time for tickets.
// All durations are wall-clock; no business-hours calendar is applied.
package sla

import (
	"fmt"
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// WarningThreshold is how close to the deadline a ticket starts warning.
const WarningThreshold = 4 * time.Hour

var responseHours = map[domain.TicketPriority]int{
	domain.TicketPriorityUrgent: 1,
	domain.TicketPriorityHigh:   4,
	domain.TicketPriorityMedium: 8,
	domain.TicketPriorityLow:    24,
}

var resolutionHours = map[domain.TicketPriority]int{
	domain.TicketPriorityUrgent: 4,
	domain.TicketPriorityHigh:   8,
	domain.TicketPriorityMedium: 24,
	domain.TicketPriorityLow:    72,
}

// ResponseHours returns the response target for p. Unknown priorities use medium.
func ResponseHours(p domain.TicketPriority) int {
	if h, ok := responseHours[p]; ok {
		return h
	}
	return responseHours[domain.TicketPriorityMedium]
}

// ResolutionHours returns the resolution target for p. Unknown priorities use medium.
func ResolutionHours(p domain.TicketPriority) int {
	if h, ok := resolutionHours[p]; ok {
		return h
	}
	return resolutionHours[domain.TicketPriorityMedium]
}

// Deadline is the tracked SLA deadline: createdAt plus the response target.
func Deadline(p domain.TicketPriority, createdAt time.Time) time.Time {
	return createdAt.Add(time.Duration(ResponseHours(p)) * time.Hour)
}

// ResolutionDeadline is createdAt plus the resolution target.
func ResolutionDeadline(p domain.TicketPriority, createdAt time.Time) time.Time {
	return createdAt.Add(time.Duration(ResolutionHours(p)) * time.Hour)
}

// Met reports whether a ticket resolved at resolvedAt met its deadline.
func Met(resolvedAt, deadline time.Time) bool {
	return !resolvedAt.After(deadline)
}

// State is the display classification of an SLA countdown.
type State string

const (
	StateNormal  State = "normal"
	StateWarning State = "warning"
	StateOverdue State = "overdue"
)

// Status is the remaining-time view of a deadline at a given instant.
type Status struct {
	State     State
	Text      string
	Remaining time.Duration
	IsOverdue bool
	IsWarning bool
}

// Remaining classifies deadline against now. Exactly one state holds.
func Remaining(deadline, now time.Time) Status {
	diff := deadline.Sub(now)
	if diff < 0 {
		over := -diff
		hours := int(over / time.Hour)
		minutes := int((over % time.Hour) / time.Minute)
		return Status{
			State:     StateOverdue,
			Text:      fmt.Sprintf("Terlambat %dj %dm", hours, minutes),
			Remaining: diff,
			IsOverdue: true,
		}
	}

	st := Status{State: StateNormal, Remaining: diff, Text: formatRemaining(diff)}
	if diff > 0 && diff <= WarningThreshold {
		st.State = StateWarning
		st.IsWarning = true
	}
	return st
}

func formatRemaining(d time.Duration) string {
	const day = 24 * time.Hour
	days := int(d / day)
	hours := int((d % day) / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	switch {
	case days > 0:
		return fmt.Sprintf("%dh %dj", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dj %dm", hours, minutes)
	default:
		return fmt.Sprintf("%d menit", minutes)
	}
}
