package sla

import (
	"testing"
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

func TestHoursStrictlyOrdered(t *testing.T) {
	order := []domain.TicketPriority{
		domain.TicketPriorityUrgent,
		domain.TicketPriorityHigh,
		domain.TicketPriorityMedium,
		domain.TicketPriorityLow,
	}
	for i := 1; i < len(order); i++ {
		if ResponseHours(order[i-1]) >= ResponseHours(order[i]) {
			t.Fatalf("response hours not ordered at %s", order[i])
		}
		if ResolutionHours(order[i-1]) >= ResolutionHours(order[i]) {
			t.Fatalf("resolution hours not ordered at %s", order[i])
		}
	}
}

func TestDeadline(t *testing.T) {
	created := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	cases := map[domain.TicketPriority]time.Duration{
		domain.TicketPriorityUrgent: time.Hour,
		domain.TicketPriorityHigh:   4 * time.Hour,
		domain.TicketPriorityMedium: 8 * time.Hour,
		domain.TicketPriorityLow:    24 * time.Hour,
	}
	for p, want := range cases {
		if got := Deadline(p, created); !got.Equal(created.Add(want)) {
			t.Fatalf("%s: got %s want %s", p, got, created.Add(want))
		}
	}
	if got := ResolutionDeadline(domain.TicketPriorityLow, created); !got.Equal(created.Add(72 * time.Hour)) {
		t.Fatalf("unexpected resolution deadline %s", got)
	}
}

func TestUrgentScenario(t *testing.T) {
	created := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	deadline := Deadline(domain.TicketPriorityUrgent, created)
	if !deadline.Equal(time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected deadline %s", deadline)
	}

	st := Remaining(deadline, time.Date(2026, 2, 1, 8, 56, 0, 0, time.UTC))
	if !st.IsWarning || st.IsOverdue || st.State != StateWarning {
		t.Fatalf("expected warning, got %+v", st)
	}
	if st.Text != "4 menit" {
		t.Fatalf("unexpected text %q", st.Text)
	}

	st = Remaining(deadline, time.Date(2026, 2, 1, 9, 5, 0, 0, time.UTC))
	if !st.IsOverdue || st.IsWarning || st.State != StateOverdue {
		t.Fatalf("expected overdue, got %+v", st)
	}
	if st.Text != "Terlambat 0j 5m" {
		t.Fatalf("unexpected text %q", st.Text)
	}
}

func TestRemainingStates(t *testing.T) {
	deadline := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		now   time.Time
		state State
		text  string
	}{
		{"days ahead", deadline.Add(-(50*time.Hour + 30*time.Minute)), StateNormal, "2h 2j"},
		{"hours ahead", deadline.Add(-(5*time.Hour + 15*time.Minute)), StateNormal, "5j 15m"},
		{"exactly four hours", deadline.Add(-4 * time.Hour), StateWarning, "4j 0m"},
		{"at deadline", deadline, StateNormal, "0 menit"},
		{"one second late", deadline.Add(time.Second), StateOverdue, "Terlambat 0j 0m"},
		{"long overdue", deadline.Add(26*time.Hour + 7*time.Minute), StateOverdue, "Terlambat 26j 7m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := Remaining(deadline, tc.now)
			if st.State != tc.state || st.Text != tc.text {
				t.Fatalf("got %s %q, want %s %q", st.State, st.Text, tc.state, tc.text)
			}
			if st.IsOverdue && st.IsWarning {
				t.Fatal("overdue and warning are exclusive")
			}
			if st.IsOverdue != tc.now.After(deadline) {
				t.Fatal("overdue must hold iff now is after the deadline")
			}
		})
	}
}

func TestMet(t *testing.T) {
	deadline := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	if !Met(deadline, deadline) {
		t.Fatal("resolving at the deadline meets the SLA")
	}
	if Met(deadline.Add(time.Minute), deadline) {
		t.Fatal("resolving after the deadline misses the SLA")
	}
}
