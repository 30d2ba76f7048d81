package mockdata

import (
	"context"
	"regexp"
	"testing"

	"go.uber.org/zap"

	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
)

var ticketNumberPattern = regexp.MustCompile(`^TKT-\d{8}-\d{4}$`)

func TestTicketsAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, tk := range Tickets() {
		if !ticketNumberPattern.MatchString(tk.TicketNumber) {
			t.Fatalf("bad ticket number %q", tk.TicketNumber)
		}
		if seen[tk.TicketNumber] {
			t.Fatalf("duplicate ticket number %q", tk.TicketNumber)
		}
		seen[tk.TicketNumber] = true
		if !tk.Status.Valid() || !tk.Priority.Valid() || !tk.Category.Valid() {
			t.Fatalf("invalid enum on %s", tk.TicketNumber)
		}
		if len(tk.Activities) == 0 {
			t.Fatalf("%s has no activities", tk.TicketNumber)
		}
		for i := 1; i < len(tk.Activities); i++ {
			if tk.Activities[i].CreatedAt.Before(tk.Activities[i-1].CreatedAt) {
				t.Fatalf("%s activities out of order", tk.TicketNumber)
			}
		}
	}
}

func TestIDIsStable(t *testing.T) {
	if ID("ticket", "1") != ID("ticket", "1") {
		t.Fatal("ID must be deterministic")
	}
	if ID("ticket", "1") == ID("asset", "1") {
		t.Fatal("ID must depend on kind")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	targets := Targets{
		Tickets:    repository.NewMemoryTicketRepository(),
		Activities: repository.NewMemoryActivityRepository(),
		Assets:     repository.NewMemoryAssetRepository(),
		Borrows:    repository.NewMemoryBorrowRequestRepository(),
		Users:      repository.NewMemoryUserRepository(),
	}
	hash := func(p string) (string, error) { return "hashed:" + p, nil }

	for i := 0; i < 2; i++ {
		if err := Seed(ctx, targets, hash, zap.NewNop()); err != nil {
			t.Fatalf("seed run %d: %v", i, err)
		}
	}

	_, total, err := targets.Tickets.List(ctx, repository.TicketFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != len(Tickets()) {
		t.Fatalf("got %d tickets want %d", total, len(Tickets()))
	}

	first := Tickets()[0]
	acts, _ := targets.Activities.ListByTicket(ctx, first.ID)
	if len(acts) != len(first.Activities) {
		t.Fatalf("activities duplicated on reseed: got %d want %d", len(acts), len(first.Activities))
	}

	admin, err := targets.Users.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.PasswordHash != "hashed:admin123" {
		t.Fatalf("password not hashed through hasher")
	}
}
