package mockdata

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
)

// Targets are the repositories that receive starter data.
type Targets struct {
	Tickets    repository.TicketRepository
	Activities repository.ActivityRepository
	Assets     repository.AssetRepository
	Borrows    repository.BorrowRequestRepository
	Users      repository.UserRepository
}

// PasswordHasher turns a plaintext password into a stored hash.
type PasswordHasher func(password string) (string, error)

// Seed inserts starter data, skipping records that already exist.
func Seed(ctx context.Context, t Targets, hash PasswordHasher, logger *zap.Logger) error {
	tickets := 0
	for _, ticket := range Tickets() {
		ticket := ticket
		err := t.Tickets.Create(ctx, &ticket)
		if errors.Is(err, repository.ErrDuplicateTicketNumber) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed ticket %s: %w", ticket.TicketNumber, err)
		}
		for i := range ticket.Activities {
			if err := t.Activities.Append(ctx, &ticket.Activities[i]); err != nil {
				return fmt.Errorf("seed activity for %s: %w", ticket.TicketNumber, err)
			}
		}
		tickets++
	}

	assets := 0
	for _, asset := range Assets() {
		asset := asset
		if _, err := t.Assets.GetByID(ctx, asset.ID); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("seed asset lookup %s: %w", asset.AssetCode, err)
		}
		if err := t.Assets.Create(ctx, &asset); err != nil {
			return fmt.Errorf("seed asset %s: %w", asset.AssetCode, err)
		}
		assets++
	}

	for _, req := range BorrowRequests() {
		req := req
		if err := t.Borrows.Create(ctx, &req); err != nil && !errors.Is(err, repository.ErrDuplicateRequestNumber) {
			return fmt.Errorf("seed borrow request %s: %w", req.RequestNumber, err)
		}
	}

	users := 0
	for _, su := range Users() {
		hashed, err := hash(su.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", su.User.Username, err)
		}
		user := su.User
		user.PasswordHash = hashed
		err = t.Users.Create(ctx, &user)
		if errors.Is(err, repository.ErrDuplicateUsername) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed user %s: %w", user.Username, err)
		}
		users++
	}

	logger.Info("mock data seeded",
		zap.Int("tickets", tickets),
		zap.Int("assets", assets),
		zap.Int("users", users),
	)
	return nil
}
