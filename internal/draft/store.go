// Package draft caches unsubmitted ticket forms so they can be restored later.
package draft

import (
	"context"
	"errors"
	"regexp"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// KeyPrefix namespaces draft entries in the cache.
const KeyPrefix = "ticket-draft-storage:"

var (
	// ErrNotFound is returned when no draft exists for an ID.
	ErrNotFound = errors.New("draft not found")
	// ErrInvalidID is returned for IDs that cannot be used as cache keys.
	ErrInvalidID = errors.New("invalid draft id")
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// Store persists drafts by client-generated ID. Entries are best effort and may be evicted.
type Store interface {
	Save(ctx context.Context, id string, d domain.TicketDraft) error
	Load(ctx context.Context, id string) (*domain.TicketDraft, error)
	Clear(ctx context.Context, id string) error
}

// ValidID reports whether id is an acceptable draft ID.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Key returns the cache key for a draft ID.
func Key(id string) string {
	return KeyPrefix + id
}
