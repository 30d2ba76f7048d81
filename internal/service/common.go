package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/events"
	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

// Actor identifies who performs a change. Anonymous reporters have no UserID.
type Actor struct {
	UserID string
	Name   string
}

// SystemActor performs automated changes.
var SystemActor = Actor{Name: domain.SystemActor}

func (a Actor) event() events.Actor {
	out := events.Actor{Name: a.Name}
	if a.UserID != "" {
		id := a.UserID
		out.UserID = &id
	}
	return out
}

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page    int
	PerPage int
}

// Normalize applies defaults and bounds.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	return p
}

// LimitOffset converts the page to repository bounds.
func (p Pagination) LimitOffset() (int, int) {
	p = p.Normalize()
	return p.PerPage, (p.Page - 1) * p.PerPage
}

// Page is one page of results.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

func newPage[T any](items []T, total int, p Pagination) Page[T] {
	p = p.Normalize()
	if items == nil {
		items = []T{}
	}
	pages := (total + p.PerPage - 1) / p.PerPage
	return Page[T]{Items: items, Total: total, Page: p.Page, PerPage: p.PerPage, TotalPages: pages}
}

// mapRepoError turns repository sentinels into API errors.
func mapRepoError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(resource)
	}
	var de *apperrors.DomainError
	if errors.As(err, &de) {
		return err
	}
	return apperrors.NewInternalError(err)
}

// maxNumberAttempts bounds retries when a generated number collides.
const maxNumberAttempts = 10

// NumberGenerator produces PREFIX-YYYYMMDD-NNNN references with a random suffix.
type NumberGenerator struct {
	prefix   string
	min, max int
	intn     func(n int) int
}

// NewTicketNumberGenerator yields TKT numbers with suffixes 1000..9999.
func NewTicketNumberGenerator() *NumberGenerator {
	return &NumberGenerator{prefix: "TKT", min: 1000, max: 9999, intn: rand.Intn}
}

// NewBorrowNumberGenerator yields BRW numbers with suffixes 0001..9999.
func NewBorrowNumberGenerator() *NumberGenerator {
	return &NumberGenerator{prefix: "BRW", min: 1, max: 9999, intn: rand.Intn}
}

// Next returns a number for the UTC date of t.
func (g *NumberGenerator) Next(t time.Time) string {
	suffix := g.min + g.intn(g.max-g.min+1)
	return fmt.Sprintf("%s-%s-%04d", g.prefix, t.UTC().Format("20060102"), suffix)
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func ptr[T any](v T) *T { return &v }
