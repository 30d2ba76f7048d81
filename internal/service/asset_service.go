package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/events"
	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
	"github.com/pusdatin-umc/helpdesk-service/internal/validation"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

// AssetService serves the asset catalog and borrow requests.
type AssetService struct {
	assets     repository.AssetRepository
	borrows    repository.BorrowRequestRepository
	dispatcher events.Dispatcher
	numbers    *NumberGenerator
	logger     *zap.Logger
	now        func() time.Time
}

// AssetDependencies bundles collaborators for the asset service.
type AssetDependencies struct {
	AssetRepo  repository.AssetRepository
	BorrowRepo repository.BorrowRequestRepository
	Dispatcher events.Dispatcher
	Numbers    *NumberGenerator
	Logger     *zap.Logger
	Clock      func() time.Time
}

// AssetListFilter narrows the public asset catalog.
type AssetListFilter struct {
	Category domain.AssetCategory
	Status   domain.AssetStatus
	Search   string
	Pagination
}

// BorrowListFilter narrows borrow request listings.
type BorrowListFilter struct {
	BorrowerEmail string
	AssetID       string
	Status        domain.BorrowStatus
	Pagination
}

// NewAssetService constructs the service.
func NewAssetService(deps AssetDependencies) *AssetService {
	s := &AssetService{
		assets:     deps.AssetRepo,
		borrows:    deps.BorrowRepo,
		dispatcher: deps.Dispatcher,
		numbers:    deps.Numbers,
		logger:     deps.Logger,
		now:        deps.Clock,
	}
	if s.numbers == nil {
		s.numbers = NewBorrowNumberGenerator()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ListAssets pages through the catalog.
func (s *AssetService) ListAssets(ctx context.Context, filter AssetListFilter) (Page[domain.Asset], error) {
	limit, offset := filter.Pagination.LimitOffset()
	repoFilter := repository.AssetFilter{
		Search: strings.TrimSpace(filter.Search),
		Limit:  limit,
		Offset: offset,
	}
	if filter.Category != "" {
		if !filter.Category.Valid() {
			return Page[domain.Asset]{}, apperrors.NewBadRequest("Kategori aset tidak dikenal")
		}
		repoFilter.Category = &filter.Category
	}
	if filter.Status != "" {
		if !filter.Status.Valid() {
			return Page[domain.Asset]{}, apperrors.NewBadRequest("Status aset tidak dikenal")
		}
		repoFilter.Status = &filter.Status
	}
	assets, total, err := s.assets.List(ctx, repoFilter)
	if err != nil {
		return Page[domain.Asset]{}, apperrors.NewInternalError(err)
	}
	return newPage(assets, total, filter.Pagination), nil
}

// GetAsset returns one asset.
func (s *AssetService) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	asset, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Aset")
	}
	return asset, nil
}

// SubmitBorrowRequest records a pending request for an available asset.
func (s *AssetService) SubmitBorrowRequest(ctx context.Context, input validation.BorrowRequestInput) (*domain.BorrowRequest, error) {
	in, fieldErrs := validation.ValidateBorrowRequest(input)
	if fieldErrs != nil {
		return nil, fieldErrs.Err()
	}
	asset, err := s.assets.GetByID(ctx, in.AssetID)
	if err != nil {
		return nil, mapRepoError(err, "Aset")
	}
	if asset.Status != domain.AssetStatusAvailable {
		return nil, apperrors.NewConflict("Aset tidak tersedia untuk dipinjam")
	}

	borrowDate, _ := time.Parse(validation.DateLayout, in.BorrowDate)
	returnDate, _ := time.Parse(validation.DateLayout, in.ExpectedReturnDate)
	now := s.now().UTC()
	req := &domain.BorrowRequest{
		ID:      uuid.NewString(),
		AssetID: asset.ID,
		Borrower: domain.Borrower{
			Name:  in.BorrowerName,
			Email: in.BorrowerEmail,
			Phone: in.BorrowerPhone,
			Unit:  in.BorrowerUnit,
		},
		Purpose:            in.Purpose,
		BorrowDate:         borrowDate,
		ExpectedReturnDate: returnDate,
		Status:             domain.BorrowStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if in.BorrowerNIM != "" {
		req.Borrower.NIM = ptr(in.BorrowerNIM)
	}

	created := false
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		req.RequestNumber = s.numbers.Next(now)
		err := s.borrows.Create(ctx, req)
		if err == nil {
			created = true
			break
		}
		if !errors.Is(err, repository.ErrDuplicateRequestNumber) {
			return nil, apperrors.NewInternalError(err)
		}
	}
	if !created {
		return nil, apperrors.NewInternalError(fmt.Errorf("no free request number after %d attempts", maxNumberAttempts))
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventBorrowRequested,
		EntityID:  req.ID,
		Reference: req.RequestNumber,
		Actor:     events.Actor{Name: req.Borrower.Name},
		Payload: events.BorrowStatusChangedPayload{
			AssetID:   req.AssetID,
			NewStatus: req.Status,
		},
	})
	return req, nil
}

// GetBorrowRequest returns one request.
func (s *AssetService) GetBorrowRequest(ctx context.Context, id string) (*domain.BorrowRequest, error) {
	req, err := s.borrows.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Permohonan peminjaman")
	}
	return req, nil
}

// ListBorrowRequests pages through borrow requests.
func (s *AssetService) ListBorrowRequests(ctx context.Context, filter BorrowListFilter) (Page[domain.BorrowRequest], error) {
	limit, offset := filter.Pagination.LimitOffset()
	repoFilter := repository.BorrowFilter{Limit: limit, Offset: offset}
	if email := strings.TrimSpace(filter.BorrowerEmail); email != "" {
		repoFilter.BorrowerEmail = &email
	}
	if filter.AssetID != "" {
		repoFilter.AssetID = &filter.AssetID
	}
	if filter.Status != "" {
		if !filter.Status.Valid() {
			return Page[domain.BorrowRequest]{}, apperrors.NewBadRequest("Status peminjaman tidak dikenal")
		}
		repoFilter.Status = &filter.Status
	}
	reqs, total, err := s.borrows.List(ctx, repoFilter)
	if err != nil {
		return Page[domain.BorrowRequest]{}, apperrors.NewInternalError(err)
	}
	return newPage(reqs, total, filter.Pagination), nil
}

// UpdateBorrowStatus applies a staff decision to a borrow request.
func (s *AssetService) UpdateBorrowStatus(ctx context.Context, id string, input validation.BorrowStatusInput, actor Actor) (*domain.BorrowRequest, error) {
	in, fieldErrs := validation.ValidateBorrowStatus(input)
	if fieldErrs != nil {
		return nil, fieldErrs.Err()
	}
	req, err := s.borrows.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Permohonan peminjaman")
	}
	current := req.Status
	if !isValidBorrowTransition(current, in.Status) {
		return nil, apperrors.NewInvalidTransition(string(current), string(in.Status))
	}

	now := s.now().UTC()
	switch in.Status {
	case domain.BorrowStatusApproved:
		req.ApprovedBy = ptr(actor.Name)
	case domain.BorrowStatusRejected:
		req.RejectionReason = ptr(in.RejectionReason)
	case domain.BorrowStatusReturned:
		req.ActualReturnDate = &now
	}
	req.Status = in.Status
	req.UpdatedAt = now
	if err := s.borrows.Update(ctx, req); err != nil {
		return nil, mapRepoError(err, "Permohonan peminjaman")
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventBorrowStatusChanged,
		EntityID:  req.ID,
		Reference: req.RequestNumber,
		Actor:     actor.event(),
		Payload: events.BorrowStatusChangedPayload{
			AssetID:   req.AssetID,
			OldStatus: current,
			NewStatus: req.Status,
		},
	})
	return req, nil
}

func (s *AssetService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

var allowedBorrowTransitions = map[domain.BorrowStatus][]domain.BorrowStatus{
	domain.BorrowStatusPending:  {domain.BorrowStatusApproved, domain.BorrowStatusRejected},
	domain.BorrowStatusApproved: {domain.BorrowStatusBorrowed},
	domain.BorrowStatusBorrowed: {domain.BorrowStatusReturned, domain.BorrowStatusOverdue},
	domain.BorrowStatusOverdue:  {domain.BorrowStatusReturned},
}

func isValidBorrowTransition(current, next domain.BorrowStatus) bool {
	for _, candidate := range allowedBorrowTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}
