package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// MemoryAssetRepository keeps the asset catalog in memory.
type MemoryAssetRepository struct {
	mu     sync.RWMutex
	assets map[string]domain.Asset
}

// NewMemoryAssetRepository creates an empty catalog.
func NewMemoryAssetRepository() *MemoryAssetRepository {
	return &MemoryAssetRepository{assets: make(map[string]domain.Asset)}
}

func (r *MemoryAssetRepository) Create(_ context.Context, asset *domain.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets[asset.ID] = *asset
	return nil
}

func (r *MemoryAssetRepository) GetByID(_ context.Context, id string) (*domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *MemoryAssetRepository) List(_ context.Context, filter AssetFilter) ([]domain.Asset, int, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	r.mu.RLock()
	matched := make([]domain.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		if filter.Category != nil && a.Category != *filter.Category {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Name), search) &&
			!strings.Contains(strings.ToLower(a.AssetCode), search) {
			continue
		}
		matched = append(matched, a)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].AssetCode < matched[j].AssetCode })
	start, end := pageBounds(len(matched), filter.Limit, filter.Offset)
	return matched[start:end], len(matched), nil
}

// MemoryBorrowRequestRepository keeps borrow requests in memory.
type MemoryBorrowRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]domain.BorrowRequest
	numbers  map[string]struct{}
}

// NewMemoryBorrowRequestRepository creates an empty store.
func NewMemoryBorrowRequestRepository() *MemoryBorrowRequestRepository {
	return &MemoryBorrowRequestRepository{
		requests: make(map[string]domain.BorrowRequest),
		numbers:  make(map[string]struct{}),
	}
}

func (r *MemoryBorrowRequestRepository) Create(_ context.Context, req *domain.BorrowRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.numbers[req.RequestNumber]; exists {
		return ErrDuplicateRequestNumber
	}
	r.requests[req.ID] = *req
	r.numbers[req.RequestNumber] = struct{}{}
	return nil
}

func (r *MemoryBorrowRequestRepository) Update(_ context.Context, req *domain.BorrowRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.requests[req.ID]
	if !ok {
		return ErrNotFound
	}
	current.Status = req.Status
	current.ApprovedBy = req.ApprovedBy
	current.RejectionReason = req.RejectionReason
	current.ActualReturnDate = req.ActualReturnDate
	current.UpdatedAt = req.UpdatedAt
	r.requests[req.ID] = current
	return nil
}

func (r *MemoryBorrowRequestRepository) GetByID(_ context.Context, id string) (*domain.BorrowRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &req, nil
}

func (r *MemoryBorrowRequestRepository) List(_ context.Context, filter BorrowFilter) ([]domain.BorrowRequest, int, error) {
	r.mu.RLock()
	matched := make([]domain.BorrowRequest, 0, len(r.requests))
	for _, req := range r.requests {
		if filter.BorrowerEmail != nil && !strings.EqualFold(req.Borrower.Email, *filter.BorrowerEmail) {
			continue
		}
		if filter.AssetID != nil && req.AssetID != *filter.AssetID {
			continue
		}
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		matched = append(matched, req)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	start, end := pageBounds(len(matched), filter.Limit, filter.Offset)
	return matched[start:end], len(matched), nil
}
