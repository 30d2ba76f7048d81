package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// AssetFilter narrows the asset catalog.
type AssetFilter struct {
	Category *domain.AssetCategory
	Status   *domain.AssetStatus
	Search   string
	Limit    int
	Offset   int
}

// AssetRepository persists the asset catalog.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByID(ctx context.Context, id string) (*domain.Asset, error)
	List(ctx context.Context, filter AssetFilter) ([]domain.Asset, int, error)
}

// BorrowFilter narrows borrow request listings.
type BorrowFilter struct {
	BorrowerEmail *string
	AssetID       *string
	Status        *domain.BorrowStatus
	Limit         int
	Offset        int
}

// BorrowRequestRepository persists borrow requests.
type BorrowRequestRepository interface {
	Create(ctx context.Context, req *domain.BorrowRequest) error
	Update(ctx context.Context, req *domain.BorrowRequest) error
	GetByID(ctx context.Context, id string) (*domain.BorrowRequest, error)
	List(ctx context.Context, filter BorrowFilter) ([]domain.BorrowRequest, int, error)
}

type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository returns a gorm-backed asset repository.
func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	m := assetToModel(asset)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	asset.CreatedAt, asset.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *assetRepository) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	var m assetModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNoRows(err)
	}
	a := assetFromModel(m)
	return &a, nil
}

func (r *assetRepository) List(ctx context.Context, filter AssetFilter) ([]domain.Asset, int, error) {
	q := r.db.WithContext(ctx).Model(&assetModel{})
	if filter.Category != nil {
		q = q.Where("category = ?", string(*filter.Category))
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(asset_code) LIKE ?)", like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	var models []assetModel
	if err := q.Order("asset_code ASC").Limit(limit).Offset(max(filter.Offset, 0)).Find(&models).Error; err != nil {
		return nil, 0, err
	}
	out := make([]domain.Asset, 0, len(models))
	for _, m := range models {
		out = append(out, assetFromModel(m))
	}
	return out, int(total), nil
}

type borrowRequestRepository struct {
	db *gorm.DB
}

// NewBorrowRequestRepository returns a gorm-backed borrow request repository.
func NewBorrowRequestRepository(db *gorm.DB) BorrowRequestRepository {
	return &borrowRequestRepository{db: db}
}

func (r *borrowRequestRepository) Create(ctx context.Context, req *domain.BorrowRequest) error {
	m := borrowToModel(req)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRequestNumber
		}
		return err
	}
	return nil
}

func (r *borrowRequestRepository) Update(ctx context.Context, req *domain.BorrowRequest) error {
	res := r.db.WithContext(ctx).Model(&borrowRequestModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]any{
			"status":             string(req.Status),
			"approved_by":        req.ApprovedBy,
			"rejection_reason":   req.RejectionReason,
			"actual_return_date": req.ActualReturnDate,
			"updated_at":         req.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *borrowRequestRepository) GetByID(ctx context.Context, id string) (*domain.BorrowRequest, error) {
	var m borrowRequestModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNoRows(err)
	}
	b := borrowFromModel(m)
	return &b, nil
}

func (r *borrowRequestRepository) List(ctx context.Context, filter BorrowFilter) ([]domain.BorrowRequest, int, error) {
	q := r.db.WithContext(ctx).Model(&borrowRequestModel{})
	if filter.BorrowerEmail != nil {
		q = q.Where("LOWER(borrower_email) = ?", strings.ToLower(*filter.BorrowerEmail))
	}
	if filter.AssetID != nil {
		q = q.Where("asset_id = ?", *filter.AssetID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	var models []borrowRequestModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(max(filter.Offset, 0)).Find(&models).Error; err != nil {
		return nil, 0, err
	}
	out := make([]domain.BorrowRequest, 0, len(models))
	for _, m := range models {
		out = append(out, borrowFromModel(m))
	}
	return out, int(total), nil
}
