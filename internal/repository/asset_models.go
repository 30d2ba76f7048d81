package repository

import (
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

const (
	AssetTable         = "assets"
	BorrowRequestTable = "borrow_requests"
)

type assetModel struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	AssetCode      string    `gorm:"size:50;uniqueIndex;not null"`
	Name           string    `gorm:"size:200;not null"`
	Category       string    `gorm:"size:30;index;not null"`
	Brand          *string   `gorm:"size:100"`
	Model          *string   `gorm:"size:100"`
	SerialNumber   *string   `gorm:"size:120"`
	Specifications *string   `gorm:"type:text"`
	Location       string    `gorm:"size:200;not null"`
	Status         string    `gorm:"size:20;index;not null"`
	Condition      string    `gorm:"size:20;not null"`
	Notes          *string   `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (assetModel) TableName() string { return AssetTable }

type borrowRequestModel struct {
	ID                 string     `gorm:"type:uuid;primaryKey"`
	RequestNumber      string     `gorm:"size:20;uniqueIndex;not null"`
	AssetID            string     `gorm:"type:uuid;index;not null"`
	BorrowerName       string     `gorm:"size:100;not null"`
	BorrowerEmail      string     `gorm:"size:200;index;not null"`
	BorrowerPhone      string     `gorm:"size:30;not null"`
	BorrowerUnit       string     `gorm:"size:150;not null"`
	BorrowerNIM        *string    `gorm:"column:borrower_nim;size:30"`
	Purpose            string     `gorm:"size:500;not null"`
	BorrowDate         time.Time  `gorm:"type:date;not null"`
	ExpectedReturnDate time.Time  `gorm:"type:date;not null"`
	ActualReturnDate   *time.Time `gorm:"type:date"`
	Status             string     `gorm:"size:20;index;not null"`
	ApprovedBy         *string    `gorm:"size:100"`
	RejectionReason    *string    `gorm:"size:500"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (borrowRequestModel) TableName() string { return BorrowRequestTable }

func assetFromModel(m assetModel) domain.Asset {
	return domain.Asset{
		ID:             m.ID,
		AssetCode:      m.AssetCode,
		Name:           m.Name,
		Category:       domain.AssetCategory(m.Category),
		Brand:          m.Brand,
		Model:          m.Model,
		SerialNumber:   m.SerialNumber,
		Specifications: m.Specifications,
		Location:       m.Location,
		Status:         domain.AssetStatus(m.Status),
		Condition:      domain.AssetCondition(m.Condition),
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func assetToModel(a *domain.Asset) assetModel {
	return assetModel{
		ID:             a.ID,
		AssetCode:      a.AssetCode,
		Name:           a.Name,
		Category:       string(a.Category),
		Brand:          a.Brand,
		Model:          a.Model,
		SerialNumber:   a.SerialNumber,
		Specifications: a.Specifications,
		Location:       a.Location,
		Status:         string(a.Status),
		Condition:      string(a.Condition),
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func borrowFromModel(m borrowRequestModel) domain.BorrowRequest {
	return domain.BorrowRequest{
		ID:            m.ID,
		RequestNumber: m.RequestNumber,
		AssetID:       m.AssetID,
		Borrower: domain.Borrower{
			Name:  m.BorrowerName,
			Email: m.BorrowerEmail,
			Phone: m.BorrowerPhone,
			Unit:  m.BorrowerUnit,
			NIM:   m.BorrowerNIM,
		},
		Purpose:            m.Purpose,
		BorrowDate:         m.BorrowDate,
		ExpectedReturnDate: m.ExpectedReturnDate,
		ActualReturnDate:   m.ActualReturnDate,
		Status:             domain.BorrowStatus(m.Status),
		ApprovedBy:         m.ApprovedBy,
		RejectionReason:    m.RejectionReason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func borrowToModel(b *domain.BorrowRequest) borrowRequestModel {
	return borrowRequestModel{
		ID:                 b.ID,
		RequestNumber:      b.RequestNumber,
		AssetID:            b.AssetID,
		BorrowerName:       b.Borrower.Name,
		BorrowerEmail:      b.Borrower.Email,
		BorrowerPhone:      b.Borrower.Phone,
		BorrowerUnit:       b.Borrower.Unit,
		BorrowerNIM:        b.Borrower.NIM,
		Purpose:            b.Purpose,
		BorrowDate:         b.BorrowDate,
		ExpectedReturnDate: b.ExpectedReturnDate,
		ActualReturnDate:   b.ActualReturnDate,
		Status:             string(b.Status),
		ApprovedBy:         b.ApprovedBy,
		RejectionReason:    b.RejectionReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
