package dto

import (
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// AssetResponse is one catalog entry.
type AssetResponse struct {
	ID             string                `json:"id"`
	AssetCode      string                `json:"assetCode"`
	Name           string                `json:"name"`
	Category       domain.AssetCategory  `json:"category"`
	Brand          *string               `json:"brand,omitempty"`
	Model          *string               `json:"model,omitempty"`
	SerialNumber   *string               `json:"serialNumber,omitempty"`
	Specifications *string               `json:"specifications,omitempty"`
	Location       string                `json:"location"`
	Status         domain.AssetStatus    `json:"status"`
	Condition      domain.AssetCondition `json:"condition"`
	Notes          *string               `json:"notes,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// BorrowRequestResponse is a borrow request view.
type BorrowRequestResponse struct {
	ID                 string              `json:"id"`
	RequestNumber      string              `json:"requestNumber"`
	AssetID            string              `json:"assetId"`
	BorrowerName       string              `json:"borrowerName"`
	BorrowerEmail      string              `json:"borrowerEmail"`
	BorrowerPhone      string              `json:"borrowerPhone"`
	BorrowerUnit       string              `json:"borrowerUnit"`
	BorrowerNIM        *string             `json:"borrowerNIM,omitempty"`
	Purpose            string              `json:"purpose"`
	BorrowDate         string              `json:"borrowDate"`
	ExpectedReturnDate string              `json:"expectedReturnDate"`
	ActualReturnDate   *time.Time          `json:"actualReturnDate,omitempty"`
	Status             domain.BorrowStatus `json:"status"`
	ApprovedBy         *string             `json:"approvedBy,omitempty"`
	RejectionReason    *string             `json:"rejectionReason,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}
