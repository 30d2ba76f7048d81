package domain

import "time"

// AssetCategory classifies IT assets.
type AssetCategory string

const (
	AssetCategoryComputer   AssetCategory = "computer"
	AssetCategoryLaptop     AssetCategory = "laptop"
	AssetCategoryMonitor    AssetCategory = "monitor"
	AssetCategoryPrinter    AssetCategory = "printer"
	AssetCategoryProjector  AssetCategory = "projector"
	AssetCategoryNetwork    AssetCategory = "network"
	AssetCategoryServer     AssetCategory = "server"
	AssetCategoryPeripheral AssetCategory = "peripheral"
	AssetCategorySoftware   AssetCategory = "software"
	AssetCategoryOther      AssetCategory = "other"
)

// Valid reports whether c is a known asset category.
func (c AssetCategory) Valid() bool {
	switch c {
	case AssetCategoryComputer, AssetCategoryLaptop, AssetCategoryMonitor, AssetCategoryPrinter,
		AssetCategoryProjector, AssetCategoryNetwork, AssetCategoryServer, AssetCategoryPeripheral,
		AssetCategorySoftware, AssetCategoryOther:
		return true
	}
	return false
}

// AssetStatus enumerates asset availability.
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "available"
	AssetStatusInUse       AssetStatus = "in_use"
	AssetStatusBorrowed    AssetStatus = "borrowed"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusDamaged     AssetStatus = "damaged"
	AssetStatusDisposed    AssetStatus = "disposed"
)

// Valid reports whether s is a known asset status.
func (s AssetStatus) Valid() bool {
	switch s {
	case AssetStatusAvailable, AssetStatusInUse, AssetStatusBorrowed,
		AssetStatusMaintenance, AssetStatusDamaged, AssetStatusDisposed:
		return true
	}
	return false
}

// AssetCondition describes physical condition.
type AssetCondition string

const (
	AssetConditionExcellent AssetCondition = "excellent"
	AssetConditionGood      AssetCondition = "good"
	AssetConditionFair      AssetCondition = "fair"
	AssetConditionPoor      AssetCondition = "poor"
)

// Asset is a borrowable piece of IT equipment.
type Asset struct {
	ID             string
	AssetCode      string
	Name           string
	Category       AssetCategory
	Brand          *string
	Model          *string
	SerialNumber   *string
	Specifications *string
	Location       string
	Status         AssetStatus
	Condition      AssetCondition
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BorrowStatus enumerates borrow request states.
type BorrowStatus string

const (
	BorrowStatusPending  BorrowStatus = "pending"
	BorrowStatusApproved BorrowStatus = "approved"
	BorrowStatusRejected BorrowStatus = "rejected"
	BorrowStatusBorrowed BorrowStatus = "borrowed"
	BorrowStatusReturned BorrowStatus = "returned"
	BorrowStatusOverdue  BorrowStatus = "overdue"
)

// Valid reports whether s is a known borrow status.
func (s BorrowStatus) Valid() bool {
	switch s {
	case BorrowStatusPending, BorrowStatusApproved, BorrowStatusRejected,
		BorrowStatusBorrowed, BorrowStatusReturned, BorrowStatusOverdue:
		return true
	}
	return false
}

// Borrower holds contact info for a borrow request.
type Borrower struct {
	Name  string
	Email string
	Phone string
	Unit  string
	NIM   *string
}

// BorrowRequest is a request to borrow an asset. It does not change the asset record.
type BorrowRequest struct {
	ID                 string
	RequestNumber      string
	AssetID            string
	Borrower           Borrower
	Purpose            string
	BorrowDate         time.Time
	ExpectedReturnDate time.Time
	ActualReturnDate   *time.Time
	Status             BorrowStatus
	ApprovedBy         *string
	RejectionReason    *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
