package validation

import (
	"strings"
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// BorrowRequestInput is the asset borrowing form.
type BorrowRequestInput struct {
	AssetID            string `json:"assetId" validate:"required"`
	BorrowerName       string `json:"borrowerName" validate:"required,min=3,max=100"`
	BorrowerEmail      string `json:"borrowerEmail" validate:"required,email"`
	BorrowerPhone      string `json:"borrowerPhone" validate:"required,idphone"`
	BorrowerUnit       string `json:"borrowerUnit" validate:"required,max=150"`
	BorrowerNIM        string `json:"borrowerNIM" validate:"omitempty,max=30"`
	Purpose            string `json:"purpose" validate:"required,min=10,max=500"`
	BorrowDate         string `json:"borrowDate" validate:"required,isodate"`
	ExpectedReturnDate string `json:"expectedReturnDate" validate:"required,isodate"`
}

// ValidateBorrowRequest checks the form and that the return date is not before the borrow date.
func ValidateBorrowRequest(in BorrowRequestInput) (BorrowRequestInput, FieldErrors) {
	in.AssetID = strings.TrimSpace(in.AssetID)
	in.BorrowerName = strings.TrimSpace(in.BorrowerName)
	in.BorrowerEmail = strings.TrimSpace(in.BorrowerEmail)
	in.BorrowerPhone = strings.TrimSpace(in.BorrowerPhone)
	in.BorrowerUnit = strings.TrimSpace(in.BorrowerUnit)
	in.BorrowerNIM = strings.TrimSpace(in.BorrowerNIM)
	in.Purpose = strings.TrimSpace(in.Purpose)

	errs := Struct(in)
	_, dateErr := errs["expectedReturnDate"]
	_, borrowErr := errs["borrowDate"]
	if !dateErr && !borrowErr {
		borrow, _ := time.Parse(DateLayout, in.BorrowDate)
		ret, _ := time.Parse(DateLayout, in.ExpectedReturnDate)
		if ret.Before(borrow) {
			if errs == nil {
				errs = FieldErrors{}
			}
			errs["expectedReturnDate"] = "Tanggal pengembalian tidak boleh sebelum tanggal peminjaman"
		}
	}
	if len(errs) == 0 {
		return in, nil
	}
	return in, errs
}

// BorrowStatusInput is a staff decision on a borrow request.
type BorrowStatusInput struct {
	Status          domain.BorrowStatus `json:"status" validate:"required,borrowstatus"`
	RejectionReason string              `json:"rejectionReason" validate:"required_if=Status rejected,max=500"`
}

// ValidateBorrowStatus requires a reason when rejecting.
func ValidateBorrowStatus(in BorrowStatusInput) (BorrowStatusInput, FieldErrors) {
	in.RejectionReason = strings.TrimSpace(in.RejectionReason)
	return in, Struct(in)
}

// LoginInput is the staff login form.
type LoginInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// ValidateLogin checks credentials shape only.
func ValidateLogin(in LoginInput) (LoginInput, FieldErrors) {
	in.Username = strings.TrimSpace(in.Username)
	return in, Struct(in)
}

// ContactInput is the public contact form.
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=3,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required,min=20,max=2000"`
}

// ValidateContact checks the contact form.
func ValidateContact(in ContactInput) (ContactInput, FieldErrors) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	return in, Struct(in)
}
