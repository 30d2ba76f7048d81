package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
	"github.com/pusdatin-umc/helpdesk-service/internal/validation"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

func newAssetFixture(t *testing.T) (*AssetService, *recordingDispatcher) {
	t.Helper()
	assets := repository.NewMemoryAssetRepository()
	ctx := context.Background()
	for _, a := range []domain.Asset{
		{ID: "ast-001", AssetCode: "PRJ-001", Name: "Proyektor Epson", Category: domain.AssetCategoryProjector, Status: domain.AssetStatusAvailable},
		{ID: "ast-002", AssetCode: "LPT-001", Name: "Laptop Lenovo", Category: domain.AssetCategoryLaptop, Status: domain.AssetStatusMaintenance},
	} {
		a := a
		if err := assets.Create(ctx, &a); err != nil {
			t.Fatalf("seed asset: %v", err)
		}
	}
	dispatcher := &recordingDispatcher{}
	clock := &fakeClock{now: time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)}
	svc := NewAssetService(AssetDependencies{
		AssetRepo:  assets,
		BorrowRepo: repository.NewMemoryBorrowRequestRepository(),
		Dispatcher: dispatcher,
		Clock:      clock.Now,
	})
	return svc, dispatcher
}

func borrowInput(assetID string) validation.BorrowRequestInput {
	return validation.BorrowRequestInput{
		AssetID:            assetID,
		BorrowerName:       "Siti Nurhaliza",
		BorrowerEmail:      "siti@umc.ac.id",
		BorrowerPhone:      "081234567890",
		BorrowerUnit:       "Fakultas Teknik",
		Purpose:            "Presentasi seminar proposal",
		BorrowDate:         "2026-02-10",
		ExpectedReturnDate: "2026-02-12",
	}
}

func TestSubmitBorrowRequest(t *testing.T) {
	svc, dispatcher := newAssetFixture(t)
	req, err := svc.SubmitBorrowRequest(context.Background(), borrowInput("ast-001"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if req.Status != domain.BorrowStatusPending {
		t.Fatalf("status %s want pending", req.Status)
	}
	if !strings.HasPrefix(req.RequestNumber, "BRW-20260209-") {
		t.Fatalf("unexpected request number %s", req.RequestNumber)
	}
	if req.BorrowDate.Format(validation.DateLayout) != "2026-02-10" {
		t.Fatalf("borrow date %v", req.BorrowDate)
	}
	if len(dispatcher.types()) != 1 {
		t.Fatalf("expected one event")
	}
}

func TestSubmitBorrowRequestRejects(t *testing.T) {
	svc, _ := newAssetFixture(t)
	cases := []struct {
		name    string
		assetID string
		code    string
	}{
		{"unavailable asset", "ast-002", "CONFLICT"},
		{"unknown asset", "ast-404", "NOT_FOUND"},
		{"missing asset id", "", "VALIDATION_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitBorrowRequest(context.Background(), borrowInput(tc.assetID))
			if !apperrors.IsCode(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestBorrowLifecycle(t *testing.T) {
	svc, _ := newAssetFixture(t)
	ctx := context.Background()
	admin := Actor{UserID: "u-2", Name: "Admin Aset"}

	req, err := svc.SubmitBorrowRequest(ctx, borrowInput("ast-001"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.UpdateBorrowStatus(ctx, req.ID, validation.BorrowStatusInput{Status: domain.BorrowStatusReturned}, admin); !apperrors.IsCode(err, "INVALID_TRANSITION") {
		t.Fatalf("pending->returned must be rejected, got %v", err)
	}

	approved, err := svc.UpdateBorrowStatus(ctx, req.ID, validation.BorrowStatusInput{Status: domain.BorrowStatusApproved}, admin)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != "Admin Aset" {
		t.Fatalf("approver not recorded")
	}

	for _, next := range []domain.BorrowStatus{domain.BorrowStatusBorrowed, domain.BorrowStatusOverdue, domain.BorrowStatusReturned} {
		got, err := svc.UpdateBorrowStatus(ctx, req.ID, validation.BorrowStatusInput{Status: next}, admin)
		if err != nil {
			t.Fatalf("move to %s: %v", next, err)
		}
		if got.Status != next {
			t.Fatalf("status %s want %s", got.Status, next)
		}
	}

	final, _ := svc.GetBorrowRequest(ctx, req.ID)
	if final.ActualReturnDate == nil {
		t.Fatalf("return date not recorded")
	}
	if _, err := svc.UpdateBorrowStatus(ctx, req.ID, validation.BorrowStatusInput{Status: domain.BorrowStatusBorrowed}, admin); err == nil {
		t.Fatalf("returned is terminal")
	}
}

func TestRejectBorrowRequiresReason(t *testing.T) {
	svc, _ := newAssetFixture(t)
	ctx := context.Background()
	req, err := svc.SubmitBorrowRequest(ctx, borrowInput("ast-001"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.UpdateBorrowStatus(ctx, req.ID, validation.BorrowStatusInput{Status: domain.BorrowStatusRejected}, SystemActor); !apperrors.IsCode(err, "VALIDATION_ERROR") {
		t.Fatalf("expected validation error, got %v", err)
	}
	got, err := svc.UpdateBorrowStatus(ctx, req.ID, validation.BorrowStatusInput{
		Status:          domain.BorrowStatusRejected,
		RejectionReason: "Aset dipakai acara fakultas",
	}, SystemActor)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if got.RejectionReason == nil || *got.RejectionReason != "Aset dipakai acara fakultas" {
		t.Fatalf("reason not stored")
	}
}

func TestListAssetsFilters(t *testing.T) {
	svc, _ := newAssetFixture(t)
	ctx := context.Background()

	page, err := svc.ListAssets(ctx, AssetListFilter{Status: domain.AssetStatusAvailable})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != "ast-001" {
		t.Fatalf("unexpected page %+v", page)
	}
	if _, err := svc.ListAssets(ctx, AssetListFilter{Category: "spaceship"}); !apperrors.IsCode(err, "BAD_REQUEST") {
		t.Fatalf("expected bad request, got %v", err)
	}
}
