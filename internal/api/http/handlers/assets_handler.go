package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pusdatin-umc/helpdesk-service/internal/auth"
	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/service"
	"github.com/pusdatin-umc/helpdesk-service/internal/validation"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

// AssetsHandler serves the asset catalog and borrowing endpoints.
type AssetsHandler struct {
	assets *service.AssetService
}

// NewAssetsHandler constructs handler.
func NewAssetsHandler(assetService *service.AssetService) *AssetsHandler {
	return &AssetsHandler{assets: assetService}
}

// ListAssets GET /assets.
func (h *AssetsHandler) ListAssets(c *fiber.Ctx) error {
	page, err := h.assets.ListAssets(c.UserContext(), service.AssetListFilter{
		Category:   domain.AssetCategory(c.Query("category")),
		Status:     domain.AssetStatus(c.Query("status")),
		Search:     c.Query("search"),
		Pagination: parsePagination(c),
	})
	if err != nil {
		return err
	}
	return respondPage(c, page, assetResponse)
}

// GetAsset GET /assets/:id.
func (h *AssetsHandler) GetAsset(c *fiber.Ctx) error {
	asset, err := h.assets.GetAsset(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, assetResponse(asset), "")
}

// SubmitBorrow POST /assets/borrow.
func (h *AssetsHandler) SubmitBorrow(c *fiber.Ctx) error {
	var req validation.BorrowRequestInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	created, err := h.assets.SubmitBorrowRequest(c.UserContext(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, borrowResponse(created), "Permohonan peminjaman berhasil diajukan")
}

// MyBorrows GET /assets/my-borrows.
func (h *AssetsHandler) MyBorrows(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Silakan login terlebih dahulu")
	}
	page, err := h.assets.ListBorrowRequests(c.UserContext(), service.BorrowListFilter{
		BorrowerEmail: principal.Email,
		Status:        domain.BorrowStatus(c.Query("status")),
		Pagination:    parsePagination(c),
	})
	if err != nil {
		return err
	}
	return respondPage(c, page, borrowResponse)
}

// ListBorrows GET /assets/borrow.
func (h *AssetsHandler) ListBorrows(c *fiber.Ctx) error {
	page, err := h.assets.ListBorrowRequests(c.UserContext(), service.BorrowListFilter{
		AssetID:    c.Query("assetId"),
		Status:     domain.BorrowStatus(c.Query("status")),
		Pagination: parsePagination(c),
	})
	if err != nil {
		return err
	}
	return respondPage(c, page, borrowResponse)
}

// UpdateBorrowStatus PATCH /assets/borrow/:id/status.
func (h *AssetsHandler) UpdateBorrowStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Silakan login terlebih dahulu")
	}
	var req validation.BorrowStatusInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	updated, err := h.assets.UpdateBorrowStatus(c.UserContext(), c.Params("id"), req, staffActor(principal))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, borrowResponse(updated), "Status peminjaman diperbarui")
}
