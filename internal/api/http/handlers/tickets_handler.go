package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"github.com/pusdatin-umc/helpdesk-service/internal/api/dto"
	"github.com/pusdatin-umc/helpdesk-service/internal/auth"
	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/service"
	"github.com/pusdatin-umc/helpdesk-service/internal/validation"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

// IdempotencyHeader carries the client draft ID on ticket submission.
const IdempotencyHeader = "Idempotency-Key"

// TicketsHandler serves reporter and staff ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req validation.CreateTicketInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, replayed, err := h.service.Create(c.UserContext(), req, c.Get(IdempotencyHeader))
	if err != nil {
		return err
	}
	status, message := http.StatusCreated, "Tiket berhasil dibuat"
	if replayed {
		status, message = http.StatusOK, "Tiket sudah dibuat sebelumnya"
	}
	return respond(c, status, dto.CreateTicketResponse{Ticket: ticketResponse(ticket), Replayed: replayed}, message)
}

// CheckStatus GET /tickets/status/:ticketNumber?email=.
func (h *TicketsHandler) CheckStatus(c *fiber.Ctx) error {
	ticket, err := h.service.GetStatus(c.UserContext(), validation.StatusCheckInput{
		TicketNumber: c.Params("ticketNumber"),
		Email:        c.Query("email"),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, ticketResponse(ticket), "")
}

// ListMine GET /tickets/my.
func (h *TicketsHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Silakan login terlebih dahulu")
	}
	filter, err := parseTicketFilter(c)
	if err != nil {
		return err
	}
	page, err := h.service.ListForReporter(c.UserContext(), principal.Email, filter)
	if err != nil {
		return err
	}
	return respondPage(c, page, ticketSummary)
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	filter, err := parseTicketFilter(c)
	if err != nil {
		return err
	}
	filter.AssigneeID = strings.TrimSpace(c.Query("assigneeId"))
	page, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return respondPage(c, page, ticketSummary)
}

// GetTicket GET /tickets/:ticketNumber.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.Get(c.UserContext(), c.Params("ticketNumber"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, ticketResponse(ticket), "")
}

// AddComment POST /tickets/:ticketNumber/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	var req validation.CommentInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, err := h.service.AddComment(c.UserContext(), c.Params("ticketNumber"), req, optionalStaff(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, ticketResponse(ticket), "Komentar ditambahkan")
}

// AddAttachments POST /tickets/:ticketNumber/attachments.
func (h *TicketsHandler) AddAttachments(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return apperrors.NewBadRequest("Gunakan multipart/form-data untuk mengunggah file")
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return apperrors.NewValidationError("", map[string][]string{"files": {"Pilih minimal satu file"}})
	}
	if len(headers) > validation.MaxFilesPerBatch {
		return apperrors.NewValidationError("", map[string][]string{
			"files": {fmt.Sprintf("Maksimal %d file yang dapat diunggah", validation.MaxFilesPerBatch)},
		})
	}

	uploads := make([]service.AttachmentUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return apperrors.NewBadRequest("File tidak dapat dibaca")
		}
		defer f.Close()
		mimeType, err := sniffMimeType(f, fh)
		if err != nil {
			return apperrors.NewBadRequest("File tidak dapat dibaca")
		}
		uploads = append(uploads, service.AttachmentUpload{
			Name:     fh.Filename,
			MimeType: mimeType,
			Size:     fh.Size,
			Content:  f,
		})
	}

	email := ""
	if values := form.Value["email"]; len(values) > 0 {
		email = values[0]
	}
	ticket, err := h.service.AddAttachments(c.UserContext(), c.Params("ticketNumber"), email, optionalStaff(c), uploads)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, ticketResponse(ticket), "Lampiran berhasil diunggah")
}

// ChangeStatus PATCH /tickets/:ticketNumber/status.
func (h *TicketsHandler) ChangeStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Silakan login terlebih dahulu")
	}
	var req validation.StatusUpdateInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, err := h.service.ChangeStatus(c.UserContext(), c.Params("ticketNumber"), req, staffActor(principal))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, ticketResponse(ticket), "Status tiket diperbarui")
}

// Assign POST /tickets/:ticketNumber/assign.
func (h *TicketsHandler) Assign(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Silakan login terlebih dahulu")
	}
	var req validation.AssignInput
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, err := h.service.Assign(c.UserContext(), c.Params("ticketNumber"), req, staffActor(principal))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, ticketResponse(ticket), "Tiket berhasil ditugaskan")
}

func parseTicketFilter(c *fiber.Ctx) (service.TicketListFilter, error) {
	statuses, err := parseEnumList[domain.TicketStatus](c.Query("status"), "status")
	if err != nil {
		return service.TicketListFilter{}, err
	}
	categories, err := parseEnumList[domain.TicketCategory](c.Query("category"), "category")
	if err != nil {
		return service.TicketListFilter{}, err
	}
	priorities, err := parseEnumList[domain.TicketPriority](c.Query("priority"), "priority")
	if err != nil {
		return service.TicketListFilter{}, err
	}
	return service.TicketListFilter{
		Statuses:   statuses,
		Categories: categories,
		Priorities: priorities,
		Search:     c.Query("search"),
		Pagination: parsePagination(c),
	}, nil
}

// sniffMimeType detects the type from content and rewinds f. Generic results fall back to
// the type the client declared.
func sniffMimeType(f multipart.File, fh *multipart.FileHeader) (string, error) {
	detected, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	mimeType := detected.String()
	if detected.Is("application/octet-stream") {
		if declared := fh.Header.Get(fiber.HeaderContentType); declared != "" {
			mimeType = declared
		}
	}
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.TrimSpace(mimeType), nil
}
