package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pusdatin-umc/helpdesk-service/internal/api/dto"
	"github.com/pusdatin-umc/helpdesk-service/internal/auth"
	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/service"
	"github.com/pusdatin-umc/helpdesk-service/internal/sla"
	"github.com/pusdatin-umc/helpdesk-service/internal/validation"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

func respond(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(dto.Envelope{Success: true, Data: data, Message: message})
}

func respondPage[T, R any](c *fiber.Ctx, page service.Page[T], mapFn func(*T) R) error {
	items := make([]R, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, mapFn(&page.Items[i]))
	}
	return c.JSON(dto.Envelope{
		Success: true,
		Data:    items,
		Meta: &dto.PageMeta{
			Page:       page.Page,
			PerPage:    page.PerPage,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	})
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewBadRequest("Format data tidak valid")
	}
	return nil
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func parsePagination(c *fiber.Ctx) service.Pagination {
	return service.Pagination{
		Page:    parseInt(c.Query("page"), 1),
		PerPage: parseInt(c.Query("perPage", c.Query("limit")), 0),
	}
}

type enum interface {
	~string
	Valid() bool
}

// parseEnumList reads a comma separated query value and rejects unknown members.
func parseEnumList[T enum](raw, field string) ([]T, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []T
	for _, part := range strings.Split(raw, ",") {
		v := T(strings.TrimSpace(part))
		if v == "" {
			continue
		}
		if !v.Valid() {
			return nil, apperrors.NewValidationError("", map[string][]string{field: {"Nilai tidak dikenal: " + string(v)}})
		}
		out = append(out, v)
	}
	return out, nil
}

func staffActor(p *auth.Principal) service.Actor {
	return service.Actor{UserID: p.UserID, Name: p.Name}
}

// optionalStaff returns the caller as a staff actor, or nil for reporters and anonymous callers.
func optionalStaff(c *fiber.Ctx) *service.Actor {
	p, ok := auth.PrincipalFromContext(c)
	if !ok || !p.IsStaff() {
		return nil
	}
	actor := staffActor(p)
	return &actor
}

func slaResponse(t *domain.Ticket, now time.Time) dto.SLAResponse {
	at := now
	if t.ResolvedAt != nil {
		at = *t.ResolvedAt
	}
	st := sla.Remaining(t.SLADeadline, at)
	return dto.SLAResponse{State: st.State, Text: st.Text, IsOverdue: st.IsOverdue, IsWarning: st.IsWarning}
}

func ticketResponse(t *domain.Ticket) dto.TicketResponse {
	resp := dto.TicketResponse{
		ID:            t.ID,
		TicketNumber:  t.TicketNumber,
		Category:      t.Category,
		CategoryLabel: t.Category.Label(),
		Priority:      t.Priority,
		PriorityLabel: t.Priority.Label(),
		Status:        t.Status,
		StatusLabel:   t.Status.Label(),
		Subject:       t.Subject,
		Description:   t.Description,
		Reporter: dto.ReporterResponse{
			Name:  t.Reporter.Name,
			Email: t.Reporter.Email,
			Phone: t.Reporter.Phone,
			Unit:  t.Reporter.Unit,
		},
		SLADeadline: t.SLADeadline,
		SLAMet:      t.SLAMet,
		SLA:         slaResponse(t, time.Now()),
		Attachments: make([]dto.AttachmentResponse, 0, len(t.Attachments)),
		Activities:  make([]dto.ActivityResponse, 0, len(t.Activities)),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		ResolvedAt:  t.ResolvedAt,
		ClosedAt:    t.ClosedAt,
		EscalatedAt: t.EscalatedAt,
	}
	if t.Assignee != nil {
		resp.Assignee = &dto.AssigneeResponse{ID: t.Assignee.ID, Name: t.Assignee.Name, Email: t.Assignee.Email}
	}
	for _, a := range t.Attachments {
		resp.Attachments = append(resp.Attachments, dto.AttachmentResponse{
			ID:        a.ID,
			Name:      a.Name,
			URL:       a.URL,
			Size:      a.Size,
			MimeType:  a.MimeType,
			CreatedAt: a.CreatedAt,
		})
	}
	for _, a := range t.Activities {
		resp.Activities = append(resp.Activities, dto.ActivityResponse{
			ID:          a.ID,
			Type:        a.Type,
			Description: a.Description,
			UserName:    a.UserName,
			OldValue:    a.OldValue,
			NewValue:    a.NewValue,
			CreatedAt:   a.CreatedAt,
		})
	}
	return resp
}

func ticketSummary(t *domain.Ticket) dto.TicketSummary {
	resp := dto.TicketSummary{
		ID:           t.ID,
		TicketNumber: t.TicketNumber,
		Category:     t.Category,
		Priority:     t.Priority,
		Status:       t.Status,
		Subject:      t.Subject,
		ReporterName: t.Reporter.Name,
		SLADeadline:  t.SLADeadline,
		SLA:          slaResponse(t, time.Now()),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.Assignee != nil {
		name := t.Assignee.Name
		resp.AssigneeName = &name
	}
	return resp
}

func assetResponse(a *domain.Asset) dto.AssetResponse {
	return dto.AssetResponse{
		ID:             a.ID,
		AssetCode:      a.AssetCode,
		Name:           a.Name,
		Category:       a.Category,
		Brand:          a.Brand,
		Model:          a.Model,
		SerialNumber:   a.SerialNumber,
		Specifications: a.Specifications,
		Location:       a.Location,
		Status:         a.Status,
		Condition:      a.Condition,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func borrowResponse(r *domain.BorrowRequest) dto.BorrowRequestResponse {
	return dto.BorrowRequestResponse{
		ID:                 r.ID,
		RequestNumber:      r.RequestNumber,
		AssetID:            r.AssetID,
		BorrowerName:       r.Borrower.Name,
		BorrowerEmail:      r.Borrower.Email,
		BorrowerPhone:      r.Borrower.Phone,
		BorrowerUnit:       r.Borrower.Unit,
		BorrowerNIM:        r.Borrower.NIM,
		Purpose:            r.Purpose,
		BorrowDate:         r.BorrowDate.Format(validation.DateLayout),
		ExpectedReturnDate: r.ExpectedReturnDate.Format(validation.DateLayout),
		ActualReturnDate:   r.ActualReturnDate,
		Status:             r.Status,
		ApprovedBy:         r.ApprovedBy,
		RejectionReason:    r.RejectionReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func userResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		Status:   u.Status,
		Unit:     u.Unit,
	}
}
