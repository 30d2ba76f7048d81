package validation

import (
	"strings"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// CreateTicketInput is the ticket submission form.
type CreateTicketInput struct {
	Category      domain.TicketCategory `json:"category" validate:"required,ticketcategory"`
	Subject       string                `json:"subject" validate:"required,min=10,max=200"`
	Description   string                `json:"description" validate:"required,min=20,max=5000"`
	Priority      domain.TicketPriority `json:"priority" validate:"omitempty,ticketpriority"`
	ReporterName  string                `json:"reporterName" validate:"required,min=3,max=100"`
	ReporterEmail string                `json:"reporterEmail" validate:"required,email"`
	ReporterPhone string                `json:"reporterPhone" validate:"omitempty,idphone"`
	ReporterUnit  string                `json:"reporterUnit" validate:"omitempty,max=150"`
}

// ValidateTicketCreation normalizes and checks a ticket submission.
// Priority defaults to medium when omitted.
func ValidateTicketCreation(in CreateTicketInput) (CreateTicketInput, FieldErrors) {
	in.Subject = strings.TrimSpace(in.Subject)
	in.Description = strings.TrimSpace(in.Description)
	in.ReporterName = strings.TrimSpace(in.ReporterName)
	in.ReporterEmail = strings.TrimSpace(in.ReporterEmail)
	in.ReporterPhone = strings.TrimSpace(in.ReporterPhone)
	in.ReporterUnit = strings.TrimSpace(in.ReporterUnit)
	if in.Priority == "" {
		in.Priority = domain.TicketPriorityMedium
	}
	if errs := Struct(in); errs != nil {
		return in, errs
	}
	return in, nil
}

// StatusCheckInput is the public ticket status lookup form.
type StatusCheckInput struct {
	TicketNumber string `json:"ticketNumber" validate:"required,ticketnumber"`
	Email        string `json:"email" validate:"required,email"`
}

// ValidateStatusCheck upper-cases the ticket number before matching its format.
func ValidateStatusCheck(in StatusCheckInput) (StatusCheckInput, FieldErrors) {
	in.TicketNumber = strings.ToUpper(strings.TrimSpace(in.TicketNumber))
	in.Email = strings.TrimSpace(in.Email)
	return in, Struct(in)
}

// CommentInput is a comment posted on a ticket.
type CommentInput struct {
	Message string `json:"message" validate:"required,max=5000"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// ValidateComment trims the body before checking it.
func ValidateComment(in CommentInput) (CommentInput, FieldErrors) {
	in.Message = strings.TrimSpace(in.Message)
	in.Email = strings.TrimSpace(in.Email)
	return in, Struct(in)
}

// StatusUpdateInput is a staff status change.
type StatusUpdateInput struct {
	Status domain.TicketStatus `json:"status" validate:"required,ticketstatus"`
	Note   string              `json:"note" validate:"omitempty,max=1000"`
}

// ValidateStatusUpdate checks a staff status change.
func ValidateStatusUpdate(in StatusUpdateInput) (StatusUpdateInput, FieldErrors) {
	in.Note = strings.TrimSpace(in.Note)
	return in, Struct(in)
}

// AssignInput names the technician taking a ticket.
type AssignInput struct {
	AssigneeID    string `json:"assigneeId" validate:"required"`
	AssigneeName  string `json:"assigneeName" validate:"required,min=3,max=100"`
	AssigneeEmail string `json:"assigneeEmail" validate:"omitempty,email"`
}

// ValidateAssign checks an assignment request.
func ValidateAssign(in AssignInput) (AssignInput, FieldErrors) {
	in.AssigneeID = strings.TrimSpace(in.AssigneeID)
	in.AssigneeName = strings.TrimSpace(in.AssigneeName)
	in.AssigneeEmail = strings.TrimSpace(in.AssigneeEmail)
	return in, Struct(in)
}
