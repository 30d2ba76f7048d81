package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/events"
	"github.com/pusdatin-umc/helpdesk-service/internal/idempotency"
	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
	"github.com/pusdatin-umc/helpdesk-service/internal/sla"
	"github.com/pusdatin-umc/helpdesk-service/internal/storage"
	"github.com/pusdatin-umc/helpdesk-service/internal/validation"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

// escalationBatchSize caps how many tickets one sweep escalates.
const escalationBatchSize = 200

// DraftDiscarder clears a saved form draft.
type DraftDiscarder interface {
	Discard(ctx context.Context, id string) error
}

// TicketService coordinates the ticket lifecycle.
type TicketService struct {
	tickets     repository.TicketRepository
	activities  repository.ActivityRepository
	attachments repository.AttachmentRepository
	objects     storage.ObjectStore
	drafts      DraftDiscarder
	idempotency idempotency.Store
	dispatcher  events.Dispatcher
	numbers     *NumberGenerator
	logger      *zap.Logger
	now         func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo     repository.TicketRepository
	ActivityRepo   repository.ActivityRepository
	AttachmentRepo repository.AttachmentRepository
	Objects        storage.ObjectStore
	Drafts         DraftDiscarder
	Idempotency    idempotency.Store
	Dispatcher     events.Dispatcher
	Numbers        *NumberGenerator
	Logger         *zap.Logger
	Clock          func() time.Time
}

// TicketListFilter describes listing filters shared by reporter and staff views.
type TicketListFilter struct {
	Statuses   []domain.TicketStatus
	Categories []domain.TicketCategory
	Priorities []domain.TicketPriority
	Search     string
	AssigneeID string
	Pagination
}

// AttachmentUpload is one file received for a ticket.
type AttachmentUpload struct {
	Name     string
	MimeType string
	Size     int64
	Content  io.Reader
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	s := &TicketService{
		tickets:     deps.TicketRepo,
		activities:  deps.ActivityRepo,
		attachments: deps.AttachmentRepo,
		objects:     deps.Objects,
		drafts:      deps.Drafts,
		idempotency: deps.Idempotency,
		dispatcher:  deps.Dispatcher,
		numbers:     deps.Numbers,
		logger:      deps.Logger,
		now:         deps.Clock,
	}
	if s.numbers == nil {
		s.numbers = NewTicketNumberGenerator()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Create validates and stores a new ticket. When idempotencyKey is set, a repeated
// submission with the same key returns the ticket created first and replayed is true.
// The key doubles as the draft ID, so the draft is cleared once the ticket exists.
func (s *TicketService) Create(ctx context.Context, input validation.CreateTicketInput, idempotencyKey string) (ticket *domain.Ticket, replayed bool, err error) {
	in, fieldErrs := validation.ValidateTicketCreation(input)
	if fieldErrs != nil {
		return nil, false, fieldErrs.Err()
	}

	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey != "" && s.idempotency != nil {
		claimed, number, err := s.idempotency.Claim(ctx, idempotencyKey)
		if err != nil {
			return nil, false, apperrors.NewInternalError(err)
		}
		if !claimed {
			if number == "" {
				return nil, false, apperrors.NewConflict("Tiket dengan kunci ini sedang diproses")
			}
			existing, err := s.loadByNumber(ctx, number)
			if err != nil {
				return nil, false, err
			}
			return existing, true, nil
		}
		defer func() {
			if err != nil {
				if relErr := s.idempotency.Release(context.WithoutCancel(ctx), idempotencyKey); relErr != nil {
					s.logger.Warn("release idempotency key", zap.String("key", idempotencyKey), zap.Error(relErr))
				}
			}
		}()
	}

	now := s.now().UTC()
	ticket = &domain.Ticket{
		ID:          uuid.NewString(),
		Category:    in.Category,
		Priority:    in.Priority,
		Status:      domain.TicketStatusOpen,
		Subject:     in.Subject,
		Description: in.Description,
		Reporter: domain.Reporter{
			Name:  in.ReporterName,
			Email: in.ReporterEmail,
		},
		SLADeadline: sla.Deadline(in.Priority, now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.ReporterPhone != "" {
		ticket.Reporter.Phone = ptr(in.ReporterPhone)
	}
	if in.ReporterUnit != "" {
		ticket.Reporter.Unit = ptr(in.ReporterUnit)
	}

	if err := s.insertWithUniqueNumber(ctx, ticket, now); err != nil {
		return nil, false, err
	}

	reporter := Actor{Name: ticket.Reporter.Name}
	created, err := s.appendActivity(ctx, ticket.ID, domain.ActivityCreated, "Tiket dibuat", reporter, nil, nil, now)
	if err != nil {
		return nil, false, err
	}
	ticket.Activities = []domain.TicketActivity{*created}

	if idempotencyKey != "" {
		if s.idempotency != nil {
			if err := s.idempotency.Complete(ctx, idempotencyKey, ticket.TicketNumber); err != nil {
				s.logger.Warn("record idempotency key", zap.String("key", idempotencyKey), zap.Error(err))
			}
		}
		if s.drafts != nil {
			if err := s.drafts.Discard(ctx, idempotencyKey); err != nil {
				s.logger.Warn("clear draft after submission", zap.String("draft_id", idempotencyKey), zap.Error(err))
			}
		}
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketCreated,
		EntityID:  ticket.ID,
		Reference: ticket.TicketNumber,
		Actor:     reporter.event(),
		Payload: events.TicketCreatedPayload{
			Category:    ticket.Category,
			Priority:    ticket.Priority,
			SLADeadline: ticket.SLADeadline,
		},
	})
	return ticket, false, nil
}

func (s *TicketService) insertWithUniqueNumber(ctx context.Context, ticket *domain.Ticket, now time.Time) error {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		ticket.TicketNumber = s.numbers.Next(now)
		err := s.tickets.Create(ctx, ticket)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateTicketNumber) {
			return apperrors.NewInternalError(err)
		}
		s.logger.Debug("ticket number collision", zap.String("number", ticket.TicketNumber))
	}
	return apperrors.NewInternalError(fmt.Errorf("no free ticket number after %d attempts", maxNumberAttempts))
}

// GetStatus is the public lookup. The reporter email must match; a mismatch looks the same
// as an unknown number.
func (s *TicketService) GetStatus(ctx context.Context, input validation.StatusCheckInput) (*domain.Ticket, error) {
	in, fieldErrs := validation.ValidateStatusCheck(input)
	if fieldErrs != nil {
		return nil, fieldErrs.Err()
	}
	ticket, err := s.loadByNumber(ctx, in.TicketNumber)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(ticket.Reporter.Email, in.Email) {
		return nil, apperrors.NewNotFound("Tiket")
	}
	return ticket, nil
}

// Get returns a fully loaded ticket for staff.
func (s *TicketService) Get(ctx context.Context, ticketNumber string) (*domain.Ticket, error) {
	return s.loadByNumber(ctx, ticketNumber)
}

// ListForReporter returns the tickets submitted with email.
func (s *TicketService) ListForReporter(ctx context.Context, email string, filter TicketListFilter) (Page[domain.Ticket], error) {
	repoFilter := s.repoFilter(filter)
	repoFilter.ReporterEmail = &email
	return s.list(ctx, repoFilter, filter.Pagination)
}

// List returns tickets for the staff queue.
func (s *TicketService) List(ctx context.Context, filter TicketListFilter) (Page[domain.Ticket], error) {
	repoFilter := s.repoFilter(filter)
	if filter.AssigneeID != "" {
		repoFilter.AssigneeID = &filter.AssigneeID
	}
	return s.list(ctx, repoFilter, filter.Pagination)
}

func (s *TicketService) repoFilter(filter TicketListFilter) repository.TicketFilter {
	limit, offset := filter.Pagination.LimitOffset()
	out := repository.TicketFilter{
		Statuses:   filter.Statuses,
		Categories: filter.Categories,
		Priorities: filter.Priorities,
		Limit:      limit,
		Offset:     offset,
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		out.SearchTerm = &term
	}
	return out
}

func (s *TicketService) list(ctx context.Context, filter repository.TicketFilter, p Pagination) (Page[domain.Ticket], error) {
	tickets, total, err := s.tickets.List(ctx, filter)
	if err != nil {
		return Page[domain.Ticket]{}, apperrors.NewInternalError(err)
	}
	return newPage(tickets, total, p), nil
}

// ChangeStatus moves a ticket along the status machine on behalf of staff.
func (s *TicketService) ChangeStatus(ctx context.Context, ticketNumber string, input validation.StatusUpdateInput, actor Actor) (*domain.Ticket, error) {
	in, fieldErrs := validation.ValidateStatusUpdate(input)
	if fieldErrs != nil {
		return nil, fieldErrs.Err()
	}
	ticket, err := s.loadByNumber(ctx, ticketNumber)
	if err != nil {
		return nil, err
	}
	if err := s.transition(ctx, ticket, in.Status, actor, in.Note); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Assign hands the ticket to a technician. An open ticket also moves to in_progress.
func (s *TicketService) Assign(ctx context.Context, ticketNumber string, input validation.AssignInput, actor Actor) (*domain.Ticket, error) {
	in, fieldErrs := validation.ValidateAssign(input)
	if fieldErrs != nil {
		return nil, fieldErrs.Err()
	}
	ticket, err := s.loadByNumber(ctx, ticketNumber)
	if err != nil {
		return nil, err
	}
	if ticket.Status.Terminal() {
		return nil, closedTicketError()
	}

	now := s.now().UTC()
	var oldName *string
	if ticket.Assignee != nil {
		oldName = ptr(ticket.Assignee.Name)
	}
	ticket.Assignee = &domain.Assignee{ID: in.AssigneeID, Name: in.AssigneeName}
	if in.AssigneeEmail != "" {
		ticket.Assignee.Email = ptr(in.AssigneeEmail)
	}
	ticket.UpdatedAt = now
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, mapRepoError(err, "Tiket")
	}

	activity, err := s.appendActivity(ctx, ticket.ID, domain.ActivityAssigned,
		"Tiket ditugaskan ke "+in.AssigneeName, actor, oldName, ptr(in.AssigneeName), now)
	if err != nil {
		return nil, err
	}
	ticket.Activities = append(ticket.Activities, *activity)

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketAssigned,
		EntityID:  ticket.ID,
		Reference: ticket.TicketNumber,
		Actor:     actor.event(),
		Payload: events.TicketAssignedPayload{
			AssigneeID:   in.AssigneeID,
			AssigneeName: in.AssigneeName,
		},
	})

	if ticket.Status == domain.TicketStatusOpen {
		if err := s.transition(ctx, ticket, domain.TicketStatusInProgress, actor, ""); err != nil {
			return nil, err
		}
	}
	return ticket, nil
}

// AddComment appends a comment. Without a staff actor the email must match the reporter.
func (s *TicketService) AddComment(ctx context.Context, ticketNumber string, input validation.CommentInput, staff *Actor) (*domain.Ticket, error) {
	in, fieldErrs := validation.ValidateComment(input)
	if fieldErrs != nil {
		return nil, fieldErrs.Err()
	}
	ticket, err := s.loadByNumber(ctx, ticketNumber)
	if err != nil {
		return nil, err
	}
	actor, err := authorize(ticket, in.Email, staff)
	if err != nil {
		return nil, err
	}
	if ticket.Status.Terminal() {
		return nil, closedTicketError()
	}

	now := s.now().UTC()
	activity, err := s.appendActivity(ctx, ticket.ID, domain.ActivityComment, in.Message, actor, nil, nil, now)
	if err != nil {
		return nil, err
	}
	ticket.Activities = append(ticket.Activities, *activity)
	s.touch(ctx, ticket, now)

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketCommentAdded,
		EntityID:  ticket.ID,
		Reference: ticket.TicketNumber,
		Actor:     actor.event(),
		Payload: events.TicketCommentAddedPayload{
			ActivityID:  activity.ID,
			BodyPreview: stringPreview(in.Message, 120),
		},
	})
	return ticket, nil
}

// AddAttachments stores a batch of files on the ticket. The whole batch is rejected when
// any file is invalid or the ticket would exceed its attachment limit.
func (s *TicketService) AddAttachments(ctx context.Context, ticketNumber, reporterEmail string, staff *Actor, files []AttachmentUpload) (*domain.Ticket, error) {
	if len(files) == 0 {
		return nil, apperrors.NewValidationError("", map[string][]string{"files": {"Pilih minimal satu file"}})
	}
	metas := make([]validation.FileMeta, len(files))
	for i, f := range files {
		metas[i] = validation.FileMeta{Name: f.Name, Size: f.Size, MimeType: f.MimeType}
	}
	if errs := validation.ValidateFiles(metas); errs != nil {
		return nil, apperrors.NewValidationError("", map[string][]string{"files": errs})
	}

	ticket, err := s.loadByNumber(ctx, ticketNumber)
	if err != nil {
		return nil, err
	}
	actor, err := authorize(ticket, reporterEmail, staff)
	if err != nil {
		return nil, err
	}
	if ticket.Status.Terminal() {
		return nil, closedTicketError()
	}
	if len(ticket.Attachments)+len(files) > domain.MaxAttachments {
		return nil, apperrors.NewValidationError("", map[string][]string{
			"files": {fmt.Sprintf("Maksimal %d lampiran per tiket", domain.MaxAttachments)},
		})
	}

	// Objects first, then rows in one batch; any failure undoes the whole upload.
	now := s.now().UTC()
	batch := make([]domain.Attachment, 0, len(files))
	for _, f := range files {
		id := uuid.NewString()
		key := storage.AttachmentKey(ticket.TicketNumber, id, f.Name)
		obj, err := s.objects.Put(ctx, key, f.Content, f.Size, f.MimeType)
		if err != nil {
			s.removeObjects(ctx, batch)
			return nil, apperrors.NewInternalError(err)
		}
		batch = append(batch, domain.Attachment{
			ID:         id,
			Name:       f.Name,
			URL:        obj.URL,
			StorageKey: obj.Key,
			Size:       obj.Size,
			MimeType:   f.MimeType,
			CreatedAt:  now,
		})
	}
	if err := s.attachments.AddAll(ctx, ticket.ID, batch); err != nil {
		s.removeObjects(ctx, batch)
		return nil, apperrors.NewInternalError(err)
	}
	ticket.Attachments = append(ticket.Attachments, batch...)

	ids := make([]string, len(batch))
	for i, attachment := range batch {
		ids[i] = attachment.ID
		activity, err := s.appendActivity(ctx, ticket.ID, domain.ActivityAttachment,
			"Lampiran ditambahkan: "+attachment.Name, actor, nil, ptr(attachment.Name), now)
		if err != nil {
			s.logger.Warn("record attachment activity", zap.String("ticket_number", ticket.TicketNumber), zap.Error(err))
			continue
		}
		ticket.Activities = append(ticket.Activities, *activity)
	}
	s.touch(ctx, ticket, now)

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketAttachmentAdded,
		EntityID:  ticket.ID,
		Reference: ticket.TicketNumber,
		Actor:     actor.event(),
		Payload:   events.TicketAttachmentAddedPayload{AttachmentIDs: ids},
	})
	return ticket, nil
}

func (s *TicketService) removeObjects(ctx context.Context, batch []domain.Attachment) {
	for _, attachment := range batch {
		if err := s.objects.Delete(ctx, attachment.StorageKey); err != nil {
			s.logger.Warn("remove orphaned object", zap.String("key", attachment.StorageKey), zap.Error(err))
		}
	}
}

// EscalateOverdue escalates active tickets whose SLA deadline has passed and returns how
// many were changed. Each call handles at most one batch. A ticket is escalated at most
// once; staff moving it back to in_progress keeps it out of later sweeps.
func (s *TicketService) EscalateOverdue(ctx context.Context) (int, error) {
	now := s.now().UTC()
	overdue, _, err := s.tickets.List(ctx, repository.TicketFilter{
		Statuses: []domain.TicketStatus{
			domain.TicketStatusOpen,
			domain.TicketStatusInProgress,
			domain.TicketStatusWaitingUser,
		},
		DeadlineBefore: &now,
		NotEscalated:   true,
		Limit:          escalationBatchSize,
	})
	if err != nil {
		return 0, err
	}

	escalated := 0
	for i := range overdue {
		ticket := &overdue[i]
		old := ticket.Status
		if err := s.transition(ctx, ticket, domain.TicketStatusEscalated, SystemActor, ""); err != nil {
			s.logger.Warn("escalate ticket", zap.String("ticket_number", ticket.TicketNumber), zap.Error(err))
			continue
		}
		if _, err := s.appendActivity(ctx, ticket.ID, domain.ActivityEscalated,
			"Tiket dieskalasi otomatis karena melewati batas SLA", SystemActor, nil, nil, s.now().UTC()); err != nil {
			s.logger.Warn("record escalation", zap.String("ticket_number", ticket.TicketNumber), zap.Error(err))
		}
		s.publishEvent(ctx, events.Event{
			Type:      events.EventTicketEscalated,
			EntityID:  ticket.ID,
			Reference: ticket.TicketNumber,
			Actor:     SystemActor.event(),
			Payload: events.TicketStatusChangedPayload{
				OldStatus: old,
				NewStatus: domain.TicketStatusEscalated,
			},
		})
		escalated++
	}
	return escalated, nil
}

// transition applies a status change, records it and publishes the event.
func (s *TicketService) transition(ctx context.Context, ticket *domain.Ticket, next domain.TicketStatus, actor Actor, note string) error {
	current := ticket.Status
	if current.Terminal() {
		return closedTicketError()
	}
	if !isValidTransition(current, next) {
		return apperrors.NewInvalidTransition(current.Label(), next.Label())
	}

	now := s.now().UTC()
	switch {
	case next == domain.TicketStatusResolved:
		ticket.ResolvedAt = &now
		ticket.SLAMet = ptr(sla.Met(now, ticket.SLADeadline))
	case next == domain.TicketStatusClosed:
		ticket.ClosedAt = &now
	case current == domain.TicketStatusResolved:
		ticket.ResolvedAt = nil
		ticket.SLAMet = nil
	}
	if next == domain.TicketStatusEscalated && ticket.EscalatedAt == nil {
		ticket.EscalatedAt = &now
	}
	ticket.Status = next
	ticket.UpdatedAt = now
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return mapRepoError(err, "Tiket")
	}

	description := fmt.Sprintf("Status diubah dari %s ke %s", current.Label(), next.Label())
	if note != "" {
		description += ". Catatan: " + note
	}
	activity, err := s.appendActivity(ctx, ticket.ID, domain.ActivityStatusChanged, description, actor,
		ptr(string(current)), ptr(string(next)), now)
	if err != nil {
		return err
	}
	ticket.Activities = append(ticket.Activities, *activity)

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketStatusChanged,
		EntityID:  ticket.ID,
		Reference: ticket.TicketNumber,
		Actor:     actor.event(),
		Payload: events.TicketStatusChangedPayload{
			OldStatus: current,
			NewStatus: next,
			Note:      note,
		},
	})
	return nil
}

// touch bumps UpdatedAt for changes that do not alter the status.
func (s *TicketService) touch(ctx context.Context, ticket *domain.Ticket, now time.Time) {
	ticket.UpdatedAt = now
	if err := s.tickets.Update(ctx, ticket); err != nil {
		s.logger.Warn("update ticket timestamp", zap.String("ticket_number", ticket.TicketNumber), zap.Error(err))
	}
}

func (s *TicketService) appendActivity(ctx context.Context, ticketID string, typ domain.ActivityType, description string, actor Actor, oldValue, newValue *string, at time.Time) (*domain.TicketActivity, error) {
	activity := &domain.TicketActivity{
		ID:          uuid.NewString(),
		TicketID:    ticketID,
		Type:        typ,
		Description: description,
		OldValue:    oldValue,
		NewValue:    newValue,
		CreatedAt:   at,
	}
	if actor.Name != "" {
		activity.UserName = ptr(actor.Name)
	}
	if err := s.activities.Append(ctx, activity); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return activity, nil
}

// loadByNumber fetches a ticket with its activities and attachments.
func (s *TicketService) loadByNumber(ctx context.Context, number string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByNumber(ctx, number)
	if err != nil {
		return nil, mapRepoError(err, "Tiket")
	}
	if ticket.Activities, err = s.activities.ListByTicket(ctx, ticket.ID); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if ticket.Attachments, err = s.attachments.ListByTicket(ctx, ticket.ID); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return ticket, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// authorize resolves who is acting on a ticket. Reporters prove ownership by email.
func authorize(ticket *domain.Ticket, email string, staff *Actor) (Actor, error) {
	if staff != nil {
		return *staff, nil
	}
	if email == "" || !strings.EqualFold(ticket.Reporter.Email, strings.TrimSpace(email)) {
		return Actor{}, apperrors.NewNotFound("Tiket")
	}
	return Actor{Name: ticket.Reporter.Name}, nil
}

func closedTicketError() error {
	return apperrors.NewConflict("Tiket yang sudah ditutup tidak dapat diubah")
}

var allowedTransitions = map[domain.TicketStatus][]domain.TicketStatus{
	domain.TicketStatusOpen:        {domain.TicketStatusInProgress, domain.TicketStatusEscalated},
	domain.TicketStatusInProgress:  {domain.TicketStatusWaitingUser, domain.TicketStatusResolved, domain.TicketStatusEscalated},
	domain.TicketStatusWaitingUser: {domain.TicketStatusInProgress, domain.TicketStatusEscalated},
	domain.TicketStatusEscalated:   {domain.TicketStatusInProgress, domain.TicketStatusResolved},
	domain.TicketStatusResolved:    {domain.TicketStatusClosed, domain.TicketStatusInProgress, domain.TicketStatusEscalated},
	domain.TicketStatusClosed:      {},
}

func isValidTransition(current, next domain.TicketStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}
