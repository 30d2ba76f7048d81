package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// TicketFilter captures list and search parameters.
type TicketFilter struct {
	ReporterEmail  *string
	AssigneeID     *string
	Statuses       []domain.TicketStatus
	Categories     []domain.TicketCategory
	Priorities     []domain.TicketPriority
	SearchTerm     *string
	DeadlineBefore *time.Time
	NotEscalated   bool
	Limit          int
	Offset         int
}

// TicketRepository encapsulates ticket persistence. Activities and attachments live in
// their own repositories and are not loaded here.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	GetByNumber(ctx context.Context, number string) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, int, error)
}

const defaultListLimit = 20

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates a Postgres-backed repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, ticket_number, category, priority, status, subject, description,
               reporter_name, reporter_email, reporter_phone, reporter_unit,
               assignee_id, assignee_name, assignee_email,
               sla_deadline, sla_met, created_at, updated_at, resolved_at, closed_at, escalated_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (id, ticket_number, category, priority, status, subject, description,
            reporter_name, reporter_email, reporter_phone, reporter_unit,
            assignee_id, assignee_name, assignee_email, sla_deadline, sla_met, created_at, updated_at,
            resolved_at, closed_at, escalated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`
	assigneeID, assigneeName, assigneeEmail := assigneeColumns(ticket.Assignee)
	_, err := r.pool.Exec(ctx, query,
		ticket.ID,
		ticket.TicketNumber,
		ticket.Category,
		ticket.Priority,
		ticket.Status,
		ticket.Subject,
		ticket.Description,
		ticket.Reporter.Name,
		ticket.Reporter.Email,
		ticket.Reporter.Phone,
		ticket.Reporter.Unit,
		assigneeID,
		assigneeName,
		assigneeEmail,
		ticket.SLADeadline,
		ticket.SLAMet,
		ticket.CreatedAt,
		ticket.UpdatedAt,
		ticket.ResolvedAt,
		ticket.ClosedAt,
		ticket.EscalatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateTicketNumber
	}
	return err
}

// Update writes the mutable lifecycle fields. Number, content and SLA deadline are fixed.
func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET status=$1, assignee_id=$2, assignee_name=$3, assignee_email=$4,
            sla_met=$5, resolved_at=$6, closed_at=$7, escalated_at=$8, updated_at=$9
        WHERE id=$10`
	assigneeID, assigneeName, assigneeEmail := assigneeColumns(ticket.Assignee)
	cmd, err := r.pool.Exec(ctx, query,
		ticket.Status,
		assigneeID,
		assigneeName,
		assigneeEmail,
		ticket.SLAMet,
		ticket.ResolvedAt,
		ticket.ClosedAt,
		ticket.EscalatedAt,
		ticket.UpdatedAt,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *ticketRepository) GetByNumber(ctx context.Context, number string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE ticket_number=UPPER($1)`
	return r.fetchSingle(ctx, query, strings.TrimSpace(number))
}

func (r *ticketRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Ticket, error) {
	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, translateNoRows(err)
	}
	return ticket, nil
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, int, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ReporterEmail != nil {
		args = append(args, strings.ToLower(*filter.ReporterEmail))
		clauses = append(clauses, fmt.Sprintf("LOWER(reporter_email)=$%d", len(args)))
	}
	if filter.AssigneeID != nil {
		args = append(args, *filter.AssigneeID)
		clauses = append(clauses, fmt.Sprintf("assignee_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.Categories) > 0 {
		placeholders := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			args = append(args, c)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("category IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.Priorities) > 0 {
		placeholders := make([]string, len(filter.Priorities))
		for i, pr := range filter.Priorities {
			args = append(args, pr)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("priority IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.DeadlineBefore != nil {
		args = append(args, *filter.DeadlineBefore)
		clauses = append(clauses, fmt.Sprintf("sla_deadline < $%d", len(args)))
	}
	if filter.NotEscalated {
		clauses = append(clauses, "escalated_at IS NULL")
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(subject) LIKE %[1]s OR LOWER(description) LIKE %[1]s OR LOWER(ticket_number) LIKE %[1]s OR LOWER(reporter_name) LIKE %[1]s)",
			placeholder))
	}
	where := strings.Join(clauses, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		ticketColumns, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *ticket)
	}
	return result, total, rows.Err()
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		ticket                                 domain.Ticket
		assigneeID, assigneeName, assigneeMail *string
	)
	if err := row.Scan(
		&ticket.ID,
		&ticket.TicketNumber,
		&ticket.Category,
		&ticket.Priority,
		&ticket.Status,
		&ticket.Subject,
		&ticket.Description,
		&ticket.Reporter.Name,
		&ticket.Reporter.Email,
		&ticket.Reporter.Phone,
		&ticket.Reporter.Unit,
		&assigneeID,
		&assigneeName,
		&assigneeMail,
		&ticket.SLADeadline,
		&ticket.SLAMet,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.ResolvedAt,
		&ticket.ClosedAt,
		&ticket.EscalatedAt,
	); err != nil {
		return nil, err
	}
	if assigneeID != nil {
		ticket.Assignee = &domain.Assignee{ID: *assigneeID, Email: assigneeMail}
		if assigneeName != nil {
			ticket.Assignee.Name = *assigneeName
		}
	}
	return &ticket, nil
}

func assigneeColumns(a *domain.Assignee) (id, name, email *string) {
	if a == nil {
		return nil, nil, nil
	}
	return &a.ID, &a.Name, a.Email
}
