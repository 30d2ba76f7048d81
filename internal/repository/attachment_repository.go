package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// AttachmentRepository persists attachment metadata.
type AttachmentRepository interface {
	// AddAll stores a batch of attachments for one ticket. Either every row is
	// stored or none is.
	AddAll(ctx context.Context, ticketID string, attachments []domain.Attachment) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.Attachment, error)
}

type attachmentRepository struct {
	pool *pgxpool.Pool
}

// NewAttachmentRepository constructs repository.
func NewAttachmentRepository(pool *pgxpool.Pool) AttachmentRepository {
	return &attachmentRepository{pool: pool}
}

func (r *attachmentRepository) AddAll(ctx context.Context, ticketID string, attachments []domain.Attachment) error {
	const query = `
        INSERT INTO ticket_attachments (id, ticket_id, file_name, url, storage_key, mime_type, size_bytes, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin attachment batch: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, attachment := range attachments {
		if _, err := tx.Exec(ctx, query,
			attachment.ID,
			ticketID,
			attachment.Name,
			attachment.URL,
			attachment.StorageKey,
			attachment.MimeType,
			attachment.Size,
			attachment.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert attachment %s: %w", attachment.Name, err)
		}
	}
	return tx.Commit(ctx)
}

func (r *attachmentRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.Attachment, error) {
	const query = `
        SELECT id, file_name, url, storage_key, mime_type, size_bytes, created_at
        FROM ticket_attachments WHERE ticket_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Attachment
	for rows.Next() {
		var attachment domain.Attachment
		if err := rows.Scan(
			&attachment.ID,
			&attachment.Name,
			&attachment.URL,
			&attachment.StorageKey,
			&attachment.MimeType,
			&attachment.Size,
			&attachment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, attachment)
	}
	return result, rows.Err()
}
