package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/whisperbox/whisperbox/internal/model"
)

// ErrMessageNotFound is returned when no message matched the lookup.
var ErrMessageNotFound = errors.New("message not found")

// CreateMessage inserts a new message into the database.
func (r *Repository) CreateMessage(ctx context.Context, message *model.Message) error {
	query := `
		INSERT INTO messages (id, content, receiver_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.Content,
		message.ReceiverID,
		message.CreatedAt,
		message.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// ListMessagesByReceiver returns all messages addressed to the given user,
// newest first. Ordering is explicit so pagination added later stays stable.
func (r *Repository) ListMessagesByReceiver(ctx context.Context, receiverID string) ([]*model.Message, error) {
	query := `
		SELECT id, content, receiver_id, created_at, updated_at
		FROM messages
		WHERE receiver_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*model.Message, 0)
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Content, &m.ReceiverID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

// DeleteMessage deletes a message by id, scoped to its receiver.
// A message belonging to another receiver reads as not found.
func (r *Repository) DeleteMessage(ctx context.Context, id, receiverID string) error {
	query := `DELETE FROM messages WHERE id = $1 AND receiver_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, receiverID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrMessageNotFound
	}

	return nil
}
