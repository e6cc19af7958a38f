package repository

import (
	"context"
	"fmt"

	"github.com/Rich-Wilkyness/social-media-api/shared/models"
	"github.com/jmoiron/sqlx"
)

// MessageWriteRepository handles all state-mutating operations for messages.
// It operates exclusively against PostgreSQL, the source of truth.
type MessageWriteRepository struct {
	db *sqlx.DB
}

func NewMessageWriteRepository(db *sqlx.DB) *MessageWriteRepository {
	return &MessageWriteRepository{db: db}
}

// Create inserts the message and sets its store-assigned MessageID.
func (r *MessageWriteRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO message (posted_by, message_text, time_posted_epoch)
		VALUES ($1, $2, $3)
		RETURNING message_id
	`
	var id int
	err := r.db.QueryRowxContext(ctx, query, message.PostedBy, message.MessageText, message.TimePostedEpoch).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	message.MessageID = id
	return nil
}

// UpdateText replaces message_text. Returns ErrNotFound when no row has the id.
func (r *MessageWriteRepository) UpdateText(ctx context.Context, messageID int, text string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE message SET message_text = $2 WHERE message_id = $1`, messageID, text)
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the message. Returns ErrNotFound when no row was deleted.
func (r *MessageWriteRepository) Delete(ctx context.Context, messageID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM message WHERE message_id = $1`, messageID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
