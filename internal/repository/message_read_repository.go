package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Rich-Wilkyness/social-media-api/shared/models"
	sharedredis "github.com/Rich-Wilkyness/social-media-api/shared/redis"
	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const messageViewKeyPrefix = "message:view:"

const messageColumns = `message_id, posted_by, message_text, time_posted_epoch`

// MessageReadRepository handles all read operations for messages.
// Single-message lookups go through the Redis read model and fall back to
// PostgreSQL, warming the cache on a cold read only if the key is still empty.
// Lists always hit PostgreSQL.
type MessageReadRepository struct {
	db    *sqlx.DB
	cache *sharedredis.ViewCache[models.Message]
}

func NewMessageReadRepository(db *sqlx.DB, redisClient *goredis.Client, ttl time.Duration, log *logrus.Entry) *MessageReadRepository {
	return &MessageReadRepository{
		db:    db,
		cache: sharedredis.NewViewCache[models.Message](redisClient, ttl, log),
	}
}

func messageViewKey(messageID int) string {
	return messageViewKeyPrefix + strconv.Itoa(messageID)
}

// GetByID returns the message, trying Redis first then PostgreSQL.
func (r *MessageReadRepository) GetByID(ctx context.Context, messageID int) (*models.Message, error) {
	if msg, ok := r.cache.Get(ctx, messageViewKey(messageID)); ok {
		return msg, nil
	}

	msg, err := r.GetByIDFromStore(ctx, messageID)
	if err != nil {
		return nil, err
	}

	// Warm the cache unless a write or delete got there first
	r.cache.SetIfAbsent(ctx, messageViewKey(messageID), msg)
	return msg, nil
}

// GetByIDFromStore bypasses the cache. Used where a stale view is not acceptable.
func (r *MessageReadRepository) GetByIDFromStore(ctx context.Context, messageID int) (*models.Message, error) {
	var msg models.Message
	err := r.db.GetContext(ctx, &msg, `SELECT `+messageColumns+` FROM message WHERE message_id = $1`, messageID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return &msg, nil
}

// List returns every message ordered by id. The slice is never nil.
func (r *MessageReadRepository) List(ctx context.Context) ([]models.Message, error) {
	messages := []models.Message{}
	if err := r.db.SelectContext(ctx, &messages, `SELECT `+messageColumns+` FROM message ORDER BY message_id`); err != nil {
		return []models.Message{}, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// ListByAccountID returns the account's messages ordered by id. The slice is never nil.
func (r *MessageReadRepository) ListByAccountID(ctx context.Context, accountID int) ([]models.Message, error) {
	messages := []models.Message{}
	query := `SELECT ` + messageColumns + ` FROM message WHERE posted_by = $1 ORDER BY message_id`
	if err := r.db.SelectContext(ctx, &messages, query, accountID); err != nil {
		return []models.Message{}, fmt.Errorf("failed to list messages for account %d: %w", accountID, err)
	}
	return messages, nil
}

// CacheMessageView stores or refreshes the Redis read model for a message.
// Called by the command service after every mutation.
func (r *MessageReadRepository) CacheMessageView(ctx context.Context, msg *models.Message) {
	r.cache.Set(ctx, messageViewKey(msg.MessageID), msg)
}

// InvalidateMessageView drops the cached view ahead of a write, so a failed
// refresh afterwards leaves a miss rather than the old text.
func (r *MessageReadRepository) InvalidateMessageView(ctx context.Context, messageID int) {
	r.cache.Delete(ctx, messageViewKey(messageID))
}

// MarkMessageDeleted replaces the cached view with a tombstone so that no
// read that loaded the row before the delete can cache it again.
func (r *MessageReadRepository) MarkMessageDeleted(ctx context.Context, messageID int) {
	r.cache.Tombstone(ctx, messageViewKey(messageID))
}
