package query

import (
	"context"
	"errors"

	"github.com/Rich-Wilkyness/social-media-api/internal/repository"
	"github.com/Rich-Wilkyness/social-media-api/internal/service"
	"github.com/Rich-Wilkyness/social-media-api/shared/cqrs"
	"github.com/Rich-Wilkyness/social-media-api/shared/models"
)

type MessageReader interface {
	GetByID(ctx context.Context, messageID int) (*models.Message, error)
	List(ctx context.Context) ([]models.Message, error)
	ListByAccountID(ctx context.Context, accountID int) ([]models.Message, error)
}

// MessageQueryService reads messages from the Redis read model (with a
// PostgreSQL fallback) and lists them from PostgreSQL.
type MessageQueryService struct {
	readRepo MessageReader
	report   *service.Reporter
}

func NewMessageQueryService(readRepo MessageReader, report *service.Reporter) *MessageQueryService {
	return &MessageQueryService{readRepo: readRepo, report: report}
}

func (s *MessageQueryService) GetMessage(ctx context.Context, q cqrs.GetMessageQuery) (*models.Message, error) {
	msg, err := s.readRepo.GetByID(ctx, q.MessageID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, s.report.StoreFailure("get_message", err)
	}
	return msg, nil
}

// ListMessages always returns a non-nil slice. On a store failure the slice is
// empty and the error is an ErrStore.
func (s *MessageQueryService) ListMessages(ctx context.Context, _ cqrs.ListMessagesQuery) ([]models.Message, error) {
	messages, err := s.readRepo.List(ctx)
	if err != nil {
		return []models.Message{}, s.report.StoreFailure("list_messages", err)
	}
	return nonNil(messages), nil
}

// ListAccountMessages behaves like ListMessages, filtered by author. An
// account with no messages, or no account at all, yields an empty slice.
func (s *MessageQueryService) ListAccountMessages(ctx context.Context, q cqrs.ListAccountMessagesQuery) ([]models.Message, error) {
	messages, err := s.readRepo.ListByAccountID(ctx, q.AccountID)
	if err != nil {
		return []models.Message{}, s.report.StoreFailure("list_account_messages", err)
	}
	return nonNil(messages), nil
}

func nonNil(messages []models.Message) []models.Message {
	if messages == nil {
		return []models.Message{}
	}
	return messages
}
