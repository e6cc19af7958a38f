package command

import (
	"context"
	"errors"

	"github.com/Rich-Wilkyness/social-media-api/internal/repository"
	"github.com/Rich-Wilkyness/social-media-api/internal/service"
	"github.com/Rich-Wilkyness/social-media-api/shared/cqrs"
	"github.com/Rich-Wilkyness/social-media-api/shared/events"
	"github.com/Rich-Wilkyness/social-media-api/shared/models"
)

type MessageWriter interface {
	Create(ctx context.Context, message *models.Message) error
	UpdateText(ctx context.Context, messageID int, text string) error
	Delete(ctx context.Context, messageID int) error
}

// MessageViews is the read model the command side keeps current.
type MessageViews interface {
	GetByIDFromStore(ctx context.Context, messageID int) (*models.Message, error)
	CacheMessageView(ctx context.Context, msg *models.Message)
	InvalidateMessageView(ctx context.Context, messageID int)
	MarkMessageDeleted(ctx context.Context, messageID int)
}

type AuthorChecker interface {
	ExistsByID(ctx context.Context, accountID int) (bool, error)
}

// MessageCommandService writes messages to PostgreSQL and keeps the Redis
// read model and the message event stream up to date.
type MessageCommandService struct {
	writeRepo MessageWriter
	readRepo  MessageViews
	authors   AuthorChecker
	publisher EventPublisher
	report    *service.Reporter
}

func NewMessageCommandService(
	writeRepo MessageWriter,
	readRepo MessageViews,
	authors AuthorChecker,
	publisher EventPublisher,
	report *service.Reporter,
) *MessageCommandService {
	return &MessageCommandService{
		writeRepo: writeRepo,
		readRepo:  readRepo,
		authors:   authors,
		publisher: publisher,
		report:    report,
	}
}

// CreateMessage stores a message whose text is 1..255 non-blank characters
// and whose author is a registered account.
func (s *MessageCommandService) CreateMessage(ctx context.Context, cmd cqrs.CreateMessageCommand) (*models.Message, error) {
	const op = "create_message"

	if err := service.ValidateMessageText(cmd.MessageText); err != nil {
		return nil, s.report.Rejected(op, err)
	}

	exists, err := s.authors.ExistsByID(ctx, cmd.PostedBy)
	if err != nil {
		return nil, s.report.StoreFailure(op, err)
	}
	if !exists {
		return nil, s.report.Rejected(op, service.Invalid("posted_by does not reference an existing account"))
	}

	msg := &models.Message{
		PostedBy:        cmd.PostedBy,
		MessageText:     cmd.MessageText,
		TimePostedEpoch: cmd.TimePostedEpoch,
	}
	if err := s.writeRepo.Create(ctx, msg); err != nil {
		return nil, s.report.StoreFailure(op, err)
	}

	s.readRepo.CacheMessageView(ctx, msg)
	s.publish(ctx, events.MessageCreated, events.MessageCreatedEvent{
		MessageID:       msg.MessageID,
		PostedBy:        msg.PostedBy,
		TimePostedEpoch: msg.TimePostedEpoch,
	})
	return msg, nil
}

// UpdateMessage replaces the text of an existing message and returns the
// record as re-read from the store.
func (s *MessageCommandService) UpdateMessage(ctx context.Context, cmd cqrs.UpdateMessageCommand) (*models.Message, error) {
	const op = "update_message"

	if err := service.ValidateMessageText(cmd.MessageText); err != nil {
		return nil, s.report.Rejected(op, err)
	}

	s.readRepo.InvalidateMessageView(ctx, cmd.MessageID)
	if err := s.writeRepo.UpdateText(ctx, cmd.MessageID, cmd.MessageText); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.report.Rejected(op, service.ErrNotFound)
		}
		return nil, s.report.StoreFailure(op, err)
	}

	updated, err := s.readRepo.GetByIDFromStore(ctx, cmd.MessageID)
	if err != nil {
		// Deleted between the update and the re-read.
		if errors.Is(err, repository.ErrNotFound) {
			s.readRepo.MarkMessageDeleted(ctx, cmd.MessageID)
			return nil, s.report.Rejected(op, service.ErrNotFound)
		}
		return nil, s.report.StoreFailure(op, err)
	}

	s.readRepo.CacheMessageView(ctx, updated)
	s.publish(ctx, events.MessageUpdated, events.MessageUpdatedEvent{
		MessageID: updated.MessageID,
		PostedBy:  updated.PostedBy,
	})
	return updated, nil
}

// DeleteMessage removes a message and returns its pre-deletion snapshot.
// An absent id is reported as service.ErrNotFound without attempting a delete.
// The read and the delete are separate statements.
func (s *MessageCommandService) DeleteMessage(ctx context.Context, cmd cqrs.DeleteMessageCommand) (*models.Message, error) {
	const op = "delete_message"

	snapshot, err := s.readRepo.GetByIDFromStore(ctx, cmd.MessageID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.readRepo.InvalidateMessageView(ctx, cmd.MessageID)
			return nil, service.ErrNotFound
		}
		return nil, s.report.StoreFailure(op, err)
	}

	if err := s.writeRepo.Delete(ctx, cmd.MessageID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.readRepo.MarkMessageDeleted(ctx, cmd.MessageID)
			return nil, service.ErrNotFound
		}
		return nil, s.report.StoreFailure(op, err)
	}

	s.readRepo.MarkMessageDeleted(ctx, cmd.MessageID)
	s.publish(ctx, events.MessageDeleted, events.MessageDeletedEvent{
		MessageID: snapshot.MessageID,
		PostedBy:  snapshot.PostedBy,
	})
	return snapshot, nil
}

func (s *MessageCommandService) publish(ctx context.Context, eventType string, data any) {
	if err := s.publisher.Publish(ctx, events.MessageEventsStream, eventType, data); err != nil {
		s.report.Log().WithError(err).Warnf("failed to publish %s event", eventType)
	}
}
