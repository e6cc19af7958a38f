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

// AccountWriter is the slice of the account repository registration needs.
type AccountWriter interface {
	Create(ctx context.Context, account *models.Account) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// EventPublisher appends domain events to a stream. *events.Publisher
// satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// AccountCommandService registers accounts.
type AccountCommandService struct {
	accounts  AccountWriter
	publisher EventPublisher
	report    *service.Reporter
}

func NewAccountCommandService(accounts AccountWriter, publisher EventPublisher, report *service.Reporter) *AccountCommandService {
	return &AccountCommandService{
		accounts:  accounts,
		publisher: publisher,
		report:    report,
	}
}

// RegisterAccount creates an account when the username is non-empty and
// unused and the password has at least four characters.
//
// The username pre-check is not atomic with the insert; the unique index on
// account.username catches the loser of a concurrent registration.
func (s *AccountCommandService) RegisterAccount(ctx context.Context, cmd cqrs.RegisterAccountCommand) (*models.Account, error) {
	const op = "register_account"

	account := &models.Account{Username: cmd.Username, Password: cmd.Password}
	if err := service.ValidateAccount(account); err != nil {
		return nil, s.report.Rejected(op, err)
	}

	taken, err := s.accounts.ExistsByUsername(ctx, account.Username)
	if err != nil {
		return nil, s.report.StoreFailure(op, err)
	}
	if taken {
		return nil, s.report.Rejected(op, service.Invalid("username already exists"))
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, s.report.Rejected(op, service.Invalid("username already exists"))
		}
		return nil, s.report.StoreFailure(op, err)
	}

	if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.AccountRegistered, events.AccountRegisteredEvent{
		AccountID: account.AccountID,
		Username:  account.Username,
	}); err != nil {
		s.report.Log().WithError(err).Warn("failed to publish account.registered event")
	}
	return account, nil
}
