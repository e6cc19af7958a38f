package query

import (
	"context"
	"errors"

	"github.com/Rich-Wilkyness/social-media-api/internal/repository"
	"github.com/Rich-Wilkyness/social-media-api/internal/service"
	"github.com/Rich-Wilkyness/social-media-api/shared/cqrs"
	"github.com/Rich-Wilkyness/social-media-api/shared/models"
)

type CredentialLookup interface {
	GetByCredentials(ctx context.Context, username, password string) (*models.Account, error)
}

// AccountQueryService handles login. Login does not mutate state, so it lives
// on the query side.
type AccountQueryService struct {
	accounts CredentialLookup
	report   *service.Reporter
}

func NewAccountQueryService(accounts CredentialLookup, report *service.Reporter) *AccountQueryService {
	return &AccountQueryService{accounts: accounts, report: report}
}

// Login returns the account matching both username and password exactly.
// An unknown username and a wrong password both yield service.ErrUnauthorized.
func (s *AccountQueryService) Login(ctx context.Context, q cqrs.LoginQuery) (*models.Account, error) {
	account, err := s.accounts.GetByCredentials(ctx, q.Username, q.Password)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, s.report.Rejected("login", service.ErrUnauthorized)
	}
	if err != nil {
		return nil, s.report.StoreFailure("login", err)
	}
	return account, nil
}
