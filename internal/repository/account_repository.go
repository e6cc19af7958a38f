package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Rich-Wilkyness/social-media-api/shared/models"
	"github.com/jmoiron/sqlx"
)

// AccountRepository maps account operations onto the account table.
type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts the account and sets its store-assigned AccountID.
// Any client-supplied AccountID is ignored.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO account (username, password)
		VALUES ($1, $2)
		RETURNING account_id
	`
	var id int
	err := r.db.QueryRowxContext(ctx, query, account.Username, account.Password).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	account.AccountID = id
	return nil
}

func (r *AccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM account WHERE username = $1)`, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func (r *AccountRepository) ExistsByID(ctx context.Context, accountID int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM account WHERE account_id = $1)`, accountID)
	if err != nil {
		return false, fmt.Errorf("failed to check account: %w", err)
	}
	return exists, nil
}

// GetByCredentials returns the first account whose username and password both
// match exactly. Passwords are compared as stored.
func (r *AccountRepository) GetByCredentials(ctx context.Context, username, password string) (*models.Account, error) {
	query := `
		SELECT account_id, username, password
		FROM account
		WHERE username = $1 AND password = $2
		LIMIT 1
	`
	var account models.Account
	err := r.db.GetContext(ctx, &account, query, username, password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}
