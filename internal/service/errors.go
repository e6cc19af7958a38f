// Package service holds the outcome taxonomy and validation rules shared by
// the command and query services:
//   - internal/command: AccountCommandService, MessageCommandService (writes)
//   - internal/query:   AccountQueryService, MessageQueryService (reads)
package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation means the input broke a business rule. Surfaced as 400.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound means the entity does not exist. Not an error on GET/DELETE.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized means no account matched the credentials. Surfaced as 401.
	ErrUnauthorized = errors.New("invalid credentials")
	// ErrStore wraps persistence failures. Callers see the same outcome as the
	// operation's negative result; the distinction exists for logs and metrics.
	ErrStore = errors.New("store failure")
)

// StoreError tags err as an infrastructure failure of operation op.
// errors.Is(result, ErrStore) holds and the driver error stays reachable.
func StoreError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}

func Invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}
