package service

import (
	"strings"

	"github.com/Rich-Wilkyness/social-media-api/shared/models"
	"github.com/Rich-Wilkyness/social-media-api/shared/validation"
)

const MaxMessageLength = 255

// ValidateAccount checks a registration candidate: non-empty username and a
// password of at least four characters. Uniqueness is checked by the caller.
func ValidateAccount(a *models.Account) error {
	if a == nil {
		return Invalid("account is required")
	}
	return fieldErrors(validation.Struct(a))
}

// ValidateMessageText checks text for create and update: not blank and at
// most MaxMessageLength characters.
func ValidateMessageText(text string) error {
	return fieldErrors(validation.Struct(models.Message{MessageText: text}))
}

func fieldErrors(errs []validation.FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return Invalid(strings.Join(parts, "; "))
}
