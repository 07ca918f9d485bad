package model

import (
	"errors"
	"fmt"
)

// Error kinds reported at the validation boundary.
var (
	ErrUnbalanced           = errors.New("unbalanced")
	ErrIncompleteLine       = errors.New("incomplete line")
	ErrDuplicateAccountCode = errors.New("duplicate account code")
	ErrInvalidAccountCode   = errors.New("invalid account code")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrAccountNotFound      = errors.New("account not found")
	ErrDuplicateEntryID     = errors.New("duplicate entry id")
)

// ValidationError describes rejected input. Kind is one of the Err* sentinels.
type ValidationError struct {
	Kind        error
	Subject     string // account code or entry reference, may be empty
	Description string
}

func (e *ValidationError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Description)
	}
	return fmt.Sprintf("%v [%s]: %s", e.Kind, e.Subject, e.Description)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Invalid builds a *ValidationError.
func Invalid(kind error, subject, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Subject: subject, Description: fmt.Sprintf(format, args...)}
}
