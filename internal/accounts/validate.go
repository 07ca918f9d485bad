package accounts

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

const minNameLen = 3

var codePattern = regexp.MustCompile(`^\d{4}$`)

// ValidateAccount checks the fields of a single account. Uniqueness is
// checked by the Registry.
func ValidateAccount(acct model.Account) error {
	if !codePattern.MatchString(acct.Code) {
		return model.Invalid(model.ErrInvalidAccountCode, acct.Code, "code must be exactly 4 digits")
	}
	if utf8.RuneCountInString(strings.TrimSpace(acct.Name)) < minNameLen {
		return model.Invalid(model.ErrMissingRequiredField, acct.Code, "name is required (at least %d characters)", minNameLen)
	}
	if acct.Nature == "" {
		return model.Invalid(model.ErrMissingRequiredField, acct.Code, "nature is required")
	}
	if !acct.Nature.Valid() {
		return model.Invalid(model.ErrMissingRequiredField, acct.Code, "unknown nature %q", acct.Nature)
	}
	if strings.TrimSpace(acct.Group) == "" {
		return model.Invalid(model.ErrMissingRequiredField, acct.Code, "group is required")
	}
	return nil
}

func normalize(acct model.Account) model.Account {
	acct.Code = strings.TrimSpace(acct.Code)
	acct.Name = strings.TrimSpace(acct.Name)
	acct.Group = strings.TrimSpace(acct.Group)
	return acct
}
