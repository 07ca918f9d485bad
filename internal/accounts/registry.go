package accounts

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Registry holds the chart of accounts in insertion order.
//
// Every mutation validates first and then swaps in a new slice, so a
// rejected call leaves the registry untouched.
type Registry struct {
	accounts []model.Account
	byCode   map[string]int
}

// AccountPatch lists the fields to change in Edit. Nil fields are kept.
type AccountPatch struct {
	Code   *string
	Name   *string
	Nature *model.Nature
	Group  *string
}

// NewRegistry creates a Registry from trusted accounts, such as DefaultChart.
// Use Add for anything that came from a user.
func NewRegistry(accounts []model.Account) *Registry {
	r := &Registry{}
	r.swap(slices.Clone(accounts))
	return r
}

// Load reads an accounts CSV snapshot, validating every row.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}

	r := NewRegistry(nil)
	for i, a := range accts {
		if err := r.Add(a); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return r, nil
}

// Save writes the chart of accounts to path, replacing it atomically.
func (r *Registry) Save(path string) error {
	var buf bytes.Buffer
	if err := WriteAccounts(&buf, r.accounts); err != nil {
		return fmt.Errorf("encoding chart of accounts: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

// All returns a copy of all accounts in registry order.
func (r *Registry) All() []model.Account {
	return slices.Clone(r.accounts)
}

// Len returns the number of accounts.
func (r *Registry) Len() int {
	return len(r.accounts)
}

// Get returns an account by code.
func (r *Registry) Get(code string) (model.Account, bool) {
	i, ok := r.byCode[code]
	if !ok {
		return model.Account{}, false
	}
	return r.accounts[i], true
}

// Exists reports whether an account code exists.
func (r *Registry) Exists(code string) bool {
	_, ok := r.byCode[code]
	return ok
}

// ByNature returns all accounts of the given nature.
func (r *Registry) ByNature(n model.Nature) []model.Account {
	var result []model.Account
	for _, a := range r.accounts {
		if a.Nature == n {
			result = append(result, a)
		}
	}
	return result
}

// Search keeps the accounts whose code or name matches query, ignoring
// case. A blank query keeps every account.
func Search(list []model.Account, query string) []model.Account {
	query = strings.TrimSpace(query)
	if query == "" {
		return list
	}
	var result []model.Account
	for _, a := range list {
		if a.Matches(query) {
			result = append(result, a)
		}
	}
	return result
}

// Add appends a new account.
func (r *Registry) Add(acct model.Account) error {
	acct = normalize(acct)
	if err := ValidateAccount(acct); err != nil {
		return err
	}
	if r.Exists(acct.Code) {
		return model.Invalid(model.ErrDuplicateAccountCode, acct.Code, "code already exists")
	}

	next := make([]model.Account, 0, len(r.accounts)+1)
	next = append(next, r.accounts...)
	next = append(next, acct)
	r.swap(next)
	return nil
}

// Edit applies patch to the account identified by code.
func (r *Registry) Edit(code string, patch AccountPatch) error {
	i, ok := r.byCode[code]
	if !ok {
		return model.Invalid(model.ErrAccountNotFound, code, "no such account")
	}

	acct := r.accounts[i]
	if patch.Code != nil {
		acct.Code = *patch.Code
	}
	if patch.Name != nil {
		acct.Name = *patch.Name
	}
	if patch.Nature != nil {
		acct.Nature = *patch.Nature
	}
	if patch.Group != nil {
		acct.Group = *patch.Group
	}

	acct = normalize(acct)
	if err := ValidateAccount(acct); err != nil {
		return err
	}
	if acct.Code != code && r.Exists(acct.Code) {
		return model.Invalid(model.ErrDuplicateAccountCode, acct.Code, "code already exists")
	}

	next := slices.Clone(r.accounts)
	next[i] = acct
	r.swap(next)
	return nil
}

// Delete removes the account identified by code. Journal lines that
// reference it are left alone.
func (r *Registry) Delete(code string) error {
	i, ok := r.byCode[code]
	if !ok {
		return model.Invalid(model.ErrAccountNotFound, code, "no such account")
	}
	r.swap(slices.Delete(slices.Clone(r.accounts), i, i+1))
	return nil
}

func (r *Registry) swap(accounts []model.Account) {
	byCode := make(map[string]int, len(accounts))
	for i, a := range accounts {
		byCode[a.Code] = i
	}
	r.accounts = accounts
	r.byCode = byCode
}
