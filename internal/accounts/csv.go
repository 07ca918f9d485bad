package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Header is the CSV header for accounts.csv.
const Header = "code,name,nature,group"

const (
	numFields = 4
	colCode   = 0
	colName   = 1
	colNature = 2
	colGroup  = 3
)

// ReadAccounts reads an accounts.csv snapshot.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes an accounts.csv snapshot.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colCode] = acct.Code
	row[colName] = acct.Name
	row[colNature] = string(acct.Nature)
	row[colGroup] = acct.Group
	return row
}

// UnmarshalAccount converts a CSV row to an Account. The nature column
// accepts the canonical name or the Spanish label.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	nature, ok := model.ParseNature(record[colNature])
	if !ok {
		return model.Account{}, fmt.Errorf("parsing nature %q: unknown nature", record[colNature])
	}

	return model.Account{
		Code:   record[colCode],
		Name:   record[colName],
		Nature: nature,
		Group:  record[colGroup],
	}, nil
}
