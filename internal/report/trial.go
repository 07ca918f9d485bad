package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// AccountSummary is one trial balance row.
type AccountSummary struct {
	Account model.Account
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Balance decimal.Decimal
}

// Totals holds the grand totals of a trial balance.
type Totals struct {
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Balance decimal.Decimal
}

// TrialBalance lists every account with activity and the column totals.
type TrialBalance struct {
	Rows   []AccountSummary
	Totals Totals
}

// BuildTrialBalance sums debits and credits per account over the whole
// journal. Accounts with no debit and no credit are left out. When every
// entry balances, Totals.Balance is zero.
func BuildTrialBalance(accounts []model.Account, journal []model.JournalEntry) TrialBalance {
	type sums struct{ debit, credit decimal.Decimal }
	byCode := make(map[string]*sums, len(accounts))
	for _, e := range journal {
		for _, l := range e.Lines {
			s, ok := byCode[l.AccountCode]
			if !ok {
				s = &sums{debit: decimal.Zero, credit: decimal.Zero}
				byCode[l.AccountCode] = s
			}
			s.debit = s.debit.Add(l.Debit)
			s.credit = s.credit.Add(l.Credit)
		}
	}

	var rows []AccountSummary
	for _, acct := range accounts {
		s, ok := byCode[acct.Code]
		if !ok || (s.debit.IsZero() && s.credit.IsZero()) {
			continue
		}
		rows = append(rows, AccountSummary{
			Account: acct,
			Debit:   s.debit,
			Credit:  s.credit,
			Balance: s.debit.Sub(s.credit),
		})
	}
	return TrialBalance{Rows: rows, Totals: sumRows(rows)}
}

// Filter keeps rows whose code contains query or whose name contains it,
// ignoring case. Totals are recomputed over the kept rows.
func (tb TrialBalance) Filter(query string) TrialBalance {
	if strings.TrimSpace(query) == "" {
		return tb
	}
	var rows []AccountSummary
	for _, r := range tb.Rows {
		if r.Account.Matches(query) {
			rows = append(rows, r)
		}
	}
	return TrialBalance{Rows: rows, Totals: sumRows(rows)}
}

func sumRows(rows []AccountSummary) Totals {
	t := Totals{Debit: decimal.Zero, Credit: decimal.Zero, Balance: decimal.Zero}
	for _, r := range rows {
		t.Debit = t.Debit.Add(r.Debit)
		t.Credit = t.Credit.Add(r.Credit)
		t.Balance = t.Balance.Add(r.Balance)
	}
	return t
}
