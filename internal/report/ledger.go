package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Side is the side on which an account balance falls.
type Side string

const (
	Debtor   Side = "Deudor"
	Creditor Side = "Acreedor"
)

// Movement is one journal line as seen from its account.
type Movement struct {
	EntryID     string
	Date        time.Time
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

// AccountLedger is the general-ledger view of one account.
type AccountLedger struct {
	Account     model.Account
	Movements   []Movement
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balance     decimal.Decimal // TotalDebit - TotalCredit
}

// Side reports Debtor for a non-negative balance and Creditor otherwise.
func (l AccountLedger) Side() Side {
	return sideOf(l.Balance)
}

// DisplayBalance is the balance with its sign dropped, to be shown next to Side.
func (l AccountLedger) DisplayBalance() decimal.Decimal {
	return l.Balance.Abs()
}

func sideOf(balance decimal.Decimal) Side {
	if balance.IsNegative() {
		return Creditor
	}
	return Debtor
}

// BuildLedger groups journal lines by account. The result follows registry
// order and skips accounts without movements. Movements keep entry order,
// then line order; callers that want date order sort the journal first.
// Lines whose account is not in accounts are ignored (see OrphanCodes).
func BuildLedger(accounts []model.Account, journal []model.JournalEntry) []AccountLedger {
	byCode := make(map[string][]Movement, len(accounts))
	for _, e := range journal {
		for _, l := range e.Lines {
			byCode[l.AccountCode] = append(byCode[l.AccountCode], Movement{
				EntryID:     e.ID,
				Date:        e.Date,
				Debit:       l.Debit,
				Credit:      l.Credit,
				Description: l.Description,
			})
		}
	}

	var result []AccountLedger
	for _, acct := range accounts {
		movements := byCode[acct.Code]
		if len(movements) == 0 {
			continue
		}
		al := AccountLedger{
			Account:     acct,
			Movements:   movements,
			TotalDebit:  decimal.Zero,
			TotalCredit: decimal.Zero,
		}
		for _, m := range movements {
			al.TotalDebit = al.TotalDebit.Add(m.Debit)
			al.TotalCredit = al.TotalCredit.Add(m.Credit)
		}
		al.Balance = al.TotalDebit.Sub(al.TotalCredit)
		result = append(result, al)
	}
	return result
}

// OrphanCodes returns, in first-seen order, the account codes used by
// journal lines that have no matching account.
func OrphanCodes(accounts []model.Account, journal []model.JournalEntry) []string {
	known := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		known[a.Code] = true
	}

	var orphans []string
	for _, e := range journal {
		for _, l := range e.Lines {
			if known[l.AccountCode] {
				continue
			}
			known[l.AccountCode] = true
			orphans = append(orphans, l.AccountCode)
		}
	}
	return orphans
}
