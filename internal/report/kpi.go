package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// KPIs are the dashboard indicators.
type KPIs struct {
	EntryCount int
	// NetBalance is the sum of every registry account's debit minus credit.
	// It is zero whenever the books balance.
	NetBalance decimal.Decimal
	// ErrorCount counts entries whose debits and credits differ to the cent.
	// Only entries that bypassed the validator can contribute.
	ErrorCount int
}

// ComputeKPIs derives the dashboard indicators from a snapshot.
func ComputeKPIs(accounts []model.Account, journal []model.JournalEntry) KPIs {
	known := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		known[a.Code] = true
	}

	k := KPIs{EntryCount: len(journal), NetBalance: decimal.Zero}
	for _, e := range journal {
		if !e.Balanced() {
			k.ErrorCount++
		}
		for _, l := range e.Lines {
			if known[l.AccountCode] {
				k.NetBalance = k.NetBalance.Add(l.Debit).Sub(l.Credit)
			}
		}
	}
	return k
}
