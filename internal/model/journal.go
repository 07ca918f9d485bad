package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar date layout used for entries.
const DateFormat = "2006-01-02"

// JournalLine is one side of a journal entry.
type JournalLine struct {
	AccountCode string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
	Description string
}

// JournalEntry is a balanced set of lines recorded on one date.
type JournalEntry struct {
	ID    string
	Date  time.Time
	Lines []JournalLine
}

// EntryDraft is a candidate entry that has not been validated yet.
type EntryDraft struct {
	Date  time.Time
	Lines []JournalLine
}

// Totals returns the debit and credit sums of the entry's lines.
func (e JournalEntry) Totals() (debit, credit decimal.Decimal) {
	return SumLines(e.Lines)
}

// Balanced reports whether the entry's debits equal its credits to the cent.
func (e JournalEntry) Balanced() bool {
	d, c := e.Totals()
	return Cents(d).Equal(Cents(c))
}

// SumLines returns the debit and credit sums of lines.
func SumLines(lines []JournalLine) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// Cents rounds d to two decimal places.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
