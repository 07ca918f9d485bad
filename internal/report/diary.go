package report

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// DiaryLine is a journal line with its account name resolved.
type DiaryLine struct {
	AccountCode string
	AccountName string // empty when the account no longer exists
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

// DiaryEntry is one numbered entry of the journal diary.
type DiaryEntry struct {
	Number int
	ID     string
	Date   time.Time
	Lines  []DiaryLine
}

// BuildDiary lists entries by date (submission order breaks ties) and
// numbers them from 1. A non-empty query keeps entries whose date contains
// it, or that have a line whose code, account name or description matches.
func BuildDiary(accounts []model.Account, journal []model.JournalEntry, query string) []DiaryEntry {
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.Code] = a.Name
	}

	sorted := slices.Clone(journal)
	slices.SortStableFunc(sorted, func(a, b model.JournalEntry) int {
		return a.Date.Compare(b.Date)
	})

	query = strings.TrimSpace(query)
	var result []DiaryEntry
	for _, e := range sorted {
		lines := make([]DiaryLine, len(e.Lines))
		for i, l := range e.Lines {
			lines[i] = DiaryLine{
				AccountCode: l.AccountCode,
				AccountName: names[l.AccountCode],
				Debit:       l.Debit,
				Credit:      l.Credit,
				Description: l.Description,
			}
		}
		if query != "" && !matchEntry(e.Date, lines, query) {
			continue
		}
		result = append(result, DiaryEntry{
			Number: len(result) + 1,
			ID:     e.ID,
			Date:   e.Date,
			Lines:  lines,
		})
	}
	return result
}

func matchEntry(date time.Time, lines []DiaryLine, query string) bool {
	if strings.Contains(date.Format(model.DateFormat), query) {
		return true
	}
	for _, l := range lines {
		if strings.Contains(l.AccountCode, query) || model.ContainsFold(l.AccountName, query) || model.ContainsFold(l.Description, query) {
			return true
		}
	}
	return false
}
