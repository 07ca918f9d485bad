package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "entry_id,date,account_code,description,debit,credit"

const (
	numFields  = 6
	colEntryID = 0
	colDate    = 1
	colAcct    = 2
	colDesc    = 3
	colDebit   = 4
	colCredit  = 5
)

// row is one line of journal.csv: a journal line plus its entry header.
type row struct {
	EntryID string
	Date    time.Time
	Line    model.JournalLine
}

// ReadEntries reads all entries from a journal.csv reader. Rows sharing an
// entry_id form one entry, in the order the rows appear.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.JournalEntry
	index := make(map[string]int)
	for i, rec := range records[1:] {
		rw, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		at, ok := index[rw.EntryID]
		if !ok {
			index[rw.EntryID] = len(entries)
			entries = append(entries, model.JournalEntry{ID: rw.EntryID, Date: rw.Date})
			at = len(entries) - 1
		}
		if !entries[at].Date.Equal(rw.Date) {
			return nil, fmt.Errorf("row %d: entry %s has conflicting dates", i+2, rw.EntryID)
		}
		entries[at].Lines = append(entries[at].Lines, rw.Line)
	}
	return entries, nil
}

// WriteEntries writes entries to a journal.csv writer (including header).
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	n := 1
	for _, e := range entries {
		for _, l := range e.Lines {
			n++
			if err := cw.Write(marshalRow(row{EntryID: e.ID, Date: e.Date, Line: l})); err != nil {
				return fmt.Errorf("writing row %d: %w", n, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func marshalRow(rw row) []string {
	rec := make([]string, numFields)
	rec[colEntryID] = rw.EntryID
	rec[colDate] = rw.Date.Format(model.DateFormat)
	rec[colAcct] = rw.Line.AccountCode
	rec[colDesc] = rw.Line.Description

	if !rw.Line.Debit.IsZero() {
		rec[colDebit] = rw.Line.Debit.String()
	}
	if !rw.Line.Credit.IsZero() {
		rec[colCredit] = rw.Line.Credit.String()
	}
	return rec
}

func unmarshalRow(record []string) (row, error) {
	if len(record) != numFields {
		return row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colEntryID] == "" {
		return row{}, fmt.Errorf("missing entry_id")
	}

	date, err := time.Parse(model.DateFormat, record[colDate])
	if err != nil {
		return row{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var debit, credit decimal.Decimal

	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return row{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}

	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return row{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	return row{
		EntryID: record[colEntryID],
		Date:    date,
		Line: model.JournalLine{
			AccountCode: record[colAcct],
			Description: record[colDesc],
			Debit:       debit,
			Credit:      credit,
		},
	}, nil
}
