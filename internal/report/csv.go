package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/natefinch/atomic"
)

// CSVFileName is the default name of the exported trial balance.
const CSVFileName = "balance_comprobacion.csv"

// CSVHeader is the header row of the trial balance export.
var CSVHeader = []string{"Código", "Nombre", "Naturaleza", "Grupo", "Debe", "Haber", "Saldo"}

// ToCSV serializes trial balance rows. Every field is quoted, rows are
// joined with CRLF and amounts carry exactly two decimals.
func ToCSV(rows []AccountSummary) string {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, CSVHeader)
	for _, r := range rows {
		records = append(records, []string{
			r.Account.Code,
			r.Account.Name,
			r.Account.Nature.Label(),
			r.Account.Group,
			r.Debit.StringFixed(2),
			r.Credit.StringFixed(2),
			r.Balance.StringFixed(2),
		})
	}

	lines := make([]string, len(records))
	for i, rec := range records {
		fields := make([]string, len(rec))
		for j, v := range rec {
			fields[j] = quote(v)
		}
		lines[i] = strings.Join(fields, ",")
	}
	return strings.Join(lines, "\r\n")
}

// WriteCSV writes ToCSV(rows) to w.
func WriteCSV(w io.Writer, rows []AccountSummary) error {
	if _, err := io.WriteString(w, ToCSV(rows)); err != nil {
		return fmt.Errorf("writing trial balance CSV: %w", err)
	}
	return nil
}

// ExportCSV atomically replaces path with the CSV export.
func ExportCSV(path string, rows []AccountSummary) error {
	if err := atomic.WriteFile(path, strings.NewReader(ToCSV(rows))); err != nil {
		return fmt.Errorf("exporting trial balance to %s: %w", path, err)
	}
	return nil
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
