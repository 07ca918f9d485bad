package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/id"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/workbook"
)

func newEntryCommand(flags *globalFlags) *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Record journal entries",
	}
	entryCmd.AddCommand(newEntryAddCommand(flags))
	return entryCmd
}

func newEntryAddCommand(flags *globalFlags) *cobra.Command {
	var date string
	var lines []string

	cmd := &cobra.Command{
		Use:   "add --line CODE:DEBIT:CREDIT[:DESCRIPTION] --line ...",
		Short: "Record a journal entry",
		Example: "  ledgerlab entry add --date 2025-03-12 \\\n" +
			"    --line 6011:1000:0:Compra de mercadería --line 1011:0:1000:Pago en efectivo",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(date)
			if err != nil {
				return err
			}
			parsed := make([]model.JournalLine, 0, len(lines))
			for i, raw := range lines {
				l, err := parseLine(raw)
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				parsed = append(parsed, l)
			}

			s, err := open(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			entry, err := s.book.SubmitEntry(workbook.SubmitEntryCommand{Date: d, Lines: parsed})
			if err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}
			debit, _ := entry.Totals()
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded entry %s on %s (%d lines, %s)\n",
				id.Short(entry.ID), entry.Date.Format(model.DateFormat), len(entry.Lines), s.renderer.Money(debit))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "entry date, YYYY-MM-DD (default today)")
	cmd.Flags().StringArrayVar(&lines, "line", nil, "journal line CODE:DEBIT:CREDIT[:DESCRIPTION], repeatable")

	return cmd
}

// parseDate reads a YYYY-MM-DD date. An empty string means today.
func parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(model.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, model.Invalid(model.ErrMissingRequiredField, s, "date must be YYYY-MM-DD")
	}
	return d, nil
}

// parseLine reads CODE:DEBIT:CREDIT[:DESCRIPTION]. Empty amounts are zero;
// the description may itself contain colons.
func parseLine(s string) (model.JournalLine, error) {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) < 3 {
		return model.JournalLine{}, model.Invalid(model.ErrIncompleteLine, s, "expected CODE:DEBIT:CREDIT[:DESCRIPTION]")
	}

	debit, err := parseAmount(parts[1])
	if err != nil {
		return model.JournalLine{}, fmt.Errorf("debit: %w", err)
	}
	credit, err := parseAmount(parts[2])
	if err != nil {
		return model.JournalLine{}, fmt.Errorf("credit: %w", err)
	}

	l := model.JournalLine{AccountCode: parts[0], Debit: debit, Credit: credit}
	if len(parts) == 4 {
		l.Description = parts[3]
	}
	return l, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}
