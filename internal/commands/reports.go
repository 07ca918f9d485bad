package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/report"
)

func newDiaryCommand(flags *globalFlags) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "diary",
		Short: "Show the journal diary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			diary := report.BuildDiary(s.book.Accounts(), s.book.Journal(), filter)
			return s.renderer.Diary(cmd.OutOrStdout(), diary)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only entries matching a date, account or description")

	return cmd
}

func newLedgerCommand(flags *globalFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show the general ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			ledgers := report.BuildLedger(s.book.Accounts(), s.book.Journal())
			return s.renderer.Ledger(cmd.OutOrStdout(), ledgers, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show every account")

	return cmd
}

func newTrialBalanceCommand(flags *globalFlags) *cobra.Command {
	var (
		filter, out string
		export      bool
	)

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Show the trial balance, optionally exporting it as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			tb := report.BuildTrialBalance(s.book.Accounts(), s.book.Journal()).Filter(filter)
			if export && out == "-" {
				return report.WriteCSV(cmd.OutOrStdout(), tb.Rows)
			}
			if err := s.renderer.TrialBalance(cmd.OutOrStdout(), tb); err != nil {
				return err
			}
			if !export {
				return nil
			}

			path := out
			if !filepath.IsAbs(path) {
				path = filepath.Join(s.dir, path)
			}
			if err := report.ExportCSV(path, tb.Rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", len(tb.Rows), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only accounts whose code or name matches")
	cmd.Flags().BoolVar(&export, "csv", false, "export the trial balance as CSV")
	cmd.Flags().StringVarP(&out, "out", "o", report.CSVFileName, "CSV export path, resolved against --dir when relative; - writes to stdout")

	return cmd
}

func newKPIsCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "kpis",
		Short: "Show entry count, net balance and error count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			return s.renderer.KPIs(cmd.OutOrStdout(), report.ComputeKPIs(s.book.Accounts(), s.book.Journal()))
		},
	}
}
