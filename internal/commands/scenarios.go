package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScenariosCommand(flags *globalFlags) *cobra.Command {
	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Ready-made accounting scenarios",
	}
	scenariosCmd.AddCommand(newScenariosListCommand(flags), newScenariosLoadCommand(flags))
	return scenariosCmd
}

func newScenariosListCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			return s.renderer.Scenarios(cmd.OutOrStdout(), s.book.Catalog().All())
		},
	}
}

func newScenariosLoadCommand(flags *globalFlags) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Record every entry of a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(date)
			if err != nil {
				return err
			}

			s, err := open(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			entries, err := s.book.LoadScenario(args[0], d)
			if err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded scenario %s (%d entries)\n", args[0], len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date for the scenario entries, YYYY-MM-DD (default today)")

	return cmd
}
